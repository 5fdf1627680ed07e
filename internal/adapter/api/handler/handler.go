package handler

import (
	"estatesalehub/internal/usecase"
)

var (
	listingHandler *ListingHandler
	userHandler    *UserHandler
)

// Setup initializes all handlers with their dependencies
func Setup(
	listingUseCase *usecase.ListingUseCase,
	userUseCase *usecase.UserUseCase,
) {
	listingHandler = NewListingHandler(listingUseCase, userUseCase)
	userHandler = NewUserHandler(userUseCase)
}

// GetListingHandler returns the listing handler instance
func GetListingHandler() *ListingHandler {
	return listingHandler
}

// GetUserHandler returns the user handler instance
func GetUserHandler() *UserHandler {
	return userHandler
}
