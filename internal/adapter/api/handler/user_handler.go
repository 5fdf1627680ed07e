package handler

import (
	"github.com/labstack/echo/v4"

	"estatesalehub/internal/usecase"
	"estatesalehub/pkg/errors"
	"estatesalehub/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	Username string `json:"username" validate:"omitempty,min=3,max=30"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`
}

func (r updateProfileRequest) toInput() usecase.UpdateProfileInput {
	return usecase.UpdateProfileInput{
		Username: r.Username,
		Phone:    r.Phone,
	}
}

func (h *UserHandler) GetMe(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok || uid == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	user, err := h.userUseCase.GetOrCreateUser(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateMe(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok || uid == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
