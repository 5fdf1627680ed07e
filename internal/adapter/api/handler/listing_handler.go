package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"estatesalehub/internal/domain/entity"
	"estatesalehub/internal/usecase"
	"estatesalehub/pkg/errors"
	"estatesalehub/pkg/response"
	"estatesalehub/pkg/utils"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
	userUseCase    *usecase.UserUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase, userUseCase *usecase.UserUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
		userUseCase:    userUseCase,
	}
}

type listingImageRequest struct {
	ImageURL     string `json:"image_url" validate:"required,url"`
	ThumbnailURL string `json:"thumbnail_url"`
	IsPrimary    bool   `json:"is_primary"`
	DisplayOrder int    `json:"display_order"`
}

type createListingRequest struct {
	Title             string                `json:"title" validate:"required,min=3"`
	Description       string                `json:"description"`
	AddressLine1      string                `json:"address_line1"`
	AddressLine2      string                `json:"address_line2"`
	City              string                `json:"city" validate:"required"`
	State             string                `json:"state" validate:"required,len=2"`
	ZipCode           string                `json:"zip_code"`
	Latitude          *float64              `json:"latitude" validate:"omitempty,latitude"`
	Longitude         *float64              `json:"longitude" validate:"omitempty,longitude"`
	StartDate         time.Time             `json:"start_date" validate:"required"`
	EndDate           time.Time             `json:"end_date" validate:"required"`
	SaleHours         string                `json:"sale_hours"`
	DrivingDirections string                `json:"driving_directions"`
	ParkingInfo       string                `json:"parking_info"`
	SaleType          string                `json:"sale_type" validate:"omitempty,oneof=estate_sale moving_sale auction garage_sale"`
	Status            string                `json:"status" validate:"omitempty,oneof=draft published completed cancelled"`
	Images            []listingImageRequest `json:"images"`
}

// ListSales serves the public aggregated feed of owned and scraped sales.
func (h *ListingHandler) ListSales(c echo.Context) error {
	filters := entity.ListingFilters{
		City:     strings.TrimSpace(c.QueryParam("city")),
		State:    strings.ToUpper(strings.TrimSpace(c.QueryParam("state"))),
		SaleType: strings.TrimSpace(c.QueryParam("sale_type")),
		Limit:    utils.GetLimitParam(c),
	}

	if c.QueryParam("featured") == "true" {
		featured := true
		filters.Featured = &featured
	}

	sales, err := h.listingUseCase.GetAggregatedSales(c.Request().Context(), filters)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, sales)
}

func (h *ListingHandler) GetSale(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid sale id", err))
	}

	listing, err := h.listingUseCase.GetListingByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) CreateMySale(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	seller, err := h.resolveSeller(c)
	if err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.CreateListing(
		c.Request().Context(),
		seller.SellerID,
		toCreateListingInput(req),
		toListingImageInputs(req.Images),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

func (h *ListingHandler) UpdateMySale(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid sale id", err))
	}

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	seller, err := h.resolveSeller(c)
	if err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.UpdateListing(
		c.Request().Context(),
		id,
		seller.SellerID,
		toCreateListingInput(req),
		toListingImageInputs(req.Images),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) DeleteMySale(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid sale id", err))
	}

	seller, err := h.resolveSeller(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.listingUseCase.DeleteListing(c.Request().Context(), id, seller.SellerID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Sale deleted successfully",
	})
}

func (h *ListingHandler) ListMySales(c echo.Context) error {
	seller, err := h.resolveSeller(c)
	if err != nil {
		return response.Error(c, err)
	}

	pagination := utils.GetPaginationParams(c)
	status := c.QueryParam("status")

	listings, total, err := h.listingUseCase.ListMyListings(
		c.Request().Context(),
		seller.SellerID,
		status,
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, pagination.Page, pagination.PageSize)
}

func (h *ListingHandler) resolveSeller(c echo.Context) (*entity.User, error) {
	uid, ok := c.Get("uid").(string)
	if !ok || uid == "" {
		return nil, errors.Unauthorized("Authentication required", nil)
	}

	return h.userUseCase.GetOrCreateUser(c.Request().Context(), uid)
}

func toCreateListingInput(req createListingRequest) usecase.CreateListingInput {
	return usecase.CreateListingInput{
		Title:             req.Title,
		Description:       req.Description,
		AddressLine1:      req.AddressLine1,
		AddressLine2:      req.AddressLine2,
		City:              req.City,
		State:             strings.ToUpper(req.State),
		ZipCode:           req.ZipCode,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		SaleHours:         req.SaleHours,
		DrivingDirections: req.DrivingDirections,
		ParkingInfo:       req.ParkingInfo,
		SaleType:          req.SaleType,
		Status:            req.Status,
	}
}

func toListingImageInputs(images []listingImageRequest) []usecase.ListingImageInput {
	inputs := make([]usecase.ListingImageInput, len(images))
	for i, img := range images {
		inputs[i] = usecase.ListingImageInput{
			ImageURL:     img.ImageURL,
			ThumbnailURL: img.ThumbnailURL,
			IsPrimary:    img.IsPrimary,
			DisplayOrder: img.DisplayOrder,
		}
	}
	return inputs
}
