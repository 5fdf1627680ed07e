package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"estatesalehub/internal/domain/entity"
	"estatesalehub/internal/domain/repository"
	"estatesalehub/pkg/errors"
	"estatesalehub/pkg/logger"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
	scrapes     ScrapeManager
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	scrapes ScrapeManager,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		userRepo:    userRepo,
		scrapes:     scrapes,
	}
}

type CreateListingInput struct {
	Title        string     `json:"title" validate:"required,min=3"`
	Description  string     `json:"description"`
	AddressLine1 string     `json:"address_line1"`
	AddressLine2 string     `json:"address_line2"`
	City         string     `json:"city" validate:"required"`
	State        string     `json:"state" validate:"required,len=2"`
	ZipCode      string     `json:"zip_code"`
	Latitude     *float64   `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64   `json:"longitude,omitempty" validate:"omitempty,longitude"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      time.Time  `json:"end_date" validate:"required"`
	SaleHours    string     `json:"sale_hours"`

	DrivingDirections string `json:"driving_directions"`
	ParkingInfo       string `json:"parking_info"`
	SaleType     string     `json:"sale_type" validate:"omitempty,oneof=estate_sale moving_sale auction garage_sale"`
	Status       string     `json:"status" validate:"omitempty,oneof=draft published completed cancelled"`
}

type ListingImageInput struct {
	ImageURL     string `json:"image_url" validate:"required,url"`
	ThumbnailURL string `json:"thumbnail_url"`
	IsPrimary    bool   `json:"is_primary"`
	DisplayOrder int    `json:"display_order"`
}

func (uc *ListingUseCase) CreateListing(ctx context.Context, sellerID int, input CreateListingInput, images []ListingImageInput) (*entity.Listing, error) {
	if !input.EndDate.After(input.StartDate) {
		return nil, errors.BadRequest("End date must be after start date", nil)
	}

	listing := &entity.Listing{
		ListingType:  entity.ListingTypeOwned,
		SellerID:     &sellerID,
		Title:        input.Title,
		Description:  input.Description,
		AddressLine1: input.AddressLine1,
		City:         input.City,
		State:        input.State,
		ZipCode:      input.ZipCode,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		SaleType:     input.SaleType,
		Status:       input.Status,
		ListingTier:  "basic",
		Images:       buildListingImages(images),
	}

	if input.AddressLine2 != "" {
		listing.AddressLine2 = &input.AddressLine2
	}
	if input.SaleHours != "" {
		listing.SaleHours = &input.SaleHours
	}
	if input.DrivingDirections != "" {
		listing.DrivingDirections = &input.DrivingDirections
	}
	if input.ParkingInfo != "" {
		listing.ParkingInfo = &input.ParkingInfo
	}
	if listing.SaleType == "" {
		listing.SaleType = "estate_sale"
	}
	if listing.Status == "" {
		listing.Status = "draft"
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *ListingUseCase) UpdateListing(ctx context.Context, id, sellerID int, input CreateListingInput, images []ListingImageInput) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if listing.SellerID == nil || *listing.SellerID != sellerID {
		return nil, errors.Forbidden("You don't have permission to update this listing", nil)
	}

	if !input.EndDate.After(input.StartDate) {
		return nil, errors.BadRequest("End date must be after start date", nil)
	}

	listing.Title = input.Title
	listing.Description = input.Description
	listing.AddressLine1 = input.AddressLine1
	listing.City = input.City
	listing.State = input.State
	listing.ZipCode = input.ZipCode
	listing.Latitude = input.Latitude
	listing.Longitude = input.Longitude
	listing.StartDate = input.StartDate
	listing.EndDate = input.EndDate

	listing.AddressLine2 = nil
	if input.AddressLine2 != "" {
		listing.AddressLine2 = &input.AddressLine2
	}
	listing.SaleHours = nil
	if input.SaleHours != "" {
		listing.SaleHours = &input.SaleHours
	}
	listing.DrivingDirections = nil
	if input.DrivingDirections != "" {
		listing.DrivingDirections = &input.DrivingDirections
	}
	listing.ParkingInfo = nil
	if input.ParkingInfo != "" {
		listing.ParkingInfo = &input.ParkingInfo
	}
	if input.SaleType != "" {
		listing.SaleType = input.SaleType
	}
	if input.Status != "" {
		listing.Status = input.Status
	}
	if len(images) > 0 {
		listing.Images = buildListingImages(images)
	}

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *ListingUseCase) DeleteListing(ctx context.Context, id, sellerID int) error {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if listing.SellerID == nil || *listing.SellerID != sellerID {
		return errors.Forbidden("You don't have permission to delete this listing", nil)
	}

	return uc.listingRepo.Delete(ctx, id)
}

// GetListingByID serves the public detail view. Drafts stay hidden, and the
// view counter bumps in the background so the read path never waits on it.
func (uc *ListingUseCase) GetListingByID(ctx context.Context, id int) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if listing.IsOwned() && listing.Status != "published" {
		return nil, errors.NotFound("Listing", nil)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = uc.listingRepo.IncrementViews(ctx, id)
	}()

	return listing, nil
}

func (uc *ListingUseCase) ListMyListings(ctx context.Context, sellerID int, status string, limit, offset int) ([]*entity.Listing, int64, error) {
	return uc.listingRepo.ListBySellerID(ctx, sellerID, status, limit, offset)
}

// GetAggregatedSales merges published owned listings with scraped external
// ones into the card feed, newest start date first. A scrape failure only
// degrades the feed to owned listings.
func (uc *ListingUseCase) GetAggregatedSales(ctx context.Context, filters entity.ListingFilters) ([]*entity.ListingSummary, error) {
	if uc.scrapes != nil {
		if err := uc.scrapes.EnsureFresh(ctx, filters.City, filters.State); err != nil {
			logger.Warn("Scrape refresh failed for %s, %s: %v", filters.City, filters.State, err)
		}
	}

	ownedFilters := filters
	ownedFilters.Status = "published"
	ownedFilters.Limit = 0
	ownedFilters.Offset = 0

	owned, _, err := uc.listingRepo.List(ctx, ownedFilters)
	if err != nil {
		return nil, err
	}

	summaries := make([]*entity.ListingSummary, 0, len(owned))
	for _, l := range owned {
		summaries = append(summaries, l.ToSummary())
	}

	// Scraped listings carry no sale type, status or featured flag, so any
	// of those filters excludes them outright.
	if filters.SaleType == "" && filters.Featured == nil {
		external, err := uc.listingRepo.ListExternal(ctx, filters)
		if err != nil {
			logger.Warn("Listing external sales failed: %v", err)
		} else {
			for _, l := range external {
				scraped := l.ToScraped()
				summaries = append(summaries, scraped.ToSummary())
			}
		}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].StartDate.After(summaries[j].StartDate)
	})

	if filters.Offset > 0 {
		if filters.Offset >= len(summaries) {
			return []*entity.ListingSummary{}, nil
		}
		summaries = summaries[filters.Offset:]
	}
	if filters.Limit > 0 && filters.Limit < len(summaries) {
		summaries = summaries[:filters.Limit]
	}

	return summaries, nil
}

func buildListingImages(images []ListingImageInput) []entity.ListingImage {
	listingImages := make([]entity.ListingImage, len(images))
	for i, img := range images {
		listingImages[i] = entity.ListingImage{
			ID:           uuid.New().String(),
			ImageURL:     img.ImageURL,
			ThumbnailURL: img.ThumbnailURL,
			IsPrimary:    img.IsPrimary,
			DisplayOrder: img.DisplayOrder,
			UploadedAt:   time.Now(),
		}
	}
	return listingImages
}
