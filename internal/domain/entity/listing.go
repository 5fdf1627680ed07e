package entity

import (
	"strconv"
	"time"
)

const (
	ListingTypeOwned    = "owned"
	ListingTypeExternal = "external"
)

type ListingImage struct {
	ID           string    `json:"id" firestore:"id"`
	ImageURL     string    `json:"image_url" firestore:"imageUrl"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty" firestore:"thumbnailUrl,omitempty"`
	IsPrimary    bool      `json:"is_primary" firestore:"isPrimary"`
	DisplayOrder int       `json:"display_order" firestore:"displayOrder"`
	UploadedAt   time.Time `json:"uploaded_at" firestore:"uploadedAt"`
}

type Listing struct {
	ID          int    `json:"id" firestore:"id"`
	ListingType string `json:"listing_type" firestore:"listingType"`

	SellerID *int `json:"seller_id,omitempty" firestore:"sellerId,omitempty"`

	ExternalID     *string    `json:"external_id,omitempty" firestore:"externalId,omitempty"`
	ExternalSource *string    `json:"external_source,omitempty" firestore:"externalSource,omitempty"`
	ExternalURL    *string    `json:"external_url,omitempty" firestore:"externalUrl,omitempty"`
	LastScrapedAt  *time.Time `json:"last_scraped_at,omitempty" firestore:"lastScrapedAt,omitempty"`

	Title       string `json:"title" firestore:"title"`
	Description string `json:"description" firestore:"description"`

	AddressLine1 string   `json:"address_line1" firestore:"addressLine1"`
	AddressLine2 *string  `json:"address_line2,omitempty" firestore:"addressLine2,omitempty"`
	City         string   `json:"city" firestore:"city"`
	State        string   `json:"state" firestore:"state"`
	ZipCode      string   `json:"zip_code" firestore:"zipCode"`
	Latitude     *float64 `json:"latitude,omitempty" firestore:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty" firestore:"longitude,omitempty"`

	StartDate time.Time `json:"start_date" firestore:"startDate"`
	EndDate   time.Time `json:"end_date" firestore:"endDate"`
	SaleHours *string   `json:"sale_hours,omitempty" firestore:"saleHours,omitempty"`

	DrivingDirections *string `json:"driving_directions,omitempty" firestore:"drivingDirections,omitempty"`
	ParkingInfo       *string `json:"parking_info,omitempty" firestore:"parkingInfo,omitempty"`

	SaleType    string `json:"sale_type,omitempty" firestore:"saleType,omitempty"`
	Status      string `json:"status,omitempty" firestore:"status,omitempty"`
	ListingTier string `json:"listing_tier,omitempty" firestore:"listingTier,omitempty"`

	ViewCount int  `json:"view_count" firestore:"viewCount"`
	Featured  bool `json:"featured" firestore:"featured"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`

	Images []ListingImage `json:"images,omitempty" firestore:"images,omitempty"`
}

func (l *Listing) IsExternal() bool {
	return l.ListingType == ListingTypeExternal
}

func (l *Listing) IsOwned() bool {
	return l.ListingType == ListingTypeOwned
}

// ToSummary projects an owned listing into the aggregated card shape.
func (l *Listing) ToSummary() *ListingSummary {
	var thumbnailURL string
	images := make([]SummaryImage, 0, len(l.Images))
	for _, img := range l.Images {
		if img.IsPrimary && thumbnailURL == "" {
			thumbnailURL = img.ImageURL
		}
		images = append(images, SummaryImage{
			ImageURL:  img.ImageURL,
			IsPrimary: img.IsPrimary,
		})
	}

	address := l.AddressLine1
	if l.AddressLine2 != nil && *l.AddressLine2 != "" {
		address += ", " + *l.AddressLine2
	}

	saleType := l.SaleType
	status := l.Status
	viewCount := l.ViewCount
	featured := l.Featured

	return &ListingSummary{
		ID:           strconv.Itoa(l.ID),
		Title:        l.Title,
		Description:  l.Description,
		Address:      address,
		City:         l.City,
		State:        l.State,
		ZipCode:      l.ZipCode,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		StartDate:    l.StartDate,
		EndDate:      l.EndDate,
		ThumbnailURL: thumbnailURL,
		Images:       images,
		IsScraped:    false,
		SaleType:     &saleType,
		Status:       &status,
		ViewCount:    &viewCount,
		Featured:     &featured,
	}
}

// ToScraped maps an external listing row back to its scraped shape.
func (l *Listing) ToScraped() ScrapedListing {
	scraped := ScrapedListing{
		Title:       l.Title,
		Description: l.Description,
		Address:     l.AddressLine1,
		City:        l.City,
		State:       l.State,
		ZipCode:     l.ZipCode,
		StartDate:   l.StartDate,
		EndDate:     l.EndDate,
	}

	if l.ExternalID != nil {
		scraped.ExternalID = *l.ExternalID
	}
	if l.ExternalSource != nil {
		scraped.SourceName = *l.ExternalSource
	}
	if l.ExternalURL != nil {
		scraped.SourceURL = *l.ExternalURL
	}
	if l.LastScrapedAt != nil {
		scraped.ScrapedAt = *l.LastScrapedAt
	}
	if l.Latitude != nil {
		scraped.Latitude = *l.Latitude
	}
	if l.Longitude != nil {
		scraped.Longitude = *l.Longitude
	}
	for _, img := range l.Images {
		if img.IsPrimary && scraped.ThumbnailURL == "" {
			scraped.ThumbnailURL = img.ImageURL
			continue
		}
		scraped.ImageURLs = append(scraped.ImageURLs, img.ImageURL)
	}

	return scraped
}
