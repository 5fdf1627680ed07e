package entity

import (
	"time"
)

// ScrapedListing is the minimal record a scraper produces for an external
// sale. Only metadata and image URLs are kept, never the page content.
type ScrapedListing struct {
	ExternalID string `json:"external_id"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	ZipCode   string  `json:"zip_code"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	ThumbnailURL string   `json:"thumbnail_url"`
	ImageURLs    []string `json:"image_urls,omitempty"`

	SourceName string `json:"source_name"`
	SourceURL  string `json:"source_url"`

	ScrapedAt time.Time `json:"scraped_at"`
}

// ToListing converts a scraped record into an external listing row.
func (s *ScrapedListing) ToListing() Listing {
	now := time.Now()
	lat, lng := s.Latitude, s.Longitude

	listing := Listing{
		ListingType:    ListingTypeExternal,
		ExternalID:     &s.ExternalID,
		ExternalSource: &s.SourceName,
		ExternalURL:    &s.SourceURL,
		LastScrapedAt:  &now,

		Title:        s.Title,
		Description:  s.Description,
		AddressLine1: s.Address,
		City:         s.City,
		State:        s.State,
		ZipCode:      s.ZipCode,

		StartDate: s.StartDate,
		EndDate:   s.EndDate,

		CreatedAt: now,
		UpdatedAt: now,
	}

	if lat != 0 || lng != 0 {
		listing.Latitude = &lat
		listing.Longitude = &lng
	}

	if s.ThumbnailURL != "" {
		listing.Images = append(listing.Images, ListingImage{
			ImageURL:  s.ThumbnailURL,
			IsPrimary: true,
		})
	}
	for i, url := range s.ImageURLs {
		listing.Images = append(listing.Images, ListingImage{
			ImageURL:     url,
			DisplayOrder: i + 1,
		})
	}

	return listing
}

// ToSummary projects a scraped record into the aggregated card shape.
func (s *ScrapedListing) ToSummary() *ListingSummary {
	summary := &ListingSummary{
		ID:           s.ExternalID,
		Title:        s.Title,
		Description:  s.Description,
		Address:      s.Address,
		City:         s.City,
		State:        s.State,
		ZipCode:      s.ZipCode,
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		ThumbnailURL: s.ThumbnailURL,
		IsScraped:    true,
		Source: &Source{
			Name: s.SourceName,
			URL:  s.SourceURL,
		},
	}

	if s.Latitude != 0 || s.Longitude != 0 {
		lat, lng := s.Latitude, s.Longitude
		summary.Latitude = &lat
		summary.Longitude = &lng
	}

	for _, url := range s.ImageURLs {
		summary.Images = append(summary.Images, SummaryImage{ImageURL: url})
	}

	return summary
}
