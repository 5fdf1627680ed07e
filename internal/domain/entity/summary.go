package entity

import (
	"time"
)

// AddressTBA marks a street address withheld by the source until closer to
// the sale date. Views treat it the same as a missing address.
const AddressTBA = "TBA"

type Source struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type SummaryImage struct {
	ImageURL  string `json:"image_url"`
	IsPrimary bool   `json:"is_primary"`
}

// ListingSummary is the aggregated card shape served by the sales feed.
// Owned and scraped listings both project into it; optional attributes stay
// pointers so absence survives the round trip.
type ListingSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	ZipCode   string   `json:"zip_code"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	ThumbnailURL string         `json:"thumbnail_url,omitempty"`
	Images       []SummaryImage `json:"images,omitempty"`

	IsScraped bool    `json:"is_scraped"`
	Source    *Source `json:"source,omitempty"`

	SaleType  *string `json:"sale_type,omitempty"`
	Status    *string `json:"status,omitempty"`
	ViewCount *int    `json:"view_count,omitempty"`
	Featured  *bool   `json:"featured,omitempty"`
}

func (s *ListingSummary) HasAddress() bool {
	return s.Address != "" && s.Address != AddressTBA
}
