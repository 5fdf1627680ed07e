package entity

import (
	"time"
)

// ListingFilters narrows listing queries. Zero values mean "no constraint";
// Featured is a pointer so "only featured" and "don't care" stay distinct.
type ListingFilters struct {
	City      string
	State     string
	ZipCode   string
	SaleType  string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
	Featured  *bool
	Limit     int
	Offset    int
}
