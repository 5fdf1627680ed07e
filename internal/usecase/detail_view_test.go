package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"estatesalehub/internal/domain/entity"
)

func sampleListing() *entity.Listing {
	hours := "9am-4pm"
	addressLine2 := "Unit B"
	return &entity.Listing{
		ID:           12,
		Title:        "Mid-Century Estate Sale",
		Description:  "Furniture and records.",
		AddressLine1: "123 Oak St",
		AddressLine2: &addressLine2,
		City:         "Portland",
		State:        "OR",
		ZipCode:      "97201",
		StartDate:    time.Date(2026, time.March, 6, 9, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, time.March, 8, 16, 0, 0, 0, time.UTC),
		SaleHours:    &hours,
		SaleType:     "estate_sale",
		ViewCount:    31,
	}
}

func TestAssembleDetailFormatsDates(t *testing.T) {
	view := AssembleDetail(sampleListing())

	assert.Equal(t, "Friday, March 6, 2026", view.StartDateLine)
	assert.Equal(t, "9:00 AM", view.StartTime)
	assert.Equal(t, "Sunday, March 8, 2026", view.EndDateLine)
	assert.Equal(t, "4:00 PM", view.EndTime)
	assert.Equal(t, "Portland, OR 97201", view.CityStateZip)
	assert.Equal(t, "123 Oak St", view.AddressLine1)
	assert.Equal(t, "Unit B", view.AddressLine2)
	assert.Equal(t, "9am-4pm", view.SaleHours)
	assert.Equal(t, 31, view.ViewCount)
	assert.NotNil(t, view.Badge)
	assert.Equal(t, BadgeBlue, view.Badge.Color)
}

func TestAssembleDetailSameDaySuppressesEndDate(t *testing.T) {
	listing := sampleListing()
	listing.EndDate = time.Date(2026, time.March, 6, 16, 0, 0, 0, time.UTC)

	view := AssembleDetail(listing)

	assert.Empty(t, view.EndDateLine)
	assert.Equal(t, "4:00 PM", view.EndTime)
}

func TestAssembleDetailHidesTBAAddress(t *testing.T) {
	listing := sampleListing()
	listing.AddressLine1 = entity.AddressTBA
	listing.AddressLine2 = nil

	view := AssembleDetail(listing)

	assert.Empty(t, view.AddressLine1)
	assert.Empty(t, view.AddressLine2)
}

func TestAssembleDetailWithoutSaleType(t *testing.T) {
	listing := sampleListing()
	listing.SaleType = ""

	view := AssembleDetail(listing)

	assert.Nil(t, view.Badge)
}

func TestDirectionsURLPrefersCoordinates(t *testing.T) {
	listing := sampleListing()
	lat, lng := 45.5152, -122.6784
	listing.Latitude = &lat
	listing.Longitude = &lng

	url := DirectionsURL(listing)

	assert.Equal(t, "https://www.google.com/maps/dir/?api=1&destination=45.5152,-122.6784", url)
}

func TestDirectionsURLFallsBackToAddress(t *testing.T) {
	url := DirectionsURL(sampleListing())

	assert.Equal(t, "https://www.google.com/maps/dir/?api=1&destination=123%20Oak%20St%2C%20Portland%2C%20OR%2097201", url)
	assert.NotContains(t, url, "+")
}

func TestDirectionsURLSkipsTBAStreet(t *testing.T) {
	listing := sampleListing()
	listing.AddressLine1 = entity.AddressTBA

	url := DirectionsURL(listing)

	assert.Equal(t, "https://www.google.com/maps/dir/?api=1&destination=Portland%2C%20OR%2097201", url)
}
