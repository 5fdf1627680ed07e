package usecase

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"estatesalehub/internal/domain/entity"
)

const directionsBase = "https://www.google.com/maps/dir/?api=1&destination="

// DetailView is the fully formatted detail page model. Every field is
// renderable as-is; a template never needs to touch the raw listing.
type DetailView struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Badge       *Badge `json:"badge,omitempty"`
	Featured    bool   `json:"featured"`

	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	CityStateZip string `json:"city_state_zip"`

	StartDateLine string `json:"start_date_line"`
	StartTime     string `json:"start_time"`
	EndDateLine   string `json:"end_date_line,omitempty"`
	EndTime       string `json:"end_time"`
	SaleHours     string `json:"sale_hours,omitempty"`

	DrivingDirections string `json:"driving_directions,omitempty"`
	ParkingInfo       string `json:"parking_info,omitempty"`

	DirectionsURL string `json:"directions_url"`
	ViewCount     int    `json:"view_count"`
}

// AssembleDetail formats a listing for the detail page. It is total:
// missing coordinates, a TBA address or an absent sale type all degrade to
// a usable view instead of an error.
func AssembleDetail(l *entity.Listing) DetailView {
	v := DetailView{
		ID:            l.ID,
		Title:         l.Title,
		Description:   l.Description,
		Featured:      l.Featured,
		CityStateZip:  fmt.Sprintf("%s, %s %s", l.City, l.State, l.ZipCode),
		StartDateLine: l.StartDate.Format("Monday, January 2, 2006"),
		StartTime:     l.StartDate.Format("3:04 PM"),
		EndTime:       l.EndDate.Format("3:04 PM"),
		DirectionsURL: DirectionsURL(l),
		ViewCount:     l.ViewCount,
	}

	if l.AddressLine1 != "" && l.AddressLine1 != entity.AddressTBA {
		v.AddressLine1 = l.AddressLine1
	}
	if l.AddressLine2 != nil {
		v.AddressLine2 = *l.AddressLine2
	}

	// Sales ending the day they start only need one date line.
	if !sameCalendarDay(l.StartDate, l.EndDate) {
		v.EndDateLine = l.EndDate.Format("Monday, January 2, 2006")
	}

	if l.SaleType != "" {
		badge := SaleTypeBadge(l.SaleType)
		v.Badge = &badge
	}
	if l.SaleHours != nil {
		v.SaleHours = *l.SaleHours
	}
	if l.DrivingDirections != nil {
		v.DrivingDirections = *l.DrivingDirections
	}
	if l.ParkingInfo != nil {
		v.ParkingInfo = *l.ParkingInfo
	}

	return v
}

// DirectionsURL builds a Google Maps directions link, preferring exact
// coordinates over the postal address.
func DirectionsURL(l *entity.Listing) string {
	if l.Latitude != nil && l.Longitude != nil {
		return directionsBase +
			strconv.FormatFloat(*l.Latitude, 'f', -1, 64) + "," +
			strconv.FormatFloat(*l.Longitude, 'f', -1, 64)
	}

	parts := make([]string, 0, 2)
	if l.AddressLine1 != "" && l.AddressLine1 != entity.AddressTBA {
		parts = append(parts, l.AddressLine1)
	}
	parts = append(parts, fmt.Sprintf("%s, %s %s", l.City, l.State, l.ZipCode))

	// QueryEscape emits + for spaces, Maps expects %20.
	escaped := strings.ReplaceAll(url.QueryEscape(strings.Join(parts, ", ")), "+", "%20")

	return directionsBase + escaped
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
