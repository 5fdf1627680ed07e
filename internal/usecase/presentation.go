package usecase

import (
	"strings"

	"estatesalehub/internal/domain/entity"
)

const (
	BadgeBlue   = "blue"
	BadgeGreen  = "green"
	BadgePurple = "purple"
	BadgeYellow = "yellow"
	BadgeGray   = "gray"
)

var saleTypeColors = map[string]string{
	"estate_sale": BadgeBlue,
	"moving_sale": BadgeGreen,
	"auction":     BadgePurple,
	"garage_sale": BadgeYellow,
}

type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// SaleTypeBadge maps a sale type to its badge. Unknown types get the
// default color rather than an error so new types render harmlessly.
func SaleTypeBadge(saleType string) Badge {
	color, ok := saleTypeColors[saleType]
	if !ok {
		color = BadgeGray
	}

	return Badge{
		Label: strings.ToUpper(strings.ReplaceAll(saleType, "_", " ")),
		Color: color,
	}
}

// CardPresentation is everything a listing card needs to render: where a
// click goes, how it opens, which image to show and which badges apply.
type CardPresentation struct {
	Target     string `json:"target"`
	NewTab     bool   `json:"new_tab"`
	Rel        string `json:"rel,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
	HasImage   bool   `json:"has_image"`
	Badge      *Badge `json:"badge,omitempty"`
	SourceName string `json:"source_name,omitempty"`
	Featured   bool   `json:"featured"`
}

func PresentCard(s *entity.ListingSummary) CardPresentation {
	p := CardPresentation{
		Target: "/sales/" + s.ID,
	}

	// Scraped listings link out to the source site; owned ones stay in-app.
	if s.IsScraped && s.Source != nil {
		p.Target = s.Source.URL
		p.NewTab = true
		p.Rel = "noopener noreferrer"
		p.SourceName = s.Source.Name
	}

	switch {
	case len(s.Images) > 0:
		p.ImageURL = s.Images[0].ImageURL
		for _, img := range s.Images {
			if img.IsPrimary {
				p.ImageURL = img.ImageURL
				break
			}
		}
		p.HasImage = true
	case s.ThumbnailURL != "":
		p.ImageURL = s.ThumbnailURL
		p.HasImage = true
	}

	if s.SaleType != nil && *s.SaleType != "" {
		badge := SaleTypeBadge(*s.SaleType)
		p.Badge = &badge
	}
	if s.Featured != nil {
		p.Featured = *s.Featured
	}

	return p
}
