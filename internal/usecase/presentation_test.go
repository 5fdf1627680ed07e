package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"estatesalehub/internal/domain/entity"
)

func TestSaleTypeBadge(t *testing.T) {
	tests := []struct {
		saleType string
		label    string
		color    string
	}{
		{"estate_sale", "ESTATE SALE", BadgeBlue},
		{"moving_sale", "MOVING SALE", BadgeGreen},
		{"auction", "AUCTION", BadgePurple},
		{"garage_sale", "GARAGE SALE", BadgeYellow},
		{"flea_market", "FLEA MARKET", BadgeGray},
	}

	for _, tt := range tests {
		badge := SaleTypeBadge(tt.saleType)
		assert.Equal(t, tt.label, badge.Label, tt.saleType)
		assert.Equal(t, tt.color, badge.Color, tt.saleType)
	}
}

func TestPresentCardOwnedRoutesInApp(t *testing.T) {
	saleType := "estate_sale"
	card := PresentCard(&entity.ListingSummary{
		ID:       "42",
		SaleType: &saleType,
	})

	assert.Equal(t, "/sales/42", card.Target)
	assert.False(t, card.NewTab)
	assert.Empty(t, card.Rel)
	assert.NotNil(t, card.Badge)
	assert.Equal(t, "ESTATE SALE", card.Badge.Label)
}

func TestPresentCardScrapedLinksOut(t *testing.T) {
	card := PresentCard(&entity.ListingSummary{
		ID:        "ext-estatesale-finder-99",
		IsScraped: true,
		Source: &entity.Source{
			Name: "EstateSale-Finder.com",
			URL:  "https://www.estatesale-finder.com/viewsale.php?saleid=99",
		},
	})

	assert.Equal(t, "https://www.estatesale-finder.com/viewsale.php?saleid=99", card.Target)
	assert.True(t, card.NewTab)
	assert.Equal(t, "noopener noreferrer", card.Rel)
	assert.Equal(t, "EstateSale-Finder.com", card.SourceName)
	assert.Nil(t, card.Badge)
}

func TestPresentCardScrapedWithoutSourceStaysInApp(t *testing.T) {
	card := PresentCard(&entity.ListingSummary{
		ID:        "ext-7",
		IsScraped: true,
	})

	assert.Equal(t, "/sales/ext-7", card.Target)
	assert.False(t, card.NewTab)
}

func TestPresentCardImageSelection(t *testing.T) {
	t.Run("primary image wins", func(t *testing.T) {
		card := PresentCard(&entity.ListingSummary{
			ID: "1",
			Images: []entity.SummaryImage{
				{ImageURL: "https://img.test/first.jpg"},
				{ImageURL: "https://img.test/primary.jpg", IsPrimary: true},
			},
			ThumbnailURL: "https://img.test/thumb.jpg",
		})

		assert.True(t, card.HasImage)
		assert.Equal(t, "https://img.test/primary.jpg", card.ImageURL)
	})

	t.Run("first image when no primary", func(t *testing.T) {
		card := PresentCard(&entity.ListingSummary{
			ID: "1",
			Images: []entity.SummaryImage{
				{ImageURL: "https://img.test/first.jpg"},
				{ImageURL: "https://img.test/second.jpg"},
			},
		})

		assert.Equal(t, "https://img.test/first.jpg", card.ImageURL)
	})

	t.Run("thumbnail fallback", func(t *testing.T) {
		card := PresentCard(&entity.ListingSummary{
			ID:           "1",
			ThumbnailURL: "https://img.test/thumb.jpg",
		})

		assert.True(t, card.HasImage)
		assert.Equal(t, "https://img.test/thumb.jpg", card.ImageURL)
	})

	t.Run("no image at all", func(t *testing.T) {
		card := PresentCard(&entity.ListingSummary{ID: "1"})

		assert.False(t, card.HasImage)
		assert.Empty(t, card.ImageURL)
	})
}

func TestPresentCardEmptySaleTypeHasNoBadge(t *testing.T) {
	empty := ""
	card := PresentCard(&entity.ListingSummary{ID: "1", SaleType: &empty})
	assert.Nil(t, card.Badge)
}
