package scraper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"estatesalehub/internal/domain/entity"
)

func TestParseRow(t *testing.T) {
	s := NewEstateSaleFinderScraper(true)

	scraped := s.parseRow(saleRow{
		ID:           "sale123",
		Title:        "Laurelhurst Estate Sale",
		ViewLink:     "viewsale.php?saleid=123",
		Paragraphs:   []string{"1234 SE Stark St Portland, OR 97214", "Opens 6th Mar", "9:00am to 4:00pm"},
		ThumbnailURL: "https://www.estatesale-finder.com/photos/123.jpg",
	})

	assert.NotNil(t, scraped)
	assert.Equal(t, "estatesale-finder-123", scraped.ExternalID)
	assert.Equal(t, "Laurelhurst Estate Sale", scraped.Title)
	assert.Equal(t, "Portland", scraped.City)
	assert.Equal(t, "OR", scraped.State)
	assert.Equal(t, "97214", scraped.ZipCode)
	assert.Equal(t, "1234 SE Stark St", scraped.Address)
	assert.Equal(t, "https://www.estatesale-finder.com/viewsale.php?saleid=123", scraped.SourceURL)
	assert.Equal(t, sourceName, scraped.SourceName)

	assert.Equal(t, time.March, scraped.StartDate.Month())
	assert.Equal(t, 6, scraped.StartDate.Day())
	assert.True(t, scraped.EndDate.After(scraped.StartDate))
}

func TestParseRowSkipsNonSaleRows(t *testing.T) {
	s := NewEstateSaleFinderScraper(true)
	assert.Nil(t, s.parseRow(saleRow{ID: "adbanner1"}))
}

func TestParseLocation(t *testing.T) {
	t.Run("full address", func(t *testing.T) {
		address, city, zip := parseLocation([]string{"500 NE Alberta St Portland, OR 97211"})
		assert.Equal(t, "500 NE Alberta St", address)
		assert.Equal(t, "Portland", city)
		assert.Equal(t, "97211", zip)
	})

	t.Run("TBA address", func(t *testing.T) {
		address, city, _ := parseLocation([]string{"TBA Beaverton, OR"})
		assert.Equal(t, entity.AddressTBA, address)
		assert.Equal(t, "Beaverton", city)
	})

	t.Run("no location paragraph", func(t *testing.T) {
		address, city, zip := parseLocation([]string{"Antiques and tools"})
		assert.Equal(t, entity.AddressTBA, address)
		assert.Empty(t, city)
		assert.Empty(t, zip)
	})
}

func TestParseOpensDate(t *testing.T) {
	opens := parseOpensDate("Opens 31st Oct 10:00am")
	assert.Equal(t, time.October, opens.Month())
	assert.Equal(t, 31, opens.Day())
	assert.Equal(t, time.Now().Year(), opens.Year())

	assert.True(t, parseOpensDate("3 day sale").IsZero())
	assert.True(t, parseOpensDate("").IsZero())
}

func TestStripOrdinal(t *testing.T) {
	assert.Equal(t, "1", stripOrdinal("1st"))
	assert.Equal(t, "2", stripOrdinal("2nd"))
	assert.Equal(t, "3", stripOrdinal("3rd"))
	assert.Equal(t, "24", stripOrdinal("24th"))
	assert.Equal(t, "first", stripOrdinal("first"))
}
