package usecase

import (
	"sort"

	"estatesalehub/internal/domain/entity"
)

// Gallery tracks which image of a listing is in view. Navigation wraps
// around and is a no-op for galleries of one image or fewer.
type Gallery struct {
	listingID int
	images    []entity.ListingImage
	index     int
}

// Load replaces the gallery contents. Primary images sort to the front
// (input order preserved between them), the rest follow by display order.
func (g *Gallery) Load(listingID int, images []entity.ListingImage) {
	sorted := make([]entity.ListingImage, len(images))
	copy(sorted, images)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.IsPrimary || b.IsPrimary {
			return a.IsPrimary && !b.IsPrimary
		}
		return a.DisplayOrder < b.DisplayOrder
	})

	g.listingID = listingID
	g.images = sorted
	g.index = 0
}

func (g *Gallery) Next() {
	if len(g.images) <= 1 {
		return
	}
	g.index = (g.index + 1) % len(g.images)
}

func (g *Gallery) Prev() {
	if len(g.images) <= 1 {
		return
	}
	g.index = (g.index - 1 + len(g.images)) % len(g.images)
}

// Select jumps to an image by position. Out-of-range values are ignored.
func (g *Gallery) Select(i int) {
	if i < 0 || i >= len(g.images) {
		return
	}
	g.index = i
}

func (g *Gallery) Current() (entity.ListingImage, bool) {
	if len(g.images) == 0 {
		return entity.ListingImage{}, false
	}
	return g.images[g.index], true
}

func (g *Gallery) Index() int {
	return g.index
}

func (g *Gallery) Len() int {
	return len(g.images)
}

func (g *Gallery) ListingID() int {
	return g.listingID
}

func (g *Gallery) Images() []entity.ListingImage {
	return g.images
}
