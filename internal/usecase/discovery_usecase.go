package usecase

import (
	"context"
	"strings"

	"estatesalehub/internal/domain/entity"
)

const defaultSearchLimit = 20

// SearchInput is the raw form state a browse view submits.
type SearchInput struct {
	City         string
	State        string
	SaleType     string
	FeaturedOnly bool
	Limit        int
	Query        string
}

// DiscoveryUseCase fetches listings from a catalog for browse and detail
// views. It holds no state; sessions layer the view lifecycle on top.
type DiscoveryUseCase struct {
	catalog ListingCatalog
}

func NewDiscoveryUseCase(catalog ListingCatalog) *DiscoveryUseCase {
	return &DiscoveryUseCase{
		catalog: catalog,
	}
}

// BuildCriteria normalizes raw search input into catalog filters plus the
// free-text token that is applied locally, never sent to the catalog.
func BuildCriteria(input SearchInput) (entity.ListingFilters, string) {
	filters := entity.ListingFilters{
		City:     strings.TrimSpace(input.City),
		State:    strings.ToUpper(strings.TrimSpace(input.State)),
		SaleType: strings.TrimSpace(input.SaleType),
		Limit:    input.Limit,
	}

	if input.FeaturedOnly {
		featured := true
		filters.Featured = &featured
	}
	if filters.Limit <= 0 {
		filters.Limit = defaultSearchLimit
	}

	return filters, strings.TrimSpace(input.Query)
}

// Refine narrows an already fetched page by a free-text token, matching
// case-insensitively against title, city, state and description. An empty
// token returns the input untouched.
func Refine(listings []*entity.ListingSummary, token string) []*entity.ListingSummary {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return listings
	}

	matched := make([]*entity.ListingSummary, 0, len(listings))
	for _, s := range listings {
		if containsFold(s.Title, token) ||
			containsFold(s.City, token) ||
			containsFold(s.State, token) ||
			containsFold(s.Description, token) {
			matched = append(matched, s)
		}
	}

	return matched
}

func containsFold(s, lowered string) bool {
	return strings.Contains(strings.ToLower(s), lowered)
}

func (uc *DiscoveryUseCase) FetchSales(ctx context.Context, filters entity.ListingFilters) ([]*entity.ListingSummary, error) {
	return uc.catalog.ListSales(ctx, filters)
}

func (uc *DiscoveryUseCase) FetchSale(ctx context.Context, id int) (*entity.Listing, error) {
	return uc.catalog.GetSale(ctx, id)
}
