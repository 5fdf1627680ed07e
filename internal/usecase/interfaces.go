package usecase

import (
	"context"

	"estatesalehub/internal/domain/entity"
)

type FirebaseAuthClient interface {
	VerifyToken(ctx context.Context, token string) (string, error)
	GetUserEmail(ctx context.Context, uid string) (string, error)
}

// ListingCatalog is the sales feed the discovery engine queries.
type ListingCatalog interface {
	ListSales(ctx context.Context, filters entity.ListingFilters) ([]*entity.ListingSummary, error)
	GetSale(ctx context.Context, id int) (*entity.Listing, error)
}

// ScrapeManager keeps external listings for a location fresh in the store.
type ScrapeManager interface {
	EnsureFresh(ctx context.Context, city, state string) error
}
