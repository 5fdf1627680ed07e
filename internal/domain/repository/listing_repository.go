package repository

import (
	"context"
	"time"

	"estatesalehub/internal/domain/entity"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id int) (*entity.Listing, error)
	List(ctx context.Context, filters entity.ListingFilters) ([]*entity.Listing, int64, error)
	Update(ctx context.Context, listing *entity.Listing) error
	Delete(ctx context.Context, id int) error
	IncrementViews(ctx context.Context, id int) error
	ListBySellerID(ctx context.Context, sellerID int, status string, limit, offset int) ([]*entity.Listing, int64, error)

	UpsertExternal(ctx context.Context, listing *entity.Listing) error
	ListExternal(ctx context.Context, filters entity.ListingFilters) ([]*entity.Listing, error)
	LastScrapedAt(ctx context.Context, locationKey string) (time.Time, error)
	SetLastScrapedAt(ctx context.Context, locationKey string, at time.Time) error
}
