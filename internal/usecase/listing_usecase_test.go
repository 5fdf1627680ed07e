package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"estatesalehub/internal/domain/entity"
	"estatesalehub/pkg/errors"
)

// fakeListingRepo is an in-memory repository good enough for usecase tests.
type fakeListingRepo struct {
	listings map[int]*entity.Listing
	nextID   int

	listErr     error
	externalErr error
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{
		listings: make(map[int]*entity.Listing),
		nextID:   1,
	}
}

func (r *fakeListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	listing.ID = r.nextID
	r.nextID++
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id int) (*entity.Listing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	return listing, nil
}

func (r *fakeListingRepo) List(ctx context.Context, filters entity.ListingFilters) ([]*entity.Listing, int64, error) {
	if r.listErr != nil {
		return nil, 0, r.listErr
	}

	var out []*entity.Listing
	for _, l := range r.listings {
		if !l.IsOwned() {
			continue
		}
		if filters.Status != "" && l.Status != filters.Status {
			continue
		}
		if filters.State != "" && l.State != filters.State {
			continue
		}
		if filters.City != "" && !strings.Contains(strings.ToLower(l.City), strings.ToLower(filters.City)) {
			continue
		}
		if filters.SaleType != "" && l.SaleType != filters.SaleType {
			continue
		}
		if filters.Featured != nil && l.Featured != *filters.Featured {
			continue
		}
		out = append(out, l)
	}
	return out, int64(len(out)), nil
}

func (r *fakeListingRepo) Update(ctx context.Context, listing *entity.Listing) error {
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id int) error {
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) IncrementViews(ctx context.Context, id int) error {
	if l, ok := r.listings[id]; ok {
		l.ViewCount++
	}
	return nil
}

func (r *fakeListingRepo) ListBySellerID(ctx context.Context, sellerID int, status string, limit, offset int) ([]*entity.Listing, int64, error) {
	var out []*entity.Listing
	for _, l := range r.listings {
		if l.SellerID == nil || *l.SellerID != sellerID {
			continue
		}
		if status != "" && l.Status != status {
			continue
		}
		out = append(out, l)
	}
	return out, int64(len(out)), nil
}

func (r *fakeListingRepo) UpsertExternal(ctx context.Context, listing *entity.Listing) error {
	listing.ID = r.nextID
	r.nextID++
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) ListExternal(ctx context.Context, filters entity.ListingFilters) ([]*entity.Listing, error) {
	if r.externalErr != nil {
		return nil, r.externalErr
	}

	var out []*entity.Listing
	for _, l := range r.listings {
		if l.IsExternal() {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) LastScrapedAt(ctx context.Context, locationKey string) (time.Time, error) {
	return time.Time{}, nil
}

func (r *fakeListingRepo) SetLastScrapedAt(ctx context.Context, locationKey string, at time.Time) error {
	return nil
}

type fakeScrapeManager struct {
	calls int
	err   error
}

func (m *fakeScrapeManager) EnsureFresh(ctx context.Context, city, state string) error {
	m.calls++
	return m.err
}

func ownedListing(id, sellerID int, status string, start time.Time) *entity.Listing {
	return &entity.Listing{
		ID:          id,
		ListingType: entity.ListingTypeOwned,
		SellerID:    &sellerID,
		Title:       "Owned Sale",
		City:        "Portland",
		State:       "OR",
		SaleType:    "estate_sale",
		Status:      status,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 1),
	}
}

func externalListing(id int, start time.Time) *entity.Listing {
	extID := "estatesale-finder-9"
	source := "EstateSale-Finder.com"
	url := "https://www.estatesale-finder.com/viewsale.php?saleid=9"
	return &entity.Listing{
		ID:             id,
		ListingType:    entity.ListingTypeExternal,
		ExternalID:     &extID,
		ExternalSource: &source,
		ExternalURL:    &url,
		Title:          "Scraped Sale",
		City:           "Portland",
		State:          "OR",
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, 1),
	}
}

func TestGetAggregatedSalesMergesAndSorts(t *testing.T) {
	repo := newFakeListingRepo()
	now := time.Now()
	repo.listings[1] = ownedListing(1, 5, "published", now.AddDate(0, 0, 1))
	repo.listings[2] = ownedListing(2, 5, "draft", now.AddDate(0, 0, 5))
	repo.listings[3] = externalListing(3, now.AddDate(0, 0, 3))

	scrapes := &fakeScrapeManager{}
	uc := NewListingUseCase(repo, nil, scrapes)

	sales, err := uc.GetAggregatedSales(context.Background(), entity.ListingFilters{City: "Portland", State: "OR"})

	assert.NoError(t, err)
	assert.Equal(t, 1, scrapes.calls)
	assert.Len(t, sales, 2, "drafts stay out of the feed")

	// Newest start date first, so the scraped sale leads.
	assert.True(t, sales[0].IsScraped)
	assert.Equal(t, "Scraped Sale", sales[0].Title)
	assert.False(t, sales[1].IsScraped)
}

func TestGetAggregatedSalesScrapeFailureDegrades(t *testing.T) {
	repo := newFakeListingRepo()
	repo.listings[1] = ownedListing(1, 5, "published", time.Now())

	scrapes := &fakeScrapeManager{err: assert.AnError}
	uc := NewListingUseCase(repo, nil, scrapes)

	sales, err := uc.GetAggregatedSales(context.Background(), entity.ListingFilters{})

	assert.NoError(t, err)
	assert.Len(t, sales, 1)
}

func TestGetAggregatedSalesSaleTypeFilterExcludesScraped(t *testing.T) {
	repo := newFakeListingRepo()
	now := time.Now()
	repo.listings[1] = ownedListing(1, 5, "published", now)
	repo.listings[2] = externalListing(2, now)

	uc := NewListingUseCase(repo, nil, &fakeScrapeManager{})

	sales, err := uc.GetAggregatedSales(context.Background(), entity.ListingFilters{SaleType: "estate_sale"})

	assert.NoError(t, err)
	assert.Len(t, sales, 1)
	assert.False(t, sales[0].IsScraped)
}

func TestGetAggregatedSalesLimitAndOffset(t *testing.T) {
	repo := newFakeListingRepo()
	now := time.Now()
	for i := 1; i <= 5; i++ {
		repo.listings[i] = ownedListing(i, 5, "published", now.AddDate(0, 0, i))
	}

	uc := NewListingUseCase(repo, nil, &fakeScrapeManager{})

	sales, err := uc.GetAggregatedSales(context.Background(), entity.ListingFilters{Limit: 2})
	assert.NoError(t, err)
	assert.Len(t, sales, 2)

	sales, err = uc.GetAggregatedSales(context.Background(), entity.ListingFilters{Offset: 10})
	assert.NoError(t, err)
	assert.Empty(t, sales)
}

func TestCreateListingValidatesDates(t *testing.T) {
	repo := newFakeListingRepo()
	uc := NewListingUseCase(repo, nil, nil)

	start := time.Now()
	_, err := uc.CreateListing(context.Background(), 5, CreateListingInput{
		Title:     "Backwards Sale",
		City:      "Portland",
		State:     "OR",
		StartDate: start,
		EndDate:   start.Add(-time.Hour),
	}, nil)

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateListingDefaults(t *testing.T) {
	repo := newFakeListingRepo()
	uc := NewListingUseCase(repo, nil, nil)

	start := time.Now()
	listing, err := uc.CreateListing(context.Background(), 5, CreateListingInput{
		Title:     "Estate Sale",
		City:      "Portland",
		State:     "OR",
		StartDate: start,
		EndDate:   start.Add(6 * time.Hour),
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, entity.ListingTypeOwned, listing.ListingType)
	assert.Equal(t, "estate_sale", listing.SaleType)
	assert.Equal(t, "draft", listing.Status)
	assert.NotNil(t, listing.SellerID)
	assert.Equal(t, 5, *listing.SellerID)
}

func TestUpdateListingChecksOwnership(t *testing.T) {
	repo := newFakeListingRepo()
	now := time.Now()
	repo.listings[1] = ownedListing(1, 5, "published", now)

	uc := NewListingUseCase(repo, nil, nil)

	_, err := uc.UpdateListing(context.Background(), 1, 99, CreateListingInput{
		Title:     "Hijacked",
		City:      "Portland",
		State:     "OR",
		StartDate: now,
		EndDate:   now.Add(time.Hour),
	}, nil)

	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestDeleteListingChecksOwnership(t *testing.T) {
	repo := newFakeListingRepo()
	repo.listings[1] = ownedListing(1, 5, "published", time.Now())

	uc := NewListingUseCase(repo, nil, nil)

	assert.True(t, errors.Is(uc.DeleteListing(context.Background(), 1, 99), "FORBIDDEN"))
	assert.NoError(t, uc.DeleteListing(context.Background(), 1, 5))
	_, err := repo.GetByID(context.Background(), 1)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestGetListingByIDHidesUnpublishedOwned(t *testing.T) {
	repo := newFakeListingRepo()
	repo.listings[1] = ownedListing(1, 5, "draft", time.Now())

	uc := NewListingUseCase(repo, nil, nil)

	_, err := uc.GetListingByID(context.Background(), 1)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
