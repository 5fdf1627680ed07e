package repository

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"estatesalehub/internal/domain/entity"
	"estatesalehub/internal/domain/repository"
	"estatesalehub/pkg/errors"
)

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

// nextListingID allocates a sequential numeric id from a counter document.
// Firestore has no autoincrement, so the counter is bumped in a transaction.
func (r *firestoreListingRepository) nextListingID(ctx context.Context) (int, error) {
	ref := r.client.Collection("counters").Doc("listings")

	var next int
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		current := int64(0)
		if doc != nil && doc.Exists() {
			value, err := doc.DataAt("value")
			if err != nil {
				return err
			}
			if v, ok := value.(int64); ok {
				current = v
			}
		}

		next = int(current) + 1
		return tx.Set(ref, map[string]interface{}{"value": int64(next)})
	})
	if err != nil {
		return 0, errors.Internal("Failed to allocate listing id", err)
	}

	return next, nil
}

func (r *firestoreListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == 0 {
		id, err := r.nextListingID(ctx)
		if err != nil {
			return err
		}
		listing.ID = id
	}

	now := time.Now()
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = now
	}
	listing.UpdatedAt = now

	_, err := r.client.Collection("listings").Doc(strconv.Itoa(listing.ID)).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, id int) (*entity.Listing, error) {
	doc, err := r.client.Collection("listings").Doc(strconv.Itoa(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Listing", err)
		}
		return nil, errors.Internal("Failed to get listing", err)
	}

	var listing entity.Listing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse listing data", err)
	}

	return &listing, nil
}

func (r *firestoreListingRepository) List(ctx context.Context, filters entity.ListingFilters) ([]*entity.Listing, int64, error) {
	query := r.client.Collection("listings").Query.Where("listingType", "==", entity.ListingTypeOwned)
	query = applyListingFilters(query, filters)

	// City needs a case-insensitive contains match, which Firestore cannot
	// do server-side. Fetch the filtered set and narrow it here.
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list listings", err)
	}

	matched := filterByCity(docs, filters.City)
	total := int64(len(matched))

	sortByStartDateDesc(matched)

	return paginate(matched, filters.Limit, filters.Offset), total, nil
}

func (r *firestoreListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listing.UpdatedAt = time.Now()

	_, err := r.client.Collection("listings").Doc(strconv.Itoa(listing.ID)).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to update listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) Delete(ctx context.Context, id int) error {
	_, err := r.client.Collection("listings").Doc(strconv.Itoa(id)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) IncrementViews(ctx context.Context, id int) error {
	_, err := r.client.Collection("listings").Doc(strconv.Itoa(id)).Update(ctx, []firestore.Update{
		{Path: "viewCount", Value: firestore.Increment(1)},
	})
	if err != nil {
		return errors.Internal("Failed to increment listing views", err)
	}

	return nil
}

func (r *firestoreListingRepository) ListBySellerID(ctx context.Context, sellerID int, status string, limit, offset int) ([]*entity.Listing, int64, error) {
	query := r.client.Collection("listings").Query.Where("sellerId", "==", sellerID)

	if status != "" {
		query = query.Where("status", "==", status)
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count seller listings", err)
	}
	total := int64(len(allDocs))

	query = query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var listings []*entity.Listing

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate seller listings", err)
		}

		var listing entity.Listing
		if err := doc.DataTo(&listing); err != nil {
			return nil, 0, errors.Internal("Failed to parse listing data", err)
		}
		listings = append(listings, &listing)
	}

	return listings, total, nil
}

// UpsertExternal writes a scraped listing keyed by its external id, so a
// re-scrape of the same sale replaces the earlier row instead of duplicating it.
func (r *firestoreListingRepository) UpsertExternal(ctx context.Context, listing *entity.Listing) error {
	if listing.ExternalID == nil || *listing.ExternalID == "" {
		return errors.BadRequest("External listing requires an external id", nil)
	}

	doc := r.client.Collection("listings").Doc("ext-" + *listing.ExternalID)

	existing, err := doc.Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return errors.Internal("Failed to read external listing", err)
	}

	if existing != nil && existing.Exists() {
		var prev entity.Listing
		if err := existing.DataTo(&prev); err == nil {
			listing.ID = prev.ID
			listing.CreatedAt = prev.CreatedAt
			listing.ViewCount = prev.ViewCount
		}
	}
	if listing.ID == 0 {
		id, err := r.nextListingID(ctx)
		if err != nil {
			return err
		}
		listing.ID = id
	}
	listing.UpdatedAt = time.Now()

	if _, err := doc.Set(ctx, listing); err != nil {
		return errors.Internal("Failed to upsert external listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) ListExternal(ctx context.Context, filters entity.ListingFilters) ([]*entity.Listing, error) {
	query := r.client.Collection("listings").Query.Where("listingType", "==", entity.ListingTypeExternal)

	if filters.State != "" {
		query = query.Where("state", "==", filters.State)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list external listings", err)
	}

	matched := filterByCity(docs, filters.City)
	sortByStartDateDesc(matched)

	return matched, nil
}

func (r *firestoreListingRepository) LastScrapedAt(ctx context.Context, locationKey string) (time.Time, error) {
	doc, err := r.client.Collection("scrapeMeta").Doc(locationKey).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return time.Time{}, nil
		}
		return time.Time{}, errors.Internal("Failed to read scrape metadata", err)
	}

	value, err := doc.DataAt("lastScrapedAt")
	if err != nil {
		return time.Time{}, nil
	}
	if at, ok := value.(time.Time); ok {
		return at, nil
	}

	return time.Time{}, nil
}

func (r *firestoreListingRepository) SetLastScrapedAt(ctx context.Context, locationKey string, at time.Time) error {
	_, err := r.client.Collection("scrapeMeta").Doc(locationKey).Set(ctx, map[string]interface{}{
		"lastScrapedAt": at,
	})
	if err != nil {
		return errors.Internal("Failed to write scrape metadata", err)
	}

	return nil
}

func applyListingFilters(query firestore.Query, filters entity.ListingFilters) firestore.Query {
	if filters.State != "" {
		query = query.Where("state", "==", filters.State)
	}
	if filters.ZipCode != "" {
		query = query.Where("zipCode", "==", filters.ZipCode)
	}
	if filters.SaleType != "" {
		query = query.Where("saleType", "==", filters.SaleType)
	}
	if filters.Status != "" {
		query = query.Where("status", "==", filters.Status)
	}
	if filters.Featured != nil {
		query = query.Where("featured", "==", *filters.Featured)
	}
	if filters.StartDate != nil {
		query = query.Where("startDate", ">=", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("endDate", "<=", *filters.EndDate)
	}

	return query
}

func filterByCity(docs []*firestore.DocumentSnapshot, city string) []*entity.Listing {
	city = strings.ToLower(city)

	var matched []*entity.Listing
	for _, doc := range docs {
		var listing entity.Listing
		if err := doc.DataTo(&listing); err != nil {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(listing.City), city) {
			continue
		}
		matched = append(matched, &listing)
	}

	return matched
}

func sortByStartDateDesc(listings []*entity.Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].StartDate.After(listings[j].StartDate)
	})
}

func paginate(listings []*entity.Listing, limit, offset int) []*entity.Listing {
	if offset >= len(listings) {
		return []*entity.Listing{}
	}
	listings = listings[offset:]
	if limit > 0 && limit < len(listings) {
		listings = listings[:limit]
	}

	return listings
}
