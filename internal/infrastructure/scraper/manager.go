package scraper

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"estatesalehub/internal/domain/entity"
	"estatesalehub/internal/domain/repository"
	"estatesalehub/pkg/logger"
)

// SaleScraper fetches external sales for a location.
type SaleScraper interface {
	Scrape(ctx context.Context, city, state string) ([]entity.ScrapedListing, error)
}

// Manager runs scrapes behind a freshness window and deduplicates
// concurrent requests for the same location, so a burst of feed reads
// triggers at most one scrape.
type Manager struct {
	scraper  SaleScraper
	repo     repository.ListingRepository
	ttl      time.Duration
	inFlight sync.Map
}

func NewManager(scraper SaleScraper, repo repository.ListingRepository, ttl time.Duration) *Manager {
	return &Manager{
		scraper: scraper,
		repo:    repo,
		ttl:     ttl,
	}
}

type scrapeResult struct {
	err error
}

func (m *Manager) EnsureFresh(ctx context.Context, city, state string) error {
	key := locationKey(city, state)

	lastScraped, err := m.repo.LastScrapedAt(ctx, key)
	if err != nil {
		logger.Warn("Failed to check last scrape time for %s: %v", key, err)
	} else if !lastScraped.IsZero() && time.Since(lastScraped) < m.ttl {
		return nil
	}

	ch := make(chan scrapeResult, 1)
	if existing, loaded := m.inFlight.LoadOrStore(key, ch); loaded {
		logger.Debug("Scrape in progress for %s, waiting", key)
		result := <-existing.(chan scrapeResult)
		return result.err
	}

	err = m.scrape(ctx, key, city, state)

	ch <- scrapeResult{err: err}
	close(ch)
	m.inFlight.Delete(key)

	return err
}

func (m *Manager) scrape(ctx context.Context, key, city, state string) error {
	sales, err := m.scraper.Scrape(ctx, city, state)
	if err != nil {
		logger.LogScrapeError(key, "fetch", err)
		return err
	}

	for _, scraped := range sales {
		listing := scraped.ToListing()
		if err := m.repo.UpsertExternal(ctx, &listing); err != nil {
			logger.LogScrapeError(key, "persist", err)
		}
	}

	if err := m.repo.SetLastScrapedAt(ctx, key, time.Now()); err != nil {
		logger.LogScrapeError(key, "mark", err)
	}

	logger.Info("Persisted %d scraped sales for %s", len(sales), key)
	return nil
}

func locationKey(city, state string) string {
	return fmt.Sprintf("%s:%s", strings.ToLower(city), strings.ToUpper(state))
}
