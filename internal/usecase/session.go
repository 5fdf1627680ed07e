package usecase

import (
	"context"
	"sync"

	"estatesalehub/internal/domain/entity"
	"estatesalehub/pkg/errors"
)

// BrowseSession is the lifecycle of one browse view. Each search bumps a
// sequence number; a completion only lands if its number still matches, so
// a slow earlier response can never overwrite a newer one.
type BrowseSession struct {
	mu        sync.Mutex
	discovery *DiscoveryUseCase

	seq     uint64
	loading bool
	err     error

	listings []*entity.ListingSummary
	token    string
	visible  []*entity.ListingSummary
}

func NewBrowseSession(discovery *DiscoveryUseCase) *BrowseSession {
	return &BrowseSession{
		discovery: discovery,
	}
}

func (s *BrowseSession) Search(ctx context.Context, input SearchInput) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.loading = true
	filters, token := BuildCriteria(input)
	s.mu.Unlock()

	listings, err := s.discovery.FetchSales(ctx, filters)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		// A newer search superseded this one; drop the result.
		return nil
	}

	s.loading = false
	if err != nil {
		s.err = err
		s.listings = nil
		s.visible = nil
		return err
	}

	s.err = nil
	s.listings = listings
	s.token = token
	s.visible = Refine(listings, token)

	return nil
}

// SetQuery re-applies the local refinement without another fetch.
func (s *BrowseSession) SetQuery(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.visible = Refine(s.listings, token)
}

func (s *BrowseSession) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *BrowseSession) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Visible returns the refined page currently in view.
func (s *BrowseSession) Visible() []*entity.ListingSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Cards presents the visible page for rendering.
func (s *BrowseSession) Cards() []CardPresentation {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := make([]CardPresentation, len(s.visible))
	for i, summary := range s.visible {
		cards[i] = PresentCard(summary)
	}
	return cards
}

// DetailSession is the lifecycle of one detail view, with the same
// stale-response guard as BrowseSession. The gallery position survives a
// reload of the same listing but resets when the listing changes.
type DetailSession struct {
	mu        sync.Mutex
	discovery *DiscoveryUseCase

	seq     uint64
	loading bool

	listingID int
	view      *DetailView
	gallery   Gallery
	notFound  bool
	err       error
}

func NewDetailSession(discovery *DiscoveryUseCase) *DetailSession {
	return &DetailSession{
		discovery: discovery,
	}
}

func (s *DetailSession) Load(ctx context.Context, id int) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.loading = true
	s.mu.Unlock()

	listing, err := s.discovery.FetchSale(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return nil
	}

	s.loading = false
	if err != nil {
		s.view = nil
		s.notFound = errors.Is(err, "NOT_FOUND")
		s.err = err
		return err
	}

	s.err = nil
	s.notFound = false

	view := AssembleDetail(listing)
	s.view = &view

	if listing.ID != s.listingID {
		s.gallery.Load(listing.ID, listing.Images)
		s.listingID = listing.ID
	}

	return nil
}

func (s *DetailSession) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// NotFound reports whether the last load missed, so the view can offer
// "browse all sales" instead of a retry.
func (s *DetailSession) NotFound() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notFound
}

func (s *DetailSession) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *DetailSession) View() *DetailView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *DetailSession) Gallery() *Gallery {
	return &s.gallery
}
