package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/randomtoy/tarot-deck/internal/domain"
	"github.com/randomtoy/tarot-deck/internal/ports"
)

// DrawRequest is the application-level input for a reading (no HTTP types).
type DrawRequest struct {
	Layout string
	// Count is only read for the custom layout.
	Count int
}

// Reading is a layout filled with drawn cards. Short is set when the deck ran
// out before every position was filled.
type Reading struct {
	Layout    domain.Layout
	Cards     []domain.DrawnCard
	Requested int
	Short     bool
	Remaining int
}

// Status reports the deck counters for the current reading session.
type Status struct {
	Total     int
	Remaining int
	Used      int
	UsedCards []domain.CardID
}

// ReadingService serializes access to a single deck.
type ReadingService struct {
	mu     sync.Mutex
	deck   *domain.Deck
	logger *slog.Logger
}

// NewReadingService loads the catalog from source and builds a freshly
// shuffled deck over it.
func NewReadingService(ctx context.Context, source ports.CatalogSource, rng domain.RNG, logger *slog.Logger) (*ReadingService, error) {
	if logger == nil {
		logger = slog.Default()
	}
	catalog, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	deck, err := domain.NewDeck(catalog, rng, logger)
	if err != nil {
		return nil, fmt.Errorf("new deck: %w", err)
	}
	return &ReadingService{deck: deck, logger: logger}, nil
}

// Draw fills the requested layout. Running out of cards is not an error: the
// reading comes back with fewer cards and Short set.
func (s *ReadingService) Draw(ctx context.Context, req DrawRequest) (Reading, error) {
	layout, err := domain.LookupLayout(req.Layout, req.Count)
	if err != nil {
		return Reading{}, err
	}

	s.mu.Lock()
	ids := s.deck.DrawMany(layout.Count)
	cards := make([]domain.DrawnCard, len(ids))
	for i, id := range ids {
		cards[i] = domain.DrawnCard{
			ID:       id,
			Name:     s.deck.NameOf(id),
			Position: i + 1,
			Label:    layout.Positions[i],
		}
	}
	remaining := s.deck.Remaining()
	s.mu.Unlock()

	r := Reading{
		Layout:    layout,
		Cards:     cards,
		Requested: layout.Count,
		Short:     len(cards) < layout.Count,
		Remaining: remaining,
	}
	if r.Short {
		s.logger.WarnContext(ctx, "short reading",
			"layout", layout.Key,
			"requested", layout.Count,
			"drawn", len(cards),
		)
	}
	return r, nil
}

// DrawCards draws up to n cards without a layout. Positions are 1-based.
func (s *ReadingService) DrawCards(_ context.Context, n int) []domain.DrawnCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.deck.DrawMany(n)
	cards := make([]domain.DrawnCard, len(ids))
	for i, id := range ids {
		cards[i] = domain.DrawnCard{ID: id, Name: s.deck.NameOf(id), Position: i + 1}
	}
	return cards
}

// DrawOne draws a single card, reporting false when the deck is exhausted.
func (s *ReadingService) DrawOne(_ context.Context) (domain.DrawnCard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.deck.DrawOne()
	if !ok {
		return domain.DrawnCard{}, false
	}
	return domain.DrawnCard{ID: id, Name: s.deck.NameOf(id), Position: 1}, true
}

// Reset starts a new reading session. A non-nil seed makes the shuffle
// reproducible.
func (s *ReadingService) Reset(ctx context.Context, seed *uint64) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seed != nil {
		s.deck.ResetSeeded(*seed)
		s.logger.InfoContext(ctx, "deck reset", "seed", *seed)
	} else {
		s.deck.Reset()
		s.logger.InfoContext(ctx, "deck reset")
	}
	return s.status()
}

func (s *ReadingService) Status(_ context.Context) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status()
}

func (s *ReadingService) status() Status {
	return Status{
		Total:     s.deck.Total(),
		Remaining: s.deck.Remaining(),
		Used:      s.deck.Used(),
		UsedCards: s.deck.UsedCards(),
	}
}

// Layouts lists the available layouts.
func (s *ReadingService) Layouts() []domain.Layout {
	return domain.Layouts()
}
