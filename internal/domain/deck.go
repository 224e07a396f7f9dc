package domain

import (
	"log/slog"
	"slices"
)

// Deck partitions a Catalog into available and used cards for one reading
// session. Cards are shuffled on reset and popped from the end of the
// available slice, so single and batch draws consume the same order.
//
// A Deck is not safe for concurrent use.
type Deck struct {
	catalog   Catalog
	available []CardID
	used      []CardID
	rng       RNG
	logger    *slog.Logger
}

// NewDeck builds a deck over catalog and shuffles it. A nil logger falls back
// to slog.Default().
func NewDeck(catalog Catalog, rng RNG, logger *slog.Logger) (*Deck, error) {
	if catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	if logger == nil {
		logger = slog.Default()
	}
	d := &Deck{
		catalog: catalog,
		rng:     rng,
		logger:  logger,
	}
	d.Reset()
	return d, nil
}

// Reset returns every card to the deck in a fresh random order.
func (d *Deck) Reset() {
	d.reset(d.rng)
}

// ResetSeeded is Reset with a reproducible permutation for seed. The deck's
// own RNG is left untouched.
func (d *Deck) ResetSeeded(seed uint64) {
	d.reset(NewSeededRNG(seed))
}

func (d *Deck) reset(rng RNG) {
	d.available = d.catalog.IDs()
	d.used = make([]CardID, 0, len(d.available))
	shuffle(d.available, rng)
}

// DrawOne takes the next card. It reports false once the deck is exhausted.
func (d *Deck) DrawOne() (CardID, bool) {
	n := len(d.available)
	if n == 0 {
		d.logger.Warn("deck exhausted", "total", d.catalog.Len())
		return "", false
	}
	card := d.available[n-1]
	d.available = d.available[:n-1]
	d.used = append(d.used, card)
	return card, true
}

// DrawMany draws up to count cards in draw order. Requests beyond the
// remaining cards are clamped; count <= 0 draws nothing.
func (d *Deck) DrawMany(count int) []CardID {
	if count <= 0 {
		return []CardID{}
	}
	if remaining := len(d.available); count > remaining {
		d.logger.Warn("requested more cards than remain, clamping",
			"requested", count,
			"remaining", remaining,
		)
		count = remaining
	}
	cards := make([]CardID, 0, count)
	for range count {
		card, ok := d.DrawOne()
		if !ok {
			break
		}
		cards = append(cards, card)
	}
	return cards
}

func (d *Deck) Remaining() int { return len(d.available) }

func (d *Deck) Used() int { return len(d.used) }

func (d *Deck) Total() int { return d.catalog.Len() }

// UsedCards returns the cards drawn since the last reset, in draw order.
func (d *Deck) UsedCards() []CardID { return slices.Clone(d.used) }

// NameOf returns the display name of a card, which is its filename stem.
func (d *Deck) NameOf(id CardID) string { return string(id) }
