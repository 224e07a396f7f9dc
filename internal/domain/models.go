package domain

import (
	"slices"
)

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// CardID identifies a card by the stem of its image filename.
type CardID string

// Catalog is the immutable, sorted set of cards a deck is built from.
type Catalog struct {
	ids []CardID
}

// NewCatalog sorts and de-duplicates ids. It fails with ErrEmptyCatalog when
// nothing is left.
func NewCatalog(ids []CardID) (Catalog, error) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	if len(sorted) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}
	return Catalog{ids: sorted}, nil
}

func (c Catalog) Len() int { return len(c.ids) }

// IDs returns a copy of the catalog in sorted order.
func (c Catalog) IDs() []CardID { return slices.Clone(c.ids) }

func (c Catalog) Contains(id CardID) bool {
	_, ok := slices.BinarySearch(c.ids, id)
	return ok
}

// DrawnCard is a card placed at a position of a reading.
type DrawnCard struct {
	ID       CardID `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
	Label    string `json:"label,omitempty"`
}
