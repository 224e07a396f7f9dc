package ports

import (
	"context"

	"github.com/randomtoy/tarot-deck/internal/domain"
)

// CatalogSource discovers the cards a deck is built from.
type CatalogSource interface {
	Load(ctx context.Context) (domain.Catalog, error)
}
