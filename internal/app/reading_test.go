package app_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/tarot-deck/internal/app"
	"github.com/randomtoy/tarot-deck/internal/domain"
)

type mockCatalogSource struct {
	ids []domain.CardID
	err error
}

func (m *mockCatalogSource) Load(_ context.Context) (domain.Catalog, error) {
	if m.err != nil {
		return domain.Catalog{}, m.err
	}
	return domain.NewCatalog(m.ids)
}

// fixedRNG always returns the last index, leaving the catalog order intact.
type fixedRNG struct{}

func (fixedRNG) Intn(n int) int { return n - 1 }

func testIDs(n int) []domain.CardID {
	ids := make([]domain.CardID, n)
	for i := range n {
		ids[i] = domain.CardID("card_" + string(rune('a'+i)))
	}
	return ids
}

func newService(t *testing.T, n int) *app.ReadingService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := app.NewReadingService(context.Background(), &mockCatalogSource{ids: testIDs(n)}, fixedRNG{}, logger)
	require.NoError(t, err)
	return svc
}

func TestNewReadingService_LoadError(t *testing.T) {
	src := &mockCatalogSource{err: domain.ErrCatalogNotFound}

	_, err := app.NewReadingService(context.Background(), src, fixedRNG{}, nil)
	assert.ErrorIs(t, err, domain.ErrCatalogNotFound)
}

func TestNewReadingService_EmptyCatalog(t *testing.T) {
	_, err := app.NewReadingService(context.Background(), &mockCatalogSource{}, fixedRNG{}, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyCatalog)
}

func TestDraw_ThreeCard(t *testing.T) {
	svc := newService(t, 22)

	r, err := svc.Draw(context.Background(), app.DrawRequest{Layout: domain.LayoutThreeCard})
	require.NoError(t, err)

	require.Len(t, r.Cards, 3)
	assert.False(t, r.Short)
	assert.Equal(t, 3, r.Requested)
	assert.Equal(t, 19, r.Remaining)

	wantLabels := []string{"Past", "Present", "Future"}
	wantIDs := []domain.CardID{"card_v", "card_u", "card_t"}
	for i, c := range r.Cards {
		assert.Equal(t, i+1, c.Position)
		assert.Equal(t, wantLabels[i], c.Label)
		assert.Equal(t, wantIDs[i], c.ID)
		assert.Equal(t, string(wantIDs[i]), c.Name)
	}
}

func TestDraw_ShortReading(t *testing.T) {
	svc := newService(t, 5)

	r, err := svc.Draw(context.Background(), app.DrawRequest{Layout: domain.LayoutRelationship})
	require.NoError(t, err)

	assert.True(t, r.Short)
	assert.Len(t, r.Cards, 5)
	assert.Equal(t, 7, r.Requested)
	assert.Equal(t, 0, r.Remaining)
	assert.Equal(t, "Outcome", r.Layout.Positions[6])
	assert.Equal(t, "Potential", r.Layout.Positions[5])
}

func TestDraw_Custom(t *testing.T) {
	svc := newService(t, 22)

	r, err := svc.Draw(context.Background(), app.DrawRequest{Layout: domain.LayoutCustom, Count: 4})
	require.NoError(t, err)
	require.Len(t, r.Cards, 4)
	assert.Equal(t, "Position 4", r.Cards[3].Label)
}

func TestDraw_UnknownLayout(t *testing.T) {
	svc := newService(t, 22)

	_, err := svc.Draw(context.Background(), app.DrawRequest{Layout: "nope"})
	assert.True(t, errors.Is(err, domain.ErrLayoutNotFound))
	assert.Equal(t, 22, svc.Status(context.Background()).Remaining)
}

func TestDrawOne_Exhaustion(t *testing.T) {
	svc := newService(t, 2)
	ctx := context.Background()

	_, ok := svc.DrawOne(ctx)
	require.True(t, ok)
	_, ok = svc.DrawOne(ctx)
	require.True(t, ok)
	_, ok = svc.DrawOne(ctx)
	assert.False(t, ok)
}

func TestDrawCards_Clamps(t *testing.T) {
	svc := newService(t, 3)

	cards := svc.DrawCards(context.Background(), 10)
	assert.Len(t, cards, 3)
	assert.Empty(t, svc.DrawCards(context.Background(), 1))
}

func TestReset(t *testing.T) {
	svc := newService(t, 10)
	ctx := context.Background()

	_, err := svc.Draw(ctx, app.DrawRequest{Layout: domain.LayoutThreeCard})
	require.NoError(t, err)

	st := svc.Status(ctx)
	assert.Equal(t, app.Status{
		Total:     10,
		Remaining: 7,
		Used:      3,
		UsedCards: []domain.CardID{"card_j", "card_i", "card_h"},
	}, st)

	st = svc.Reset(ctx, nil)
	assert.Equal(t, 10, st.Remaining)
	assert.Equal(t, 0, st.Used)
	assert.Empty(t, st.UsedCards)
}

func TestReset_Seeded(t *testing.T) {
	a := newService(t, 22)
	b := newService(t, 22)
	ctx := context.Background()
	seed := uint64(2024)

	a.Reset(ctx, &seed)
	b.Reset(ctx, &seed)

	ra, err := a.Draw(ctx, app.DrawRequest{Layout: domain.LayoutCelticCross})
	require.NoError(t, err)
	rb, err := b.Draw(ctx, app.DrawRequest{Layout: domain.LayoutCelticCross})
	require.NoError(t, err)
	assert.Equal(t, ra.Cards, rb.Cards)
}

func TestLayouts(t *testing.T) {
	svc := newService(t, 1)
	assert.Len(t, svc.Layouts(), 5)
}
