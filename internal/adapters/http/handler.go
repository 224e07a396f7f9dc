package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/tarot-deck/internal/app"
	"github.com/randomtoy/tarot-deck/internal/domain"
)

type Handler struct {
	svc *app.ReadingService
}

func NewHandler(svc *app.ReadingService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/layouts", h.ListLayouts)
	e.GET("/v1/deck", h.DeckStatus)
	e.POST("/v1/deck/reset", h.ResetDeck)
	e.POST("/v1/deck/draw", h.DrawCards)
	e.POST("/v1/readings", h.CreateReading)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListLayouts(c echo.Context) error {
	layouts := h.svc.Layouts()
	out := make([]LayoutResponse, len(layouts))
	for i, l := range layouts {
		out[i] = LayoutResponse{
			Key:         l.Key,
			Name:        l.Name,
			Description: l.Description,
			Count:       l.Count,
			Positions:   l.Positions,
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) DeckStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, toDeckResponse(h.svc.Status(c.Request().Context())))
}

func (h *Handler) ResetDeck(c echo.Context) error {
	var seed *uint64
	if raw := c.QueryParam("seed"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "seed must be a non-negative integer"})
		}
		seed = &parsed
	}
	return c.JSON(http.StatusOK, toDeckResponse(h.svc.Reset(c.Request().Context(), seed)))
}

// DrawCards draws n cards (default 1). Asking for more than remain returns
// whatever is left; an exhausted deck returns an empty list.
func (h *Handler) DrawCards(c echo.Context) error {
	n := 1
	if raw := c.QueryParam("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "n must be an integer"})
		}
		n = parsed
	}

	ctx := c.Request().Context()
	cards := h.svc.DrawCards(ctx, n)
	requestID, _ := c.Get("request_id").(string)

	return c.JSON(http.StatusOK, DrawResponse{
		Cards: toCardResponses(cards),
		Meta: MetaResp{
			RequestID: requestID,
			Remaining: h.svc.Status(ctx).Remaining,
		},
	})
}

func (h *Handler) CreateReading(c echo.Context) error {
	layout := c.QueryParam("layout")
	if layout == "" {
		layout = domain.LayoutThreeCard
	}

	var count int
	if raw := c.QueryParam("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "n must be an integer between 1 and 10"})
		}
		count = parsed
	}

	r, err := h.svc.Draw(c.Request().Context(), app.DrawRequest{Layout: layout, Count: count})
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)

	return c.JSON(http.StatusOK, toReadingResponse(r, requestID))
}

func toReadingResponse(r app.Reading, requestID string) ReadingResponse {
	return ReadingResponse{
		Layout:    r.Layout.Key,
		Name:      r.Layout.Name,
		Requested: r.Requested,
		Short:     r.Short,
		Cards:     toCardResponses(r.Cards),
		Meta: MetaResp{
			RequestID: requestID,
			Remaining: r.Remaining,
		},
	}
}

func toCardResponses(cards []domain.DrawnCard) []CardResponse {
	out := make([]CardResponse, len(cards))
	for i, dc := range cards {
		out[i] = CardResponse{
			ID:       dc.ID,
			Name:     dc.Name,
			Position: dc.Position,
			Label:    dc.Label,
		}
	}
	return out
}

func toDeckResponse(st app.Status) DeckResponse {
	used := st.UsedCards
	if used == nil {
		used = []domain.CardID{}
	}
	return DeckResponse{
		Total:     st.Total,
		Remaining: st.Remaining,
		Used:      st.Used,
		UsedCards: used,
	}
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrLayoutNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidCount):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
