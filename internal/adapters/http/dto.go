package http

import "github.com/randomtoy/tarot-deck/internal/domain"

// ReadingResponse is the JSON shape returned by POST /v1/readings.
type ReadingResponse struct {
	Layout    string         `json:"layout"`
	Name      string         `json:"name"`
	Requested int            `json:"requested"`
	Short     bool           `json:"short"`
	Cards     []CardResponse `json:"cards"`
	Meta      MetaResp       `json:"meta"`
}

type CardResponse struct {
	ID       domain.CardID `json:"id"`
	Name     string        `json:"name"`
	Position int           `json:"position"`
	Label    string        `json:"label,omitempty"`
}

type DrawResponse struct {
	Cards []CardResponse `json:"cards"`
	Meta  MetaResp       `json:"meta"`
}

type DeckResponse struct {
	Total     int             `json:"total"`
	Remaining int             `json:"remaining"`
	Used      int             `json:"used"`
	UsedCards []domain.CardID `json:"used_cards"`
}

type LayoutResponse struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Count       int      `json:"count"`
	Positions   []string `json:"positions"`
}

type MetaResp struct {
	RequestID string `json:"request_id"`
	Remaining int    `json:"remaining"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
