package domain

import (
	"cmp"
	"fmt"
	"slices"
)

const (
	LayoutOneCard      = "one_card"
	LayoutThreeCard    = "three_card"
	LayoutRelationship = "relationship"
	LayoutCelticCross  = "celtic_cross"
	LayoutCustom       = "custom"

	MaxCustomCount = 10
)

// Layout describes how many cards a reading uses and what each position means.
type Layout struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Count       int      `json:"count"`
	Positions   []string `json:"positions"`
}

var layouts = map[string]Layout{
	LayoutOneCard: {
		Key:         LayoutOneCard,
		Name:        "One Card",
		Description: "Message of the day, a simple question",
		Count:       1,
		Positions:   []string{"Message of the day"},
	},
	LayoutThreeCard: {
		Key:         LayoutThreeCard,
		Name:        "Three Card",
		Description: "Past, present and future",
		Count:       3,
		Positions:   []string{"Past", "Present", "Future"},
	},
	LayoutRelationship: {
		Key:         LayoutRelationship,
		Name:        "Relationship",
		Description: "The querent and a partner",
		Count:       7,
		Positions: []string{
			"My current state",
			"Partner's current state",
			"My feelings",
			"Partner's feelings",
			"Obstacles",
			"Potential",
			"Outcome",
		},
	},
	LayoutCelticCross: {
		Key:         LayoutCelticCross,
		Name:        "Celtic Cross",
		Description: "The most comprehensive reading",
		Count:       10,
		Positions: []string{
			"Present situation",
			"Challenge",
			"Past influence",
			"Near future",
			"Goal",
			"Subconscious",
			"Advice",
			"External influences",
			"Hopes and fears",
			"Final outcome",
		},
	},
	LayoutCustom: {
		Key:         LayoutCustom,
		Name:        "Custom",
		Description: "Any number of cards from 1 to 10",
	},
}

// LookupLayout resolves a layout key. customCount is only used for the
// custom layout, whose positions are generated as "Position 1..n".
func LookupLayout(key string, customCount int) (Layout, error) {
	if key == LayoutCustom {
		if customCount < 1 || customCount > MaxCustomCount {
			return Layout{}, ErrInvalidCount
		}
		l := layouts[LayoutCustom]
		l.Count = customCount
		l.Positions = make([]string, customCount)
		for i := range customCount {
			l.Positions[i] = fmt.Sprintf("Position %d", i+1)
		}
		return l, nil
	}

	l, ok := layouts[key]
	if !ok {
		return Layout{}, fmt.Errorf("%w: %q", ErrLayoutNotFound, key)
	}
	l.Positions = slices.Clone(l.Positions)
	return l, nil
}

// Layouts lists every registered layout ordered by card count. The custom
// entry has a zero count and no positions.
func Layouts() []Layout {
	out := make([]Layout, 0, len(layouts))
	for _, l := range layouts {
		l.Positions = slices.Clone(l.Positions)
		out = append(out, l)
	}
	slices.SortFunc(out, func(a, b Layout) int {
		return cmp.Or(cmp.Compare(a.Count, b.Count), cmp.Compare(a.Key, b.Key))
	})
	return out
}
