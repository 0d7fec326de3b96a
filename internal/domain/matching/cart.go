package matching

import (
	"math"
	"strings"

	"hive/internal/domain/entity"
)

// Cart status selectors.
const (
	CartStatusAll       = "all"
	CartStatusPending   = "pending"
	CartStatusCompleted = "completed"
)

// CartFilter selects cart lines.
type CartFilter struct {
	Search    string
	Completed *bool
}

// CartFilterForStatus maps the all/pending/completed selector onto a CartFilter.
// Unknown statuses behave like "all".
func CartFilterForStatus(status, search string) CartFilter {
	f := CartFilter{Search: search}
	switch strings.ToLower(strings.TrimSpace(status)) {
	case CartStatusPending:
		f.Completed = new(bool)
	case CartStatusCompleted:
		done := true
		f.Completed = &done
	}

	return f
}

// FilterCart applies f to items.
func FilterCart(items []entity.CartItem, f CartFilter) []entity.CartItem {
	return Filter(items,
		SearchIn(f.Search, func(i entity.CartItem) []string { return []string{i.Name, i.AddedBy} }),
		FlagEquals(f.Completed, func(i entity.CartItem) bool { return i.Completed }),
	)
}

// CartTotal sums price times quantity over items, rounded to cents.
func CartTotal(items []entity.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.LineTotal()
	}

	return math.Round(total*100) / 100
}

// CartSummary is shown above the shopping list.
type CartSummary struct {
	Pending   int     `json:"pending"`
	Completed int     `json:"completed"`
	Total     float64 `json:"total"`
}

// SummarizeCart counts pending and completed lines and totals the given items.
func SummarizeCart(items []entity.CartItem) CartSummary {
	var s CartSummary
	for _, item := range items {
		if item.Completed {
			s.Completed++
		} else {
			s.Pending++
		}
	}
	s.Total = CartTotal(items)

	return s
}
