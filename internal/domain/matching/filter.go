// Package matching holds the pure filtering and matching functions behind every
// feature list of the hub. Nothing here performs I/O or keeps state: the same
// collection and criteria always give the same subset, in collection order.
package matching

import (
	"strings"
)

// Predicate decides whether a record stays in the result.
type Predicate[T any] func(T) bool

// Filter keeps the items accepted by every predicate. Nil predicates are skipped.
// The result preserves the input order and never aliases the input slice.
func Filter[T any](items []T, predicates ...Predicate[T]) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if acceptsAll(item, predicates) {
			result = append(result, item)
		}
	}

	return result
}

func acceptsAll[T any](item T, predicates []Predicate[T]) bool {
	for _, p := range predicates {
		if p != nil && !p(item) {
			return false
		}
	}

	return true
}

// Range is an inclusive numeric interval. A nil bound is open.
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}

	return true
}

// IsZero reports whether both bounds are open.
func (r Range) IsZero() bool {
	return r.Min == nil && r.Max == nil
}

// Bypass reports whether a selector value means "do not filter on this field".
func Bypass(selector string) bool {
	switch strings.ToLower(strings.TrimSpace(selector)) {
	case "", "all", "any":
		return true
	default:
		return false
	}
}

// ContainsFold reports whether needle is a case-insensitive substring of haystack.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// SearchIn builds a predicate matching term against any of the text fields
// returned by fields. An empty term matches everything.
func SearchIn[T any](term string, fields func(T) []string) Predicate[T] {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	return func(item T) bool {
		for _, field := range fields(item) {
			if ContainsFold(field, term) {
				return true
			}
		}

		return false
	}
}

// EqualFoldUnless builds a case-insensitive equality predicate on the field picked
// by get, skipped entirely when selector is a bypass value.
func EqualFoldUnless[T any](selector string, get func(T) string) Predicate[T] {
	if Bypass(selector) {
		return nil
	}
	selector = strings.TrimSpace(selector)

	return func(item T) bool {
		return strings.EqualFold(strings.TrimSpace(get(item)), selector)
	}
}

// MemberOf builds a set-membership predicate: the value must appear in the slice
// returned by get. An empty value matches everything.
func MemberOf[T any](value string, get func(T) []string) Predicate[T] {
	if Bypass(value) {
		return nil
	}

	return func(item T) bool {
		for _, v := range get(item) {
			if strings.EqualFold(v, value) {
				return true
			}
		}

		return false
	}
}

// InRange builds a predicate on a numeric field. An open range matches everything.
func InRange[T any](r Range, get func(T) float64) Predicate[T] {
	if r.IsZero() {
		return nil
	}

	return func(item T) bool {
		return r.Contains(get(item))
	}
}

// FlagEquals builds an equality predicate on a boolean field. A nil want matches everything.
func FlagEquals[T any](want *bool, get func(T) bool) Predicate[T] {
	if want == nil {
		return nil
	}
	w := *want

	return func(item T) bool {
		return get(item) == w
	}
}
