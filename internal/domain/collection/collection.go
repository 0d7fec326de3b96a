// Package collection contains the reducers that produce the next version of a
// feature collection. Every function returns a new slice and leaves its input
// untouched. Operations addressed to an id that is not in the collection are
// no-ops: the result equals the input by value.
package collection

import (
	"slices"

	"hive/internal/domain/entity"
)

// Flaggable is a record with named boolean fields that can be flipped.
type Flaggable[T any] interface {
	entity.Record
	ToggleFlag(field string) (T, bool)
}

// Prepend returns a new collection with rec in front.
func Prepend[T entity.Record](items []T, rec T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, rec)

	return append(out, items...)
}

// Remove returns the collection without the records carrying id.
func Remove[T entity.Record](items []T, id string) []T {
	return ClearWhere(items, func(item T) bool {
		return item.RecordID() == id
	})
}

// ClearWhere returns the collection without the records matched by drop.
func ClearWhere[T any](items []T, drop func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !drop(item) {
			out = append(out, item)
		}
	}

	return out
}

// Toggle flips field on the record carrying id. Unknown ids and fields leave the
// collection unchanged.
func Toggle[T Flaggable[T]](items []T, id, field string) []T {
	return Update(items, id, func(item T) T {
		next, ok := item.ToggleFlag(field)
		if !ok {
			return item
		}

		return next
	})
}

// Update replaces the record carrying id with fn applied to it.
func Update[T entity.Record](items []T, id string, fn func(T) T) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	for i := range out {
		if out[i].RecordID() == id {
			out[i] = fn(out[i])
		}
	}

	return out
}

// Find returns the record carrying id.
func Find[T entity.Record](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.RecordID() == id {
			return item, true
		}
	}

	var zero T

	return zero, false
}
