package matching

import "hive/internal/domain/entity"

// RentalFilter selects rental listings.
type RentalFilter struct {
	Search    string
	Category  string
	Condition string
	Price     Range
	Available *bool
}

// FilterRentals applies f to items.
func FilterRentals(items []entity.RentItem, f RentalFilter) []entity.RentItem {
	return Filter(items,
		SearchIn(f.Search, func(i entity.RentItem) []string { return []string{i.Name, i.Description} }),
		EqualFoldUnless(f.Category, func(i entity.RentItem) string { return i.Category }),
		EqualFoldUnless(f.Condition, func(i entity.RentItem) string { return i.Condition }),
		InRange(f.Price, func(i entity.RentItem) float64 { return i.RentAmount }),
		FlagEquals(f.Available, func(i entity.RentItem) bool { return i.Available }),
	)
}
