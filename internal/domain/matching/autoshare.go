package matching

import "hive/internal/domain/entity"

// AutoShareFilter selects shared rides.
type AutoShareFilter struct {
	StartLocation string
	Destination   string
	VehicleType   string
	Day           string
}

// FilterAutoShares applies f to shares. Day must be one of the route's days.
func FilterAutoShares(shares []entity.AutoShare, f AutoShareFilter) []entity.AutoShare {
	return Filter(shares,
		SearchIn(f.StartLocation, func(s entity.AutoShare) []string { return []string{s.StartLocation} }),
		SearchIn(f.Destination, func(s entity.AutoShare) []string { return []string{s.Destination} }),
		EqualFoldUnless(f.VehicleType, func(s entity.AutoShare) string { return s.VehicleType }),
		MemberOf(f.Day, func(s entity.AutoShare) []string { return s.Days }),
	)
}
