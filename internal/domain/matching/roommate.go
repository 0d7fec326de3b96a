package matching

import (
	"math"
	"strings"

	"hive/internal/domain/entity"
)

// BudgetTolerance is the largest accepted relative budget difference.
const BudgetTolerance = 0.20

// FindMatches returns the candidates compatible with seeker: budget within 20% of
// the seeker's, same location, and at least one shared interest. A seeker
// interest is shared when it appears inside any of the candidate's interests,
// so "cook" matches "Cooking".
//
// A seeker budget that is zero, negative or not finite matches nobody.
func FindMatches(candidates []entity.RoommateCandidate, seeker entity.RoommateSeekerProfile) []entity.RoommateCandidate {
	if seeker.Budget <= 0 || math.IsInf(seeker.Budget, 0) || math.IsNaN(seeker.Budget) {
		return []entity.RoommateCandidate{}
	}

	location := strings.TrimSpace(seeker.Location)
	tokens := seeker.InterestTokens()

	return Filter(candidates,
		func(c entity.RoommateCandidate) bool {
			return BudgetClose(c.Budget, seeker.Budget)
		},
		func(c entity.RoommateCandidate) bool {
			return strings.EqualFold(strings.TrimSpace(c.Location), location)
		},
		func(c entity.RoommateCandidate) bool {
			return SharesInterest(c.Interests, tokens)
		},
	)
}

// BudgetClose reports whether candidate is within BudgetTolerance of seeker.
// seeker must be positive.
func BudgetClose(candidate, seeker float64) bool {
	if seeker <= 0 {
		return false
	}
	ratio := math.Abs(candidate-seeker) / seeker

	return ratio <= BudgetTolerance
}

// SharesInterest reports whether any token is a substring of any interest.
// Tokens must already be lower-cased.
func SharesInterest(interests []string, tokens []string) bool {
	for _, interest := range interests {
		lower := strings.ToLower(interest)
		for _, token := range tokens {
			if strings.Contains(lower, token) {
				return true
			}
		}
	}

	return false
}

// RoommateFilter narrows the candidate list by explicit selectors.
type RoommateFilter struct {
	Location string
	Budget   Range
	Gender   string
}

// FilterRoommates applies the browse-mode selectors. It is independent of
// FindMatches and ignores interests.
func FilterRoommates(candidates []entity.RoommateCandidate, f RoommateFilter) []entity.RoommateCandidate {
	return Filter(candidates,
		EqualFoldUnless(f.Location, func(c entity.RoommateCandidate) string { return c.Location }),
		InRange(f.Budget, func(c entity.RoommateCandidate) float64 { return c.Budget }),
		EqualFoldUnless(f.Gender, func(c entity.RoommateCandidate) string { return c.Gender }),
	)
}
