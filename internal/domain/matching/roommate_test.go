package matching

import (
	"math"
	"testing"

	"hive/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func roommateFixtures() []entity.RoommateCandidate {
	return []entity.RoommateCandidate{
		{ID: "1", Name: "Alex", Gender: "Male", Budget: 1200, Location: "Downtown", Interests: []string{"Reading", "Cooking", "Gaming"}},
		{ID: "2", Name: "Emma", Gender: "Female", Budget: 950, Location: "University Area", Interests: []string{"Yoga", "Cooking"}},
		{ID: "3", Name: "Michael", Gender: "Male", Budget: 800, Location: "Suburbs", Interests: []string{"Running", "Chess"}},
		{ID: "4", Name: "Sofia", Gender: "Female", Budget: 1100, Location: "downtown", Interests: []string{"Art", "Music"}},
		{ID: "5", Name: "Jordan", Gender: "Non-binary", Budget: 1000, Location: "Downtown ", Interests: []string{"Board games", "Movies"}},
	}
}

func ids(candidates []entity.RoommateCandidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.ID)
	}

	return out
}

func TestFindMatches(t *testing.T) {
	candidates := roommateFixtures()

	tests := []struct {
		name   string
		seeker entity.RoommateSeekerProfile
		want   []string
	}{
		{
			name:   "substring interest and case-insensitive location",
			seeker: entity.RoommateSeekerProfile{Budget: 1150, Location: "DOWNTOWN", Interests: "cook, music"},
			want:   []string{"1", "4"},
		},
		{
			name:   "budget outside twenty percent",
			seeker: entity.RoommateSeekerProfile{Budget: 1600, Location: "Downtown", Interests: "reading"},
			want:   []string{},
		},
		{
			name:   "budget exactly on the tolerance edge",
			seeker: entity.RoommateSeekerProfile{Budget: 1000, Location: "Downtown", Interests: "gaming"},
			want:   []string{"1"},
		},
		{
			name:   "no interest tokens",
			seeker: entity.RoommateSeekerProfile{Budget: 1200, Location: "Downtown", Interests: " , "},
			want:   []string{},
		},
		{
			name:   "zero budget is guarded",
			seeker: entity.RoommateSeekerProfile{Budget: 0, Location: "Downtown", Interests: "cooking"},
			want:   []string{},
		},
		{
			name:   "negative budget is guarded",
			seeker: entity.RoommateSeekerProfile{Budget: -100, Location: "Downtown", Interests: "cooking"},
			want:   []string{},
		},
		{
			name:   "NaN budget is guarded",
			seeker: entity.RoommateSeekerProfile{Budget: math.NaN(), Location: "Downtown", Interests: "cooking"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindMatches(candidates, tt.seeker)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFindMatchesNeverReturnsOtherLocations(t *testing.T) {
	candidates := roommateFixtures()
	for _, location := range []string{"Downtown", "suburbs", "University Area", "Nowhere"} {
		seeker := entity.RoommateSeekerProfile{Budget: 1000, Location: location, Interests: "o"}
		for _, c := range FindMatches(candidates, seeker) {
			assert.Equal(t, normalize(location), normalize(c.Location))
		}
	}
}

func normalize(s string) string {
	out := []rune{}
	for _, r := range s {
		if r == ' ' {
			continue
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		out = append(out, r)
	}

	return string(out)
}

func TestFindMatchesIsPureAndOrdered(t *testing.T) {
	candidates := roommateFixtures()
	seeker := entity.RoommateSeekerProfile{Budget: 1100, Location: "downtown", Interests: "a, o"}

	first := FindMatches(candidates, seeker)
	second := FindMatches(candidates, seeker)

	assert.Equal(t, first, second)
	assert.Equal(t, roommateFixtures(), candidates, "input must not be modified")
	assert.True(t, isSubsequence(ids(candidates), ids(first)))
}

func TestFilterRoommates(t *testing.T) {
	candidates := roommateFixtures()
	lo, hi := 900.0, 1100.0

	tests := []struct {
		name   string
		filter RoommateFilter
		want   []string
	}{
		{name: "no selectors", filter: RoommateFilter{Location: "all", Gender: "any"}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "location only", filter: RoommateFilter{Location: "Downtown"}, want: []string{"1", "4", "5"}},
		{name: "budget range inclusive", filter: RoommateFilter{Budget: Range{Min: &lo, Max: &hi}}, want: []string{"2", "4", "5"}},
		{name: "gender and location", filter: RoommateFilter{Location: "downtown", Gender: "female"}, want: []string{"4"}},
		{name: "nothing matches", filter: RoommateFilter{Location: "Riverside"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterRoommates(candidates, tt.filter)))
		})
	}
}

func isSubsequence(all, sub []string) bool {
	i := 0
	for _, v := range all {
		if i < len(sub) && sub[i] == v {
			i++
		}
	}

	return i == len(sub)
}
