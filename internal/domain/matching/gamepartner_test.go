package matching

import (
	"testing"

	"hive/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func partnerFixtures() []entity.GamePartner {
	return []entity.GamePartner{
		{
			ID:           "1",
			UserName:     "Alex",
			Games:        []entity.GameSkill{{Game: "Chess", SkillLevel: "Expert"}, {Game: "Poker", SkillLevel: "Beginner"}},
			Availability: []string{"Weekday evenings"},
			Bio:          "Looking for chess opponents",
		},
		{
			ID:           "2",
			UserName:     "Dave",
			Games:        []entity.GameSkill{{Game: "Poker", SkillLevel: "Expert"}, {Game: "Darts", SkillLevel: "Intermediate"}},
			Availability: []string{"Weekend evenings"},
			Bio:          "Card games and bar games",
		},
		{
			ID:           "3",
			UserName:     "Emma",
			Games:        []entity.GameSkill{{Game: "Pandemic", SkillLevel: "Beginner"}},
			Availability: []string{"Weekend afternoons", "Weekday evenings"},
			Bio:          "D&D group wanted",
		},
	}
}

func partnerIDs(partners []entity.GamePartner) []string {
	out := make([]string, 0, len(partners))
	for _, p := range partners {
		out = append(out, p.ID)
	}

	return out
}

func TestFilterGamePartnersSkillIsPerGame(t *testing.T) {
	alex := partnerFixtures()[:1]

	included := FilterGamePartners(alex, GamePartnerFilter{Game: "Chess", SkillLevel: "Expert"})
	excluded := FilterGamePartners(alex, GamePartnerFilter{Game: "Poker", SkillLevel: "Expert"})

	assert.Equal(t, []string{"1"}, partnerIDs(included))
	assert.Empty(t, excluded)
}

func TestFilterGamePartners(t *testing.T) {
	partners := partnerFixtures()

	tests := []struct {
		name   string
		filter GamePartnerFilter
		want   []string
	}{
		{name: "no criteria", filter: GamePartnerFilter{}, want: []string{"1", "2", "3"}},
		{name: "search bio", filter: GamePartnerFilter{Search: "card"}, want: []string{"2"}},
		{name: "search game name", filter: GamePartnerFilter{Search: "pandem"}, want: []string{"3"}},
		{name: "game only", filter: GamePartnerFilter{Game: "poker"}, want: []string{"1", "2"}},
		{name: "skill without game", filter: GamePartnerFilter{SkillLevel: "Expert"}, want: []string{"1", "2"}},
		{name: "skill any sentinel", filter: GamePartnerFilter{Game: "Poker", SkillLevel: "any"}, want: []string{"1", "2"}},
		{name: "game and skill", filter: GamePartnerFilter{Game: "Poker", SkillLevel: "Expert"}, want: []string{"2"}},
		{name: "availability", filter: GamePartnerFilter{Availability: "Weekday evenings"}, want: []string{"1", "3"}},
		{name: "unknown game", filter: GamePartnerFilter{Game: "Go", SkillLevel: "Expert"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterGamePartners(partners, tt.filter)
			assert.Equal(t, tt.want, partnerIDs(got))
			assert.True(t, isSubsequence(partnerIDs(partners), partnerIDs(got)))
		})
	}
}
