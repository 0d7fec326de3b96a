package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGamePartnerEdits(t *testing.T) {
	p := GamePartner{ID: "1", Games: []GameSkill{{Game: "Chess", SkillLevel: SkillExpert}}}

	added := p.AddGame("Poker")
	require.Len(t, added.Games, 2)
	assert.Equal(t, GameSkill{Game: "Poker", SkillLevel: SkillBeginner}, added.Games[1])
	assert.Len(t, p.Games, 1, "AddGame must not modify the receiver's slice")

	assert.Equal(t, added, added.AddGame("poker"), "duplicate games are ignored")
	assert.Equal(t, added, added.AddGame("  "))

	leveled := added.SetSkill("POKER", SkillIntermediate)
	skill, ok := leveled.SkillFor("poker")
	assert.True(t, ok)
	assert.Equal(t, SkillIntermediate, skill)

	removed := leveled.RemoveGame("chess")
	assert.Equal(t, []GameSkill{{Game: "Poker", SkillLevel: SkillIntermediate}}, removed.Games)
	assert.True(t, leveled.HasGame("Chess"))
}

func TestGamePartnerUnmarshalPairs(t *testing.T) {
	raw := `{"id":"1","userName":"Alex","games":[{"game":"Chess","skillLevel":"Expert"}],"availability":["Weekday evenings"]}`

	var p GamePartner
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, "Alex", p.UserName)
	assert.Equal(t, []GameSkill{{Game: "Chess", SkillLevel: "Expert"}}, p.Games)
	assert.Equal(t, []string{"Weekday evenings"}, p.Availability)
}

func TestGamePartnerUnmarshalParallelArrays(t *testing.T) {
	raw := `{"id":"1","userName":"Alex","games":["Chess","Poker"],"skillLevels":["Expert","Beginner"]}`

	var p GamePartner
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, []GameSkill{
		{Game: "Chess", SkillLevel: "Expert"},
		{Game: "Poker", SkillLevel: "Beginner"},
	}, p.Games)

	encoded, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "skillLevels")
}

func TestGamePartnerUnmarshalRejectsMisaligned(t *testing.T) {
	tests := []string{
		`{"id":"1","games":["Chess","Poker"],"skillLevels":["Expert"]}`,
		`{"id":"1","skillLevels":["Expert"]}`,
	}

	for _, raw := range tests {
		var p GamePartner
		err := json.Unmarshal([]byte(raw), &p)
		assert.ErrorIs(t, err, ErrMisalignedGames, raw)
	}
}

func TestInterestTokens(t *testing.T) {
	p := RoommateSeekerProfile{Interests: " Cooking, ,hiking ,MOVIES,"}

	assert.Equal(t, []string{"cooking", "hiking", "movies"}, p.InterestTokens())
	assert.Empty(t, RoommateSeekerProfile{}.InterestTokens())
}
