package validation

import (
	"testing"

	"hive/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomTags(t *testing.T) {
	v := New()

	type form struct {
		Skill string `validate:"skill_level"`
		Day   string `validate:"weekday"`
		At    string `validate:"hhmm"`
		Likes string `validate:"tokens"`
	}

	tests := []struct {
		name    string
		input   form
		wantErr string
	}{
		{name: "valid", input: form{Skill: entity.SkillExpert, Day: "Monday", At: "08:30", Likes: "chess, ,"}},
		{name: "unknown skill", input: form{Skill: "Godlike", Day: "Monday", At: "08:30", Likes: "chess"}, wantErr: "form.Skill: skill_level"},
		{name: "lower case day", input: form{Skill: entity.SkillBeginner, Day: "monday", At: "08:30", Likes: "chess"}, wantErr: "form.Day: weekday"},
		{name: "hour out of range", input: form{Skill: entity.SkillBeginner, Day: "Sunday", At: "24:00", Likes: "chess"}, wantErr: "form.At: hhmm"},
		{name: "only separators", input: form{Skill: entity.SkillBeginner, Day: "Sunday", At: "07:00", Likes: " , ,"}, wantErr: "form.Likes: tokens"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, Describe(err))
		})
	}
}

func TestGamePartnerDive(t *testing.T) {
	v := New()

	partner := entity.GamePartner{
		ID:       "p1",
		UserName: "Alex",
		Games:    []entity.GameSkill{{Game: "Chess", SkillLevel: "Grandmaster"}},
	}

	err := v.Struct(partner)
	require.Error(t, err)
	assert.Contains(t, Describe(err), "GamePartner.Games[0].SkillLevel: skill_level")
}
