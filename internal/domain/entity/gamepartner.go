package entity

import (
	"encoding/json"
	"slices"
	"strings"

	"hive/internal/errors"
)

// Skill levels a partner can state for a game.
const (
	SkillBeginner     = "Beginner"
	SkillIntermediate = "Intermediate"
	SkillExpert       = "Expert"
	SkillProfessional = "Professional"
)

// Options offered by the partner form.
var (
	SkillLevels         = []string{SkillBeginner, SkillIntermediate, SkillExpert, SkillProfessional}
	AvailabilityOptions = []string{
		"Weekday mornings", "Weekday afternoons", "Weekday evenings",
		"Weekend mornings", "Weekend afternoons", "Weekend evenings",
	}
)

// ErrMisalignedGames is returned when decoding the legacy games/skillLevels pair of
// arrays with different lengths.
var ErrMisalignedGames = errors.New("games and skillLevels must have the same length")

// GameSkill is one game a partner plays together with their level at it.
type GameSkill struct {
	Game       string `json:"game" validate:"required"`
	SkillLevel string `json:"skillLevel" validate:"required,skill_level"`
}

// GamePartner is a member looking for people to play with.
type GamePartner struct {
	ID           string      `json:"id" validate:"required"`
	UserID       string      `json:"userId"`
	UserName     string      `json:"userName" validate:"required"`
	Avatar       string      `json:"avatar,omitempty"`
	Games        []GameSkill `json:"games" validate:"dive"`
	Availability []string    `json:"availability"`
	Bio          string      `json:"bio"`
}

// RecordID implements Record.
func (p GamePartner) RecordID() string {
	return p.ID
}

// SkillFor returns the stated level for game, compared case-insensitively.
func (p GamePartner) SkillFor(game string) (string, bool) {
	for _, g := range p.Games {
		if strings.EqualFold(g.Game, game) {
			return g.SkillLevel, true
		}
	}

	return "", false
}

// HasGame reports whether the partner plays game.
func (p GamePartner) HasGame(game string) bool {
	_, ok := p.SkillFor(game)

	return ok
}

// AddGame appends game at Beginner level. Adding a game the partner already plays
// returns the partner unchanged.
func (p GamePartner) AddGame(game string) GamePartner {
	game = strings.TrimSpace(game)
	if game == "" || p.HasGame(game) {
		return p
	}
	p.Games = append(slices.Clone(p.Games), GameSkill{Game: game, SkillLevel: SkillBeginner})

	return p
}

// RemoveGame drops game together with its skill level.
func (p GamePartner) RemoveGame(game string) GamePartner {
	p.Games = slices.DeleteFunc(slices.Clone(p.Games), func(g GameSkill) bool {
		return strings.EqualFold(g.Game, game)
	})

	return p
}

// SetSkill changes the level of an existing game. Unknown games are ignored.
func (p GamePartner) SetSkill(game, level string) GamePartner {
	games := slices.Clone(p.Games)
	for i := range games {
		if strings.EqualFold(games[i].Game, game) {
			games[i].SkillLevel = level
		}
	}
	p.Games = games

	return p
}

// UnmarshalJSON accepts both the pair form and the older parallel arrays form
// ("games": ["Chess"], "skillLevels": ["Expert"]).
func (p *GamePartner) UnmarshalJSON(data []byte) error {
	type partnerAlias GamePartner
	var raw struct {
		partnerAlias
		Games       json.RawMessage `json:"games"`
		SkillLevels []string        `json:"skillLevels"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WithStack(err)
	}

	*p = GamePartner(raw.partnerAlias)
	p.Games = nil

	if len(raw.Games) == 0 || string(raw.Games) == "null" {
		if len(raw.SkillLevels) > 0 {
			return errors.WithStack(ErrMisalignedGames)
		}

		return nil
	}

	if err := json.Unmarshal(raw.Games, &p.Games); err == nil {
		return nil
	}

	var names []string
	if err := json.Unmarshal(raw.Games, &names); err != nil {
		return errors.Wrap(err, "decode games")
	}
	if len(names) != len(raw.SkillLevels) {
		return errors.WithStack(ErrMisalignedGames)
	}

	p.Games = make([]GameSkill, len(names))
	for i, name := range names {
		p.Games[i] = GameSkill{Game: name, SkillLevel: raw.SkillLevels[i]}
	}

	return nil
}
