package matching

import (
	"strings"

	"hive/internal/domain/entity"
)

// GamePartnerFilter selects game partners.
type GamePartnerFilter struct {
	Search       string
	Game         string
	SkillLevel   string
	Availability string
}

// FilterGamePartners applies f to partners.
//
// When both Game and SkillLevel are set the level is checked against that game
// only. A partner who is an Expert at Chess and a Beginner at Poker does not
// match Poker/Expert. With no game selected any of the partner's levels counts.
func FilterGamePartners(partners []entity.GamePartner, f GamePartnerFilter) []entity.GamePartner {
	return Filter(partners,
		SearchIn(f.Search, partnerSearchFields),
		gamePredicate(f.Game),
		skillPredicate(f.Game, f.SkillLevel),
		MemberOf(f.Availability, func(p entity.GamePartner) []string { return p.Availability }),
	)
}

func partnerSearchFields(p entity.GamePartner) []string {
	fields := make([]string, 0, len(p.Games)+2)
	fields = append(fields, p.UserName, p.Bio)
	for _, g := range p.Games {
		fields = append(fields, g.Game)
	}

	return fields
}

func gamePredicate(game string) Predicate[entity.GamePartner] {
	if Bypass(game) {
		return nil
	}
	game = strings.TrimSpace(game)

	return func(p entity.GamePartner) bool {
		return p.HasGame(game)
	}
}

func skillPredicate(game, level string) Predicate[entity.GamePartner] {
	if Bypass(level) {
		return nil
	}
	level = strings.TrimSpace(level)

	if !Bypass(game) {
		game = strings.TrimSpace(game)

		return func(p entity.GamePartner) bool {
			skill, ok := p.SkillFor(game)

			return ok && strings.EqualFold(skill, level)
		}
	}

	return func(p entity.GamePartner) bool {
		for _, g := range p.Games {
			if strings.EqualFold(g.SkillLevel, level) {
				return true
			}
		}

		return false
	}
}
