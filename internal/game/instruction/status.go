package instruction

import (
	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/game/effects"
	"github.com/udisondev/battlecalc/internal/model"
)

// canStatus reports whether status would stick on ref's active Pokemon now.
// fromFoe enables safeguard.
func (g *Generator) canStatus(ref model.SideRef, status string, fromFoe bool) bool {
	s := g.state
	p := s.Active(ref)
	if p.IsFainted() || p.Status != c.StatusNone || effects.BlocksStatus(s, ref, status) {
		return false
	}

	switch status {
	case c.StatusBurn:
		if p.HasType(c.TypeFire) {
			return false
		}
	case c.StatusParalysis:
		if p.HasType(c.TypeElectric) {
			return false
		}
	case c.StatusPoison, c.StatusToxic:
		if p.HasType(c.TypePoison) || p.HasType(c.TypeSteel) {
			return false
		}
	case c.StatusFreeze:
		w := s.EffectiveWeather()
		if p.HasType(c.TypeIce) || w == c.WeatherSun || w == c.WeatherHarshSun {
			return false
		}
	case c.StatusSleep:
		if s.Field == c.FieldElectric && p.IsGrounded() {
			return false
		}
	}

	if s.Field == c.FieldMisty && p.IsGrounded() {
		return false
	}
	return !fromFoe || s.Side(ref).Condition(c.SideSafeguard) == 0
}

// applyBoosts changes ref's stages in BoostableStats order, clamped.
// Drops coming from the foe respect clear body and trigger defiant and
// competitive.
func (g *Generator) applyBoosts(ref model.SideRef, boosts map[string]int, fromFoe bool) []model.Instruction {
	s := g.state
	if s.Active(ref).IsFainted() {
		return nil
	}
	ability := s.Ability(ref)
	j := g.journal()

	dropped := false
	for _, stat := range c.BoostableStats {
		n := boosts[stat]
		if ability == "contrary" {
			n = -n
		}
		if n == 0 || (n < 0 && fromFoe && effects.BlocksStatDrops(ability)) {
			continue
		}
		in, ok := model.BoostFor(s, ref, stat, n)
		if !ok {
			continue
		}
		j.add(in)
		dropped = dropped || (n < 0 && fromFoe)
	}

	if dropped {
		switch ability {
		case "defiant":
			j.addOK(model.BoostFor(s, ref, c.StatAttack, 2))
		case "competitive":
			j.addOK(model.BoostFor(s, ref, c.StatSpecialAttack, 2))
		}
	}
	return j.done()
}

// clearConditions ends every listed side condition that is up on side.
func clearConditions(s *model.State, side model.SideRef, conditions ...string) []model.Instruction {
	var out []model.Instruction
	for _, cond := range conditions {
		if n := s.Side(side).Condition(cond); n > 0 {
			out = append(out, model.SideEnd(side, cond, n))
		}
	}
	return out
}

// outcomes drops branches that cannot happen.
func outcomes(branches ...model.Transposition) []model.Transposition {
	out := branches[:0]
	for _, b := range branches {
		if b.Probability > 0 {
			out = append(out, b)
		}
	}
	return out
}
