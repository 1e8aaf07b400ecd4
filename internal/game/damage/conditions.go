package damage

import (
	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/model"
	"github.com/udisondev/battlecalc/internal/ruleset"
)

// Conditions is the field around one attack: weather, terrain, the
// defending side's screens and the active ruleset.
type Conditions struct {
	Weather     string
	Field       string
	Reflect     bool
	LightScreen bool
	AuroraVeil  bool

	// AbilitiesSuppressed is set while neutralizing gas is out.
	AbilitiesSuppressed bool

	Rules ruleset.Ruleset
}

// NewConditions derives the conditions for an attack by side attacker.
func NewConditions(s *model.State, attacker model.SideRef, rules ruleset.Ruleset) Conditions {
	def := s.Side(attacker.Other())
	return Conditions{
		Weather:             s.EffectiveWeather(),
		Field:               s.Field,
		Reflect:             def.Condition(c.SideReflect) > 0,
		LightScreen:         def.Condition(c.SideLightScreen) > 0,
		AuroraVeil:          def.Condition(c.SideAuroraVeil) > 0,
		AbilitiesSuppressed: s.AbilitiesSuppressed(),
		Rules:               rules,
	}
}

func (cond Conditions) ability(p *model.Pokemon) string {
	if cond.AbilitiesSuppressed {
		return ""
	}
	return p.Ability
}
