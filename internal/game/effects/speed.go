package effects

import (
	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/data"
	"github.com/udisondev/battlecalc/internal/model"
	"github.com/udisondev/battlecalc/internal/ruleset"
)

// weatherSpeedAbilities double speed under their weather.
var weatherSpeedAbilities = map[string][]string{
	"chlorophyll": {c.WeatherSun, c.WeatherHarshSun},
	"swiftswim":   {c.WeatherRain, c.WeatherHeavyRain},
	"sandrush":    {c.WeatherSand},
	"slushrush":   {c.WeatherHail, c.WeatherSnow},
}

// EffectiveSpeed is the speed used for turn order and speed-based power.
func EffectiveSpeed(s *model.State, ref model.SideRef, rules ruleset.Ruleset) int {
	p := s.Active(ref)
	speed := float64(p.BoostedStat(c.StatSpeed))

	ability := s.Ability(ref)
	for _, w := range weatherSpeedAbilities[ability] {
		if s.EffectiveWeather() == w {
			speed *= 2
			break
		}
	}
	if ability == "surgesurfer" && s.Field == c.FieldElectric {
		speed *= 2
	}
	if ability == "quickfeet" && p.Status != c.StatusNone {
		speed *= 1.5
	}

	switch HeldItem(s, ref) {
	case "choicescarf":
		speed *= 1.5
	case "ironball":
		speed *= 0.5
	}

	if s.Side(ref).Condition(c.SideTailwind) > 0 {
		speed *= 2
	}
	if p.Status == c.StatusParalysis && ability != "quickfeet" {
		speed *= 0.5
	}
	return int(speed)
}

// Priority returns the bracket move is used in, after ability bonuses.
func Priority(s *model.State, ref model.SideRef, move *data.Move) int {
	p := s.Active(ref)
	priority := move.Priority
	switch s.Ability(ref) {
	case "prankster":
		if move.Category == c.CategoryStatus {
			priority++
		}
	case "galewings":
		if move.Type == c.TypeFlying && p.HP == p.MaxHP {
			priority++
		}
	case "triage":
		if move.Flags.Heal {
			priority += 3
		}
	}
	return priority
}
