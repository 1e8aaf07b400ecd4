package damage

import (
	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/data"
	"github.com/udisondev/battlecalc/internal/model"
)

// typeModifier is the product of move type against each defending type.
// An iron ball grounds a flying type, so ground moves skip the flying row.
func typeModifier(defender *model.Pokemon, move *data.Move) float64 {
	if move.Type == c.TypeTypeless {
		return 1
	}
	mod := 1.0
	for _, t := range defender.Types {
		if t == "" {
			continue
		}
		if t == c.TypeFlying && move.Type == c.TypeGround && defender.IsGrounded() {
			continue
		}
		mod *= data.TypeMultiplier(move.Type, t)
	}
	return mod
}

func weatherModifier(move *data.Move, cond Conditions) float64 {
	switch cond.Weather {
	case c.WeatherSun:
		switch move.Type {
		case c.TypeFire:
			return 1.5
		case c.TypeWater:
			return 0.5
		}
	case c.WeatherHarshSun:
		switch move.Type {
		case c.TypeFire:
			return 1.5
		case c.TypeWater:
			return 0
		}
	case c.WeatherRain:
		switch move.Type {
		case c.TypeWater:
			return 1.5
		case c.TypeFire:
			return 0.5
		}
	case c.WeatherHeavyRain:
		switch move.Type {
		case c.TypeWater:
			return 1.5
		case c.TypeFire:
			return 0
		}
	}
	return 1
}

func stabModifier(attacker *model.Pokemon, move *data.Move, cond Conditions) float64 {
	if !attacker.HasType(move.Type) {
		return 1
	}
	if cond.ability(attacker) == "adaptability" {
		return 2
	}
	return 1.5
}

// burnModifier halves physical damage of a burned attacker. Guts and facade
// are exempt.
func burnModifier(attacker *model.Pokemon, move *data.Move, cond Conditions) float64 {
	if attacker.Status != c.StatusBurn || move.Category != c.CategoryPhysical {
		return 1
	}
	if cond.ability(attacker) == "guts" || move.ID == "facade" {
		return 1
	}
	return 0.5
}

func terrainModifier(attacker, defender *model.Pokemon, move *data.Move, cond Conditions) float64 {
	boost := 1.0
	if attacker.IsGrounded() {
		switch {
		case cond.Field == c.FieldElectric && move.Type == c.TypeElectric,
			cond.Field == c.FieldGrassy && move.Type == c.TypeGrass,
			cond.Field == c.FieldPsychic && move.Type == c.TypePsychic:
			boost = cond.Rules.TerrainMultiplier
		}
	}

	if !defender.IsGrounded() {
		return boost
	}
	switch cond.Field {
	case c.FieldMisty:
		if move.Type == c.TypeDragon {
			boost *= 0.5
		}
	case c.FieldGrassy:
		if move.ID == "earthquake" || move.ID == "bulldoze" {
			boost *= 0.5
		}
	case c.FieldPsychic:
		if move.Priority > 0 {
			return 0
		}
	}
	return boost
}

// screenModifier applies reflect, light screen and aurora veil on the
// defending side. Infiltrator ignores them.
func screenModifier(attacker *model.Pokemon, move *data.Move, cond Conditions) float64 {
	if cond.ability(attacker) == "infiltrator" {
		return 1
	}
	switch {
	case move.Category == c.CategoryPhysical && (cond.Reflect || cond.AuroraVeil):
		return 0.5
	case move.Category == c.CategorySpecial && (cond.LightScreen || cond.AuroraVeil):
		return 0.5
	}
	return 1
}

// semiInvulnerableHits lists the moves that reach a target mid-charge and
// the multiplier they get for doing so.
var semiInvulnerableHits = map[string]map[string]float64{
	c.VolatileFly: {
		"thunder": 1, "hurricane": 1, "skyuppercut": 1, "smackdown": 1, "twister": 2, "gust": 2,
	},
	c.VolatileBounce: {
		"thunder": 1, "hurricane": 1, "skyuppercut": 1, "smackdown": 1, "twister": 2, "gust": 2,
	},
	c.VolatileDig: {
		"earthquake": 2, "magnitude": 2, "fissure": 1,
	},
	c.VolatileDive: {
		"surf": 2, "whirlpool": 2,
	},
	c.VolatilePhantomForce: {},
	c.VolatileShadowForce:  {},
}

// semiInvulnerableModifier returns 0 when the defender is out of reach.
// No guard on either side lands every move.
func semiInvulnerableModifier(attacker, defender *model.Pokemon, move *data.Move, cond Conditions) float64 {
	if cond.ability(attacker) == "noguard" || cond.ability(defender) == "noguard" {
		return 1
	}
	for _, v := range c.SemiInvulnerableVolatiles {
		if !defender.HasVolatile(v) {
			continue
		}
		if mod, ok := semiInvulnerableHits[v][move.ID]; ok {
			return mod
		}
		return 0
	}
	return 1
}
