// Package damage computes damage rolls for a resolved move.
//
// The pipeline follows the cartridge formula: base damage from level, power
// and the attacking/defending stat pair, then a product of modifiers applied
// in a fixed order (type, weather, STAB, burn, terrain, screens, semi-
// invulnerable blocks). The result is expanded into rolls according to the
// CalcType precision knob.
//
// Ability and item effects that change power, type or category are not
// applied here; the effect registries fold them into the resolved move
// before it reaches Calculate.
package damage

import (
	"errors"
	"fmt"
	"math"

	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/data"
	"github.com/udisondev/battlecalc/internal/model"
)

// ErrInvalidCalcType is returned by ParseCalcType.
var ErrInvalidCalcType = errors.New("invalid calc type")

// CalcType controls how many damage rolls a hit expands into.
type CalcType string

const (
	Average       CalcType = "average"         // 1 roll, 92.5%
	MinMax        CalcType = "min_max"         // 85% and 100%
	MinMaxAverage CalcType = "min_max_average" // 85%, 92.5%, 100%
	All           CalcType = "all"             // every roll from 85% to 100%
)

// ParseCalcType validates s.
func ParseCalcType(s string) (CalcType, error) {
	switch ct := CalcType(s); ct {
	case Average, MinMax, MinMaxAverage, All:
		return ct, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCalcType, s)
}

// Rolls returns the random multipliers for ct, in ascending order, or nil
// for an unknown calc type.
func (ct CalcType) Rolls() []float64 {
	switch ct {
	case Average:
		return []float64{0.925}
	case MinMax:
		return []float64{0.85, 1}
	case MinMaxAverage:
		return []float64{0.85, 0.925, 1}
	case All:
		rolls := make([]float64, 0, 16)
		for r := 85; r <= 100; r++ {
			rolls = append(rolls, float64(r)/100)
		}
		return rolls
	default:
		return nil
	}
}

// Calculate returns the damage rolls of move from attacker against defender.
//
// The bool is false when the move does not deal damage by design (status
// moves). A move that hits but deals nothing, through immunity, a block or
// power reduced to zero, returns []int{0}. An unknown ct is rejected with
// ErrInvalidCalcType before anything is computed.
func Calculate(attacker, defender *model.Pokemon, move *data.Move, cond Conditions, ct CalcType) ([]int, bool, error) {
	if _, err := ParseCalcType(string(ct)); err != nil {
		return nil, false, err
	}
	rolls, ok := calculate(attacker, defender, move, cond, ct)
	return rolls, ok, nil
}

func calculate(attacker, defender *model.Pokemon, move *data.Move, cond Conditions, ct CalcType) ([]int, bool) {
	if !move.IsDamaging() {
		return nil, false
	}

	block := semiInvulnerableModifier(attacker, defender, move, cond)
	if block == 0 {
		return []int{0}, true
	}

	if move.FixedDamage {
		if typeModifier(defender, move) == 0 {
			return []int{0}, true
		}
		return []int{fixedDamage(attacker, defender, move)}, true
	}

	if move.BasePower <= 0 {
		return []int{0}, true
	}

	base := baseDamage(attacker, defender, move, cond)
	modifier := typeModifier(defender, move) *
		weatherModifier(move, cond) *
		stabModifier(attacker, move, cond) *
		burnModifier(attacker, move, cond) *
		terrainModifier(attacker, defender, move, cond) *
		screenModifier(attacker, move, cond) *
		block
	if modifier == 0 {
		return []int{0}, true
	}

	final := math.Floor(float64(base) * modifier)
	rolls := ct.Rolls()
	out := make([]int, len(rolls))
	for i, r := range rolls {
		out[i] = max(1, int(math.Floor(final*r)))
	}
	return out, true
}

// baseDamage is floor(floor(floor(2L/5+2) * BP * A / D) / 50) + 2.
func baseDamage(attacker, defender *model.Pokemon, move *data.Move, cond Conditions) int {
	atk, def := attackingStat(attacker, defender, move, cond), defendingStat(attacker, defender, move, cond)
	if def < 1 {
		def = 1
	}
	levelFactor := 2*attacker.Level/5 + 2
	return levelFactor*move.BasePower*atk/def/50 + 2
}

// attackingStat picks the offensive stat and its stage.
func attackingStat(attacker, defender *model.Pokemon, move *data.Move, cond Conditions) int {
	owner, stat := attacker, c.StatAttack
	switch {
	case move.ID == "foulplay":
		owner = defender
	case move.ID == "bodypress":
		stat = c.StatDefense
	case move.Category == c.CategorySpecial:
		stat = c.StatSpecialAttack
	}

	if cond.ability(defender) == "unaware" {
		return owner.Stat(stat)
	}
	return owner.BoostedStat(stat)
}

// defendingStat picks the defensive stat; psyshock family targets Defense.
func defendingStat(attacker, defender *model.Pokemon, move *data.Move, cond Conditions) int {
	stat := c.StatDefense
	if move.Category == c.CategorySpecial && !targetsPhysicalDefense[move.ID] {
		stat = c.StatSpecialDefense
	}

	v := defender.BoostedStat(stat)
	if cond.ability(attacker) == "unaware" {
		v = defender.Stat(stat)
	}

	switch {
	case stat == c.StatSpecialDefense && cond.Weather == c.WeatherSand && defender.HasType(c.TypeRock):
		v = v * 3 / 2
	case stat == c.StatDefense && cond.Weather == c.WeatherSnow && defender.HasType(c.TypeIce):
		v = v * 3 / 2
	}
	return v
}

var targetsPhysicalDefense = map[string]bool{
	"psyshock":    true,
	"psystrike":   true,
	"secretsword": true,
}
