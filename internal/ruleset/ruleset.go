// Package ruleset holds the per-generation mechanics constants.
//
// A Ruleset is an immutable value: it is passed by value into the damage
// calculator, the effect registries and the turn driver. Nothing in the
// engine keeps generation-specific state in package variables.
package ruleset

import (
	"errors"
	"fmt"
)

// ErrUnsupportedGeneration is returned by ForGeneration.
var ErrUnsupportedGeneration = errors.New("unsupported generation")

// Ruleset describes the mechanics that differ between generations.
type Ruleset struct {
	Generation int

	TerrainMultiplier    float64 // boost for terrain-matching moves
	HiddenPowerBasePower int

	FullParalysisChance    float64
	SleepWakeChance        float64 // per attempt, non-rest sleep
	ThawChance             float64
	ConfusionSelfHitChance float64

	HailDamages     bool // false once hail became snow
	KingsShieldDrop int  // attack stages lost on contact

	WeatherTurns         int
	ExtendedWeatherTurns int // with heat/damp/smooth/icy rock
	TerrainTurns         int
	ExtendedTerrainTurns int // with terrain extender
	ScreenTurns          int
	ExtendedScreenTurns  int // with light clay
	TailwindTurns        int
	TrickRoomTurns       int
	WishTurns            int
	FutureSightTurns     int
	RestTurns            int // set on rest; asleep while > 1
}

// Gen7 returns the generation 7 ruleset.
func Gen7() Ruleset {
	return Ruleset{
		Generation:             7,
		TerrainMultiplier:      1.5,
		HiddenPowerBasePower:   60,
		FullParalysisChance:    0.25,
		SleepWakeChance:        1.0 / 3,
		ThawChance:             0.2,
		ConfusionSelfHitChance: 1.0 / 3,
		HailDamages:            true,
		KingsShieldDrop:        -2,
		WeatherTurns:           5,
		ExtendedWeatherTurns:   8,
		TerrainTurns:           5,
		ExtendedTerrainTurns:   8,
		ScreenTurns:            5,
		ExtendedScreenTurns:    8,
		TailwindTurns:          4,
		TrickRoomTurns:         5,
		WishTurns:              2,
		FutureSightTurns:       3,
		RestTurns:              3,
	}
}

// Gen8 returns the generation 8 ruleset.
func Gen8() Ruleset {
	r := Gen7()
	r.Generation = 8
	r.TerrainMultiplier = 1.3
	r.KingsShieldDrop = -1
	return r
}

// Gen9 returns the generation 9 ruleset.
func Gen9() Ruleset {
	r := Gen8()
	r.Generation = 9
	r.HailDamages = false
	return r
}

// Default is the ruleset used when none is configured.
func Default() Ruleset {
	return Gen8()
}

// ForGeneration returns the ruleset for gen.
func ForGeneration(gen int) (Ruleset, error) {
	switch gen {
	case 7:
		return Gen7(), nil
	case 8:
		return Gen8(), nil
	case 9:
		return Gen9(), nil
	default:
		return Ruleset{}, fmt.Errorf("%w: %d", ErrUnsupportedGeneration, gen)
	}
}
