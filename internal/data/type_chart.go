package data

import "github.com/udisondev/battlecalc/internal/constants"

// typeChart[attacking][defending] хранит только отличные от 1.0 множители.
// Отсутствующая пара = нейтральный урон.
var typeChart = map[string]map[string]float64{
	constants.TypeNormal: {
		constants.TypeRock: 0.5, constants.TypeGhost: 0, constants.TypeSteel: 0.5,
	},
	constants.TypeFire: {
		constants.TypeFire: 0.5, constants.TypeWater: 0.5, constants.TypeGrass: 2, constants.TypeIce: 2,
		constants.TypeBug: 2, constants.TypeRock: 0.5, constants.TypeDragon: 0.5, constants.TypeSteel: 2,
	},
	constants.TypeWater: {
		constants.TypeFire: 2, constants.TypeWater: 0.5, constants.TypeGrass: 0.5, constants.TypeGround: 2,
		constants.TypeRock: 2, constants.TypeDragon: 0.5,
	},
	constants.TypeElectric: {
		constants.TypeWater: 2, constants.TypeElectric: 0.5, constants.TypeGrass: 0.5, constants.TypeGround: 0,
		constants.TypeFlying: 2, constants.TypeDragon: 0.5,
	},
	constants.TypeGrass: {
		constants.TypeFire: 0.5, constants.TypeWater: 2, constants.TypeGrass: 0.5, constants.TypePoison: 0.5,
		constants.TypeGround: 2, constants.TypeFlying: 0.5, constants.TypeBug: 0.5, constants.TypeRock: 2,
		constants.TypeDragon: 0.5, constants.TypeSteel: 0.5,
	},
	constants.TypeIce: {
		constants.TypeFire: 0.5, constants.TypeWater: 0.5, constants.TypeGrass: 2, constants.TypeIce: 0.5,
		constants.TypeGround: 2, constants.TypeFlying: 2, constants.TypeDragon: 2, constants.TypeSteel: 0.5,
	},
	constants.TypeFighting: {
		constants.TypeNormal: 2, constants.TypeIce: 2, constants.TypePoison: 0.5, constants.TypeFlying: 0.5,
		constants.TypePsychic: 0.5, constants.TypeBug: 0.5, constants.TypeRock: 2, constants.TypeGhost: 0,
		constants.TypeDark: 2, constants.TypeSteel: 2, constants.TypeFairy: 0.5,
	},
	constants.TypePoison: {
		constants.TypeGrass: 2, constants.TypePoison: 0.5, constants.TypeGround: 0.5, constants.TypeRock: 0.5,
		constants.TypeGhost: 0.5, constants.TypeSteel: 0, constants.TypeFairy: 2,
	},
	constants.TypeGround: {
		constants.TypeFire: 2, constants.TypeElectric: 2, constants.TypeGrass: 0.5, constants.TypePoison: 2,
		constants.TypeFlying: 0, constants.TypeBug: 0.5, constants.TypeRock: 2, constants.TypeSteel: 2,
	},
	constants.TypeFlying: {
		constants.TypeElectric: 0.5, constants.TypeGrass: 2, constants.TypeFighting: 2, constants.TypeBug: 2,
		constants.TypeRock: 0.5, constants.TypeSteel: 0.5,
	},
	constants.TypePsychic: {
		constants.TypeFighting: 2, constants.TypePoison: 2, constants.TypePsychic: 0.5, constants.TypeDark: 0,
		constants.TypeSteel: 0.5,
	},
	constants.TypeBug: {
		constants.TypeFire: 0.5, constants.TypeGrass: 2, constants.TypeFighting: 0.5, constants.TypePoison: 0.5,
		constants.TypeFlying: 0.5, constants.TypePsychic: 2, constants.TypeGhost: 0.5, constants.TypeDark: 2,
		constants.TypeSteel: 0.5, constants.TypeFairy: 0.5,
	},
	constants.TypeRock: {
		constants.TypeFire: 2, constants.TypeIce: 2, constants.TypeFighting: 0.5, constants.TypeGround: 0.5,
		constants.TypeFlying: 2, constants.TypeBug: 2, constants.TypeSteel: 0.5,
	},
	constants.TypeGhost: {
		constants.TypeNormal: 0, constants.TypePsychic: 2, constants.TypeGhost: 2, constants.TypeDark: 0.5,
	},
	constants.TypeDragon: {
		constants.TypeDragon: 2, constants.TypeSteel: 0.5, constants.TypeFairy: 0,
	},
	constants.TypeDark: {
		constants.TypeFighting: 0.5, constants.TypePsychic: 2, constants.TypeGhost: 2, constants.TypeDark: 0.5,
		constants.TypeFairy: 0.5,
	},
	constants.TypeSteel: {
		constants.TypeFire: 0.5, constants.TypeWater: 0.5, constants.TypeElectric: 0.5, constants.TypeIce: 2,
		constants.TypeRock: 2, constants.TypeSteel: 0.5, constants.TypeFairy: 2,
	},
	constants.TypeFairy: {
		constants.TypeFire: 0.5, constants.TypeFighting: 2, constants.TypePoison: 0.5, constants.TypeDragon: 2,
		constants.TypeDark: 2, constants.TypeSteel: 0.5,
	},
}

// AllTypes lists the 18 battle types in chart order.
var AllTypes = [...]string{
	constants.TypeNormal, constants.TypeFire, constants.TypeWater, constants.TypeElectric,
	constants.TypeGrass, constants.TypeIce, constants.TypeFighting, constants.TypePoison,
	constants.TypeGround, constants.TypeFlying, constants.TypePsychic, constants.TypeBug,
	constants.TypeRock, constants.TypeGhost, constants.TypeDragon, constants.TypeDark,
	constants.TypeSteel, constants.TypeFairy,
}

// TypeMultiplier returns the single-type multiplier of attackType against defendType.
// Typeless attacks and unknown types are neutral.
func TypeMultiplier(attackType, defendType string) float64 {
	row, ok := typeChart[attackType]
	if !ok {
		return 1
	}
	if m, ok := row[defendType]; ok {
		return m
	}
	return 1
}

// TypeEffectiveness returns the combined multiplier of attackType against
// every type in defending. Empty entries are skipped, so a mono-type
// Pokemon may be passed as [2]string{"fire", ""}.
func TypeEffectiveness(attackType string, defending ...string) float64 {
	m := 1.0
	for _, t := range defending {
		if t == "" {
			continue
		}
		m *= TypeMultiplier(attackType, t)
	}
	return m
}

// IsType reports whether s is one of the 18 battle types.
func IsType(s string) bool {
	_, ok := typeChart[s]
	return ok
}
