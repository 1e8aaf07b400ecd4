package data

// Random-battle sets: 31 IVs, 85 EVs in every stat, neutral nature.
const (
	defaultIV = 31
	defaultEV = 85
)

// Stats are the five non-HP battle stats.
type Stats struct {
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
}

// CalcHP returns max HP for a base HP stat at level.
// Shedinja (base 1) always has 1 HP.
func CalcHP(base, level int) int {
	if base == 1 {
		return 1
	}
	return (2*base+defaultIV+defaultEV/4)*level/100 + level + 10
}

// CalcStat returns a non-HP stat for base at level.
func CalcStat(base, level int) int {
	return (2*base+defaultIV+defaultEV/4)*level/100 + 5
}

// CalculateStats returns max HP and battle stats for a species at level.
func CalculateStats(base BaseStats, level int) (int, Stats) {
	return CalcHP(base.HP, level), Stats{
		Attack:         CalcStat(base.Attack, level),
		Defense:        CalcStat(base.Defense, level),
		SpecialAttack:  CalcStat(base.SpecialAttack, level),
		SpecialDefense: CalcStat(base.SpecialDefense, level),
		Speed:          CalcStat(base.Speed, level),
	}
}

// boostMultipliers[boost+6]: множители для attack..speed.
var boostMultipliers = [13]float64{
	2.0 / 8, 2.0 / 7, 2.0 / 6, 2.0 / 5, 2.0 / 4, 2.0 / 3,
	1,
	3.0 / 2, 4.0 / 2, 5.0 / 2, 6.0 / 2, 7.0 / 2, 8.0 / 2,
}

// accuracyMultipliers[boost+6]: множители для accuracy/evasion.
var accuracyMultipliers = [13]float64{
	3.0 / 9, 3.0 / 8, 3.0 / 7, 3.0 / 6, 3.0 / 5, 3.0 / 4,
	1,
	4.0 / 3, 5.0 / 3, 6.0 / 3, 7.0 / 3, 8.0 / 3, 9.0 / 3,
}

func clampBoost(boost int) int {
	return min(max(boost, -6), 6)
}

// BoostMultiplier returns the stat multiplier for a boost stage.
func BoostMultiplier(boost int) float64 {
	return boostMultipliers[clampBoost(boost)+6]
}

// AccuracyMultiplier returns the accuracy/evasion multiplier for a stage.
func AccuracyMultiplier(boost int) float64 {
	return accuracyMultipliers[clampBoost(boost)+6]
}
