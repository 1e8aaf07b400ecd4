package model

import "github.com/udisondev/battlecalc/internal/constants"

// DamageFor builds a damage instruction of up to amount against the active
// Pokemon of side. ok is false when nothing would change.
func DamageFor(s *State, side SideRef, amount int) (Instruction, bool) {
	p := s.Active(side)
	amount = min(amount, p.HP)
	if amount <= 0 {
		return Instruction{}, false
	}
	return Damage(side, amount), true
}

// HealFor builds a heal instruction of up to amount, capped at max HP.
func HealFor(s *State, side SideRef, amount int) (Instruction, bool) {
	p := s.Active(side)
	if p.IsFainted() {
		return Instruction{}, false
	}
	amount = min(amount, p.MaxHP-p.HP)
	if amount <= 0 {
		return Instruction{}, false
	}
	return Heal(side, amount), true
}

// BoostFor builds a boost instruction clamped to the stage limits.
func BoostFor(s *State, side SideRef, stat string, delta int) (Instruction, bool) {
	cur := s.Active(side).Boosts.Get(stat)
	next := min(max(cur+delta, constants.MinBoost), constants.MaxBoost)
	if next == cur {
		return Instruction{}, false
	}
	return Boost(side, stat, next-cur), true
}

// Fraction returns max(1, maxHP*num/den) for residual chip and heal amounts.
func (p *Pokemon) Fraction(num, den int) int {
	return max(1, p.MaxHP*num/den)
}

// Maybe wraps the result of a *For builder as a zero- or one-element log.
func Maybe(in Instruction, ok bool) []Instruction {
	if !ok {
		return nil
	}
	return []Instruction{in}
}
