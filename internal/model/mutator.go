package model

import "fmt"

// Mutator applies and reverses instruction logs on one State.
//
// Every caller brackets a read with Apply and Reverse of the same log and
// leaves the State as it found it.
type Mutator struct {
	state *State
}

// NewMutator returns a Mutator bound to s.
func NewMutator(s *State) *Mutator {
	return &Mutator{state: s}
}

// State returns the bound state.
func (m *Mutator) State() *State {
	return m.state
}

// Apply runs instructions in order.
func (m *Mutator) Apply(instructions []Instruction) {
	for i := range instructions {
		m.apply(&instructions[i], false)
	}
}

// Reverse undoes instructions in reverse order.
func (m *Mutator) Reverse(instructions []Instruction) {
	for i := len(instructions) - 1; i >= 0; i-- {
		m.apply(&instructions[i], true)
	}
}

func (m *Mutator) apply(in *Instruction, reverse bool) {
	s := m.state
	side := s.Side(in.Side)
	p := side.Active

	sign := 1
	if reverse {
		sign = -1
	}

	switch in.Kind {
	case KindSwitch:
		from, to := in.Previous, in.Name
		if reverse {
			from, to = to, from
		}
		side.Reserve[from] = side.Active
		side.Active = side.Reserve[to]
		delete(side.Reserve, to)

	case KindApplyVolatileStatus, KindRemoveVolatileStatus:
		if (in.Kind == KindApplyVolatileStatus) != reverse {
			p.Volatile[in.Name] = true
		} else {
			delete(p.Volatile, in.Name)
		}

	case KindDamage:
		p.HP -= sign * in.Amount
	case KindHeal:
		p.HP += sign * in.Amount
	case KindBoost:
		p.Boosts.add(in.Name, sign*in.Amount)

	case KindApplyStatus:
		if reverse {
			p.Status = in.Previous
		} else {
			p.Status = in.Name
		}
	case KindRemoveStatus:
		if reverse {
			p.Status = in.Name
		} else {
			p.Status = ""
		}
	case KindSetRestTurns:
		p.RestTurns = pick(reverse, in.Amount, in.PreviousAmount)

	case KindSideStart:
		adjustCondition(side, in.Name, sign*in.Amount)
	case KindSideDecrement:
		adjustCondition(side, in.Name, -sign*in.Amount)
	case KindSideEnd:
		if reverse {
			side.SideConditions[in.Name] = in.PreviousAmount
		} else {
			delete(side.SideConditions, in.Name)
		}

	case KindWishStart:
		side.Wish = Wish{
			Amount: pick(reverse, in.Amount, in.PreviousAmount),
			Turns:  pick(reverse, in.Turns, in.PreviousTurns),
		}
	case KindWishDecrement:
		side.Wish.Turns -= sign
	case KindFutureSightStart:
		side.FutureSight = FutureSight{
			Source: pick(reverse, in.Name, in.Previous),
			Turns:  pick(reverse, in.Turns, in.PreviousTurns),
		}
	case KindFutureSightDecrement:
		side.FutureSight.Turns -= sign

	case KindDisableMove, KindEnableMove:
		if slot := p.Move(in.Name); slot != nil {
			slot.Disabled = (in.Kind == KindDisableMove) != reverse
		}
	case KindDecrementPP:
		if slot := p.Move(in.Name); slot != nil {
			slot.PP -= sign * in.Amount
		}

	case KindWeatherStart:
		s.Weather = pick(reverse, in.Name, in.Previous)
		s.WeatherTurns = pick(reverse, in.Turns, in.PreviousTurns)
	case KindDecrementWeather:
		s.WeatherTurns -= sign
	case KindFieldStart:
		s.Field = pick(reverse, in.Name, in.Previous)
		s.FieldTurns = pick(reverse, in.Turns, in.PreviousTurns)
	case KindDecrementField:
		s.FieldTurns -= sign
	case KindToggleTrickRoom:
		s.TrickRoom = !s.TrickRoom
		s.TrickRoomTurns = pick(reverse, in.Turns, in.PreviousTurns)
	case KindDecrementTrickRoom:
		s.TrickRoomTurns -= sign

	case KindChangeType:
		p.Types = pick(reverse, in.Types, in.PreviousTypes)
	case KindChangeItem:
		p.Item = pick(reverse, in.Name, in.Previous)
	case KindSetSubstituteHealth:
		p.SubstituteHP = pick(reverse, in.Amount, in.PreviousAmount)

	default:
		panic(fmt.Sprintf("model: unknown instruction kind %d", in.Kind))
	}
}

// adjustCondition keeps SideConditions free of zero counts.
func adjustCondition(side *Side, name string, delta int) {
	n := side.SideConditions[name] + delta
	if n == 0 {
		delete(side.SideConditions, name)
		return
	}
	side.SideConditions[name] = n
}

func pick[T any](reverse bool, forward, backward T) T {
	if reverse {
		return backward
	}
	return forward
}
