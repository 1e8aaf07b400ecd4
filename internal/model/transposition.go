package model

import "slices"

// Transposition is one weighted outcome: a probability, the instruction log
// that produces it from the input state and whether it may branch further.
type Transposition struct {
	Probability  float64
	Instructions []Instruction
	Frozen       bool
}

// NewTransposition returns the certain, empty branch.
func NewTransposition() Transposition {
	return Transposition{Probability: 1}
}

// Extend returns a copy with probability scaled by p and ins appended.
// The receiver's log is never shared with the result.
func (t Transposition) Extend(p float64, ins ...Instruction) Transposition {
	log := make([]Instruction, 0, len(t.Instructions)+len(ins))
	log = append(log, t.Instructions...)
	log = append(log, ins...)
	return Transposition{
		Probability:  t.Probability * p,
		Instructions: log,
		Frozen:       t.Frozen,
	}
}

// Freeze returns a copy marked frozen.
func (t Transposition) Freeze() Transposition {
	t.Instructions = slices.Clone(t.Instructions)
	t.Frozen = true
	return t
}
