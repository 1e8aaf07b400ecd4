// Package instruction expands moves, switches and the end-of-turn phase
// into weighted branches over one shared state.
//
// Every step maps []model.Transposition → []model.Transposition. Frozen
// branches pass through untouched; a live branch is applied to the state,
// inspected, extended and reversed before the next one is looked at, so the
// state is never copied per branch.
package instruction

import (
	"fmt"

	"github.com/udisondev/battlecalc/internal/game/damage"
	"github.com/udisondev/battlecalc/internal/model"
	"github.com/udisondev/battlecalc/internal/ruleset"
)

// Chooser picks which of the legal replacements to branch on when a side
// switches out by its own choice. Returning every option branches uniformly.
type Chooser interface {
	Choose(s *model.State, side model.SideRef, options []string) []string
}

// Generator holds the state under expansion and the knobs that shape it.
type Generator struct {
	state   *model.State
	mut     *model.Mutator
	rules   ruleset.Ruleset
	calc    damage.CalcType
	chooser Chooser
}

// New returns a generator over s. Callers get s back unchanged after every
// call: branches are applied and reversed in place.
func New(s *model.State, rules ruleset.Ruleset, calc damage.CalcType, chooser Chooser) (*Generator, error) {
	if _, err := damage.ParseCalcType(string(calc)); err != nil {
		return nil, fmt.Errorf("new generator: %w", err)
	}
	return &Generator{
		state:   s,
		mut:     model.NewMutator(s),
		rules:   rules,
		calc:    calc,
		chooser: chooser,
	}, nil
}

// State returns the state the generator works on.
func (g *Generator) State() *model.State {
	return g.state
}

// each runs fn for every live branch while that branch is applied.
func (g *Generator) each(branches []model.Transposition, fn func(b model.Transposition) []model.Transposition) []model.Transposition {
	out := make([]model.Transposition, 0, len(branches))
	for _, b := range branches {
		if b.Frozen {
			out = append(out, b)
			continue
		}
		g.mut.Apply(b.Instructions)
		next := fn(b)
		g.mut.Reverse(b.Instructions)
		out = append(out, next...)
	}
	return out
}

// extend appends the deterministic instructions fn returns to each live branch.
func (g *Generator) extend(branches []model.Transposition, fn func() []model.Instruction) []model.Transposition {
	return g.each(branches, func(b model.Transposition) []model.Transposition {
		return []model.Transposition{b.Extend(1, fn()...)}
	})
}

// split forks b: yes at probability p, no at 1-p. Certain outcomes do
// not fork.
func split(b model.Transposition, p float64, yes, no []model.Instruction) []model.Transposition {
	switch {
	case p >= 1:
		return []model.Transposition{b.Extend(1, yes...)}
	case p <= 0:
		return []model.Transposition{b.Extend(1, no...)}
	}
	return []model.Transposition{b.Extend(p, yes...), b.Extend(1-p, no...)}
}

// journal collects instructions while keeping the state in step, for
// builders whose later instructions depend on earlier ones.
type journal struct {
	mut *model.Mutator
	log []model.Instruction
}

func (g *Generator) journal() *journal {
	return &journal{mut: g.mut}
}

func (j *journal) add(ins ...model.Instruction) {
	j.mut.Apply(ins)
	j.log = append(j.log, ins...)
}

// addOK adds the result of a model *For builder.
func (j *journal) addOK(in model.Instruction, ok bool) {
	if ok {
		j.add(in)
	}
}

// done reverses everything added and returns the log.
func (j *journal) done() []model.Instruction {
	j.mut.Reverse(j.log)
	return j.log
}
