// Package turn resolves one battle turn: it orders the two actions, chains
// the first mover's branches into the second mover's and then into the
// end-of-turn phase, and merges branches with identical logs.
package turn

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"

	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/data"
	"github.com/udisondev/battlecalc/internal/game/damage"
	"github.com/udisondev/battlecalc/internal/game/effects"
	"github.com/udisondev/battlecalc/internal/game/instruction"
	"github.com/udisondev/battlecalc/internal/model"
	"github.com/udisondev/battlecalc/internal/ruleset"
)

// LevelCritical is logged right before the engine aborts on a broken
// invariant.
const LevelCritical = slog.Level(12)

// exit aborts the process. Tests replace it.
var exit = os.Exit

func fatal(msg string, args ...any) {
	slog.Log(context.Background(), LevelCritical, msg, args...)
	exit(1)
}

// Options configure an Engine.
type Options struct {
	CalcType       damage.CalcType
	Ruleset        ruleset.Ruleset // zero value selects ruleset.Default
	SwitchPolicy   SwitchPolicy    // nil selects UniformPolicy
	ReplaceFainted bool            // bring in replacements after the end-of-turn phase
}

// Engine computes the transpositions of a turn. It keeps no per-call
// state, so one Engine may serve many goroutines as long as each works on
// its own State.
type Engine struct {
	calc           damage.CalcType
	rules          ruleset.Ruleset
	policy         SwitchPolicy
	replaceFainted bool
}

// New validates opts and returns an engine.
func New(opts Options) (*Engine, error) {
	calc, err := damage.ParseCalcType(string(opts.CalcType))
	if err != nil {
		return nil, fmt.Errorf("new turn engine: %w", err)
	}
	rules := opts.Ruleset
	if rules.Generation == 0 {
		rules = ruleset.Default()
	}
	policy := opts.SwitchPolicy
	if policy == nil {
		policy = UniformPolicy{}
	}
	return &Engine{
		calc:           calc,
		rules:          rules,
		policy:         policy,
		replaceFainted: opts.ReplaceFainted,
	}, nil
}

// Rules returns the ruleset the engine plays by.
func (e *Engine) Rules() ruleset.Ruleset {
	return e.rules
}

type mover struct {
	side   model.SideRef
	action Action
	actor  string // active Pokemon when the turn started
}

// Transpositions returns every outcome of the turn in which the user plays
// user and the opponent plays opp. s is left exactly as it was passed in.
func (e *Engine) Transpositions(s *model.State, user, opp Action) ([]model.Transposition, error) {
	user, err := validate(s, model.Self, user)
	if err != nil {
		return nil, err
	}
	opp, err = validate(s, model.Opponent, opp)
	if err != nil {
		return nil, err
	}

	g, err := instruction.New(s, e.rules, e.calc, e.policy)
	if err != nil {
		return nil, err
	}
	movers := [2]mover{
		{model.Self, user, s.Self.Active.ID},
		{model.Opponent, opp, s.Opponent.Active.ID},
	}
	if !UserMovesFirst(s, e.rules, user, opp) {
		movers[0], movers[1] = movers[1], movers[0]
	}

	branches := []model.Transposition{model.NewTransposition()}
	used := make(map[model.SideRef]instruction.UsedMove, len(movers))
	for i, m := range movers {
		branches = standDown(s, m, branches)
		branches = thaw(e.act(g, branches, m, movers[1-i], i == 0))
		if m.action.Kind == ActionMove {
			used[m.side] = instruction.UsedMove{Pokemon: m.actor, Move: m.action.Target}
		}
	}

	branches = g.EndOfTurn(branches, movers[0].side, used)
	if e.replaceFainted {
		for _, m := range movers {
			branches = g.ReplaceFainted(branches, m.side)
		}
	}
	branches = freezeTerminal(s, branches)

	generated := len(branches)
	branches = merge(branches)
	branches = slices.DeleteFunc(branches, func(b model.Transposition) bool {
		return b.Probability <= 0
	})
	slog.Debug("turn resolved",
		"user", user.String(),
		"opponent", opp.String(),
		"generated", generated,
		"merged", len(branches))
	return branches, nil
}

func (e *Engine) act(g *instruction.Generator, branches []model.Transposition, m, other mover, first bool) []model.Transposition {
	switch m.action.Kind {
	case ActionSwitch:
		return g.Switch(branches, m.side, m.action.Target)
	case ActionRecharge:
		return g.Recharge(branches, m.side)
	case ActionMove:
		mu := instruction.Matchup{
			DefenderSwitching: other.action.Kind == ActionSwitch,
			AttackerFirst:     first,
		}
		if other.action.Kind == ActionMove {
			if move, err := data.GetMove(other.action.Target); err == nil {
				mu.DefenderMove = move
			}
		}
		return g.Move(branches, m.side, m.action.Target, mu)
	default:
		return branches
	}
}

// validate checks a against s. A Pokemon that must recharge recharges
// whatever was chosen for it.
func validate(s *model.State, side model.SideRef, a Action) (Action, error) {
	p := s.Active(side)
	if p == nil {
		return a, fmt.Errorf("%s: %w", side, ErrNoActivePokemon)
	}
	recharging := p.HasVolatile(c.VolatileMustRecharge) && !p.IsFainted()
	if recharging {
		return Action{Kind: ActionRecharge}, nil
	}

	switch a.Kind {
	case ActionRecharge:
		fatal("recharge chosen with no pending recharge", "side", side.String(), "pokemon", p.ID)
	case ActionSwitch:
		r, ok := s.Side(side).Reserve[a.Target]
		if !ok || r.IsFainted() {
			return a, fmt.Errorf("%w: %s cannot switch to %q", ErrInvalidAction, side, a.Target)
		}
		if trapped(s, side) {
			return a, fmt.Errorf("%w: %s is trapped", ErrInvalidAction, side)
		}
	case ActionMove:
		if _, err := data.GetMove(a.Target); err != nil {
			return a, fmt.Errorf("%w: %w", ErrInvalidAction, err)
		}
	}
	return a, nil
}

// trapped reports whether side's active Pokemon is kept from switching.
func trapped(s *model.State, side model.SideRef) bool {
	p := s.Active(side)
	if p.IsFainted() || p.HasType(c.TypeGhost) || effects.HeldItem(s, side) == "shedshell" {
		return false
	}
	return s.Side(side).Trapped || p.HasVolatile(c.VolatilePartiallyTrapped)
}

// standDown freezes the branches in which m's Pokemon was forced out
// before it could act. The one dragged in does not act this turn.
func standDown(s *model.State, m mover, branches []model.Transposition) []model.Transposition {
	mut := model.NewMutator(s)
	for i, b := range branches {
		if b.Frozen {
			continue
		}
		mut.Apply(b.Instructions)
		if s.Active(m.side).ID != m.actor {
			branches[i].Frozen = true
		}
		mut.Reverse(b.Instructions)
	}
	return branches
}

// thaw lets the next mover act on branches the previous one cut short.
func thaw(branches []model.Transposition) []model.Transposition {
	for i := range branches {
		branches[i].Frozen = false
	}
	return branches
}

// freezeTerminal marks branches after which the battle is decided.
func freezeTerminal(s *model.State, branches []model.Transposition) []model.Transposition {
	mut := model.NewMutator(s)
	for i, b := range branches {
		mut.Apply(b.Instructions)
		if s.BattleOver() {
			branches[i].Frozen = true
		}
		mut.Reverse(b.Instructions)
	}
	return branches
}

// merge folds branches with equal logs into the first of them.
func merge(branches []model.Transposition) []model.Transposition {
	out := make([]model.Transposition, 0, len(branches))
	seen := make(map[string]int, len(branches))
	for _, b := range branches {
		key := model.LogKey(b.Instructions)
		if i, ok := seen[key]; ok {
			out[i].Probability += b.Probability
			continue
		}
		seen[key] = len(out)
		out = append(out, b)
	}
	return out
}
