package effects

import (
	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/model"
	"github.com/udisondev/battlecalc/internal/ruleset"
)

// ResolveMove rewrites ctx.Move in place: the move itself, then the
// attacker's ability and item, then the defender's ability and item.
func ResolveMove(ctx *MoveContext) {
	s := ctx.State
	att, def := ctx.AttackerSide, ctx.DefenderSide()

	Moves.Lookup(ctx.Move.ID).ModifyOwnMove(ctx)
	if ctx.Move.Flags.Powder && incoming(ctx) && ctx.Defender().HasType(c.TypeGrass) {
		nullify(ctx.Move)
	}

	Abilities.Lookup(s.Ability(att)).ModifyOwnMove(ctx)
	Items.Lookup(HeldItem(s, att)).ModifyOwnMove(ctx)
	if !ignoresDefenderAbility(s, att) {
		Abilities.Lookup(s.Ability(def)).ModifyIncomingMove(ctx)
	}
	Items.Lookup(HeldItem(s, def)).ModifyIncomingMove(ctx)

	multiHit(ctx)
}

func ignoresDefenderAbility(s *model.State, att model.SideRef) bool {
	return moldBreakers[s.Ability(att)] && !moldBreakerProof[s.Ability(att.Other())]
}

// DefenderAbility is the defender's ability as the attacker's move sees it.
func DefenderAbility(s *model.State, att model.SideRef) string {
	if ignoresDefenderAbility(s, att) {
		return ""
	}
	return s.Ability(att.Other())
}

// chain runs hooks in order. Each hook sees the state left by the ones
// before it; the state is restored before chain returns.
func chain[T any](s *model.State, arg T, hooks ...func(T) []model.Instruction) []model.Instruction {
	m := model.NewMutator(s)
	var out []model.Instruction
	for _, hook := range hooks {
		ins := hook(arg)
		m.Apply(ins)
		out = append(out, ins...)
	}
	m.Reverse(out)
	return out
}

// BeforeMove fires the attacker's move, ability and item hooks.
func BeforeMove(ctx *MoveContext) []model.Instruction {
	s, att := ctx.State, ctx.AttackerSide
	return chain(s, ctx,
		Moves.Lookup(ctx.Move.ID).BeforeMove,
		Abilities.Lookup(s.Ability(att)).BeforeMove,
		Items.Lookup(HeldItem(s, att)).BeforeMove,
	)
}

// AfterMove fires once the move has connected: the attacker's move,
// ability and item, then the defender's ability and item reactions.
func AfterMove(ctx *MoveContext) []model.Instruction {
	s, att, def := ctx.State, ctx.AttackerSide, ctx.DefenderSide()
	return chain(s, ctx,
		Moves.Lookup(ctx.Move.ID).AfterMove,
		Abilities.Lookup(s.Ability(att)).AfterMove,
		Items.Lookup(HeldItem(s, att)).AfterMove,
		Abilities.Lookup(s.Ability(def)).AfterHit,
		Items.Lookup(HeldItem(s, def)).AfterHit,
	)
}

// OnSwitchIn fires the ability and item hooks of side's new active Pokemon.
func OnSwitchIn(s *model.State, side model.SideRef, rules ruleset.Ruleset) []model.Instruction {
	ev := Event{State: s, Side: side, Rules: rules}
	return chain(s, ev,
		Abilities.Lookup(s.Ability(side)).OnSwitchIn,
		Items.Lookup(HeldItem(s, side)).OnSwitchIn,
	)
}

// OnSwitchOut fires before side's active Pokemon leaves the field.
func OnSwitchOut(s *model.State, side model.SideRef, rules ruleset.Ruleset) []model.Instruction {
	if s.Active(side).IsFainted() {
		return nil
	}
	ev := Event{State: s, Side: side, Rules: rules}
	return chain(s, ev,
		Abilities.Lookup(s.Ability(side)).OnSwitchOut,
		Items.Lookup(HeldItem(s, side)).OnSwitchOut,
	)
}

// EndOfTurn fires side's ability then item residuals. Fainted Pokemon are skipped.
func EndOfTurn(s *model.State, side model.SideRef, rules ruleset.Ruleset) []model.Instruction {
	if s.Active(side).IsFainted() {
		return nil
	}
	ev := Event{State: s, Side: side, Rules: rules}
	return chain(s, ev,
		Abilities.Lookup(s.Ability(side)).EndOfTurn,
		Items.Lookup(HeldItem(s, side)).EndOfTurn,
	)
}
