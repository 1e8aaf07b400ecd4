package effects

import (
	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/data"
	"github.com/udisondev/battlecalc/internal/model"
	"github.com/udisondev/battlecalc/internal/ruleset"
)

// MoveContext is what move hooks see for one attack.
type MoveContext struct {
	State        *model.State
	AttackerSide model.SideRef
	Rules        ruleset.Ruleset

	// Move is the resolved move; rewrite hooks change it in place.
	Move *data.Move
	// DefenderMove is the move the defender picked this turn, nil when it
	// switches or has no action.
	DefenderMove      *data.Move
	DefenderSwitching bool
	AttackerFirst     bool

	// Filled by the generator before AfterMove and AfterHit fire.
	Damage        int
	HitSubstitute bool
}

// DefenderSide is the side being attacked.
func (ctx *MoveContext) DefenderSide() model.SideRef {
	return ctx.AttackerSide.Other()
}

func (ctx *MoveContext) Attacker() *model.Pokemon {
	return ctx.State.Active(ctx.AttackerSide)
}

func (ctx *MoveContext) Defender() *model.Pokemon {
	return ctx.State.Active(ctx.DefenderSide())
}

// Effectiveness is the type multiplier of the resolved move on the defender.
func (ctx *MoveContext) Effectiveness() float64 {
	return data.TypeEffectiveness(ctx.Move.Type, ctx.Defender().Types[:]...)
}

// Event is the context of switch-in, switch-out and end-of-turn hooks.
type Event struct {
	State *model.State
	Side  model.SideRef
	Rules ruleset.Ruleset
}

func (ev Event) Pokemon() *model.Pokemon {
	return ev.State.Active(ev.Side)
}

// Foe returns the opposing active Pokemon.
func (ev Event) Foe() *model.Pokemon {
	return ev.State.Active(ev.Side.Other())
}

// HeldItem returns the item of ref's active Pokemon, or "" under klutz.
func HeldItem(s *model.State, ref model.SideRef) string {
	p := s.Active(ref)
	if p == nil || s.Ability(ref) == "klutz" {
		return ""
	}
	return p.Item
}

// nullify turns m into a move that connects and does nothing.
func nullify(m *data.Move) {
	m.Category = c.CategoryStatus
	m.BasePower = 0
	m.Status = ""
	m.VolatileStatus = ""
	m.Boosts = nil
	m.SideCondition = ""
	m.Heal = data.Fraction{}
	m.Drain = data.Fraction{}
	m.Recoil = data.Fraction{}
	m.Secondary = nil
	m.Self = nil
	m.SelfSwitch = false
	m.ForceSwitch = false
	m.RemovesHazards = false
	m.FixedDamage = false
	m.LockedMove = false
	m.Recharge = false
	m.AlwaysHits = true
}

// absorb nullifies m and heals the target by frac of its max HP.
func absorb(m *data.Move, frac data.Fraction) {
	nullify(m)
	m.Heal = frac
	m.HealTarget = c.TargetNormal
}

// absorbBoost nullifies m and raises the target's stat by one stage.
func absorbBoost(m *data.Move, stat string) {
	nullify(m)
	m.Boosts = map[string]int{stat: 1}
	m.Target = c.TargetNormal
}

// scale multiplies base power, flooring.
func scale(m *data.Move, f float64) {
	m.BasePower = int(float64(m.BasePower) * f)
}
