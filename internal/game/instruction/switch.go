package instruction

import (
	"maps"
	"slices"

	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/data"
	"github.com/udisondev/battlecalc/internal/game/effects"
	"github.com/udisondev/battlecalc/internal/model"
)

// spikesDamage[layers] is the fraction of max HP spikes take, as 1/n.
var spikesDamage = [...]int{0, 8, 6, 4}

// Switch sends out reserve to on side in every live branch. A side whose
// active Pokemon fell before it could switch does nothing.
func (g *Generator) Switch(branches []model.Transposition, side model.SideRef, to string) []model.Transposition {
	return g.extend(branches, func() []model.Instruction {
		if g.state.Active(side).IsFainted() {
			return nil
		}
		return g.switchTo(side, to)
	})
}

// ReplaceFainted brings in a replacement wherever side's active Pokemon has
// fainted, one branch per option the chooser keeps.
func (g *Generator) ReplaceFainted(branches []model.Transposition, side model.SideRef) []model.Transposition {
	return g.each(branches, func(b model.Transposition) []model.Transposition {
		s := g.state
		if !s.Active(side).IsFainted() {
			return []model.Transposition{b}
		}
		return g.switchBranches(b, side, g.choose(side, s.Side(side).AliveReserves()))
	})
}

// choose asks the chooser which options to branch on. Picks outside
// options are dropped; with none left every option is kept.
func (g *Generator) choose(side model.SideRef, options []string) []string {
	if len(options) == 0 || g.chooser == nil {
		return options
	}
	var kept []string
	for _, id := range g.chooser.Choose(g.state, side, slices.Clone(options)) {
		if slices.Contains(options, id) && !slices.Contains(kept, id) {
			kept = append(kept, id)
		}
	}
	if len(kept) == 0 {
		return options
	}
	return kept
}

// switchTo builds a full switch from the live state: switch-out effects,
// the swap, entry hazards and switch-in hooks.
func (g *Generator) switchTo(side model.SideRef, to string) []model.Instruction {
	s := g.state
	j := g.journal()

	if !s.Active(side).IsFainted() {
		j.add(effects.OnSwitchOut(s, side, g.rules)...)
	}
	j.add(leaveField(s, side)...)
	j.add(model.Switch(side, s.Active(side).ID, to))
	j.add(g.entryHazards(side)...)
	if !s.Active(side).IsFainted() {
		j.add(effects.OnSwitchIn(s, side, g.rules)...)
	}
	return j.done()
}

// switchBranches forks b uniformly over options, switching side to each.
func (g *Generator) switchBranches(b model.Transposition, side model.SideRef, options []string) []model.Transposition {
	if len(options) == 0 {
		return []model.Transposition{b}
	}
	p := 1 / float64(len(options))
	out := make([]model.Transposition, 0, len(options))
	for _, to := range options {
		out = append(out, b.Extend(p, g.switchTo(side, to)...))
	}
	return out
}

// leaveField resets what does not survive a switch: volatiles, boosts,
// the toxic counter, disabled moves and changed typing.
func leaveField(s *model.State, side model.SideRef) []model.Instruction {
	p := s.Active(side)
	var out []model.Instruction

	if p.SubstituteHP > 0 {
		out = append(out, model.SetSubstituteHealth(side, 0, p.SubstituteHP))
	}
	for _, v := range slices.Sorted(maps.Keys(p.Volatile)) {
		if p.Volatile[v] {
			out = append(out, model.RemoveVolatile(side, v))
		}
	}
	for _, stat := range c.BoostableStats {
		if n := p.Boosts.Get(stat); n != 0 {
			out = append(out, model.Boost(side, stat, -n))
		}
	}
	if n := s.Side(side).Condition(c.SideToxicCount); n > 0 {
		out = append(out, model.SideEnd(side, c.SideToxicCount, n))
	}
	for _, slot := range p.Moves {
		if slot.Disabled {
			out = append(out, model.EnableMove(side, slot.ID))
		}
	}
	if sp, err := data.GetPokedex(p.ID); err == nil && sp.Types != p.Types {
		out = append(out, model.ChangeType(side, sp.Types, p.Types))
	}
	return out
}

// entryHazards resolves side's hazards against its new active Pokemon.
// Heavy-duty boots skip all of them.
func (g *Generator) entryHazards(side model.SideRef) []model.Instruction {
	s := g.state
	if effects.HeldItem(s, side) == "heavydutyboots" {
		return nil
	}
	p := s.Active(side)
	hazards := s.Side(side)
	guarded := s.Ability(side) == "magicguard"
	j := g.journal()

	if hazards.Condition(c.SideStealthRock) > 0 && !guarded {
		eff := data.TypeEffectiveness(c.TypeRock, p.Types[:]...)
		j.addOK(model.DamageFor(s, side, int(float64(p.MaxHP)*eff/8)))
	}
	if p.IsFainted() || !p.IsGrounded() {
		return j.done()
	}

	if n := hazards.Condition(c.SideSpikes); n > 0 && !guarded {
		j.addOK(model.DamageFor(s, side, p.MaxHP/spikesDamage[min(n, 3)]))
	}
	if p.IsFainted() {
		return j.done()
	}

	if n := hazards.Condition(c.SideToxicSpikes); n > 0 {
		switch {
		case p.HasType(c.TypePoison):
			j.add(model.SideEnd(side, c.SideToxicSpikes, n))
		case n >= 2 && g.canStatus(side, c.StatusToxic, true):
			j.add(model.ApplyStatus(side, c.StatusToxic, p.Status))
		case n == 1 && g.canStatus(side, c.StatusPoison, true):
			j.add(model.ApplyStatus(side, c.StatusPoison, p.Status))
		}
	}
	if hazards.Condition(c.SideStickyWeb) > 0 && !effects.BlocksStatDrops(s.Ability(side)) {
		j.addOK(model.BoostFor(s, side, c.StatSpeed, -1))
	}
	return j.done()
}
