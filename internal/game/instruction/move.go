package instruction

import (
	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/data"
	"github.com/udisondev/battlecalc/internal/game/damage"
	"github.com/udisondev/battlecalc/internal/game/effects"
	"github.com/udisondev/battlecalc/internal/model"
)

// Matchup is what the attacker can know about the other side's action.
type Matchup struct {
	DefenderMove      *data.Move // nil when the defender switches or does nothing
	DefenderSwitching bool
	AttackerFirst     bool
}

// Move expands side using move id in every live branch. Unknown moves
// leave the branches as they are; the caller validates actions.
func (g *Generator) Move(branches []model.Transposition, side model.SideRef, id string, mu Matchup) []model.Transposition {
	tmpl, err := data.GetMove(id)
	if err != nil {
		return branches
	}
	slot := data.ToID(id)

	out := make([]model.Transposition, 0, len(branches))
	for _, b := range branches {
		if b.Frozen {
			out = append(out, b)
			continue
		}
		out = append(out, g.useMove(b, side, slot, tmpl, mu)...)
	}
	return out
}

// Recharge spends side's turn on a pending recharge.
func (g *Generator) Recharge(branches []model.Transposition, side model.SideRef) []model.Transposition {
	return g.extend(branches, func() []model.Instruction {
		if !g.state.Active(side).HasVolatile(c.VolatileMustRecharge) {
			return nil
		}
		return []model.Instruction{model.RemoveVolatile(side, c.VolatileMustRecharge)}
	})
}

// moveRun is one move being expanded from one starting branch.
type moveRun struct {
	g     *Generator
	att   model.SideRef
	def   model.SideRef
	slot  string
	ctx   *effects.MoveContext
	start int // log length of the branch the move started from
}

func (g *Generator) useMove(b model.Transposition, side model.SideRef, slot string, tmpl *data.Move, mu Matchup) []model.Transposition {
	g.mut.Apply(b.Instructions)
	if g.state.Active(side).IsFainted() {
		g.mut.Reverse(b.Instructions)
		return []model.Transposition{b}
	}
	ctx := &effects.MoveContext{
		State:             g.state,
		AttackerSide:      side,
		Rules:             g.rules,
		Move:              tmpl.Clone(),
		DefenderMove:      mu.DefenderMove,
		DefenderSwitching: mu.DefenderSwitching,
		AttackerFirst:     mu.AttackerFirst,
	}
	effects.ResolveMove(ctx)
	g.mut.Reverse(b.Instructions)

	r := &moveRun{
		g:     g,
		att:   side,
		def:   side.Other(),
		slot:  slot,
		ctx:   ctx,
		start: len(b.Instructions),
	}
	branches := []model.Transposition{b}
	for _, step := range r.steps() {
		branches = step(branches)
	}
	return branches
}

func (r *moveRun) steps() []func([]model.Transposition) []model.Transposition {
	return []func([]model.Transposition) []model.Transposition{
		r.each(r.recharging),
		r.each(r.sleeping),
		r.each(r.frozen),
		r.each(r.flinched),
		r.each(r.confused),
		r.each(r.paralyzed),
		r.spendPP,
		r.beforeMove,
		r.each(r.noTarget),
		r.each(r.charge),
		r.each(r.protected),
		r.each(r.accuracy),
		r.each(r.damage),
		r.sideCondition,
		r.clearHazards,
		r.field,
		r.heal,
		r.status,
		r.each(r.volatile),
		r.boosts,
		r.each(r.secondary),
		r.selfEffects,
		r.each(r.afterMove),
		r.each(r.drag),
		r.each(r.selfSwitch),
	}
}

func (r *moveRun) each(fn func(b model.Transposition) []model.Transposition) func([]model.Transposition) []model.Transposition {
	return func(bs []model.Transposition) []model.Transposition {
		return r.g.each(bs, fn)
	}
}

func (r *moveRun) attacker() *model.Pokemon { return r.g.state.Active(r.att) }
func (r *moveRun) defender() *model.Pokemon { return r.g.state.Active(r.def) }

// target is the side the move's primary effects land on.
func (r *moveRun) target() model.SideRef {
	if r.ctx.Move.TargetsSelf() {
		return r.att
	}
	return r.def
}

// hitsSubstitute reports whether the defender's substitute takes the move.
func (r *moveRun) hitsSubstitute() bool {
	if !r.defender().HasVolatile(c.VolatileSubstitute) {
		return false
	}
	return !r.ctx.Move.Flags.Sound && r.g.state.Ability(r.att) != "infiltrator"
}

// landed sums the damage this move has dealt to the defender in b and
// reports whether a substitute took it.
func (r *moveRun) landed(b model.Transposition) (dealt int, hitSub bool) {
	for _, in := range b.Instructions[r.start:] {
		if in.Side != r.def {
			continue
		}
		switch in.Kind {
		case model.KindDamage:
			dealt += in.Amount
		case model.KindSetSubstituteHealth:
			hitSub = true
			dealt += in.PreviousAmount - in.Amount
		}
	}
	return dealt, hitSub
}

// Pre-move checks. A prevented outcome is frozen and listed first.

func (r *moveRun) recharging(b model.Transposition) []model.Transposition {
	if !r.attacker().HasVolatile(c.VolatileMustRecharge) {
		return []model.Transposition{b}
	}
	return []model.Transposition{b.Extend(1, model.RemoveVolatile(r.att, c.VolatileMustRecharge)).Freeze()}
}

func (r *moveRun) sleeping(b model.Transposition) []model.Transposition {
	p := r.attacker()
	if p.Status != c.StatusSleep {
		return []model.Transposition{b}
	}
	wake := model.RemoveStatus(r.att, c.StatusSleep)

	if p.RestTurns > 0 {
		if p.RestTurns == 1 {
			return []model.Transposition{b.Extend(1, wake, model.SetRestTurns(r.att, 0, 1))}
		}
		asleep := b.Extend(1, model.SetRestTurns(r.att, p.RestTurns-1, p.RestTurns))
		if !r.ctx.Move.SleepUsable {
			asleep = asleep.Freeze()
		}
		return []model.Transposition{asleep}
	}

	w := r.g.rules.SleepWakeChance
	asleep := b.Extend(1 - w)
	if !r.ctx.Move.SleepUsable {
		asleep = asleep.Freeze()
	}
	return outcomes(asleep, b.Extend(w, wake))
}

func (r *moveRun) frozen(b model.Transposition) []model.Transposition {
	if r.attacker().Status != c.StatusFreeze {
		return []model.Transposition{b}
	}
	thaw := model.RemoveStatus(r.att, c.StatusFreeze)
	if r.ctx.Move.ThawsUser {
		return []model.Transposition{b.Extend(1, thaw)}
	}
	t := r.g.rules.ThawChance
	return outcomes(b.Extend(1-t).Freeze(), b.Extend(t, thaw))
}

func (r *moveRun) flinched(b model.Transposition) []model.Transposition {
	if r.attacker().HasVolatile(c.VolatileFlinch) {
		return []model.Transposition{b.Freeze()}
	}
	return []model.Transposition{b}
}

func (r *moveRun) confused(b model.Transposition) []model.Transposition {
	if !r.attacker().HasVolatile(c.VolatileConfusion) {
		return []model.Transposition{b}
	}
	p := r.g.rules.ConfusionSelfHitChance
	return outcomes(b.Extend(p, r.confusionHit()...).Freeze(), b.Extend(1-p))
}

// confusionHit is the attacker hitting itself with a typeless 40 power
// physical move at the average roll.
func (r *moveRun) confusionHit() []model.Instruction {
	self := &data.Move{ID: "confusion", Type: c.TypeTypeless, Category: c.CategoryPhysical, BasePower: 40}
	p := r.attacker()
	rolls, _, _ := damage.Calculate(p, p, self, damage.Conditions{Rules: r.g.rules}, damage.Average)
	if len(rolls) == 0 {
		return nil
	}
	return model.Maybe(model.DamageFor(r.g.state, r.att, rolls[0]))
}

func (r *moveRun) paralyzed(b model.Transposition) []model.Transposition {
	if r.attacker().Status != c.StatusParalysis {
		return []model.Transposition{b}
	}
	p := r.g.rules.FullParalysisChance
	return outcomes(b.Extend(p).Freeze(), b.Extend(1-p))
}

func (r *moveRun) spendPP(bs []model.Transposition) []model.Transposition {
	return r.g.extend(bs, func() []model.Instruction {
		p := r.attacker()
		slot := p.Move(r.slot)
		if slot == nil || slot.PP <= 0 {
			return nil
		}
		// The second turn of a charge move is free.
		if r.ctx.Move.Charge && p.HasVolatile(r.ctx.Move.ID) {
			return nil
		}
		n := 1
		if r.g.state.Ability(r.def) == "pressure" && !r.ctx.Move.TargetsSelf() {
			n = 2
		}
		return []model.Instruction{model.DecrementPP(r.att, r.slot, min(n, slot.PP))}
	})
}

func (r *moveRun) beforeMove(bs []model.Transposition) []model.Transposition {
	return r.g.extend(bs, func() []model.Instruction {
		return effects.BeforeMove(r.ctx)
	})
}

// noTarget fails a targeted move when the defender has already fainted.
func (r *moveRun) noTarget(b model.Transposition) []model.Transposition {
	if r.ctx.Move.Target == c.TargetNormal && r.defender().IsFainted() {
		return []model.Transposition{b.Freeze()}
	}
	return []model.Transposition{b}
}

// charge handles two-turn moves: the first turn only sets the charging
// volatile, the second clears it and proceeds.
func (r *moveRun) charge(b model.Transposition) []model.Transposition {
	m := r.ctx.Move
	if !m.Charge {
		return []model.Transposition{b}
	}
	s := r.g.state
	switch {
	case r.attacker().HasVolatile(m.ID):
		return []model.Transposition{b.Extend(1, model.RemoveVolatile(r.att, m.ID))}
	case effects.HeldItem(s, r.att) == "powerherb":
		return []model.Transposition{b.Extend(1, model.ChangeItem(r.att, "", "powerherb"))}
	}
	return []model.Transposition{b.Extend(1, model.ApplyVolatile(r.att, m.ID)).Freeze()}
}

func (r *moveRun) protected(b model.Transposition) []model.Transposition {
	m := r.ctx.Move
	if m.Target != c.TargetNormal || !m.Flags.Protect {
		return []model.Transposition{b}
	}
	v, ok := r.defender().HasProtectVolatile()
	if !ok {
		return []model.Transposition{b}
	}
	if (v == c.VolatileKingsShield || v == c.VolatileObstruct) && !m.IsDamaging() {
		return []model.Transposition{b}
	}

	s := r.g.state
	j := r.g.journal()
	if m.Flags.Contact {
		switch v {
		case c.VolatileSpikyShield:
			j.addOK(model.DamageFor(s, r.att, r.attacker().Fraction(1, 8)))
		case c.VolatileBanefulBunker:
			if r.g.canStatus(r.att, c.StatusPoison, true) {
				j.add(model.ApplyStatus(r.att, c.StatusPoison, r.attacker().Status))
			}
		case c.VolatileKingsShield:
			j.addOK(model.BoostFor(s, r.att, c.StatAttack, r.g.rules.KingsShieldDrop))
		case c.VolatileObstruct:
			j.addOK(model.BoostFor(s, r.att, c.StatDefense, -2))
		}
	}
	j.add(r.crash()...)
	return []model.Transposition{b.Extend(1, j.done()...).Freeze()}
}

// crash is the self damage of a jump kick that did not connect.
func (r *moveRun) crash() []model.Instruction {
	m := r.ctx.Move
	if m.Crash.IsZero() || r.g.state.Ability(r.att) == "magicguard" {
		return nil
	}
	return model.Maybe(model.DamageFor(r.g.state, r.att, max(1, m.Crash.Of(r.attacker().MaxHP))))
}

func (r *moveRun) accuracy(b model.Transposition) []model.Transposition {
	m := r.ctx.Move
	if m.AlwaysHits || m.Target != c.TargetNormal {
		return []model.Transposition{b}
	}
	stage := r.attacker().Boosts.Accuracy - r.defender().Boosts.Evasion
	acc := min(1, float64(m.Accuracy)/100*data.AccuracyMultiplier(stage))
	return outcomes(b.Extend(acc), b.Extend(1-acc, r.crash()...).Freeze())
}

func (r *moveRun) damage(b model.Transposition) []model.Transposition {
	m := r.ctx.Move
	cond := damage.NewConditions(r.g.state, r.att, r.g.rules)
	rolls, ok, _ := damage.Calculate(r.attacker(), r.defender(), m, cond, r.g.calc) // calc checked by New
	if !ok {
		return []model.Transposition{b}
	}
	if len(rolls) == 1 && rolls[0] == 0 {
		return []model.Transposition{b.Freeze()}
	}
	p := 1 / float64(len(rolls))
	out := make([]model.Transposition, 0, len(rolls))
	for _, roll := range rolls {
		out = append(out, b.Extend(p, r.hit(roll)...))
	}
	return out
}

// hit lands a roll on the substitute or the defender, then drain and recoil.
func (r *moveRun) hit(roll int) []model.Instruction {
	s := r.g.state
	m := r.ctx.Move
	def := r.defender()
	j := r.g.journal()

	var dealt int
	if r.hitsSubstitute() {
		sub := def.SubstituteHP
		dealt = min(roll, sub)
		if roll >= sub {
			j.add(model.SetSubstituteHealth(r.def, 0, sub), model.RemoveVolatile(r.def, c.VolatileSubstitute))
		} else {
			j.add(model.SetSubstituteHealth(r.def, sub-roll, sub))
		}
	} else {
		dealt = min(roll, def.HP)
		sash := false
		if def.HP == def.MaxHP && dealt == def.HP {
			switch {
			case effects.DefenderAbility(s, r.att) == "sturdy":
				dealt--
			case effects.HeldItem(s, r.def) == "focussash":
				dealt--
				sash = true
			}
		}
		if dealt > 0 {
			j.add(model.Damage(r.def, dealt))
		}
		if sash {
			j.add(model.ChangeItem(r.def, "", def.Item))
		}
	}

	if dealt > 0 && !m.Drain.IsZero() {
		j.addOK(model.HealFor(s, r.att, max(1, m.Drain.Of(dealt))))
	}
	if dealt > 0 && !m.Recoil.IsZero() {
		switch s.Ability(r.att) {
		case "rockhead", "magicguard":
		default:
			j.addOK(model.DamageFor(s, r.att, max(1, m.Recoil.Of(dealt))))
		}
	}
	return j.done()
}
