package instruction

import (
	"slices"

	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/data"
	"github.com/udisondev/battlecalc/internal/game/effects"
	"github.com/udisondev/battlecalc/internal/model"
)

var weatherRocks = map[string]string{
	c.WeatherSun:  "heatrock",
	c.WeatherRain: "damprock",
	c.WeatherSand: "smoothrock",
	c.WeatherHail: "icyrock",
	c.WeatherSnow: "icyrock",
}

// primal weathers can only be replaced by each other.
func primal(weather string) bool {
	return weather == c.WeatherHarshSun || weather == c.WeatherHeavyRain
}

func (r *moveRun) sideCondition(bs []model.Transposition) []model.Transposition {
	cond := r.ctx.Move.SideCondition
	if cond == "" {
		return bs
	}
	return r.g.extend(bs, func() []model.Instruction {
		return r.startSideCondition(cond)
	})
}

func (r *moveRun) startSideCondition(cond string) []model.Instruction {
	s, rules := r.g.state, r.g.rules
	side := r.target()
	n := s.Side(side).Condition(cond)

	if limit, ok := c.MaxLayers[cond]; ok {
		if n >= limit {
			return nil
		}
		return []model.Instruction{model.SideStart(side, cond, 1)}
	}
	if n > 0 {
		return nil
	}

	turns := rules.ScreenTurns
	switch cond {
	case c.SideAuroraVeil:
		if w := s.EffectiveWeather(); w != c.WeatherHail && w != c.WeatherSnow {
			return nil
		}
		fallthrough
	case c.SideReflect, c.SideLightScreen:
		if effects.HeldItem(s, r.att) == "lightclay" {
			turns = rules.ExtendedScreenTurns
		}
	case c.SideTailwind:
		turns = rules.TailwindTurns
	}
	return []model.Instruction{model.SideStart(side, cond, turns)}
}

func (r *moveRun) clearHazards(bs []model.Transposition) []model.Transposition {
	if !r.ctx.Move.RemovesHazards {
		return bs
	}
	return r.g.extend(bs, func() []model.Instruction {
		s := r.g.state
		if r.attacker().IsFainted() {
			return nil
		}
		if r.ctx.Move.ID == "defog" {
			foe := append(c.HazardConditions[:], c.SideReflect, c.SideLightScreen, c.SideAuroraVeil, c.SideSafeguard)
			return append(clearConditions(s, r.def, foe...), clearConditions(s, r.att, c.HazardConditions[:]...)...)
		}

		out := clearConditions(s, r.att, c.HazardConditions[:]...)
		for _, v := range [...]string{c.VolatileLeechSeed, c.VolatilePartiallyTrapped} {
			if r.attacker().HasVolatile(v) {
				out = append(out, model.RemoveVolatile(r.att, v))
			}
		}
		return out
	})
}

func (r *moveRun) field(bs []model.Transposition) []model.Transposition {
	m := r.ctx.Move
	if m.Weather == "" && m.Terrain == "" && !m.TrickRoom {
		return bs
	}
	return r.g.extend(bs, func() []model.Instruction {
		s, rules := r.g.state, r.g.rules
		switch {
		case m.Weather != "":
			if s.Weather == m.Weather || primal(s.Weather) {
				return nil
			}
			turns := rules.WeatherTurns
			if rock := weatherRocks[m.Weather]; rock != "" && effects.HeldItem(s, r.att) == rock {
				turns = rules.ExtendedWeatherTurns
			}
			return []model.Instruction{model.WeatherStart(m.Weather, turns, s.Weather, s.WeatherTurns)}
		case m.Terrain != "":
			if s.Field == m.Terrain {
				return nil
			}
			turns := rules.TerrainTurns
			if effects.HeldItem(s, r.att) == "terrainextender" {
				turns = rules.ExtendedTerrainTurns
			}
			return []model.Instruction{model.FieldStart(m.Terrain, turns, s.Field, s.FieldTurns)}
		case s.TrickRoom:
			return []model.Instruction{model.ToggleTrickRoom(0, s.TrickRoomTurns)}
		default:
			return []model.Instruction{model.ToggleTrickRoom(rules.TrickRoomTurns, s.TrickRoomTurns)}
		}
	})
}

func (r *moveRun) heal(bs []model.Transposition) []model.Transposition {
	m := r.ctx.Move
	if m.Heal.IsZero() {
		return bs
	}
	return r.g.extend(bs, func() []model.Instruction {
		s := r.g.state
		side := r.def
		if m.HealTarget == c.TargetSelf {
			side = r.att
		}
		p := s.Active(side)
		if p.IsFainted() {
			return nil
		}
		amount := m.Heal.Of(p.MaxHP)
		if amount < 0 {
			return model.Maybe(model.DamageFor(s, side, -amount))
		}
		return model.Maybe(model.HealFor(s, side, amount))
	})
}

func (r *moveRun) status(bs []model.Transposition) []model.Transposition {
	st := r.ctx.Move.Status
	if st == "" {
		return bs
	}
	return r.g.extend(bs, func() []model.Instruction {
		side := r.target()
		if side == r.def && r.hitsSubstitute() {
			return nil
		}
		if !r.g.canStatus(side, st, side != r.att) {
			return nil
		}
		return []model.Instruction{model.ApplyStatus(side, st, r.g.state.Active(side).Status)}
	})
}

func (r *moveRun) volatile(b model.Transposition) []model.Transposition {
	v := r.ctx.Move.VolatileStatus
	if v == "" {
		return []model.Transposition{b}
	}
	return []model.Transposition{b.Extend(1, r.applyVolatile(b, v)...)}
}

func (r *moveRun) applyVolatile(b model.Transposition, v string) []model.Instruction {
	s := r.g.state
	side := r.target()
	p := s.Active(side)
	if p.IsFainted() || p.HasVolatile(v) {
		return nil
	}

	switch {
	case v == c.VolatileSubstitute:
		cost := p.MaxHP / 4
		if p.HP <= cost {
			return nil
		}
		return []model.Instruction{
			model.Damage(side, cost),
			model.ApplyVolatile(side, v),
			model.SetSubstituteHealth(side, cost, 0),
		}
	case slices.Contains(c.ProtectVolatiles[:], v):
		// Fails after a successful protect last turn or when moving last.
		if s.Side(side).Condition(c.SideProtect) > 0 || !r.ctx.AttackerFirst {
			return nil
		}
	case v == c.VolatilePartiallyTrapped:
		if dealt, hitSub := r.landed(b); dealt == 0 || hitSub {
			return nil
		}
	case v == c.VolatileFlashFire:
	default:
		if side == r.def && r.hitsSubstitute() {
			return nil
		}
		if effects.BlocksVolatile(s.Ability(side), v) {
			return nil
		}
	}
	return []model.Instruction{model.ApplyVolatile(side, v)}
}

func (r *moveRun) boosts(bs []model.Transposition) []model.Transposition {
	boosts := r.ctx.Move.Boosts
	if len(boosts) == 0 {
		return bs
	}
	return r.g.extend(bs, func() []model.Instruction {
		side := r.target()
		if side == r.def && r.hitsSubstitute() {
			return nil
		}
		return r.g.applyBoosts(side, boosts, side != r.att)
	})
}

// secondary forks on the move's chance effect, only when it would change
// something.
func (r *moveRun) secondary(b model.Transposition) []model.Transposition {
	sec := r.ctx.Move.Secondary
	if sec == nil || sec.Chance <= 0 {
		return []model.Transposition{b}
	}
	yes := r.secondaryEffects(b, sec)
	if len(yes) == 0 {
		return []model.Transposition{b}
	}
	return split(b, float64(sec.Chance)/100, yes, nil)
}

func (r *moveRun) secondaryEffects(b model.Transposition, sec *data.Secondary) []model.Instruction {
	s := r.g.state
	j := r.g.journal()

	if dealt, hitSub := r.landed(b); dealt > 0 && !hitSub && !r.defender().IsFainted() {
		if sec.Status != "" && r.g.canStatus(r.def, sec.Status, true) {
			j.add(model.ApplyStatus(r.def, sec.Status, r.defender().Status))
		}
		switch v := sec.VolatileStatus; {
		case v == "":
		case v == c.VolatileFlinch && !r.ctx.AttackerFirst:
		case r.defender().HasVolatile(v), effects.BlocksVolatile(s.Ability(r.def), v):
		default:
			j.add(model.ApplyVolatile(r.def, v))
		}
		if len(sec.Boosts) > 0 {
			j.add(r.g.applyBoosts(r.def, sec.Boosts, true)...)
		}
	}
	if len(sec.SelfBoosts) > 0 {
		j.add(r.g.applyBoosts(r.att, sec.SelfBoosts, false)...)
	}
	return j.done()
}

// selfEffects applies what the move does to its user once it connects.
func (r *moveRun) selfEffects(bs []model.Transposition) []model.Transposition {
	m := r.ctx.Move
	if m.Self == nil && !m.Recharge && !m.LockedMove {
		return bs
	}
	return r.g.extend(bs, func() []model.Instruction {
		s := r.g.state
		p := r.attacker()
		if p.IsFainted() {
			return nil
		}
		j := r.g.journal()
		if m.Self != nil {
			if len(m.Self.Boosts) > 0 {
				j.add(r.g.applyBoosts(r.att, m.Self.Boosts, false)...)
			}
			if v := m.Self.VolatileStatus; v != "" && !p.HasVolatile(v) {
				j.add(model.ApplyVolatile(r.att, v))
			}
		}
		if m.Recharge && !p.HasVolatile(c.VolatileMustRecharge) {
			j.add(model.ApplyVolatile(r.att, c.VolatileMustRecharge))
		}
		if m.LockedMove {
			if !p.HasVolatile(c.VolatileLockedMove) {
				j.add(model.ApplyVolatile(r.att, c.VolatileLockedMove))
			} else {
				j.add(model.RemoveVolatile(r.att, c.VolatileLockedMove))
				if !p.HasVolatile(c.VolatileConfusion) && !effects.BlocksVolatile(s.Ability(r.att), c.VolatileConfusion) {
					j.add(model.ApplyVolatile(r.att, c.VolatileConfusion))
				}
			}
		}
		return j.done()
	})
}

func (r *moveRun) afterMove(b model.Transposition) []model.Transposition {
	r.ctx.Damage, r.ctx.HitSubstitute = r.landed(b)
	return []model.Transposition{b.Extend(1, effects.AfterMove(r.ctx)...)}
}

// drag forces the defender out to a uniformly random reserve.
func (r *moveRun) drag(b model.Transposition) []model.Transposition {
	m := r.ctx.Move
	s := r.g.state
	if !m.ForceSwitch || r.defender().IsFainted() || s.Ability(r.def) == "suctioncups" {
		return []model.Transposition{b}
	}
	if _, hitSub := r.landed(b); hitSub {
		return []model.Transposition{b}
	}
	return r.g.switchBranches(b, r.def, s.Side(r.def).AliveReserves())
}

func (r *moveRun) selfSwitch(b model.Transposition) []model.Transposition {
	if !r.ctx.Move.SelfSwitch || r.attacker().IsFainted() {
		return []model.Transposition{b}
	}
	options := r.g.choose(r.att, r.g.state.Side(r.att).AliveReserves())
	return r.g.switchBranches(b, r.att, options)
}
