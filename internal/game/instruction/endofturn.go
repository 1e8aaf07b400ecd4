package instruction

import (
	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/data"
	"github.com/udisondev/battlecalc/internal/game/damage"
	"github.com/udisondev/battlecalc/internal/game/effects"
	"github.com/udisondev/battlecalc/internal/model"
)

// timedConditions count down at the end of every turn.
var timedConditions = [...]string{
	c.SideReflect,
	c.SideLightScreen,
	c.SideAuroraVeil,
	c.SideTailwind,
	c.SideSafeguard,
}

// UsedMove is the move a side chose this turn and the Pokemon that chose it.
type UsedMove struct {
	Pokemon string // empty matches whoever is active
	Move    string
}

// EndOfTurn runs the residual phase on every live branch. first is the side
// that moved first this turn; used maps a side to the move it chose, if any.
func (g *Generator) EndOfTurn(branches []model.Transposition, first model.SideRef, used map[model.SideRef]UsedMove) []model.Transposition {
	order := [2]model.SideRef{first, first.Other()}

	branches = g.extend(branches, func() []model.Instruction {
		return g.perSide(order, g.weatherDamage)
	})
	for _, side := range order {
		branches = g.each(branches, func(b model.Transposition) []model.Transposition {
			return g.futureSight(b, side)
		})
	}
	return g.extend(branches, func() []model.Instruction {
		j := g.journal()
		j.add(g.perSide(order,
			g.wish,
			g.grassyHeal,
			func(side model.SideRef) []model.Instruction { return effects.EndOfTurn(g.state, side, g.rules) },
			g.statusDamage,
			g.leechSeed,
			g.protectDecay,
			g.partialTrap,
			func(side model.SideRef) []model.Instruction { return g.lockMoves(side, used[side]) },
		)...)
		j.add(g.fieldDecay(order)...)
		return j.done()
	})
}

// perSide runs each step for both sides in order, keeping the state in step.
func (g *Generator) perSide(order [2]model.SideRef, steps ...func(model.SideRef) []model.Instruction) []model.Instruction {
	j := g.journal()
	for _, step := range steps {
		for _, side := range order {
			j.add(step(side)...)
		}
	}
	return j.done()
}

func (g *Generator) weatherDamage(side model.SideRef) []model.Instruction {
	s := g.state
	p := s.Active(side)
	ability := s.Ability(side)
	if p.IsFainted() || ability == "magicguard" || ability == "overcoat" || effects.HeldItem(s, side) == "safetygoggles" {
		return nil
	}

	switch s.EffectiveWeather() {
	case c.WeatherSand:
		if p.HasType(c.TypeRock) || p.HasType(c.TypeGround) || p.HasType(c.TypeSteel) {
			return nil
		}
		switch ability {
		case "sandveil", "sandrush", "sandforce":
			return nil
		}
	case c.WeatherHail:
		if !g.rules.HailDamages || p.HasType(c.TypeIce) {
			return nil
		}
		switch ability {
		case "icebody", "snowcloak", "slushrush":
			return nil
		}
	default:
		return nil
	}
	return model.Maybe(model.DamageFor(s, side, p.Fraction(1, 16)))
}

// futureSight counts down the pending hit on side and lands it, one
// branch per roll, when the counter runs out.
func (g *Generator) futureSight(b model.Transposition, side model.SideRef) []model.Transposition {
	s := g.state
	fs := s.Side(side).FutureSight
	if fs.Turns == 0 {
		return []model.Transposition{b}
	}
	dec := model.FutureSightDecrement(side)
	target := s.Active(side)
	source := s.Side(side.Other()).Pokemon(fs.Source)
	if fs.Turns > 1 || source == nil || target.IsFainted() {
		return []model.Transposition{b.Extend(1, dec)}
	}

	move, err := data.GetMove("futuresight")
	if err != nil {
		return []model.Transposition{b.Extend(1, dec)}
	}
	cond := damage.NewConditions(s, side.Other(), g.rules)
	rolls, ok, _ := damage.Calculate(source, target, move, cond, g.calc) // calc checked by New
	if !ok || (len(rolls) == 1 && rolls[0] == 0) {
		return []model.Transposition{b.Extend(1, dec)}
	}
	p := 1 / float64(len(rolls))
	out := make([]model.Transposition, 0, len(rolls))
	for _, roll := range rolls {
		out = append(out, b.Extend(p, append([]model.Instruction{dec}, model.Maybe(model.DamageFor(s, side, roll))...)...))
	}
	return out
}

func (g *Generator) wish(side model.SideRef) []model.Instruction {
	w := g.state.Side(side).Wish
	if w.Turns == 0 {
		return nil
	}
	out := []model.Instruction{model.WishDecrement(side)}
	if w.Turns == 1 {
		out = append(out, model.Maybe(model.HealFor(g.state, side, w.Amount))...)
	}
	return out
}

func (g *Generator) grassyHeal(side model.SideRef) []model.Instruction {
	s := g.state
	p := s.Active(side)
	if s.Field != c.FieldGrassy || p.IsFainted() || !p.IsGrounded() {
		return nil
	}
	return model.Maybe(model.HealFor(s, side, p.Fraction(1, 16)))
}

func (g *Generator) statusDamage(side model.SideRef) []model.Instruction {
	s := g.state
	p := s.Active(side)
	if p.IsFainted() {
		return nil
	}
	ability := s.Ability(side)

	var out []model.Instruction
	amount := 0
	switch p.Status {
	case c.StatusBurn:
		amount = p.Fraction(1, 16)
		if ability == "heatproof" {
			amount = p.Fraction(1, 32)
		}
	case c.StatusPoison:
		amount = p.Fraction(1, 8)
	case c.StatusToxic:
		n := s.Side(side).Condition(c.SideToxicCount) + 1
		out = append(out, model.SideStart(side, c.SideToxicCount, 1))
		amount = p.Fraction(n, 16)
	default:
		return nil
	}

	switch {
	case ability == "poisonheal" && p.Status != c.StatusBurn:
		out = append(out, model.Maybe(model.HealFor(s, side, p.Fraction(1, 8)))...)
	case ability == "magicguard":
	default:
		out = append(out, model.Maybe(model.DamageFor(s, side, amount))...)
	}
	return out
}

func (g *Generator) leechSeed(side model.SideRef) []model.Instruction {
	s := g.state
	p := s.Active(side)
	seeder := side.Other()
	if p.IsFainted() || !p.HasVolatile(c.VolatileLeechSeed) || s.Active(seeder).IsFainted() {
		return nil
	}
	if s.Ability(side) == "magicguard" {
		return nil
	}
	drain := min(p.Fraction(1, 8), p.HP)
	out := []model.Instruction{model.Damage(side, drain)}
	return append(out, model.Maybe(model.HealFor(s, seeder, drain))...)
}

// protectDecay drops this turn's protection and tracks whether protect
// was up, which makes the next attempt fail. Flinch and roost end too.
func (g *Generator) protectDecay(side model.SideRef) []model.Instruction {
	s := g.state
	p := s.Active(side)
	marker := s.Side(side).Condition(c.SideProtect)

	var out []model.Instruction
	if v, ok := p.HasProtectVolatile(); ok {
		out = append(out, model.RemoveVolatile(side, v))
		if marker == 0 {
			out = append(out, model.SideStart(side, c.SideProtect, 1))
		}
	} else if marker > 0 {
		out = append(out, model.SideEnd(side, c.SideProtect, marker))
	}
	for _, v := range [...]string{c.VolatileFlinch, c.VolatileRoost} {
		if p.HasVolatile(v) {
			out = append(out, model.RemoveVolatile(side, v))
		}
	}
	return out
}

func (g *Generator) partialTrap(side model.SideRef) []model.Instruction {
	s := g.state
	p := s.Active(side)
	if p.IsFainted() || !p.HasVolatile(c.VolatilePartiallyTrapped) || s.Ability(side) == "magicguard" {
		return nil
	}
	return model.Maybe(model.DamageFor(s, side, p.Fraction(1, 8)))
}

// lockMoves disables everything but the used move while a choice item or
// an outrage-style lock holds, and re-enables moves once neither does. A
// Pokemon that came in after the choice was made is left alone.
func (g *Generator) lockMoves(side model.SideRef, u UsedMove) []model.Instruction {
	s := g.state
	p := s.Active(side)
	used := data.ToID(u.Move)
	if used == "" || p.IsFainted() || p.Move(used) == nil {
		return nil
	}
	if u.Pokemon != "" && u.Pokemon != p.ID {
		return nil
	}
	locked := p.HasVolatile(c.VolatileLockedMove) || effects.IsChoiceItem(effects.HeldItem(s, side))

	var out []model.Instruction
	for _, slot := range p.Moves {
		switch {
		case locked && slot.ID != used && !slot.Disabled:
			out = append(out, model.DisableMove(side, slot.ID))
		case slot.Disabled && (!locked || slot.ID == used):
			out = append(out, model.EnableMove(side, slot.ID))
		}
	}
	return out
}

// fieldDecay counts down weather, terrain, trick room and the timed side
// conditions, ending each one whose counter runs out. A zero counter means
// the effect has no known end.
func (g *Generator) fieldDecay(order [2]model.SideRef) []model.Instruction {
	s := g.state
	var out []model.Instruction

	if s.Weather != c.WeatherNone {
		switch s.WeatherTurns {
		case 0:
		case 1:
			out = append(out, model.WeatherStart(c.WeatherNone, 0, s.Weather, 1))
		default:
			out = append(out, model.DecrementWeather())
		}
	}
	if s.Field != c.FieldNone {
		switch s.FieldTurns {
		case 0:
		case 1:
			out = append(out, model.FieldStart(c.FieldNone, 0, s.Field, 1))
		default:
			out = append(out, model.DecrementField())
		}
	}
	if s.TrickRoom {
		switch s.TrickRoomTurns {
		case 0:
		case 1:
			out = append(out, model.ToggleTrickRoom(0, 1))
		default:
			out = append(out, model.DecrementTrickRoom())
		}
	}

	for _, side := range order {
		for _, cond := range timedConditions {
			switch n := s.Side(side).Condition(cond); {
			case n == 1:
				out = append(out, model.SideEnd(side, cond, 1))
			case n > 1:
				out = append(out, model.SideDecrement(side, cond))
			}
		}
	}
	return out
}
