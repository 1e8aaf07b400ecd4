package effects

import (
	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/model"
)

// typeBoostItems: предметы, усиливающие атаки одного типа на 20%.
var typeBoostItems = map[string]string{
	"silkscarf":    c.TypeNormal,
	"charcoal":     c.TypeFire,
	"mysticwater":  c.TypeWater,
	"magnet":       c.TypeElectric,
	"miracleseed":  c.TypeGrass,
	"nevermeltice": c.TypeIce,
	"blackbelt":    c.TypeFighting,
	"poisonbarb":   c.TypePoison,
	"softsand":     c.TypeGround,
	"sharpbeak":    c.TypeFlying,
	"twistedspoon": c.TypePsychic,
	"silverpowder": c.TypeBug,
	"hardstone":    c.TypeRock,
	"spelltag":     c.TypeGhost,
	"dragonfang":   c.TypeDragon,
	"blackglasses": c.TypeDark,
	"metalcoat":    c.TypeSteel,
	"fairyfeather": c.TypeFairy,
}

// terrainSeeds maps each seed to the terrain that consumes it and the stat it raises.
var terrainSeeds = map[string][2]string{
	"electricseed": {c.FieldElectric, c.StatDefense},
	"grassyseed":   {c.FieldGrassy, c.StatDefense},
	"mistyseed":    {c.FieldMisty, c.StatSpecialDefense},
	"psychicseed":  {c.FieldPsychic, c.StatSpecialDefense},
}

var choiceItems = map[string]bool{
	"choiceband":  true,
	"choicespecs": true,
	"choicescarf": true,
}

// IsChoiceItem reports whether item locks its holder into one move.
func IsChoiceItem(item string) bool {
	return choiceItems[item]
}

func init() {
	for id, typ := range typeBoostItems {
		Items.Register(Entry{ModifyOwnMove: typeBoost(typ, 1.2)}, id)
	}
	for id, seed := range terrainSeeds {
		Items.Register(Entry{OnSwitchIn: func(ev Event) []model.Instruction {
			if ev.State.Field != seed[0] {
				return nil
			}
			b, ok := model.BoostFor(ev.State, ev.Side, seed[1], 1)
			if !ok {
				return nil
			}
			return []model.Instruction{b, consume(ev.State, ev.Side)}
		}}, id)
	}

	Items.Register(Entry{ModifyOwnMove: categoryBoost(c.CategoryPhysical, 1.5)}, "choiceband")
	Items.Register(Entry{ModifyOwnMove: categoryBoost(c.CategorySpecial, 1.5)}, "choicespecs")
	Items.Register(Entry{ModifyOwnMove: categoryBoost(c.CategoryPhysical, 1.1)}, "muscleband")
	Items.Register(Entry{ModifyOwnMove: categoryBoost(c.CategorySpecial, 1.1)}, "wiseglasses")
	Items.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if ctx.Move.Flags.Punch {
			scale(ctx.Move, 1.1)
		}
	}}, "punchingglove")
	Items.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if ctx.Move.IsDamaging() && ctx.Effectiveness() > 1 {
			scale(ctx.Move, 1.2)
		}
	}}, "expertbelt")

	Items.Register(Entry{
		ModifyOwnMove: categoryBoost("", 1.3),
		AfterMove: func(ctx *MoveContext) []model.Instruction {
			if ctx.Damage == 0 || ctx.State.Ability(ctx.AttackerSide) == "magicguard" {
				return nil
			}
			return model.Maybe(model.DamageFor(ctx.State, ctx.AttackerSide, ctx.Attacker().Fraction(1, 10)))
		},
	}, "lifeorb")
	Items.Register(Entry{AfterMove: func(ctx *MoveContext) []model.Instruction {
		if ctx.Damage == 0 {
			return nil
		}
		return model.Maybe(model.HealFor(ctx.State, ctx.AttackerSide, max(1, ctx.Damage/8)))
	}}, "shellbell")

	Items.Register(Entry{ModifyIncomingMove: categoryBoost(c.CategorySpecial, 2.0/3)}, "assaultvest")
	// Holders are assumed not fully evolved.
	Items.Register(Entry{ModifyIncomingMove: categoryBoost("", 2.0/3)}, "eviolite")

	Items.Register(Entry{
		ModifyIncomingMove: func(ctx *MoveContext) {
			if ctx.Move.Type == c.TypeGround && ctx.Move.IsDamaging() {
				nullify(ctx.Move)
			}
		},
		AfterHit: func(ctx *MoveContext) []model.Instruction {
			if ctx.Damage == 0 || ctx.HitSubstitute {
				return nil
			}
			return []model.Instruction{consume(ctx.State, ctx.DefenderSide())}
		},
	}, "airballoon")

	Items.Register(Entry{AfterHit: func(ctx *MoveContext) []model.Instruction {
		if !ctx.Move.Flags.Contact || ctx.Damage == 0 || ctx.HitSubstitute {
			return nil
		}
		return model.Maybe(model.DamageFor(ctx.State, ctx.AttackerSide, ctx.Attacker().Fraction(1, 6)))
	}}, "rockyhelmet")

	Items.Register(Entry{AfterHit: func(ctx *MoveContext) []model.Instruction {
		if !landed(ctx) || ctx.Effectiveness() <= 1 {
			return nil
		}
		side := ctx.DefenderSide()
		out := model.Maybe(model.BoostFor(ctx.State, side, c.StatAttack, 2))
		out = append(out, model.Maybe(model.BoostFor(ctx.State, side, c.StatSpecialAttack, 2))...)
		return append(out, consume(ctx.State, side))
	}}, "weaknesspolicy")

	Items.Register(Entry{AfterHit: func(ctx *MoveContext) []model.Instruction {
		p := ctx.Defender()
		if !landed(ctx) || p.HP*2 > p.MaxHP {
			return nil
		}
		side := ctx.DefenderSide()
		return append(model.Maybe(model.HealFor(ctx.State, side, p.Fraction(1, 4))), consume(ctx.State, side))
	}}, "sitrusberry")

	Items.Register(Entry{EndOfTurn: func(ev Event) []model.Instruction {
		return model.Maybe(model.HealFor(ev.State, ev.Side, ev.Pokemon().Fraction(1, 16)))
	}}, "leftovers")
	Items.Register(Entry{EndOfTurn: func(ev Event) []model.Instruction {
		p := ev.Pokemon()
		if p.HasType(c.TypePoison) {
			return model.Maybe(model.HealFor(ev.State, ev.Side, p.Fraction(1, 16)))
		}
		if ev.State.Ability(ev.Side) == "magicguard" {
			return nil
		}
		return model.Maybe(model.DamageFor(ev.State, ev.Side, p.Fraction(1, 8)))
	}}, "blacksludge")

	Items.Register(Entry{EndOfTurn: orbStatus(c.StatusBurn, c.TypeFire)}, "flameorb")
	Items.Register(Entry{EndOfTurn: orbStatus(c.StatusToxic, c.TypePoison, c.TypeSteel)}, "toxicorb")
}

// categoryBoost scales damaging moves of category, or every damaging move
// when category is empty.
func categoryBoost(category string, f float64) func(*MoveContext) {
	return func(ctx *MoveContext) {
		if !ctx.Move.IsDamaging() {
			return
		}
		if category == "" || ctx.Move.Category == category {
			scale(ctx.Move, f)
		}
	}
}

// consume removes ref's held item.
func consume(s *model.State, ref model.SideRef) model.Instruction {
	return model.ChangeItem(ref, "", s.Active(ref).Item)
}

func orbStatus(status string, immune ...string) func(Event) []model.Instruction {
	return func(ev Event) []model.Instruction {
		p := ev.Pokemon()
		if p.Status != c.StatusNone || BlocksStatus(ev.State, ev.Side, status) {
			return nil
		}
		for _, typ := range immune {
			if p.HasType(typ) {
				return nil
			}
		}
		return []model.Instruction{model.ApplyStatus(ev.Side, status, p.Status)}
	}
}
