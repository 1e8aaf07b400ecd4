package effects

import (
	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/model"
)

func init() {
	registerPowerMoves()
	registerWeatherMoves()
	registerEffectMoves()
}

// doubleWhen doubles base power when cond holds.
func doubleWhen(cond func(*MoveContext) bool) func(*MoveContext) {
	return func(ctx *MoveContext) {
		if cond(ctx) {
			scale(ctx.Move, 2)
		}
	}
}

// tier returns the power of the first threshold v reaches, or fallback.
func tier(v float64, thresholds []float64, powers []int, fallback int) int {
	for i, t := range thresholds {
		if v >= t {
			return powers[i]
		}
	}
	return fallback
}

func registerPowerMoves() {
	Moves.Register(Entry{ModifyOwnMove: doubleWhen(func(ctx *MoveContext) bool {
		st := ctx.Attacker().Status
		return st != c.StatusNone && st != c.StatusSleep
	})}, "facade")
	Moves.Register(Entry{ModifyOwnMove: doubleWhen(func(ctx *MoveContext) bool {
		return ctx.Defender().Status != c.StatusNone
	})}, "hex")
	Moves.Register(Entry{ModifyOwnMove: doubleWhen(func(ctx *MoveContext) bool {
		st := ctx.Defender().Status
		return st == c.StatusPoison || st == c.StatusToxic
	})}, "venoshock")
	Moves.Register(Entry{ModifyOwnMove: doubleWhen(func(ctx *MoveContext) bool {
		d := ctx.Defender()
		return d.HP*2 <= d.MaxHP
	})}, "brine")
	Moves.Register(Entry{ModifyOwnMove: doubleWhen(func(ctx *MoveContext) bool {
		return HeldItem(ctx.State, ctx.AttackerSide) == ""
	})}, "acrobatics")
	Moves.Register(Entry{ModifyOwnMove: doubleWhen(func(ctx *MoveContext) bool {
		return ctx.DefenderSwitching
	})}, "pursuit")

	Moves.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		ctx.Move.BasePower = 20 + 20*ctx.Attacker().BoostSum()
	}}, "storedpower")
	Moves.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		p := ctx.Attacker()
		ctx.Move.BasePower = max(1, 150*p.HP/p.MaxHP)
	}}, "eruption", "waterspout")
	Moves.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		p := ctx.Attacker()
		switch r := 48 * p.HP / p.MaxHP; {
		case r <= 1:
			ctx.Move.BasePower = 200
		case r <= 4:
			ctx.Move.BasePower = 150
		case r <= 9:
			ctx.Move.BasePower = 100
		case r <= 16:
			ctx.Move.BasePower = 80
		case r <= 32:
			ctx.Move.BasePower = 40
		default:
			ctx.Move.BasePower = 20
		}
	}}, "reversal")
	Moves.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		ctx.Move.BasePower = tier(ctx.Defender().Weight,
			[]float64{200, 100, 50, 25, 10}, []int{120, 100, 80, 60, 40}, 20)
	}}, "lowkick", "grassknot")
	Moves.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		ratio := ctx.Attacker().Weight / ctx.Defender().Weight
		ctx.Move.BasePower = tier(ratio, []float64{5, 4, 3, 2}, []int{120, 100, 80, 60}, 40)
	}}, "heavyslam")

	Moves.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		own := max(1, EffectiveSpeed(ctx.State, ctx.AttackerSide, ctx.Rules))
		foe := EffectiveSpeed(ctx.State, ctx.DefenderSide(), ctx.Rules)
		ctx.Move.BasePower = min(150, 25*foe/own+1)
	}}, "gyroball")
	Moves.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		own := EffectiveSpeed(ctx.State, ctx.AttackerSide, ctx.Rules)
		foe := max(1, EffectiveSpeed(ctx.State, ctx.DefenderSide(), ctx.Rules))
		ratio := float64(own) / float64(foe)
		ctx.Move.BasePower = tier(ratio, []float64{4, 3, 2, 1}, []int{150, 120, 80, 60}, 40)
	}}, "electroball")

	Moves.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		ctx.Move.BasePower = ctx.Rules.HiddenPowerBasePower
	}}, "hiddenpower")

	Moves.Register(Entry{
		ModifyOwnMove: func(ctx *MoveContext) {
			if d := ctx.Defender(); d.Item != "" && !d.IsFainted() {
				scale(ctx.Move, 1.5)
			}
		},
		AfterMove: func(ctx *MoveContext) []model.Instruction {
			if ctx.Damage == 0 || ctx.HitSubstitute || ctx.Defender().Item == "" {
				return nil
			}
			return []model.Instruction{consume(ctx.State, ctx.DefenderSide())}
		},
	}, "knockoff")

	// Sucker punch fails unless the target is about to attack.
	Moves.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if !ctx.AttackerFirst || ctx.DefenderMove == nil || !ctx.DefenderMove.IsDamaging() {
			nullify(ctx.Move)
		}
	}}, "suckerpunch")

	Moves.Register(Entry{AfterMove: func(ctx *MoveContext) []model.Instruction {
		if ctx.Damage == 0 {
			return nil
		}
		return model.Maybe(model.DamageFor(ctx.State, ctx.AttackerSide, ctx.Attacker().HP))
	}}, "finalgambit")
}

func registerWeatherMoves() {
	Moves.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		var typ string
		switch ctx.State.EffectiveWeather() {
		case c.WeatherSun, c.WeatherHarshSun:
			typ = c.TypeFire
		case c.WeatherRain, c.WeatherHeavyRain:
			typ = c.TypeWater
		case c.WeatherSand:
			typ = c.TypeRock
		case c.WeatherHail, c.WeatherSnow:
			typ = c.TypeIce
		default:
			return
		}
		ctx.Move.Type = typ
		ctx.Move.BasePower *= 2
	}}, "weatherball")

	Moves.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		switch ctx.State.EffectiveWeather() {
		case c.WeatherSun, c.WeatherHarshSun:
			ctx.Move.Charge = false
		case c.WeatherRain, c.WeatherHeavyRain, c.WeatherSand, c.WeatherHail, c.WeatherSnow:
			scale(ctx.Move, 0.5)
		}
	}}, "solarbeam")

	Moves.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		switch ctx.State.EffectiveWeather() {
		case c.WeatherRain, c.WeatherHeavyRain:
			ctx.Move.AlwaysHits = true
		case c.WeatherSun, c.WeatherHarshSun:
			ctx.Move.Accuracy = 50
		}
	}}, "thunder", "hurricane")

	Moves.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		w := ctx.State.EffectiveWeather()
		if w == c.WeatherHail || w == c.WeatherSnow {
			ctx.Move.AlwaysHits = true
		}
	}}, "blizzard")
}

func registerEffectMoves() {
	Moves.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if ctx.Defender().HasType(c.TypeGrass) {
			nullify(ctx.Move)
		}
	}}, "leechseed")
	Moves.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if ctx.Defender().HasType(c.TypeGround) {
			nullify(ctx.Move)
		}
	}}, "thunderwave")
	Moves.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if ctx.Attacker().HasType(c.TypePoison) {
			ctx.Move.AlwaysHits = true
		}
	}}, "toxic")

	Moves.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		ctx.Move.VolatileStatus = c.VolatileRoost
	}}, "roost")

	// Future sight deals no damage now; the hit lands when the counter runs out.
	Moves.Register(Entry{
		ModifyOwnMove: func(ctx *MoveContext) {
			ctx.Move.Category = c.CategoryStatus
			ctx.Move.BasePower = 0
			ctx.Move.AlwaysHits = true
		},
		AfterMove: func(ctx *MoveContext) []model.Instruction {
			def := ctx.DefenderSide()
			prev := ctx.State.Side(def).FutureSight
			if prev.Turns > 0 {
				return nil
			}
			return []model.Instruction{model.FutureSightStart(def, ctx.Attacker().ID, ctx.Rules.FutureSightTurns, prev)}
		},
	}, "futuresight")

	Moves.Register(Entry{AfterMove: func(ctx *MoveContext) []model.Instruction {
		side := ctx.AttackerSide
		prev := ctx.State.Side(side).Wish
		if prev.Turns > 0 {
			return nil
		}
		return []model.Instruction{model.WishStart(side, ctx.Attacker().MaxHP/2, ctx.Rules.WishTurns, prev)}
	}}, "wish")

	Moves.Register(Entry{AfterMove: func(ctx *MoveContext) []model.Instruction {
		side := ctx.AttackerSide
		p := ctx.Attacker()
		if p.HP == p.MaxHP || p.Status == c.StatusSleep || BlocksStatus(ctx.State, side, c.StatusSleep) {
			return nil
		}
		return []model.Instruction{
			model.ApplyStatus(side, c.StatusSleep, p.Status),
			model.SetRestTurns(side, ctx.Rules.RestTurns, p.RestTurns),
			model.Heal(side, p.MaxHP-p.HP),
		}
	}}, "rest")

	Moves.Register(Entry{AfterMove: func(ctx *MoveContext) []model.Instruction {
		side := ctx.AttackerSide
		p := ctx.Attacker()
		if p.HP*2 <= p.MaxHP || p.Boosts.Attack == c.MaxBoost {
			return nil
		}
		return []model.Instruction{
			model.Damage(side, p.MaxHP/2),
			model.Boost(side, c.StatAttack, c.MaxBoost-p.Boosts.Attack),
		}
	}}, "bellydrum")
}

// multiHit folds repeated hits into base power: the fixed count, or three
// hits on average for 2-5 hit moves (five with skill link).
func multiHit(ctx *MoveContext) {
	m := ctx.Move
	switch {
	case m.MultiHit > 1:
		m.BasePower *= m.MultiHit
	case m.MultiHitRange && ctx.State.Ability(ctx.AttackerSide) == "skilllink":
		m.BasePower *= 5
	case m.MultiHitRange:
		m.BasePower *= 3
	}
}
