package effects

import (
	"slices"

	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/data"
	"github.com/udisondev/battlecalc/internal/model"
)

// Abilities that ignore the defender's ability while attacking.
var moldBreakers = map[string]bool{
	"moldbreaker": true,
	"teravolt":    true,
	"turboblaze":  true,
}

// Abilities a mold breaker cannot ignore.
var moldBreakerProof = map[string]bool{
	"shadowshield":  true,
	"prismarmor":    true,
	"fullmetalbody": true,
}

var statDropBlockers = map[string]bool{
	"clearbody":     true,
	"whitesmoke":    true,
	"fullmetalbody": true,
}

// BlocksStatDrops reports whether ability stops stat drops from the foe.
func BlocksStatDrops(ability string) bool {
	return statDropBlockers[ability]
}

var statusImmunities = map[string][]string{
	"limber":      {c.StatusParalysis},
	"insomnia":    {c.StatusSleep},
	"vitalspirit": {c.StatusSleep},
	"sweetveil":   {c.StatusSleep},
	"waterveil":   {c.StatusBurn},
	"waterbubble": {c.StatusBurn},
	"immunity":    {c.StatusPoison, c.StatusToxic},
	"pastelveil":  {c.StatusPoison, c.StatusToxic},
	"magmaarmor":  {c.StatusFreeze},
}

// BlocksStatus reports whether ref's ability prevents status.
func BlocksStatus(s *model.State, ref model.SideRef, status string) bool {
	ability := s.Ability(ref)
	switch ability {
	case "comatose", "purifyingsalt":
		return true
	case "leafguard":
		w := s.EffectiveWeather()
		return w == c.WeatherSun || w == c.WeatherHarshSun
	}
	return slices.Contains(statusImmunities[ability], status)
}

// BlocksVolatile reports whether ability prevents volatile v.
func BlocksVolatile(ability, v string) bool {
	switch v {
	case c.VolatileConfusion:
		return ability == "owntempo"
	case c.VolatileFlinch:
		return ability == "innerfocus"
	}
	return false
}

var intimidateProof = map[string]bool{
	"innerfocus": true,
	"oblivious":  true,
	"owntempo":   true,
	"scrappy":    true,
}

var oneQuarter = data.Fraction{Num: 1, Den: 4}

func init() {
	registerAttackerAbilities()
	registerDefenderAbilities()
	registerEventAbilities()
}

func typeBoost(typ string, f float64) func(*MoveContext) {
	return func(ctx *MoveContext) {
		if ctx.Move.Type == typ {
			scale(ctx.Move, f)
		}
	}
}

// pinch boosts typ at or below a third of max HP.
func pinch(typ string) func(*MoveContext) {
	return func(ctx *MoveContext) {
		p := ctx.Attacker()
		if ctx.Move.Type == typ && p.HP*3 <= p.MaxHP {
			scale(ctx.Move, 1.5)
		}
	}
}

// ate converts normal moves to typ with a 1.2 boost.
func ate(typ string) func(*MoveContext) {
	return func(ctx *MoveContext) {
		if ctx.Move.Type == c.TypeNormal && ctx.Move.IsDamaging() {
			ctx.Move.Type = typ
			scale(ctx.Move, 1.2)
		}
	}
}

func registerAttackerAbilities() {
	Abilities.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if ctx.Move.IsDamaging() && ctx.Move.BasePower <= 60 {
			scale(ctx.Move, 1.5)
		}
	}}, "technician")

	Abilities.Register(Entry{ModifyOwnMove: ate(c.TypeFlying)}, "aerilate")
	Abilities.Register(Entry{ModifyOwnMove: ate(c.TypeFairy)}, "pixilate")
	Abilities.Register(Entry{ModifyOwnMove: ate(c.TypeIce)}, "refrigerate")
	Abilities.Register(Entry{ModifyOwnMove: ate(c.TypeElectric)}, "galvanize")
	Abilities.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if ctx.Move.IsDamaging() {
			ctx.Move.Type = c.TypeNormal
			scale(ctx.Move, 1.2)
		}
	}}, "normalize")

	Abilities.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if ctx.Move.Flags.Bite {
			scale(ctx.Move, 1.5)
		}
	}}, "strongjaw")
	Abilities.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if ctx.Move.Flags.Punch {
			scale(ctx.Move, 1.2)
		}
	}}, "ironfist")
	Abilities.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if ctx.Move.Flags.Contact {
			scale(ctx.Move, 1.3)
		}
	}}, "toughclaws")
	Abilities.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if ctx.Move.Flags.Pulse {
			scale(ctx.Move, 1.5)
		}
	}}, "megalauncher")
	Abilities.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if ctx.Move.Flags.Slicing {
			scale(ctx.Move, 1.5)
		}
	}}, "sharpness")

	Abilities.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if ctx.Move.Secondary != nil {
			scale(ctx.Move, 1.3)
			ctx.Move.Secondary = nil
		}
	}}, "sheerforce")

	Abilities.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if ctx.Move.Category == c.CategoryPhysical {
			scale(ctx.Move, 2)
		}
	}}, "hugepower", "purepower")
	Abilities.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if ctx.Move.Category == c.CategoryPhysical {
			scale(ctx.Move, 1.5)
			ctx.Move.Accuracy = ctx.Move.Accuracy * 4 / 5
		}
	}}, "hustle")
	Abilities.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if ctx.Move.Category == c.CategoryPhysical && ctx.Attacker().Status != c.StatusNone {
			scale(ctx.Move, 1.5)
		}
	}}, "guts")

	Abilities.Register(Entry{
		ModifyOwnMove:      func(ctx *MoveContext) { ctx.Move.AlwaysHits = true },
		ModifyIncomingMove: func(ctx *MoveContext) { ctx.Move.AlwaysHits = true },
	}, "noguard")
	Abilities.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		ctx.Move.Accuracy = ctx.Move.Accuracy * 13 / 10
	}}, "compoundeyes")
	Abilities.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if sec := ctx.Move.Secondary; sec != nil {
			sec.Chance = min(100, sec.Chance*2)
		}
	}}, "serenegrace")

	Abilities.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if eff := ctx.Effectiveness(); eff > 0 && eff < 1 {
			scale(ctx.Move, 2)
		}
	}}, "tintedlens")

	Abilities.Register(Entry{ModifyOwnMove: pinch(c.TypeFire)}, "blaze")
	Abilities.Register(Entry{ModifyOwnMove: pinch(c.TypeWater)}, "torrent")
	Abilities.Register(Entry{ModifyOwnMove: pinch(c.TypeGrass)}, "overgrow")
	Abilities.Register(Entry{ModifyOwnMove: pinch(c.TypeBug)}, "swarm")

	Abilities.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if ctx.State.EffectiveWeather() != c.WeatherSand {
			return
		}
		switch ctx.Move.Type {
		case c.TypeRock, c.TypeGround, c.TypeSteel:
			scale(ctx.Move, 1.3)
		}
	}}, "sandforce")
	Abilities.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if !ctx.Move.Recoil.IsZero() || !ctx.Move.Crash.IsZero() {
			scale(ctx.Move, 1.2)
		}
	}}, "reckless")

	Abilities.Register(Entry{ModifyOwnMove: typeBoost(c.TypeSteel, 1.5)}, "steelworker")
	Abilities.Register(Entry{ModifyOwnMove: typeBoost(c.TypeDragon, 1.5)}, "dragonsmaw")
	Abilities.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		f := 1.5
		if ctx.Rules.Generation >= 9 {
			f = 1.3
		}
		typeBoost(c.TypeElectric, f)(ctx)
	}}, "transistor")

	Abilities.Register(Entry{
		ModifyOwnMove:      typeBoost(c.TypeWater, 2),
		ModifyIncomingMove: typeBoost(c.TypeFire, 0.5),
	}, "waterbubble")

	Abilities.Register(Entry{
		ModifyOwnMove: func(ctx *MoveContext) {
			if ctx.Move.Flags.Sound {
				scale(ctx.Move, 1.3)
			}
		},
		ModifyIncomingMove: func(ctx *MoveContext) {
			if ctx.Move.Flags.Sound {
				scale(ctx.Move, 0.5)
			}
		},
	}, "punkrock")

	Abilities.Register(Entry{
		ModifyOwnMove: func(ctx *MoveContext) {
			w := ctx.State.EffectiveWeather()
			if ctx.Move.Category == c.CategorySpecial && (w == c.WeatherSun || w == c.WeatherHarshSun) {
				scale(ctx.Move, 1.5)
			}
		},
		EndOfTurn: func(ev Event) []model.Instruction {
			w := ev.State.EffectiveWeather()
			if w != c.WeatherSun && w != c.WeatherHarshSun {
				return nil
			}
			return model.Maybe(model.DamageFor(ev.State, ev.Side, ev.Pokemon().Fraction(1, 8)))
		},
	}, "solarpower")

	// Dark types ignore prankster-boosted status moves.
	Abilities.Register(Entry{ModifyOwnMove: func(ctx *MoveContext) {
		if ctx.Move.Category == c.CategoryStatus && ctx.Move.Target == c.TargetNormal && ctx.Defender().HasType(c.TypeDark) {
			nullify(ctx.Move)
		}
	}}, "prankster")

	Abilities.Register(Entry{BeforeMove: func(ctx *MoveContext) []model.Instruction {
		p := ctx.Attacker()
		want := [2]string{ctx.Move.Type}
		if p.Types == want || ctx.Move.Type == c.TypeTypeless {
			return nil
		}
		return []model.Instruction{model.ChangeType(ctx.AttackerSide, want, p.Types)}
	}}, "protean", "libero")

	Abilities.Register(Entry{AfterMove: func(ctx *MoveContext) []model.Instruction {
		if ctx.Move.IsDamaging() && ctx.Defender().IsFainted() {
			return model.Maybe(model.BoostFor(ctx.State, ctx.AttackerSide, c.StatAttack, 1))
		}
		return nil
	}}, "moxie")
}

// incoming reports whether the move is aimed at the defender.
func incoming(ctx *MoveContext) bool {
	return ctx.Move.Target == c.TargetNormal
}

func registerDefenderAbilities() {
	Abilities.Register(Entry{ModifyIncomingMove: func(ctx *MoveContext) {
		if ctx.Move.Type == c.TypeGround && ctx.Move.IsDamaging() {
			nullify(ctx.Move)
		}
	}}, "levitate")

	absorbing := map[string]string{
		"voltabsorb":  c.TypeElectric,
		"waterabsorb": c.TypeWater,
		"eartheater":  c.TypeGround,
	}
	for id, typ := range absorbing {
		Abilities.Register(Entry{ModifyIncomingMove: func(ctx *MoveContext) {
			if ctx.Move.Type == typ && incoming(ctx) {
				absorb(ctx.Move, oneQuarter)
			}
		}}, id)
	}

	redirecting := map[string][2]string{
		"stormdrain":    {c.TypeWater, c.StatSpecialAttack},
		"lightningrod":  {c.TypeElectric, c.StatSpecialAttack},
		"motordrive":    {c.TypeElectric, c.StatSpeed},
		"sapsipper":     {c.TypeGrass, c.StatAttack},
		"wellbakedbody": {c.TypeFire, c.StatDefense},
	}
	for id, r := range redirecting {
		Abilities.Register(Entry{ModifyIncomingMove: func(ctx *MoveContext) {
			if ctx.Move.Type == r[0] && incoming(ctx) {
				absorbBoost(ctx.Move, r[1])
			}
		}}, id)
	}

	Abilities.Register(Entry{
		ModifyIncomingMove: func(ctx *MoveContext) {
			switch {
			case ctx.Move.Type == c.TypeWater && incoming(ctx):
				absorb(ctx.Move, oneQuarter)
			case ctx.Move.Type == c.TypeFire:
				scale(ctx.Move, 1.25)
			}
		},
		EndOfTurn: func(ev Event) []model.Instruction {
			switch ev.State.EffectiveWeather() {
			case c.WeatherRain, c.WeatherHeavyRain:
				return model.Maybe(model.HealFor(ev.State, ev.Side, ev.Pokemon().Fraction(1, 8)))
			case c.WeatherSun, c.WeatherHarshSun:
				return model.Maybe(model.DamageFor(ev.State, ev.Side, ev.Pokemon().Fraction(1, 8)))
			}
			return nil
		},
	}, "dryskin")

	Abilities.Register(Entry{
		ModifyOwnMove: func(ctx *MoveContext) {
			if ctx.Move.Type == c.TypeFire && ctx.Attacker().HasVolatile(c.VolatileFlashFire) {
				scale(ctx.Move, 1.5)
			}
		},
		ModifyIncomingMove: func(ctx *MoveContext) {
			if ctx.Move.Type == c.TypeFire && incoming(ctx) {
				nullify(ctx.Move)
				ctx.Move.VolatileStatus = c.VolatileFlashFire
			}
		},
	}, "flashfire")

	Abilities.Register(Entry{ModifyIncomingMove: func(ctx *MoveContext) {
		if ctx.Move.Type == c.TypeFire || ctx.Move.Type == c.TypeIce {
			scale(ctx.Move, 0.5)
		}
	}}, "thickfat")
	Abilities.Register(Entry{ModifyIncomingMove: typeBoost(c.TypeFire, 0.5)}, "heatproof")
	Abilities.Register(Entry{ModifyIncomingMove: func(ctx *MoveContext) {
		if ctx.Move.Flags.Contact {
			scale(ctx.Move, 0.5)
		}
		if ctx.Move.Type == c.TypeFire {
			scale(ctx.Move, 2)
		}
	}}, "fluffy")
	Abilities.Register(Entry{ModifyIncomingMove: func(ctx *MoveContext) {
		if d := ctx.Defender(); d.HP == d.MaxHP {
			scale(ctx.Move, 0.5)
		}
	}}, "multiscale", "shadowshield")
	Abilities.Register(Entry{ModifyIncomingMove: func(ctx *MoveContext) {
		if ctx.Effectiveness() > 1 {
			scale(ctx.Move, 0.75)
		}
	}}, "filter", "solidrock", "prismarmor")
	Abilities.Register(Entry{ModifyIncomingMove: func(ctx *MoveContext) {
		if ctx.Move.Category == c.CategoryPhysical {
			scale(ctx.Move, 0.5)
		}
	}}, "furcoat")
	Abilities.Register(Entry{ModifyIncomingMove: func(ctx *MoveContext) {
		if ctx.Move.Category == c.CategorySpecial {
			scale(ctx.Move, 0.5)
		}
	}}, "icescales")

	Abilities.Register(Entry{ModifyIncomingMove: func(ctx *MoveContext) {
		if ctx.Move.IsDamaging() && ctx.Move.Type != c.TypeTypeless && ctx.Effectiveness() <= 1 {
			nullify(ctx.Move)
		}
	}}, "wonderguard")
	Abilities.Register(Entry{ModifyIncomingMove: func(ctx *MoveContext) {
		if ctx.Move.Flags.Sound && incoming(ctx) {
			nullify(ctx.Move)
		}
	}}, "soundproof")
	Abilities.Register(Entry{ModifyIncomingMove: func(ctx *MoveContext) {
		if ctx.Move.Flags.Bullet {
			nullify(ctx.Move)
		}
	}}, "bulletproof")
	Abilities.Register(Entry{ModifyIncomingMove: func(ctx *MoveContext) {
		if ctx.Move.Flags.Powder {
			nullify(ctx.Move)
		}
	}}, "overcoat")

	// Status moves aimed at the holder come back at the user.
	Abilities.Register(Entry{ModifyIncomingMove: func(ctx *MoveContext) {
		if ctx.Move.Category != c.CategoryStatus {
			return
		}
		switch ctx.Move.Target {
		case c.TargetNormal:
			ctx.Move.Target = c.TargetSelf
		case c.TargetFoeSide:
			ctx.Move.Target = c.TargetAllySide
		}
	}}, "magicbounce")

	Abilities.Register(Entry{ModifyIncomingMove: func(ctx *MoveContext) {
		sec := ctx.Move.Secondary
		if sec == nil {
			return
		}
		if sec.SelfBoosts == nil {
			ctx.Move.Secondary = nil
			return
		}
		ctx.Move.Secondary = &data.Secondary{Chance: sec.Chance, SelfBoosts: sec.SelfBoosts}
	}}, "shielddust")

	Abilities.Register(Entry{AfterHit: func(ctx *MoveContext) []model.Instruction {
		if !ctx.Move.Flags.Contact || ctx.Damage == 0 || ctx.HitSubstitute {
			return nil
		}
		return model.Maybe(model.DamageFor(ctx.State, ctx.AttackerSide, ctx.Attacker().Fraction(1, 8)))
	}}, "roughskin", "ironbarbs")

	Abilities.Register(Entry{AfterHit: hitBoost(func(ctx *MoveContext) bool {
		return ctx.Move.Type == c.TypeDark
	}, c.StatAttack, 1)}, "justified")
	Abilities.Register(Entry{AfterHit: hitBoost(func(*MoveContext) bool { return true }, c.StatDefense, 1)}, "stamina")
	Abilities.Register(Entry{AfterHit: func(ctx *MoveContext) []model.Instruction {
		if ctx.Move.Category != c.CategoryPhysical || !landed(ctx) {
			return nil
		}
		side := ctx.DefenderSide()
		out := model.Maybe(model.BoostFor(ctx.State, side, c.StatDefense, -1))
		return append(out, model.Maybe(model.BoostFor(ctx.State, side, c.StatSpeed, 2))...)
	}}, "weakarmor")
}

// landed reports whether the move damaged a defender that is still standing.
func landed(ctx *MoveContext) bool {
	return ctx.Damage > 0 && !ctx.HitSubstitute && !ctx.Defender().IsFainted()
}

func hitBoost(when func(*MoveContext) bool, stat string, n int) func(*MoveContext) []model.Instruction {
	return func(ctx *MoveContext) []model.Instruction {
		if !landed(ctx) || !when(ctx) {
			return nil
		}
		return model.Maybe(model.BoostFor(ctx.State, ctx.DefenderSide(), stat, n))
	}
}

func setWeather(weather, rock string) func(Event) []model.Instruction {
	return func(ev Event) []model.Instruction {
		return startWeather(ev, weather, rock)
	}
}

func startWeather(ev Event, weather, rock string) []model.Instruction {
	s := ev.State
	if s.Weather == weather {
		return nil
	}
	turns := ev.Rules.WeatherTurns
	if HeldItem(s, ev.Side) == rock {
		turns = ev.Rules.ExtendedWeatherTurns
	}
	return []model.Instruction{model.WeatherStart(weather, turns, s.Weather, s.WeatherTurns)}
}

func setTerrain(field string) func(Event) []model.Instruction {
	return func(ev Event) []model.Instruction {
		s := ev.State
		if s.Field == field {
			return nil
		}
		turns := ev.Rules.TerrainTurns
		if HeldItem(s, ev.Side) == "terrainextender" {
			turns = ev.Rules.ExtendedTerrainTurns
		}
		return []model.Instruction{model.FieldStart(field, turns, s.Field, s.FieldTurns)}
	}
}

func registerEventAbilities() {
	Abilities.Register(Entry{OnSwitchIn: setWeather(c.WeatherRain, "damprock")}, "drizzle")
	Abilities.Register(Entry{OnSwitchIn: setWeather(c.WeatherSun, "heatrock")}, "drought")
	Abilities.Register(Entry{OnSwitchIn: setWeather(c.WeatherSand, "smoothrock")}, "sandstream")
	Abilities.Register(Entry{OnSwitchIn: func(ev Event) []model.Instruction {
		if ev.Rules.HailDamages {
			return startWeather(ev, c.WeatherHail, "icyrock")
		}
		return startWeather(ev, c.WeatherSnow, "icyrock")
	}}, "snowwarning")

	Abilities.Register(Entry{OnSwitchIn: setTerrain(c.FieldElectric)}, "electricsurge")
	Abilities.Register(Entry{OnSwitchIn: setTerrain(c.FieldGrassy)}, "grassysurge")
	Abilities.Register(Entry{OnSwitchIn: setTerrain(c.FieldMisty)}, "mistysurge")
	Abilities.Register(Entry{OnSwitchIn: setTerrain(c.FieldPsychic)}, "psychicsurge")

	Abilities.Register(Entry{OnSwitchIn: func(ev Event) []model.Instruction {
		foeSide := ev.Side.Other()
		foe := ev.Foe()
		if foe == nil || foe.IsFainted() || foe.HasVolatile(c.VolatileSubstitute) {
			return nil
		}
		foeAbility := ev.State.Ability(foeSide)
		if BlocksStatDrops(foeAbility) || (ev.Rules.Generation >= 8 && intimidateProof[foeAbility]) {
			return nil
		}
		out := model.Maybe(model.BoostFor(ev.State, foeSide, c.StatAttack, -1))
		switch foeAbility {
		case "defiant":
			out = append(out, model.Maybe(boostAfter(ev.State, out, foeSide, c.StatAttack, 2))...)
		case "competitive":
			out = append(out, model.Maybe(model.BoostFor(ev.State, foeSide, c.StatSpecialAttack, 2))...)
		}
		return out
	}}, "intimidate")

	Abilities.Register(Entry{OnSwitchIn: func(ev Event) []model.Instruction {
		foe := ev.Foe()
		if foe == nil || foe.IsFainted() {
			return nil
		}
		stat := c.StatSpecialAttack
		if foe.BoostedStat(c.StatDefense) < foe.BoostedStat(c.StatSpecialDefense) {
			stat = c.StatAttack
		}
		return model.Maybe(model.BoostFor(ev.State, ev.Side, stat, 1))
	}}, "download")

	Abilities.Register(Entry{EndOfTurn: func(ev Event) []model.Instruction {
		return model.Maybe(model.BoostFor(ev.State, ev.Side, c.StatSpeed, 1))
	}}, "speedboost")
	Abilities.Register(Entry{EndOfTurn: func(ev Event) []model.Instruction {
		p := ev.Pokemon()
		w := ev.State.EffectiveWeather()
		if p.Status == c.StatusNone || (w != c.WeatherRain && w != c.WeatherHeavyRain) {
			return nil
		}
		return []model.Instruction{model.RemoveStatus(ev.Side, p.Status)}
	}}, "hydration")
	Abilities.Register(Entry{EndOfTurn: weatherHeal(c.WeatherRain, c.WeatherHeavyRain)}, "raindish")
	Abilities.Register(Entry{EndOfTurn: weatherHeal(c.WeatherHail, c.WeatherSnow)}, "icebody")

	Abilities.Register(Entry{OnSwitchOut: func(ev Event) []model.Instruction {
		p := ev.Pokemon()
		if p.Status == c.StatusNone {
			return nil
		}
		return []model.Instruction{model.RemoveStatus(ev.Side, p.Status)}
	}}, "naturalcure")
	Abilities.Register(Entry{OnSwitchOut: func(ev Event) []model.Instruction {
		return model.Maybe(model.HealFor(ev.State, ev.Side, ev.Pokemon().MaxHP/3))
	}}, "regenerator")
}

func weatherHeal(weathers ...string) func(Event) []model.Instruction {
	return func(ev Event) []model.Instruction {
		w := ev.State.EffectiveWeather()
		for _, want := range weathers {
			if w == want {
				return model.Maybe(model.HealFor(ev.State, ev.Side, ev.Pokemon().Fraction(1, 16)))
			}
		}
		return nil
	}
}

// boostAfter clamps a boost as if prior had already been applied.
func boostAfter(s *model.State, prior []model.Instruction, side model.SideRef, stat string, n int) (model.Instruction, bool) {
	m := model.NewMutator(s)
	m.Apply(prior)
	defer m.Reverse(prior)
	return model.BoostFor(s, side, stat, n)
}
