package effects_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/data"
	"github.com/udisondev/battlecalc/internal/game/effects"
	"github.com/udisondev/battlecalc/internal/model"
	"github.com/udisondev/battlecalc/internal/ruleset"
	"github.com/udisondev/battlecalc/internal/testutil"
)

func TestMain(m *testing.M) {
	testutil.LoadData()
	m.Run()
}

func moveCtx(s *model.State, move string) *effects.MoveContext {
	return &effects.MoveContext{
		State:        s,
		AttackerSide: model.Self,
		Rules:        ruleset.Default(),
		Move:         data.MustGetMove(move).Clone(),
	}
}

func resolve(s *model.State, move string) *data.Move {
	ctx := moveCtx(s, move)
	effects.ResolveMove(ctx)
	return ctx.Move
}

func TestResolveMove_Order(t *testing.T) {
	tech := testutil.WithAbility("technician")

	tests := []struct {
		name     string
		attacker *model.Pokemon
		move     string
		want     int
	}{
		{"technician", testutil.NewPokemon("pikachu", tech), "tackle", 60},
		// The move rewrite runs first, so technician sees 110.
		{"move before ability", testutil.NewPokemon("pikachu", tech), "acrobatics", 110},
		// Hits are folded in last, so technician sees one 25 power hit.
		{"multihit last", testutil.NewPokemon("pikachu", tech), "bulletseed", 37 * 3},
		{"skill link", testutil.NewPokemon("pikachu", testutil.WithAbility("skilllink")), "bulletseed", 125},
		{"fixed hits", testutil.NewPokemon("pikachu"), "doublekick", 60},
		{"choice band", testutil.NewPokemon("pikachu", testutil.WithItem("choiceband")), "tackle", 60},
		{"klutz ignores item", testutil.NewPokemon("pikachu", testutil.WithItem("choiceband"), testutil.WithAbility("klutz")), "tackle", 40},
		{"life orb", testutil.NewPokemon("pikachu", testutil.WithItem("lifeorb")), "thunderbolt", 117},
		{"guts facade", testutil.NewPokemon("pikachu", testutil.WithAbility("guts"), testutil.WithStatus(c.StatusBurn)), "facade", 210},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.NewState(tt.attacker, testutil.NewPokemon("snorlax"))
			assert.Equal(t, tt.want, resolve(s, tt.move).BasePower)
		})
	}
}

func TestResolveMove_MoldBreaker(t *testing.T) {
	defender := testutil.NewPokemon("gengar", testutil.WithAbility("levitate"))

	s := testutil.NewState(testutil.NewPokemon("garchomp"), defender)
	m := resolve(s, "earthquake")
	assert.Equal(t, c.CategoryStatus, m.Category)
	assert.Zero(t, m.BasePower)

	s = testutil.NewState(testutil.NewPokemon("garchomp", testutil.WithAbility("moldbreaker")), defender)
	m = resolve(s, "earthquake")
	assert.Equal(t, c.CategoryPhysical, m.Category)
	assert.Equal(t, 100, m.BasePower)

	// Shadow shield cannot be ignored.
	shielded := testutil.NewPokemon("blissey", testutil.WithAbility("shadowshield"))
	s = testutil.NewState(testutil.NewPokemon("garchomp", testutil.WithAbility("moldbreaker")), shielded)
	assert.Equal(t, 50, resolve(s, "earthquake").BasePower)
}

func TestResolveMove_NeutralizingGas(t *testing.T) {
	s := testutil.NewState(
		testutil.NewPokemon("pikachu", testutil.WithAbility("technician")),
		testutil.NewPokemon("gengar", testutil.WithAbility("neutralizinggas")),
	)
	assert.Equal(t, 40, resolve(s, "tackle").BasePower)

	s.Opponent.Active.HP = 0
	assert.Equal(t, 60, resolve(s, "tackle").BasePower, "a fainted holder releases the gas")
}

func TestResolveMove_Absorb(t *testing.T) {
	tests := []struct {
		ability    string
		move       string
		wantHeal   data.Fraction
		wantBoosts map[string]int
	}{
		{"voltabsorb", "thunderbolt", data.Fraction{Num: 1, Den: 4}, nil},
		{"waterabsorb", "surf", data.Fraction{Num: 1, Den: 4}, nil},
		{"motordrive", "thunderbolt", data.Fraction{}, map[string]int{c.StatSpeed: 1}},
		{"lightningrod", "thunderwave", data.Fraction{}, map[string]int{c.StatSpecialAttack: 1}},
		{"sapsipper", "spore", data.Fraction{}, map[string]int{c.StatAttack: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.ability, func(t *testing.T) {
			s := testutil.NewState(
				testutil.NewPokemon("pikachu"),
				testutil.NewPokemon("rotomwash", testutil.WithAbility(tt.ability)),
			)
			m := resolve(s, tt.move)
			assert.Equal(t, c.CategoryStatus, m.Category)
			assert.Zero(t, m.BasePower)
			assert.Empty(t, m.Status)
			assert.Equal(t, tt.wantHeal, m.Heal)
			assert.Equal(t, tt.wantBoosts, m.Boosts)
		})
	}
}

func TestResolveMove_FlashFire(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("charizard"), testutil.NewPokemon("heatran", testutil.WithAbility("flashfire")))
	m := resolve(s, "flamethrower")
	assert.Zero(t, m.BasePower)
	assert.Equal(t, c.VolatileFlashFire, m.VolatileStatus)

	s = testutil.NewState(
		testutil.NewPokemon("heatran", testutil.WithAbility("flashfire"), testutil.WithVolatile(c.VolatileFlashFire)),
		testutil.NewPokemon("snorlax"),
	)
	assert.Equal(t, 135, resolve(s, "flamethrower").BasePower)
}

func TestResolveMove_MagicBounce(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("pikachu"), testutil.NewPokemon("clefable", testutil.WithAbility("magicbounce")))
	assert.Equal(t, c.TargetSelf, resolve(s, "thunderwave").Target)
	assert.Equal(t, c.TargetAllySide, resolve(s, "stealthrock").Target)
	assert.Equal(t, c.TargetNormal, resolve(s, "thunderbolt").Target, "damaging moves are not reflected")
}

func TestResolveMove_Immunities(t *testing.T) {
	tests := []struct {
		name     string
		defender *model.Pokemon
		move     string
	}{
		{"powder vs grass", testutil.NewPokemon("venusaur"), "spore"},
		{"leech seed vs grass", testutil.NewPokemon("ferrothorn"), "leechseed"},
		{"thunder wave vs ground", testutil.NewPokemon("garchomp"), "thunderwave"},
		{"overcoat", testutil.NewPokemon("snorlax", testutil.WithAbility("overcoat")), "sleeppowder"},
		{"soundproof", testutil.NewPokemon("snorlax", testutil.WithAbility("soundproof")), "hypervoice"},
		{"bulletproof", testutil.NewPokemon("snorlax", testutil.WithAbility("bulletproof")), "shadowball"},
		{"air balloon", testutil.NewPokemon("heatran", testutil.WithItem("airballoon")), "earthquake"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.NewState(testutil.NewPokemon("pikachu"), tt.defender)
			m := resolve(s, tt.move)
			assert.Equal(t, c.CategoryStatus, m.Category)
			assert.Empty(t, m.Status)
			assert.Empty(t, m.VolatileStatus)
			assert.Zero(t, m.BasePower)
		})
	}
}

func TestResolveMove_Weather(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("pikachu"), testutil.NewPokemon("snorlax"))
	s.Weather = c.WeatherRain

	m := resolve(s, "weatherball")
	assert.Equal(t, c.TypeWater, m.Type)
	assert.Equal(t, 100, m.BasePower)
	assert.True(t, resolve(s, "thunder").AlwaysHits)

	s.Weather = c.WeatherSun
	assert.Equal(t, 50, resolve(s, "hurricane").Accuracy)
	assert.False(t, resolve(s, "solarbeam").Charge)

	s.Opponent.Active.Ability = "cloudnine"
	assert.Equal(t, c.TypeNormal, resolve(s, "weatherball").Type)
}

func TestResolveMove_SuckerPunch(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("pikachu"), testutil.NewPokemon("snorlax"))

	ctx := moveCtx(s, "suckerpunch")
	ctx.AttackerFirst = true
	ctx.DefenderMove = data.MustGetMove("tackle")
	effects.ResolveMove(ctx)
	assert.Equal(t, 70, ctx.Move.BasePower)

	ctx = moveCtx(s, "suckerpunch")
	ctx.AttackerFirst = true
	ctx.DefenderMove = data.MustGetMove("swordsdance")
	effects.ResolveMove(ctx)
	assert.Zero(t, ctx.Move.BasePower)
}

func TestResolveMove_Pursuit(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("tyranitar"), testutil.NewPokemon("gengar"))
	ctx := moveCtx(s, "pursuit")
	ctx.DefenderSwitching = true
	effects.ResolveMove(ctx)
	assert.Equal(t, 80, ctx.Move.BasePower)
}

func TestResolveMove_VariablePower(t *testing.T) {
	tests := []struct {
		name     string
		attacker *model.Pokemon
		defender *model.Pokemon
		move     string
		want     int
	}{
		{"stored power", testutil.NewPokemon("clefable", testutil.WithBoost(c.StatSpecialAttack, 2), testutil.WithBoost(c.StatSpeed, 1)), testutil.NewPokemon("snorlax"), "storedpower", 80},
		{"eruption half hp", testutil.NewPokemon("heatran", testutil.WithHP(172)), testutil.NewPokemon("snorlax"), "eruption", 75},
		{"low kick heavy", testutil.NewPokemon("garchomp"), testutil.NewPokemon("snorlax"), "lowkick", 120},
		{"grass knot light", testutil.NewPokemon("venusaur"), testutil.NewPokemon("pikachu"), "grassknot", 20},
		{"heavy slam", testutil.NewPokemon("snorlax"), testutil.NewPokemon("pikachu"), "heavyslam", 120},
		{"reversal at 1 hp", testutil.NewPokemon("garchomp", testutil.WithHP(1)), testutil.NewPokemon("snorlax"), "reversal", 200},
		{"reversal full", testutil.NewPokemon("garchomp"), testutil.NewPokemon("snorlax"), "reversal", 20},
		{"electro ball", testutil.NewPokemon("pikachu", testutil.WithSpeed(400)), testutil.NewPokemon("snorlax", testutil.WithSpeed(100)), "electroball", 150},
		{"gyro ball", testutil.NewPokemon("ferrothorn", testutil.WithSpeed(50)), testutil.NewPokemon("pikachu", testutil.WithSpeed(300)), "gyroball", 150},
		{"knock off item", testutil.NewPokemon("tyranitar"), testutil.NewPokemon("snorlax", testutil.WithItem("leftovers")), "knockoff", 97},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.NewState(tt.attacker, tt.defender)
			assert.Equal(t, tt.want, resolve(s, tt.move).BasePower)
		})
	}
}

func TestOnSwitchIn(t *testing.T) {
	tests := []struct {
		name  string
		self  *model.Pokemon
		foe   *model.Pokemon
		rules ruleset.Ruleset
		want  []model.Instruction
	}{
		{
			name:  "intimidate",
			self:  testutil.NewPokemon("garchomp", testutil.WithAbility("intimidate")),
			foe:   testutil.NewPokemon("pikachu"),
			rules: ruleset.Gen8(),
			want:  []model.Instruction{model.Boost(model.Opponent, c.StatAttack, -1)},
		},
		{
			name:  "intimidate into clear body",
			self:  testutil.NewPokemon("garchomp", testutil.WithAbility("intimidate")),
			foe:   testutil.NewPokemon("pikachu", testutil.WithAbility("clearbody")),
			rules: ruleset.Gen8(),
		},
		{
			name:  "intimidate into defiant",
			self:  testutil.NewPokemon("garchomp", testutil.WithAbility("intimidate")),
			foe:   testutil.NewPokemon("pikachu", testutil.WithAbility("defiant"), testutil.WithBoost(c.StatAttack, 5)),
			rules: ruleset.Gen8(),
			want: []model.Instruction{
				model.Boost(model.Opponent, c.StatAttack, -1),
				model.Boost(model.Opponent, c.StatAttack, 2),
			},
		},
		{
			name:  "drizzle",
			self:  testutil.NewPokemon("toxapex", testutil.WithAbility("drizzle")),
			foe:   testutil.NewPokemon("pikachu"),
			rules: ruleset.Gen8(),
			want:  []model.Instruction{model.WeatherStart(c.WeatherRain, 5, "", 0)},
		},
		{
			name:  "drizzle with damp rock",
			self:  testutil.NewPokemon("toxapex", testutil.WithAbility("drizzle"), testutil.WithItem("damprock")),
			foe:   testutil.NewPokemon("pikachu"),
			rules: ruleset.Gen8(),
			want:  []model.Instruction{model.WeatherStart(c.WeatherRain, 8, "", 0)},
		},
		{
			name:  "snow warning gen 9",
			self:  testutil.NewPokemon("clefable", testutil.WithAbility("snowwarning")),
			foe:   testutil.NewPokemon("pikachu"),
			rules: ruleset.Gen9(),
			want:  []model.Instruction{model.WeatherStart(c.WeatherSnow, 5, "", 0)},
		},
		{
			name:  "electric surge",
			self:  testutil.NewPokemon("pikachu", testutil.WithAbility("electricsurge")),
			foe:   testutil.NewPokemon("snorlax"),
			rules: ruleset.Gen8(),
			want:  []model.Instruction{model.FieldStart(c.FieldElectric, 5, "", 0)},
		},
		{
			name:  "download",
			self:  testutil.NewPokemon("pikachu", testutil.WithAbility("download")),
			foe:   testutil.NewPokemon("blissey"),
			rules: ruleset.Gen8(),
			want:  []model.Instruction{model.Boost(model.Self, c.StatAttack, 1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.NewState(tt.self, tt.foe)
			before := s.Fingerprint()
			assert.Equal(t, tt.want, effects.OnSwitchIn(s, model.Self, tt.rules))
			assert.Equal(t, before, s.Fingerprint())
		})
	}
}

func TestOnSwitchIn_Seed(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("pikachu", testutil.WithItem("electricseed")), testutil.NewPokemon("snorlax"))
	assert.Empty(t, effects.OnSwitchIn(s, model.Self, ruleset.Default()))

	s.Field = c.FieldElectric
	assert.Equal(t, []model.Instruction{
		model.Boost(model.Self, c.StatDefense, 1),
		model.ChangeItem(model.Self, "", "electricseed"),
	}, effects.OnSwitchIn(s, model.Self, ruleset.Default()))
}

func TestOnSwitchOut(t *testing.T) {
	p := testutil.NewPokemon("toxapex", testutil.WithAbility("regenerator"))
	p.HP = 10
	s := testutil.NewState(p, testutil.NewPokemon("pikachu"))
	assert.Equal(t, []model.Instruction{model.Heal(model.Self, p.MaxHP/3)}, effects.OnSwitchOut(s, model.Self, ruleset.Default()))

	s.Self.Active = testutil.NewPokemon("blissey", testutil.WithAbility("naturalcure"), testutil.WithStatus(c.StatusToxic))
	assert.Equal(t, []model.Instruction{model.RemoveStatus(model.Self, c.StatusToxic)}, effects.OnSwitchOut(s, model.Self, ruleset.Default()))
}

func TestEndOfTurn(t *testing.T) {
	p := testutil.NewPokemon("pikachu", testutil.WithItem("leftovers"))
	s := testutil.NewState(p, testutil.NewPokemon("snorlax"))
	assert.Empty(t, effects.EndOfTurn(s, model.Self, ruleset.Default()), "full hp")

	p.HP -= 50
	assert.Equal(t, []model.Instruction{model.Heal(model.Self, p.MaxHP/16)}, effects.EndOfTurn(s, model.Self, ruleset.Default()))

	p.HP = 0
	assert.Empty(t, effects.EndOfTurn(s, model.Self, ruleset.Default()), "fainted")
}

// Leftovers must see the chip solar power has just dealt.
func TestEndOfTurn_Chained(t *testing.T) {
	p := testutil.NewPokemon("pikachu", testutil.WithAbility("solarpower"), testutil.WithItem("leftovers"))
	s := testutil.NewState(p, testutil.NewPokemon("snorlax"))
	s.Weather = c.WeatherSun
	before := s.Fingerprint()

	got := effects.EndOfTurn(s, model.Self, ruleset.Default())
	assert.Equal(t, []model.Instruction{
		model.Damage(model.Self, p.MaxHP/8),
		model.Heal(model.Self, p.MaxHP/16),
	}, got)
	assert.Equal(t, before, s.Fingerprint())
}

func TestEndOfTurn_Items(t *testing.T) {
	rules := ruleset.Default()

	s := testutil.NewState(testutil.NewPokemon("pikachu", testutil.WithItem("blacksludge")), testutil.NewPokemon("snorlax"))
	assert.Equal(t, []model.Instruction{model.Damage(model.Self, s.Self.Active.MaxHP/8)}, effects.EndOfTurn(s, model.Self, rules))

	s = testutil.NewState(testutil.NewPokemon("snorlax", testutil.WithItem("flameorb")), testutil.NewPokemon("pikachu"))
	assert.Equal(t, []model.Instruction{model.ApplyStatus(model.Self, c.StatusBurn, "")}, effects.EndOfTurn(s, model.Self, rules))

	s = testutil.NewState(testutil.NewPokemon("heatran", testutil.WithItem("flameorb")), testutil.NewPokemon("pikachu"))
	assert.Empty(t, effects.EndOfTurn(s, model.Self, rules), "fire types do not burn")

	s = testutil.NewState(testutil.NewPokemon("pikachu", testutil.WithAbility("speedboost")), testutil.NewPokemon("snorlax"))
	assert.Equal(t, []model.Instruction{model.Boost(model.Self, c.StatSpeed, 1)}, effects.EndOfTurn(s, model.Self, rules))
}

func TestAfterMove(t *testing.T) {
	t.Run("life orb recoil", func(t *testing.T) {
		s := testutil.NewState(testutil.NewPokemon("pikachu", testutil.WithItem("lifeorb")), testutil.NewPokemon("snorlax"))
		ctx := moveCtx(s, "thunderbolt")
		ctx.Damage = 50
		assert.Equal(t, []model.Instruction{model.Damage(model.Self, s.Self.Active.MaxHP/10)}, effects.AfterMove(ctx))

		ctx.Damage = 0
		assert.Empty(t, effects.AfterMove(ctx))
	})

	t.Run("rocky helmet", func(t *testing.T) {
		s := testutil.NewState(testutil.NewPokemon("pikachu"), testutil.NewPokemon("ferrothorn", testutil.WithItem("rockyhelmet")))
		ctx := moveCtx(s, "tackle")
		ctx.Damage = 30
		assert.Equal(t, []model.Instruction{model.Damage(model.Self, s.Self.Active.MaxHP/6)}, effects.AfterMove(ctx))

		ctx = moveCtx(s, "thunderbolt")
		ctx.Damage = 30
		assert.Empty(t, effects.AfterMove(ctx), "no contact")
	})

	t.Run("moxie", func(t *testing.T) {
		s := testutil.NewState(testutil.NewPokemon("garchomp", testutil.WithAbility("moxie")), testutil.NewPokemon("pikachu", testutil.WithHP(0)))
		ctx := moveCtx(s, "earthquake")
		ctx.Damage = 100
		assert.Equal(t, []model.Instruction{model.Boost(model.Self, c.StatAttack, 1)}, effects.AfterMove(ctx))
	})

	t.Run("knock off", func(t *testing.T) {
		s := testutil.NewState(testutil.NewPokemon("tyranitar"), testutil.NewPokemon("snorlax", testutil.WithItem("leftovers")))
		ctx := moveCtx(s, "knockoff")
		ctx.Damage = 80
		assert.Equal(t, []model.Instruction{model.ChangeItem(model.Opponent, "", "leftovers")}, effects.AfterMove(ctx))

		ctx.HitSubstitute = true
		assert.Empty(t, effects.AfterMove(ctx))
	})

	t.Run("rest", func(t *testing.T) {
		p := testutil.NewPokemon("snorlax", testutil.WithStatus(c.StatusBurn))
		p.HP = 100
		s := testutil.NewState(p, testutil.NewPokemon("pikachu"))
		ctx := moveCtx(s, "rest")
		assert.Equal(t, []model.Instruction{
			model.ApplyStatus(model.Self, c.StatusSleep, c.StatusBurn),
			model.SetRestTurns(model.Self, 3, 0),
			model.Heal(model.Self, p.MaxHP-100),
		}, effects.AfterMove(ctx))

		p.HP = p.MaxHP
		assert.Empty(t, effects.AfterMove(ctx), "rest fails at full hp")
	})

	t.Run("wish", func(t *testing.T) {
		s := testutil.NewState(testutil.NewPokemon("clefable"), testutil.NewPokemon("pikachu"))
		ctx := moveCtx(s, "wish")
		want := model.WishStart(model.Self, s.Self.Active.MaxHP/2, 2, model.Wish{})
		assert.Equal(t, []model.Instruction{want}, effects.AfterMove(ctx))

		s.Self.Wish = model.Wish{Turns: 1, Amount: 10}
		assert.Empty(t, effects.AfterMove(ctx))
	})

	t.Run("belly drum", func(t *testing.T) {
		p := testutil.NewPokemon("snorlax", testutil.WithBoost(c.StatAttack, 1))
		s := testutil.NewState(p, testutil.NewPokemon("pikachu"))
		ctx := moveCtx(s, "bellydrum")
		assert.Equal(t, []model.Instruction{
			model.Damage(model.Self, p.MaxHP/2),
			model.Boost(model.Self, c.StatAttack, 5),
		}, effects.AfterMove(ctx))
	})
}

func TestFutureSight(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("clefable"), testutil.NewPokemon("pikachu"))
	ctx := moveCtx(s, "futuresight")
	effects.ResolveMove(ctx)
	require.Equal(t, c.CategoryStatus, ctx.Move.Category)

	assert.Equal(t, []model.Instruction{
		model.FutureSightStart(model.Opponent, "clefable", 3, model.FutureSight{}),
	}, effects.AfterMove(ctx))

	s.Opponent.FutureSight = model.FutureSight{Turns: 2, Source: "clefable"}
	assert.Empty(t, effects.AfterMove(ctx), "one future sight per side")
}

func TestBeforeMove_Protean(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("pikachu", testutil.WithAbility("protean")), testutil.NewPokemon("snorlax"))
	ctx := moveCtx(s, "surf")
	assert.Equal(t, []model.Instruction{
		model.ChangeType(model.Self, [2]string{c.TypeWater}, [2]string{c.TypeElectric}),
	}, effects.BeforeMove(ctx))

	ctx = moveCtx(s, "thunderbolt")
	s.Self.Active.Types = [2]string{c.TypeElectric}
	assert.Empty(t, effects.BeforeMove(ctx))
}

func TestEffectiveSpeed(t *testing.T) {
	tests := []struct {
		name  string
		opts  []testutil.Option
		setup func(s *model.State)
		want  int
	}{
		{name: "plain", want: 100},
		{name: "boosted", opts: []testutil.Option{testutil.WithBoost(c.StatSpeed, 1)}, want: 150},
		{name: "choice scarf", opts: []testutil.Option{testutil.WithItem("choicescarf")}, want: 150},
		{name: "iron ball", opts: []testutil.Option{testutil.WithItem("ironball")}, want: 50},
		{name: "paralysis", opts: []testutil.Option{testutil.WithStatus(c.StatusParalysis)}, want: 50},
		{name: "quick feet", opts: []testutil.Option{testutil.WithStatus(c.StatusParalysis), testutil.WithAbility("quickfeet")}, want: 150},
		{name: "tailwind", setup: func(s *model.State) { s.Self.SideConditions[c.SideTailwind] = 3 }, want: 200},
		{
			name:  "swift swim",
			opts:  []testutil.Option{testutil.WithAbility("swiftswim")},
			setup: func(s *model.State) { s.Weather = c.WeatherRain },
			want:  200,
		},
		{
			name:  "surge surfer",
			opts:  []testutil.Option{testutil.WithAbility("surgesurfer")},
			setup: func(s *model.State) { s.Field = c.FieldElectric },
			want:  200,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]testutil.Option{testutil.WithSpeed(100)}, tt.opts...)
			s := testutil.NewState(testutil.NewPokemon("pikachu", opts...), testutil.NewPokemon("snorlax"))
			if tt.setup != nil {
				tt.setup(s)
			}
			assert.Equal(t, tt.want, effects.EffectiveSpeed(s, model.Self, ruleset.Default()))
		})
	}
}

func TestPriority(t *testing.T) {
	tests := []struct {
		ability string
		hp      int
		move    string
		want    int
	}{
		{"", 0, "quickattack", 1},
		{"", 0, "trickroom", -7},
		{"prankster", 0, "thunderwave", 1},
		{"prankster", 0, "thunderbolt", 0},
		{"galewings", 0, "bravebird", 1},
		{"galewings", 1, "bravebird", 0},
		{"triage", 0, "recover", 3},
		{"triage", 0, "drainpunch", 3},
	}
	for _, tt := range tests {
		t.Run(tt.ability+" "+tt.move, func(t *testing.T) {
			p := testutil.NewPokemon("pikachu", testutil.WithAbility(tt.ability))
			if tt.hp > 0 {
				p.HP = tt.hp
			}
			s := testutil.NewState(p, testutil.NewPokemon("snorlax"))
			assert.Equal(t, tt.want, effects.Priority(s, model.Self, data.MustGetMove(tt.move)))
		})
	}
}

func TestBlocksStatus(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("pikachu", testutil.WithAbility("limber")), testutil.NewPokemon("snorlax"))
	assert.True(t, effects.BlocksStatus(s, model.Self, c.StatusParalysis))
	assert.False(t, effects.BlocksStatus(s, model.Self, c.StatusBurn))

	s.Self.Active.Ability = "leafguard"
	assert.False(t, effects.BlocksStatus(s, model.Self, c.StatusBurn))
	s.Weather = c.WeatherSun
	assert.True(t, effects.BlocksStatus(s, model.Self, c.StatusBurn))
}
