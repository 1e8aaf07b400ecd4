package instruction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/model"
	"github.com/udisondev/battlecalc/internal/testutil"
)

func switchTo(t *testing.T, s *model.State, to string) []model.Instruction {
	t.Helper()
	got := newGen(s).Switch(root(), model.Self, to)
	require.Len(t, got, 1)
	testutil.AssertRoundTrip(t, s, got)
	return got[0].Instructions
}

func TestSwitch_Hazards(t *testing.T) {
	tests := []struct {
		name       string
		conditions map[string]int
		incoming   *model.Pokemon
		want       []model.Instruction
	}{
		{
			name:       "stealth rock x4",
			conditions: map[string]int{c.SideStealthRock: 1},
			incoming:   testutil.NewPokemon("charizard"),
			// 318 max HP, rock is 4x.
			want: []model.Instruction{model.Damage(model.Self, 159)},
		},
		{
			name:       "boots",
			conditions: map[string]int{c.SideStealthRock: 1, c.SideSpikes: 3},
			incoming:   testutil.NewPokemon("charizard", testutil.WithItem("heavydutyboots")),
		},
		{
			name:       "spikes",
			conditions: map[string]int{c.SideSpikes: 1},
			incoming:   testutil.NewPokemon("snorlax"),
			want:       []model.Instruction{model.Damage(model.Self, 60)},
		},
		{
			name:       "three layers",
			conditions: map[string]int{c.SideSpikes: 3},
			incoming:   testutil.NewPokemon("snorlax"),
			want:       []model.Instruction{model.Damage(model.Self, 120)},
		},
		{
			name:       "flying skips spikes",
			conditions: map[string]int{c.SideSpikes: 3, c.SideStickyWeb: 1},
			incoming:   testutil.NewPokemon("skarmory"),
		},
		{
			name:       "magic guard",
			conditions: map[string]int{c.SideStealthRock: 1},
			incoming:   testutil.NewPokemon("charizard", testutil.WithAbility("magicguard")),
		},
		{
			name:       "toxic spikes",
			conditions: map[string]int{c.SideToxicSpikes: 2},
			incoming:   testutil.NewPokemon("snorlax"),
			want:       []model.Instruction{model.ApplyStatus(model.Self, c.StatusToxic, c.StatusNone)},
		},
		{
			name:       "poison absorbs toxic spikes",
			conditions: map[string]int{c.SideToxicSpikes: 1},
			incoming:   testutil.NewPokemon("toxapex"),
			want:       []model.Instruction{model.SideEnd(model.Self, c.SideToxicSpikes, 1)},
		},
		{
			name:       "sticky web",
			conditions: map[string]int{c.SideStickyWeb: 1},
			incoming:   testutil.NewPokemon("snorlax"),
			want:       []model.Instruction{model.Boost(model.Self, c.StatSpeed, -1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.NewState(testutil.NewPokemon("pikachu"), testutil.NewPokemon("blissey"))
			testutil.WithReserves(s, model.Self, tt.incoming)
			for cond, n := range tt.conditions {
				s.Self.SideConditions[cond] = n
			}

			got := switchTo(t, s, tt.incoming.ID)
			want := append([]model.Instruction{model.Switch(model.Self, "pikachu", tt.incoming.ID)}, tt.want...)
			assert.Equal(t, want, got)
		})
	}
}

func TestSwitch_LeavingClears(t *testing.T) {
	out := testutil.NewPokemon("pikachu",
		testutil.WithBoost(c.StatAttack, 2),
		testutil.WithBoost(c.StatSpeed, -1),
		testutil.WithVolatile(c.VolatileSubstitute, c.VolatileConfusion),
		testutil.WithMoves("tackle", "thunderbolt"),
		testutil.WithTypes(c.TypeFire),
	)
	out.SubstituteHP = 50
	out.Moves[1].Disabled = true
	s := testutil.NewState(out, testutil.NewPokemon("blissey"))
	testutil.WithReserves(s, model.Self, testutil.NewPokemon("snorlax"))
	s.Self.SideConditions[c.SideToxicCount] = 3

	got := switchTo(t, s, "snorlax")
	assert.Equal(t, []model.Instruction{
		model.SetSubstituteHealth(model.Self, 0, 50),
		model.RemoveVolatile(model.Self, c.VolatileConfusion),
		model.RemoveVolatile(model.Self, c.VolatileSubstitute),
		model.Boost(model.Self, c.StatAttack, -2),
		model.Boost(model.Self, c.StatSpeed, 1),
		model.SideEnd(model.Self, c.SideToxicCount, 3),
		model.EnableMove(model.Self, "thunderbolt"),
		model.ChangeType(model.Self, [2]string{c.TypeElectric}, [2]string{c.TypeFire}),
		model.Switch(model.Self, "pikachu", "snorlax"),
	}, got)
}

func TestSwitch_Hooks(t *testing.T) {
	s := testutil.NewState(
		testutil.NewPokemon("slowbro", testutil.WithAbility("regenerator"), testutil.WithHP(100)),
		testutil.NewPokemon("blissey"),
	)
	testutil.WithReserves(s, model.Self, testutil.NewPokemon("pelipper", testutil.WithAbility("drizzle")))

	got := switchTo(t, s, "pelipper")
	// Slowbro: 352 max HP, regenerator heals a third.
	assert.Equal(t, []model.Instruction{
		model.Heal(model.Self, 117),
		model.Switch(model.Self, "slowbro", "pelipper"),
		model.WeatherStart(c.WeatherRain, 5, c.WeatherNone, 0),
	}, got)
}

func TestSwitch_FaintedOnEntry(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("pikachu"), testutil.NewPokemon("blissey"))
	testutil.WithReserves(s, model.Self, testutil.NewPokemon("pelipper", testutil.WithAbility("drizzle"), testutil.WithHP(10)))
	s.Self.SideConditions[c.SideStealthRock] = 1

	got := switchTo(t, s, "pelipper")
	// Knocked out by the rocks, so drizzle never fires.
	assert.Equal(t, []model.Instruction{
		model.Switch(model.Self, "pikachu", "pelipper"),
		model.Damage(model.Self, 10),
	}, got)
}

func TestSwitch_FaintedBeforeSwitching(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("pikachu", testutil.WithHP(0)), testutil.NewPokemon("blissey"))
	testutil.WithReserves(s, model.Self, testutil.NewPokemon("snorlax"))

	assert.Empty(t, switchTo(t, s, "snorlax"))
}

func TestReplaceFainted(t *testing.T) {
	s := testutil.NewState(
		testutil.NewPokemon("slowbro", testutil.WithAbility("regenerator"), testutil.WithHP(0)),
		testutil.NewPokemon("blissey"),
	)
	testutil.WithReserves(s, model.Self,
		testutil.NewPokemon("snorlax"),
		testutil.NewPokemon("garchomp"),
		testutil.NewPokemon("gengar", testutil.WithHP(0)),
	)

	got := newGen(s).ReplaceFainted(root(), model.Self)
	testutil.AssertProbabilitySum(t, got)
	testutil.AssertRoundTrip(t, s, got)
	require.Len(t, got, 2)
	assert.Equal(t, []model.Instruction{model.Switch(model.Self, "slowbro", "garchomp")}, got[0].Instructions)
	assert.Equal(t, []model.Instruction{model.Switch(model.Self, "slowbro", "snorlax")}, got[1].Instructions)
	assert.InDelta(t, 0.5, got[0].Probability, 1e-9)

	g := newGenWith(s, firstChoice{})
	got = g.ReplaceFainted(root(), model.Self)
	require.Len(t, got, 1)
	assert.InDelta(t, 1, got[0].Probability, 1e-9)

	// Nothing to do while the active Pokemon stands.
	s.Self.Active.HP = 10
	got = newGen(s).ReplaceFainted(root(), model.Self)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Instructions)
}

type fixedChoice []string

func (f fixedChoice) Choose(*model.State, model.SideRef, []string) []string {
	return f
}

func TestReplaceFainted_IllegalChoices(t *testing.T) {
	s := testutil.NewState(
		testutil.NewPokemon("pikachu", testutil.WithHP(0)),
		testutil.NewPokemon("blissey"),
	)
	testutil.WithReserves(s, model.Self,
		testutil.NewPokemon("snorlax"),
		testutil.NewPokemon("garchomp"),
		testutil.NewPokemon("gengar", testutil.WithHP(0)),
	)

	tests := []struct {
		name   string
		choice fixedChoice
		want   []string
	}{
		{"unknown and fainted picks dropped", fixedChoice{"mew", "gengar", "snorlax"}, []string{"snorlax"}},
		{"duplicates folded", fixedChoice{"garchomp", "garchomp"}, []string{"garchomp"}},
		{"nothing legal keeps every option", fixedChoice{"mew"}, []string{"garchomp", "snorlax"}},
		{"empty keeps every option", nil, []string{"garchomp", "snorlax"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newGenWith(s, tt.choice).ReplaceFainted(root(), model.Self)
			testutil.AssertProbabilitySum(t, got)
			testutil.AssertRoundTrip(t, s, got)
			require.Len(t, got, len(tt.want))
			for i, to := range tt.want {
				assert.Equal(t, []model.Instruction{model.Switch(model.Self, "pikachu", to)}, got[i].Instructions)
			}
		})
	}
}
