package instruction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/game/instruction"
	"github.com/udisondev/battlecalc/internal/model"
	"github.com/udisondev/battlecalc/internal/testutil"
)

func endOfTurn(t *testing.T, s *model.State, used map[model.SideRef]instruction.UsedMove) []model.Transposition {
	t.Helper()
	got := newGen(s).EndOfTurn(root(), model.Self, used)
	testutil.AssertProbabilitySum(t, got)
	testutil.AssertRoundTrip(t, s, got)
	return got
}

func TestEndOfTurn_Residuals(t *testing.T) {
	// Snorlax: 482 max HP.
	tests := []struct {
		name  string
		setup func(s *model.State)
		want  []model.Instruction
	}{
		{
			name:  "burn",
			setup: func(s *model.State) { s.Self.Active.Status = c.StatusBurn },
			want:  []model.Instruction{model.Damage(model.Self, 30)},
		},
		{
			name:  "poison",
			setup: func(s *model.State) { s.Self.Active.Status = c.StatusPoison },
			want:  []model.Instruction{model.Damage(model.Self, 60)},
		},
		{
			name:  "toxic first turn",
			setup: func(s *model.State) { s.Self.Active.Status = c.StatusToxic },
			want: []model.Instruction{
				model.SideStart(model.Self, c.SideToxicCount, 1),
				model.Damage(model.Self, 30),
			},
		},
		{
			name: "toxic third turn",
			setup: func(s *model.State) {
				s.Self.Active.Status = c.StatusToxic
				s.Self.SideConditions[c.SideToxicCount] = 2
			},
			want: []model.Instruction{
				model.SideStart(model.Self, c.SideToxicCount, 1),
				model.Damage(model.Self, 90),
			},
		},
		{
			name: "poison heal",
			setup: func(s *model.State) {
				s.Self.Active.Status = c.StatusToxic
				s.Self.Active.Ability = "poisonheal"
				s.Self.Active.HP = 400
			},
			want: []model.Instruction{
				model.SideStart(model.Self, c.SideToxicCount, 1),
				model.Heal(model.Self, 60),
			},
		},
		{
			name:  "sandstorm",
			setup: func(s *model.State) { s.Weather, s.WeatherTurns = c.WeatherSand, 0 },
			want:  []model.Instruction{model.Damage(model.Self, 30)},
		},
		{
			name: "leftovers",
			setup: func(s *model.State) {
				s.Self.Active.Item = "leftovers"
				s.Self.Active.HP = 400
			},
			want: []model.Instruction{model.Heal(model.Self, 30)},
		},
		{
			name: "wish lands",
			setup: func(s *model.State) {
				s.Self.Wish = model.Wish{Turns: 1, Amount: 100}
				s.Self.Active.HP = 300
			},
			want: []model.Instruction{model.WishDecrement(model.Self), model.Heal(model.Self, 100)},
		},
		{
			name:  "wish pending",
			setup: func(s *model.State) { s.Self.Wish = model.Wish{Turns: 2, Amount: 100} },
			want:  []model.Instruction{model.WishDecrement(model.Self)},
		},
		{
			name: "grassy terrain",
			setup: func(s *model.State) {
				s.Field, s.FieldTurns = c.FieldGrassy, 0
				s.Self.Active.HP = 400
			},
			want: []model.Instruction{model.Heal(model.Self, 30)},
		},
		{
			name: "partial trap",
			setup: func(s *model.State) {
				s.Self.Active.Volatile[c.VolatilePartiallyTrapped] = true
			},
			want: []model.Instruction{model.Damage(model.Self, 60)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Garchomp takes nothing from sand and has no residuals of its own.
			s := testutil.NewState(testutil.NewPokemon("snorlax"), testutil.NewPokemon("garchomp"))
			tt.setup(s)

			got := endOfTurn(t, s, nil)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Instructions)
		})
	}
}

func TestEndOfTurn_LeechSeed(t *testing.T) {
	s := testutil.NewState(
		testutil.NewPokemon("snorlax", testutil.WithVolatile(c.VolatileLeechSeed)),
		testutil.NewPokemon("ferrothorn", testutil.WithHP(100)),
	)

	got := endOfTurn(t, s, nil)
	require.Len(t, got, 1)
	assert.Equal(t, []model.Instruction{
		model.Damage(model.Self, 60),
		model.Heal(model.Opponent, 60),
	}, got[0].Instructions)
}

func TestEndOfTurn_FutureSight(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("alakazam"), testutil.NewPokemon("snorlax"))
	s.Opponent.FutureSight = model.FutureSight{Turns: 1, Source: "alakazam"}

	got := endOfTurn(t, s, nil)
	require.Len(t, got, 1)
	log := got[0].Instructions
	require.Len(t, log, 2)
	assert.Equal(t, model.FutureSightDecrement(model.Opponent), log[0])
	assert.Equal(t, model.KindDamage, log[1].Kind)
	assert.Equal(t, model.Opponent, log[1].Side)

	s.Opponent.FutureSight.Turns = 2
	got = endOfTurn(t, s, nil)
	assert.Equal(t, []model.Instruction{model.FutureSightDecrement(model.Opponent)}, got[0].Instructions)
}

func TestEndOfTurn_Protect(t *testing.T) {
	s := testutil.NewState(
		testutil.NewPokemon("snorlax", testutil.WithVolatile(c.VolatileProtect, c.VolatileRoost)),
		testutil.NewPokemon("garchomp"),
	)

	got := endOfTurn(t, s, nil)
	assert.Equal(t, []model.Instruction{
		model.RemoveVolatile(model.Self, c.VolatileProtect),
		model.SideStart(model.Self, c.SideProtect, 1),
		model.RemoveVolatile(model.Self, c.VolatileRoost),
	}, got[0].Instructions)

	s = testutil.NewState(testutil.NewPokemon("snorlax"), testutil.NewPokemon("garchomp"))
	s.Self.SideConditions[c.SideProtect] = 1
	got = endOfTurn(t, s, nil)
	assert.Equal(t, []model.Instruction{model.SideEnd(model.Self, c.SideProtect, 1)}, got[0].Instructions)
}

func TestEndOfTurn_ChoiceLock(t *testing.T) {
	s := testutil.NewState(
		testutil.NewPokemon("garchomp", testutil.WithItem("choiceband"), testutil.WithMoves("earthquake", "outrage")),
		testutil.NewPokemon("snorlax"),
	)
	used := map[model.SideRef]instruction.UsedMove{model.Self: {Pokemon: "garchomp", Move: "earthquake"}}

	got := endOfTurn(t, s, used)
	assert.Equal(t, []model.Instruction{model.DisableMove(model.Self, "outrage")}, got[0].Instructions)

	// Chosen by a Pokemon that has since been dragged out.
	dragged := map[model.SideRef]instruction.UsedMove{model.Self: {Pokemon: "dragonite", Move: "earthquake"}}
	got = endOfTurn(t, s, dragged)
	assert.Empty(t, got[0].Instructions)

	// Item gone: the lock lifts.
	s.Self.Active.Item = ""
	s.Self.Active.Moves[1].Disabled = true
	got = endOfTurn(t, s, used)
	assert.Equal(t, []model.Instruction{model.EnableMove(model.Self, "outrage")}, got[0].Instructions)
}

func TestEndOfTurn_FieldDecay(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("garchomp"), testutil.NewPokemon("tyranitar"))
	s.Weather, s.WeatherTurns = c.WeatherSand, 1
	s.Field, s.FieldTurns = c.FieldPsychic, 3
	s.TrickRoom, s.TrickRoomTurns = true, 1
	s.Self.SideConditions[c.SideReflect] = 2
	s.Opponent.SideConditions[c.SideTailwind] = 1
	s.Opponent.SideConditions[c.SideStealthRock] = 1

	got := endOfTurn(t, s, nil)
	require.Len(t, got, 1)
	assert.Equal(t, []model.Instruction{
		model.WeatherStart(c.WeatherNone, 0, c.WeatherSand, 1),
		model.DecrementField(),
		model.ToggleTrickRoom(0, 1),
		model.SideDecrement(model.Self, c.SideReflect),
		model.SideEnd(model.Opponent, c.SideTailwind, 1),
	}, got[0].Instructions)
}

func TestEndOfTurn_SkipsFainted(t *testing.T) {
	s := testutil.NewState(
		testutil.NewPokemon("snorlax", testutil.WithStatus(c.StatusBurn), testutil.WithHP(0)),
		testutil.NewPokemon("garchomp"),
	)
	got := endOfTurn(t, s, nil)
	assert.Empty(t, got[0].Instructions)
}
