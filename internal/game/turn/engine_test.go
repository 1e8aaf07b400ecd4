package turn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/game/damage"
	"github.com/udisondev/battlecalc/internal/game/turn"
	"github.com/udisondev/battlecalc/internal/model"
	"github.com/udisondev/battlecalc/internal/ruleset"
	"github.com/udisondev/battlecalc/internal/testutil"
)

func TestMain(m *testing.M) {
	testutil.LoadData()
	m.Run()
}

func newEngine(t *testing.T, opts turn.Options) *turn.Engine {
	t.Helper()
	if opts.CalcType == "" {
		opts.CalcType = damage.Average
	}
	e, err := turn.New(opts)
	require.NoError(t, err)
	return e
}

// resolve runs one turn and checks the invariants every result must keep.
func resolve(t *testing.T, e *turn.Engine, s *model.State, user, opp turn.Action) []model.Transposition {
	t.Helper()
	before := s.Clone()
	got, err := e.Transpositions(s, user, opp)
	require.NoError(t, err)
	require.Equal(t, before, s, "state changed by the engine")
	testutil.AssertProbabilitySum(t, got)
	testutil.AssertRoundTrip(t, s, got)
	return got
}

var none = turn.Action{}

func TestNew_InvalidCalcType(t *testing.T) {
	_, err := turn.New(turn.Options{CalcType: "exact"})
	require.ErrorIs(t, err, damage.ErrInvalidCalcType)

	e, err := turn.New(turn.Options{CalcType: damage.All})
	require.NoError(t, err)
	assert.Equal(t, ruleset.Default(), e.Rules())
}

func TestTranspositions_Accuracy(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("pikachu"), testutil.NewPokemon("raichu"))
	got := resolve(t, newEngine(t, turn.Options{}), s, turn.MoveAction("zapcannon"), none)

	require.Len(t, got, 2)
	assert.InDelta(t, 0.5, got[0].Probability, 1e-9)
	assert.InDelta(t, 0.5, got[1].Probability, 1e-9)
	assert.Equal(t, 1, testutil.CountKind(got[0].Instructions, model.KindDamage))
	assert.Empty(t, got[1].Instructions, "miss")
}

func TestTranspositions_Secondary(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("snorlax"), testutil.NewPokemon("garchomp"))
	got := resolve(t, newEngine(t, turn.Options{}), s, turn.MoveAction("bodyslam"), none)

	require.Len(t, got, 2)
	assert.InDelta(t, 0.3, got[0].Probability, 1e-9)
	assert.InDelta(t, 0.7, got[1].Probability, 1e-9)

	par := model.ApplyStatus(model.Opponent, c.StatusParalysis, c.StatusNone)
	require.True(t, testutil.Contains(got[0].Instructions, par))
	assert.Equal(t, got[1].Instructions, removeFirst(got[0].Instructions, par))
}

func removeFirst(log []model.Instruction, in model.Instruction) []model.Instruction {
	out := make([]model.Instruction, 0, len(log))
	dropped := false
	for _, x := range log {
		if x == in && !dropped {
			dropped = true
			continue
		}
		out = append(out, x)
	}
	return out
}

func TestTranspositions_FullParalysisFirst(t *testing.T) {
	s := testutil.NewState(
		testutil.NewPokemon("pikachu", testutil.WithStatus(c.StatusParalysis)),
		testutil.NewPokemon("snorlax"),
	)
	got := resolve(t, newEngine(t, turn.Options{}), s, turn.MoveAction("tackle"), none)

	require.Len(t, got, 2)
	assert.InDelta(t, 0.25, got[0].Probability, 1e-9)
	assert.Empty(t, got[0].Instructions)
	assert.InDelta(t, 0.75, got[1].Probability, 1e-9)
	assert.Equal(t, 1, testutil.CountKind(got[1].Instructions, model.KindDamage))
}

func TestTranspositions_BootsSkipStealthRock(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("pikachu"), testutil.NewPokemon("snorlax"))
	testutil.WithReserves(s, model.Self, testutil.NewPokemon("charizard", testutil.WithItem("heavydutyboots")))
	s.Self.SideConditions[c.SideStealthRock] = 1

	got := resolve(t, newEngine(t, turn.Options{}), s, turn.SwitchAction("charizard"), none)
	require.Len(t, got, 1)
	assert.Equal(t, []model.Instruction{model.Switch(model.Self, "pikachu", "charizard")}, got[0].Instructions)
}

func TestTranspositions_SwitchBeforeMove(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("pikachu"), testutil.NewPokemon("snorlax"))
	testutil.WithReserves(s, model.Self, testutil.NewPokemon("blissey"))

	got := resolve(t, newEngine(t, turn.Options{}), s, turn.SwitchAction("blissey"), turn.MoveAction("tackle"))
	require.Len(t, got, 1)
	log := got[0].Instructions
	require.NotEmpty(t, log)
	assert.Equal(t, model.Switch(model.Self, "pikachu", "blissey"), log[0])
	assert.Equal(t, 1, testutil.CountKind(log, model.KindDamage), "tackle lands on blissey")
}

func TestTranspositions_Idempotent(t *testing.T) {
	s := testutil.NewState(
		testutil.NewPokemon("garchomp", testutil.WithMoves("earthquake", "outrage")),
		testutil.NewPokemon("heatran", testutil.WithItem("leftovers"), testutil.WithMoves("fireblast")),
	)
	e := newEngine(t, turn.Options{CalcType: damage.MinMax})

	first := resolve(t, e, s, turn.MoveAction("earthquake"), turn.MoveAction("fireblast"))
	second := resolve(t, e, s, turn.MoveAction("earthquake"), turn.MoveAction("fireblast"))
	assert.Equal(t, first, second)
}

func TestTranspositions_FaintedMoverDoesNothing(t *testing.T) {
	s := testutil.NewState(
		testutil.NewPokemon("pikachu", testutil.WithHP(1)),
		testutil.NewPokemon("garchomp", testutil.WithMoves("earthquake")),
	)
	testutil.WithReserves(s, model.Self, testutil.NewPokemon("blissey"))

	got := resolve(t, newEngine(t, turn.Options{}), s, turn.MoveAction("tackle"), turn.MoveAction("earthquake"))
	require.Len(t, got, 1)
	assert.Equal(t, []model.Instruction{
		model.DecrementPP(model.Opponent, "earthquake", 1),
		model.Damage(model.Self, 1),
	}, got[0].Instructions)
	assert.False(t, got[0].Frozen, "a reserve is left")
}

func TestTranspositions_DraggedInDoesNotAct(t *testing.T) {
	s := testutil.NewState(
		testutil.NewPokemon("zapdos", testutil.WithMoves("roar")),
		testutil.NewPokemon("snorlax", testutil.WithMoves("whirlwind")),
	)
	testutil.WithReserves(s, model.Self, testutil.NewPokemon("blissey"))
	// Mew knows the move and holds a choice item, but never chose it.
	testutil.WithReserves(s, model.Opponent, testutil.NewPokemon("mew",
		testutil.WithItem("choicescarf"),
		testutil.WithMoves("whirlwind", "psychic"),
	))

	got := resolve(t, newEngine(t, turn.Options{}), s, turn.MoveAction("roar"), turn.MoveAction("whirlwind"))
	require.Len(t, got, 1)
	assert.Equal(t, []model.Instruction{
		model.DecrementPP(model.Self, "roar", 1),
		model.Switch(model.Opponent, "snorlax", "mew"),
	}, got[0].Instructions)
	assert.False(t, got[0].Frozen)
}

func TestTranspositions_TerminalFrozen(t *testing.T) {
	s := testutil.NewState(
		testutil.NewPokemon("pikachu", testutil.WithHP(1)),
		testutil.NewPokemon("garchomp", testutil.WithMoves("earthquake")),
	)
	got := resolve(t, newEngine(t, turn.Options{}), s, none, turn.MoveAction("earthquake"))
	require.Len(t, got, 1)
	assert.True(t, got[0].Frozen)
}

func TestTranspositions_ReplaceFainted(t *testing.T) {
	s := testutil.NewState(
		testutil.NewPokemon("pikachu", testutil.WithHP(1)),
		testutil.NewPokemon("garchomp", testutil.WithMoves("earthquake")),
	)
	testutil.WithReserves(s, model.Self, testutil.NewPokemon("blissey"), testutil.NewPokemon("skarmory"))

	got := resolve(t, newEngine(t, turn.Options{ReplaceFainted: true}), s, none, turn.MoveAction("earthquake"))
	require.Len(t, got, 2)
	assert.True(t, testutil.Contains(got[0].Instructions, model.Switch(model.Self, "pikachu", "blissey")))
	assert.True(t, testutil.Contains(got[1].Instructions, model.Switch(model.Self, "pikachu", "skarmory")))
	assert.InDelta(t, 0.5, got[0].Probability, 1e-9)

	pick := turn.PolicyFunc(func(_ *model.State, _ model.SideRef, options []string) []string {
		return options[len(options)-1:]
	})
	got = resolve(t, newEngine(t, turn.Options{ReplaceFainted: true, SwitchPolicy: pick}), s, none, turn.MoveAction("earthquake"))
	require.Len(t, got, 1)
	assert.True(t, testutil.Contains(got[0].Instructions, model.Switch(model.Self, "pikachu", "skarmory")))
}

func TestTranspositions_MergesDuplicates(t *testing.T) {
	// At +6 swords dance changes nothing, so full paralysis and a
	// successful use leave the same log.
	s := testutil.NewState(
		testutil.NewPokemon("pikachu",
			testutil.WithStatus(c.StatusParalysis),
			testutil.WithBoost(c.StatAttack, 6),
			testutil.WithMoves("swordsdance"),
		),
		testutil.NewPokemon("snorlax"),
	)
	got := resolve(t, newEngine(t, turn.Options{}), s, turn.MoveAction("swordsdance"), none)
	require.Len(t, got, 2, "only the used move spends PP")

	s.Self.Active.Moves = nil
	got = resolve(t, newEngine(t, turn.Options{}), s, turn.MoveAction("swordsdance"), none)
	require.Len(t, got, 1)
	assert.InDelta(t, 1, got[0].Probability, 1e-9)
	assert.Empty(t, got[0].Instructions)
}

func TestTranspositions_Errors(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("pikachu"), testutil.NewPokemon("snorlax"))
	testutil.WithReserves(s, model.Self, testutil.NewPokemon("blissey", testutil.WithHP(0)))
	e := newEngine(t, turn.Options{})

	_, err := e.Transpositions(s, turn.SwitchAction("garchomp"), none)
	assert.ErrorIs(t, err, turn.ErrInvalidAction)

	_, err = e.Transpositions(s, turn.SwitchAction("blissey"), none)
	assert.ErrorIs(t, err, turn.ErrInvalidAction, "fainted reserve")

	_, err = e.Transpositions(s, turn.MoveAction("notamove"), none)
	assert.ErrorIs(t, err, turn.ErrInvalidAction)

	s.Opponent.Active = nil
	_, err = e.Transpositions(s, none, none)
	assert.ErrorIs(t, err, turn.ErrNoActivePokemon)
}

func TestTranspositions_Trapped(t *testing.T) {
	s := testutil.NewState(testutil.NewPokemon("pikachu"), testutil.NewPokemon("snorlax"))
	testutil.WithReserves(s, model.Self, testutil.NewPokemon("blissey"))
	s.Self.Trapped = true
	e := newEngine(t, turn.Options{})

	_, err := e.Transpositions(s, turn.SwitchAction("blissey"), none)
	assert.ErrorIs(t, err, turn.ErrInvalidAction)

	s.Self.Active.Item = "shedshell"
	_, err = e.Transpositions(s, turn.SwitchAction("blissey"), none)
	assert.NoError(t, err)
}

func TestTranspositions_ForcedRecharge(t *testing.T) {
	s := testutil.NewState(
		testutil.NewPokemon("snorlax", testutil.WithVolatile(c.VolatileMustRecharge)),
		testutil.NewPokemon("blissey"),
	)
	got := resolve(t, newEngine(t, turn.Options{}), s, turn.MoveAction("tackle"), none)
	require.Len(t, got, 1)
	assert.Equal(t, []model.Instruction{model.RemoveVolatile(model.Self, c.VolatileMustRecharge)}, got[0].Instructions)
}
