package turn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/model"
	"github.com/udisondev/battlecalc/internal/testutil"
)

func TestValidate_RechargeWithoutPending(t *testing.T) {
	code := 0
	orig := exit
	exit = func(n int) {
		code = n
		panic("exit")
	}
	t.Cleanup(func() { exit = orig })

	s := testutil.NewState(testutil.NewPokemon("snorlax"), testutil.NewPokemon("blissey"))
	assert.PanicsWithValue(t, "exit", func() {
		_, _ = validate(s, model.Self, Action{Kind: ActionRecharge})
	})
	assert.Equal(t, 1, code)
}

func TestMerge(t *testing.T) {
	hit := model.Damage(model.Opponent, 50)
	par := model.ApplyStatus(model.Opponent, c.StatusParalysis, c.StatusNone)
	branches := []model.Transposition{
		{Probability: 0.2, Instructions: []model.Instruction{hit}},
		{Probability: 0.3, Instructions: []model.Instruction{hit, par}},
		{Probability: 0.1, Instructions: []model.Instruction{hit}},
		{Probability: 0.4, Instructions: []model.Instruction{hit, par}},
	}

	got := merge(branches)
	require.Len(t, got, 2)
	assert.Equal(t, []model.Instruction{hit}, got[0].Instructions)
	assert.InDelta(t, 0.3, got[0].Probability, 1e-9)
	assert.Equal(t, []model.Instruction{hit, par}, got[1].Instructions)
	assert.InDelta(t, 0.7, got[1].Probability, 1e-9)
}

func TestThaw(t *testing.T) {
	branches := []model.Transposition{model.NewTransposition().Freeze(), model.NewTransposition()}
	for _, b := range thaw(branches) {
		assert.False(t, b.Frozen)
	}
}
