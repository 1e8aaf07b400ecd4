package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/data"
	"github.com/udisondev/battlecalc/internal/game/damage"
	"github.com/udisondev/battlecalc/internal/model"
	"github.com/udisondev/battlecalc/internal/ruleset"
)

func TestTypeEffectiveness(t *testing.T) {
	tests := []struct {
		name      string
		attack    string
		defending []string
		want      float64
	}{
		{"neutral", c.TypeNormal, []string{c.TypeWater}, 1},
		{"super effective", c.TypeElectric, []string{c.TypeWater}, 2},
		{"resisted", c.TypeFire, []string{c.TypeWater}, 0.5},
		{"immune", c.TypeGround, []string{c.TypeFlying}, 0},
		{"double weakness", c.TypeIce, []string{c.TypeDragon, c.TypeGround}, 4},
		{"double resist", c.TypeGrass, []string{c.TypeFire, c.TypeDragon}, 0.25},
		{"immunity wins", c.TypeElectric, []string{c.TypeWater, c.TypeGround}, 0},
		{"mono type with empty slot", c.TypeFighting, []string{c.TypeNormal, ""}, 2},
		{"typeless", c.TypeTypeless, []string{c.TypeGhost}, 1},
		{"unknown defending type", c.TypeFire, []string{"shadow"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, data.TypeEffectiveness(tt.attack, tt.defending...))
		})
	}
}

func TestTypeEffectiveness_Chart(t *testing.T) {
	valid := []float64{0, 0.25, 0.5, 1, 2, 4}
	for _, atk := range data.AllTypes {
		assert.True(t, data.IsType(atk), atk)
		for _, d1 := range data.AllTypes {
			single := data.TypeEffectiveness(atk, d1)
			assert.Equal(t, data.TypeMultiplier(atk, d1), single)
			assert.Contains(t, []float64{0, 0.5, 1, 2}, single, "%s vs %s", atk, d1)

			for _, d2 := range data.AllTypes {
				if d1 == d2 {
					continue
				}
				dual := data.TypeEffectiveness(atk, d1, d2)
				assert.Equal(t, single*data.TypeMultiplier(atk, d2), dual, "%s vs %s/%s", atk, d1, d2)
				assert.Equal(t, dual, data.TypeEffectiveness(atk, d2, d1), "order of defending types")
				assert.Contains(t, valid, dual)
			}
		}
	}
	assert.False(t, data.IsType(c.TypeTypeless))
}

// The multiplier depends on the types alone: boosts on either Pokemon and
// the calc type in use do not change it.
func TestTypeEffectiveness_Pure(t *testing.T) {
	attacker, err := data.GetPokedex("garchomp")
	require.NoError(t, err)
	defender, err := data.GetPokedex("heatran")
	require.NoError(t, err)
	atk := model.NewPokemon(attacker, 100, "earthquake")
	def := model.NewPokemon(defender, 100, "fireblast")
	eq := data.MustGetMove("earthquake")

	want := data.TypeEffectiveness(eq.Type, def.Types[:]...)
	assert.Equal(t, 4.0, want)

	for _, ct := range []damage.CalcType{damage.Average, damage.MinMax, damage.MinMaxAverage, damage.All} {
		for _, boost := range []int{c.MinBoost, 0, c.MaxBoost} {
			atk.Boosts.Set(c.StatAttack, boost)
			def.Boosts.Set(c.StatDefense, -boost)
			_, _, err := damage.Calculate(atk, def, eq, damage.Conditions{Rules: ruleset.Default()}, ct)
			assert.NoError(t, err)
			assert.Equal(t, want, data.TypeEffectiveness(eq.Type, def.Types[:]...), "%s at %+d", ct, boost)
		}
	}
}
