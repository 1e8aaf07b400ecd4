package testutil

import (
	"fmt"
	"sync"

	"github.com/udisondev/battlecalc/internal/data"
	"github.com/udisondev/battlecalc/internal/model"
)

// DefaultLevel is the level fixtures are built at unless WithLevel is given.
const DefaultLevel = 100

var loadOnce sync.Once

// LoadData loads the static tables once per test binary.
func LoadData() {
	loadOnce.Do(func() {
		if err := data.Load(); err != nil {
			panic("loading data tables: " + err.Error())
		}
	})
}

// Option customises a fixture Pokemon.
type Option func(*model.Pokemon)

// NewPokemon builds a full-HP Pokemon of species with moves. It panics on an
// unknown species; fixtures are static.
func NewPokemon(species string, opts ...Option) *model.Pokemon {
	LoadData()
	sp, err := data.GetPokedex(species)
	if err != nil {
		panic(fmt.Sprintf("fixture pokemon: %v", err))
	}
	p := model.NewPokemon(sp, DefaultLevel, "tackle")
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithLevel rebuilds stats for level, keeping moves.
func WithLevel(level int) Option {
	return func(p *model.Pokemon) {
		sp, _ := data.GetPokedex(p.ID)
		rebuilt := model.NewPokemon(sp, level)
		rebuilt.Moves = p.Moves
		*p = *rebuilt
	}
}

// WithMoves replaces the move list.
func WithMoves(moves ...string) Option {
	return func(p *model.Pokemon) {
		sp, _ := data.GetPokedex(p.ID)
		p.Moves = model.NewPokemon(sp, p.Level, moves...).Moves
	}
}

func WithAbility(ability string) Option {
	return func(p *model.Pokemon) { p.Ability = ability }
}

func WithItem(item string) Option {
	return func(p *model.Pokemon) { p.Item = item }
}

func WithStatus(status string) Option {
	return func(p *model.Pokemon) { p.Status = status }
}

// WithHP sets current HP.
func WithHP(hp int) Option {
	return func(p *model.Pokemon) { p.HP = hp }
}

func WithBoost(stat string, stage int) Option {
	return func(p *model.Pokemon) { p.Boosts.Set(stat, stage) }
}

func WithVolatile(volatiles ...string) Option {
	return func(p *model.Pokemon) {
		for _, v := range volatiles {
			p.Volatile[v] = true
		}
	}
}

// WithSpeed overrides the speed stat so ordering tests do not depend on
// species data.
func WithSpeed(speed int) Option {
	return func(p *model.Pokemon) { p.Stats.Speed = speed }
}

// WithTypes overrides typing.
func WithTypes(types ...string) Option {
	return func(p *model.Pokemon) {
		p.Types = [2]string{}
		copy(p.Types[:], types)
	}
}

// NewState builds a state with one active Pokemon per side and no reserves.
func NewState(self, opponent *model.Pokemon) *model.State {
	return model.NewState(model.NewSide(self), model.NewSide(opponent))
}

// WithReserves adds reserves to side ref of s and returns s.
func WithReserves(s *model.State, ref model.SideRef, reserves ...*model.Pokemon) *model.State {
	side := s.Side(ref)
	for _, p := range reserves {
		side.Reserve[p.ID] = p
	}
	return s
}
