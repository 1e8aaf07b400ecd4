// Package scenario reads battle positions from YAML files. A scenario is a
// state plus the action each side takes; the CLI evaluates them and tests
// use them as fixtures.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/data"
	"github.com/udisondev/battlecalc/internal/game/turn"
	"github.com/udisondev/battlecalc/internal/model"
)

// ErrInvalidScenario is returned for scenarios that do not describe a
// legal position.
var ErrInvalidScenario = errors.New("invalid scenario")

// File is the top-level document.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one position to evaluate.
type Scenario struct {
	Name     string    `yaml:"name"`
	User     string    `yaml:"user"`     // action text, see turn.ParseAction
	Opponent string    `yaml:"opponent"` // action text
	State    StateSpec `yaml:"state"`
}

// StateSpec describes the field and both sides.
type StateSpec struct {
	Weather        string   `yaml:"weather"`
	WeatherTurns   int      `yaml:"weather_turns"`
	Terrain        string   `yaml:"terrain"`
	TerrainTurns   int      `yaml:"terrain_turns"`
	TrickRoomTurns int      `yaml:"trick_room_turns"` // > 0 means trick room is up
	Self           SideSpec `yaml:"self"`
	Opponent       SideSpec `yaml:"opponent"`
}

// SideSpec describes one side.
type SideSpec struct {
	Active         PokemonSpec       `yaml:"active"`
	Reserve        []PokemonSpec     `yaml:"reserve"`
	SideConditions map[string]int    `yaml:"side_conditions"`
	Wish           model.Wish        `yaml:"wish"`
	FutureSight    model.FutureSight `yaml:"future_sight"`
	Trapped        bool              `yaml:"trapped"`
}

// PokemonSpec describes one Pokemon. Zero HP is a fainted Pokemon; an
// absent HP is full health.
type PokemonSpec struct {
	Species      string         `yaml:"species"`
	Level        int            `yaml:"level"`
	HP           *int           `yaml:"hp"`
	Ability      string         `yaml:"ability"`
	Item         string         `yaml:"item"`
	Status       string         `yaml:"status"`
	RestTurns    int            `yaml:"rest_turns"`
	Moves        []string       `yaml:"moves"`
	Boosts       map[string]int `yaml:"boosts"`
	Volatiles    []string       `yaml:"volatiles"`
	Types        []string       `yaml:"types"`
	SubstituteHP int            `yaml:"substitute_hp"`
}

var statuses = []string{
	c.StatusNone,
	c.StatusBurn,
	c.StatusFreeze,
	c.StatusParalysis,
	c.StatusPoison,
	c.StatusToxic,
	c.StatusSleep,
}

// Load reads a scenario file.
func Load(path string) ([]Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenarios %s: %w", path, err)
	}
	scenarios, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("scenarios %s: %w", path, err)
	}
	return scenarios, nil
}

// Parse decodes a scenario document. Unknown keys are rejected.
func Parse(raw []byte) ([]Scenario, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	for i := range f.Scenarios {
		if f.Scenarios[i].Name == "" {
			f.Scenarios[i].Name = fmt.Sprintf("scenario %d", i+1)
		}
	}
	return f.Scenarios, nil
}

// Build returns the state and both actions of sc.
func (sc Scenario) Build() (*model.State, turn.Action, turn.Action, error) {
	var none turn.Action

	s, err := sc.State.Build()
	if err != nil {
		return nil, none, none, fmt.Errorf("%s: %w", sc.Name, err)
	}
	user, err := turn.ParseAction(sc.User)
	if err != nil {
		return nil, none, none, fmt.Errorf("%s: user: %w", sc.Name, err)
	}
	opp, err := turn.ParseAction(sc.Opponent)
	if err != nil {
		return nil, none, none, fmt.Errorf("%s: opponent: %w", sc.Name, err)
	}
	return s, user, opp, nil
}

// Build returns the described state.
func (st StateSpec) Build() (*model.State, error) {
	self, err := st.Self.build()
	if err != nil {
		return nil, fmt.Errorf("self: %w", err)
	}
	opp, err := st.Opponent.build()
	if err != nil {
		return nil, fmt.Errorf("opponent: %w", err)
	}

	s := model.NewState(self, opp)
	s.Weather, s.WeatherTurns = data.ToID(st.Weather), st.WeatherTurns
	s.Field, s.FieldTurns = data.ToID(st.Terrain), st.TerrainTurns
	s.TrickRoom, s.TrickRoomTurns = st.TrickRoomTurns > 0, st.TrickRoomTurns
	return s, nil
}

func (sp SideSpec) build() (*model.Side, error) {
	active, err := sp.Active.build()
	if err != nil {
		return nil, fmt.Errorf("active: %w", err)
	}
	side := model.NewSide(active)
	for _, r := range sp.Reserve {
		p, err := r.build()
		if err != nil {
			return nil, fmt.Errorf("reserve: %w", err)
		}
		if _, dup := side.Reserve[p.ID]; dup || p.ID == active.ID {
			return nil, fmt.Errorf("%w: %s appears twice", ErrInvalidScenario, p.ID)
		}
		side.Reserve[p.ID] = p
	}
	for name, n := range sp.SideConditions {
		if n != 0 {
			side.SideConditions[data.ToID(name)] = n
		}
	}
	side.Wish = sp.Wish
	side.FutureSight = model.FutureSight{Turns: sp.FutureSight.Turns, Source: data.ToID(sp.FutureSight.Source)}
	side.Trapped = sp.Trapped
	return side, nil
}

func (ps PokemonSpec) build() (*model.Pokemon, error) {
	species, err := data.GetPokedex(ps.Species)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	level := ps.Level
	if level == 0 {
		level = 100
	}
	if level < 1 || level > 100 {
		return nil, fmt.Errorf("%w: %s: level %d", ErrInvalidScenario, species.ID, level)
	}
	for _, m := range ps.Moves {
		if _, err := data.GetMove(m); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidScenario, species.ID, err)
		}
	}

	p := model.NewPokemon(species, level, ps.Moves...)
	if ps.HP != nil {
		if *ps.HP < 0 || *ps.HP > p.MaxHP {
			return nil, fmt.Errorf("%w: %s: hp %d outside 0..%d", ErrInvalidScenario, p.ID, *ps.HP, p.MaxHP)
		}
		p.HP = *ps.HP
	}
	p.Ability = data.ToID(ps.Ability)
	p.Item = data.ToID(ps.Item)

	if !slices.Contains(statuses, ps.Status) {
		return nil, fmt.Errorf("%w: %s: status %q", ErrInvalidScenario, p.ID, ps.Status)
	}
	p.Status = ps.Status
	p.RestTurns = ps.RestTurns

	for stat, n := range ps.Boosts {
		if !slices.Contains(c.BoostableStats[:], stat) || n < c.MinBoost || n > c.MaxBoost {
			return nil, fmt.Errorf("%w: %s: boost %s %+d", ErrInvalidScenario, p.ID, stat, n)
		}
		p.Boosts.Set(stat, n)
	}
	for _, v := range ps.Volatiles {
		p.Volatile[data.ToID(v)] = true
	}

	switch len(ps.Types) {
	case 0:
	case 1, 2:
		var types [2]string
		for i, t := range ps.Types {
			types[i] = data.ToID(t)
			if !data.IsType(types[i]) {
				return nil, fmt.Errorf("%w: %s: type %q", ErrInvalidScenario, p.ID, t)
			}
		}
		p.Types = types
	default:
		return nil, fmt.Errorf("%w: %s: more than two types", ErrInvalidScenario, p.ID)
	}

	if ps.SubstituteHP > 0 {
		p.SubstituteHP = ps.SubstituteHP
		p.Volatile[c.VolatileSubstitute] = true
	}
	return p, nil
}
