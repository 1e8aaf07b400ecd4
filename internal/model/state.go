package model

import (
	"maps"
	"slices"
)

// SideRef selects one of the two sides of a State.
type SideRef uint8

const (
	Self SideRef = iota
	Opponent
)

// Other returns the opposing side.
func (r SideRef) Other() SideRef {
	if r == Self {
		return Opponent
	}
	return Self
}

func (r SideRef) String() string {
	if r == Self {
		return "self"
	}
	return "opponent"
}

// Wish is a pending wish heal.
type Wish struct {
	Turns  int
	Amount int
}

// FutureSight is a pending future sight hit. Source is the id of the user.
type FutureSight struct {
	Turns  int
	Source string
}

// Side is one player's half of the battle.
//
// SideConditions never stores zero counts.
type Side struct {
	Active         *Pokemon
	Reserve        map[string]*Pokemon
	SideConditions map[string]int
	Wish           Wish
	FutureSight    FutureSight
	Trapped        bool
}

// NewSide creates a side with active and the given reserves.
func NewSide(active *Pokemon, reserve ...*Pokemon) *Side {
	s := &Side{
		Active:         active,
		Reserve:        make(map[string]*Pokemon, len(reserve)),
		SideConditions: make(map[string]int),
	}
	for _, p := range reserve {
		s.Reserve[p.ID] = p
	}
	return s
}

// Pokemon returns the active or reserve Pokemon with id, or nil.
func (s *Side) Pokemon(id string) *Pokemon {
	if s.Active != nil && s.Active.ID == id {
		return s.Active
	}
	return s.Reserve[id]
}

// AliveReserves returns the ids of non-fainted reserves in sorted order.
func (s *Side) AliveReserves() []string {
	ids := make([]string, 0, len(s.Reserve))
	for id, p := range s.Reserve {
		if !p.IsFainted() {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// HasAlive reports whether any Pokemon on the side can still battle.
func (s *Side) HasAlive() bool {
	if s.Active != nil && !s.Active.IsFainted() {
		return true
	}
	return len(s.AliveReserves()) > 0
}

// Condition returns the count of side condition name.
func (s *Side) Condition(name string) int {
	return s.SideConditions[name]
}

// Clone returns a deep copy.
func (s *Side) Clone() *Side {
	if s == nil {
		return nil
	}
	c := *s
	c.Active = s.Active.Clone()
	if s.Reserve != nil {
		c.Reserve = make(map[string]*Pokemon, len(s.Reserve))
		for id, p := range s.Reserve {
			c.Reserve[id] = p.Clone()
		}
	}
	if s.SideConditions != nil {
		c.SideConditions = maps.Clone(s.SideConditions)
	}
	return &c
}

// State is one battle position.
//
// Mutate it only through a Mutator; everywhere else it is read as a value.
type State struct {
	Self     *Side
	Opponent *Side

	Weather      string
	WeatherTurns int

	Field      string
	FieldTurns int

	TrickRoom      bool
	TrickRoomTurns int
}

// NewState creates a state with no field effects.
func NewState(self, opponent *Side) *State {
	return &State{Self: self, Opponent: opponent}
}

// Side returns the side selected by ref.
func (s *State) Side(ref SideRef) *Side {
	if ref == Self {
		return s.Self
	}
	return s.Opponent
}

// Active returns the active Pokemon of ref.
func (s *State) Active(ref SideRef) *Pokemon {
	return s.Side(ref).Active
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	c := *s
	c.Self = s.Self.Clone()
	c.Opponent = s.Opponent.Clone()
	return &c
}

// BattleOver reports whether either side has nothing left to send out.
func (s *State) BattleOver() bool {
	return !s.Self.HasAlive() || !s.Opponent.HasAlive()
}

// AbilitiesSuppressed reports whether neutralizing gas is on the field.
func (s *State) AbilitiesSuppressed() bool {
	for _, p := range [...]*Pokemon{s.Self.Active, s.Opponent.Active} {
		if p != nil && !p.IsFainted() && p.Ability == "neutralizinggas" {
			return true
		}
	}
	return false
}

// Ability returns the ability of ref's active Pokemon, or "" while abilities
// are suppressed.
func (s *State) Ability(ref SideRef) string {
	p := s.Active(ref)
	if p == nil || s.AbilitiesSuppressed() {
		return ""
	}
	return p.Ability
}

// EffectiveWeather returns the weather unless cloud nine or air lock is out.
func (s *State) EffectiveWeather() string {
	for _, ref := range [...]SideRef{Self, Opponent} {
		switch s.Ability(ref) {
		case "cloudnine", "airlock":
			return ""
		}
	}
	return s.Weather
}
