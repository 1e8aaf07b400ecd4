package model

import (
	"maps"
	"slices"

	"github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/data"
)

// Boosts holds stat stages, each in [-6, 6].
type Boosts struct {
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
	Accuracy       int
	Evasion        int
}

// Get returns the stage for stat. Unknown stats read as 0.
func (b *Boosts) Get(stat string) int {
	if p := b.ref(stat); p != nil {
		return *p
	}
	return 0
}

// Set overwrites the stage for stat. Outside a Mutator it is only for
// building states.
func (b *Boosts) Set(stat string, n int) {
	if p := b.ref(stat); p != nil {
		*p = n
	}
}

func (b *Boosts) add(stat string, n int) {
	if p := b.ref(stat); p != nil {
		*p += n
	}
}

func (b *Boosts) ref(stat string) *int {
	switch stat {
	case constants.StatAttack:
		return &b.Attack
	case constants.StatDefense:
		return &b.Defense
	case constants.StatSpecialAttack:
		return &b.SpecialAttack
	case constants.StatSpecialDefense:
		return &b.SpecialDefense
	case constants.StatSpeed:
		return &b.Speed
	case constants.StatAccuracy:
		return &b.Accuracy
	case constants.StatEvasion:
		return &b.Evasion
	}
	return nil
}

// MoveSlot is one known move.
type MoveSlot struct {
	ID       string
	PP       int
	Disabled bool
}

// Pokemon is one battle participant.
//
// Volatile never stores false values and SubstituteHP is zero whenever the
// substitute volatile is absent; apply/reverse round trips rely on both.
type Pokemon struct {
	ID    string
	Level int
	Types [2]string

	HP     int
	MaxHP  int
	Stats  data.Stats
	Boosts Boosts

	Ability string
	Item    string

	Status       string
	RestTurns    int
	Volatile     map[string]bool
	SubstituteHP int

	Moves  []MoveSlot
	Weight float64
}

// NewPokemon builds a full-HP Pokemon of species at level with the given moves.
// Stats follow data.CalculateStats.
func NewPokemon(species *data.Species, level int, moves ...string) *Pokemon {
	hp, stats := data.CalculateStats(species.Base, level)
	p := &Pokemon{
		ID:       species.ID,
		Level:    level,
		Types:    species.Types,
		HP:       hp,
		MaxHP:    hp,
		Stats:    stats,
		Volatile: make(map[string]bool),
		Weight:   species.Weight,
	}
	for _, id := range moves {
		pp := 16
		if m, err := data.GetMove(id); err == nil && m.PP > 0 {
			pp = m.PP * 8 / 5
		}
		p.Moves = append(p.Moves, MoveSlot{ID: data.ToID(id), PP: pp})
	}
	return p
}

// Stat returns the unboosted value of stat.
func (p *Pokemon) Stat(stat string) int {
	switch stat {
	case constants.StatHP:
		return p.MaxHP
	case constants.StatAttack:
		return p.Stats.Attack
	case constants.StatDefense:
		return p.Stats.Defense
	case constants.StatSpecialAttack:
		return p.Stats.SpecialAttack
	case constants.StatSpecialDefense:
		return p.Stats.SpecialDefense
	case constants.StatSpeed:
		return p.Stats.Speed
	}
	return 0
}

// BoostedStat returns stat after stage multipliers.
func (p *Pokemon) BoostedStat(stat string) int {
	return int(float64(p.Stat(stat)) * data.BoostMultiplier(p.Boosts.Get(stat)))
}

// HasType reports whether the Pokemon currently has typ.
func (p *Pokemon) HasType(typ string) bool {
	return p.Types[0] == typ || p.Types[1] == typ
}

// IsFainted reports whether HP is 0.
func (p *Pokemon) IsFainted() bool {
	return p.HP <= 0
}

// HasVolatile reports whether volatile status v is present.
func (p *Pokemon) HasVolatile(v string) bool {
	return p.Volatile[v]
}

// HasProtectVolatile reports whether any protect-family volatile is up.
func (p *Pokemon) HasProtectVolatile() (string, bool) {
	for _, v := range constants.ProtectVolatiles {
		if p.Volatile[v] {
			return v, true
		}
	}
	return "", false
}

// IsGrounded reports whether ground moves, terrain and hazards reach the Pokemon.
func (p *Pokemon) IsGrounded() bool {
	if p.Item == "ironball" {
		return true
	}
	if p.HasType(constants.TypeFlying) && !p.HasVolatile(constants.VolatileRoost) {
		return false
	}
	return p.Ability != "levitate" && p.Item != "airballoon"
}

// Move returns the slot for move id, or nil.
func (p *Pokemon) Move(id string) *MoveSlot {
	for i := range p.Moves {
		if p.Moves[i].ID == id {
			return &p.Moves[i]
		}
	}
	return nil
}

// BoostSum returns the sum of positive stages (stored power, power trip).
func (p *Pokemon) BoostSum() int {
	sum := 0
	for _, stat := range constants.BoostableStats {
		if b := p.Boosts.Get(stat); b > 0 {
			sum += b
		}
	}
	return sum
}

// Clone returns a deep copy.
func (p *Pokemon) Clone() *Pokemon {
	if p == nil {
		return nil
	}
	c := *p
	if p.Volatile != nil {
		c.Volatile = maps.Clone(p.Volatile)
	}
	c.Moves = slices.Clone(p.Moves)
	return &c
}
