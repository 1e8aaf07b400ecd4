// Package effects holds the ability, item and move registries and the
// hooks the instruction generator fires through them.
package effects

import (
	"maps"
	"slices"

	"github.com/udisondev/battlecalc/internal/model"
)

// Entry is the set of hooks one ability, item or move contributes.
// Hooks that an entry does not need stay nil at registration and are
// replaced by no-ops, so callers never check for nil.
type Entry struct {
	// ModifyOwnMove rewrites ctx.Move when the owner attacks.
	ModifyOwnMove func(ctx *MoveContext)
	// ModifyIncomingMove rewrites ctx.Move when the owner is the target.
	ModifyIncomingMove func(ctx *MoveContext)

	// BeforeMove fires after PP is spent, before the move resolves.
	BeforeMove func(ctx *MoveContext) []model.Instruction
	// AfterMove fires for the attacker's move, ability and item once the
	// move has connected.
	AfterMove func(ctx *MoveContext) []model.Instruction
	// AfterHit fires for the defender's ability and item once the move has
	// connected.
	AfterHit func(ctx *MoveContext) []model.Instruction

	OnSwitchIn  func(ev Event) []model.Instruction
	OnSwitchOut func(ev Event) []model.Instruction
	EndOfTurn   func(ev Event) []model.Instruction
}

func noopRewrite(*MoveContext) {}
func noopMoveHook(*MoveContext) []model.Instruction { return nil }
func noopEventHook(Event) []model.Instruction { return nil }

func (e *Entry) fillNoops() {
	if e.ModifyOwnMove == nil {
		e.ModifyOwnMove = noopRewrite
	}
	if e.ModifyIncomingMove == nil {
		e.ModifyIncomingMove = noopRewrite
	}
	if e.BeforeMove == nil {
		e.BeforeMove = noopMoveHook
	}
	if e.AfterMove == nil {
		e.AfterMove = noopMoveHook
	}
	if e.AfterHit == nil {
		e.AfterHit = noopMoveHook
	}
	if e.OnSwitchIn == nil {
		e.OnSwitchIn = noopEventHook
	}
	if e.OnSwitchOut == nil {
		e.OnSwitchOut = noopEventHook
	}
	if e.EndOfTurn == nil {
		e.EndOfTurn = noopEventHook
	}
}

// Noop is returned for every unregistered id.
var Noop = func() *Entry {
	e := &Entry{}
	e.fillNoops()
	return e
}()

// Registry maps a normalised id to its Entry.
// Registries are filled from init() and read-only afterwards.
type Registry struct {
	name    string
	entries map[string]*Entry
}

func newRegistry(name string) *Registry {
	return &Registry{name: name, entries: make(map[string]*Entry)}
}

// Register adds e under each id. Registering an id twice panics.
func (r *Registry) Register(e Entry, ids ...string) {
	e.fillNoops()
	for _, id := range ids {
		if _, dup := r.entries[id]; dup {
			panic("effects: duplicate " + r.name + " entry " + id)
		}
		entry := e
		r.entries[id] = &entry
	}
}

// Lookup returns the entry for id, or Noop.
func (r *Registry) Lookup(id string) *Entry {
	if e, ok := r.entries[id]; ok {
		return e
	}
	return Noop
}

// Registered reports whether id has its own entry.
func (r *Registry) Registered(id string) bool {
	_, ok := r.entries[id]
	return ok
}

// IDs returns every registered id in sorted order.
func (r *Registry) IDs() []string {
	return slices.Sorted(maps.Keys(r.entries))
}

// The three registries.
var (
	Abilities = newRegistry("ability")
	Items     = newRegistry("item")
	Moves     = newRegistry("move")
)
