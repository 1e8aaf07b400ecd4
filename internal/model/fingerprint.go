package model

import (
	"encoding/binary"
	"maps"
	"math"
	"slices"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint is a 256-bit digest of a State.
//
// Two states have the same fingerprint exactly when they are equal as
// values. The search layer keys its transposition table with it.
type Fingerprint [blake2b.Size256]byte

// Fingerprint hashes a canonical encoding of the state. Maps are written in
// sorted key order; false volatiles and zero side conditions are skipped.
func (s *State) Fingerprint() Fingerprint {
	var e encoder
	e.side(s.Self)
	e.side(s.Opponent)
	e.str(s.Weather)
	e.int(s.WeatherTurns)
	e.str(s.Field)
	e.int(s.FieldTurns)
	e.bool(s.TrickRoom)
	e.int(s.TrickRoomTurns)
	return blake2b.Sum256(e.buf)
}

// LogKey encodes log so that two logs give the same key exactly when they
// are equal. Branch merging keys on it.
func LogKey(log []Instruction) string {
	var e encoder
	for _, in := range log {
		e.buf = append(e.buf, byte(in.Kind), byte(in.Side))
		e.str(in.Name)
		e.str(in.Previous)
		e.int(in.Amount)
		e.int(in.PreviousAmount)
		e.int(in.Turns)
		e.int(in.PreviousTurns)
		for _, t := range [...]string{in.Types[0], in.Types[1], in.PreviousTypes[0], in.PreviousTypes[1]} {
			e.str(t)
		}
	}
	return string(e.buf)
}

type encoder struct {
	buf []byte
}

func (e *encoder) int(v int) {
	e.buf = binary.AppendVarint(e.buf, int64(v))
}

func (e *encoder) str(v string) {
	e.buf = binary.AppendUvarint(e.buf, uint64(len(v)))
	e.buf = append(e.buf, v...)
}

func (e *encoder) bool(v bool) {
	if v {
		e.buf = append(e.buf, 1)
	} else {
		e.buf = append(e.buf, 0)
	}
}

func (e *encoder) side(s *Side) {
	e.pokemon(s.Active)

	ids := slices.Sorted(maps.Keys(s.Reserve))
	e.int(len(ids))
	for _, id := range ids {
		e.str(id)
		e.pokemon(s.Reserve[id])
	}

	conds := slices.Sorted(maps.Keys(s.SideConditions))
	for _, name := range conds {
		if n := s.SideConditions[name]; n != 0 {
			e.str(name)
			e.int(n)
		}
	}
	e.str("")

	e.int(s.Wish.Turns)
	e.int(s.Wish.Amount)
	e.int(s.FutureSight.Turns)
	e.str(s.FutureSight.Source)
	e.bool(s.Trapped)
}

func (e *encoder) pokemon(p *Pokemon) {
	if p == nil {
		e.bool(false)
		return
	}
	e.bool(true)
	e.str(p.ID)
	e.int(p.Level)
	e.str(p.Types[0])
	e.str(p.Types[1])
	e.int(p.HP)
	e.int(p.MaxHP)
	for _, v := range [...]int{
		p.Stats.Attack, p.Stats.Defense, p.Stats.SpecialAttack, p.Stats.SpecialDefense, p.Stats.Speed,
		p.Boosts.Attack, p.Boosts.Defense, p.Boosts.SpecialAttack, p.Boosts.SpecialDefense,
		p.Boosts.Speed, p.Boosts.Accuracy, p.Boosts.Evasion,
	} {
		e.int(v)
	}
	e.str(p.Ability)
	e.str(p.Item)
	e.str(p.Status)
	e.int(p.RestTurns)

	vols := slices.Sorted(maps.Keys(p.Volatile))
	for _, v := range vols {
		if p.Volatile[v] {
			e.str(v)
		}
	}
	e.str("")

	e.int(p.SubstituteHP)
	e.int(len(p.Moves))
	for _, m := range p.Moves {
		e.str(m.ID)
		e.int(m.PP)
		e.bool(m.Disabled)
	}
	e.buf = binary.LittleEndian.AppendUint64(e.buf, math.Float64bits(p.Weight))
}
