package data

import "maps"

// MoveFlags mirrors the Showdown move flags the engine cares about.
type MoveFlags struct {
	Contact bool
	Protect bool // blocked by protect-family moves
	Sound   bool
	Punch   bool
	Bite    bool
	Bullet  bool
	Powder  bool
	Pulse   bool
	Heal    bool
	Slicing bool
}

// Fraction is a rational used for heal/drain/recoil amounts. Zero value = absent.
type Fraction struct {
	Num int
	Den int
}

// IsZero reports whether the fraction is absent.
func (f Fraction) IsZero() bool {
	return f.Den == 0 || f.Num == 0
}

// Of returns f × n, truncated toward zero.
func (f Fraction) Of(n int) int {
	if f.IsZero() {
		return 0
	}
	return n * f.Num / f.Den
}

// Secondary is a chance-based effect that fires after a move hits.
type Secondary struct {
	Chance         int // percent, 1..100
	Status         string
	VolatileStatus string
	Boosts         map[string]int // applied to the move target
	SelfBoosts     map[string]int // applied to the attacker
}

// SelfEffect is applied to the attacker whenever the move connects.
type SelfEffect struct {
	Boosts         map[string]int
	VolatileStatus string
}

// Move: шаблон атаки. Шаблоны из MoveTable неизменяемы;
// registry-функции работают только с копией из Clone().
type Move struct {
	ID         string
	Name       string
	Type       string
	Category   string
	BasePower  int
	Accuracy   int // percent; ignored when AlwaysHits
	AlwaysHits bool
	Priority   int
	Target     string
	PP         int
	Flags      MoveFlags

	Status         string
	VolatileStatus string
	Boosts         map[string]int
	SideCondition  string
	Weather        string
	Terrain        string
	TrickRoom      bool

	Heal       Fraction // of the target's max HP; negative Num damages
	HealTarget string   // constants.TargetSelf or constants.TargetNormal
	Drain      Fraction // of damage dealt
	Recoil     Fraction // of damage dealt
	Crash      Fraction // of attacker's max HP, on miss

	Secondary *Secondary
	Self      *SelfEffect

	SelfSwitch     bool
	ForceSwitch    bool
	RemovesHazards bool
	MultiHit       int  // fixed hit count
	MultiHitRange  bool // 2-5 hits
	Charge         bool // two-turn move
	Invulnerable   bool // semi-invulnerable while charging
	Recharge       bool
	LockedMove     bool
	ThawsUser      bool
	SleepUsable    bool
	FixedDamage    bool // bypasses the modifier pipeline
}

// Clone returns a deep copy safe to rewrite.
func (m *Move) Clone() *Move {
	c := *m
	c.Boosts = maps.Clone(m.Boosts)
	if m.Secondary != nil {
		s := *m.Secondary
		s.Boosts = maps.Clone(m.Secondary.Boosts)
		s.SelfBoosts = maps.Clone(m.Secondary.SelfBoosts)
		c.Secondary = &s
	}
	if m.Self != nil {
		s := *m.Self
		s.Boosts = maps.Clone(m.Self.Boosts)
		c.Self = &s
	}
	return &c
}

// IsDamaging reports whether the move goes through the damage calculator.
func (m *Move) IsDamaging() bool {
	return m.Category == "physical" || m.Category == "special"
}

// TargetsSelf reports whether the primary effects land on the attacker.
func (m *Move) TargetsSelf() bool {
	return m.Target == "self" || m.Target == "allySide"
}
