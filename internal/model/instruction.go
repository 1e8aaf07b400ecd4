package model

import (
	"fmt"
	"strings"
)

// InstructionKind tags an Instruction.
type InstructionKind uint8

const (
	KindSwitch InstructionKind = iota + 1
	KindApplyVolatileStatus
	KindRemoveVolatileStatus
	KindDamage
	KindHeal
	KindBoost
	KindApplyStatus
	KindRemoveStatus
	KindSetRestTurns
	KindSideStart
	KindSideDecrement
	KindSideEnd
	KindWishStart
	KindWishDecrement
	KindFutureSightStart
	KindFutureSightDecrement
	KindDisableMove
	KindEnableMove
	KindDecrementPP
	KindWeatherStart
	KindDecrementWeather
	KindFieldStart
	KindDecrementField
	KindToggleTrickRoom
	KindDecrementTrickRoom
	KindChangeType
	KindChangeItem
	KindSetSubstituteHealth
)

var kindNames = [...]string{
	KindSwitch:               "switch",
	KindApplyVolatileStatus:  "apply_volatile_status",
	KindRemoveVolatileStatus: "remove_volatile_status",
	KindDamage:               "damage",
	KindHeal:                 "heal",
	KindBoost:                "boost",
	KindApplyStatus:          "apply_status",
	KindRemoveStatus:         "remove_status",
	KindSetRestTurns:         "set_rest_turns",
	KindSideStart:            "side_start",
	KindSideDecrement:        "side_decrement",
	KindSideEnd:              "side_end",
	KindWishStart:            "wish_start",
	KindWishDecrement:        "wish_decrement",
	KindFutureSightStart:     "future_sight_start",
	KindFutureSightDecrement: "future_sight_decrement",
	KindDisableMove:          "disable_move",
	KindEnableMove:           "enable_move",
	KindDecrementPP:          "decrement_pp",
	KindWeatherStart:         "weather_start",
	KindDecrementWeather:     "decrement_weather",
	KindFieldStart:           "field_start",
	KindDecrementField:       "decrement_field",
	KindToggleTrickRoom:      "toggle_trick_room",
	KindDecrementTrickRoom:   "decrement_trick_room",
	KindChangeType:           "change_type",
	KindChangeItem:           "change_item",
	KindSetSubstituteHealth:  "set_substitute_health",
}

func (k InstructionKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Instruction is one invertible primitive mutation.
//
// Amounts are clamped by the generator before the instruction is built, so
// Apply and Reverse are plain arithmetic. Instruction is comparable; two
// branch logs are equal when their slices are element-wise equal.
//
// Operand use per kind:
//
//	switch                  Previous = outgoing id, Name = incoming id
//	*_volatile_status       Name = volatile
//	damage, heal            Amount
//	boost                   Name = stat, Amount = delta
//	apply_status            Name = status, Previous = old status
//	remove_status           Name = removed status
//	set_rest_turns          Amount, PreviousAmount
//	side_start              Name = condition, Amount = layers added
//	side_decrement          Name = condition
//	side_end                Name = condition, PreviousAmount = removed count
//	wish_start              Amount, Turns, PreviousAmount, PreviousTurns
//	future_sight_start      Name = source, Previous, Turns, PreviousTurns
//	*_move, decrement_pp    Name = move id, Amount = PP spent
//	weather_start           Name, Previous, Turns, PreviousTurns
//	field_start             Name, Previous, Turns, PreviousTurns
//	toggle_trick_room       Turns, PreviousTurns
//	change_type             Types, PreviousTypes
//	change_item             Name = new item, Previous = old item
//	set_substitute_health   Amount, PreviousAmount
type Instruction struct {
	Kind InstructionKind
	Side SideRef

	Name     string
	Previous string

	Amount         int
	PreviousAmount int

	Turns         int
	PreviousTurns int

	Types         [2]string
	PreviousTypes [2]string
}

func (i Instruction) String() string {
	var b strings.Builder
	b.WriteString(i.Kind.String())
	b.WriteByte('(')
	switch i.Kind {
	case KindWeatherStart, KindFieldStart:
		fmt.Fprintf(&b, "%q, %d", i.Name, i.Turns)
	case KindDecrementWeather, KindDecrementField, KindDecrementTrickRoom:
	case KindToggleTrickRoom:
		fmt.Fprintf(&b, "%d", i.Turns)
	case KindSwitch:
		fmt.Fprintf(&b, "%s, %s -> %s", i.Side, i.Previous, i.Name)
	case KindDamage, KindHeal, KindSetRestTurns, KindSetSubstituteHealth:
		fmt.Fprintf(&b, "%s, %d", i.Side, i.Amount)
	case KindBoost, KindSideStart, KindDecrementPP:
		fmt.Fprintf(&b, "%s, %s, %d", i.Side, i.Name, i.Amount)
	case KindWishStart:
		fmt.Fprintf(&b, "%s, %d, %d", i.Side, i.Amount, i.Turns)
	case KindFutureSightStart:
		fmt.Fprintf(&b, "%s, %s, %d", i.Side, i.Name, i.Turns)
	case KindChangeType:
		fmt.Fprintf(&b, "%s, %s", i.Side, strings.Trim(strings.Join(i.Types[:], "/"), "/"))
	case KindWishDecrement, KindFutureSightDecrement:
		b.WriteString(i.Side.String())
	default:
		fmt.Fprintf(&b, "%s, %s", i.Side, i.Name)
	}
	b.WriteByte(')')
	return b.String()
}

// Switch replaces the active Pokemon of side with reserve to.
func Switch(side SideRef, from, to string) Instruction {
	return Instruction{Kind: KindSwitch, Side: side, Previous: from, Name: to}
}

func ApplyVolatile(side SideRef, volatile string) Instruction {
	return Instruction{Kind: KindApplyVolatileStatus, Side: side, Name: volatile}
}

func RemoveVolatile(side SideRef, volatile string) Instruction {
	return Instruction{Kind: KindRemoveVolatileStatus, Side: side, Name: volatile}
}

func Damage(side SideRef, amount int) Instruction {
	return Instruction{Kind: KindDamage, Side: side, Amount: amount}
}

func Heal(side SideRef, amount int) Instruction {
	return Instruction{Kind: KindHeal, Side: side, Amount: amount}
}

func Boost(side SideRef, stat string, delta int) Instruction {
	return Instruction{Kind: KindBoost, Side: side, Name: stat, Amount: delta}
}

func ApplyStatus(side SideRef, status, previous string) Instruction {
	return Instruction{Kind: KindApplyStatus, Side: side, Name: status, Previous: previous}
}

func RemoveStatus(side SideRef, status string) Instruction {
	return Instruction{Kind: KindRemoveStatus, Side: side, Name: status}
}

func SetRestTurns(side SideRef, turns, previous int) Instruction {
	return Instruction{Kind: KindSetRestTurns, Side: side, Amount: turns, PreviousAmount: previous}
}

// SideStart adds layers of a side condition.
func SideStart(side SideRef, condition string, layers int) Instruction {
	return Instruction{Kind: KindSideStart, Side: side, Name: condition, Amount: layers}
}

// SideDecrement removes one layer or turn. The count must stay positive;
// use SideEnd for the last one.
func SideDecrement(side SideRef, condition string) Instruction {
	return Instruction{Kind: KindSideDecrement, Side: side, Name: condition, Amount: 1}
}

// SideEnd removes a side condition that currently has count previous.
func SideEnd(side SideRef, condition string, previous int) Instruction {
	return Instruction{Kind: KindSideEnd, Side: side, Name: condition, PreviousAmount: previous}
}

func WishStart(side SideRef, amount, turns int, previous Wish) Instruction {
	return Instruction{
		Kind:           KindWishStart,
		Side:           side,
		Amount:         amount,
		Turns:          turns,
		PreviousAmount: previous.Amount,
		PreviousTurns:  previous.Turns,
	}
}

func WishDecrement(side SideRef) Instruction {
	return Instruction{Kind: KindWishDecrement, Side: side}
}

func FutureSightStart(side SideRef, source string, turns int, previous FutureSight) Instruction {
	return Instruction{
		Kind:          KindFutureSightStart,
		Side:          side,
		Name:          source,
		Previous:      previous.Source,
		Turns:         turns,
		PreviousTurns: previous.Turns,
	}
}

func FutureSightDecrement(side SideRef) Instruction {
	return Instruction{Kind: KindFutureSightDecrement, Side: side}
}

func DisableMove(side SideRef, move string) Instruction {
	return Instruction{Kind: KindDisableMove, Side: side, Name: move}
}

func EnableMove(side SideRef, move string) Instruction {
	return Instruction{Kind: KindEnableMove, Side: side, Name: move}
}

func DecrementPP(side SideRef, move string, amount int) Instruction {
	return Instruction{Kind: KindDecrementPP, Side: side, Name: move, Amount: amount}
}

// WeatherStart sets the weather. An empty weather ends it.
func WeatherStart(weather string, turns int, previous string, previousTurns int) Instruction {
	return Instruction{Kind: KindWeatherStart, Name: weather, Turns: turns, Previous: previous, PreviousTurns: previousTurns}
}

func DecrementWeather() Instruction {
	return Instruction{Kind: KindDecrementWeather}
}

// FieldStart sets the terrain. An empty terrain ends it.
func FieldStart(field string, turns int, previous string, previousTurns int) Instruction {
	return Instruction{Kind: KindFieldStart, Name: field, Turns: turns, Previous: previous, PreviousTurns: previousTurns}
}

func DecrementField() Instruction {
	return Instruction{Kind: KindDecrementField}
}

// ToggleTrickRoom flips trick room and sets its counter to turns.
func ToggleTrickRoom(turns, previousTurns int) Instruction {
	return Instruction{Kind: KindToggleTrickRoom, Turns: turns, PreviousTurns: previousTurns}
}

func DecrementTrickRoom() Instruction {
	return Instruction{Kind: KindDecrementTrickRoom}
}

func ChangeType(side SideRef, types, previous [2]string) Instruction {
	return Instruction{Kind: KindChangeType, Side: side, Types: types, PreviousTypes: previous}
}

func ChangeItem(side SideRef, item, previous string) Instruction {
	return Instruction{Kind: KindChangeItem, Side: side, Name: item, Previous: previous}
}

func SetSubstituteHealth(side SideRef, hp, previous int) Instruction {
	return Instruction{Kind: KindSetSubstituteHealth, Side: side, Amount: hp, PreviousAmount: previous}
}
