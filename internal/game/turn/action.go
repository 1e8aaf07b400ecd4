package turn

import (
	"errors"
	"fmt"
	"strings"

	c "github.com/udisondev/battlecalc/internal/constants"
	"github.com/udisondev/battlecalc/internal/data"
)

var (
	// ErrInvalidAction is returned for actions that cannot be parsed or
	// are illegal in the given state.
	ErrInvalidAction = errors.New("invalid action")
	// ErrNoActivePokemon is returned when a side has nothing on the field.
	ErrNoActivePokemon = errors.New("no active pokemon")
)

// ActionKind is what a side does with its turn.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionSwitch
	ActionRecharge
)

func (k ActionKind) String() string {
	switch k {
	case ActionMove:
		return "move"
	case ActionSwitch:
		return "switch"
	case ActionRecharge:
		return c.ActionRecharge
	default:
		return c.ActionNone
	}
}

// Action is one side's choice for the turn. Target is a move id for
// ActionMove and a species id for ActionSwitch.
type Action struct {
	Kind   ActionKind
	Target string
}

// MoveAction uses move.
func MoveAction(move string) Action {
	return Action{Kind: ActionMove, Target: data.ToID(move)}
}

// SwitchAction switches to the reserve with species id to.
func SwitchAction(to string) Action {
	return Action{Kind: ActionSwitch, Target: data.ToID(to)}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionMove:
		return a.Target
	case ActionSwitch:
		return c.ActionSwitchPrefix + a.Target
	default:
		return a.Kind.String()
	}
}

// ParseAction reads the text form of an action: a move name, "switch
// <species>", "recharge" or "none".
func ParseAction(s string) (Action, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	switch {
	case lower == "" || lower == c.ActionNone:
		return Action{}, nil
	case lower == c.ActionRecharge:
		return Action{Kind: ActionRecharge}, nil
	case strings.HasPrefix(lower, c.ActionSwitchPrefix):
		to := data.ToID(s[len(c.ActionSwitchPrefix):])
		if to == "" {
			return Action{}, fmt.Errorf("%w: %q: missing switch target", ErrInvalidAction, s)
		}
		return Action{Kind: ActionSwitch, Target: to}, nil
	}

	// The id is kept as written: hidden power variants resolve by name.
	if _, err := data.GetMove(s); err != nil {
		return Action{}, fmt.Errorf("%w: %w", ErrInvalidAction, err)
	}
	return MoveAction(s), nil
}
