package turn

import (
	"github.com/udisondev/battlecalc/internal/data"
	"github.com/udisondev/battlecalc/internal/game/effects"
	"github.com/udisondev/battlecalc/internal/model"
	"github.com/udisondev/battlecalc/internal/ruleset"
)

// UserMovesFirst reports whether the Self side acts before the Opponent.
//
// Switches go before moves, except that pursuit catches a switching target.
// Otherwise the higher priority bracket wins, then the faster Pokemon, with
// trick room reversing speed. Ties resolve to the user.
func UserMovesFirst(s *model.State, rules ruleset.Ruleset, user, opp Action) bool {
	userSwitch, oppSwitch := user.Kind == ActionSwitch, opp.Kind == ActionSwitch
	switch {
	case userSwitch && oppSwitch:
		return true
	case userSwitch:
		return !isPursuit(opp)
	case oppSwitch:
		return isPursuit(user)
	}

	if up, op := priority(s, model.Self, user), priority(s, model.Opponent, opp); up != op {
		return up > op
	}

	userSpeed := effects.EffectiveSpeed(s, model.Self, rules)
	oppSpeed := effects.EffectiveSpeed(s, model.Opponent, rules)
	if userSpeed == oppSpeed {
		return true
	}
	if s.TrickRoom {
		return userSpeed < oppSpeed
	}
	return userSpeed > oppSpeed
}

func isPursuit(a Action) bool {
	return a.Kind == ActionMove && a.Target == "pursuit"
}

func priority(s *model.State, side model.SideRef, a Action) int {
	if a.Kind != ActionMove {
		return 0
	}
	move, err := data.GetMove(a.Target)
	if err != nil {
		return 0
	}
	return effects.Priority(s, side, move)
}
