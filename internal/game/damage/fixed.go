package damage

import (
	"github.com/udisondev/battlecalc/internal/data"
	"github.com/udisondev/battlecalc/internal/model"
)

// fixedDamage handles moves whose damage ignores stats and modifiers.
func fixedDamage(attacker, defender *model.Pokemon, move *data.Move) int {
	switch move.ID {
	case "seismictoss", "nightshade":
		return attacker.Level
	case "superfang", "naturesmadness", "ruination":
		return max(1, defender.HP/2)
	case "dragonrage":
		return 40
	case "sonicboom":
		return 20
	case "finalgambit":
		return attacker.HP
	case "endeavor":
		return max(0, defender.HP-attacker.HP)
	}
	return 0
}
