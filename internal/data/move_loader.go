package data

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/udisondev/battlecalc/internal/constants"
)

// ErrMoveNotFound is returned by GetMove for ids missing from MoveTable.
var ErrMoveNotFound = errors.New("move not found")

// MoveTable: глобальный registry шаблонов атак, map[moveID]*Move.
// Загружается через LoadMoves() при старте; после загрузки только чтение.
var MoveTable map[string]*Move

const hiddenPowerPrefix = "hiddenpower"

// LoadMoves строит MoveTable из Go-литералов (moveDefs).
func LoadMoves() error {
	MoveTable = make(map[string]*Move, len(moveDefs))

	for i := range moveDefs {
		m := moveDefs[i] // copy, moveDefs stays pristine
		if m.Name == "" {
			m.Name = m.ID
		}
		if m.Target == "" {
			m.Target = constants.TargetNormal
		}
		if m.Accuracy == 0 {
			m.AlwaysHits = true
		}
		if m.HealTarget == "" && !m.Heal.IsZero() {
			if m.TargetsSelf() {
				m.HealTarget = constants.TargetSelf
			} else {
				m.HealTarget = constants.TargetNormal
			}
		}
		if _, dup := MoveTable[m.ID]; dup {
			return fmt.Errorf("duplicate move id %q", m.ID)
		}
		MoveTable[m.ID] = &m
	}

	slog.Info("loaded moves", "count", len(MoveTable))
	return nil
}

// GetMove возвращает шаблон атаки по имени или id.
// Hidden Power приходит из протокола с типом в id ("hiddenpowerfire60");
// тип переносится в шаблон, сила выставляется registry-функцией по ruleset.
func GetMove(name string) (*Move, error) {
	id := ToID(name)
	if m, ok := MoveTable[id]; ok {
		return m, nil
	}

	if strings.HasPrefix(id, hiddenPowerPrefix) {
		typ := strings.TrimRight(strings.TrimPrefix(id, hiddenPowerPrefix), "0123456789")
		base, ok := MoveTable[hiddenPowerPrefix]
		if ok && IsType(typ) {
			hp := base.Clone()
			hp.Type = typ
			return hp, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrMoveNotFound, name)
}

// MustGetMove is GetMove for test code and static tables.
func MustGetMove(name string) *Move {
	m, err := GetMove(name)
	if err != nil {
		panic(err)
	}
	return m
}
