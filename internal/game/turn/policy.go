package turn

import "github.com/udisondev/battlecalc/internal/model"

// SwitchPolicy narrows the replacements a side may send in when the choice
// is the player's: self switch-out moves and faint replacement. Returning
// one option stands in for the player's real preference; returning all of
// them branches uniformly. Drag moves never consult it.
type SwitchPolicy interface {
	Choose(s *model.State, side model.SideRef, options []string) []string
}

// UniformPolicy keeps every option.
type UniformPolicy struct{}

func (UniformPolicy) Choose(_ *model.State, _ model.SideRef, options []string) []string {
	return options
}

// PolicyFunc adapts a function to SwitchPolicy.
type PolicyFunc func(s *model.State, side model.SideRef, options []string) []string

func (f PolicyFunc) Choose(s *model.State, side model.SideRef, options []string) []string {
	return f(s, side, options)
}
