package testutil

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlecalc/internal/model"
)

// ProbabilityTolerance bounds the float error of a branch set.
const ProbabilityTolerance = 1e-6

// AssertProbabilitySum checks that branch probabilities add up to 1.
func AssertProbabilitySum(t testing.TB, branches []model.Transposition) {
	t.Helper()

	require.NotEmpty(t, branches, "branch set is empty")
	sum := 0.0
	for _, b := range branches {
		assert.Greater(t, b.Probability, 0.0, "branch with non-positive probability: %v", b.Instructions)
		sum += b.Probability
	}
	assert.LessOrEqual(t, math.Abs(sum-1), ProbabilityTolerance, "probabilities sum to %v", sum)
}

// AssertRoundTrip applies then reverses every branch on a copy of s and
// checks the copy is restored exactly.
func AssertRoundTrip(t testing.TB, s *model.State, branches []model.Transposition) {
	t.Helper()

	want := s.Fingerprint()
	for i, b := range branches {
		work := s.Clone()
		m := model.NewMutator(work)
		m.Apply(b.Instructions)
		m.Reverse(b.Instructions)
		require.Equal(t, s, work, "branch %d did not round-trip: %v", i, b.Instructions)
		require.Equal(t, want, work.Fingerprint(), "branch %d fingerprint changed", i)
	}
}

// FindBranch returns the first branch whose log contains want.
func FindBranch(branches []model.Transposition, want model.Instruction) (model.Transposition, bool) {
	for _, b := range branches {
		if Contains(b.Instructions, want) {
			return b, true
		}
	}
	return model.Transposition{}, false
}

// Contains reports whether log holds want.
func Contains(log []model.Instruction, want model.Instruction) bool {
	return slices.Contains(log, want)
}

// CountKind counts instructions of kind in log.
func CountKind(log []model.Instruction, kind model.InstructionKind) int {
	n := 0
	for _, in := range log {
		if in.Kind == kind {
			n++
		}
	}
	return n
}
