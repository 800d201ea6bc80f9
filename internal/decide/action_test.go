package decide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/threeboard/internal/deck"
)

func TestActionTypeRoundTrip(t *testing.T) {
	for _, at := range []ActionType{Fold, Check, Call, Raise, Assign} {
		got, err := ParseActionType(at.String())
		require.NoError(t, err)
		assert.Equal(t, at, got)
	}

	got, err := ParseActionType("RAISE")
	require.NoError(t, err)
	assert.Equal(t, Raise, got)

	_, err = ParseActionType("allin")
	assert.Error(t, err)
}

func TestActionSet(t *testing.T) {
	s := NewActionSet(Check, Raise, Fold)

	assert.True(t, s.Has(Fold))
	assert.True(t, s.Has(Check))
	assert.True(t, s.Has(Raise))
	assert.False(t, s.Has(Call))
	assert.False(t, s.Has(Assign))
	assert.Equal(t, []ActionType{Fold, Check, Raise}, s.Types())
	assert.Equal(t, "fold|check|raise", s.String())

	assert.Empty(t, ActionSet(0).Types())
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "raise 12", RaiseAction(12).String())
	assert.Equal(t, "call", CallAction.String())
	assert.Contains(t, AssignAction(deck.MustParseHole("AdKs")).String(), "assign")
}

func TestBoardArithmetic(t *testing.T) {
	b := Board{MyPip: 2, OppPip: 8, Pot: 20}
	assert.Equal(t, 6, b.ContinueCost())
	assert.Equal(t, 30, b.PotTotal())
}
