package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/threeboard/internal/decide"
	"github.com/lox/threeboard/internal/deck"
)

func TestMessageEnvelope(t *testing.T) {
	msg, err := NewMessage(TypeHello, Hello{Name: "threeboard", BotID: "abc"})
	require.NoError(t, err)
	assert.False(t, msg.Timestamp.IsZero())

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded Message
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, TypeHello, decoded.Type)

	var hello Hello
	require.NoError(t, decoded.Decode(&hello))
	assert.Equal(t, Hello{Name: "threeboard", BotID: "abc"}, hello)
}

func TestDecodeError(t *testing.T) {
	msg := &Message{Type: TypeRoundStart, Data: json.RawMessage(`{"round":"one"}`)}

	var rs RoundStart
	err := msg.Decode(&rs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "round_start")
}

func TestRoundStartParseCards(t *testing.T) {
	rs := RoundStart{Round: 3, Cards: []string{"2d", "2c", "9s", "9h", "Kd", "As"}}
	cards, err := rs.ParseCards()
	require.NoError(t, err)
	assert.Equal(t, deck.MustParseCards("2d2c9s9hKdAs"), cards)

	_, err = RoundStart{Cards: []string{"2d", "2c"}}.ParseCards()
	assert.Error(t, err)

	_, err = RoundStart{Cards: []string{"2d", "2c", "9s", "9h", "Kd", "1s"}}.ParseCards()
	assert.Error(t, err)
}

func TestActionRequestFromJSON(t *testing.T) {
	payload := `{
		"round": 4,
		"seq": 2,
		"street": 3,
		"stack": 180,
		"opp_stack": 150,
		"net_raise_bound": 60,
		"boards": [
			{"legal_actions": ["fold", "call", "raise"], "my_pip": 2, "opp_pip": 8, "pot": 4, "min_raise": 14, "max_raise": 100, "cards": ["Ah", "7c", "2d"]},
			{"legal_actions": ["check", "raise"], "pot": 10, "min_raise": 2, "max_raise": 100},
			{"legal_actions": ["check"], "terminal": true}
		]
	}`

	var ar ActionRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &ar))

	req, err := ar.Request()
	require.NoError(t, err)
	assert.Equal(t, decide.Flop, req.Street)
	assert.Equal(t, 180, req.Stack)
	assert.Equal(t, 150, req.OppStack)
	assert.Equal(t, 60, req.NetRaiseBound)

	b := req.Boards[0]
	assert.True(t, b.Legal.Has(decide.Call))
	assert.False(t, b.Legal.Has(decide.Check))
	assert.Equal(t, 6, b.ContinueCost())
	assert.Equal(t, 14, b.PotTotal())
	assert.Equal(t, deck.MustParseCards("Ah7c2d"), b.Cards)

	assert.Equal(t, decide.NewActionSet(decide.Check, decide.Raise), req.Boards[1].Legal)
	assert.True(t, req.Boards[2].Terminal)
}

func TestActionRequestErrors(t *testing.T) {
	_, err := ActionRequest{Boards: make([]BoardState, 2)}.Request()
	assert.Error(t, err)

	bad := ActionRequest{Boards: []BoardState{
		{LegalActions: []string{"check"}},
		{LegalActions: []string{"allin"}},
		{LegalActions: []string{"check"}},
	}}
	_, err = bad.Request()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "board 1")
}

func TestActionsWireForm(t *testing.T) {
	actions := NewActions(4, 2, [deck.NumBoards]decide.Action{
		decide.AssignAction(deck.MustParseHole("AdKs")),
		decide.RaiseAction(12),
		decide.FoldAction,
	})

	raw, err := json.Marshal(actions)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"round": 4,
		"seq": 2,
		"actions": [
			{"type": "assign", "cards": ["Ad", "Ks"]},
			{"type": "raise", "amount": 12},
			{"type": "fold"}
		]
	}`, string(raw))
}

func TestFromAction(t *testing.T) {
	for _, tc := range []struct {
		action decide.Action
		want   Action
	}{
		{decide.FoldAction, Action{Type: "fold"}},
		{decide.CheckAction, Action{Type: "check"}},
		{decide.CallAction, Action{Type: "call"}},
		{decide.RaiseAction(30), Action{Type: "raise", Amount: 30}},
		{decide.AssignAction(deck.MustParseHole("9s9h")), Action{Type: "assign", Cards: []string{"9s", "9h"}}},
	} {
		assert.Equal(t, tc.want, FromAction(tc.action), tc.want.Type)
	}
}
