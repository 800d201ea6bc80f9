package protocol

import (
	"fmt"

	"github.com/lox/threeboard/internal/decide"
	"github.com/lox/threeboard/internal/deck"
)

// ParseCards converts the dealt cards
func (r RoundStart) ParseCards() ([]deck.Card, error) {
	cards, err := deck.ParseEngineCards(r.Cards)
	if err != nil {
		return nil, fmt.Errorf("round %d cards: %w", r.Round, err)
	}
	if len(cards) != deck.NumBoards*2 {
		return nil, fmt.Errorf("round %d: expected %d cards, got %d", r.Round, deck.NumBoards*2, len(cards))
	}
	return cards, nil
}

// Request converts the wire request into the decision engine's form
func (r ActionRequest) Request() (decide.Request, error) {
	req := decide.Request{
		Street:        r.Street,
		Stack:         r.Stack,
		OppStack:      r.OppStack,
		NetRaiseBound: r.NetRaiseBound,
	}

	if len(r.Boards) != deck.NumBoards {
		return req, fmt.Errorf("expected %d boards, got %d", deck.NumBoards, len(r.Boards))
	}

	for i, b := range r.Boards {
		board, err := b.board()
		if err != nil {
			return req, fmt.Errorf("board %d: %w", i, err)
		}
		req.Boards[i] = board
	}

	return req, nil
}

func (b BoardState) board() (decide.Board, error) {
	var legal []decide.ActionType
	for _, s := range b.LegalActions {
		t, err := decide.ParseActionType(s)
		if err != nil {
			return decide.Board{}, err
		}
		legal = append(legal, t)
	}

	cards, err := deck.ParseEngineCards(b.Cards)
	if err != nil {
		return decide.Board{}, err
	}

	return decide.Board{
		Legal:    decide.NewActionSet(legal...),
		MyPip:    b.MyPip,
		OppPip:   b.OppPip,
		Pot:      b.Pot,
		MinRaise: b.MinRaise,
		MaxRaise: b.MaxRaise,
		Terminal: b.Terminal,
		Cards:    cards,
	}, nil
}

// FromAction renders an engine action for the wire
func FromAction(a decide.Action) Action {
	out := Action{Type: a.Type.String()}
	switch a.Type {
	case decide.Raise:
		out.Amount = a.Amount
	case decide.Assign:
		out.Cards = deck.EngineStrings(a.Hole[:])
	}
	return out
}

// NewActions builds the reply to a request
func NewActions(round, seq int, actions [deck.NumBoards]decide.Action) Actions {
	out := Actions{Round: round, Seq: seq, Actions: make([]Action, len(actions))}
	for i, a := range actions {
		out.Actions[i] = FromAction(a)
	}
	return out
}
