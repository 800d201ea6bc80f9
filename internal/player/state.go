package player

import (
	"errors"

	"github.com/lox/threeboard/internal/decide"
)

var (
	// ErrRoundInProgress is returned when a round starts before the previous one ended
	ErrRoundInProgress = errors.New("player: round already in progress")
	// ErrNoRound is returned when actions are requested outside a round
	ErrNoRound = errors.New("player: no round in progress")
	// ErrBadAllocation means the holes do not partition the dealt cards
	ErrBadAllocation = errors.New("player: allocation does not match dealt cards")
)

// Phase is where the player is within a round
type Phase int

const (
	// Idle waits for the next round
	Idle Phase = iota
	// Allocated holds this round's holes but has not acted yet
	Allocated
	// Acting has answered at least one action request
	Acting
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Allocated:
		return "allocated"
	case Acting:
		return "acting"
	default:
		return "unknown"
	}
}

// State is everything the player remembers within a round
type State struct {
	Phase    Phase
	Number   int // round number reported by the engine
	Round    decide.Round
	History  decide.History
	Requests int // action requests answered this round
}

// Reset returns the state to Idle and forgets the round
func (s *State) Reset() {
	*s = State{}
}
