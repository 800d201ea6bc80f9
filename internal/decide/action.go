package decide

import (
	"fmt"
	"strings"

	"github.com/lox/threeboard/internal/deck"
)

// ActionType represents the kind of action taken on one board
type ActionType int

const (
	// Fold discards the hole and forfeits the board's pot
	Fold ActionType = iota
	// Check passes with nothing to call
	Check
	// Call matches the opponent's pip
	Call
	// Raise sets the pip to Amount
	Raise
	// Assign places a hole on the board at round start
	Assign
)

// String returns the wire name of an action type
func (a ActionType) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	case Assign:
		return "assign"
	default:
		return "unknown"
	}
}

// ParseActionType converts a wire name to an ActionType
func ParseActionType(s string) (ActionType, error) {
	switch strings.ToLower(s) {
	case "fold":
		return Fold, nil
	case "check":
		return Check, nil
	case "call":
		return Call, nil
	case "raise":
		return Raise, nil
	case "assign":
		return Assign, nil
	default:
		return Fold, fmt.Errorf("unknown action type %q", s)
	}
}

// ActionSet is the set of legal action types on a board
type ActionSet uint8

// NewActionSet builds a set from the given types
func NewActionSet(types ...ActionType) ActionSet {
	var s ActionSet
	for _, t := range types {
		s |= 1 << t
	}
	return s
}

// Has reports whether t is in the set
func (s ActionSet) Has(t ActionType) bool {
	return s&(1<<t) != 0
}

// Types lists the members of the set in declaration order
func (s ActionSet) Types() []ActionType {
	var out []ActionType
	for t := Fold; t <= Assign; t++ {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// String returns the members joined by '|'
func (s ActionSet) String() string {
	types := s.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, "|")
}

// Action is a single board's response
type Action struct {
	Type   ActionType
	Amount int       // raise-to amount, Raise only
	Hole   deck.Hole // cards placed, Assign only
}

// String returns a compact description for logs
func (a Action) String() string {
	switch a.Type {
	case Raise:
		return fmt.Sprintf("raise %d", a.Amount)
	case Assign:
		return "assign " + a.Hole.String()
	default:
		return a.Type.String()
	}
}

// FoldAction, CheckAction and CallAction are the argument-free actions
var (
	FoldAction  = Action{Type: Fold}
	CheckAction = Action{Type: Check}
	CallAction  = Action{Type: Call}
)

// RaiseAction raises the board pip to amount
func RaiseAction(amount int) Action {
	return Action{Type: Raise, Amount: amount}
}

// AssignAction places hole on the board
func AssignAction(hole deck.Hole) Action {
	return Action{Type: Assign, Hole: hole}
}
