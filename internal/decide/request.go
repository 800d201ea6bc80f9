package decide

import "github.com/lox/threeboard/internal/deck"

// Street values reported by the round engine
const (
	PreFlop = 0
	Flop    = 3
	Turn    = 4
	River   = 5
)

// Board is the betting context of one board at a decision point
type Board struct {
	Legal    ActionSet
	MyPip    int // chips we committed this street
	OppPip   int // chips the opponent committed this street
	Pot      int // pot before this street
	MinRaise int
	MaxRaise int
	Terminal bool
	Cards    []deck.Card // community cards dealt so far
}

// ContinueCost is the amount needed to match the opponent
func (b Board) ContinueCost() int {
	return b.OppPip - b.MyPip
}

// PotTotal is the pot including both players' pips this street
func (b Board) PotTotal() int {
	return b.MyPip + b.OppPip + b.Pot
}

// Request is everything the round engine reports at one decision point
type Request struct {
	Street        int
	Boards        [deck.NumBoards]Board
	Stack         int // our remaining chips, shared by all boards
	OppStack      int
	NetRaiseBound int // engine's aggregate raise bound, informational
}

// Round is what the player knows about the current round's holes
type Round struct {
	Allocation deck.Allocation
	Strengths  [deck.NumBoards]float64
	Paired     bool // allocation contains a pocket pair
}

// Decision is the answer to one request
type Decision struct {
	Actions [deck.NumBoards]Action
	Costs   [deck.NumBoards]int
	NetCost int
}

// History counts opponent aggression per board within a round
type History struct {
	observed [deck.NumBoards]int
	raises   [deck.NumBoards]int
}

// Observe records whether the opponent had chips in front of us on board
func (h *History) Observe(board int, raised bool) {
	h.observed[board]++
	if raised {
		h.raises[board]++
	}
}

// Raises returns how often the opponent bet into us on board this round
func (h *History) Raises(board int) int {
	return h.raises[board]
}

// Observed returns how many decision points were recorded on board
func (h *History) Observed(board int) int {
	return h.observed[board]
}

// Reset clears all counters
func (h *History) Reset() {
	*h = History{}
}

// Policy turns a request into one action per board
type Policy interface {
	Decide(req Request, round Round, history *History) Decision
}
