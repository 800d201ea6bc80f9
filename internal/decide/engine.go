// Package decide chooses betting actions for all boards at a decision point.
package decide

import (
	rand "math/rand/v2"
)

// Params are the tunable constants of the betting heuristic
type Params struct {
	PreflopRaiseFraction  float64 // share of the pot raised before the flop
	PostflopRaiseFraction float64 // share of the pot raised from the flop on
	RepeatRaiseThreshold  int     // opponent raises on a board before we get wary
	RepeatRaisePenalty    float64
	LargeBetThreshold     int // continue cost above which we get wary
	LargeBetPenalty       float64
}

// DefaultParams returns the stock heuristic constants
func DefaultParams() Params {
	return Params{
		PreflopRaiseFraction:  0.25,
		PostflopRaiseFraction: 0.85,
		RepeatRaiseThreshold:  2,
		RepeatRaisePenalty:    0.1,
		LargeBetThreshold:     5,
		LargeBetPenalty:       0.15,
	}
}

// Engine bets in proportion to each hole's table strength and calls only
// when the strength beats the pot odds. All boards draw on one stack.
type Engine struct {
	params Params
	rng    *rand.Rand
}

// NewEngine creates an engine drawing randomness from rng
func NewEngine(params Params, rng *rand.Rand) *Engine {
	return &Engine{params: params, rng: rng}
}

// Decide answers one request. Boards are processed in order and each one
// can only spend what earlier boards left of the stack.
func (e *Engine) Decide(req Request, round Round, history *History) Decision {
	var d Decision
	netCost := 0
	for i := range req.Boards {
		var next int
		d.Actions[i], next = e.decideBoard(i, req, round, history, netCost)
		d.Costs[i] = next - netCost
		netCost = next
	}
	d.NetCost = netCost
	return d
}

// decideBoard returns the board's action and the net cost after taking it
func (e *Engine) decideBoard(i int, req Request, round Round, history *History, netCost int) (Action, int) {
	board := req.Boards[i]

	if board.Legal.Has(Assign) {
		return AssignAction(round.Allocation[i]), netCost
	}
	if board.Terminal {
		return CheckAction, netCost
	}

	continueCost := board.ContinueCost()
	potTotal := board.PotTotal()
	available := req.Stack - netCost
	history.Observe(i, continueCost > 0)

	commit, commitCost := e.preferredCommit(board, req.Street, available)

	strength := round.Strengths[i]
	if continueCost > 0 {
		strength = e.intimidated(strength, continueCost, history.Raises(i))

		potOdds := float64(continueCost) / float64(potTotal+continueCost)
		if strength < potOdds {
			return FoldAction, netCost
		}

		if strength > 0.5 && e.rng.Float64() < strength {
			return commit, netCost + commitCost
		}
		if continueCost <= available {
			return CallAction, netCost + continueCost
		}
		return FoldAction, netCost
	}

	if e.rng.Float64() < strength {
		return commit, netCost + commitCost
	}
	return CheckAction, netCost
}

// preferredCommit picks the most aggressive affordable legal action:
// a pot-fraction raise, then call, then check, then fold.
func (e *Engine) preferredCommit(board Board, street int, available int) (Action, int) {
	continueCost := board.ContinueCost()

	fraction := e.params.PostflopRaiseFraction
	if street < Flop {
		fraction = e.params.PreflopRaiseFraction
	}
	target := int(float64(board.MyPip+continueCost) + fraction*float64(board.PotTotal()+continueCost))
	target = max(board.MinRaise, target)
	target = min(board.MaxRaise, target)
	raiseCost := target - board.MyPip

	switch {
	case board.Legal.Has(Raise) && raiseCost <= available:
		return RaiseAction(target), raiseCost
	case board.Legal.Has(Call) && continueCost <= available:
		return CallAction, continueCost
	case board.Legal.Has(Check):
		return CheckAction, 0
	default:
		return FoldAction, 0
	}
}

// intimidated discounts strength against a repeat raiser or a large bet
func (e *Engine) intimidated(strength float64, continueCost, raises int) float64 {
	if raises >= e.params.RepeatRaiseThreshold {
		strength = max(0, strength-e.params.RepeatRaisePenalty)
	}
	if continueCost > e.params.LargeBetThreshold {
		strength = max(0, strength-e.params.LargeBetPenalty)
	}
	return strength
}

var (
	_ Policy = (*Engine)(nil)
	_ Policy = PairHunter{}
)
