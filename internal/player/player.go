// Package player ties card allocation, hole assignment and betting together
// across the lifecycle of a round.
package player

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/threeboard/internal/allocate"
	"github.com/lox/threeboard/internal/assign"
	"github.com/lox/threeboard/internal/decide"
	"github.com/lox/threeboard/internal/deck"
)

// Strategy selects how cards are allocated and bets are made
type Strategy string

const (
	// StrategyPrecompute allocates by heuristic and bets from the strength table
	StrategyPrecompute Strategy = "precompute"
	// StrategyPairHunt puts pairs first and shoves when holding one
	StrategyPairHunt Strategy = "pair-hunt"
)

// ParseStrategy validates a strategy name
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyPrecompute, StrategyPairHunt:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown strategy %q", s)
	}
}

// Options tune the player's heuristics
type Options struct {
	Strategy        Strategy
	Params          decide.Params
	MinPairRank     deck.Rank
	SwapProbability float64
}

// DefaultOptions returns the stock precompute configuration
func DefaultOptions() Options {
	return Options{
		Strategy:        StrategyPrecompute,
		Params:          decide.DefaultParams(),
		MinPairRank:     allocate.DefaultMinPairRank,
		SwapProbability: assign.DefaultSwapProbability,
	}
}

// Player answers the round engine's callbacks. Calls must not be interleaved.
type Player struct {
	opts     Options
	table    assign.Lookup
	assigner *assign.Assigner
	policy   decide.Policy
	state    State
	logger   *log.Logger
}

// New creates a player using table for hole strengths and rng for every
// random choice it makes.
func New(table assign.Lookup, rng *rand.Rand, logger *log.Logger, opts Options) (*Player, error) {
	p := &Player{
		opts:     opts,
		table:    table,
		assigner: assign.New(table, rng, opts.SwapProbability),
		logger:   logger.WithPrefix("player"),
	}

	switch opts.Strategy {
	case StrategyPrecompute:
		p.policy = decide.NewEngine(opts.Params, rng)
	case StrategyPairHunt:
		p.policy = decide.PairHunter{}
	default:
		return nil, fmt.Errorf("unknown strategy %q", opts.Strategy)
	}

	return p, nil
}

// State returns a copy of the current round state
func (p *Player) State() State {
	return p.state
}

// HandleNewRound allocates the six dealt cards to boards
func (p *Player) HandleNewRound(number int, cards []deck.Card) (deck.Allocation, error) {
	if p.state.Phase != Idle {
		return deck.Allocation{}, fmt.Errorf("round %d: %w", number, ErrRoundInProgress)
	}

	round, err := p.allocate(cards)
	if err != nil {
		return deck.Allocation{}, fmt.Errorf("round %d: %w", number, err)
	}
	if err := checkPartition(cards, round.Allocation); err != nil {
		return deck.Allocation{}, fmt.Errorf("round %d: %w", number, err)
	}

	p.state = State{
		Phase:  Allocated,
		Number: number,
		Round:  round,
	}

	for i, h := range round.Allocation {
		p.logger.Debug("Assigned hole", "round", number, "board", i, "hole", h, "strength", round.Strengths[i])
	}
	p.logger.Info("Round started", "round", number, "cards", deck.EngineStrings(cards), "paired", round.Paired)

	return round.Allocation, nil
}

func (p *Player) allocate(cards []deck.Card) (decide.Round, error) {
	var round decide.Round

	switch p.opts.Strategy {
	case StrategyPairHunt:
		holes, paired, err := allocate.PairsFirst(cards)
		if err != nil {
			return round, err
		}
		round.Allocation = deck.Allocation(holes)
		round.Paired = paired
		for i, h := range holes {
			s, err := p.table.Lookup(h)
			if err != nil {
				return round, err
			}
			round.Strengths[i] = s
		}

	default:
		holes, err := allocate.Allocate(cards, allocate.WithMinPairRank(p.opts.MinPairRank))
		if err != nil {
			return round, err
		}
		alloc, strengths, err := p.assigner.Assign(holes)
		if err != nil {
			return round, err
		}
		round.Allocation = alloc
		round.Strengths = strengths
		for _, h := range alloc {
			if h[0].Rank == h[1].Rank {
				round.Paired = true
			}
		}
	}

	return round, nil
}

// checkPartition verifies alloc uses every dealt card exactly once
func checkPartition(cards []deck.Card, alloc deck.Allocation) error {
	dealt := make(map[deck.Card]int, len(cards))
	for _, c := range cards {
		dealt[c]++
	}
	for _, c := range alloc.Cards() {
		if dealt[c] == 0 {
			return fmt.Errorf("%w: %s not dealt or used twice", ErrBadAllocation, c)
		}
		dealt[c]--
	}
	for c, n := range dealt {
		if n != 0 {
			return fmt.Errorf("%w: %s not allocated", ErrBadAllocation, c)
		}
	}
	return nil
}

// GetActions answers one action request with an action per board
func (p *Player) GetActions(req decide.Request) (decide.Decision, error) {
	if p.state.Phase == Idle {
		return decide.Decision{}, ErrNoRound
	}

	d := p.policy.Decide(req, p.state.Round, &p.state.History)
	p.state.Phase = Acting
	p.state.Requests++

	p.logger.Debug("Decided",
		"round", p.state.Number,
		"street", req.Street,
		"actions", d.Actions,
		"net_cost", d.NetCost,
		"stack", req.Stack)

	return d, nil
}

// HandleRoundOver records the result and clears round state
func (p *Player) HandleRoundOver(number int, delta int) {
	if p.state.Phase == Idle {
		p.logger.Warn("Round over without a round in progress", "round", number)
	} else if number != p.state.Number {
		p.logger.Warn("Round over for a different round", "round", number, "current", p.state.Number)
	}

	var raises, observed [deck.NumBoards]int
	for i := range raises {
		raises[i] = p.state.History.Raises(i)
		observed[i] = p.state.History.Observed(i)
	}
	p.logger.Info("Round over",
		"round", number,
		"delta", delta,
		"requests", p.state.Requests,
		"opp_bets", raises,
		"decisions", observed)
	p.state.Reset()
}

// AbortRound forgets the current round without a result, for when the
// engine's round end could not be read.
func (p *Player) AbortRound(cause error) {
	if p.state.Phase == Idle {
		return
	}
	p.logger.Warn("Abandoning round", "round", p.state.Number, "error", cause)
	p.state.Reset()
}
