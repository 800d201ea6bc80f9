// Package assign orders allocated holes onto boards by table strength.
package assign

import (
	"fmt"
	rand "math/rand/v2"
	"sort"

	"github.com/lox/threeboard/internal/deck"
)

// DefaultSwapProbability is the chance of each neighbouring swap
const DefaultSwapProbability = 0.1

// Lookup resolves a hole to its win probability
type Lookup interface {
	Lookup(h deck.Hole) (float64, error)
}

// Assigner places the weakest hole on board 0 and the strongest on the last
// board, occasionally swapping neighbours so board position does not leak
// hole strength to an observant opponent.
type Assigner struct {
	table    Lookup
	rng      *rand.Rand
	swapProb float64
}

// New creates an assigner drawing randomness from rng
func New(table Lookup, rng *rand.Rand, swapProb float64) *Assigner {
	return &Assigner{
		table:    table,
		rng:      rng,
		swapProb: swapProb,
	}
}

type scoredHole struct {
	hole     deck.Hole
	strength float64
}

// Assign returns the board allocation and the strength of each board's hole
func (a *Assigner) Assign(holes [deck.NumBoards]deck.Hole) (deck.Allocation, [deck.NumBoards]float64, error) {
	var alloc deck.Allocation
	var strengths [deck.NumBoards]float64

	scored := make([]scoredHole, len(holes))
	for i, h := range holes {
		s, err := a.table.Lookup(h)
		if err != nil {
			return alloc, strengths, fmt.Errorf("assign hole %d: %w", i, err)
		}
		scored[i] = scoredHole{hole: h, strength: s}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].strength < scored[j].strength
	})

	// the second check sees the order left by the first
	if a.rng.Float64() < a.swapProb {
		scored[2], scored[1] = scored[1], scored[2]
	}
	if a.rng.Float64() < a.swapProb {
		scored[1], scored[0] = scored[0], scored[1]
	}

	for i, s := range scored {
		alloc[i] = s.hole
		strengths[i] = s.strength
	}
	return alloc, strengths, nil
}
