// Package allocate splits a six-card hand into three two-card holes.
package allocate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lox/threeboard/internal/deck"
)

var (
	// ErrInvalidHand is returned when the input is not six distinct cards
	ErrInvalidHand = errors.New("allocate: hand must be six distinct cards")
	// ErrAllocation signals the passes failed to partition the hand exactly
	ErrAllocation = errors.New("allocate: cards not partitioned into three holes")
)

// DefaultMinPairRank is the weakest pocket pair committed by the pair pass
const DefaultMinPairRank = deck.Five

type options struct {
	minPairRank deck.Rank
}

// Option configures Allocate
type Option func(*options)

// WithMinPairRank overrides the weakest pair kept by the pair pass
func WithMinPairRank(r deck.Rank) Option {
	return func(o *options) {
		o.minPairRank = r
	}
}

// allocation tracks committed holes and which cards they consume
type allocation struct {
	holes []deck.Hole
	used  map[deck.Card]bool
}

func (a *allocation) commit(c1, c2 deck.Card) {
	a.holes = append(a.holes, deck.Hole{c1, c2})
	a.used[c1] = true
	a.used[c2] = true
}

func (a *allocation) remaining(cards []deck.Card) []deck.Card {
	var out []deck.Card
	for _, c := range cards {
		if !a.used[c] {
			out = append(out, c)
		}
	}
	return out
}

// Allocate partitions six cards into three holes using, in priority order:
// pocket pairs of at least the minimum rank, rank connectors (including
// weak pairs), two-card flush draws, then whatever is left. The returned
// order follows the passes; boards are assigned separately.
func Allocate(cards []deck.Card, opts ...Option) ([deck.NumBoards]deck.Hole, error) {
	var result [deck.NumBoards]deck.Hole

	o := options{minPairRank: DefaultMinPairRank}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateHand(cards); err != nil {
		return result, err
	}

	a := &allocation{used: make(map[deck.Card]bool, deck.HandSize)}

	pairPass(a, cards, o.minPairRank)
	connectorPass(a, a.remaining(cards))
	flushPass(a, a.remaining(cards))
	fallbackPass(a, a.remaining(cards))

	if len(a.holes) != deck.NumBoards || len(a.used) != deck.HandSize || len(a.remaining(cards)) != 0 {
		return result, fmt.Errorf("%w: %d holes, %d cards used", ErrAllocation, len(a.holes), len(a.used))
	}

	copy(result[:], a.holes)
	return result, nil
}

func validateHand(cards []deck.Card) error {
	if len(cards) != deck.HandSize {
		return fmt.Errorf("%w: got %d cards", ErrInvalidHand, len(cards))
	}
	seen := make(map[deck.Card]bool, len(cards))
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: invalid card %v", ErrInvalidHand, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate %s", ErrInvalidHand, c)
		}
		seen[c] = true
	}
	return nil
}

// groupByRank groups cards by rank, preserving first-seen order
func groupByRank(cards []deck.Card) [][]deck.Card {
	index := make(map[deck.Rank]int)
	var groups [][]deck.Card
	for _, c := range cards {
		i, ok := index[c.Rank]
		if !ok {
			i = len(groups)
			index[c.Rank] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], c)
	}
	return groups
}

// groupBySuit groups cards by suit, preserving first-seen order
func groupBySuit(cards []deck.Card) [][]deck.Card {
	index := make(map[deck.Suit]int)
	var groups [][]deck.Card
	for _, c := range cards {
		i, ok := index[c.Suit]
		if !ok {
			i = len(groups)
			index[c.Suit] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], c)
	}
	return groups
}

// pairCandidates returns cards forming pairs, laid out so that each
// consecutive two share a rank, and the cards left unpaired.
func pairCandidates(cards []deck.Card) (pairs, singles []deck.Card) {
	for _, group := range groupByRank(cards) {
		switch len(group) {
		case 1:
			singles = append(singles, group[0])
		case 2, 4:
			pairs = append(pairs, group...)
		case 3:
			pairs = append(pairs, group[0], group[1])
			singles = append(singles, group[2])
		}
	}
	return pairs, singles
}

func pairPass(a *allocation, cards []deck.Card, minRank deck.Rank) {
	pairs, _ := pairCandidates(cards)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i].Rank >= minRank {
			a.commit(pairs[i], pairs[i+1])
		}
	}
}

func connectorPass(a *allocation, remaining []deck.Card) {
	sorted := make([]deck.Card, len(remaining))
	copy(sorted, remaining)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank > sorted[j].Rank
	})

	for i := 0; i+1 < len(sorted); i++ {
		c1, c2 := sorted[i], sorted[i+1]
		if c1.Rank-c2.Rank <= 1 && !a.used[c1] && !a.used[c2] {
			a.commit(c1, c2)
		}
	}
}

func flushPass(a *allocation, remaining []deck.Card) {
	for _, group := range groupBySuit(remaining) {
		switch len(group) {
		case 2, 3:
			a.commit(group[0], group[1])
		case 4:
			a.commit(group[0], group[1])
			a.commit(group[2], group[3])
		}
	}
}

func fallbackPass(a *allocation, remaining []deck.Card) {
	for i := 0; i+1 < len(remaining); i += 2 {
		a.commit(remaining[i], remaining[i+1])
	}
}

// PairsFirst lays out pair candidates followed by unpaired cards and chunks
// them into consecutive holes, so any pocket pairs land on the first
// boards. It reports whether at least one pair was found.
func PairsFirst(cards []deck.Card) ([deck.NumBoards]deck.Hole, bool, error) {
	var result [deck.NumBoards]deck.Hole
	if err := validateHand(cards); err != nil {
		return result, false, err
	}

	pairs, singles := pairCandidates(cards)
	ordered := append(pairs, singles...)
	for i := range result {
		result[i] = deck.Hole{ordered[2*i], ordered[2*i+1]}
	}
	return result, len(pairs) > 0, nil
}
