package strength

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"runtime"
	"sync/atomic"

	"github.com/paulhankin/poker"
	"golang.org/x/sync/errgroup"

	"github.com/lox/threeboard/internal/deck"
	"github.com/lox/threeboard/internal/randutil"
)

// GenerateOptions controls the offline Monte Carlo table build
type GenerateOptions struct {
	Samples  int   // runouts per canonical hole
	Seed     int64 // base seed; each hole derives its own source
	Workers  int   // parallel holes, defaults to NumCPU capped at 8
	Progress func(done, total int)
}

// Generate estimates the heads-up win probability of every canonical hole
// against a uniformly random opponent hole over a random five-card runout.
// Ties count as half a win. Output is deterministic for a given seed and
// sample count regardless of worker count.
func Generate(ctx context.Context, opts GenerateOptions) (*Table, error) {
	if opts.Samples <= 0 {
		return nil, fmt.Errorf("samples must be positive, got %d", opts.Samples)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers > 8 {
			workers = 8
		}
	}

	keys := Keys()
	results := make([]float64, len(keys))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, key := range keys {
		g.Go(func() error {
			rng := randutil.New(randutil.Derive(opts.Seed, i))
			equity, err := estimate(ctx, key.Hole(), opts.Samples, rng)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			results[i] = equity

			n := done.Add(1)
			if opts.Progress != nil {
				opts.Progress(int(n), len(keys))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make(map[Key]float64, len(keys))
	for i, key := range keys {
		entries[key] = results[i]
	}
	return New(entries)
}

func estimate(ctx context.Context, hole deck.Hole, samples int, rng *rand.Rand) (float64, error) {
	d := deck.NewDeck(rng)
	d.Remove(hole[0], hole[1])

	var hero, villain [7]poker.Card
	hero[0], hero[1] = toPoker(hole[0]), toPoker(hole[1])

	// opponent hole then the five board cards
	drawn := make([]deck.Card, 7)
	var wins, ties int

	for i := 0; i < samples; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		d.Sample(drawn)
		villain[0], villain[1] = toPoker(drawn[0]), toPoker(drawn[1])
		for j := 0; j < 5; j++ {
			c := toPoker(drawn[2+j])
			hero[2+j] = c
			villain[2+j] = c
		}

		// larger scores are stronger hands
		heroScore := poker.Eval7(&hero)
		villainScore := poker.Eval7(&villain)
		switch {
		case heroScore > villainScore:
			wins++
		case heroScore == villainScore:
			ties++
		}
	}

	return (float64(wins) + float64(ties)/2.0) / float64(samples), nil
}

var pokerCards = buildPokerCards()

func buildPokerCards() [52]poker.Card {
	var cards [52]poker.Card
	suits := [...]poker.Suit{
		deck.Spades:   poker.Spade,
		deck.Hearts:   poker.Heart,
		deck.Diamonds: poker.Diamond,
		deck.Clubs:    poker.Club,
	}
	for _, c := range deck.FullDeck() {
		// the evaluator numbers ranks 1..13 with the ace as 1
		r := poker.Rank(c.Rank)
		if c.Rank == deck.Ace {
			r = poker.Rank(1)
		}
		pc, err := poker.MakeCard(suits[c.Suit], r)
		if err != nil {
			panic(fmt.Sprintf("strength: cannot map %s to evaluator card: %v", c, err))
		}
		cards[cardIndex(c)] = pc
	}
	return cards
}

func cardIndex(c deck.Card) int {
	return int(c.Suit)*13 + int(c.Rank-deck.Two)
}

func toPoker(c deck.Card) poker.Card {
	return pokerCards[cardIndex(c)]
}
