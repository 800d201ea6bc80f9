// Package statistics accumulates per-round chip results over a session.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// BigRoundChips is the absolute delta at which a round counts as big
const BigRoundChips = 100

// RoundResult is the outcome of a single round
type RoundResult struct {
	Delta    int  // chips won or lost across all three boards
	Showdown bool // opponent holes were revealed
}

// Statistics tracks session results
type Statistics struct {
	Rounds int
	Sum    float64
	Sum2   float64   // sum of squares for variance
	Values []float64 // all deltas for median and percentiles

	Wins   int
	Losses int

	ShowdownWins     int
	NonShowdownWins  int
	ShowdownChips    float64 // wins and losses
	NonShowdownChips float64
	AllChips         float64

	BiggestWin  int
	BiggestLoss int // most negative delta
	BigRounds   int
	BigChips    float64
}

// Mean returns the average delta per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.Sum / float64(s.Rounds)
}

// Variance returns the sample variance of the deltas
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add records one round
func (s *Statistics) Add(result RoundResult) {
	delta := float64(result.Delta)
	s.Rounds++
	s.Sum += delta
	s.Sum2 += delta * delta
	s.Values = append(s.Values, delta)

	switch {
	case result.Delta > 0:
		s.Wins++
		if result.Showdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	case result.Delta < 0:
		s.Losses++
	}

	if result.Showdown {
		s.ShowdownChips += delta
	} else {
		s.NonShowdownChips += delta
	}
	s.AllChips += delta

	if result.Delta > s.BiggestWin {
		s.BiggestWin = result.Delta
	}
	if result.Delta < s.BiggestLoss {
		s.BiggestLoss = result.Delta
	}
	if result.Delta >= BigRoundChips || result.Delta <= -BigRoundChips {
		s.BigRounds++
		s.BigChips += delta
	}
}

// Median returns the median delta
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the delta at p (0.0 to 1.0), interpolating between
// neighbouring values.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// WinRate returns the fraction of rounds with a positive delta
func (s *Statistics) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds)
}

// IsLedgerBalanced checks that the showdown split accounts for every chip
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllChips-s.ShowdownChips-s.NonShowdownChips) <= 1e-6
}

// Validate checks the counters agree with each other
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: all=%.2f showdown=%.2f non-showdown=%.2f",
			s.AllChips, s.ShowdownChips, s.NonShowdownChips)
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values length (%d) does not match rounds (%d)", len(s.Values), s.Rounds)
	}
	if s.Wins+s.Losses > s.Rounds {
		return fmt.Errorf("wins (%d) plus losses (%d) exceed rounds (%d)", s.Wins, s.Losses, s.Rounds)
	}
	if s.ShowdownWins+s.NonShowdownWins != s.Wins {
		return fmt.Errorf("showdown split (%d+%d) does not match wins (%d)",
			s.ShowdownWins, s.NonShowdownWins, s.Wins)
	}
	return nil
}
