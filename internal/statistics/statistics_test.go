package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	var s Statistics
	assert.Zero(t, s.Mean())
	assert.Zero(t, s.Variance())
	assert.Zero(t, s.StdDev())
	assert.Zero(t, s.StdError())
	assert.Zero(t, s.Median())
	assert.Zero(t, s.Percentile(0.9))
	assert.Zero(t, s.WinRate())
	assert.NoError(t, s.Validate())
}

func TestAdd(t *testing.T) {
	var s Statistics
	for _, r := range []RoundResult{
		{Delta: 12, Showdown: true},
		{Delta: -4},
		{Delta: 0, Showdown: true},
		{Delta: 150},
		{Delta: -120, Showdown: true},
	} {
		s.Add(r)
	}

	assert.Equal(t, 5, s.Rounds)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 2, s.Losses)
	assert.Equal(t, 1, s.ShowdownWins)
	assert.Equal(t, 1, s.NonShowdownWins)
	assert.InDelta(t, -108.0, s.ShowdownChips, 1e-9)
	assert.InDelta(t, 146.0, s.NonShowdownChips, 1e-9)
	assert.InDelta(t, 38.0, s.AllChips, 1e-9)
	assert.Equal(t, 150, s.BiggestWin)
	assert.Equal(t, -120, s.BiggestLoss)
	assert.Equal(t, 2, s.BigRounds)
	assert.InDelta(t, 30.0, s.BigChips, 1e-9)
	assert.InDelta(t, 0.4, s.WinRate(), 1e-9)

	assert.True(t, s.IsLedgerBalanced())
	require.NoError(t, s.Validate())
}

func TestMoments(t *testing.T) {
	var s Statistics
	for _, d := range []int{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Add(RoundResult{Delta: d})
	}

	assert.InDelta(t, 5.0, s.Mean(), 1e-9)
	// sample variance of the classic population-sd-2 series
	assert.InDelta(t, 32.0/7.0, s.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(32.0/7.0), s.StdDev(), 1e-9)
	assert.InDelta(t, s.StdDev()/math.Sqrt(8), s.StdError(), 1e-9)

	lo, hi := s.ConfidenceInterval95()
	assert.InDelta(t, s.Mean()-1.96*s.StdError(), lo, 1e-9)
	assert.InDelta(t, s.Mean()+1.96*s.StdError(), hi, 1e-9)
}

func TestPercentiles(t *testing.T) {
	var s Statistics
	for _, d := range []int{10, -10, 30, 20} {
		s.Add(RoundResult{Delta: d})
	}

	assert.InDelta(t, 15.0, s.Median(), 1e-9)
	assert.InDelta(t, -10.0, s.Percentile(0), 1e-9)
	assert.InDelta(t, 30.0, s.Percentile(1), 1e-9)
	assert.InDelta(t, 0.0, s.Percentile(1.0/6.0), 1e-9)

	// input order is untouched
	assert.Equal(t, []float64{10, -10, 30, 20}, s.Values)
}

func TestValidateDetectsMismatch(t *testing.T) {
	var s Statistics
	s.Add(RoundResult{Delta: 5})

	s.ShowdownChips += 1
	assert.ErrorContains(t, s.Validate(), "ledger")

	s.ShowdownChips -= 1
	s.Values = nil
	assert.ErrorContains(t, s.Validate(), "values")
}
