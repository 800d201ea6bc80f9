package main

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/threeboard/internal/deck"
)

func TestRenderAllocation(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	alloc := deck.Allocation{
		deck.MustParseHole("KdAs"),
		deck.MustParseHole("9s9h"),
		deck.MustParseHole("2d2c"),
	}

	var buf bytes.Buffer
	renderAllocation(&buf, alloc, []float64{0.66, 0.72, 0.5})
	out := buf.String()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Contains(t, out, "Allocation")
	assert.Contains(t, string(lines[1]), "Board 1")
	assert.Contains(t, string(lines[1]), "AKo")
	assert.Contains(t, string(lines[1]), "66.0%")
	assert.Contains(t, string(lines[2]), "99o")
	assert.Contains(t, string(lines[3]), "22o")
	assert.Contains(t, string(lines[3]), "50.0%")
}

func TestRenderAllocationWithoutTable(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	var buf bytes.Buffer
	renderAllocation(&buf, deck.Allocation{
		deck.MustParseHole("2d2c"),
		deck.MustParseHole("9s9h"),
		deck.MustParseHole("KdAs"),
	}, nil)

	assert.NotContains(t, buf.String(), "%")
	assert.Contains(t, buf.String(), "Board 3")
}

func TestAllocateRejectsBadInput(t *testing.T) {
	for _, cmd := range []AllocateCmd{
		{Cards: "2d2c9s", MinPairRank: "5", NoColor: true},
		{Cards: "2d2c9s9hKdAs", MinPairRank: "10", NoColor: true},
		{Cards: "2d2c9s9hKdAs", MinPairRank: "5", Table: "/nonexistent/table.csv", NoColor: true},
	} {
		assert.Error(t, cmd.Run(), cmd.Cards)
	}
}
