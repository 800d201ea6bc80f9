package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/threeboard/internal/allocate"
	"github.com/lox/threeboard/internal/assign"
	"github.com/lox/threeboard/internal/deck"
	"github.com/lox/threeboard/internal/randutil"
	"github.com/lox/threeboard/internal/strength"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	boardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	redSuitStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	blackSuitStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

type AllocateCmd struct {
	Cards       string `arg:"" help:"Six cards, e.g. '2d2c9s9hKdAs'"`
	Table       string `short:"t" help:"Strength table CSV; when set, holes are ordered weakest to strongest"`
	MinPairRank string `default:"5" help:"Lowest rank kept together as a pocket pair"`
	Seed        int64  `help:"Random seed for the board shuffle (0 picks one from the clock)"`
	Swap        bool   `help:"Apply random neighbour swaps when ordering"`
	NoColor     bool   `help:"Disable colored output"`
}

func (c *AllocateCmd) Run() error {
	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cards, err := deck.ParseCards(c.Cards)
	if err != nil {
		return err
	}
	if len(c.MinPairRank) != 1 {
		return fmt.Errorf("invalid min pair rank %q", c.MinPairRank)
	}
	minPair, err := deck.ParseRank(c.MinPairRank[0])
	if err != nil {
		return err
	}

	holes, err := allocate.Allocate(cards, allocate.WithMinPairRank(minPair))
	if err != nil {
		return err
	}

	if c.Table == "" {
		renderAllocation(os.Stdout, deck.Allocation(holes), nil)
		return nil
	}

	table, err := strength.Load(c.Table)
	if err != nil {
		return err
	}
	swapProb := 0.0
	if c.Swap {
		swapProb = assign.DefaultSwapProbability
	}
	assigner := assign.New(table, randutil.New(randutil.Resolve(c.Seed)), swapProb)
	alloc, strengths, err := assigner.Assign(holes)
	if err != nil {
		return err
	}
	renderAllocation(os.Stdout, alloc, strengths[:])
	return nil
}

// renderAllocation prints one line per board; strengths may be nil
func renderAllocation(w io.Writer, alloc deck.Allocation, strengths []float64) {
	fmt.Fprintln(w, headerStyle.Render("Allocation"))
	for i, hole := range alloc {
		line := fmt.Sprintf("%s  %s  %s",
			boardStyle.Render(fmt.Sprintf("Board %d", i+1)),
			renderHole(hole),
			keyStyle.Render(fmt.Sprintf("%-3s", strength.KeyOf(hole))))
		if strengths != nil {
			line += "  " + percentStyle.Render(fmt.Sprintf("%5.1f%%", strengths[i]*100))
		}
		fmt.Fprintln(w, line)
	}
}

func renderHole(h deck.Hole) string {
	parts := make([]string, len(h))
	for i, card := range h {
		style := blackSuitStyle
		if card.Suit == deck.Hearts || card.Suit == deck.Diamonds {
			style = redSuitStyle
		}
		parts[i] = style.Render(card.String())
	}
	return strings.Join(parts, " ")
}
