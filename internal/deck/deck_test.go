package deck

import (
	"testing"

	"github.com/lox/threeboard/internal/randutil"
)

func TestNewDeck(t *testing.T) {
	d := NewDeck(randutil.New(42))

	if len(d.cards) != 52 {
		t.Errorf("Expected 52 cards, got %d", len(d.cards))
	}

	seen := make(map[Card]bool)
	for _, c := range FullDeck() {
		if !c.Valid() {
			t.Errorf("invalid card in full deck: %v", c)
		}
		if seen[c] {
			t.Errorf("duplicate card in full deck: %v", c)
		}
		seen[c] = true
	}
}

func TestDeckRemove(t *testing.T) {
	d := NewDeck(randutil.New(1))
	removed := MustParseCards("AsKd2c")
	d.Remove(removed...)

	if len(d.cards) != 49 {
		t.Fatalf("Expected 49 cards, got %d", len(d.cards))
	}
	dst := make([]Card, 49)
	d.Sample(dst)
	for _, c := range dst {
		for _, r := range removed {
			if c == r {
				t.Errorf("removed card %v still sampled", c)
			}
		}
	}
}

func TestDeckSampleDistinct(t *testing.T) {
	d := NewDeck(randutil.New(7))
	dst := make([]Card, 7)

	for round := 0; round < 100; round++ {
		d.Sample(dst)
		seen := make(map[Card]bool)
		for _, c := range dst {
			if seen[c] {
				t.Fatalf("round %d: duplicate sampled card %v", round, c)
			}
			seen[c] = true
		}
	}

	if len(d.cards) != 52 {
		t.Errorf("Sample should not remove cards, got %d", len(d.cards))
	}
}
