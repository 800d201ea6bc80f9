package deck

import "testing"

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "royal flush",
			input: "AsKsQsJsTs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
				{Suit: Spades, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Ten},
			},
		},
		{
			name:  "mixed suits",
			input: "AhKdQcJs9s",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: King},
				{Suit: Clubs, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Nine},
			},
		},
		{
			name:  "low cards",
			input: "5h4d3c2s",
			expected: []Card{
				{Suit: Hearts, Rank: Five},
				{Suit: Diamonds, Rank: Four},
				{Suit: Clubs, Rank: Three},
				{Suit: Spades, Rank: Two},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !cardsEqual(got, tt.expected) {
				t.Errorf("ParseCards() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustParseCards(t *testing.T) {
	// Test successful parsing
	cards := MustParseCards("AsKs")
	expected := []Card{
		{Suit: Spades, Rank: Ace},
		{Suit: Spades, Rank: King},
	}
	if !cardsEqual(cards, expected) {
		t.Errorf("MustParseCards() = %v, want %v", cards, expected)
	}

	// Test panic on invalid input
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCards() should panic on invalid input")
		}
	}()
	MustParseCards("invalid")
}

func cardsEqual(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Rank != b[i].Rank || a[i].Suit != b[i].Suit {
			return false
		}
	}
	return true
}

func TestCardEngineNotation(t *testing.T) {
	for _, card := range FullDeck() {
		s := card.Engine()
		got, err := ParseCard(s)
		if err != nil {
			t.Fatalf("ParseCard(%q) error = %v", s, err)
		}
		if got != card {
			t.Errorf("ParseCard(%q) = %v, want %v", s, got, card)
		}
	}

	if got := NewCard(Diamonds, Ten).Engine(); got != "Td" {
		t.Errorf("Engine() = %q, want %q", got, "Td")
	}
	if got := NewCard(Hearts, Ace).String(); got != "A♥" {
		t.Errorf("String() = %q, want %q", got, "A♥")
	}
}

func TestParseEngineCards(t *testing.T) {
	cards, err := ParseEngineCards([]string{"Ad", "2c", "Ts"})
	if err != nil {
		t.Fatalf("ParseEngineCards() error = %v", err)
	}
	want := []Card{{Diamonds, Ace}, {Clubs, Two}, {Spades, Ten}}
	if !cardsEqual(cards, want) {
		t.Errorf("ParseEngineCards() = %v, want %v", cards, want)
	}

	if _, err := ParseEngineCards([]string{"Ad", "1c"}); err == nil {
		t.Error("ParseEngineCards() should reject unknown rank")
	}

	if got := EngineStrings(want); got[0] != "Ad" || got[1] != "2c" || got[2] != "Ts" {
		t.Errorf("EngineStrings() = %v", got)
	}
}

func TestHole(t *testing.T) {
	suited := MustParseHole("KdQd")
	if !suited.Suited() {
		t.Error("KdQd should be suited")
	}
	offsuit := MustParseHole("Kd Qh")
	if offsuit.Suited() {
		t.Error("KdQh should be offsuit")
	}
}

func TestAllocationCards(t *testing.T) {
	alloc := Allocation{
		MustParseHole("9s9h"),
		MustParseHole("AsKd"),
		MustParseHole("2c2d"),
	}
	want := MustParseCards("9s9hAsKd2c2d")
	if !cardsEqual(alloc.Cards(), want) {
		t.Errorf("Cards() = %v, want %v", alloc.Cards(), want)
	}
}
