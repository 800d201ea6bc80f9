package deck

import "fmt"

// NumBoards is the number of boards played simultaneously each round
const NumBoards = 3

// HandSize is the number of private cards dealt each round
const HandSize = 2 * NumBoards

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Char returns the engine's single-letter form of the suit
func (s Suit) Char() byte {
	switch s {
	case Spades:
		return 's'
	case Hearts:
		return 'h'
	case Diamonds:
		return 'd'
	case Clubs:
		return 'c'
	default:
		return '?'
	}
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankChars[r-Two])
}

const rankChars = "23456789TJQKA"

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Engine returns the card in the round engine's notation (e.g., "As")
func (c Card) Engine() string {
	return c.Rank.String() + string(c.Suit.Char())
}

// Valid reports whether both rank and suit are in range
func (c Card) Valid() bool {
	return c.Rank >= Two && c.Rank <= Ace && c.Suit >= Spades && c.Suit <= Clubs
}

// Hole is the pair of cards played on a single board
type Hole [2]Card

// String returns both cards separated by a space
func (h Hole) String() string {
	return h[0].String() + " " + h[1].String()
}

// Suited reports whether both cards share a suit
func (h Hole) Suited() bool {
	return h[0].Suit == h[1].Suit
}

// Allocation maps each board to the hole played on it
type Allocation [NumBoards]Hole

// Cards flattens the allocation in board order
func (a Allocation) Cards() []Card {
	cards := make([]Card, 0, HandSize)
	for _, hole := range a {
		cards = append(cards, hole[0], hole[1])
	}
	return cards
}
