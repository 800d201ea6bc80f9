package deck

import rand "math/rand/v2"

// Deck represents a deck of playing cards
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a new standard 52-card deck drawing randomness from rng
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.cards = append(d.cards, FullDeck()...)
	return d
}

// FullDeck returns all 52 cards in suit-major order
func FullDeck() []Card {
	cards := make([]Card, 0, 52)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Remove takes the given cards out of the deck
func (d *Deck) Remove(cards ...Card) {
	kept := d.cards[:0]
	for _, c := range d.cards {
		drop := false
		for _, r := range cards {
			if c == r {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, c)
		}
	}
	d.cards = kept
}

// Sample writes n distinct random cards into dst without disturbing the
// deck order beyond a partial Fisher-Yates pass.
func (d *Deck) Sample(dst []Card) {
	n := len(dst)
	if n > len(d.cards) {
		n = len(d.cards)
	}
	for i := 0; i < n; i++ {
		j := i + d.rng.IntN(len(d.cards)-i)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
		dst[i] = d.cards[i]
	}
}
