// Package strength holds the precomputed win-probability table keyed by
// canonical hole signature.
package strength

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lox/threeboard/internal/deck"
)

var (
	// ErrLookupMiss is returned when the table has no entry for a hole
	ErrLookupMiss = errors.New("strength: no entry for hole")
	// ErrInvalidTable is returned for malformed keys or out-of-range values
	ErrInvalidTable = errors.New("strength: invalid table")
)

// NumKeys is the number of distinct canonical holes: 13 pairs, 78 suited, 78 offsuit
const NumKeys = 169

// Key is a canonical hole signature: high rank, low rank, then 's' or 'o'.
// Pocket pairs are always offsuit ("22o").
type Key string

// KeyOf returns the canonical key of a hole. Card order and the concrete
// suits do not matter, only the ranks and whether the suits match.
func KeyOf(h deck.Hole) Key {
	high, low := h[0].Rank, h[1].Rank
	if low > high {
		high, low = low, high
	}
	return makeKey(high, low, h.Suited())
}

func makeKey(high, low deck.Rank, suited bool) Key {
	flag := "o"
	if suited {
		flag = "s"
	}
	return Key(high.String() + low.String() + flag)
}

// ParseKey validates a key read from an external table
func ParseKey(s string) (Key, error) {
	if len(s) != 3 {
		return "", fmt.Errorf("%w: key %q must be 3 characters", ErrInvalidTable, s)
	}
	high, err := deck.ParseRank(s[0])
	if err != nil {
		return "", fmt.Errorf("%w: key %q: %v", ErrInvalidTable, s, err)
	}
	low, err := deck.ParseRank(s[1])
	if err != nil {
		return "", fmt.Errorf("%w: key %q: %v", ErrInvalidTable, s, err)
	}
	if low > high {
		return "", fmt.Errorf("%w: key %q ranks out of order", ErrInvalidTable, s)
	}
	switch s[2] {
	case 'o':
	case 's':
		if high == low {
			return "", fmt.Errorf("%w: pair %q cannot be suited", ErrInvalidTable, s)
		}
	default:
		return "", fmt.Errorf("%w: key %q must end in 's' or 'o'", ErrInvalidTable, s)
	}
	return makeKey(high, low, s[2] == 's'), nil
}

// Ranks returns the high and low rank of the key and whether it is suited
func (k Key) Ranks() (high, low deck.Rank, suited bool) {
	high, _ = deck.ParseRank(k[0])
	low, _ = deck.ParseRank(k[1])
	return high, low, k[2] == 's'
}

// Hole returns a representative hole for the key
func (k Key) Hole() deck.Hole {
	high, low, suited := k.Ranks()
	lowSuit := deck.Hearts
	if suited {
		lowSuit = deck.Spades
	}
	return deck.Hole{deck.NewCard(deck.Spades, high), deck.NewCard(lowSuit, low)}
}

// Keys returns every canonical key, strongest ranks first: for each high
// rank from A down, the pair, then suited and offsuit hands by low rank.
func Keys() []Key {
	keys := make([]Key, 0, NumKeys)
	for high := deck.Ace; high >= deck.Two; high-- {
		for low := high; low >= deck.Two; low-- {
			if high == low {
				keys = append(keys, makeKey(high, low, false))
				continue
			}
			keys = append(keys, makeKey(high, low, true), makeKey(high, low, false))
		}
	}
	return keys
}

// Table is an immutable mapping from canonical key to win probability
type Table struct {
	entries map[Key]float64
}

// New builds a table from entries. Values must lie in [0,1].
func New(entries map[Key]float64) (*Table, error) {
	t := &Table{entries: make(map[Key]float64, len(entries))}
	for k, v := range entries {
		if _, err := ParseKey(string(k)); err != nil {
			return nil, err
		}
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("%w: %s has probability %v outside [0,1]", ErrInvalidTable, k, v)
		}
		t.entries[k] = v
	}
	return t, nil
}

// Lookup returns the win probability of a hole
func (t *Table) Lookup(h deck.Hole) (float64, error) {
	key := KeyOf(h)
	v, ok := t.entries[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s (%s)", ErrLookupMiss, key, h)
	}
	return v, nil
}

// Get returns the probability stored for a key
func (t *Table) Get(k Key) (float64, bool) {
	v, ok := t.entries[k]
	return v, ok
}

// Len returns the number of entries
func (t *Table) Len() int {
	return len(t.entries)
}

// Complete reports whether every canonical key is present
func (t *Table) Complete() bool {
	return len(t.Missing()) == 0
}

// Missing lists canonical keys absent from the table
func (t *Table) Missing() []Key {
	var missing []Key
	for _, k := range Keys() {
		if _, ok := t.entries[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

// Ranked returns the keys ordered by descending probability, ties broken
// by canonical order.
func (t *Table) Ranked() []Key {
	order := make(map[Key]int, NumKeys)
	for i, k := range Keys() {
		order[k] = i
	}
	keys := make([]Key, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		vi, vj := t.entries[keys[i]], t.entries[keys[j]]
		if vi != vj {
			return vi > vj
		}
		return order[keys[i]] < order[keys[j]]
	})
	return keys
}
