package decide

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/threeboard/internal/deck"
)

func TestPairHunterShovesWithPair(t *testing.T) {
	round := roundWith()
	round.Paired = true

	var h History
	d := PairHunter{}.Decide(Request{
		Street: PreFlop,
		Boards: [deck.NumBoards]Board{
			{Legal: facing, MyPip: 1, OppPip: 2, MinRaise: 4, MaxRaise: 40},
			{Legal: facing, MyPip: 1, OppPip: 2, MinRaise: 4, MaxRaise: 40},
			{Legal: facing, MyPip: 1, OppPip: 2, MinRaise: 4, MaxRaise: 40},
		},
		Stack: 60,
	}, round, &h)

	assert.Equal(t, RaiseAction(40), d.Actions[0])
	assert.Equal(t, CallAction, d.Actions[1])
	assert.Equal(t, CallAction, d.Actions[2])
	assert.Equal(t, [deck.NumBoards]int{39, 1, 1}, d.Costs)
	assert.Equal(t, 41, d.NetCost)
}

func TestPairHunterChecksWhenBroke(t *testing.T) {
	round := roundWith()
	round.Paired = true

	var h History
	d := PairHunter{}.Decide(single(Flop, 5, Board{Legal: betting, MinRaise: 2, MaxRaise: 40}), round, &h)
	assert.Equal(t, CheckAction, d.Actions[0])
	assert.Equal(t, 0, d.NetCost)
}

func TestPairHunterWithoutPair(t *testing.T) {
	round := roundWith()

	var h History
	d := PairHunter{}.Decide(Request{
		Street: Turn,
		Boards: [deck.NumBoards]Board{
			{Legal: betting, Pot: 10, MinRaise: 2, MaxRaise: 40},
			{Legal: facing, OppPip: 6, Pot: 10, MinRaise: 12, MaxRaise: 40},
			{Legal: facing, OppPip: 6, Pot: 10, MinRaise: 12, MaxRaise: 40},
		},
		Stack: 10,
	}, round, &h)

	assert.Equal(t, CheckAction, d.Actions[0])
	assert.Equal(t, CallAction, d.Actions[1])
	assert.Equal(t, FoldAction, d.Actions[2])
	assert.Equal(t, 6, d.NetCost)
	assert.Equal(t, 1, h.Raises(1))
}

func TestPairHunterAssignsAndSkipsTerminal(t *testing.T) {
	round := roundWith()

	var h History
	d := PairHunter{}.Decide(Request{
		Boards: [deck.NumBoards]Board{
			{Legal: NewActionSet(Assign)},
			terminal(),
			{Legal: NewActionSet(Assign)},
		},
	}, round, &h)

	assert.Equal(t, AssignAction(round.Allocation[0]), d.Actions[0])
	assert.Equal(t, CheckAction, d.Actions[1])
	assert.Equal(t, AssignAction(round.Allocation[2]), d.Actions[2])
}
