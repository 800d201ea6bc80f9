package decide

// PairHunter shoves every board when the allocation holds a pocket pair
// and otherwise check-calls.
type PairHunter struct{}

// Decide answers one request
func (PairHunter) Decide(req Request, round Round, history *History) Decision {
	var d Decision
	netCost := 0
	for i, board := range req.Boards {
		var a Action
		var cost int
		continueCost := board.ContinueCost()
		available := req.Stack - netCost

		switch {
		case board.Legal.Has(Assign):
			a = AssignAction(round.Allocation[i])
		case board.Terminal:
			a = CheckAction
		case board.Legal.Has(Raise) && round.Paired:
			history.Observe(i, continueCost > 0)
			maxCost := board.MaxRaise - board.MyPip
			switch {
			case maxCost <= available:
				a, cost = RaiseAction(board.MaxRaise), maxCost
			case board.Legal.Has(Call) && continueCost <= available:
				a, cost = CallAction, continueCost
			case board.Legal.Has(Check):
				a = CheckAction
			default:
				a = FoldAction
			}
		case board.Legal.Has(Check):
			history.Observe(i, continueCost > 0)
			a = CheckAction
		default:
			history.Observe(i, continueCost > 0)
			if board.Legal.Has(Call) && continueCost <= available {
				a, cost = CallAction, continueCost
			} else {
				a = FoldAction
			}
		}

		d.Actions[i] = a
		d.Costs[i] = cost
		netCost += cost
	}
	d.NetCost = netCost
	return d
}
