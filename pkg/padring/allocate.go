package padring

import (
	"cmp"
	"slices"
)

// Allocation assigns each active edge its share of the budget. Signal
// counts include the two clock/reset positions.
type Allocation struct {
	Signal map[Edge]int
	Power  map[Edge]int
}

// Allocate distributes the budget across the active edges without exceeding
// any edge's target. The signal positions to place are Budget.Signal plus
// the two clock/reset positions.
//
// Three passes, each over a fixed edge order:
//  1. floored proportional shares, edges in lexicographic order;
//  2. signal positions left over from flooring poured into remaining room,
//     edges by target descending, name ascending on ties;
//  3. leftover power likewise, strictly after signal.
//
// Given targets and budget from [Targets] and [Partition], every position
// finds room: Σ signal == Budget.Signal+2 and Σ power == Budget.Power.
func Allocate(targets map[Edge]int, budget Budget) Allocation {
	total := 0
	for _, t := range targets {
		total += t
	}

	active := make([]Edge, 0, len(targets))
	for e := range targets {
		active = append(active, e)
	}
	slices.Sort(active)

	signalWant := budget.Signal + 2
	powerWant := budget.Power
	sigLeft, powLeft := signalWant, powerWant

	sig := make(map[Edge]int, len(active))
	pow := make(map[Edge]int, len(active))

	for _, e := range active {
		var ratio float64
		if total > 0 {
			ratio = float64(targets[e]) / float64(total)
		}
		s := min(int(float64(signalWant)*ratio), sigLeft, targets[e])
		p := min(int(float64(powerWant)*ratio), powLeft, targets[e]-s)
		sig[e], pow[e] = s, p
		sigLeft -= s
		powLeft -= p
	}

	order := slices.Clone(active)
	slices.SortFunc(order, func(a, b Edge) int {
		if c := cmp.Compare(targets[b], targets[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	for _, e := range order {
		if sigLeft == 0 {
			break
		}
		room := targets[e] - sig[e] - pow[e]
		if room <= 0 {
			continue
		}
		add := min(sigLeft, room)
		sig[e] += add
		sigLeft -= add
	}

	for _, e := range order {
		if powLeft == 0 {
			break
		}
		room := targets[e] - sig[e] - pow[e]
		if room <= 0 {
			continue
		}
		add := min(powLeft, room)
		pow[e] += add
		powLeft -= add
	}

	return Allocation{Signal: sig, Power: pow}
}
