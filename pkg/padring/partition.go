package padring

import "github.com/slotforge/slotforge/pkg/geometry"

// powerRatio is the share of the pad budget set aside for supply pads,
// before clamping.
const powerRatio = 0.15

// Budget is the signal/power split of a pad total.
type Budget struct {
	// Total is the pad position count the split was computed from.
	Total int
	// Signal is the signal pad count, clock and reset excluded.
	Signal int
	// Power is the supply pad count. Always even: supplies come in
	// positive/negative pairs.
	Power int
}

// Partition splits a pad total between signal and power pads. Two positions
// are reserved for clock and reset ahead of the split; the power share is
// rounded up to an even count; both sides are then clamped to the slot's
// compiled-in ceilings. Positions freed by a clamp are not rebalanced.
func Partition(total int, slot geometry.Slot) Budget {
	available := max(total-2, 0)

	power := int(float64(available) * powerRatio)
	if power%2 == 1 {
		power++
	}
	signal := available - power

	signal = min(signal, slot.SignalMax)
	power = min(power, 2*slot.RailLimit)

	return Budget{Total: total, Signal: signal, Power: power}
}
