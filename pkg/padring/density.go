package padring

import (
	"slices"

	"github.com/slotforge/slotforge/pkg/geometry"
)

// Targets resolves the per-edge pad targets for a slot under the given
// density and selection, along with their sum. Only active edges appear in
// the map; inactive edges are absent, not zero.
func Targets(slot geometry.Slot, d Density, sel Selection) (int, map[Edge]int) {
	caps := Capacity(slot)
	active := sel.Active()
	targets := make(map[Edge]int, len(active))

	switch d {
	case DensityMax:
		for _, e := range active {
			targets[e] = caps[e]
		}
	case DensitySpacing:
		ref := Capacity(geometry.Reference())
		for _, e := range active {
			targets[e] = min(caps[e], ref[e])
		}
	case DensityDefault:
		distribute(slot.DefaultTotal, caps, active, targets)
	case DensityCount:
		distribute(geometry.Reference().DefaultTotal, caps, active, targets)
	}

	total := 0
	for _, n := range targets {
		total += n
	}
	return total, targets
}

// distribute spreads want pad positions across the active edges in
// proportion to their capacity share. Shares are floored; the last edge in
// lexicographic order absorbs the rounding remainder, capped at its
// capacity like every other edge. The remainder-to-last rule is part of the
// artifact contract.
func distribute(want int, caps EdgeCapacity, active []Edge, targets map[Edge]int) {
	totalCap := 0
	for _, e := range active {
		totalCap += caps[e]
	}
	if totalCap == 0 {
		for _, e := range active {
			targets[e] = 0
		}
		return
	}
	want = min(want, totalCap)

	order := slices.Clone(active)
	slices.Sort(order)

	remaining := want
	for i, e := range order {
		if i == len(order)-1 {
			targets[e] = min(remaining, caps[e])
			break
		}
		ratio := float64(caps[e]) / float64(totalCap)
		targets[e] = min(int(float64(want)*ratio), caps[e])
		remaining -= targets[e]
	}
}
