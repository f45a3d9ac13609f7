package padring

import (
	"fmt"

	"github.com/slotforge/slotforge/pkg/geometry"
)

// Ring is the fully computed pad ring for one slot/density/selection
// triple.
type Ring struct {
	Slot      geometry.Slot
	Density   Density
	Selection Selection

	// Targets is the per-edge pad target the density policy resolved.
	Targets map[Edge]int
	// Budget is the signal/power split of the target total.
	Budget Budget
	// Alloc is the per-edge split of the budget.
	Alloc Allocation
	// Pads holds the ordered pad sequence of every active edge.
	Pads map[Edge][]Pad
	// Final is the cursor after the last edge: the realized pad count per
	// category.
	Final Cursor
}

// Host returns the edge carrying clock and reset: south when active,
// otherwise the first active of west, east, north.
func Host(sel Selection) Edge {
	if sel.Contains(South) {
		return South
	}
	for _, e := range []Edge{West, East, North} {
		if sel.Contains(e) {
			return e
		}
	}
	return South
}

// Build computes the complete ring for a triple. The default density is
// rejected alongside the policy-invalid combinations: default artifacts are
// copies of the hand-maintained reference configuration, never computed.
func Build(slot geometry.Slot, d Density, sel Selection) (*Ring, error) {
	if err := ValidateCombo(slot, d, sel); err != nil {
		return nil, err
	}
	if d == DensityDefault {
		return nil, fmt.Errorf("%w: the default density copies the reference configuration", ErrInvalidCombo)
	}

	total, targets := Targets(slot, d, sel)
	budget := Partition(total, slot)
	alloc := Allocate(targets, budget)

	host := Host(sel)
	pads := make(map[Edge][]Pad, len(targets))
	var cur Cursor
	for _, e := range Edges {
		if !sel.Contains(e) {
			continue
		}
		pads[e], cur = Sequence(EdgeSpec{
			Signal:  alloc.Signal[e],
			Power:   alloc.Power[e],
			Host:    e == host,
			Reverse: e == North || e == West,
		}, cur)
	}

	return &Ring{
		Slot:      slot,
		Density:   d,
		Selection: sel,
		Targets:   targets,
		Budget:    budget,
		Alloc:     alloc,
		Pads:      pads,
		Final:     cur,
	}, nil
}

// TotalPads returns the number of pad instances across all edges.
func (r *Ring) TotalPads() int {
	n := 0
	for _, pads := range r.Pads {
		n += len(pads)
	}
	return n
}
