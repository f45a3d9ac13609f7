// Package artifact models the floorplan configuration files the generator
// emits: building them from computed pad rings, rendering the commented
// YAML layout byte for byte, parsing files back, and copying the
// hand-maintained reference configurations.
package artifact

import (
	"fmt"

	"github.com/slotforge/slotforge/pkg/geometry"
	"github.com/slotforge/slotforge/pkg/padring"
)

// SizingAbsolute is the only sizing mode the downstream flow accepts.
const SizingAbsolute = "absolute"

// PDNPartial is the power script reference emitted for partial rings. The
// value is an opaque pass-through; nothing here interprets it.
const PDNPartial = "dir::pdn_partial.tcl"

// Artifact is one floorplan configuration.
type Artifact struct {
	// Slot, Density and Selection identify the triple. [Parse] leaves them
	// empty: identity lives in the filename, not the file body.
	Slot      string
	Density   padring.Density
	Selection padring.Selection

	// Total, Signal and Power are the header counts: the resolved pad
	// total and its budget split.
	Total  int
	Signal int
	Power  int

	SizingMode string
	DieArea    geometry.Rect
	CoreArea   geometry.Rect
	// BuildFlags is ordered: slot tag, mode flag, then overrides.
	BuildFlags []string
	// PDNScript references the partial-ring power script; empty when all
	// four edges carry pads.
	PDNScript string
	Pads      map[padring.Edge][]padring.Pad
}

// FileName returns the artifact file name for a triple.
func FileName(slot string, d padring.Density, sel padring.Selection) string {
	return fmt.Sprintf("slot_%s_%s_%s.yaml", slot, d, sel)
}

// FromRing derives the configuration artifact for a computed ring.
func FromRing(ring *padring.Ring) *Artifact {
	a := &Artifact{
		Slot:       ring.Slot.Name,
		Density:    ring.Density,
		Selection:  ring.Selection,
		Total:      ring.Budget.Total,
		Signal:     ring.Budget.Signal,
		Power:      ring.Budget.Power,
		SizingMode: SizingAbsolute,
		DieArea:    ring.Slot.DieRect(),
		CoreArea:   coreArea(ring),
		BuildFlags: buildFlags(ring),
		Pads:       ring.Pads,
	}
	if ring.Selection != padring.SelectionAll {
		a.PDNScript = PDNPartial
	}
	return a
}

// TotalPads returns the number of pad instances across all edges.
func (a *Artifact) TotalPads() int {
	n := 0
	for _, pads := range a.Pads {
		n += len(pads)
	}
	return n
}

// CategoryCounts tallies the pads by category across all edges.
func (a *Artifact) CategoryCounts() map[padring.Category]int {
	counts := make(map[padring.Category]int)
	for _, pads := range a.Pads {
		for _, p := range pads {
			counts[p.Category()]++
		}
	}
	return counts
}

// coreArea derives the core rectangle from edge activity: edges with pads
// keep the reference margin, padless edges shrink to the minimal one. The
// default density keeps the catalog rectangle.
func coreArea(ring *padring.Ring) geometry.Rect {
	if ring.Density == padring.DensityDefault {
		return ring.Slot.Core
	}

	margin := func(e padring.Edge) int {
		if ring.Selection.Contains(e) {
			return geometry.CoreMargin
		}
		return geometry.CoreMarginNoIO
	}
	return geometry.Rect{
		X1: margin(padring.West),
		Y1: margin(padring.South),
		X2: ring.Slot.DieWidth - margin(padring.East),
		Y2: ring.Slot.DieHeight - margin(padring.North),
	}
}

// buildFlags assembles the ordered flag list: slot tag, extended IO mode,
// then whichever realized counts differ from the RTL defaults.
func buildFlags(ring *padring.Ring) []string {
	flags := []string{ring.Slot.Tag}
	if ring.Density == padring.DensityDefault {
		return flags
	}

	flags = append(flags, "MAX_IO_CONFIG")
	if ring.Budget.Signal != ring.Slot.SignalMax {
		flags = append(flags, fmt.Sprintf("SIGNAL_OVERRIDE=%d", ring.Budget.Signal))
	}
	if ring.Final.Positive != ring.Slot.PositiveDefault {
		flags = append(flags, fmt.Sprintf("POSITIVE_SUPPLY_OVERRIDE=%d", ring.Final.Positive))
	}
	if ring.Final.Negative != ring.Slot.NegativeDefault {
		flags = append(flags, fmt.Sprintf("NEGATIVE_SUPPLY_OVERRIDE=%d", ring.Final.Negative))
	}
	return flags
}
