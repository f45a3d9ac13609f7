package padring

import (
	"errors"
	"fmt"
	"slices"

	"github.com/slotforge/slotforge/pkg/geometry"
)

var (
	// ErrUnknownDensity is returned by [ParseDensity] for codes outside the
	// four density modes.
	ErrUnknownDensity = errors.New("unknown density")

	// ErrUnknownSelection is returned by [ParseSelection] for codes outside
	// the seven edge selections.
	ErrUnknownSelection = errors.New("unknown edge selection")

	// ErrInvalidCombo is returned by [ValidateCombo] and [Build] for
	// slot/density/selection combinations the platform never builds.
	ErrInvalidCombo = errors.New("invalid combination")
)

// Edge identifies one side of the die perimeter.
type Edge string

// The four perimeter edges.
const (
	South Edge = "south"
	East  Edge = "east"
	North Edge = "north"
	West  Edge = "west"
)

// Edges lists the perimeter edges in emission order. Pad sequences are
// generated edge by edge in this order, so the global pad indices are
// reproducible.
var Edges = []Edge{South, East, North, West}

// Density selects how aggressively the active edges are populated.
type Density string

// The four density modes.
const (
	// DensityDefault reproduces the hand-maintained reference configuration.
	DensityDefault Density = "def"
	// DensityMax fills every position the edges physically offer.
	DensityMax Density = "max"
	// DensitySpacing matches the pad spacing of the 1x1 reference slot.
	DensitySpacing Density = "spc"
	// DensityCount matches the total pad count of the 1x1 reference slot.
	DensityCount Density = "num"
)

// Densities lists the density modes in generation order.
var Densities = []Density{DensityDefault, DensityMax, DensitySpacing, DensityCount}

// Description returns the human-readable form used in artifact headers.
func (d Density) Description() string {
	switch d {
	case DensityDefault:
		return "Default density"
	case DensityMax:
		return "Maximum density"
	case DensitySpacing:
		return "1x1 spacing"
	case DensityCount:
		return "1x1 pad count"
	}
	return string(d)
}

// ParseDensity maps a density code to its mode.
func ParseDensity(code string) (Density, error) {
	switch d := Density(code); d {
	case DensityDefault, DensityMax, DensitySpacing, DensityCount:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q (must be one of: def, max, spc, num)", ErrUnknownDensity, code)
}

// Selection names a subset of perimeter edges that carry pads. Selections
// are never empty.
type Selection string

// The seven edge selections.
const (
	SelectionAll        Selection = "all"
	SelectionTop        Selection = "top"
	SelectionLeft       Selection = "lft"
	SelectionHorizontal Selection = "hor"
	SelectionVertical   Selection = "ver"
	SelectionNorthwest  Selection = "nwc"
	SelectionSoutheast  Selection = "sec"
)

// Selections lists the edge selections in generation order.
var Selections = []Selection{
	SelectionAll, SelectionTop, SelectionLeft, SelectionHorizontal,
	SelectionVertical, SelectionNorthwest, SelectionSoutheast,
}

var selectionEdges = map[Selection][]Edge{
	SelectionAll:        {South, East, North, West},
	SelectionTop:        {North},
	SelectionLeft:       {West},
	SelectionHorizontal: {South, North},
	SelectionVertical:   {East, West},
	SelectionNorthwest:  {North, West},
	SelectionSoutheast:  {South, East},
}

// Active returns the selection's edges in emission order.
func (s Selection) Active() []Edge {
	return slices.Clone(selectionEdges[s])
}

// Contains reports whether e carries pads under s.
func (s Selection) Contains(e Edge) bool {
	return slices.Contains(selectionEdges[s], e)
}

// Description returns the human-readable form used in artifact headers.
func (s Selection) Description() string {
	switch s {
	case SelectionAll:
		return "All four edges"
	case SelectionTop:
		return "Top (north) edge only"
	case SelectionLeft:
		return "Left (west) edge only"
	case SelectionHorizontal:
		return "Horizontal edges (north + south)"
	case SelectionVertical:
		return "Vertical edges (east + west)"
	case SelectionNorthwest:
		return "Northwest corner (north + west)"
	case SelectionSoutheast:
		return "Southeast corner (south + east)"
	}
	return string(s)
}

// ParseSelection maps a selection code to its value.
func ParseSelection(code string) (Selection, error) {
	switch s := Selection(code); s {
	case SelectionAll, SelectionTop, SelectionLeft, SelectionHorizontal,
		SelectionVertical, SelectionNorthwest, SelectionSoutheast:
		return s, nil
	}
	return "", fmt.Errorf("%w: %q (must be one of: all, top, lft, hor, ver, nwc, sec)", ErrUnknownSelection, code)
}

// ValidateCombo rejects the triples the platform never builds. The default
// density reproduces the reference configuration, which carries pads on all
// four edges, and the 1x1 slot cannot be measured against itself by the
// spacing and count modes.
func ValidateCombo(slot geometry.Slot, d Density, sel Selection) error {
	if d == DensityDefault && sel != SelectionAll {
		return fmt.Errorf("%w: density %s requires selection all", ErrInvalidCombo, d)
	}
	if slot.Name == geometry.Reference().Name && (d == DensitySpacing || d == DensityCount) {
		return fmt.Errorf("%w: density %s measures %s against itself", ErrInvalidCombo, d, slot.Name)
	}
	return nil
}
