// Package geometry defines the die catalog and the physical constants of
// the pad ring: the four slot sizes the platform manufactures, their core
// rectangles, and the per-slot IO limits compiled into the platform RTL.
package geometry

import (
	"errors"
	"fmt"
)

// Physical constants, micrometers.
const (
	// PadPitch is the center-to-center spacing of adjacent IO pad cells.
	PadPitch = 75.0
	// PadHeight is the depth of an IO pad cell measured into the die.
	PadHeight = 350.0
	// CornerCell is the side length of the square cell on each die corner.
	CornerCell = 355.0
	// SealRing is the width of the seal ring around the die perimeter.
	SealRing = 26.0

	// CoreMargin is the die-edge-to-core distance on edges that carry pads.
	CoreMargin = 442
	// CoreMarginNoIO is the die-edge-to-core distance on padless edges.
	CoreMarginNoIO = 130
)

// Rect is an axis-aligned rectangle in micrometers. X grows east, Y grows
// north; (X1, Y1) is the south-west corner.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Width returns the horizontal extent.
func (r Rect) Width() int { return r.X2 - r.X1 }

// Height returns the vertical extent.
func (r Rect) Height() int { return r.Y2 - r.Y1 }

// Area returns the rectangle area in square micrometers.
func (r Rect) Area() int { return r.Width() * r.Height() }

// DefaultMix is the per-category pad mix of a slot's hand-maintained
// reference configuration. Clock and reset are not part of the mix; the
// reference total is the mix plus those two.
type DefaultMix struct {
	Positive int
	Negative int
	Input    int
	Signal   int
	Analog   int
}

// Total returns the full pad count of the reference configuration,
// including clock and reset.
func (m DefaultMix) Total() int {
	return m.Positive + m.Negative + m.Input + m.Signal + m.Analog + 2
}

// Slot is one manufacturable die size together with the IO limits the
// platform RTL compiles in for that size.
type Slot struct {
	// Name is the catalog key, e.g. "0p5x1".
	Name string
	// Tag is the build flag identifying the slot, e.g. "SLOT_0P5X1".
	Tag string

	DieWidth  int
	DieHeight int
	// Core is the core area of the reference configuration, which carries
	// pads on all four edges.
	Core Rect

	// DefaultTotal is the pad count of the reference configuration.
	DefaultTotal int
	// SignalMax is the largest signal pad count the RTL can host. Clock and
	// reset ride on two extra signal positions above it.
	SignalMax int
	// PositiveDefault and NegativeDefault are the supply pad counts the RTL
	// instantiates when no override is given.
	PositiveDefault int
	NegativeDefault int
	// RailLimit is the physical ceiling per supply rail; the combined power
	// ceiling is twice this.
	RailLimit int
	// Mix is the pad mix of the reference configuration.
	Mix DefaultMix
}

// DieRect returns the die outline anchored at the origin.
func (s Slot) DieRect() Rect { return Rect{0, 0, s.DieWidth, s.DieHeight} }

// Slots is the die catalog in generation order.
var Slots = []Slot{
	{
		Name:            "1x1",
		Tag:             "SLOT_1X1",
		DieWidth:        3932,
		DieHeight:       5122,
		Core:            Rect{442, 442, 3490, 4680},
		DefaultTotal:    74,
		SignalMax:       168,
		PositiveDefault: 8,
		NegativeDefault: 10,
		RailLimit:       15,
		Mix:             DefaultMix{Positive: 8, Negative: 10, Input: 12, Signal: 40, Analog: 2},
	},
	{
		Name:            "0p5x1",
		Tag:             "SLOT_0P5X1",
		DieWidth:        1936,
		DieHeight:       5122,
		Core:            Rect{442, 442, 1494, 4680},
		DefaultTotal:    72,
		SignalMax:       122,
		PositiveDefault: 8,
		NegativeDefault: 8,
		RailLimit:       11,
		Mix:             DefaultMix{Positive: 8, Negative: 8, Input: 4, Signal: 44, Analog: 6},
	},
	{
		Name:            "1x0p5",
		Tag:             "SLOT_1X0P5",
		DieWidth:        3932,
		DieHeight:       2531,
		Core:            Rect{442, 442, 3490, 2089},
		DefaultTotal:    72,
		SignalMax:       108,
		PositiveDefault: 8,
		NegativeDefault: 8,
		RailLimit:       10,
		Mix:             DefaultMix{Positive: 8, Negative: 8, Input: 4, Signal: 46, Analog: 4},
	},
	{
		Name:            "0p5x0p5",
		Tag:             "SLOT_0P5X0P5",
		DieWidth:        1936,
		DieHeight:       2531,
		Core:            Rect{442, 442, 1494, 2089},
		DefaultTotal:    56,
		SignalMax:       62,
		PositiveDefault: 4,
		NegativeDefault: 4,
		RailLimit:       6,
		Mix:             DefaultMix{Positive: 4, Negative: 4, Input: 4, Signal: 38, Analog: 4},
	},
}

// Reference returns the full-size 1x1 slot. The spacing and count density
// modes measure every slot against it.
func Reference() Slot { return Slots[0] }

// ErrUnknownSlot is returned by [SlotByName] when the name is not in the
// catalog.
var ErrUnknownSlot = errors.New("unknown slot")

// SlotByName looks up a catalog entry by name.
func SlotByName(name string) (Slot, error) {
	for _, s := range Slots {
		if s.Name == name {
			return s, nil
		}
	}
	return Slot{}, fmt.Errorf("%w: %q", ErrUnknownSlot, name)
}

// Names returns the catalog slot names in generation order.
func Names() []string {
	names := make([]string, len(Slots))
	for i, s := range Slots {
		names[i] = s.Name
	}
	return names
}
