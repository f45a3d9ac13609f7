package padring

import (
	"fmt"
	"strings"
)

// Pad is one named pad instance on an edge. Indexed names carry a global,
// per-category index that grows monotonically around the perimeter.
type Pad string

// The two fixed pads. They ride on signal positions and sit at the front of
// the hosting edge.
const (
	PadClock Pad = "clock"
	PadReset Pad = "reset"
)

// SignalPad returns the i-th signal pad name.
func SignalPad(i int) Pad { return Pad(fmt.Sprintf("signal[%d]", i)) }

// PositivePad returns the i-th positive supply pad name.
func PositivePad(i int) Pad { return Pad(fmt.Sprintf("positive_supply[%d]", i)) }

// NegativePad returns the i-th negative supply pad name.
func NegativePad(i int) Pad { return Pad(fmt.Sprintf("negative_supply[%d]", i)) }

// Category groups pad names for documentation and previews.
type Category int

// Pad categories. Input and analog pads appear only in the hand-maintained
// reference configurations; generation emits the other three.
const (
	CategorySignal Category = iota
	CategoryInput
	CategoryAnalog
	CategoryPositive
	CategoryNegative
	CategoryOther
)

// Category classifies the pad by its name. Clock and reset count as inputs.
func (p Pad) Category() Category {
	name := string(p)
	switch {
	case strings.HasPrefix(name, "signal["):
		return CategorySignal
	case p == PadClock, p == PadReset, strings.HasPrefix(name, "input["):
		return CategoryInput
	case strings.HasPrefix(name, "analog["):
		return CategoryAnalog
	case strings.HasPrefix(name, "positive_supply["):
		return CategoryPositive
	case strings.HasPrefix(name, "negative_supply["):
		return CategoryNegative
	}
	return CategoryOther
}
