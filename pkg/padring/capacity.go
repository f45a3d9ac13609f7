package padring

import "github.com/slotforge/slotforge/pkg/geometry"

// EdgeCapacity is the number of pad positions each edge physically offers.
type EdgeCapacity map[Edge]int

// Capacity returns how many pad cells fit on each edge of the slot. Pads
// occupy the stretch between the two corner cells, less the seal ring on
// both ends, at one cell per pitch. A die too small for any pad yields
// zero, never a negative and never an error.
func Capacity(slot geometry.Slot) EdgeCapacity {
	ns := float64(slot.DieWidth) - 2*geometry.CornerCell - 2*geometry.SealRing
	ew := float64(slot.DieHeight) - 2*geometry.CornerCell - 2*geometry.SealRing

	perNS := max(int(ns/geometry.PadPitch), 0)
	perEW := max(int(ew/geometry.PadPitch), 0)

	return EdgeCapacity{
		North: perNS,
		South: perNS,
		East:  perEW,
		West:  perEW,
	}
}
