package padring

import "slices"

// Cursor carries the global per-category pad indices across edges. After
// the last edge it holds the realized pad count per category.
type Cursor struct {
	Signal   int
	Positive int
	Negative int
}

// EdgeSpec describes one edge's share of the ring ahead of sequencing.
type EdgeSpec struct {
	// Signal is the edge's signal position count. On the host edge it
	// includes the two clock/reset positions.
	Signal int
	// Power is the edge's supply pad count.
	Power int
	// Host marks the edge carrying clock and reset.
	Host bool
	// Reverse flips the emitted order. North and west run counterclockwise;
	// clock and reset stay pinned at the front regardless.
	Reverse bool
}

// Sequence emits one edge's ordered pad list and advances the cursor.
//
// Supply pads are interleaved among the signal pads at a fixed gap of
// signal/(power+1) positions; signals left over from the integer division
// trail after the last supply pad. Supply polarity alternates on the global
// counter Positive+Negative (even → negative, odd → positive), so
// consecutive supplies never repeat a rail, even across edge boundaries.
// Exactly Signal+Power pads are emitted.
func Sequence(spec EdgeSpec, cur Cursor) ([]Pad, Cursor) {
	pads := make([]Pad, 0, spec.Signal+spec.Power)

	signal := spec.Signal
	if spec.Host {
		pads = append(pads, PadClock, PadReset)
		signal = max(signal-2, 0)
	}

	perGap := 0
	if spec.Power > 0 && signal > 0 {
		perGap = signal / (spec.Power + 1)
	}

	sigLeft, powLeft := signal, spec.Power
	for sigLeft > 0 || powLeft > 0 {
		run := min(perGap, sigLeft)
		if powLeft == 0 {
			run = sigLeft
		}
		for i := 0; i < run; i++ {
			pads = append(pads, SignalPad(cur.Signal))
			cur.Signal++
		}
		sigLeft -= run

		if powLeft > 0 {
			if (cur.Positive+cur.Negative)%2 == 0 {
				pads = append(pads, NegativePad(cur.Negative))
				cur.Negative++
			} else {
				pads = append(pads, PositivePad(cur.Positive))
				cur.Positive++
			}
			powLeft--
		}
	}

	if spec.Reverse {
		head := 0
		if spec.Host {
			head = 2
		}
		slices.Reverse(pads[head:])
	}

	return pads, cur
}
