package padring

import (
	"testing"

	"github.com/slotforge/slotforge/pkg/geometry"
)

func TestCapacity(t *testing.T) {
	tests := []struct {
		slot string
		ns   int
		ew   int
	}{
		{"1x1", 42, 58},
		{"0p5x1", 15, 58},
		{"1x0p5", 42, 23},
		{"0p5x0p5", 15, 23},
	}

	for _, tt := range tests {
		t.Run(tt.slot, func(t *testing.T) {
			slot, err := geometry.SlotByName(tt.slot)
			if err != nil {
				t.Fatalf("SlotByName(%q) error: %v", tt.slot, err)
			}
			caps := Capacity(slot)
			if caps[North] != tt.ns || caps[South] != tt.ns {
				t.Errorf("north/south capacity = %d/%d, want %d", caps[North], caps[South], tt.ns)
			}
			if caps[East] != tt.ew || caps[West] != tt.ew {
				t.Errorf("east/west capacity = %d/%d, want %d", caps[East], caps[West], tt.ew)
			}
		})
	}
}

func TestCapacity_TinyDieClampsToZero(t *testing.T) {
	// Narrower than two corner cells plus seal ring: no room on north/south.
	slot := geometry.Slot{Name: "tiny", DieWidth: 500, DieHeight: 900}
	caps := Capacity(slot)

	if caps[North] != 0 || caps[South] != 0 {
		t.Errorf("north/south capacity = %d/%d, want 0", caps[North], caps[South])
	}
	if caps[East] != 1 || caps[West] != 1 {
		t.Errorf("east/west capacity = %d/%d, want 1", caps[East], caps[West])
	}
}

func TestCapacity_MonotonicInDieSize(t *testing.T) {
	small := Capacity(geometry.Slot{DieWidth: 1936, DieHeight: 2531})
	large := Capacity(geometry.Slot{DieWidth: 3932, DieHeight: 5122})

	for _, e := range Edges {
		if large[e] < small[e] {
			t.Errorf("%s: capacity shrank from %d to %d on a larger die", e, small[e], large[e])
		}
	}
}
