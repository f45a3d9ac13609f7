package padring_test

import (
	"fmt"

	"github.com/slotforge/slotforge/pkg/geometry"
	"github.com/slotforge/slotforge/pkg/padring"
)

func ExampleBuild() {
	slot, _ := geometry.SlotByName("0p5x0p5")
	ring, _ := padring.Build(slot, padring.DensityMax, padring.SelectionTop)

	fmt.Println("total:", ring.TotalPads())
	fmt.Println("signal:", ring.Budget.Signal, "power:", ring.Budget.Power)
	for _, pad := range ring.Pads[padring.North][:4] {
		fmt.Println(pad)
	}
	// Output:
	// total: 15
	// signal: 11 power: 2
	// clock
	// reset
	// signal[10]
	// signal[9]
}

func ExampleTargets() {
	slot, _ := geometry.SlotByName("1x1")
	total, targets := padring.Targets(slot, padring.DensityDefault, padring.SelectionAll)

	fmt.Println("total:", total)
	for _, e := range padring.Edges {
		fmt.Println(e, targets[e])
	}
	// Output:
	// total: 74
	// south 15
	// east 21
	// north 15
	// west 23
}

func ExampleSequence() {
	pads, cur := padring.Sequence(padring.EdgeSpec{Signal: 6, Power: 2, Host: true}, padring.Cursor{})

	fmt.Println(pads)
	fmt.Printf("next signal index: %d\n", cur.Signal)
	// Output:
	// [clock reset signal[0] negative_supply[0] signal[1] positive_supply[0] signal[2] signal[3]]
	// next signal index: 4
}
