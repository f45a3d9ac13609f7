// Package padring computes IO pad rings for the fixed family of die slots.
//
// # Overview
//
// A slot's perimeter is divided into four edges. Each edge fits a fixed
// number of pad cells between its corner cells and the seal ring; how many
// of those positions get populated is policy, expressed as a [Density] mode
// and an edge [Selection]. The package turns a (slot, density, selection)
// triple into an ordered, named pad sequence per edge:
//
//	capacity → per-edge targets → signal/power budget → per-edge allocation
//	→ interleaved pad sequences
//
// # Basic Usage
//
// [Build] runs the whole pipeline for one triple:
//
//	slot, _ := geometry.SlotByName("0p5x1")
//	ring, err := padring.Build(slot, padring.DensityMax, padring.SelectionAll)
//	if err != nil {
//		return err
//	}
//	for _, edge := range padring.Edges {
//		fmt.Println(edge, ring.Pads[edge])
//	}
//
// The intermediate stages ([Capacity], [Targets], [Partition], [Allocate],
// [Sequence]) are exported pure functions, so any stage can be rerun or
// tested in isolation.
//
// # Determinism
//
// Identical inputs produce identical rings, down to the byte. Allocation
// ties are broken by fixed edge orderings (lexicographic for the
// proportional pass, target-descending with name tie-breaks for the
// remainder passes), and edges are sequenced in the fixed emission order
// south, east, north, west, so global pad indices never depend on map
// iteration order.
//
// # Limits
//
// The platform RTL compiles in per-slot ceilings for signal and supply
// pads, and each edge's physical capacity caps everything else. Requests
// that exceed what fits are capped silently, never rejected. The only
// errors are the policy-invalid combinations: the default density off the
// all-edges selection, and the spacing or count modes on the 1x1 slot they
// are measured against.
package padring
