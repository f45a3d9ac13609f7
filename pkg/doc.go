// Package pkg provides the core libraries of the slotforge pad ring generator.
//
// # Overview
//
// Slotforge computes IO pad rings for the die slots a chip platform offers and
// writes them as commented YAML floorplan configurations. The pkg directory is
// organized along that flow:
//
//  1. [geometry] - The die slot catalog (sizes, core rectangles, RTL ceilings)
//  2. [padring] - Ring computation (capacity, density, budget, pad sequence)
//  3. [artifact] - Configuration files (model, renderer, parser, manifest)
//  4. [plan] / [pipeline] - Batch orchestration over the combination grid
//  5. [docs] / [preview] - Outputs derived from generated files
//  6. [cache] - Content-addressed store for rendered previews
//
// # Architecture
//
// The typical data flow through slotforge:
//
//	geometry.Slot + density mode + edge selection
//	         ↓
//	    [padring] package (capacity → targets → budget → sequence)
//	         ↓
//	    [artifact] package (commented YAML, byte-for-byte reproducible)
//	         ↓
//	    [pipeline] package (grid walk, reference copies, run manifest)
//	         ↓
//	    [docs] and [preview] packages (tables, JSON, SVG/PNG renders)
//
// # Quick Start
//
// Compute one ring and render its configuration file:
//
//	import (
//	    "github.com/slotforge/slotforge/pkg/artifact"
//	    "github.com/slotforge/slotforge/pkg/geometry"
//	    "github.com/slotforge/slotforge/pkg/padring"
//	)
//
//	// 1. Pick a slot from the catalog
//	slot, _ := geometry.SlotByName("0p5x1")
//
//	// 2. Compute the ring
//	ring, _ := padring.Build(slot, padring.DensityMax, padring.SelectionAll)
//
//	// 3. Render the YAML configuration
//	data := artifact.Render(artifact.FromRing(ring))
//
// Run the full batch the way the CLI does:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Plan: plan.Default()})
//
// # Main Packages
//
// [geometry] - The manufacturable die sizes with their physical constants (pad
// pitch, corner cells, seal ring) and the per-slot IO ceilings the platform RTL
// compiles in. Everything downstream works from this catalog.
//
// [padring] - The budgeting pipeline: how many pads each edge can host, how
// densely a policy fills them, how the total splits into signal and supply
// pads, and the order pads land on each edge. Identical inputs always produce
// identical rings.
//
// [artifact] - One generated configuration file. Builds the file model from a
// ring, renders the commented YAML layout, parses files back for derived
// outputs, and copies the hand-maintained reference configurations.
//
// [plan] - TOML batch plans narrowing the slot × density × selection grid and
// directing where a run reads references from and writes output to.
//
// [pipeline] - The resolve → generate → manifest flow shared by every entry
// point. Policy-invalid combinations are skipped and counted; per-artifact
// failures are joined and returned alongside the partial result.
//
// [docs] - Slot documentation derived from generated files: die dimensions,
// usable area, utilization, and IO breakdowns exported as JSON and Markdown.
//
// [preview] - Floorplan images: SVG and PNG renders of the die outline, seal
// ring, core area, and pad ticks colored by category, plus JPEG thumbnails.
//
// [cache] - Content-addressed preview cache keyed on artifact bytes and render
// options, with file-backed and no-op implementations.
//
// [buildinfo] - Version metadata stamped into release binaries.
//
// # Common Workflows
//
// Parse a generated file back into its model:
//
//	art, _ := artifact.ParseFile("slots/generated/slot_1x1_max_all.yaml")
//	fmt.Println(art.TotalPads(), art.CategoryCounts())
//
// Render a preview image:
//
//	svg := preview.RenderSVG(art, preview.WithScale(0.15))
//	png, _ := preview.RenderPNG(art, preview.WithTitle("slot_1x1_max_all"))
//
// Summarize a run directory as documentation:
//
//	slots, _ := docs.Load("slots/generated")
//	md := docs.RenderMarkdown(docs.New(slots))
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/padring/...  # Specific package
//	go test -run Example       # Examples only
//
// [geometry]: https://pkg.go.dev/github.com/slotforge/slotforge/pkg/geometry
// [padring]: https://pkg.go.dev/github.com/slotforge/slotforge/pkg/padring
// [artifact]: https://pkg.go.dev/github.com/slotforge/slotforge/pkg/artifact
// [plan]: https://pkg.go.dev/github.com/slotforge/slotforge/pkg/plan
// [pipeline]: https://pkg.go.dev/github.com/slotforge/slotforge/pkg/pipeline
// [docs]: https://pkg.go.dev/github.com/slotforge/slotforge/pkg/docs
// [preview]: https://pkg.go.dev/github.com/slotforge/slotforge/pkg/preview
// [cache]: https://pkg.go.dev/github.com/slotforge/slotforge/pkg/cache
// [buildinfo]: https://pkg.go.dev/github.com/slotforge/slotforge/pkg/buildinfo
package pkg
