// Package preview renders floorplan configuration artifacts as images: SVG
// and PNG floorplan views and JPEG thumbnails.
//
// The scene is the same in every format: die outline, seal ring inset,
// corner cells, core rectangle, and one tick per pad along each active
// edge, colored by pad category.
package preview

import (
	"github.com/slotforge/slotforge/pkg/artifact"
	"github.com/slotforge/slotforge/pkg/geometry"
	"github.com/slotforge/slotforge/pkg/padring"
)

// DefaultScale converts microns to pixels. The full slot comes out around
// 590×768 px.
const DefaultScale = 0.15

// tick geometry in microns.
const (
	tickHalfWidth = 22.5
	padMargin     = float64(geometry.CornerCell + geometry.SealRing)
)

// Option configures a render. The same options apply to SVG and PNG.
type Option func(*renderer)

type renderer struct {
	scale float64
	title string
}

// WithScale sets the micron-to-pixel factor.
func WithScale(s float64) Option { return func(r *renderer) { r.scale = s } }

// WithTitle draws a heading above the floorplan.
func WithTitle(t string) Option { return func(r *renderer) { r.title = t } }

func newRenderer(opts ...Option) renderer {
	r := renderer{scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

var categoryColors = map[padring.Category]string{
	padring.CategorySignal:   "#4C6EF5",
	padring.CategoryInput:    "#37B24D",
	padring.CategoryAnalog:   "#AE3EC9",
	padring.CategoryPositive: "#F03E3E",
	padring.CategoryNegative: "#343A40",
	padring.CategoryOther:    "#868E96",
}

var categoryNames = map[padring.Category]string{
	padring.CategorySignal:   "signal",
	padring.CategoryInput:    "input",
	padring.CategoryAnalog:   "analog",
	padring.CategoryPositive: "positive",
	padring.CategoryNegative: "negative",
	padring.CategoryOther:    "other",
}

var categoryOrder = []padring.Category{
	padring.CategorySignal, padring.CategoryInput, padring.CategoryAnalog,
	padring.CategoryPositive, padring.CategoryNegative, padring.CategoryOther,
}

// scene holds everything to draw, in die coordinates (microns, y up).
type scene struct {
	W, H    float64
	Seal    geometry.Rect
	Corners [4]geometry.Rect
	Core    geometry.Rect
	Ticks   []tick
}

type tick struct {
	X1, Y1, X2, Y2 float64
	Category       padring.Category
}

func buildScene(a *artifact.Artifact) scene {
	w := a.DieArea.Width()
	h := a.DieArea.Height()
	seal := int(geometry.SealRing)
	corner := int(geometry.CornerCell)

	s := scene{
		W:    float64(w),
		H:    float64(h),
		Seal: geometry.Rect{X1: seal, Y1: seal, X2: w - seal, Y2: h - seal},
		Corners: [4]geometry.Rect{
			{X1: seal, Y1: seal, X2: seal + corner, Y2: seal + corner},
			{X1: w - seal - corner, Y1: seal, X2: w - seal, Y2: seal + corner},
			{X1: seal, Y1: h - seal - corner, X2: seal + corner, Y2: h - seal},
			{X1: w - seal - corner, Y1: h - seal - corner, X2: w - seal, Y2: h - seal},
		},
		Core: a.CoreArea,
	}

	for _, edge := range padring.Edges {
		s.Ticks = append(s.Ticks, edgeTicks(edge, a.Pads[edge], s.W, s.H)...)
	}
	return s
}

// edgeTicks spreads an edge's pads evenly across its usable span, between
// the corner cells.
func edgeTicks(edge padring.Edge, pads []padring.Pad, w, h float64) []tick {
	n := len(pads)
	if n == 0 {
		return nil
	}

	depth := float64(geometry.PadHeight)
	span := w - 2*padMargin
	if edge == padring.East || edge == padring.West {
		span = h - 2*padMargin
	}
	if span <= 0 {
		return nil
	}

	ticks := make([]tick, 0, n)
	for i, p := range pads {
		center := padMargin + span*(float64(i)+0.5)/float64(n)
		var t tick
		switch edge {
		case padring.South:
			t = tick{X1: center - tickHalfWidth, Y1: 0, X2: center + tickHalfWidth, Y2: depth}
		case padring.North:
			t = tick{X1: center - tickHalfWidth, Y1: h - depth, X2: center + tickHalfWidth, Y2: h}
		case padring.West:
			t = tick{X1: 0, Y1: center - tickHalfWidth, X2: depth, Y2: center + tickHalfWidth}
		case padring.East:
			t = tick{X1: w - depth, Y1: center - tickHalfWidth, X2: w, Y2: center + tickHalfWidth}
		}
		t.Category = p.Category()
		ticks = append(ticks, t)
	}
	return ticks
}

// categories returns the distinct tick categories in display order.
func (s scene) categories() []padring.Category {
	present := make(map[padring.Category]bool)
	for _, t := range s.Ticks {
		present[t.Category] = true
	}
	var out []padring.Category
	for _, c := range categoryOrder {
		if present[c] {
			out = append(out, c)
		}
	}
	return out
}
