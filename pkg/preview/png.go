package preview

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/slotforge/slotforge/pkg/artifact"
	"github.com/slotforge/slotforge/pkg/geometry"
)

const legendHeight = 26.0

// RenderPNG rasterizes the floorplan, adding a category legend strip under
// the die. Output is deterministic for identical artifacts and options.
func RenderPNG(a *artifact.Artifact, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	s := buildScene(a)

	width := s.W * r.scale
	height := s.H * r.scale
	top := 0.0
	if r.title != "" {
		top = titleMargin
	}
	cats := s.categories()
	bottom := 0.0
	if len(cats) > 0 {
		bottom = legendHeight
	}

	ctx := gg.NewContext(int(width+0.5), int(top+height+bottom+0.5))
	ctx.SetHexColor("#FFFFFF")
	ctx.Clear()

	if r.title != "" {
		ctx.SetHexColor("#212529")
		ctx.DrawStringAnchored(r.title, width/2, top/2, 0.5, 0.35)
	}

	rect := func(rc geometry.Rect, fill, stroke string) {
		ctx.DrawRectangle(
			float64(rc.X1)*r.scale,
			top+(s.H-float64(rc.Y2))*r.scale,
			float64(rc.Width())*r.scale,
			float64(rc.Height())*r.scale)
		if fill != "" {
			ctx.SetHexColor(fill)
			if stroke != "" {
				ctx.FillPreserve()
			} else {
				ctx.Fill()
			}
		}
		if stroke != "" {
			ctx.SetHexColor(stroke)
			ctx.SetLineWidth(1)
			ctx.Stroke()
		}
	}

	rect(geometry.Rect{X1: 0, Y1: 0, X2: int(s.W), Y2: int(s.H)}, "#F8F9FA", "#212529")
	rect(s.Seal, "", "#ADB5BD")
	for _, c := range s.Corners {
		rect(c, "#DEE2E6", "")
	}
	rect(s.Core, "#E7F5FF", "#1971C2")

	for _, t := range s.Ticks {
		ctx.DrawRectangle(
			t.X1*r.scale, top+(s.H-t.Y2)*r.scale,
			(t.X2-t.X1)*r.scale, (t.Y2-t.Y1)*r.scale)
		ctx.SetHexColor(categoryColors[t.Category])
		ctx.Fill()
	}

	if len(cats) > 0 {
		y := top + height + legendHeight/2
		x := 8.0
		for _, c := range cats {
			ctx.SetHexColor(categoryColors[c])
			ctx.DrawRectangle(x, y-5, 10, 10)
			ctx.Fill()

			label := categoryNames[c]
			ctx.SetHexColor("#212529")
			ctx.DrawStringAnchored(label, x+14, y, 0, 0.35)
			tw, _ := ctx.MeasureString(label)
			x += 14 + tw + 16
		}
	}

	var buf bytes.Buffer
	if err := ctx.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
