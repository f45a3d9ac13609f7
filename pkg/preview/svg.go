package preview

import (
	"bytes"
	"fmt"
	"html"

	"github.com/slotforge/slotforge/pkg/artifact"
	"github.com/slotforge/slotforge/pkg/geometry"
)

const titleMargin = 28.0

// RenderSVG renders the floorplan as standalone SVG markup.
func RenderSVG(a *artifact.Artifact, opts ...Option) []byte {
	r := newRenderer(opts...)
	s := buildScene(a)

	width := s.W * r.scale
	height := s.H * r.scale
	top := 0.0
	if r.title != "" {
		top = titleMargin
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height+top, width, height+top)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#FFFFFF"/>`+"\n",
		width, height+top)

	if r.title != "" {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="19" text-anchor="middle" font-family="monospace" font-size="13">%s</text>`+"\n",
			width/2, html.EscapeString(r.title))
	}

	fmt.Fprintf(&buf, `  <g transform="translate(0, %.1f)">`+"\n", top)

	die := geometry.Rect{X1: 0, Y1: 0, X2: int(s.W), Y2: int(s.H)}
	svgRect(&buf, s, die, r.scale, "#F8F9FA", "#212529")
	svgRect(&buf, s, s.Seal, r.scale, "none", "#ADB5BD")
	for _, c := range s.Corners {
		svgRect(&buf, s, c, r.scale, "#DEE2E6", "none")
	}
	svgRect(&buf, s, s.Core, r.scale, "#E7F5FF", "#1971C2")

	for _, t := range s.Ticks {
		fmt.Fprintf(&buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			t.X1*r.scale, (s.H-t.Y2)*r.scale,
			(t.X2-t.X1)*r.scale, (t.Y2-t.Y1)*r.scale,
			categoryColors[t.Category])
	}

	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// svgRect draws one die-coordinate rectangle, flipping y to SVG space.
func svgRect(buf *bytes.Buffer, s scene, rect geometry.Rect, scale float64, fill, stroke string) {
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s"/>`+"\n",
		float64(rect.X1)*scale, (s.H-float64(rect.Y2))*scale,
		float64(rect.Width())*scale, float64(rect.Height())*scale,
		fill, stroke)
}
