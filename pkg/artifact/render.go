package artifact

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/slotforge/slotforge/pkg/padring"
)

// Render produces the artifact's on-disk form. The layout is stable down to
// the byte: the downstream flow diffs regenerated configurations against
// checked-in ones.
func Render(a *Artifact) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s, %s\n", a.Density.Description(), a.Selection.Description())
	fmt.Fprintf(&buf, "# Slot: %s, Density: %s, Edges: %s\n", a.Slot, a.Density, a.Selection)
	fmt.Fprintf(&buf, "# Total pads: %d (signal: %d, power: %d)\n", a.Total, a.Signal, a.Power)
	fmt.Fprintf(&buf, "#\n")
	fmt.Fprintf(&buf, "# Floorplanning\n")
	fmt.Fprintf(&buf, "sizing_mode: %s\n", a.SizingMode)
	fmt.Fprintf(&buf, "die_area: [%d, %d, %d, %d]\n", a.DieArea.X1, a.DieArea.Y1, a.DieArea.X2, a.DieArea.Y2)
	fmt.Fprintf(&buf, "core_area: [%d, %d, %d, %d]\n", a.CoreArea.X1, a.CoreArea.Y1, a.CoreArea.X2, a.CoreArea.Y2)
	fmt.Fprintf(&buf, "\n")
	fmt.Fprintf(&buf, "build_flags: [%s]\n", strings.Join(a.BuildFlags, ", "))

	if a.PDNScript != "" {
		fmt.Fprintf(&buf, "\n")
		fmt.Fprintf(&buf, "# Power grid configuration for partial pad rings\n")
		fmt.Fprintf(&buf, "# Ring segments on padless edges must survive; stripes bond ring to pads\n")
		fmt.Fprintf(&buf, "pdn_script: %s\n", a.PDNScript)
	}

	fmt.Fprintf(&buf, "\n")
	fmt.Fprintf(&buf, "# Pad instances for the pad ring\n")
	for _, edge := range padring.Edges {
		pads := a.Pads[edge]
		if len(pads) == 0 {
			fmt.Fprintf(&buf, "pads_%s: []\n\n", edge)
			continue
		}
		fmt.Fprintf(&buf, "pads_%s: [\n", edge)
		for i, p := range pads {
			comma := ","
			if i == len(pads)-1 {
				comma = ""
			}
			if strings.ContainsRune(string(p), '[') {
				fmt.Fprintf(&buf, "    %q%s\n", string(p), comma)
			} else {
				fmt.Fprintf(&buf, "    %s%s\n", p, comma)
			}
		}
		fmt.Fprintf(&buf, "]\n\n")
	}

	return buf.Bytes()
}

// WriteFile renders the artifact into dir under its canonical file name and
// returns the written path.
func WriteFile(a *Artifact, dir string) (string, error) {
	path := filepath.Join(dir, FileName(a.Slot, a.Density, a.Selection))
	if err := os.WriteFile(path, Render(a), 0644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}
	return path, nil
}
