package docs

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// RenderMarkdown produces the SLOTS.md content: a dimensions table, an IO
// breakdown table, notes, and a generation footer.
func RenderMarkdown(doc *Doc) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Slot Sizes\n")
	buf.WriteString("\n")
	buf.WriteString("This document describes the available die slots and their usable area.\n")
	buf.WriteString("\n")
	buf.WriteString("## Slot Dimensions\n")
	buf.WriteString("\n")
	buf.WriteString("| Slot | Die Size | Usable Area | Utilization | Total IOs |\n")
	buf.WriteString("|------|----------|-------------|-------------|-----------|\n")
	for _, s := range doc.Slots {
		fmt.Fprintf(&buf, "| %s | %.2fmm × %.2fmm | %.2fmm × %.2fmm (%.2fmm²) | %.0f%% | %d |\n",
			s.Label,
			s.Die.WidthMM, s.Die.HeightMM,
			s.Core.WidthMM, s.Core.HeightMM, s.Core.AreaMM2,
			s.Utilization, s.IO.Total)
	}

	buf.WriteString("\n")
	buf.WriteString("## IO Breakdown\n")
	buf.WriteString("\n")
	buf.WriteString("| Slot | Signal | Inputs | Analog | Power Pairs |\n")
	buf.WriteString("|------|--------|--------|--------|-------------|\n")
	for _, s := range doc.Slots {
		fmt.Fprintf(&buf, "| %s | %d | %d | %d | %d |\n",
			s.Label, s.IO.Signal, s.IO.Inputs, s.IO.Analog, s.IO.PowerPairs)
	}

	buf.WriteString("\n")
	buf.WriteString("## Notes\n")
	buf.WriteString("\n")
	buf.WriteString("- **Die Size**: total slot dimensions including the seal ring (26µm per side)\n")
	buf.WriteString("- **Usable Area**: core rectangle where standard cells can be placed (inside the pad ring)\n")
	buf.WriteString("- **Utilization**: ratio of usable area to total die area\n")
	buf.WriteString("- **Power Pairs**: each pair is one positive and one negative supply pad\n")
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "*Generated: %s*\n", doc.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"))

	return buf.Bytes()
}

// WriteMarkdown writes the SLOTS.md content to w.
func WriteMarkdown(doc *Doc, w io.Writer) error {
	_, err := w.Write(RenderMarkdown(doc))
	return err
}

// ExportMarkdown writes the SLOTS.md content to a file at path.
func ExportMarkdown(doc *Doc, path string) error {
	if err := os.WriteFile(path, RenderMarkdown(doc), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
