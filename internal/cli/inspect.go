package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/slotforge/slotforge/pkg/artifact"
	"github.com/slotforge/slotforge/pkg/padring"
	"github.com/slotforge/slotforge/pkg/plan"
)

// inspectEntry pairs one parsed configuration file with its identity.
type inspectEntry struct {
	Name string
	Path string
	Art  *artifact.Artifact
}

// newInspectCmd creates the inspect command for browsing generated
// configuration files.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [DIR]",
		Short: "Browse generated configuration files",
		Long: `Browse generated configuration files.

On a terminal this opens an interactive list; pick an entry to see its
geometry and pad breakdown. Without a terminal it prints a plain table.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := plan.DefaultDir
			if len(args) == 1 {
				dir = args[0]
			}
			return runInspect(cmd.Context(), dir)
		},
	}
}

func runInspect(ctx context.Context, dir string) error {
	entries, err := loadInspectEntries(dir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		printWarning("No configuration files in %s", dir)
		printNextStep("Generate the catalog first", appName+" generate")
		return nil
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(inspectTable(entries))
		return nil
	}

	p := tea.NewProgram(newArtifactListModel(entries), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	fm, ok := finalModel.(artifactListModel)
	if !ok || fm.Selected == nil {
		printDetail("No selection made")
		return nil
	}

	printNewline()
	printArtifactDetail(fm.Selected)
	return nil
}

// loadInspectEntries parses every slot_*.yaml in dir. Entries come back
// in filename order.
func loadInspectEntries(dir string) ([]inspectEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var entries []inspectEntry
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || !strings.HasPrefix(name, "slot_") || !strings.HasSuffix(name, ".yaml") {
			continue
		}

		path := filepath.Join(dir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		a, err := artifact.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		entries = append(entries, inspectEntry{
			Name: strings.TrimSuffix(name, ".yaml"),
			Path: path,
			Art:  a,
		})
	}
	return entries, nil
}

// padSplit tallies the pad lists: total, signal side (clock, reset, inputs
// and analog included) and supply pads. The header counts do not survive
// parsing, so every consumer of a parsed artifact counts instead.
func padSplit(a *artifact.Artifact) (total, signal, power int) {
	counts := a.CategoryCounts()
	total = a.TotalPads()
	power = counts[padring.CategoryPositive] + counts[padring.CategoryNegative]
	return total, total - power, power
}

// inspectTable renders the plain listing used when stdout is not a
// terminal. Pure ASCII so the columns line up everywhere.
func inspectTable(entries []inspectEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-28s %11s %6s %9s %7s\n", "CONFIGURATION", "DIE (UM)", "PADS", "SIG/PWR", "EDGES")
	for _, e := range entries {
		a := e.Art
		total, signal, power := padSplit(a)
		die := fmt.Sprintf("%dx%d", a.DieArea.X2-a.DieArea.X1, a.DieArea.Y2-a.DieArea.Y1)
		split := fmt.Sprintf("%d/%d", signal, power)
		fmt.Fprintf(&b, "%-28s %11s %6d %9s %7s\n", e.Name, die, total, split, asciiEdgeMask(a.Pads))
	}
	return b.String()
}

// asciiEdgeMask is edgeMask with a plain dash for empty edges.
func asciiEdgeMask(pads map[padring.Edge][]padring.Pad) string {
	return strings.ReplaceAll(edgeMask(pads), "·", "-")
}

// printArtifactDetail prints the summary block for one configuration.
func printArtifactDetail(e *inspectEntry) {
	a := e.Art
	total, signal, power := padSplit(a)

	fmt.Println(StyleTitle.Render(e.Name))
	printKeyValue("die", fmt.Sprintf("%d × %d µm", a.DieArea.X2-a.DieArea.X1, a.DieArea.Y2-a.DieArea.Y1))
	printKeyValue("core", fmt.Sprintf("(%d, %d) → (%d, %d)", a.CoreArea.X1, a.CoreArea.Y1, a.CoreArea.X2, a.CoreArea.Y2))
	printKeyValue("pads", fmt.Sprintf("%d total · %d signal · %d power", total, signal, power))
	for _, edge := range padring.Edges {
		printKeyValue(string(edge), fmt.Sprintf("%d pads", len(a.Pads[edge])))
	}
	printKeyValue("sizing", a.SizingMode)
	if a.PDNScript != "" {
		printKeyValue("pdn", a.PDNScript)
	}
	if len(a.BuildFlags) > 0 {
		printKeyValue("flags", strings.Join(a.BuildFlags, " "))
	}
	printFile(e.Path)
}
