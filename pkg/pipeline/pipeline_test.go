package pipeline

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/slotforge/slotforge/pkg/artifact"
	"github.com/slotforge/slotforge/pkg/geometry"
	"github.com/slotforge/slotforge/pkg/plan"
)

func quietRunner() *Runner {
	return NewRunner(log.NewWithOptions(io.Discard, log.Options{}))
}

// writeReferences seeds a slots dir with one minimal reference file per
// catalog slot so the default-density copies succeed.
func writeReferences(t *testing.T, dir string) {
	t.Helper()
	body := `sizing_mode: absolute
die_area: [0, 0, 100, 100]
core_area: [10, 10, 90, 90]
build_flags: [SLOT_X]
pads_south: [clock, reset, "signal[0]", "positive_supply[0]", "negative_supply[0]"]
pads_east: []
pads_north: []
pads_west: []
`
	for _, slot := range geometry.Slots {
		path := filepath.Join(dir, artifact.ReferenceName(slot.Name))
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatalf("WriteFile(%s) error: %v", path, err)
		}
	}
}

func testPlan(t *testing.T) *plan.Plan {
	t.Helper()
	slotsDir := t.TempDir()
	writeReferences(t, slotsDir)

	p := plan.Default()
	p.Output.Dir = filepath.Join(t.TempDir(), "generated")
	p.Output.SlotsDir = slotsDir
	return p
}

func TestExecute_FullBatch(t *testing.T) {
	p := testPlan(t)
	result, err := quietRunner().Execute(context.Background(), Options{Plan: p, Version: "test"})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	// 8 files for the reference slot, 22 for each of the other three.
	if len(result.Files) != 74 {
		t.Errorf("Files count = %d, want 74", len(result.Files))
	}
	// Grid is 4*4*7 = 112 combinations; the rest are policy skips.
	if result.Skipped != 38 {
		t.Errorf("Skipped = %d, want 38", result.Skipped)
	}

	if got := filepath.Base(result.Files[0]); got != "slot_1x1_def_all.yaml" {
		t.Errorf("first file = %s, want slot_1x1_def_all.yaml (walk order)", got)
	}

	if len(result.Manifest.Files) != 74 {
		t.Errorf("manifest entries = %d, want 74", len(result.Manifest.Files))
	}
	if result.Manifest.Version != "test" {
		t.Errorf("manifest version = %q, want %q", result.Manifest.Version, "test")
	}

	copied := 0
	for _, e := range result.Manifest.Files {
		if e.Copied {
			copied++
			if e.Total != 5 || e.Signal != 1 || e.Power != 2 {
				t.Errorf("copied entry %s counts = %d/%d/%d, want 5/1/2",
					e.Name, e.Total, e.Signal, e.Power)
			}
		}
	}
	if copied != 4 {
		t.Errorf("copied entries = %d, want 4", copied)
	}

	if result.ManifestPath == "" {
		t.Fatal("ManifestPath empty, want manifest written")
	}
	if _, err := os.Stat(result.ManifestPath); err != nil {
		t.Errorf("manifest file: %v", err)
	}

	// Every listed file exists.
	for _, f := range result.Files {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("artifact file: %v", err)
		}
	}
}

func TestExecute_MissingReferences(t *testing.T) {
	p := plan.Default()
	p.Output.Dir = t.TempDir()
	p.Output.SlotsDir = t.TempDir() // no reference files

	result, err := quietRunner().Execute(context.Background(), Options{Plan: p})
	if !errors.Is(err, artifact.ErrMissingReference) {
		t.Fatalf("Execute() error = %v, want ErrMissingReference", err)
	}

	// The four def_all copies fail; everything else still lands.
	if len(result.Files) != 70 {
		t.Errorf("Files count = %d, want 70", len(result.Files))
	}
	if len(result.Manifest.Files) != 70 {
		t.Errorf("manifest entries = %d, want 70", len(result.Manifest.Files))
	}
}

func TestExecute_NarrowPlan(t *testing.T) {
	p := testPlan(t)
	p.Matrix.Slots = []string{"0p5x0p5"}
	p.Matrix.Densities = []string{"max"}
	p.Matrix.Selections = []string{"top"}

	result, err := quietRunner().Execute(context.Background(), Options{Plan: p})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(result.Files) != 1 {
		t.Fatalf("Files count = %d, want 1", len(result.Files))
	}
	if got := filepath.Base(result.Files[0]); got != "slot_0p5x0p5_max_top.yaml" {
		t.Errorf("file = %s, want slot_0p5x0p5_max_top.yaml", got)
	}
}

func TestExecute_ManifestDisabled(t *testing.T) {
	p := testPlan(t)
	p.Output.Manifest = false

	result, err := quietRunner().Execute(context.Background(), Options{Plan: p})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.ManifestPath != "" {
		t.Errorf("ManifestPath = %q, want empty", result.ManifestPath)
	}
	if _, err := os.Stat(filepath.Join(p.Output.Dir, ManifestName)); !os.IsNotExist(err) {
		t.Errorf("manifest stat = %v, want not-exist", err)
	}
	// The run record is still populated for callers.
	if len(result.Manifest.Files) != 74 {
		t.Errorf("manifest entries = %d, want 74", len(result.Manifest.Files))
	}
}

func TestExecute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := quietRunner().Execute(ctx, Options{Plan: testPlan(t)})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
}

func TestExecute_InvalidPlan(t *testing.T) {
	p := testPlan(t)
	p.Matrix.Slots = []string{"9x9"}

	if _, err := quietRunner().Execute(context.Background(), Options{Plan: p}); !errors.Is(err, geometry.ErrUnknownSlot) {
		t.Errorf("Execute() error = %v, want ErrUnknownSlot", err)
	}
}

func TestNewRunner_NilLogger(t *testing.T) {
	if r := NewRunner(nil); r.Logger == nil {
		t.Error("NewRunner(nil).Logger = nil, want default")
	}
}
