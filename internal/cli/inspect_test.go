package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/slotforge/slotforge/pkg/padring"
)

func TestLoadInspectEntries(t *testing.T) {
	dir := t.TempDir()
	writeArtifactFixture(t, dir, "0p5x0p5", padring.DensityMax, padring.SelectionTop)
	writeArtifactFixture(t, dir, "0p5x1", padring.DensityMax, padring.SelectionVertical)

	// Non-matching files and directories are skipped.
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("notes"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "slot_nested.yaml"), 0755); err != nil {
		t.Fatal(err)
	}

	entries, err := loadInspectEntries(dir)
	if err != nil {
		t.Fatalf("loadInspectEntries() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	if entries[0].Name != "slot_0p5x0p5_max_top" {
		t.Errorf("entries[0].Name = %q, want slot_0p5x0p5_max_top", entries[0].Name)
	}
	if entries[1].Name != "slot_0p5x1_max_ver" {
		t.Errorf("entries[1].Name = %q, want slot_0p5x1_max_ver", entries[1].Name)
	}
	for _, e := range entries {
		if e.Art.TotalPads() <= 0 {
			t.Errorf("%s: TotalPads() = %d, want > 0", e.Name, e.Art.TotalPads())
		}
	}
}

func TestLoadInspectEntriesMissingDir(t *testing.T) {
	if _, err := loadInspectEntries(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("loadInspectEntries() should fail for a missing directory")
	}
}

func TestLoadInspectEntriesBadFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "slot_bad.yaml"), []byte("not: a: config"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := loadInspectEntries(dir)
	if err == nil {
		t.Fatal("loadInspectEntries() should fail for an unparsable file")
	}
	if !strings.Contains(err.Error(), "slot_bad.yaml") {
		t.Errorf("error %q should name the offending file", err)
	}
}

func TestInspectTable(t *testing.T) {
	dir := t.TempDir()
	writeArtifactFixture(t, dir, "0p5x0p5", padring.DensityMax, padring.SelectionTop)

	entries, err := loadInspectEntries(dir)
	if err != nil {
		t.Fatalf("loadInspectEntries() error: %v", err)
	}

	out := inspectTable(entries)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "CONFIGURATION") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "slot_0p5x0p5_max_top") {
		t.Errorf("row = %q, should name the configuration", lines[1])
	}
	if !strings.Contains(lines[1], "1936x2531") {
		t.Errorf("row = %q, should carry the die size", lines[1])
	}
	if !strings.Contains(lines[1], "13/2") {
		t.Errorf("row = %q, should split 15 pads into 13 signal and 2 power", lines[1])
	}
	if !strings.Contains(lines[1], "N---") {
		t.Errorf("row = %q, should mark the north-only ring", lines[1])
	}
}

func TestEdgeMask(t *testing.T) {
	pads := map[padring.Edge][]padring.Pad{
		padring.North: {padring.Pad("signal[0]")},
		padring.South: {padring.Pad("signal[1]"), padring.Pad("vddio[0]")},
	}

	if got := edgeMask(pads); got != "N·S·" {
		t.Errorf("edgeMask() = %q, want N·S·", got)
	}
	if got := edgeMask(nil); got != "····" {
		t.Errorf("edgeMask(nil) = %q, want ····", got)
	}
	if got := asciiEdgeMask(pads); got != "N-S-" {
		t.Errorf("asciiEdgeMask() = %q, want N-S-", got)
	}
}
