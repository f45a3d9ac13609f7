package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/slotforge/slotforge/pkg/artifact"
	"github.com/slotforge/slotforge/pkg/geometry"
	"github.com/slotforge/slotforge/pkg/padring"
)

// Runner executes the generation pipeline.
//
// The Runner is stateless except for the logger; it does not store run
// results. Multiple goroutines can safely share one Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete resolve → generate → manifest pipeline.
//
// Per-artifact failures do not stop the batch: the remaining combinations
// are still generated and the failures come back joined into one error,
// alongside the partial Result.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Resolve
	resolveStart := time.Now()
	slots, err := opts.Plan.Slots()
	if err != nil {
		return nil, err
	}
	densities, err := opts.Plan.Densities()
	if err != nil {
		return nil, err
	}
	selections, err := opts.Plan.Selections()
	if err != nil {
		return nil, err
	}
	outDir := opts.Plan.Output.Dir
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	result.Stats.ResolveTime = time.Since(resolveStart)

	r.Logger.Info("resolved plan",
		"slots", len(slots),
		"densities", len(densities),
		"selections", len(selections),
		"out", outDir,
		"duration", result.Stats.ResolveTime)

	// Stage 2: Generate
	generateStart := time.Now()
	manifest := artifact.NewManifest(opts.Version)
	var failures []error

	for _, slot := range slots {
		for _, d := range densities {
			for _, sel := range selections {
				if err := ctx.Err(); err != nil {
					return result, err
				}

				if err := padring.ValidateCombo(slot, d, sel); err != nil {
					r.Logger.Debug("skipped combination",
						"slot", slot.Name, "density", d, "edges", sel)
					result.Skipped++
					continue
				}

				var (
					path  string
					entry artifact.ManifestEntry
					err   error
				)
				if d == padring.DensityDefault {
					path, entry, err = r.copyReference(opts.Plan.Output.SlotsDir, outDir, slot)
				} else {
					path, entry, err = r.generateOne(outDir, slot, d, sel)
				}
				if err != nil {
					failures = append(failures, fmt.Errorf("%s %s %s: %w", slot.Name, d, sel, err))
					continue
				}

				result.Files = append(result.Files, path)
				manifest.Add(entry)
				r.Logger.Debug("wrote artifact",
					"file", entry.Name, "total", entry.Total,
					"signal", entry.Signal, "power", entry.Power)
			}
		}
	}
	result.Manifest = manifest
	result.Stats.GenerateTime = time.Since(generateStart)

	r.Logger.Info("generated artifacts",
		"files", len(result.Files),
		"skipped", result.Skipped,
		"failed", len(failures),
		"duration", result.Stats.GenerateTime)

	// Stage 3: Manifest
	if opts.Plan.Output.Manifest {
		manifestStart := time.Now()
		path := filepath.Join(outDir, ManifestName)
		if err := manifest.WriteFile(path); err != nil {
			failures = append(failures, err)
		} else {
			result.ManifestPath = path
			result.Stats.ManifestTime = time.Since(manifestStart)
			r.Logger.Info("wrote manifest",
				"path", path,
				"entries", len(manifest.Files),
				"duration", result.Stats.ManifestTime)
		}
	}

	if len(failures) > 0 {
		return result, errors.Join(failures...)
	}
	return result, nil
}

// copyReference handles the default-density path: the reference file is
// carried over verbatim under the def_all name, and its pad lists are
// classified to fill the manifest entry.
func (r *Runner) copyReference(slotsDir, outDir string, slot geometry.Slot) (string, artifact.ManifestEntry, error) {
	path, err := artifact.CopyReference(slotsDir, outDir, slot.Name)
	if err != nil {
		return "", artifact.ManifestEntry{}, err
	}

	a, err := artifact.ParseFile(path)
	if err != nil {
		return "", artifact.ManifestEntry{}, err
	}
	counts := a.CategoryCounts()

	entry := artifact.ManifestEntry{
		Name:      filepath.Base(path),
		Slot:      slot.Name,
		Density:   padring.DensityDefault,
		Selection: padring.SelectionAll,
		Total:     a.TotalPads(),
		Signal:    counts[padring.CategorySignal],
		Power:     counts[padring.CategoryPositive] + counts[padring.CategoryNegative],
		Copied:    true,
	}
	return path, entry, nil
}

// generateOne computes and writes a single artifact.
func (r *Runner) generateOne(outDir string, slot geometry.Slot, d padring.Density, sel padring.Selection) (string, artifact.ManifestEntry, error) {
	ring, err := padring.Build(slot, d, sel)
	if err != nil {
		return "", artifact.ManifestEntry{}, err
	}

	path, err := artifact.WriteFile(artifact.FromRing(ring), outDir)
	if err != nil {
		return "", artifact.ManifestEntry{}, err
	}

	entry := artifact.ManifestEntry{
		Name:      filepath.Base(path),
		Slot:      slot.Name,
		Density:   d,
		Selection: sel,
		Total:     ring.Budget.Total,
		Signal:    ring.Budget.Signal,
		Power:     ring.Budget.Power,
	}
	return path, entry, nil
}
