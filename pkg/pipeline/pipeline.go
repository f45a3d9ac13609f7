// Package pipeline runs the generation flow shared by all entry points:
// resolve the plan, generate the configuration artifacts, write the run
// manifest.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Resolve: expand the plan into concrete slots, densities and selections
//  2. Generate: walk the combination grid, emitting one file per valid triple
//  3. Manifest: record the run (UUID, timestamp, per-file counts) as JSON
//
// Combinations the policy forbids are skipped, not errors: the batch keeps
// going and per-artifact failures are joined into a single error at the end.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Plan: p, Version: v})
//	if err != nil {
//	    // result still holds everything that was written
//	}
package pipeline

import (
	"time"

	"github.com/slotforge/slotforge/pkg/artifact"
	"github.com/slotforge/slotforge/pkg/plan"
)

// ManifestName is the manifest file written next to the artifacts.
const ManifestName = "manifest.json"

// Options configures one pipeline run.
type Options struct {
	// Plan selects the combination grid and directories. Nil means the
	// default plan: full grid, conventional directories, manifest on.
	Plan *plan.Plan

	// Version is stamped into the run manifest.
	Version string

	validated bool
}

// ValidateAndSetDefaults checks the plan and applies defaults. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Plan == nil {
		o.Plan = plan.Default()
	}
	if err := o.Plan.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Files lists the written artifact paths in emission order.
	Files []string

	// Skipped counts the policy-invalid combinations passed over.
	Skipped int

	// Manifest is the run record, populated whether or not it was written.
	Manifest *artifact.Manifest

	// ManifestPath is where the manifest landed; empty when disabled.
	ManifestPath string

	// Stats contains per-stage timing.
	Stats Stats
}

// Stats contains pipeline execution timing.
type Stats struct {
	ResolveTime  time.Duration
	GenerateTime time.Duration
	ManifestTime time.Duration
}
