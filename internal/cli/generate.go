package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slotforge/slotforge/pkg/geometry"
	"github.com/slotforge/slotforge/pkg/padring"
	"github.com/slotforge/slotforge/pkg/pipeline"
	"github.com/slotforge/slotforge/pkg/plan"
)

// generateOpts holds the command-line flags for the generate command.
// These options narrow the generation matrix and redirect its output.
type generateOpts struct {
	out      string // output directory for generated files
	slotsDir string // directory holding the reference configurations
	planFile string // optional TOML plan file
	slot     string // restrict to one slot (e.g. "1x1")
	density  string // restrict to one density (e.g. "max")
	edges    string // restrict to one edge selection (e.g. "top")
	manifest bool   // write a run manifest next to the generated files
}

// newGenerateCmd creates the generate command for producing configuration
// files. Without flags it walks the full slot × density × selection grid,
// skipping the combinations the platform never builds.
//
// Default settings:
//   - output: slots/generated (next to the slots reference directory)
//   - manifest: true (manifest.json describing the run)
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{manifest: true}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate pad ring configuration files",
		Long: `Generate floorplan configuration files for die slots.

By default every slot, pad density, and edge selection is generated. The
matrix can be narrowed with --slot, --density, and --edges, or driven from
a TOML plan file with --plan. Flags override plan values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolvePlan(&opts, cmd.Flags().Changed("manifest"))
			if err != nil {
				return err
			}
			if opts.planFile != "" {
				printInfo("Plan: %s", StyleHighlight.Render(opts.planFile))
			}
			return runGenerate(cmd.Context(), p)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output directory (default slots/generated)")
	cmd.Flags().StringVar(&opts.slotsDir, "slots-dir", "", "directory with the reference configurations (default slots)")
	cmd.Flags().StringVar(&opts.planFile, "plan", "", "TOML plan file")
	cmd.Flags().StringVar(&opts.slot, "slot", "", "generate for one slot only")
	cmd.Flags().StringVar(&opts.density, "density", "", "generate for one density only")
	cmd.Flags().StringVar(&opts.edges, "edges", "", "generate for one edge selection only")
	cmd.Flags().BoolVar(&opts.manifest, "manifest", opts.manifest, "write a run manifest")

	return cmd
}

// resolvePlan builds the effective plan: the plan file (or the full default
// grid), overridden by whichever flags were given. manifestSet reports
// whether --manifest was set explicitly; otherwise the plan value wins.
func resolvePlan(opts *generateOpts, manifestSet bool) (*plan.Plan, error) {
	p := plan.Default()
	if opts.planFile != "" {
		loaded, err := plan.Load(opts.planFile)
		if err != nil {
			return nil, err
		}
		p = loaded
	}

	if opts.out != "" {
		p.Output.Dir = opts.out
	}
	if opts.slotsDir != "" {
		p.Output.SlotsDir = opts.slotsDir
	}
	if manifestSet {
		p.Output.Manifest = opts.manifest
	}
	if opts.slot != "" {
		p.Matrix.Slots = []string{opts.slot}
	}
	if opts.density != "" {
		p.Matrix.Densities = []string{opts.density}
	}
	if opts.edges != "" {
		p.Matrix.Selections = []string{opts.edges}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	// The batch walk skips invalid combinations silently, but a fully
	// explicit triple names exactly one: surface why it cannot be built.
	if opts.slot != "" && opts.density != "" && opts.edges != "" {
		slot, err := geometry.SlotByName(opts.slot)
		if err != nil {
			return nil, err
		}
		d, err := padring.ParseDensity(opts.density)
		if err != nil {
			return nil, err
		}
		sel, err := padring.ParseSelection(opts.edges)
		if err != nil {
			return nil, err
		}
		if err := padring.ValidateCombo(slot, d, sel); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// runGenerate executes the pipeline for the resolved plan and reports the
// outcome.
func runGenerate(ctx context.Context, p *plan.Plan) error {
	logger := loggerFromContext(ctx)

	ver := version
	if ver == "" {
		ver = "dev"
	}

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeline.Options{Plan: p, Version: ver})
	if err != nil {
		return err
	}

	printSuccess("Generated %d configuration files", len(result.Files))
	printStats(len(result.Files), result.Skipped)
	if result.ManifestPath != "" {
		printFile(result.ManifestPath)
	}
	if len(result.Files) > 0 {
		printNextStep("Preview a configuration", fmt.Sprintf("%s preview %s", appName, result.Files[0]))
	}
	return nil
}
