package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/slotforge/slotforge/pkg/docs"
	"github.com/slotforge/slotforge/pkg/plan"
)

// docsOpts holds the command-line flags for the docs command.
type docsOpts struct {
	in       string // directory of configuration files to document
	out      string // directory receiving slots.json and SLOTS.md
	jsonOnly bool   // write only the JSON document
	mdOnly   bool   // write only the Markdown document
}

// newDocsCmd creates the docs command, which derives slot documentation
// from a directory of configuration files.
func newDocsCmd() *cobra.Command {
	opts := docsOpts{in: plan.DefaultSlotsDir, out: "docs"}

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Derive slot documentation from configuration files",
		Long: `Derive slot documentation from a directory of configuration files.

Every slot_<name>.yaml in the input directory contributes one entry with
die dimensions, usable core area, utilization, and IO counts. The output
is a machine-readable slots.json and a human-readable SLOTS.md.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocs(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.in, "in", opts.in, "directory of configuration files")
	cmd.Flags().StringVar(&opts.out, "out", opts.out, "output directory")
	cmd.Flags().BoolVar(&opts.jsonOnly, "json-only", false, "write only slots.json")
	cmd.Flags().BoolVar(&opts.mdOnly, "md-only", false, "write only SLOTS.md")
	cmd.MarkFlagsMutuallyExclusive("json-only", "md-only")

	return cmd
}

// runDocs loads the configurations, builds the document, and writes the
// requested formats.
func runDocs(ctx context.Context, opts *docsOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	slots, err := docs.Load(opts.in)
	if err != nil {
		return err
	}
	if len(slots) == 0 {
		printWarning("No configuration files in %s", opts.in)
	}
	doc := docs.New(slots)

	if err := os.MkdirAll(opts.out, 0755); err != nil {
		return err
	}

	var written []string
	if !opts.mdOnly {
		path := filepath.Join(opts.out, docs.JSONName)
		if err := docs.ExportJSON(doc, path); err != nil {
			return err
		}
		written = append(written, path)
	}
	if !opts.jsonOnly {
		path := filepath.Join(opts.out, docs.MarkdownName)
		if err := docs.ExportMarkdown(doc, path); err != nil {
			return err
		}
		written = append(written, path)
	}

	prog.done(fmt.Sprintf("Documented %d slots", len(slots)))
	printSuccess("Documented %d slots", len(slots))
	for _, path := range written {
		printFile(path)
	}
	return nil
}
