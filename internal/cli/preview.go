package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slotforge/slotforge/pkg/artifact"
	"github.com/slotforge/slotforge/pkg/cache"
	"github.com/slotforge/slotforge/pkg/preview"
)

// Render kinds. They double as cache scopes and output extensions.
const (
	formatSVG   = "svg"
	formatPNG   = "png"
	formatThumb = "thumb"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	format  string // render format: "svg" or "png"
	thumb   bool   // write JPEG thumbnails instead of full renders
	out     string // output directory (default: next to each input)
	noCache bool   // render without consulting the cache
}

// newPreviewCmd creates the preview command for rendering configuration
// files as floorplan images. Renders are cached by content, so repeated
// previews of unchanged files come back immediately.
func newPreviewCmd() *cobra.Command {
	opts := previewOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "preview FILE...",
		Short: "Render configuration files as floorplan images",
		Long: `Render configuration files as floorplan images.

Each file becomes one image: the die outline with seal ring, corner cells,
core area, and a colored tick per pad. With --thumb the render is
downscaled to a JPEG thumbnail.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runPreview(cmd.Context(), args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "render format: svg (default), png")
	cmd.Flags().BoolVar(&opts.thumb, "thumb", false, "write JPEG thumbnails instead of full renders")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output directory (default: next to each input)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "render without consulting the cache")

	return cmd
}

// validateFormat checks that the format is either "svg" or "png".
func validateFormat(f string) error {
	if f != formatSVG && f != formatPNG {
		return fmt.Errorf("invalid format: %s (must be 'svg' or 'png')", f)
	}
	return nil
}

// previewPath derives the output path for a rendered preview. Thumbnails
// get a _thumb.jpg suffix, full renders the format extension.
func previewPath(input, outDir, kind string) string {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	ext := "." + kind
	if kind == formatThumb {
		ext = "_thumb.jpg"
	}
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, name+ext)
}

// runPreview renders every input file, consulting the render cache keyed
// on the artifact bytes and render kind.
func runPreview(ctx context.Context, files []string, opts *previewOpts) error {
	logger := loggerFromContext(ctx)

	store, err := openCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	kind := opts.format
	if opts.thumb {
		kind = formatThumb
	}
	scoped := cache.Scoped(store, kind)

	if opts.out != "" {
		if err := os.MkdirAll(opts.out, 0755); err != nil {
			return err
		}
	}

	var spin *Spinner
	if len(files) > 1 {
		spin = newSpinner(ctx, fmt.Sprintf("rendering %d previews", len(files)))
		spin.Start()
	}
	fail := func(err error) error {
		if spin != nil {
			spin.StopWithError("Preview failed")
		}
		return err
	}

	type output struct {
		path   string
		cached bool
	}
	var outputs []output

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		raw, err := os.ReadFile(f)
		if err != nil {
			return fail(err)
		}
		a, err := artifact.Parse(raw)
		if err != nil {
			return fail(fmt.Errorf("%s: %w", f, err))
		}
		title := strings.TrimSuffix(filepath.Base(f), filepath.Ext(f))

		key := cache.Key(raw, kind, title)
		data, err := cache.Lookup(ctx, scoped, key)
		cached := err == nil
		if errors.Is(err, cache.ErrMiss) {
			data, err = renderArtifact(a, title, opts)
			if err != nil {
				return fail(fmt.Errorf("%s: %w", f, err))
			}
			if err := scoped.Set(ctx, key, data, 0); err != nil {
				logger.Debug("cache store failed", "key", key, "err", err)
			}
		} else if err != nil {
			return fail(err)
		}

		outPath := previewPath(f, opts.out, kind)
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fail(err)
		}
		outputs = append(outputs, output{path: outPath, cached: cached})
	}

	msg := fmt.Sprintf("Rendered %d previews", len(outputs))
	if len(outputs) == 1 {
		msg = "Rendered 1 preview"
	}
	if spin != nil {
		spin.StopWithSuccess(msg)
	} else {
		printSuccess("%s", msg)
	}
	for _, o := range outputs {
		printFileStatus(o.path, o.cached)
	}
	return nil
}

// renderArtifact produces the requested image bytes for one artifact.
// Thumbnails rasterize to PNG first and downscale from there.
func renderArtifact(a *artifact.Artifact, title string, opts *previewOpts) ([]byte, error) {
	if opts.format == formatSVG && !opts.thumb {
		return preview.RenderSVG(a, preview.WithTitle(title)), nil
	}
	data, err := preview.RenderPNG(a, preview.WithTitle(title))
	if err != nil {
		return nil, err
	}
	if opts.thumb {
		return preview.Thumbnail(data)
	}
	return data, nil
}
