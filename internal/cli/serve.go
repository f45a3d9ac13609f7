package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/slotforge/slotforge/pkg/artifact"
	"github.com/slotforge/slotforge/pkg/cache"
	"github.com/slotforge/slotforge/pkg/docs"
	"github.com/slotforge/slotforge/pkg/plan"
	"github.com/slotforge/slotforge/pkg/preview"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	dir     string // directory of configuration files to serve
	addr    string // listen address
	noCache bool   // render previews without the cache
}

// newServeCmd creates the serve command exposing slot documentation and
// previews over HTTP.
func newServeCmd() *cobra.Command {
	opts := serveOpts{dir: plan.DefaultDir, addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve slot documentation and previews over HTTP",
		Long: `Serve slot documentation and previews over HTTP.

Endpoints:
  GET /healthz             liveness probe
  GET /api/slots           every slot doc as JSON
  GET /api/slots/{name}    one slot doc
  GET /previews/{file}     rendered preview (.svg or .png)

Configuration files are read per request, so regenerating them shows up
without a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", opts.dir, "directory of configuration files to serve")
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "render previews without the cache")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	store, err := openCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           newServeRouter(opts.dir, store, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	printInfo("Serving %s on %s", opts.dir, StyleLink.Render(displayURL(opts.addr)))
	printDetail("Press Ctrl+C to stop")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errc
		printNewline()
		printInfo("Server stopped")
		return nil
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// displayURL turns a listen address into something clickable.
func displayURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}

// newServeRouter builds the HTTP API over a directory of configuration
// files. Previews go through the render cache shared with the preview
// command, keyed on the artifact bytes.
func newServeRouter(dir string, store cache.Cache, logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})

	r.Get("/api/slots", func(w http.ResponseWriter, req *http.Request) {
		slots, err := docs.Load(dir)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := docs.WriteJSON(docs.New(slots), w); err != nil {
			logger.Error("write slots response", "err", err)
		}
	})

	r.Get("/api/slots/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		slots, err := docs.Load(dir)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		for _, s := range slots {
			if s.Name != name {
				continue
			}
			w.Header().Set("Content-Type", "application/json")
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if err := enc.Encode(s); err != nil {
				logger.Error("write slot response", "name", name, "err", err)
			}
			return
		}
		http.Error(w, "unknown slot: "+name, http.StatusNotFound)
	})

	r.Get("/previews/{file}", func(w http.ResponseWriter, req *http.Request) {
		servePreview(w, req, dir, store, logger)
	})

	return r
}

// servePreview renders <base>.yaml from dir as the requested image type.
// The file parameter must be a bare name like slot_1x1_max_all.svg.
func servePreview(w http.ResponseWriter, req *http.Request, dir string, store cache.Cache, logger *log.Logger) {
	file := chi.URLParam(req, "file")
	if strings.ContainsAny(file, "/\\") || strings.Contains(file, "..") {
		http.Error(w, "invalid preview name", http.StatusBadRequest)
		return
	}

	ext := strings.TrimPrefix(filepath.Ext(file), ".")
	if ext != formatSVG && ext != formatPNG {
		http.Error(w, "unsupported format: "+ext, http.StatusBadRequest)
		return
	}
	base := strings.TrimSuffix(file, filepath.Ext(file))

	raw, err := os.ReadFile(filepath.Join(dir, base+".yaml"))
	if os.IsNotExist(err) {
		http.Error(w, "unknown configuration: "+base, http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	a, err := artifact.Parse(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	scoped := cache.Scoped(store, ext)
	key := cache.Key(raw, ext, base)
	data, err := cache.Lookup(req.Context(), scoped, key)
	if errors.Is(err, cache.ErrMiss) {
		switch ext {
		case formatSVG:
			data = preview.RenderSVG(a, preview.WithTitle(base))
		case formatPNG:
			data, err = preview.RenderPNG(a, preview.WithTitle(base))
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}
		if err := scoped.Set(req.Context(), key, data, 0); err != nil {
			logger.Debug("cache store failed", "key", key, "err", err)
		}
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	contentType := "image/svg+xml"
	if ext == formatPNG {
		contentType = "image/png"
	}
	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write(data); err != nil {
		logger.Debug("write preview response", "file", file, "err", err)
	}
}

// requestLogger logs one line per request with status and duration.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"dur", time.Since(start),
			)
		})
	}
}
