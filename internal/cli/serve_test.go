package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/slotforge/slotforge/pkg/artifact"
	"github.com/slotforge/slotforge/pkg/cache"
	"github.com/slotforge/slotforge/pkg/docs"
	"github.com/slotforge/slotforge/pkg/geometry"
	"github.com/slotforge/slotforge/pkg/padring"
)

// writeArtifactFixture generates one configuration file into dir and
// returns its parsed form.
func writeArtifactFixture(t *testing.T, dir, slotName string, d padring.Density, sel padring.Selection) *artifact.Artifact {
	t.Helper()

	slot, err := geometry.SlotByName(slotName)
	if err != nil {
		t.Fatalf("SlotByName() error: %v", err)
	}
	ring, err := padring.Build(slot, d, sel)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	a := artifact.FromRing(ring)

	name := artifact.FileName(slotName, d, sel)
	if err := os.WriteFile(filepath.Join(dir, name), artifact.Render(a), 0644); err != nil {
		t.Fatal(err)
	}
	return a
}

func newTestRouter(t *testing.T) (http.Handler, *artifact.Artifact, *cache.FileCache) {
	t.Helper()

	dir := t.TempDir()
	a := writeArtifactFixture(t, dir, "0p5x0p5", padring.DensityMax, padring.SelectionTop)

	fc, err := cache.NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	logger := newLogger(io.Discard, log.ErrorLevel)
	return newServeRouter(dir, fc, logger), a, fc
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestServeHealthz(t *testing.T) {
	h, _, _ := newTestRouter(t)

	w := get(t, h, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != "ok\n" {
		t.Errorf("body = %q, want %q", got, "ok\n")
	}
}

func TestServeSlots(t *testing.T) {
	h, a, _ := newTestRouter(t)

	w := get(t, h, "/api/slots")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var doc docs.Doc
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(doc.Slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(doc.Slots))
	}
	s := doc.Slots[0]
	if s.Name != "0p5x0p5_max_top" {
		t.Errorf("Name = %q, want 0p5x0p5_max_top", s.Name)
	}
	if s.IO.Total != a.Total {
		t.Errorf("IO.Total = %d, want %d", s.IO.Total, a.Total)
	}
}

func TestServeSlotByName(t *testing.T) {
	h, a, _ := newTestRouter(t)

	w := get(t, h, "/api/slots/0p5x0p5_max_top")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var s docs.SlotDoc
	if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if s.Die.WidthUM != a.DieArea.X2-a.DieArea.X1 {
		t.Errorf("Die.WidthUM = %d, want %d", s.Die.WidthUM, a.DieArea.X2-a.DieArea.X1)
	}
}

func TestServeSlotNotFound(t *testing.T) {
	h, _, _ := newTestRouter(t)

	w := get(t, h, "/api/slots/9x9_max_all")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestServePreviewSVG(t *testing.T) {
	h, _, fc := newTestRouter(t)

	w := get(t, h, "/previews/slot_0p5x0p5_max_top.svg")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "<svg") {
		t.Error("body should be an SVG document")
	}

	// The render must have landed in the cache.
	entries, _, err := fc.Stats()
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if entries != 1 {
		t.Errorf("cache entries = %d, want 1", entries)
	}

	// A second request serves the cached bytes unchanged.
	w2 := get(t, h, "/previews/slot_0p5x0p5_max_top.svg")
	if w2.Body.String() != w.Body.String() {
		t.Error("cached response should match the rendered one")
	}
}

func TestServePreviewPNG(t *testing.T) {
	h, _, _ := newTestRouter(t)

	w := get(t, h, "/previews/slot_0p5x0p5_max_top.png")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "\x89PNG") {
		t.Error("body should be a PNG image")
	}
}

func TestServePreviewRejectsBadNames(t *testing.T) {
	h, _, _ := newTestRouter(t)

	tests := []struct {
		path string
		want int
	}{
		{"/previews/slot_0p5x0p5_max_top.gif", http.StatusBadRequest},
		{"/previews/..escape.svg", http.StatusBadRequest},
		{"/previews/slot_missing.svg", http.StatusNotFound},
	}

	for _, tt := range tests {
		if w := get(t, h, tt.path); w.Code != tt.want {
			t.Errorf("GET %s: status = %d, want %d", tt.path, w.Code, tt.want)
		}
	}
}

func TestDisplayURL(t *testing.T) {
	if got := displayURL(":8080"); got != "http://localhost:8080" {
		t.Errorf("displayURL(\":8080\") = %q", got)
	}
	if got := displayURL("0.0.0.0:9000"); got != "http://0.0.0.0:9000" {
		t.Errorf("displayURL(\"0.0.0.0:9000\") = %q", got)
	}
}
