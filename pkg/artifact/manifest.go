package artifact

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/slotforge/slotforge/pkg/padring"
)

// ManifestEntry records one emitted configuration file.
type ManifestEntry struct {
	Name      string            `json:"name"`
	Slot      string            `json:"slot"`
	Density   padring.Density   `json:"density"`
	Selection padring.Selection `json:"selection"`
	Total     int               `json:"total"`
	Signal    int               `json:"signal"`
	Power     int               `json:"power"`
	// Copied marks entries carried over from a reference configuration
	// rather than generated.
	Copied bool `json:"copied,omitempty"`
}

// Manifest summarizes one generator run: which files were emitted, with
// which pad counts, under which tool version.
type Manifest struct {
	RunID       string          `json:"run_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Version     string          `json:"version"`
	Files       []ManifestEntry `json:"files"`
}

// NewManifest returns an empty manifest stamped with a fresh run ID and the
// current UTC time.
func NewManifest(version string) *Manifest {
	return &Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Version:     version,
		Files:       []ManifestEntry{},
	}
}

// Add appends an entry to the manifest.
func (m *Manifest) Add(e ManifestEntry) {
	m.Files = append(m.Files, e)
}

// WriteJSON encodes the manifest as indented JSON to w.
func (m *Manifest) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return nil
}

// WriteFile writes the manifest to a JSON file at path.
func (m *Manifest) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return m.WriteJSON(f)
}
