package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/slotforge/slotforge/pkg/padring"
)

// ErrMissingReference is returned by [CopyReference] when a slot's
// hand-maintained configuration cannot be found. Reference files are never
// synthesized; a missing one is an input error.
var ErrMissingReference = errors.New("missing reference configuration")

// ReferenceName returns the file name of a slot's reference configuration.
func ReferenceName(slot string) string {
	return fmt.Sprintf("slot_%s.yaml", slot)
}

// CopyReference copies a slot's reference configuration from slotsDir into
// outDir as the default-density all-edges artifact, prepending the standard
// header. The body is carried over untouched. Returns the written path.
func CopyReference(slotsDir, outDir, slot string) (string, error) {
	src := filepath.Join(slotsDir, ReferenceName(slot))
	body, err := os.ReadFile(src)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrMissingReference, src)
		}
		return "", err
	}

	header := fmt.Sprintf("# Default density, All four edges\n"+
		"# Copied from %s (the reference configuration)\n"+
		"# Slot: %s, Density: def, Edges: all\n"+
		"#\n", ReferenceName(slot), slot)

	dst := filepath.Join(outDir, FileName(slot, padring.DensityDefault, padring.SelectionAll))
	if err := os.WriteFile(dst, append([]byte(header), body...), 0644); err != nil {
		return "", fmt.Errorf("copy reference: %w", err)
	}
	return dst, nil
}
