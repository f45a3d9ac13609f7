// Package docs summarizes slot configuration artifacts into machine- and
// human-readable documentation (slots.json, SLOTS.md).
package docs

import (
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/slotforge/slotforge/pkg/artifact"
	"github.com/slotforge/slotforge/pkg/geometry"
	"github.com/slotforge/slotforge/pkg/padring"
)

// Output file names.
const (
	JSONName     = "slots.json"
	MarkdownName = "SLOTS.md"
)

// Doc is the complete documentation payload.
type Doc struct {
	GeneratedAt time.Time `json:"generated_at"`
	Slots       SlotDocs  `json:"slots"`
}

// SlotDoc describes one slot: geometry in µm and mm, area utilization, and
// the IO breakdown counted from its pad lists.
type SlotDoc struct {
	Name        string  `json:"-"`
	Label       string  `json:"label"`
	Die         AreaDoc `json:"die"`
	Core        AreaDoc `json:"core"`
	Utilization float64 `json:"utilization_pct"`
	IO          IODoc   `json:"io"`
}

// AreaDoc is a rectangle in both unit systems. The mm values are rounded
// for display (3 decimals for dimensions, 2 for area).
type AreaDoc struct {
	WidthUM  int     `json:"width_um"`
	HeightUM int     `json:"height_um"`
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm"`
	AreaMM2  float64 `json:"area_mm2"`
}

// IODoc is the per-category pad count. Supplies count as pairs: one
// positive and its negative partner.
type IODoc struct {
	Signal     int `json:"signal"`
	Inputs     int `json:"inputs"`
	Analog     int `json:"analog"`
	PowerPairs int `json:"power_pairs"`
	Total      int `json:"total"`
}

var labels = map[string]string{
	"1x1":     "1×1 (Full)",
	"0p5x1":   "0.5×1 (Half Width)",
	"1x0p5":   "1×0.5 (Half Height)",
	"0p5x0p5": "0.5×0.5 (Quarter)",
}

// Label returns the display label for a slot name, or the name itself for
// slots outside the catalog.
func Label(name string) string {
	if l, ok := labels[name]; ok {
		return l
	}
	return name
}

// New wraps slot docs with a UTC generation timestamp.
func New(slots []SlotDoc) *Doc {
	return &Doc{GeneratedAt: time.Now().UTC(), Slots: slots}
}

// Load reads every slot_*.yaml in dir through the artifact parser and
// returns the slot docs in catalog order (names outside the catalog sort
// last, keeping their filename order).
func Load(dir string) ([]SlotDoc, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var out []SlotDoc
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "slot_") || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		a, err := artifact.ParseFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		slotName := strings.TrimSuffix(strings.TrimPrefix(name, "slot_"), ".yaml")
		out = append(out, FromArtifact(slotName, a))
	}

	slices.SortStableFunc(out, func(a, b SlotDoc) int {
		return catalogRank(a.Name) - catalogRank(b.Name)
	})
	return out, nil
}

func catalogRank(name string) int {
	for i, s := range geometry.Slots {
		if s.Name == name {
			return i
		}
	}
	return len(geometry.Slots) + 1
}

// FromArtifact derives one slot's documentation from a parsed artifact.
func FromArtifact(name string, a *artifact.Artifact) SlotDoc {
	counts := a.CategoryCounts()
	io := IODoc{
		Signal:     counts[padring.CategorySignal],
		Inputs:     counts[padring.CategoryInput],
		Analog:     counts[padring.CategoryAnalog],
		PowerPairs: counts[padring.CategoryPositive],
	}
	io.Total = io.Signal + io.Inputs + io.Analog + 2*io.PowerPairs

	return SlotDoc{
		Name:        name,
		Label:       Label(name),
		Die:         areaDoc(a.DieArea),
		Core:        areaDoc(a.CoreArea),
		Utilization: utilization(a.CoreArea, a.DieArea),
		IO:          io,
	}
}

func areaDoc(r geometry.Rect) AreaDoc {
	w, h := r.Width(), r.Height()
	wmm, hmm := float64(w)/1000, float64(h)/1000
	return AreaDoc{
		WidthUM:  w,
		HeightUM: h,
		WidthMM:  round3(wmm),
		HeightMM: round3(hmm),
		AreaMM2:  round2(wmm * hmm),
	}
}

// utilization is computed from the unrounded areas, then rounded once.
func utilization(core, die geometry.Rect) float64 {
	dieMM2 := float64(die.Width()) / 1000 * (float64(die.Height()) / 1000)
	if dieMM2 == 0 {
		return 0
	}
	coreMM2 := float64(core.Width()) / 1000 * (float64(core.Height()) / 1000)
	return round1(coreMM2 / dieMM2 * 100)
}

func round3(x float64) float64 { return math.Round(x*1000) / 1000 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }
func round1(x float64) float64 { return math.Round(x*10) / 10 }
