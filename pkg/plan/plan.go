// Package plan loads TOML batch plans: which slots, densities and edge
// selections a generate run covers, and where it reads and writes.
package plan

import (
	"fmt"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/slotforge/slotforge/pkg/geometry"
	"github.com/slotforge/slotforge/pkg/padring"
)

// Conventional directories used when a plan does not name its own.
const (
	DefaultDir      = "slots/generated"
	DefaultSlotsDir = "slots"
)

// Plan describes one generate run. Empty matrix lists mean "everything".
// Callers may narrow the matrix after loading (flag overrides); the
// resolving accessors re-validate on use.
type Plan struct {
	Output Output `toml:"output"`
	Matrix Matrix `toml:"matrix"`
}

// Output controls where a run reads reference configurations and writes
// artifacts.
type Output struct {
	Dir      string `toml:"dir"`
	SlotsDir string `toml:"slots_dir"`
	Manifest bool   `toml:"manifest"`
}

// Matrix narrows the combination grid by name.
type Matrix struct {
	Slots      []string `toml:"slots"`
	Densities  []string `toml:"densities"`
	Selections []string `toml:"selections"`
}

// Default returns the plan used when no plan file is given: the full grid,
// conventional directories, manifest on.
func Default() *Plan {
	return &Plan{Output: Output{Dir: DefaultDir, SlotsDir: DefaultSlotsDir, Manifest: true}}
}

// Parse decodes a TOML plan and validates every matrix name.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	if p.Output.Dir == "" {
		p.Output.Dir = DefaultDir
	}
	if p.Output.SlotsDir == "" {
		p.Output.SlotsDir = DefaultSlotsDir
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads and parses a plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Validate resolves every matrix name, reporting the first unknown one.
func (p *Plan) Validate() error {
	if _, err := p.Slots(); err != nil {
		return err
	}
	if _, err := p.Densities(); err != nil {
		return err
	}
	_, err := p.Selections()
	return err
}

// Slots resolves the planned slots in the order the matrix names them, or
// the whole catalog in generation order when it names none.
func (p *Plan) Slots() ([]geometry.Slot, error) {
	if len(p.Matrix.Slots) == 0 {
		return slices.Clone(geometry.Slots), nil
	}
	out := make([]geometry.Slot, 0, len(p.Matrix.Slots))
	for _, name := range p.Matrix.Slots {
		s, err := geometry.SlotByName(name)
		if err != nil {
			return nil, fmt.Errorf("plan matrix: %w", err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Densities resolves the planned densities, or all of them when unset.
func (p *Plan) Densities() ([]padring.Density, error) {
	if len(p.Matrix.Densities) == 0 {
		return slices.Clone(padring.Densities), nil
	}
	out := make([]padring.Density, 0, len(p.Matrix.Densities))
	for _, name := range p.Matrix.Densities {
		d, err := padring.ParseDensity(name)
		if err != nil {
			return nil, fmt.Errorf("plan matrix: %w", err)
		}
		out = append(out, d)
	}
	return out, nil
}

// Selections resolves the planned edge selections, or all of them when
// unset.
func (p *Plan) Selections() ([]padring.Selection, error) {
	if len(p.Matrix.Selections) == 0 {
		return slices.Clone(padring.Selections), nil
	}
	out := make([]padring.Selection, 0, len(p.Matrix.Selections))
	for _, name := range p.Matrix.Selections {
		sel, err := padring.ParseSelection(name)
		if err != nil {
			return nil, fmt.Errorf("plan matrix: %w", err)
		}
		out = append(out, sel)
	}
	return out, nil
}
