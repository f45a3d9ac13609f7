package artifact

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/slotforge/slotforge/pkg/geometry"
	"github.com/slotforge/slotforge/pkg/padring"
)

// fileConfig mirrors the on-disk schema. Comments vanish in parsing, so the
// header counts are not recoverable here; callers derive them from the pad
// lists instead.
type fileConfig struct {
	SizingMode string   `yaml:"sizing_mode"`
	DieArea    []int    `yaml:"die_area"`
	CoreArea   []int    `yaml:"core_area"`
	BuildFlags []string `yaml:"build_flags"`
	PDNScript  string   `yaml:"pdn_script"`
	PadsSouth  []string `yaml:"pads_south"`
	PadsEast   []string `yaml:"pads_east"`
	PadsNorth  []string `yaml:"pads_north"`
	PadsWest   []string `yaml:"pads_west"`
}

// Parse reads an artifact back from its YAML form. Identity (slot, density,
// selection) lives in the filename, not the file body, so those fields stay
// empty. Pad names outside the generated vocabulary are kept as-is: the
// hand-maintained reference configurations carry input and analog pads the
// generator never emits.
func Parse(data []byte) (*Artifact, error) {
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse artifact: %w", err)
	}

	die, err := rectOf(cfg.DieArea, "die_area")
	if err != nil {
		return nil, err
	}
	core, err := rectOf(cfg.CoreArea, "core_area")
	if err != nil {
		return nil, err
	}

	return &Artifact{
		SizingMode: cfg.SizingMode,
		DieArea:    die,
		CoreArea:   core,
		BuildFlags: cfg.BuildFlags,
		PDNScript:  cfg.PDNScript,
		Pads: map[padring.Edge][]padring.Pad{
			padring.South: pads(cfg.PadsSouth),
			padring.East:  pads(cfg.PadsEast),
			padring.North: pads(cfg.PadsNorth),
			padring.West:  pads(cfg.PadsWest),
		},
	}, nil
}

// ParseFile reads and parses a single artifact file.
func ParseFile(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

func rectOf(coords []int, field string) (geometry.Rect, error) {
	switch len(coords) {
	case 0:
		return geometry.Rect{}, nil
	case 4:
		return geometry.Rect{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]}, nil
	default:
		return geometry.Rect{}, fmt.Errorf("parse artifact: %s has %d coordinates, want 4", field, len(coords))
	}
}

func pads(names []string) []padring.Pad {
	if len(names) == 0 {
		return nil
	}
	out := make([]padring.Pad, len(names))
	for i, name := range names {
		out[i] = padring.Pad(name)
	}
	return out
}
