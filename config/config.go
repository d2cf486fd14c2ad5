// Package config loads the optional YAML tuning file and watches it for
// changes. Every field has a sane default; a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"prowl/sim"
)

// File is the on-disk tuning schema. Zero fields fall back to defaults.
type File struct {
	Hunters      int     `yaml:"hunters"`
	SafeDistance float64 `yaml:"safe_distance"`

	HunterStep      float64 `yaml:"hunter_step"`
	PreyStep        float64 `yaml:"prey_step"`
	Repulsion       float64 `yaml:"repulsion"`
	CollisionRadius float64 `yaml:"collision_radius"`
	AreaSize        float64 `yaml:"area_size"`
	Seed            int64   `yaml:"seed"`

	// Slider range for the safe distance control.
	SafeDistanceMin float64 `yaml:"safe_distance_min"`
	SafeDistanceMax float64 `yaml:"safe_distance_max"`
}

// Default returns the stock configuration.
func Default() File {
	p := sim.DefaultParams()
	return File{
		Hunters:         p.Hunters,
		SafeDistance:    p.SafeDistance,
		HunterStep:      p.HunterStep,
		PreyStep:        p.PreyStep,
		Repulsion:       p.Repulsion,
		CollisionRadius: p.CollisionRadius,
		AreaSize:        p.AreaSize,
		SafeDistanceMin: 0.5,
		SafeDistanceMax: 5.0,
	}
}

// Load reads path and merges it over the defaults. A missing file yields
// the defaults with no error; a malformed file is an error.
func Load(path string) (File, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg.normalized(), nil
}

// normalized repairs out-of-range values instead of rejecting the file, so
// a half-edited tuning file never kills a running window.
func (f File) normalized() File {
	def := Default()
	if f.SafeDistanceMin <= 0 {
		f.SafeDistanceMin = def.SafeDistanceMin
	}
	if f.SafeDistanceMax <= f.SafeDistanceMin {
		f.SafeDistanceMax = f.SafeDistanceMin + (def.SafeDistanceMax - def.SafeDistanceMin)
	}
	if f.SafeDistance < f.SafeDistanceMin {
		f.SafeDistance = f.SafeDistanceMin
	}
	if f.SafeDistance > f.SafeDistanceMax {
		f.SafeDistance = f.SafeDistanceMax
	}
	return f
}

// Params converts the file into simulation parameters.
func (f File) Params() sim.Params {
	return sim.Params{
		Hunters:         f.Hunters,
		SafeDistance:    f.SafeDistance,
		HunterStep:      f.HunterStep,
		PreyStep:        f.PreyStep,
		Repulsion:       f.Repulsion,
		CollisionRadius: f.CollisionRadius,
		AreaSize:        f.AreaSize,
		Seed:            f.Seed,
	}.Normalized()
}
