package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hoplite2d/hoplite/obj"
)

// CharacterSpec mirrors character.yaml. Fields are pointers so an omitted
// value falls back to the documented default while an explicit zero (a legal
// degenerate tuning, e.g. jump_squat_frames: 0) is kept.
type CharacterSpec struct {
	Name                string   `yaml:"name"`
	RunSpeed            *float64 `yaml:"run_speed"`
	ShortHopImpulse     *float64 `yaml:"short_hop_impulse"`
	FullHopImpulse      *float64 `yaml:"full_hop_impulse"`
	FallMultiplier      *float64 `yaml:"fall_multiplier"`
	AscendingThreshold  *float64 `yaml:"ascending_threshold"`
	DescendingThreshold *float64 `yaml:"descending_threshold"`
	JumpSquatFrames     *int     `yaml:"jump_squat_frames"`
}

// LoadCharacterSpec reads and parses a character spec, preferring an on-disk
// file over the embedded copy.
func LoadCharacterSpec(filename string) (*CharacterSpec, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec CharacterSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return &spec, nil
}

// Config resolves the spec against the default tuning.
func (s *CharacterSpec) Config() obj.CharacterConfig {
	cfg := obj.DefaultCharacterConfig()
	if s == nil {
		return cfg
	}
	if s.RunSpeed != nil {
		cfg.RunSpeed = *s.RunSpeed
	}
	if s.ShortHopImpulse != nil {
		cfg.ShortHopImpulse = *s.ShortHopImpulse
	}
	if s.FullHopImpulse != nil {
		cfg.FullHopImpulse = *s.FullHopImpulse
	}
	if s.FallMultiplier != nil {
		cfg.FallMultiplier = *s.FallMultiplier
	}
	if s.AscendingThreshold != nil {
		cfg.AscendingThreshold = *s.AscendingThreshold
	}
	if s.DescendingThreshold != nil {
		cfg.DescendingThreshold = *s.DescendingThreshold
	}
	if s.JumpSquatFrames != nil {
		cfg.JumpSquatFrames = *s.JumpSquatFrames
	}
	return cfg
}
