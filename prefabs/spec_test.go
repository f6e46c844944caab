package prefabs

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/hoplite2d/hoplite/obj"
)

func TestLoadCharacterSpecEmbedded(t *testing.T) {
	spec, err := LoadCharacterSpec("character.yaml")
	if err != nil {
		t.Fatalf("LoadCharacterSpec: %v", err)
	}
	cfg := spec.Config()
	if cfg.RunSpeed != 4 || cfg.ShortHopImpulse != 4 || cfg.FullHopImpulse != 5.5 {
		t.Fatalf("unexpected tuning from embedded spec: %+v", cfg)
	}
	if cfg.JumpSquatFrames != 5 {
		t.Fatalf("expected 5 jump squat frames, got %d", cfg.JumpSquatFrames)
	}
}

func TestLoadCharacterSpecMissing(t *testing.T) {
	if _, err := LoadCharacterSpec("nope.yaml"); err == nil {
		t.Fatalf("expected an error for a missing spec")
	}
}

func TestCharacterSpecDefaults(t *testing.T) {
	cases := []struct {
		name           string
		yaml           string
		wantRunSpeed   float64
		wantSquat      int
		wantFullHop    float64
		wantFallMult   float64
		wantAscending  float64
		wantDescending float64
	}{
		{
			name:           "empty_uses_all_defaults",
			yaml:           "name: test",
			wantRunSpeed:   4,
			wantSquat:      5,
			wantFullHop:    5.5,
			wantFallMult:   2.5,
			wantAscending:  0.1,
			wantDescending: 0.5,
		},
		{
			name:           "partial_override",
			yaml:           "run_speed: 6\nfull_hop_impulse: 8",
			wantRunSpeed:   6,
			wantSquat:      5,
			wantFullHop:    8,
			wantFallMult:   2.5,
			wantAscending:  0.1,
			wantDescending: 0.5,
		},
		{
			name:           "explicit_zero_squat_kept",
			yaml:           "jump_squat_frames: 0",
			wantRunSpeed:   4,
			wantSquat:      0,
			wantFullHop:    5.5,
			wantFallMult:   2.5,
			wantAscending:  0.1,
			wantDescending: 0.5,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var spec CharacterSpec
			if err := yaml.Unmarshal([]byte(c.yaml), &spec); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			cfg := spec.Config()
			if cfg.RunSpeed != c.wantRunSpeed {
				t.Fatalf("run speed: expected %v, got %v", c.wantRunSpeed, cfg.RunSpeed)
			}
			if cfg.JumpSquatFrames != c.wantSquat {
				t.Fatalf("squat frames: expected %d, got %d", c.wantSquat, cfg.JumpSquatFrames)
			}
			if cfg.FullHopImpulse != c.wantFullHop {
				t.Fatalf("full hop: expected %v, got %v", c.wantFullHop, cfg.FullHopImpulse)
			}
			if cfg.FallMultiplier != c.wantFallMult {
				t.Fatalf("fall multiplier: expected %v, got %v", c.wantFallMult, cfg.FallMultiplier)
			}
			if cfg.AscendingThreshold != c.wantAscending || cfg.DescendingThreshold != c.wantDescending {
				t.Fatalf("thresholds: expected %v/%v, got %v/%v",
					c.wantAscending, c.wantDescending, cfg.AscendingThreshold, cfg.DescendingThreshold)
			}
		})
	}
}

func TestNilSpecConfig(t *testing.T) {
	var spec *CharacterSpec
	if spec.Config() != obj.DefaultCharacterConfig() {
		t.Fatalf("nil spec must resolve to the defaults")
	}
}
