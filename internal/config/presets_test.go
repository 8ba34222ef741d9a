package config

import "testing"

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected Preset
		wantErr  bool
	}{
		{"", PresetEarth, false},
		{"earth", PresetEarth, false},
		{"MOON", PresetMoon, false},
		{"rubber", PresetRubber, false},
		{"lead", PresetLead, false},
		{"jupiter", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, PresetEarth)
	if cfg != Default() {
		t.Error("earth preset should not change the config")
	}

	cfg = Default()
	ApplyPreset(&cfg, PresetMoon)
	if cfg.Physics.Gravity >= Default().Physics.Gravity {
		t.Errorf("moon gravity = %v, expected less than default", cfg.Physics.Gravity)
	}

	cfg = Default()
	ApplyPreset(&cfg, PresetRubber)
	if cfg.Physics.Restitution >= Default().Physics.Restitution {
		t.Errorf("rubber restitution = %v, expected a stronger rebound", cfg.Physics.Restitution)
	}

	for _, p := range Presets() {
		cfg := Default()
		ApplyPreset(&cfg, p)
		if _, err := cfg.Runtime(); err != nil {
			t.Errorf("preset %q yields invalid config: %v", p, err)
		}
	}
}
