package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, Default())
	}
}

func TestDefaultRuntime(t *testing.T) {
	rt, err := Default().Runtime()
	if err != nil {
		t.Fatalf("Runtime() failed: %v", err)
	}
	if rt != core.DefaultConfig() {
		t.Errorf("Runtime() = %+v, expected %+v", rt, core.DefaultConfig())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("display:\n  height: 64\nphysics:\n  gravity: 50\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Display.Width != 128 || cfg.Display.FPS != 30 {
		t.Errorf("unset fields should keep defaults, got %+v", cfg.Display)
	}

	rt, err := cfg.Runtime()
	if err != nil {
		t.Fatalf("Runtime() failed: %v", err)
	}
	if rt.Height != 64 || rt.Radius != 16 {
		t.Errorf("height/radius = %d/%v, expected 64/16", rt.Height, rt.Radius)
	}
	if rt.Gravity != 50 {
		t.Errorf("gravity = %v, expected 50", rt.Gravity)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := Parse([]byte("display:\n  widht: 10\n")); err == nil {
		t.Error("Parse() should reject misspelled keys")
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("empty document should yield defaults, got %+v", cfg)
	}
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*BounceConfig)
		substr string
	}{
		{"odd height", func(c *BounceConfig) { c.Display.Height = 31 }, "even"},
		{"zero fps", func(c *BounceConfig) { c.Display.FPS = 0 }, "fps"},
		{"bad glyphs", func(c *BounceConfig) { c.Display.Glyphs = "xy" }, "glyph"},
		{"bad color", func(c *BounceConfig) { c.Display.Color = "octarine" }, "color"},
		{"negative radius", func(c *BounceConfig) { c.Physics.Radius = -1 }, "radius"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			_, err := cfg.Runtime()
			if err == nil {
				t.Fatal("Runtime() should fail")
			}
			if !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("error %q should mention %q", err, tc.substr)
			}
		})
	}
}

func TestRuntimeOptions(t *testing.T) {
	cfg := Default()
	cfg.Display.Glyphs = "blocks"
	cfg.Display.Color = "cyan"
	cfg.Display.CenteredSampling = true

	rt, err := cfg.Runtime()
	if err != nil {
		t.Fatalf("Runtime() failed: %v", err)
	}
	if rt.Glyphs != core.BlockGlyphs {
		t.Errorf("Glyphs = %q, expected blocks", rt.Glyphs.String())
	}
	if rt.Color != core.ColorCyan {
		t.Errorf("Color = %v, expected cyan", rt.Color)
	}
	if rt.Sample != core.CenterSample {
		t.Errorf("Sample = %v, expected CenterSample", rt.Sample)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, src, err := LoadWithSource("")
	if err != nil {
		t.Fatalf("LoadWithSource() failed: %v", err)
	}
	if src != "embedded" || cfg != Default() {
		t.Errorf("source = %q, cfg = %+v; expected embedded defaults", src, cfg)
	}

	// Local configs directory
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", FileName), []byte("display:\n  fps: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, src, _ = LoadWithSource("")
	if src != filepath.Join("configs", FileName) || cfg.Display.FPS != 20 {
		t.Errorf("source = %q, fps = %d; expected local config", src, cfg.Display.FPS)
	}

	// User directory wins over local
	userDir := filepath.Join(home, ".bounce")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	userPath := filepath.Join(userDir, "config.yaml")
	if err := os.WriteFile(userPath, []byte("display:\n  fps: 24\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, src, _ = LoadWithSource("")
	if src != userPath || cfg.Display.FPS != 24 {
		t.Errorf("source = %q, fps = %d; expected user config", src, cfg.Display.FPS)
	}

	// Custom path wins over everything
	custom := filepath.Join(work, "custom.yaml")
	if err := os.WriteFile(custom, []byte("display:\n  fps: 60\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, src, err = LoadWithSource(custom)
	if err != nil {
		t.Fatalf("LoadWithSource(custom) failed: %v", err)
	}
	if src != custom || cfg.Display.FPS != 60 {
		t.Errorf("source = %q, fps = %d; expected custom config", src, cfg.Display.FPS)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	if _, _, err := LoadWithSource(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadWithSource() should fail for a missing custom file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("display: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadWithSource(bad); err == nil {
		t.Error("LoadWithSource() should fail for malformed YAML")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Display.Color = "orange"
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}
