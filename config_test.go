package gesture

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Threshold != 3 {
		t.Errorf("Threshold = %v, want 3", cfg.Threshold)
	}
	if cfg.FrameInterval != DefaultFrameInterval {
		t.Errorf("FrameInterval = %v, want %v", cfg.FrameInterval, DefaultFrameInterval)
	}
	if len(cfg.IgnoreKinds) != 3 {
		t.Errorf("IgnoreKinds = %v, want the three form control kinds", cfg.IgnoreKinds)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		want string
	}{
		{"negative threshold", func(c *Config) { c.Threshold = -0.5 }, "threshold"},
		{"negative interval", func(c *Config) { c.FrameInterval = -time.Millisecond }, "frame interval"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Threshold = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero threshold should be valid, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"threshold": 4.5, "frameIntervalMs": 16, "ignore": ["input", "select"], "debug": true}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Threshold != 4.5 {
		t.Errorf("Threshold = %v, want 4.5", cfg.Threshold)
	}
	if cfg.FrameInterval != 16*time.Millisecond {
		t.Errorf("FrameInterval = %v, want 16ms", cfg.FrameInterval)
	}
	if len(cfg.IgnoreKinds) != 2 || cfg.IgnoreKinds[0] != KindInput || cfg.IgnoreKinds[1] != KindSelect {
		t.Errorf("IgnoreKinds = %v", cfg.IgnoreKinds)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()
	if cfg.Threshold != def.Threshold || cfg.FrameInterval != def.FrameInterval || len(cfg.IgnoreKinds) != len(def.IgnoreKinds) {
		t.Errorf("LoadConfig({}) = %+v, want defaults", cfg)
	}

	// An explicit empty list tracks presses on every kind.
	cfg, err = LoadConfig([]byte(`{"ignore": [], "threshold": 0}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.IgnoreKinds) != 0 || cfg.Threshold != 0 {
		t.Errorf("IgnoreKinds = %v Threshold = %v, want none and 0", cfg.IgnoreKinds, cfg.Threshold)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad json", `{"threshold": `, "parse config"},
		{"unknown kind", `{"ignore": ["button"]}`, `unknown node kind "button"`},
		{"negative threshold", `{"threshold": -1}`, "threshold must be non-negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadConfig() error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigIgnoreApplies(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"ignore": []}`))
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSceneWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	input := NewFormControl("input", KindInput, 100, 100)
	s.Root().AddChild(input)
	got := recordGestures(s, input)

	s.MouseDown(10, 10, MouseButtonLeft)
	s.MouseMove(20, 10)
	checkTypes(t, *got, EventMoveStart)
}
