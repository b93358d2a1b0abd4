package gesture

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// DefaultThreshold is the distance in pixels a press must travel before it
// becomes a gesture.
const DefaultThreshold = 3.0

// Config controls recognition. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	// Threshold is the minimum distance from the press point, in pixels.
	Threshold float64
	// FrameInterval is the period for hosts without a frame callback to
	// pass to NewTimerLoop. NewSceneWithConfig does not read it; a scene
	// with no Scheduler always runs a FrameLoop from Update.
	FrameInterval time.Duration
	// IgnoreKinds lists node kinds whose presses are never tracked.
	IgnoreKinds []NodeKind
	// Scheduler supplies frames and deferred ticks. NewScene defaults it to
	// a FrameLoop driven by Scene.Update.
	Scheduler Scheduler
	// Logger receives session lifecycle messages at debug level.
	Logger *slog.Logger
	// Debug enables debug logging to stderr and disposed-node checks.
	Debug bool
}

// DefaultConfig returns the standard configuration: a 3px threshold, a 25ms
// fallback frame and form controls ignored.
func DefaultConfig() Config {
	return Config{
		Threshold:     DefaultThreshold,
		FrameInterval: DefaultFrameInterval,
		IgnoreKinds:   []NodeKind{KindInput, KindTextArea, KindSelect},
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("threshold must be non-negative, got %v", c.Threshold)
	}
	if c.FrameInterval < 0 {
		return fmt.Errorf("frame interval must be non-negative, got %v", c.FrameInterval)
	}
	return nil
}

// logger resolves the configured logger, falling back to a debug logger on
// stderr in debug mode and to a discarding logger otherwise.
func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	if c.Debug {
		return newDebugLogger(os.Stderr)
	}
	return slog.New(slog.DiscardHandler)
}

func newDebugLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With(slog.String("component", "gesture"))
}

// fileConfig is the JSON shape accepted by LoadConfig.
type fileConfig struct {
	Threshold       *float64 `json:"threshold,omitempty"`
	FrameIntervalMS *int     `json:"frameIntervalMs,omitempty"`
	Ignore          []string `json:"ignore,omitempty"`
	Debug           bool     `json:"debug,omitempty"`
}

// LoadConfig parses a JSON configuration on top of DefaultConfig:
//
//	{"threshold": 4, "frameIntervalMs": 16, "ignore": ["input", "select"], "debug": true}
func LoadConfig(jsonData []byte) (Config, error) {
	cfg := DefaultConfig()
	var fc fileConfig
	if err := json.Unmarshal(jsonData, &fc); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if fc.Threshold != nil {
		cfg.Threshold = *fc.Threshold
	}
	if fc.FrameIntervalMS != nil {
		cfg.FrameInterval = time.Duration(*fc.FrameIntervalMS) * time.Millisecond
	}
	if fc.Ignore != nil {
		kinds := make([]NodeKind, 0, len(fc.Ignore))
		for _, name := range fc.Ignore {
			k, ok := parseNodeKind(name)
			if !ok {
				return cfg, fmt.Errorf("parse config: unknown node kind %q", name)
			}
			kinds = append(kinds, k)
		}
		cfg.IgnoreKinds = kinds
	}
	cfg.Debug = fc.Debug
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func parseNodeKind(name string) (NodeKind, bool) {
	for _, k := range []NodeKind{KindElement, KindInput, KindTextArea, KindSelect} {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}
