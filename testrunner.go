package gesture

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	ID     int     `json:"id,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "click": true, "drag": true,
	"touchstart": true, "touchmove": true, "touchend": true, "touchcancel": true, "touchdrag": true,
	"wait": true, "mark": true,
}

// TestRunner sequences injected input events across frames for scripted
// gesture testing. Attach to a Scene via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	marks     []Mark
}

// Mark is the recognizer state recorded by a "mark" step.
type Mark struct {
	Label string
	Stats Stats
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.ID < 0 && st.Action != "wait" && st.Action != "mark" {
			return nil, fmt.Errorf("parse test script: step %d: negative touch id %d", i, st.ID)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before processInput each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Marks returns the states recorded by "mark" steps so far.
func (r *TestRunner) Marks() []Mark {
	return r.marks
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	id := Identifier(st.ID)
	frames := max(st.Frames, 2)
	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "touchstart":
		s.InjectTouchStart(id, st.X, st.Y)
	case "touchmove":
		s.InjectTouchMove(id, st.X, st.Y)
	case "touchend":
		s.InjectTouchEnd(id, st.X, st.Y)
	case "touchcancel":
		s.InjectTouchCancel(id, st.X, st.Y)
	case "touchdrag":
		s.InjectTouchDrag(id, st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "mark":
		m := Mark{Label: st.Label, Stats: s.rec.Stats()}
		r.marks = append(r.marks, m)
		s.rec.log.Info("test mark",
			slog.String("label", m.Label),
			slog.Int("active", m.Stats.Active),
			slog.Uint64("movestarts", m.Stats.MoveStarts),
			slog.Uint64("moves", m.Stats.Moves),
			slog.Uint64("moveends", m.Stats.MoveEnds))
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
