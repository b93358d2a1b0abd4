package gesture

import (
	"strings"
	"testing"
)

func TestDebugText(t *testing.T) {
	s, _, _ := newDragScene()

	if got := s.DebugText(); !strings.HasPrefix(got, "sessions: 0  opened: 0") {
		t.Errorf("idle DebugText = %q", got)
	}

	s.MouseDown(100, 100, MouseButtonLeft)
	s.MouseMove(110, 104)
	s.TouchStart(Touch{Identifier: 2, PageX: 60, PageY: 60})

	lines := strings.Split(strings.TrimRight(s.DebugText(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("DebugText lines = %d, want 4:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.HasPrefix(lines[0], "sessions: 2  opened: 2") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "movestart: 1  move: 0  moveend: 0" {
		t.Errorf("line 1 = %q", lines[1])
	}
	if lines[2] != `mouse confirmed on "box" dist=(10,4)` {
		t.Errorf("line 2 = %q", lines[2])
	}
	if lines[3] != `touch 2 watching on "box"` {
		t.Errorf("line 3 = %q", lines[3])
	}
}
