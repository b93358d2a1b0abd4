package gesture

import (
	"fmt"
	"log/slog"
	"os"
)

// globalDebug enables disposed-node and tree checks for every scene. Set via
// Scene.SetDebugMode.
var globalDebug bool

// SetDebugMode enables or disables debug checks and stderr logging of
// session lifecycle and per-frame recognizer counters.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		s.rec.SetLogger(newDebugLogger(os.Stderr))
	} else if s.rec.cfg.Logger == nil {
		s.rec.SetLogger(nil)
	} else {
		s.rec.SetLogger(s.rec.cfg.Logger)
	}
	s.lastStats = Stats{}
}

// debugLog logs the recognizer counters whenever they change between frames.
func (s *Scene) debugLog(stats Stats) {
	if !s.debug || stats == s.lastStats {
		return
	}
	s.lastStats = stats
	s.rec.log.Debug("frame",
		slog.Int("active", stats.Active),
		slog.Uint64("opened", stats.Opened),
		slog.Uint64("cancelled", stats.Cancelled),
		slog.Uint64("abandoned", stats.Abandoned),
		slog.Uint64("movestarts", stats.MoveStarts),
		slog.Uint64("moves", stats.Moves),
		slog.Uint64("moveends", stats.MoveEnds))
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree or listener operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("gesture debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[gesture] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
