package gesture

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DebugText returns a summary of the recognizer counters and live sessions,
// one session per line.
func (s *Scene) DebugText() string {
	st := s.rec.Stats()
	var b strings.Builder
	fmt.Fprintf(&b, "sessions: %d  opened: %d  cancelled: %d  abandoned: %d\n",
		st.Active, st.Opened, st.Cancelled, st.Abandoned)
	fmt.Fprintf(&b, "movestart: %d  move: %d  moveend: %d\n",
		st.MoveStarts, st.Moves, st.MoveEnds)
	for _, ss := range s.rec.sessions.sorted() {
		who := "mouse"
		if !ss.contact.Identifier.IsMouse() {
			who = fmt.Sprintf("touch %d", int(ss.contact.Identifier))
		}
		if ss.state != sessionConfirmed {
			fmt.Fprintf(&b, "%s %s on %q\n", who, ss.state, nodeName(ss.contact.Target))
			continue
		}
		g := ss.gesture
		fmt.Fprintf(&b, "%s %s on %q dist=(%.0f,%.0f)\n",
			who, ss.state, nodeName(g.Target), g.DistX, g.DistY)
	}
	return b.String()
}

// DrawDebug prints DebugText and the current TPS/FPS in the top-left corner.
func (s *Scene) DrawDebug(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f\n%s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), s.DebugText()))
}

var whitePixel *ebiten.Image

// DrawBounds fills n's Width x Height box, in its current world transform,
// with clr.
func DrawBounds(screen *ebiten.Image, n *Node, clr color.Color) {
	if n.Width == 0 && n.Height == 0 {
		return
	}
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	m := n.worldTransform
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(n.Width, n.Height)
	var world ebiten.GeoM
	world.SetElement(0, 0, m[0])
	world.SetElement(1, 0, m[1])
	world.SetElement(0, 1, m[2])
	world.SetElement(1, 1, m[3])
	world.SetElement(0, 2, m[4])
	world.SetElement(1, 2, m[5])
	op.GeoM.Concat(world)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(whitePixel, &op)
}
