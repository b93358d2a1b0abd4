package gesture

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pollState holds what the scene last saw from Ebitengine's input state.
type pollState struct {
	enabled bool

	touchIDs []ebiten.TouchID
	changed  TouchList
}

var polledButtons = [...]struct {
	host   ebiten.MouseButton
	button MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// SetHostInput enables or disables polling Ebitengine's mouse and touch
// state in Update. Run enables it. Scenes fed only through the raw input
// methods or injection leave it off.
func (s *Scene) SetHostInput(enabled bool) {
	s.poll.enabled = enabled
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Scene.Update to turn this frame's input into
// raw events. An injected event replaces host input for the frame it is
// consumed in.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if !s.poll.enabled {
		return
	}
	s.modifiers = readModifiers()
	s.pollMouse()
	s.pollTouches()
}

// pollMouse reports cursor movement first, then button transitions at the
// new position.
func (s *Scene) pollMouse() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	s.moveCursor(x, y)
	for _, b := range polledButtons {
		if inpututil.IsMouseButtonJustPressed(b.host) {
			s.MouseDown(x, y, b.button)
		}
		if inpututil.IsMouseButtonJustReleased(b.host) {
			s.MouseUp(x, y, b.button)
		}
	}
}

// pollTouches maps Ebitengine touch IDs straight to identifiers; they are
// never negative, so they cannot collide with MouseIdentifier.
func (s *Scene) pollTouches() {
	s.poll.touchIDs = inpututil.AppendJustPressedTouchIDs(s.poll.touchIDs[:0])
	s.poll.changed = s.poll.changed[:0]
	for _, id := range s.poll.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.poll.changed = append(s.poll.changed, Touch{Identifier: Identifier(id), PageX: float64(x), PageY: float64(y)})
	}
	if len(s.poll.changed) > 0 {
		s.TouchStart(s.poll.changed...)
	}

	s.poll.touchIDs = ebiten.AppendTouchIDs(s.poll.touchIDs[:0])
	s.poll.changed = s.poll.changed[:0]
	for _, id := range s.poll.touchIDs {
		if inpututil.TouchPressDuration(id) <= 1 {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		px, py := inpututil.TouchPositionInPreviousTick(id)
		if x == px && y == py {
			continue
		}
		s.poll.changed = append(s.poll.changed, Touch{Identifier: Identifier(id), PageX: float64(x), PageY: float64(y)})
	}
	if len(s.poll.changed) > 0 {
		s.TouchMove(s.poll.changed...)
	}

	s.poll.touchIDs = inpututil.AppendJustReleasedTouchIDs(s.poll.touchIDs[:0])
	s.poll.changed = s.poll.changed[:0]
	for _, id := range s.poll.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		s.poll.changed = append(s.poll.changed, Touch{Identifier: Identifier(id), PageX: float64(x), PageY: float64(y)})
	}
	if len(s.poll.changed) > 0 {
		s.TouchEnd(s.poll.changed...)
	}
}
