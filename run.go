package gesture

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	ShowDebug bool
	// Background fills the screen before the draw callback runs. Nil leaves
	// the screen cleared to transparent black.
	Background color.Color
}

// SetUpdateFunc sets a callback that Run invokes each tick before
// Scene.Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDrawFunc sets a callback that Run invokes each frame to draw the scene.
func (s *Scene) SetDrawFunc(fn func(screen *ebiten.Image)) {
	s.drawFunc = fn
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene *Scene
	cfg   RunConfig
}

func (g *gameShell) Update() error {
	if g.scene.updateFunc != nil {
		if err := g.scene.updateFunc(); err != nil {
			return err
		}
	}
	g.scene.Update()
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	if g.cfg.Background != nil {
		screen.Fill(g.cfg.Background)
	}
	if g.scene.drawFunc != nil {
		updateWorldTransform(g.scene.root, identityTransform, false)
		g.scene.drawFunc(screen)
	}
	if g.cfg.ShowDebug {
		g.scene.DrawDebug(screen)
	}
}

func (g *gameShell) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives the scene with Ebitengine's game loop,
// polling the host mouse and touch state every tick. It blocks until the
// window closes or the update callback returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	scene.SetHostInput(true)
	return ebiten.RunGame(&gameShell{scene: scene, cfg: cfg})
}
