// Package term feeds tcell terminal mouse events into a gesture scene.
//
// Terminal cells are mapped to page coordinates so the recognizer's pixel
// threshold keeps its meaning: with the default 8x16 cell, moving the
// pointer by one column crosses the 3px threshold.
package term

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/gesture"
)

// Options configures the cell to page coordinate mapping.
type Options struct {
	// CellWidth and CellHeight are the page size of one terminal cell.
	// Zero selects 8 and 16.
	CellWidth  float64
	CellHeight float64
	// OnEvent receives every non-mouse event on the loop goroutine.
	OnEvent func(ev tcell.Event)
}

var buttons = [...]struct {
	mask   tcell.ButtonMask
	button gesture.MouseButton
}{
	{tcell.Button1, gesture.MouseButtonLeft},
	{tcell.Button2, gesture.MouseButtonRight},
	{tcell.Button3, gesture.MouseButtonMiddle},
}

// Source converts tcell mouse reports, which carry the full button mask
// on every event, into press, move and release notifications.
type Source struct {
	scene *gesture.Scene
	opts  Options

	held   tcell.ButtonMask
	known  bool
	x, y   float64
	events uint64
}

// New creates a source feeding scene.
func New(scene *gesture.Scene, opts Options) *Source {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 16
	}
	return &Source{scene: scene, opts: opts}
}

// PagePosition returns the page coordinates of the center of cell (col, row).
func (s *Source) PagePosition(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.opts.CellWidth, (float64(row) + 0.5) * s.opts.CellHeight
}

// Cell returns the terminal cell containing page point (x, y).
func (s *Source) Cell(x, y float64) (col, row int) {
	return int(x / s.opts.CellWidth), int(y / s.opts.CellHeight)
}

// HandleEvent feeds one tcell event to the scene. Returns true if it was a
// mouse event. Must run on the goroutine that owns the scene.
func (s *Source) HandleEvent(ev tcell.Event) bool {
	me, ok := ev.(*tcell.EventMouse)
	if !ok {
		if s.opts.OnEvent != nil {
			s.opts.OnEvent(ev)
		}
		return false
	}
	s.events++
	s.scene.SetModifiers(modifiers(me.Modifiers()))

	col, row := me.Position()
	x, y := s.PagePosition(col, row)
	if !s.known || x != s.x || y != s.y {
		s.known = true
		s.x, s.y = x, y
		s.scene.MouseMove(x, y)
	}

	mask := me.Buttons()
	for _, b := range buttons {
		was, now := s.held&b.mask != 0, mask&b.mask != 0
		switch {
		case now && !was:
			s.scene.MouseDown(x, y, b.button)
		case was && !now:
			s.scene.MouseUp(x, y, b.button)
		}
	}
	s.held = mask & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	return true
}

// Events returns how many mouse events have been handled.
func (s *Source) Events() uint64 {
	return s.events
}

func modifiers(m tcell.ModMask) gesture.KeyModifiers {
	var mods gesture.KeyModifiers
	if m&tcell.ModShift != 0 {
		mods |= gesture.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= gesture.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= gesture.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= gesture.ModMeta
	}
	return mods
}

// Run polls screen and posts every event to loop, which must be the
// scene's scheduler, until ctx is cancelled or the screen is finalized.
// Mouse reporting is enabled on the screen. Run blocks while loop runs.
//
// The screen stays owned by the caller. After Run returns on cancellation
// the polling goroutine is still parked in PollEvent; it exits when the
// caller calls screen.Fini.
func (s *Source) Run(ctx context.Context, screen tcell.Screen, loop *gesture.TimerLoop) error {
	screen.EnableMouse()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				cancel()
				return
			}
			loop.Post(func() { s.HandleEvent(ev) })
			if ctx.Err() != nil {
				return
			}
		}
	}()

	err := loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
