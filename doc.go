// Package gesture recognizes pointer gestures on a retained node tree.
//
// Raw mouse and touch input becomes three semantic events: movestart once
// a press has travelled past a small threshold, move at most once per frame
// while the pointer keeps moving, and moveend when the pointer is released.
// Every mouse and touch contact is tracked independently, so several fingers
// can drive separate gestures at once.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates an [Ebitengine]
// window and polls its mouse and touch state for you:
//
//	scene := gesture.NewScene()
//	box := gesture.NewElement("box", 80, 80)
//	scene.Root().AddChild(box)
//
//	var x0, y0 float64
//	scene.On(box, gesture.EventMoveStart, func(e *gesture.Event) { x0, y0 = box.X, box.Y })
//	scene.On(box, gesture.EventMove, func(e *gesture.Event) {
//		box.SetPosition(x0+e.Gesture.DistX, y0+e.Gesture.DistY)
//	})
//	gesture.Run(scene, gesture.RunConfig{Title: "Drag", Width: 640, Height: 480})
//
// Any other host can feed raw input directly with [Scene.MouseDown],
// [Scene.MouseMove], [Scene.MouseUp] and the Touch* methods, then call
// [Scene.Update] once per frame. The term subpackage does this for [tcell]
// terminal mouse events.
//
// # Interest
//
// Gestures are only recognized for presses whose target, or an ancestor of
// it, has a movestart, move or moveend listener bound. Binding the first
// such listener on a node also stops host-native drags and text selection
// from starting on it. Form controls ([KindInput], [KindTextArea],
// [KindSelect]) are left alone by default.
//
// # Frames
//
// move events are coalesced to one per frame. By default the frame is a
// call to [Scene.Update]; a [TimerLoop] supplies 25ms frames for hosts
// without one. Listeners may call [Event.PreventDefault] on movestart to
// drop the gesture. DeltaX/DeltaY on a coalesced move cover only the last
// raw update; use DistX/DistY to track position.
//
// # Testing
//
// [Scene.InjectDrag] and friends queue synthetic input consumed one event
// per frame, and [LoadTestScript] sequences it from JSON. Gesture events can
// be published into a [Donburi] world with the gesture/ecs module.
//
// [Ebitengine]: https://ebitengine.org
// [tcell]: https://github.com/gdamore/tcell
// [Donburi]: https://github.com/yohamta/donburi
package gesture
