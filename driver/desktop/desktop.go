// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop connects glfw windows to the input pipeline: it
// translates glfw input callbacks into [events] sent to the admin
// queue, and applies tool cursors back to the window.
package desktop

import (
	"image"
	"runtime"

	"cogentcore.org/cad/events"
	"cogentcore.org/cad/view"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Binding connects one glfw window showing one viewport to an event
// queue. Construct with [Bind]. The callbacks run on the main thread
// inside [glfw.PollEvents]; they only send to the queue, which is safe
// to do from any goroutine.
type Binding struct {

	// Win is the bound glfw window.
	Win *glfw.Window

	// Vp is the viewport the window shows, stamped on every event.
	Vp view.Viewport

	// Queue is the destination event queue.
	Queue *events.Deque

	// OnClose, if set, is called when the user asks to close the
	// window. The app normally removes the viewport there.
	OnClose func()

	// OnKey, if set, sees every key press before it is sent and
	// reports whether it consumed it, for application shortcuts.
	OnKey func(code key.Codes, mods key.Modifiers) bool

	scale   float32       // content scale for position mapping
	lastPos image.Point   // previous cursor position, for motion deltas
	mods    key.Modifiers // as of the last key or button callback
	held    [4]bool       // pressed state per [events.Buttons]
	cursor  cursorState
}

// Bind installs input callbacks on the given window that translate its
// input into events for the given viewport, sent to the given queue.
func Bind(win *glfw.Window, vp view.Viewport, q *events.Deque) *Binding {
	b := &Binding{Win: win, Vp: vp, Queue: q, scale: 1}
	if runtime.GOOS == "darwin" {
		if sx, _ := win.GetContentScale(); sx > 0 {
			b.scale = sx
		}
	}
	win.SetMouseButtonCallback(b.mouseButton)
	win.SetCursorPosCallback(b.cursorPos)
	win.SetScrollCallback(b.scroll)
	win.SetKeyCallback(b.keyEvent)
	win.SetCloseCallback(b.closeReq)
	return b
}

func glfwMods(mod glfw.ModifierKey) key.Modifiers {
	var m key.Modifiers
	if mod&glfw.ModShift != 0 {
		m.SetFlag(true, key.Shift)
	}
	if mod&glfw.ModControl != 0 {
		m.SetFlag(true, key.Control)
	}
	if mod&glfw.ModAlt != 0 {
		m.SetFlag(true, key.Alt)
	}
	if mod&glfw.ModSuper != 0 {
		m.SetFlag(true, key.Meta)
	}
	return m
}

func glfwButton(button glfw.MouseButton) events.Buttons {
	switch button {
	case glfw.MouseButtonMiddle:
		return events.Middle
	case glfw.MouseButtonRight:
		return events.Right
	}
	return events.Left
}

// posToPoint maps a window cursor position to event pixels, applying
// the content scale on platforms that report positions in points.
func (b *Binding) posToPoint(x, y float64) image.Point {
	return image.Pt(int(b.scale*float32(x)), int(b.scale*float32(y)))
}

func (b *Binding) send(ev events.Event) {
	ev.Init()
	b.Queue.Send(ev)
}

func (b *Binding) mouseButton(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mod glfw.ModifierKey) {
	b.mods = glfwMods(mod)
	but := glfwButton(button)
	if runtime.GOOS == "darwin" && but == events.Left && mod&glfw.ModControl != 0 {
		but = events.Right // control-click is the Mac right click
	}
	typ := events.MouseDown
	if action == glfw.Release {
		typ = events.MouseUp
	}
	b.held[but] = typ == events.MouseDown
	x, y := gw.GetCursorPos()
	where := b.posToPoint(x, y)
	b.lastPos = where
	b.send(events.NewMouse(b.Vp, typ, but, where, b.mods))
}

// heldButton returns the pressed button a motion is attributed to.
func (b *Binding) heldButton() events.Buttons {
	for _, but := range []events.Buttons{events.Left, events.Middle, events.Right} {
		if b.held[but] {
			return but
		}
	}
	return events.NoButton
}

func (b *Binding) cursorPos(gw *glfw.Window, x, y float64) {
	where := b.posToPoint(x, y)
	prev := b.lastPos
	b.lastPos = where
	b.send(events.NewMouseMove(b.Vp, b.heldButton(), where, prev, b.mods))
}

func (b *Binding) scroll(gw *glfw.Window, xoff, yoff float64) {
	// positive y rolls away from the user throughout the pipeline
	delta := math32.Vec2(float32(xoff), float32(yoff)).MulScalar(10 * events.ScrollWheelSpeed)
	if runtime.GOOS == "darwin" {
		delta.SetMulScalar(b.scale)
	} else {
		delta.SetMulScalar(4) // coarser wheel detents elsewhere
	}
	x, y := gw.GetCursorPos()
	b.send(events.NewScroll(b.Vp, b.posToPoint(x, y), delta, b.mods))
}

func (b *Binding) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	b.mods = glfwMods(mod)
	typ := events.KeyDown
	if action == glfw.Release {
		typ = events.KeyUp
	}
	code := keyCode(ky)
	if typ == events.KeyDown && b.OnKey != nil && b.OnKey(code, b.mods) {
		return
	}
	b.send(events.NewKey(b.Vp, typ, key.CodeRuneMap[code], code, b.mods))
}

func (b *Binding) closeReq(gw *glfw.Window) {
	if b.OnClose != nil {
		b.OnClose()
	}
}
