// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"cogentcore.org/cad/view"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
)

var (
	// ScrollWheelSpeed controls how fast the scroll wheel moves (typically
	// interpreted as pixels per wheel step).
	// This is updated from the input settings.
	ScrollWheelSpeed = float32(1)
)

// Buttons is a raw device mouse button. The mapping to logical CAD
// buttons (data / reset / middle) happens in the tool input state.
type Buttons int32 //enums:enum

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

// Mouse is a basic mouse event for all mouse events except Scroll
type Mouse struct {
	Base
}

func NewMouse(vp view.Viewport, typ Types, but Buttons, where image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Typ = typ
	ev.SetUnique()
	ev.Vp = vp
	ev.Button = but
	ev.Where = where
	ev.Mods = mods
	return ev
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Button, ev.Where, ev.Mods.ModifiersString(), ev.Time().Format("04:05"))
}

func (ev Mouse) HasPos() bool {
	return true
}

func NewMouseMove(vp view.Viewport, but Buttons, where, prev image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Typ = MouseMove
	// not unique
	ev.Vp = vp
	ev.Button = but
	ev.Where = where
	ev.Prev = prev
	ev.Mods = mods
	return ev
}

// MouseScroll is for mouse scrolling, recording the delta of the scroll
type MouseScroll struct {
	Mouse

	// Delta is the amount of scrolling in each axis, which is always in
	// pixel/dot units (see [ScrollWheelSpeed]).
	Delta math32.Vector2
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Delta, ev.Where, ev.Mods.ModifiersString(), ev.Time().Format("04:05"))
}

func NewScroll(vp view.Viewport, where image.Point, delta math32.Vector2, mods key.Modifiers) *MouseScroll {
	ev := &MouseScroll{}
	ev.Typ = Scroll
	// not unique, but delta integrated!
	ev.Vp = vp
	ev.Where = where
	ev.Delta = delta
	ev.Mods = mods
	return ev
}

// Clone returns a duplicate of this scroll event,
// with the same type and delta.
func (ev *MouseScroll) Clone() *MouseScroll {
	nev := &MouseScroll{}
	nev.Base = *ev.Base.Clone()
	nev.Delta = ev.Delta
	return nev
}
