// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tool

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/events/key"
)

// Standard viewing tool names the idle tool starts. The viewing
// package registers tools under these names at startup.
const (
	PanToolName    = "view.pan"
	RotateToolName = "view.rotate"
	ZoomToolName   = "view.zoom"
	FitToolName    = "view.fit"
)

// Idle is the fallback tool, always installed and never exited. It
// turns unclaimed viewing input into the standard viewing tools:
// dragging the middle button pans, with Shift held it rotates, a
// middle button double click fits the view, the wheel zooms through
// the wired [WheelProcessor], and touch moves, pinches, and double
// taps start the matching viewing tools.
type Idle struct {
	ToolBase
}

// NewIdle returns the idle tool for the given admin.
func NewIdle(ta *Admin) *Idle {
	id := &Idle{}
	id.InitTool(id, ta, "idle")
	return id
}

func (id *Idle) Kind() Kinds { return KindIdle }

// startViewTool starts the named viewing tool, reporting whether it
// was found and constructed. The tool picks up any in flight drag from
// the input state in its PostInstall.
func (id *Idle) startViewTool(name string) bool {
	err := id.Admin.RunTool(name)
	if err != nil {
		errors.Log(err)
		return false
	}
	return true
}

func (id *Idle) ButtonDown(ev *ButtonEvent) bool {
	if ev.Button == MiddleButton && ev.IsDoubleClick {
		return id.startViewTool(FitToolName)
	}
	return false
}

func (id *Idle) ButtonUp(ev *ButtonEvent) bool { return false }

func (id *Idle) Motion(ev *ButtonEvent) {}

func (id *Idle) StartDrag(ev *ButtonEvent) bool {
	if ev.Button != MiddleButton {
		return false
	}
	name := PanToolName
	if key.HasAnyModifier(ev.Mods, key.Shift) {
		name = RotateToolName
	}
	return id.startViewTool(name)
}

func (id *Idle) EndDrag(ev *ButtonEvent) bool { return false }

func (id *Idle) MotionStopped(ev *ButtonEvent) {}

// Wheel hands unclaimed wheel events to the wired wheel processor,
// which zooms about the pointer.
func (id *Idle) Wheel(ev *WheelEvent) bool {
	if ev.Delta == 0 || id.Admin.Wheel == nil {
		return false
	}
	errors.Log(id.Admin.Wheel.ProcessWheel(ev))
	return true
}

// Gesture starts viewing tools from touch input: one finger moves
// rotate, multi finger moves pan, pinches zoom, and a double tap fits
// the view. The started tool receives this gesture as its first, so
// the manipulation begins at the gesture point.
func (id *Idle) Gesture(ge *GestureEvent) bool {
	name := ""
	switch ge.Gesture {
	case GestureSingleMove:
		name = RotateToolName
	case GestureMultiMove:
		name = PanToolName
	case GesturePinch:
		name = ZoomToolName
	case GestureDoubleTap:
		return id.startViewTool(FitToolName)
	default:
		return false
	}
	if !id.startViewTool(name) {
		return false
	}
	if gc, ok := id.Admin.ViewTool().(GestureConsumer); ok {
		gc.Gesture(ge)
	}
	return true
}
