// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"image"

	"cogentcore.org/cad/tool"
	"cogentcore.org/cad/view"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cursors"
	"cogentcore.org/core/math32"
)

// WindowArea fits the view to a rectangle entered as two data points
// or a drag. The view's aspect is preserved by covering the rectangle
// fully, and the transition animates. The second point commits and the
// tool exits.
type WindowArea struct {
	tool.ToolBase

	// Set supplies the animation time.
	Set *Settings

	// Vp is the viewport being windowed.
	Vp view.Viewport

	first     math32.Vector3
	cur       math32.Vector3
	havePoint bool
}

// NewWindowArea returns a new window area tool.
func NewWindowArea(ta *tool.Admin, set *Settings) *WindowArea {
	if set == nil {
		set = &Settings{}
		set.Defaults()
	}
	w := &WindowArea{Set: set}
	w.InitTool(w, ta, WindowAreaToolName)
	return w
}

func (w *WindowArea) Kind() tool.Kinds { return tool.KindView }

func (w *WindowArea) PostInstall() {
	w.Admin.SetPrompt("Window area: enter the first corner")
	if vp := w.Admin.State.Vp; vp != nil {
		vp.SetCursor(cursors.Crosshair)
	}
}

func (w *WindowArea) CleanupTool() {
	if w.Vp != nil {
		w.Vp.SetCursor(cursors.Arrow)
		w.Vp.NeedsRender()
	}
}

// Rect returns the pixel rectangle between the first corner and the
// current point, and whether one is active, for hosts drawing the
// rubber band.
func (w *WindowArea) Rect() (image.Rectangle, bool) {
	if !w.havePoint {
		return image.Rectangle{}, false
	}
	r := image.Rect(int(w.first.X), int(w.first.Y), int(w.cur.X), int(w.cur.Y))
	return r.Canon(), true
}

func (w *WindowArea) ButtonDown(ev *tool.ButtonEvent) bool {
	switch ev.Button {
	case tool.ResetButton:
		w.This.ExitTool()
		return true
	case tool.DataButton:
	default:
		return false
	}
	if ev.Vp == nil {
		return true
	}
	if !w.havePoint || ev.Vp != w.Vp {
		w.Vp = ev.Vp
		w.first = ev.ViewPoint
		w.cur = ev.ViewPoint
		w.havePoint = true
		w.Admin.SetPrompt("Window area: enter the opposite corner")
		return true
	}
	w.commit(ev.ViewPoint)
	return true
}

func (w *WindowArea) ButtonUp(ev *tool.ButtonEvent) bool { return w.havePoint }

func (w *WindowArea) Motion(ev *tool.ButtonEvent) {
	if !w.havePoint || ev.Vp != w.Vp {
		return
	}
	w.cur = ev.ViewPoint
	w.Vp.NeedsRender()
}

func (w *WindowArea) StartDrag(ev *tool.ButtonEvent) bool {
	return w.havePoint && ev.Button == tool.DataButton
}

func (w *WindowArea) EndDrag(ev *tool.ButtonEvent) bool {
	if !w.havePoint || ev.Vp != w.Vp {
		return false
	}
	if viewDist(ev.ViewPoint, w.first) < 2 {
		// a click, not a window drag; wait for the second corner
		return true
	}
	w.commit(ev.ViewPoint)
	return true
}

func (w *WindowArea) MotionStopped(ev *tool.ButtonEvent) {}

// commit fits the view to the rectangle spanned to the given second
// corner and exits.
func (w *WindowArea) commit(second math32.Vector3) {
	defer w.This.ExitTool()
	vp := w.Vp
	sz := vp.Geom().Size
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	rw := math32.Abs(second.X - w.first.X)
	rh := math32.Abs(second.Y - w.first.Y)
	if rw < 2 && rh < 2 {
		return
	}
	// cover the rectangle: scale by the larger fractional extent
	frac := math32.Max(rw/float32(sz.X), rh/float32(sz.Y))
	ctr := math32.Vec3(0.5*(w.first.X+second.X), 0.5*(w.first.Y+second.Y), w.first.Z)
	rcw := vp.ViewToWorld(ctr)
	f1 := vp.Frustum().ScaleAbout(rcw, frac)
	// recenter so the rectangle center lands at the viewport center,
	// compared at the rectangle's own depth
	var cam view.Camera
	if err := cam.SetFromFrustum(f1); err != nil {
		errors.Log(err)
		return
	}
	depth := cam.WorldToView(rcw, sz).Z
	vcw := cam.ViewToWorld(math32.Vec3(0.5*float32(sz.X), 0.5*float32(sz.Y), depth), sz)
	target := f1.Translate(rcw.Sub(vcw))
	if err := target.Valid(); err != nil {
		errors.Log(err)
		return
	}
	vp.SaveUndo()
	errors.Log(vp.Animator().Start(vp, target, w.Set.animationSecs()))
}
