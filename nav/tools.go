// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"cogentcore.org/cad/tool"
	"cogentcore.org/cad/view"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// Names the viewing tools register under, besides the ones the idle
// tool knows in [tool.PanToolName] and friends.
const (
	ScrollToolName     = "view.scroll"
	WalkToolName       = "view.walk"
	FlyToolName        = "view.fly"
	LookToolName       = "view.look"
	StandardToolName   = "view.standard"
	WindowAreaToolName = "view.window-area"
	ViewUndoToolName   = "view.undo"
	ViewRedoToolName   = "view.redo"
)

// Register adds the standard viewing tools to the given registry,
// reading their parameters from set. The idle tool and application
// shortcuts start them by these names.
func Register(rg *tool.Registry, set *Settings) {
	if set == nil {
		set = &Settings{}
		set.Defaults()
	}
	manip := func(name, doc string, mask HandleTypes, oneShot bool, prompt string) {
		rg.Add(name, doc, func(ta *tool.Admin, args ...any) (tool.Tool, error) {
			m := NewManip(ta, name, set, mask, oneShot)
			m.Prompt = prompt
			return m, nil
		})
	}
	manip(tool.PanToolName, "pan the view",
		MaskOf(HandlePan), true,
		"Pan view: drag to move the view")
	manip(tool.RotateToolName, "rotate the view about the target center",
		MaskOf(HandleRotate, HandleTargetCenter), true,
		"Rotate view: drag to orbit, Alt locks the axis")
	manip(tool.ZoomToolName, "zoom the view about a point",
		MaskOf(HandleZoom), true,
		"Zoom view: drag up to zoom in, down to zoom out")
	manip(ScrollToolName, "scroll the view toward the pointer",
		MaskOf(HandleScroll), true,
		"Scroll view: drag away from the start point and hold")
	manip(WalkToolName, "walk the camera over its horizontal plane",
		MaskOf(HandleWalk), false,
		"Walk: drag up to move forward, sideways to steer")
	manip(FlyToolName, "fly the camera along its look direction",
		MaskOf(HandleFly), false,
		"Fly: drag to steer")
	manip(LookToolName, "turn the camera in place",
		MaskOf(HandleLook), false,
		"Look: drag to turn")
	manip(StandardToolName, "rotate, pan, and zoom in one tool",
		MaskOf(HandleRotate, HandleTargetCenter, HandlePan, HandleZoom), false,
		"View: drag to rotate, Shift drag pans, Ctrl drag zooms")

	rg.Add(WindowAreaToolName, "fit the view to a rectangle",
		func(ta *tool.Admin, args ...any) (tool.Tool, error) {
			return NewWindowArea(ta, set), nil
		})
	rg.Add(tool.FitToolName, "fit the view to the displayed extents",
		func(ta *tool.Admin, args ...any) (tool.Tool, error) {
			return newOneShot(ta, tool.FitToolName, argViewport(args), func(vp view.Viewport) {
				if !FitView(vp, set) {
					ta.ShowMessage("Nothing to fit")
				}
			}), nil
		})
	rg.Add(ViewUndoToolName, "restore the previous view",
		func(ta *tool.Admin, args ...any) (tool.Tool, error) {
			return newOneShot(ta, ViewUndoToolName, argViewport(args), func(vp view.Viewport) {
				animateViewRestore(vp, set, vp.Undo)
			}), nil
		})
	rg.Add(ViewRedoToolName, "restore the next view",
		func(ta *tool.Admin, args ...any) (tool.Tool, error) {
			return newOneShot(ta, ViewRedoToolName, argViewport(args), func(vp view.Viewport) {
				animateViewRestore(vp, set, vp.Redo)
			}), nil
		})
}

// oneShot is an immediate viewing action: it runs once on install
// against a viewport and exits.
type oneShot struct {
	tool.ToolBase
	vp  view.Viewport
	run func(vp view.Viewport)
}

func newOneShot(ta *tool.Admin, name string, vp view.Viewport, run func(vp view.Viewport)) *oneShot {
	t := &oneShot{vp: vp, run: run}
	t.InitTool(t, ta, name)
	return t
}

func (t *oneShot) Kind() tool.Kinds { return tool.KindView }

func (t *oneShot) PostInstall() {
	vp := t.vp
	if vp == nil {
		vp = t.Admin.State.Vp
	}
	if vp != nil {
		t.run(vp)
	}
	t.This.ExitTool()
}

// argViewport returns a viewport passed as a tool argument, if any.
// Tools run from shortcuts get the active viewport this way, since no
// pointer event carries one.
func argViewport(args []any) view.Viewport {
	for _, a := range args {
		if vp, ok := a.(view.Viewport); ok {
			return vp
		}
	}
	return nil
}

// FitView animates the given viewport to a view enclosing its
// displayed extents, preserving the view direction. It reports whether
// there were extents to fit.
func FitView(vp view.Viewport, set *Settings) bool {
	ext := vp.DisplayedExtents()
	if ext.IsEmpty() || ext.Size() == (math32.Vector3{}) {
		return false
	}
	var cam view.Camera
	if err := cam.SetFromFrustum(vp.Frustum()); err != nil {
		errors.Log(err)
		return false
	}
	ctr := ext.Center()
	r := 0.5 * ext.Size().Length() * (1 + set.FitMargin)
	dir := cam.ViewVector()
	if dir == (math32.Vector3{}) {
		dir = math32.Vec3(0, 0, -1)
	}
	cam.Target = ctr
	if cam.On {
		t := math32.Tan(0.5 * math32.DegToRad(cam.FOV))
		if t <= 0 {
			return false
		}
		dist := r / t
		if cam.Aspect > 0 && cam.Aspect < 1 {
			dist /= cam.Aspect
		}
		cam.Pos = ctr.Sub(dir.MulScalar(dist))
		cam.Near = math32.Max(dist-2*r, dist/1000)
		cam.Far = dist + 2*r
	} else {
		asp := cam.Aspect
		if asp <= 0 {
			asp = 1
		}
		wd, ht := 2*r, 2*r
		if asp >= 1 {
			wd = ht * asp
		} else {
			ht = wd / asp
		}
		cam.Extents = math32.Vec2(wd, ht)
		if cam.Near <= 0 {
			cam.Near = 0.01
		}
		cam.Far = cam.Near + 4*r
		cam.Pos = ctr.Sub(dir.MulScalar(cam.Near + 2*r))
	}
	cam.UpdateMatrix()
	target := cam.Frustum()
	if err := target.Valid(); err != nil {
		errors.Log(err)
		return false
	}
	vp.SaveUndo()
	errors.Log(vp.Animator().Start(vp, target, set.animationSecs()))
	return true
}

// animateViewRestore restores a view through the given stack operation
// and plays the jump as a transition: rewind to the current view, then
// animate onto the exact restored state.
func animateViewRestore(vp view.Viewport, set *Settings, pop func() bool) {
	cur := vp.Frustum()
	if !pop() {
		return
	}
	target := vp.Frustum()
	if target == cur {
		return
	}
	if err := vp.SetFrustum(cur); err != nil {
		return
	}
	errors.Log(vp.Animator().Start(vp, target, set.animationSecs()))
}
