// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"cogentcore.org/cad/tool"
	"cogentcore.org/core/cursors"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
)

// zoomDragDenom is the vertical drag in pixels that doubles or halves
// the view scale at unit sensitivity.
const zoomDragDenom = 200

// Zoom scales the view about the first point: drag down zooms out,
// drag up zooms in. With the camera on it moves the eye along the
// anchor ray instead of scaling. In the standard viewing tool it
// claims high priority while Control is held.
type Zoom struct {
	HandleBase

	anchor      math32.Vector3
	anchorWorld math32.Vector3
}

func (h *Zoom) Type() HandleTypes { return HandleZoom }

func (h *Zoom) Cursor() cursors.Cursor { return cursors.ZoomIn }

func (h *Zoom) TestHit(ev *tool.ButtonEvent) (HitPriorities, bool) {
	if key.HasAnyModifier(ev.Mods, key.Control) {
		return PriorityHigh, true
	}
	return PriorityLow, true
}

func (h *Zoom) FirstPoint(ev *tool.ButtonEvent) bool {
	m := h.M
	h.anchor = ev.ViewPoint
	if pt, ok := m.Vp.PickNearestVisible(ev.ViewPt(), m.Set.PickRadius); ok {
		h.anchorWorld = pt
	} else {
		h.anchorWorld = m.WorldAt(ev.ViewPoint)
	}
	return true
}

func (h *Zoom) DoManipulation(ev *tool.ButtonEvent, inDynamics bool) bool {
	dy := ev.ViewPoint.Y - h.anchor.Y
	factor := math32.Pow(2, dy*h.M.Set.ZoomSensitivity/zoomDragDenom)
	return h.apply(factor)
}

// DoPinch applies a pinch scale factor: fingers spreading past 1 zoom
// the view in.
func (h *Zoom) DoPinch(zoom float32) bool {
	if zoom <= 0 {
		return true
	}
	return h.apply(1 / zoom)
}

// apply scales the snapshot about the anchor by the given factor, or
// moves the eye along the anchor ray when the camera is on. A factor
// below 1 zooms in.
func (h *Zoom) apply(factor float32) bool {
	m := h.M
	f := m.Snapshot
	if m.Vp.IsCameraOn() {
		if eye, ok := f.EyePoint(); ok {
			del := eye.Sub(h.anchorWorld).MulScalar(factor - 1)
			return m.ApplyFrustum(f.Translate(del))
		}
	}
	return m.ApplyFrustum(f.ScaleAbout(h.anchorWorld, factor))
}
