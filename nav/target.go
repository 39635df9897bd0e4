// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"cogentcore.org/cad/tool"
	"cogentcore.org/core/cursors"
)

// targetAperture is the pixel radius around the projected target
// center within which the target center handle claims the point.
const targetAperture = 12

// TargetCenter places and drags the point rotation orbits about. It
// claims the first point only near the target's screen position, and
// the placed target persists across manipulations until the tool
// exits. Placing the target changes no frustum, so it records no undo
// entry.
type TargetCenter struct {
	HandleBase
}

func (h *TargetCenter) Type() HandleTypes { return HandleTargetCenter }

func (h *TargetCenter) Cursor() cursors.Cursor { return cursors.Crosshair }

func (h *TargetCenter) TestHit(ev *tool.ButtonEvent) (HitPriorities, bool) {
	m := h.M
	if ev.Vp == nil {
		return 0, false
	}
	tc := m.TargetCenter
	if !m.TargetFixed {
		tc = ev.Vp.FocusPoint()
	}
	vpt := ev.Vp.WorldToView(tc)
	if viewDist(vpt, ev.ViewPoint) > targetAperture {
		return 0, false
	}
	return PriorityHigh, true
}

func (h *TargetCenter) FirstPoint(ev *tool.ButtonEvent) bool {
	h.place(ev)
	return true
}

func (h *TargetCenter) DoManipulation(ev *tool.ButtonEvent, inDynamics bool) bool {
	h.place(ev)
	return true
}

// place puts the target center on the picked geometry under the
// pointer, or on the pointer at focus depth when nothing picks.
func (h *TargetCenter) place(ev *tool.ButtonEvent) {
	m := h.M
	if pt, ok := m.Vp.PickNearestVisible(ev.ViewPt(), m.Set.PickRadius); ok {
		m.TargetCenter = pt
	} else {
		m.TargetCenter = m.WorldAt(ev.ViewPoint)
	}
	m.TargetFixed = true
}
