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

// Pan slides the view in its own plane so the point grabbed at the
// first point stays under the pointer. In the standard viewing tool it
// claims high priority while Shift is held.
type Pan struct {
	HandleBase

	anchor      math32.Vector3
	anchorWorld math32.Vector3
}

func (h *Pan) Type() HandleTypes { return HandlePan }

func (h *Pan) Cursor() cursors.Cursor { return cursors.Grab }

func (h *Pan) TestHit(ev *tool.ButtonEvent) (HitPriorities, bool) {
	if key.HasAnyModifier(ev.Mods, key.Shift) {
		return PriorityHigh, true
	}
	return PriorityLow, true
}

func (h *Pan) FirstPoint(ev *tool.ButtonEvent) bool {
	h.anchor = ev.ViewPoint
	h.anchorWorld = h.M.WorldAt(ev.ViewPoint)
	return true
}

func (h *Pan) DoManipulation(ev *tool.ButtonEvent, inDynamics bool) bool {
	m := h.M
	// resolve the pointer at the anchor's depth so the grabbed point
	// tracks exactly
	cur := m.WorldAt(math32.Vec3(ev.ViewPoint.X, ev.ViewPoint.Y, h.anchor.Z))
	del := cur.Sub(h.anchorWorld)
	return m.ApplyFrustum(m.Snapshot.Translate(del.Negate()))
}
