// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"time"

	"cogentcore.org/cad/tool"
	"cogentcore.org/core/cursors"
	"cogentcore.org/core/math32"
)

// scrollRate is the fraction of the pointer offset scrolled per second
// at unit sensitivity.
const scrollRate = 2

// Scroll scrolls the view continuously toward the pointer's offset
// from the first point for as long as the manipulation runs. The
// offset sets both the direction and the speed.
type Scroll struct {
	HandleBase

	anchor      math32.Vector3
	anchorWorld math32.Vector3
	cur         math32.Vector3
	total       math32.Vector2
	last        time.Time
}

func (h *Scroll) Type() HandleTypes { return HandleScroll }

func (h *Scroll) Cursor() cursors.Cursor { return cursors.Move }

func (h *Scroll) FirstPoint(ev *tool.ButtonEvent) bool {
	h.anchor = ev.ViewPoint
	h.anchorWorld = h.M.WorldAt(ev.ViewPoint)
	h.cur = ev.ViewPoint
	h.total = math32.Vector2{}
	h.last = time.Time{}
	return true
}

func (h *Scroll) DoManipulation(ev *tool.ButtonEvent, inDynamics bool) bool {
	h.cur = ev.ViewPoint
	return h.step(0)
}

func (h *Scroll) NoMotion(ev *tool.ButtonEvent) {
	dt := frameDt(&h.last, ev.Time)
	if dt <= 0 {
		return
	}
	h.step(dt)
}

// step advances the scrolled total by dt seconds of the current offset
// and reapplies the whole translation fresh from the snapshot.
func (h *Scroll) step(dt float32) bool {
	m := h.M
	off := math32.Vec2(h.cur.X-h.anchor.X, h.cur.Y-h.anchor.Y)
	h.total.SetAdd(off.MulScalar(dt * scrollRate * m.Set.ScrollSensitivity))
	cur := m.WorldAt(math32.Vec3(h.anchor.X+h.total.X, h.anchor.Y+h.total.Y, h.anchor.Z))
	del := cur.Sub(h.anchorWorld)
	return m.ApplyFrustum(m.Snapshot.Translate(del))
}
