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

// maxPitch is how far a rotation may pitch the view away from
// horizontal, short of straight up or down.
var maxPitch = math32.DegToRad(85)

// Rotate orbits the view about the manip's target center. Horizontal
// drag yaws about the view up axis and vertical drag pitches about the
// view right axis, with the pitch clamped so the view cannot invert.
// Holding Alt locks the rotation to the dominant drag axis.
type Rotate struct {
	HandleBase

	anchor math32.Vector3
	center math32.Vector3
	up     math32.Vector3
	right  math32.Vector3
	pitch0 float32
}

func (h *Rotate) Type() HandleTypes { return HandleRotate }

func (h *Rotate) Cursor() cursors.Cursor { return cursors.Grabbing }

func (h *Rotate) FirstPoint(ev *tool.ButtonEvent) bool {
	m := h.M
	h.anchor = ev.ViewPoint
	h.center = m.TargetCenter
	if !m.TargetFixed {
		if pt, ok := m.Vp.PickNearestVisible(ev.ViewPt(), m.Set.PickRadius); ok {
			h.center = pt
		}
	}
	f := m.Snapshot
	h.up = f.YVec().Normal()
	var look math32.Vector3
	if eye, persp := f.EyePoint(); persp {
		look = f.Center().Sub(eye).Normal()
	} else {
		look = f.ZVec().Normal().Negate()
	}
	r := h.up.Cross(look)
	if r.Length() < 1e-6 {
		// looking straight along up; fall back to the view x axis
		r = f.XVec().Normal().Negate()
	}
	h.right = r.Normal()
	h.pitch0 = math32.Asin(math32.Clamp(-look.Dot(h.up), -1, 1))
	return true
}

func (h *Rotate) DoManipulation(ev *tool.ButtonEvent, inDynamics bool) bool {
	m := h.M
	dx := ev.ViewPoint.X - h.anchor.X
	dy := ev.ViewPoint.Y - h.anchor.Y
	if key.HasAnyModifier(ev.Mods, key.Alt) {
		// lock to the dominant axis
		if math32.Abs(dx) > math32.Abs(dy) {
			dy = 0
		} else {
			dx = 0
		}
	}
	s := m.Set.RotateSensitivity
	yaw := math32.DegToRad(dx * s)
	pitch := math32.DegToRad(dy * s)
	pitch = math32.Clamp(pitch, -maxPitch-h.pitch0, maxPitch-h.pitch0)
	yq := math32.NewQuatAxisAngle(h.up, yaw)
	pq := math32.NewQuatAxisAngle(h.right, pitch)
	q := yq.Mul(pq)
	return m.ApplyFrustum(m.Snapshot.RotateAbout(h.center, q))
}
