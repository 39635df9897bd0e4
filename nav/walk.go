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

// walkTurnRate is the radians per second of turn per pixel of pointer
// offset from the first point.
const walkTurnRate = 0.004

// walkSpeedPixels is the pointer offset that reaches full walk
// velocity.
const walkSpeedPixels = 100

// Walk moves the camera over its horizontal plane: vertical offset
// from the first point sets forward or backward speed, horizontal
// offset steers. It declines the hit test without a perspective
// camera.
type Walk struct {
	HandleBase

	anchor   math32.Vector3
	cur      math32.Vector3
	eye      math32.Vector3
	up       math32.Vector3
	look0    math32.Vector3
	totalYaw float32
	totalPos math32.Vector3
	last     time.Time
}

func (h *Walk) Type() HandleTypes { return HandleWalk }

func (h *Walk) Cursor() cursors.Cursor { return cursors.Move }

func (h *Walk) TestHit(ev *tool.ButtonEvent) (HitPriorities, bool) {
	if ev.Vp == nil || !ev.Vp.IsCameraOn() {
		return 0, false
	}
	return PriorityLow, true
}

func (h *Walk) FirstPoint(ev *tool.ButtonEvent) bool {
	m := h.M
	eye, ok := m.Snapshot.EyePoint()
	if !ok {
		return false
	}
	h.eye = eye
	h.up = m.Snapshot.YVec().Normal()
	h.look0 = m.Snapshot.Center().Sub(eye).Normal()
	h.anchor = ev.ViewPoint
	h.cur = ev.ViewPoint
	h.totalYaw = 0
	h.totalPos = math32.Vector3{}
	h.last = time.Time{}
	return true
}

func (h *Walk) DoManipulation(ev *tool.ButtonEvent, inDynamics bool) bool {
	h.cur = ev.ViewPoint
	return h.applyWalk()
}

// NoMotion integrates the walk once per dynamics frame: steering turns
// at a rate set by the horizontal offset, travel at a speed set by the
// vertical offset.
func (h *Walk) NoMotion(ev *tool.ButtonEvent) {
	dt := frameDt(&h.last, ev.Time)
	if dt <= 0 {
		return
	}
	dx := h.cur.X - h.anchor.X
	dy := h.cur.Y - h.anchor.Y
	h.totalYaw += -dx * walkTurnRate * dt
	spd := math32.Clamp(-dy/walkSpeedPixels, -1, 1) * h.M.Set.WalkVelocity
	h.totalPos.SetAdd(h.walkDir().MulScalar(spd * dt))
	h.applyWalk()
}

// walkDir is the current travel direction: the starting look direction
// turned by the accumulated steering and flattened against up.
func (h *Walk) walkDir() math32.Vector3 {
	q := math32.NewQuatAxisAngle(h.up, h.totalYaw)
	dir := q.MulVector(h.look0)
	dir.SetSub(h.up.MulScalar(dir.Dot(h.up)))
	if dir.Length() < 1e-6 {
		return math32.Vector3{}
	}
	return dir.Normal()
}

// applyWalk reapplies the accumulated walk fresh from the snapshot:
// one turn about the starting eye point, then one translation.
func (h *Walk) applyWalk() bool {
	m := h.M
	q := math32.NewQuatAxisAngle(h.up, h.totalYaw)
	return m.ApplyFrustum(m.Snapshot.RotateAbout(h.eye, q).Translate(h.totalPos))
}

// Fly moves like [Walk] except that the vertical offset pitches the
// view instead of throttling, and the camera flies forward at the walk
// velocity along the current look direction.
type Fly struct {
	Walk

	totalPitch float32
	pitch0     float32
	right      math32.Vector3
}

func (h *Fly) Type() HandleTypes { return HandleFly }

func (h *Fly) FirstPoint(ev *tool.ButtonEvent) bool {
	if !h.Walk.FirstPoint(ev) {
		return false
	}
	h.totalPitch = 0
	h.pitch0 = math32.Asin(math32.Clamp(-h.look0.Dot(h.up), -1, 1))
	r := h.up.Cross(h.look0)
	if r.Length() < 1e-6 {
		r = h.M.Snapshot.XVec().Normal().Negate()
	}
	h.right = r.Normal()
	return true
}

func (h *Fly) DoManipulation(ev *tool.ButtonEvent, inDynamics bool) bool {
	h.cur = ev.ViewPoint
	return h.applyFly()
}

func (h *Fly) NoMotion(ev *tool.ButtonEvent) {
	dt := frameDt(&h.last, ev.Time)
	if dt <= 0 {
		return
	}
	dx := h.cur.X - h.anchor.X
	dy := h.cur.Y - h.anchor.Y
	h.totalYaw += -dx * walkTurnRate * dt
	h.totalPitch = math32.Clamp(h.totalPitch+dy*walkTurnRate*dt,
		-maxPitch-h.pitch0, maxPitch-h.pitch0)
	h.totalPos.SetAdd(h.flyDir().MulScalar(h.M.Set.WalkVelocity * dt))
	h.applyFly()
}

// flyQuat is the accumulated steering rotation: pitch about the
// starting right axis, then yaw about the starting up axis, so pitch
// is preserved under yaw.
func (h *Fly) flyQuat() math32.Quat {
	yq := math32.NewQuatAxisAngle(h.up, h.totalYaw)
	pq := math32.NewQuatAxisAngle(h.right, h.totalPitch)
	return yq.Mul(pq)
}

// flyDir is the current look direction under the accumulated steering.
func (h *Fly) flyDir() math32.Vector3 {
	return h.flyQuat().MulVector(h.look0)
}

func (h *Fly) applyFly() bool {
	m := h.M
	return m.ApplyFrustum(m.Snapshot.RotateAbout(h.eye, h.flyQuat()).Translate(h.totalPos))
}

// Look turns the camera in place: drag right looks right, drag down
// looks down, with the pitch clamped short of vertical. It declines
// the hit test without a perspective camera.
type Look struct {
	HandleBase

	anchor math32.Vector3
	eye    math32.Vector3
	up     math32.Vector3
	look0  math32.Vector3
	right  math32.Vector3
	pitch0 float32
}

func (h *Look) Type() HandleTypes { return HandleLook }

func (h *Look) Cursor() cursors.Cursor { return cursors.Crosshair }

func (h *Look) TestHit(ev *tool.ButtonEvent) (HitPriorities, bool) {
	if ev.Vp == nil || !ev.Vp.IsCameraOn() {
		return 0, false
	}
	return PriorityLow, true
}

func (h *Look) FirstPoint(ev *tool.ButtonEvent) bool {
	m := h.M
	eye, ok := m.Snapshot.EyePoint()
	if !ok {
		return false
	}
	h.eye = eye
	h.up = m.Snapshot.YVec().Normal()
	h.look0 = m.Snapshot.Center().Sub(eye).Normal()
	r := h.up.Cross(h.look0)
	if r.Length() < 1e-6 {
		r = m.Snapshot.XVec().Normal().Negate()
	}
	h.right = r.Normal()
	h.pitch0 = math32.Asin(math32.Clamp(-h.look0.Dot(h.up), -1, 1))
	h.anchor = ev.ViewPoint
	return true
}

func (h *Look) DoManipulation(ev *tool.ButtonEvent, inDynamics bool) bool {
	m := h.M
	dx := ev.ViewPoint.X - h.anchor.X
	dy := ev.ViewPoint.Y - h.anchor.Y
	s := m.Set.RotateSensitivity
	yaw := -math32.DegToRad(dx * s)
	pitch := math32.DegToRad(dy * s)
	pitch = math32.Clamp(pitch, -maxPitch-h.pitch0, maxPitch-h.pitch0)
	yq := math32.NewQuatAxisAngle(h.up, yaw)
	pq := math32.NewQuatAxisAngle(h.right, pitch)
	q := yq.Mul(pq)
	return m.ApplyFrustum(m.Snapshot.RotateAbout(h.eye, q))
}
