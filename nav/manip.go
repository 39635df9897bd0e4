// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"time"

	"cogentcore.org/cad/tool"
	"cogentcore.org/cad/view"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cursors"
	"cogentcore.org/core/math32"
)

// Manip is the viewing tool that hosts a set of [Handle]s. A
// manipulation runs from the first point, which picks the focus handle
// and snapshots the viewport frustum, through dynamics previews, to a
// commit that records one undo entry for the whole change. Previews
// are always computed from the snapshot and the latest point, so a
// preview depends only on those two and repeated previews cannot
// accumulate drift.
//
// A manipulation starts from a drag, from a click (with the commit on
// a second click), or from a touch move gesture; the reset button or
// Escape abandons it and restores the starting view.
type Manip struct {
	tool.ToolBase

	// Set is the viewing settings the handles read.
	Set *Settings

	// Mask selects the handles this manip composes.
	Mask HandleTypes

	// OneShot exits this tool after one completed manipulation, which
	// is how drag started viewing tools behave.
	OneShot bool

	// Prompt is the user prompt shown while this tool is armed.
	Prompt string

	// Handles is the handle set built from Mask, in bit order.
	Handles []Handle

	// Vp is the viewport being manipulated.
	Vp view.Viewport

	// Snapshot is the frustum saved when the current manipulation
	// armed. Every handle transform starts from it.
	Snapshot view.Frustum

	// TargetCenter is the world point rotation orbits about.
	TargetCenter math32.Vector3

	// TargetFixed is whether TargetCenter was placed explicitly, so it
	// is not re-derived at the next manipulation.
	TargetFixed bool

	// snapCam unprojects view points through the snapshot, so points
	// resolve against the view the manipulation started from rather
	// than the live preview.
	snapCam view.Camera

	focus        Handle
	manipulating bool
	fromTouch    bool
	lastEv       *tool.ButtonEvent
}

// NewManip returns a new viewing tool with the given registry name,
// handle mask, and one-shot behavior.
func NewManip(ta *tool.Admin, name string, set *Settings, mask HandleTypes, oneShot bool) *Manip {
	if set == nil {
		set = &Settings{}
		set.Defaults()
	}
	m := &Manip{Set: set, Mask: mask, OneShot: oneShot}
	m.InitTool(m, ta, name)
	for ht := HandleRotate; ht <= HandleLook; ht++ {
		if !m.Mask.HasFlag(ht) {
			continue
		}
		if h := m.newHandle(ht); h != nil {
			m.Handles = append(m.Handles, h)
		}
	}
	return m
}

func (m *Manip) newHandle(ht HandleTypes) Handle {
	switch ht {
	case HandleRotate:
		return &Rotate{HandleBase: HandleBase{M: m}}
	case HandleTargetCenter:
		return &TargetCenter{HandleBase: HandleBase{M: m}}
	case HandlePan:
		return &Pan{HandleBase: HandleBase{M: m}}
	case HandleScroll:
		return &Scroll{HandleBase: HandleBase{M: m}}
	case HandleZoom:
		return &Zoom{HandleBase: HandleBase{M: m}}
	case HandleWalk:
		return &Walk{HandleBase: HandleBase{M: m}}
	case HandleFly:
		return &Fly{Walk: Walk{HandleBase: HandleBase{M: m}}}
	case HandleLook:
		return &Look{HandleBase: HandleBase{M: m}}
	}
	return nil
}

func (m *Manip) Kind() tool.Kinds { return tool.KindView }

// FindHandle returns the handle of the given kind, or nil if the mask
// does not include it.
func (m *Manip) FindHandle(ht HandleTypes) Handle {
	for _, h := range m.Handles {
		if h.Type() == ht {
			return h
		}
	}
	return nil
}

// Manipulating reports whether a manipulation is in progress, between
// its first point and its commit.
func (m *Manip) Manipulating() bool { return m.manipulating }

// Focus returns the handle driving the current manipulation, or nil.
func (m *Manip) Focus() Handle { return m.focus }

func (m *Manip) PostInstall() {
	ta := m.Admin
	if m.Prompt != "" {
		ta.SetPrompt(m.Prompt)
	}
	if vp := ta.State.Vp; vp != nil && len(m.Handles) > 0 {
		vp.SetCursor(m.Handles[0].Cursor())
	}
	// adopt a drag already in progress, as when the idle tool starts
	// this tool from a promoted drag
	for btn := tool.Button(0); btn < tool.ButtonN; btn++ {
		if !ta.State.Btns[btn].IsDragging {
			continue
		}
		ev := &tool.ButtonEvent{}
		ta.State.ToDragStartEvent(ev, btn)
		if !ev.IsValid() {
			continue
		}
		if m.begin(ev, nil) {
			ta.ClaimButton(m.This, btn)
		}
		break
	}
}

func (m *Manip) CleanupTool() {
	m.abandonManipulation()
	if m.Vp != nil {
		m.Vp.SetCursor(cursors.Arrow)
	}
}

// begin starts a manipulation at the given anchor event. The view is
// snapshotted first, then the hit test picks the focus handle unless
// one is forced. Reports whether a handle accepted the point.
func (m *Manip) begin(ev *tool.ButtonEvent, forced Handle) bool {
	if ev.Vp == nil {
		return false
	}
	m.Vp = ev.Vp
	h := forced
	if h == nil {
		h = m.testHandleForHit(ev)
	}
	if h == nil {
		return false
	}
	m.Snapshot = m.Vp.Frustum()
	if err := m.snapCam.SetFromFrustum(m.Snapshot); err != nil {
		errors.Log(err)
		return false
	}
	if !m.TargetFixed {
		m.TargetCenter = m.Vp.FocusPoint()
	}
	if !h.FirstPoint(ev) {
		return false
	}
	m.focus = h
	m.manipulating = true
	m.fromTouch = ev.Source == tool.SourceTouch
	m.lastEv = ev.Clone()
	h.FocusIn()
	m.Vp.SetCursor(h.Cursor())
	m.Admin.StartDynamics(m.This)
	return true
}

// testHandleForHit returns the handle claiming the given point at the
// highest priority. Among equal priorities the later handle wins.
func (m *Manip) testHandleForHit(ev *tool.ButtonEvent) Handle {
	var best Handle
	var bestPri HitPriorities
	for _, h := range m.Handles {
		pri, ok := h.TestHit(ev)
		if !ok {
			continue
		}
		if best == nil || pri >= bestPri {
			best, bestPri = h, pri
		}
	}
	return best
}

// ApplyFrustum applies a handle's computed frustum to the viewport.
// An invalid frustum is rejected and logged, leaving the view
// unchanged.
func (m *Manip) ApplyFrustum(f view.Frustum) bool {
	if err := m.Vp.SetFrustum(f); err != nil {
		errors.Log(err)
		return false
	}
	return true
}

// WorldAt unprojects a view point through the snapshot camera.
func (m *Manip) WorldAt(pt math32.Vector3) math32.Vector3 {
	return m.snapCam.ViewToWorld(pt, m.Vp.Geom().Size)
}

// commit runs the final manipulation call and ends the manipulation:
// one undo entry holding the pre-manipulation view on success, a
// restore of that view on failure.
func (m *Manip) commit(ev *tool.ButtonEvent) {
	if m.focus.DoManipulation(ev, false) {
		m.finishManipulation()
	} else {
		m.abandonManipulation()
		m.checkOneShot()
	}
}

// finishManipulation completes the current manipulation, recording a
// single undo entry for the whole change.
func (m *Manip) finishManipulation() {
	vp := m.Vp
	final := vp.Frustum()
	if final != m.Snapshot {
		// the undo entry must hold the pre-manipulation view
		vp.SetFrustum(m.Snapshot)
		vp.SaveUndo()
		vp.SetFrustum(final)
	}
	m.endManipulation()
	m.checkOneShot()
}

// abandonManipulation ends the current manipulation without a commit,
// restoring the view it started from.
func (m *Manip) abandonManipulation() {
	if !m.manipulating {
		return
	}
	m.Vp.SetFrustum(m.Snapshot)
	m.endManipulation()
}

func (m *Manip) endManipulation() {
	if m.focus != nil {
		m.focus.FocusOut()
		m.focus = nil
	}
	m.manipulating = false
	m.lastEv = nil
	m.Admin.StopDynamics()
}

// checkOneShot exits a one-shot manip after a completed manipulation;
// anything else re-arms for the next one.
func (m *Manip) checkOneShot() {
	if m.OneShot {
		m.This.ExitTool()
		return
	}
	if m.Prompt != "" {
		m.Admin.SetPrompt(m.Prompt)
	}
	if m.Vp != nil && len(m.Handles) > 0 {
		m.Vp.SetCursor(m.Handles[0].Cursor())
	}
}

func (m *Manip) ButtonDown(ev *tool.ButtonEvent) bool {
	switch ev.Button {
	case tool.ResetButton:
		m.abandonManipulation()
		m.This.ExitTool()
		return true
	case tool.DataButton, tool.MiddleButton:
	default:
		return false
	}
	if !m.manipulating {
		return m.begin(ev, nil)
	}
	if ev.Vp != m.Vp {
		return true
	}
	// the second data point commits a click started manipulation
	m.lastEv = ev.Clone()
	m.commit(ev)
	return true
}

func (m *Manip) ButtonUp(ev *tool.ButtonEvent) bool {
	// a plain release keeps a click started manipulation running
	return m.manipulating
}

func (m *Manip) Motion(ev *tool.ButtonEvent) {
	if !m.manipulating || ev.Vp != m.Vp {
		return
	}
	m.lastEv = ev.Clone()
	if !m.focus.DoManipulation(ev, true) {
		m.abandonManipulation()
		m.checkOneShot()
	}
}

func (m *Manip) StartDrag(ev *tool.ButtonEvent) bool {
	if ev.Button == tool.ResetButton {
		return false
	}
	if m.manipulating {
		return true
	}
	return m.begin(ev, nil)
}

func (m *Manip) EndDrag(ev *tool.ButtonEvent) bool {
	if !m.manipulating {
		return false
	}
	fin := ev
	if fin.Vp != m.Vp {
		fin = m.lastEv
	}
	if fin == nil || fin.Vp != m.Vp {
		m.abandonManipulation()
		m.checkOneShot()
		return true
	}
	m.commit(fin)
	return true
}

func (m *Manip) MotionStopped(ev *tool.ButtonEvent) {}

// Wheel consumes wheel events during a manipulation: a wheel zoom
// would fight the snapshot previews.
func (m *Manip) Wheel(ev *tool.WheelEvent) bool {
	return m.manipulating
}

func (m *Manip) Gesture(ge *tool.GestureEvent) bool {
	switch ge.Gesture {
	case tool.GestureSingleMove, tool.GestureMultiMove, tool.GesturePinch:
	default:
		return false
	}
	if !m.manipulating {
		anchor := ge.ButtonEvent
		anchor.ViewPoint = ge.PrevViewPoint
		var forced Handle
		if ge.Gesture == tool.GesturePinch {
			forced = m.FindHandle(HandleZoom)
		}
		if !m.begin(&anchor, forced) {
			return false
		}
	}
	if ge.Vp != m.Vp {
		return true
	}
	ev := ge.ButtonEvent
	m.lastEv = ev.Clone()
	var ok bool
	if z, isZoom := m.focus.(*Zoom); isZoom && ge.Gesture == tool.GesturePinch {
		ok = z.DoPinch(ge.Zoom)
	} else {
		ok = m.focus.DoManipulation(&ev, true)
	}
	if !ok {
		m.abandonManipulation()
		m.checkOneShot()
	}
	return true
}

func (m *Manip) BeginDynamics() {}

func (m *Manip) EndDynamics() {}

// DynamicFrame drives the per frame behavior of the focus handle, and
// commits a touch manipulation once the last finger has lifted.
func (m *Manip) DynamicFrame(ev *tool.ButtonEvent) {
	if !m.manipulating {
		return
	}
	if m.fromTouch && m.Admin.State.TouchCount() == 0 {
		// the last preview already shows the final pose; re-applying
		// from the last event would drop a pinch, whose factor is not
		// recoverable from a position
		m.finishManipulation()
		return
	}
	m.focus.NoMotion(ev)
}

// viewDist is the pixel distance between two view points, ignoring
// depth.
func viewDist(a, b math32.Vector3) float32 {
	return math32.Hypot(a.X-b.X, a.Y-b.Y)
}

// frameDt returns the seconds since the previous dynamics frame,
// updating last. The first frame after arming and stalls longer than
// a second yield 0.
func frameDt(last *time.Time, now time.Time) float32 {
	if now.IsZero() {
		return 0
	}
	prev := *last
	*last = now
	if prev.IsZero() {
		return 0
	}
	dt := float32(now.Sub(prev).Seconds())
	if dt <= 0 || dt > 1 {
		return 0
	}
	return dt
}
