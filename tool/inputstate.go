// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tool

import (
	"image"
	"time"

	"cogentcore.org/cad/events"
	"cogentcore.org/cad/view"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
)

// ButtonState is the live state of one logical button.
type ButtonState struct {

	// IsDown is whether the button is currently down.
	IsDown bool

	// IsDragging is whether held motion has been promoted to a drag.
	IsDragging bool

	// IsDoubleClick is whether the current down is the second click of
	// a double click.
	IsDoubleClick bool

	// DownTime is when the button last went down.
	DownTime time.Time

	// DownViewPt is the view point of the last down: viewport pixels
	// plus NPC depth. Drags rewind to this anchor.
	DownViewPt math32.Vector3

	// DownRawPt is the unadjusted world point of the last down.
	DownRawPt math32.Vector3

	// DownVp is the viewport of the last down.
	DownVp view.Viewport

	// InputSource is the device kind that produced the down.
	InputSource Sources

	// UpTime and UpViewPt are when and where the button was last
	// released, for double click detection.
	UpTime   time.Time
	UpViewPt math32.Vector3
}

// touchPoint tracks one active touch sequence, in window pixels.
type touchPoint struct {
	start     image.Point
	cur       image.Point
	startTime time.Time
	moved     bool
}

// InputState is the live state of the pointing devices: which logical
// buttons are down and where, the current raw and adjusted world
// points, and the timing state behind double click detection, drag
// promotion, motion stop, and touch tap counting. The [Admin] feeds it
// raw events and synthesizes tool events from it.
type InputState struct {

	// Set is the timing and distance settings the transitions consult.
	Set *SettingsData

	// Vp is the viewport the pointer is currently over.
	Vp view.Viewport

	// RawPoint is the current unadjusted world point.
	RawPoint math32.Vector3

	// Point is the current adjusted world point; see
	// [InputState.AdjustPoint].
	Point math32.Vector3

	// ViewPoint is the current view point: viewport pixels plus NPC
	// depth at the viewport focus.
	ViewPoint math32.Vector3

	// Mods is the keyboard modifiers of the most recent event.
	Mods key.Modifiers

	// Source is the device kind of the most recent pointer event.
	Source Sources

	// CoordSource is how Point was produced.
	CoordSource CoordSources

	// Btns is the per-button state, indexed by [Button].
	Btns [ButtonN]ButtonState

	// WheelDelta is the vertical delta of the most recent wheel event.
	WheelDelta float32

	// LastMotionTime is when the most recent motion event arrived.
	LastMotionTime time.Time

	// motionStopReported limits motion stop to one report per stop.
	motionStopReported bool

	// TapCount counts consecutive touch taps within the tap window.
	TapCount int

	// LastTapTime and LastTapViewPt are when and where the previous
	// tap ended.
	LastTapTime   time.Time
	LastTapViewPt math32.Vector3

	// touches is the active touch sequences by id.
	touches map[int64]*touchPoint

	// pinchBase is the finger separation when a second touch landed.
	pinchBase float32

	// holdFired limits press-and-hold to one report per touch.
	holdFired bool
}

// viewDist is the pixel distance between two view points, ignoring depth.
func viewDist(a, b math32.Vector3) float32 {
	return math32.Hypot(a.X-b.X, a.Y-b.Y)
}

// viewPoint converts a window pixel position into the view point for
// the given viewport, with the NPC depth of the viewport focus.
func (is *InputState) viewPoint(vp view.Viewport, pos image.Point) math32.Vector3 {
	local := pos.Sub(vp.Geom().Pos)
	depth := vp.WorldToNpc(vp.FocusPoint()).Z
	return math32.Vec3(float32(local.X), float32(local.Y), depth)
}

// updatePointer records the fields common to all pointer events.
// The adjusted Point is only updated by [InputState.AdjustPoint].
func (is *InputState) updatePointer(e events.Event, src Sources) {
	vp := e.Viewport()
	is.Vp = vp
	is.Mods = e.Modifiers()
	is.Source = src
	if vp == nil {
		return
	}
	is.ViewPoint = is.viewPoint(vp, e.Pos())
	is.RawPoint = vp.ViewToWorld(is.ViewPoint)
}

// AdjustPoint computes the adjusted world point from the current raw
// point, applying in order: snap substitution, grid lock rounding, and
// unit rounding. It sets Point and CoordSource and leaves RawPoint
// untouched.
func (is *InputState) AdjustPoint(snap SnapProvider) {
	pt := is.RawPoint
	src := FromUser
	if snap != nil && is.Vp != nil {
		if sp, ok := snap.SnapPoint(is.Vp, pt); ok {
			pt = sp
			src = FromElemSnap
		}
	}
	if is.Set.GridLock {
		g := is.Set.GridSpacing
		pt = math32.Vec3(math32.Round(pt.X/g)*g, math32.Round(pt.Y/g)*g, math32.Round(pt.Z/g)*g)
	}
	if u := is.Set.UnitRounding; u > 0 {
		pt = math32.Vec3(math32.Round(pt.X/u)*u, math32.Round(pt.Y/u)*u, math32.Round(pt.Z/u)*u)
	}
	is.Point = pt
	is.CoordSource = src
}

// OnButtonDown records a button going down. The down is a double click
// when the previous release of the same button was within
// DoubleClickInterval and its point within DoubleClickDistance pixels.
func (is *InputState) OnButtonDown(e events.Event, btn Button, src Sources) {
	is.updatePointer(e, src)
	bs := &is.Btns[btn]
	now := e.Time()
	dbl := false
	if !bs.UpTime.IsZero() && now.Sub(bs.UpTime) <= is.Set.DoubleClickInterval &&
		viewDist(is.ViewPoint, bs.UpViewPt) <= float32(is.Set.DoubleClickDistance) {
		dbl = true
	}
	bs.IsDown = true
	bs.IsDragging = false
	bs.IsDoubleClick = dbl
	bs.DownTime = now
	bs.DownViewPt = is.ViewPoint
	bs.DownRawPt = is.RawPoint
	bs.DownVp = is.Vp
	bs.InputSource = src
}

// OnButtonUp records a button release, returning the state as it was
// when the button came up, for synthesizing the release event.
func (is *InputState) OnButtonUp(e events.Event, btn Button, src Sources) ButtonState {
	is.updatePointer(e, src)
	bs := &is.Btns[btn]
	was := *bs
	bs.IsDown = false
	bs.IsDragging = false
	bs.IsDoubleClick = false
	bs.UpTime = e.Time()
	bs.UpViewPt = is.ViewPoint
	return was
}

// OnMotion updates the pointer from a motion event and checks drag
// promotion: a held button begins a drag once it has been down longer
// than DragStartTime and the pointer has moved farther than
// DragStartDistance pixels from its down point. Both must hold, so a
// held but stationary button never becomes a drag. At most one button
// drags at a time.
func (is *InputState) OnMotion(e events.Event, src Sources) (Button, bool) {
	is.updatePointer(e, src)
	is.LastMotionTime = e.Time()
	is.motionStopReported = false
	if is.AnyDragging() {
		return 0, false
	}
	for btn := Button(0); btn < ButtonN; btn++ {
		bs := &is.Btns[btn]
		if !bs.IsDown {
			continue
		}
		held := e.Time().Sub(bs.DownTime)
		if held > is.Set.DragStartTime &&
			viewDist(is.ViewPoint, bs.DownViewPt) > float32(is.Set.DragStartDistance) {
			bs.IsDragging = true
			return btn, true
		}
	}
	return 0, false
}

// AnyDragging reports whether any button is currently dragging.
func (is *InputState) AnyDragging() bool {
	for btn := Button(0); btn < ButtonN; btn++ {
		if is.Btns[btn].IsDragging {
			return true
		}
	}
	return false
}

// OnWheel records a wheel event.
func (is *InputState) OnWheel(e *events.MouseScroll, src Sources) {
	is.updatePointer(e, src)
	is.WheelDelta = e.Delta.Y
}

// CheckMotionStop reports whether pointer motion has newly stopped as
// of now: no motion for MotionStopTime, reported at most once per stop.
func (is *InputState) CheckMotionStop(now time.Time) bool {
	if is.motionStopReported || is.LastMotionTime.IsZero() {
		return false
	}
	if now.Sub(is.LastMotionTime) < is.Set.MotionStopTime {
		return false
	}
	is.motionStopReported = true
	return true
}

// OnTouchStart records a new touch sequence. A second finger landing
// sets the pinch baseline separation.
func (is *InputState) OnTouchStart(e events.Event) {
	is.updatePointer(e, SourceTouch)
	if is.touches == nil {
		is.touches = map[int64]*touchPoint{}
	}
	seq := e.AsBase().Sequence
	is.touches[seq] = &touchPoint{start: e.Pos(), cur: e.Pos(), startTime: e.Time()}
	is.holdFired = false
	if len(is.touches) == 2 {
		is.pinchBase = is.touchSeparation()
	}
}

// OnTouchMove updates an active touch sequence and the motion clock.
func (is *InputState) OnTouchMove(e events.Event) {
	is.updatePointer(e, SourceTouch)
	is.LastMotionTime = e.Time()
	is.motionStopReported = false
	tp := is.touches[e.AsBase().Sequence]
	if tp == nil {
		return
	}
	tp.cur = e.Pos()
	d := tp.cur.Sub(tp.start)
	if math32.Hypot(float32(d.X), float32(d.Y)) >= float32(is.Set.DragStartDistance) {
		tp.moved = true
	}
}

// OnTouchEnd removes a touch sequence and reports whether it ended as
// a tap, with the updated consecutive tap count. Taps within
// TouchTapInterval and DoubleClickDistance of the previous tap extend
// the count; otherwise it restarts at one.
func (is *InputState) OnTouchEnd(e events.Event) (tap bool, count int) {
	is.updatePointer(e, SourceTouch)
	seq := e.AsBase().Sequence
	tp := is.touches[seq]
	delete(is.touches, seq)
	if len(is.touches) < 2 {
		is.pinchBase = 0
	}
	if tp == nil {
		return false, 0
	}
	if tp.moved || e.Time().Sub(tp.startTime) >= is.Set.PressAndHoldTime {
		is.TapCount = 0
		return false, 0
	}
	if !is.LastTapTime.IsZero() && e.Time().Sub(is.LastTapTime) <= is.Set.TouchTapInterval &&
		viewDist(is.ViewPoint, is.LastTapViewPt) <= float32(is.Set.DoubleClickDistance) {
		is.TapCount++
	} else {
		is.TapCount = 1
	}
	is.LastTapTime = e.Time()
	is.LastTapViewPt = is.ViewPoint
	return true, is.TapCount
}

// OnTouchCancel drops all touch state without synthesizing taps.
func (is *InputState) OnTouchCancel() {
	clear(is.touches)
	is.pinchBase = 0
	is.TapCount = 0
	is.holdFired = false
}

// CheckPressHold reports whether a single stationary touch has newly
// become a press-and-hold as of now, at most once per touch.
func (is *InputState) CheckPressHold(now time.Time) bool {
	if is.holdFired || len(is.touches) != 1 {
		return false
	}
	for _, tp := range is.touches {
		if !tp.moved && now.Sub(tp.startTime) >= is.Set.PressAndHoldTime {
			is.holdFired = true
			return true
		}
	}
	return false
}

// TouchCount returns the number of active touch sequences.
func (is *InputState) TouchCount() int { return len(is.touches) }

// TouchMoved reports whether any active touch has moved beyond the
// drag distance.
func (is *InputState) TouchMoved() bool {
	for _, tp := range is.touches {
		if tp.moved {
			return true
		}
	}
	return false
}

// TouchCentroid returns the mean window position of the active
// touches, false when there are none.
func (is *InputState) TouchCentroid() (image.Point, bool) {
	n := len(is.touches)
	if n == 0 {
		return image.Point{}, false
	}
	var sum image.Point
	for _, tp := range is.touches {
		sum = sum.Add(tp.cur)
	}
	return sum.Div(n), true
}

// PinchZoom returns the scale factor of an active two-finger pinch:
// current separation over the baseline separation.
func (is *InputState) PinchZoom() (float32, bool) {
	if len(is.touches) != 2 || is.pinchBase <= 0 {
		return 1, false
	}
	sep := is.touchSeparation()
	if sep <= 0 {
		return 1, false
	}
	return sep / is.pinchBase, true
}

func (is *InputState) touchSeparation() float32 {
	pts := make([]image.Point, 0, 2)
	for _, tp := range is.touches {
		pts = append(pts, tp.cur)
	}
	if len(pts) < 2 {
		return 0
	}
	d := pts[1].Sub(pts[0])
	return math32.Hypot(float32(d.X), float32(d.Y))
}

// ToEvent fills a synthesized event for the given button from the
// current state.
func (is *InputState) ToEvent(ev *ButtonEvent, btn Button) {
	bs := &is.Btns[btn]
	*ev = ButtonEvent{
		Point:         is.Point,
		RawPoint:      is.RawPoint,
		ViewPoint:     is.ViewPoint,
		Vp:            is.Vp,
		Button:        btn,
		IsDown:        bs.IsDown,
		IsDoubleClick: bs.IsDoubleClick,
		IsDragging:    bs.IsDragging,
		Mods:          is.Mods,
		Source:        is.Source,
		CoordSource:   is.CoordSource,
	}
}

// ToDragStartEvent fills a synthesized event rewound to the original
// down point of the given button: the anchor a drag begins from, which
// is where the button went down, not where promotion happened.
func (is *InputState) ToDragStartEvent(ev *ButtonEvent, btn Button) {
	bs := &is.Btns[btn]
	*ev = ButtonEvent{
		Point:         bs.DownRawPt,
		RawPoint:      bs.DownRawPt,
		ViewPoint:     bs.DownViewPt,
		Vp:            bs.DownVp,
		Button:        btn,
		IsDown:        true,
		IsDoubleClick: bs.IsDoubleClick,
		IsDragging:    true,
		Mods:          is.Mods,
		Source:        bs.InputSource,
		CoordSource:   FromUser,
	}
}

// Clear drops all state that refers to the given viewport, when it is
// closing. Buttons that went down in it are fully reset, so no release
// or drag completion is ever synthesized for it.
func (is *InputState) Clear(vp view.Viewport) {
	if is.Vp == vp {
		is.Vp = nil
		is.OnTouchCancel()
	}
	for i := range is.Btns {
		if is.Btns[i].DownVp == vp {
			is.Btns[i] = ButtonState{}
		}
	}
}
