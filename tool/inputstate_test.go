// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tool

import (
	"image"
	"testing"
	"time"

	"cogentcore.org/cad/events"
	"cogentcore.org/cad/view"
	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

func testState() *InputState {
	st := &InputState{Set: &SettingsData{}}
	st.Set.Defaults()
	return st
}

func mouseAt(vp view.Viewport, typ events.Types, but events.Buttons, x, y int, at time.Time) events.Event {
	e := events.NewMouse(vp, typ, but, image.Pt(x, y), 0)
	e.AsBase().GenTime = at
	return e
}

func moveAt(vp view.Viewport, but events.Buttons, x, y int, at time.Time) events.Event {
	e := events.NewMouseMove(vp, but, image.Pt(x, y), image.Pt(x, y), 0)
	e.AsBase().GenTime = at
	return e
}

func touchAt(vp view.Viewport, typ events.Types, seq int64, x, y int, at time.Time) events.Event {
	e := events.NewTouch(vp, typ, seq, image.Pt(x, y))
	e.AsBase().GenTime = at
	return e
}

func TestInputStateDoubleClick(t *testing.T) {
	st := testState()
	vp := view.NewBase(800, 600)

	st.OnButtonDown(mouseAt(vp, events.MouseDown, events.Left, 100, 100, t0), DataButton, SourceMouse)
	assert.False(t, st.Btns[DataButton].IsDoubleClick)
	assert.True(t, st.Btns[DataButton].IsDown)
	st.OnButtonUp(mouseAt(vp, events.MouseUp, events.Left, 100, 100, t0.Add(50*time.Millisecond)), DataButton, SourceMouse)

	// second press within the interval and distance
	st.OnButtonDown(mouseAt(vp, events.MouseDown, events.Left, 104, 102, t0.Add(300*time.Millisecond)), DataButton, SourceMouse)
	assert.True(t, st.Btns[DataButton].IsDoubleClick)
	st.OnButtonUp(mouseAt(vp, events.MouseUp, events.Left, 104, 102, t0.Add(350*time.Millisecond)), DataButton, SourceMouse)

	// too long after the previous release
	st.OnButtonDown(mouseAt(vp, events.MouseDown, events.Left, 104, 102, t0.Add(1000*time.Millisecond)), DataButton, SourceMouse)
	assert.False(t, st.Btns[DataButton].IsDoubleClick)
	st.OnButtonUp(mouseAt(vp, events.MouseUp, events.Left, 104, 102, t0.Add(1050*time.Millisecond)), DataButton, SourceMouse)

	// quick but too far away
	st.OnButtonDown(mouseAt(vp, events.MouseDown, events.Left, 200, 102, t0.Add(1100*time.Millisecond)), DataButton, SourceMouse)
	assert.False(t, st.Btns[DataButton].IsDoubleClick)
}

func TestInputStateDragPromotion(t *testing.T) {
	st := testState()
	vp := view.NewBase(800, 600)

	st.OnButtonDown(mouseAt(vp, events.MouseDown, events.Middle, 100, 100, t0), MiddleButton, SourceMouse)

	// far enough but too soon: no promotion
	_, promoted := st.OnMotion(moveAt(vp, events.Middle, 120, 100, t0.Add(40*time.Millisecond)), SourceMouse)
	assert.False(t, promoted)
	assert.False(t, st.Btns[MiddleButton].IsDragging)

	// long enough but too close: no promotion
	_, promoted = st.OnMotion(moveAt(vp, events.Middle, 104, 100, t0.Add(150*time.Millisecond)), SourceMouse)
	assert.False(t, promoted)

	// both thresholds crossed: promoted
	btn, promoted := st.OnMotion(moveAt(vp, events.Middle, 120, 100, t0.Add(160*time.Millisecond)), SourceMouse)
	assert.True(t, promoted)
	assert.Equal(t, MiddleButton, btn)
	assert.True(t, st.Btns[MiddleButton].IsDragging)

	// a drag is only promoted once
	_, promoted = st.OnMotion(moveAt(vp, events.Middle, 130, 100, t0.Add(180*time.Millisecond)), SourceMouse)
	assert.False(t, promoted)
}

func TestInputStateStationaryNeverDrags(t *testing.T) {
	st := testState()
	vp := view.NewBase(800, 600)

	st.OnButtonDown(mouseAt(vp, events.MouseDown, events.Left, 100, 100, t0), DataButton, SourceMouse)

	// below the pixel threshold it never drags, however long held
	for _, after := range []time.Duration{150 * time.Millisecond, time.Second, time.Minute} {
		_, promoted := st.OnMotion(moveAt(vp, events.Left, 104, 102, t0.Add(after)), SourceMouse)
		assert.False(t, promoted)
		assert.False(t, st.Btns[DataButton].IsDragging)
	}
}

func TestInputStateSingleDrag(t *testing.T) {
	st := testState()
	vp := view.NewBase(800, 600)

	st.OnButtonDown(mouseAt(vp, events.MouseDown, events.Middle, 100, 100, t0), MiddleButton, SourceMouse)
	st.OnButtonDown(mouseAt(vp, events.MouseDown, events.Left, 100, 100, t0.Add(10*time.Millisecond)), DataButton, SourceMouse)

	first, promoted := st.OnMotion(moveAt(vp, events.Middle, 140, 100, t0.Add(150*time.Millisecond)), SourceMouse)
	assert.True(t, promoted)

	// only one button drags at a time, no matter how far the motion goes
	_, promoted = st.OnMotion(moveAt(vp, events.Middle, 200, 100, t0.Add(200*time.Millisecond)), SourceMouse)
	assert.False(t, promoted)
	for b := Button(0); b < ButtonN; b++ {
		assert.Equal(t, b == first, st.Btns[b].IsDragging)
	}
	assert.True(t, st.AnyDragging())
}

func TestInputStateDragStartAnchor(t *testing.T) {
	st := testState()
	vp := view.NewBase(800, 600)

	st.OnButtonDown(mouseAt(vp, events.MouseDown, events.Middle, 100, 100, t0), MiddleButton, SourceMouse)
	_, promoted := st.OnMotion(moveAt(vp, events.Middle, 130, 110, t0.Add(150*time.Millisecond)), SourceMouse)
	assert.True(t, promoted)

	// the drag start event is rewound to where the button went down
	var ev ButtonEvent
	st.ToDragStartEvent(&ev, MiddleButton)
	assert.Equal(t, float32(100), ev.ViewPoint.X)
	assert.Equal(t, float32(100), ev.ViewPoint.Y)
	assert.True(t, ev.IsDown)
	assert.True(t, ev.IsDragging)
	assert.Equal(t, vp, ev.Vp)

	// while the live state is at the current pointer
	assert.Equal(t, float32(130), st.ViewPoint.X)
}

func TestInputStateUpReturnsPriorState(t *testing.T) {
	st := testState()
	vp := view.NewBase(800, 600)

	st.OnButtonDown(mouseAt(vp, events.MouseDown, events.Middle, 100, 100, t0), MiddleButton, SourceMouse)
	st.OnMotion(moveAt(vp, events.Middle, 130, 100, t0.Add(150*time.Millisecond)), SourceMouse)

	was := st.OnButtonUp(mouseAt(vp, events.MouseUp, events.Middle, 140, 100, t0.Add(200*time.Millisecond)), MiddleButton, SourceMouse)
	assert.True(t, was.IsDown)
	assert.True(t, was.IsDragging)
	assert.False(t, st.Btns[MiddleButton].IsDown)
	assert.False(t, st.Btns[MiddleButton].IsDragging)
}

func TestInputStateMotionStop(t *testing.T) {
	st := testState()
	vp := view.NewBase(800, 600)

	st.OnMotion(moveAt(vp, events.NoButton, 50, 50, t0), SourceMouse)
	assert.False(t, st.CheckMotionStop(t0.Add(20*time.Millisecond)))
	assert.True(t, st.CheckMotionStop(t0.Add(60*time.Millisecond)))

	// one report per stop
	assert.False(t, st.CheckMotionStop(t0.Add(90*time.Millisecond)))

	// motion re-arms the check
	st.OnMotion(moveAt(vp, events.NoButton, 55, 50, t0.Add(100*time.Millisecond)), SourceMouse)
	assert.False(t, st.CheckMotionStop(t0.Add(120*time.Millisecond)))
	assert.True(t, st.CheckMotionStop(t0.Add(200*time.Millisecond)))
}

func TestInputStateTouchTaps(t *testing.T) {
	st := testState()
	vp := view.NewBase(800, 600)

	st.OnTouchStart(touchAt(vp, events.TouchStart, 1, 200, 200, t0))
	assert.Equal(t, 1, st.TouchCount())
	tap, count := st.OnTouchEnd(touchAt(vp, events.TouchEnd, 1, 200, 200, t0.Add(80*time.Millisecond)))
	assert.True(t, tap)
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, st.TouchCount())

	// a second tap nearby within the tap interval extends the count
	st.OnTouchStart(touchAt(vp, events.TouchStart, 2, 202, 201, t0.Add(200*time.Millisecond)))
	tap, count = st.OnTouchEnd(touchAt(vp, events.TouchEnd, 2, 202, 201, t0.Add(280*time.Millisecond)))
	assert.True(t, tap)
	assert.Equal(t, 2, count)

	// a moved touch is not a tap and resets the count
	st.OnTouchStart(touchAt(vp, events.TouchStart, 3, 200, 200, t0.Add(400*time.Millisecond)))
	st.OnTouchMove(touchAt(vp, events.TouchMove, 3, 260, 200, t0.Add(450*time.Millisecond)))
	tap, count = st.OnTouchEnd(touchAt(vp, events.TouchEnd, 3, 260, 200, t0.Add(500*time.Millisecond)))
	assert.False(t, tap)
	assert.Equal(t, 0, count)

	// held past the hold time is not a tap either
	st.OnTouchStart(touchAt(vp, events.TouchStart, 4, 200, 200, t0.Add(1*time.Second)))
	tap, _ = st.OnTouchEnd(touchAt(vp, events.TouchEnd, 4, 200, 200, t0.Add(1*time.Second+600*time.Millisecond)))
	assert.False(t, tap)
}

func TestInputStatePinch(t *testing.T) {
	st := testState()
	vp := view.NewBase(800, 600)

	st.OnTouchStart(touchAt(vp, events.TouchStart, 1, 100, 200, t0))
	_, ok := st.PinchZoom()
	assert.False(t, ok)

	st.OnTouchStart(touchAt(vp, events.TouchStart, 2, 200, 200, t0.Add(10*time.Millisecond)))
	zoom, ok := st.PinchZoom()
	assert.True(t, ok)
	tolassert.EqualTol(t, 1, zoom, 1.0e-6)

	c, ok := st.TouchCentroid()
	assert.True(t, ok)
	assert.Equal(t, image.Pt(150, 200), c)

	// spreading the fingers doubles the separation
	st.OnTouchMove(touchAt(vp, events.TouchMove, 2, 300, 200, t0.Add(50*time.Millisecond)))
	zoom, ok = st.PinchZoom()
	assert.True(t, ok)
	tolassert.EqualTol(t, 2, zoom, 1.0e-6)

	// lifting a finger ends the pinch
	st.OnTouchEnd(touchAt(vp, events.TouchEnd, 1, 100, 200, t0.Add(80*time.Millisecond)))
	_, ok = st.PinchZoom()
	assert.False(t, ok)
}

func TestInputStatePressHold(t *testing.T) {
	st := testState()
	vp := view.NewBase(800, 600)

	st.OnTouchStart(touchAt(vp, events.TouchStart, 1, 200, 200, t0))
	assert.False(t, st.CheckPressHold(t0.Add(100*time.Millisecond)))
	assert.True(t, st.CheckPressHold(t0.Add(600*time.Millisecond)))

	// one report per touch
	assert.False(t, st.CheckPressHold(t0.Add(700*time.Millisecond)))
}

type fixedSnap struct {
	pt math32.Vector3
	on bool
}

func (s *fixedSnap) SnapPoint(vp view.Viewport, raw math32.Vector3) (math32.Vector3, bool) {
	return s.pt, s.on
}

func TestInputStateAdjustPoint(t *testing.T) {
	st := testState()
	st.Vp = view.NewBase(800, 600)
	st.RawPoint = math32.Vec3(1.26, -0.44, 3.71)

	st.AdjustPoint(nil)
	assert.Equal(t, st.RawPoint, st.Point)
	assert.Equal(t, FromUser, st.CoordSource)

	st.Set.GridLock = true
	st.Set.GridSpacing = 0.5
	st.AdjustPoint(nil)
	tolassert.EqualTol(t, 1.5, st.Point.X, 1.0e-6)
	tolassert.EqualTol(t, -0.5, st.Point.Y, 1.0e-6)
	tolassert.EqualTol(t, 3.5, st.Point.Z, 1.0e-6)
	assert.Equal(t, math32.Vec3(1.26, -0.44, 3.71), st.RawPoint)

	// a snap replaces the point before grid lock applies
	st.Set.GridLock = false
	snap := &fixedSnap{pt: math32.Vec3(2, 2, 2), on: true}
	st.AdjustPoint(snap)
	assert.Equal(t, FromElemSnap, st.CoordSource)
	assert.Equal(t, math32.Vec3(2, 2, 2), st.Point)
}

func TestInputStateClear(t *testing.T) {
	st := testState()
	vp := view.NewBase(800, 600)

	st.OnButtonDown(mouseAt(vp, events.MouseDown, events.Left, 100, 100, t0), DataButton, SourceMouse)
	st.OnTouchStart(touchAt(vp, events.TouchStart, 1, 200, 200, t0))
	st.Clear(vp)
	assert.Nil(t, st.Vp)
	assert.False(t, st.Btns[DataButton].IsDown)
	assert.Equal(t, 0, st.TouchCount())
}
