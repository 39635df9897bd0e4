// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"image"
	"testing"
	"time"

	"cogentcore.org/cad/tool"
	"cogentcore.org/cad/view"
	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

// testManip returns an installed manip over a fresh 800x600 viewport.
func testManip(t *testing.T, mask HandleTypes, oneShot bool) (*tool.Admin, *Manip, *view.Base) {
	t.Helper()
	ta := tool.NewAdmin()
	vp := view.NewBase(800, 600)
	m := NewManip(ta, "view.test", nil, mask, oneShot)
	assert.True(t, ta.InstallTool(m))
	return ta, m, vp
}

// evAt builds a pointer event at the given viewport pixel, with the
// world point resolved at the viewport focus depth.
func evAt(vp *view.Base, x, y float32, btn tool.Button, at time.Time) *tool.ButtonEvent {
	depth := vp.WorldToNpc(vp.FocusPoint()).Z
	vpt := math32.Vec3(x, y, depth)
	w := vp.ViewToWorld(vpt)
	return &tool.ButtonEvent{
		Point:      w,
		RawPoint:   w,
		ViewPoint:  vpt,
		Vp:         vp,
		Button:     btn,
		IsDown:     true,
		IsDragging: true,
		Source:     tool.SourceMouse,
		Time:       at,
	}
}

func orthoVp(vp *view.Base) {
	vp.Cam.On = false
	vp.SyncCamera()
}

func TestPanTracksPointer(t *testing.T) {
	_, m, vp := testManip(t, MaskOf(HandlePan), true)

	down := evAt(vp, 400, 300, tool.MiddleButton, t0)
	assert.True(t, m.StartDrag(down))
	assert.True(t, m.Manipulating())
	anchorWorld := m.WorldAt(down.ViewPoint)

	// the grabbed world point stays under the pointer
	m.Motion(evAt(vp, 430, 320, tool.MiddleButton, t0.Add(20*time.Millisecond)))
	pv := vp.WorldToView(anchorWorld)
	tolassert.EqualTol(t, 430, pv.X, 0.1)
	tolassert.EqualTol(t, 320, pv.Y, 0.1)
}

func TestPanPreviewsDoNotCompound(t *testing.T) {
	_, m, vp := testManip(t, MaskOf(HandlePan), true)

	assert.True(t, m.StartDrag(evAt(vp, 400, 300, tool.MiddleButton, t0)))
	for i, x := range []float32{410, 420, 435, 410, 450} {
		m.Motion(evAt(vp, x, 300, tool.MiddleButton, t0.Add(time.Duration(i+1)*16*time.Millisecond)))
	}
	many := vp.Frustum()

	// the same final pointer in one step must give the same view
	_, m2, vp2 := testManip(t, MaskOf(HandlePan), true)
	assert.True(t, m2.StartDrag(evAt(vp2, 400, 300, tool.MiddleButton, t0)))
	m2.Motion(evAt(vp2, 450, 300, tool.MiddleButton, t0.Add(16*time.Millisecond)))
	assert.True(t, vp2.Frustum().AlmostEquals(many, 1.0e-3))
}

func TestCommitRecordsOneUndoEntry(t *testing.T) {
	ta, m, vp := testManip(t, MaskOf(HandlePan), true)
	orig := vp.Frustum()

	assert.True(t, m.StartDrag(evAt(vp, 400, 300, tool.MiddleButton, t0)))
	m.Motion(evAt(vp, 430, 300, tool.MiddleButton, t0.Add(20*time.Millisecond)))
	m.Motion(evAt(vp, 460, 300, tool.MiddleButton, t0.Add(40*time.Millisecond)))
	assert.True(t, m.EndDrag(evAt(vp, 460, 300, tool.MiddleButton, t0.Add(60*time.Millisecond))))

	assert.False(t, m.Manipulating())
	assert.Nil(t, ta.ViewTool())
	final := vp.Frustum()
	assert.NotEqual(t, orig, final)

	// one undo entry holding the exact pre-manipulation view
	assert.True(t, vp.Undo())
	assert.Equal(t, orig, vp.Frustum())
	assert.False(t, vp.Undo())
	assert.True(t, vp.Redo())
	assert.Equal(t, final, vp.Frustum())
}

func TestResetAbandonsAndExits(t *testing.T) {
	ta, m, vp := testManip(t, MaskOf(HandlePan), true)
	orig := vp.Frustum()

	assert.True(t, m.StartDrag(evAt(vp, 400, 300, tool.MiddleButton, t0)))
	m.Motion(evAt(vp, 500, 300, tool.MiddleButton, t0.Add(20*time.Millisecond)))
	assert.NotEqual(t, orig, vp.Frustum())

	assert.True(t, m.ButtonDown(evAt(vp, 500, 300, tool.ResetButton, t0.Add(40*time.Millisecond))))
	assert.Equal(t, orig, vp.Frustum())
	assert.Nil(t, ta.ViewTool())
	assert.False(t, vp.Undo())
}

func TestClickMoveClick(t *testing.T) {
	ta, m, vp := testManip(t, MaskOf(HandlePan), true)

	assert.True(t, m.ButtonDown(evAt(vp, 400, 300, tool.DataButton, t0)))
	assert.True(t, m.Manipulating())
	// the release between the two data points stays consumed
	assert.True(t, m.ButtonUp(evAt(vp, 400, 300, tool.DataButton, t0.Add(50*time.Millisecond))))
	m.Motion(evAt(vp, 440, 300, tool.DataButton, t0.Add(200*time.Millisecond)))
	assert.True(t, m.ButtonDown(evAt(vp, 440, 300, tool.DataButton, t0.Add(400*time.Millisecond))))

	assert.False(t, m.Manipulating())
	assert.Nil(t, ta.ViewTool())
	assert.True(t, vp.Undo())
}

func TestMidDragAdoption(t *testing.T) {
	ta := tool.NewAdmin()
	vp := view.NewBase(800, 600)
	down := evAt(vp, 400, 300, tool.MiddleButton, t0)

	ta.State.Vp = vp
	ta.State.ViewPoint = math32.Vec3(430, 300, down.ViewPoint.Z)
	bs := &ta.State.Btns[tool.MiddleButton]
	bs.IsDown = true
	bs.IsDragging = true
	bs.DownTime = t0
	bs.DownViewPt = down.ViewPoint
	bs.DownRawPt = down.RawPoint
	bs.DownVp = vp
	bs.InputSource = tool.SourceMouse

	m := NewManip(ta, "view.test", nil, MaskOf(HandlePan), true)
	assert.True(t, ta.InstallTool(m))

	// the manip adopted the drag, anchored at the original down point
	assert.True(t, m.Manipulating())
	assert.True(t, m.ReceivedDown(tool.MiddleButton))

	m.Motion(evAt(vp, 460, 300, tool.MiddleButton, t0.Add(50*time.Millisecond)))
	pv := vp.WorldToView(m.WorldAt(down.ViewPoint))
	tolassert.EqualTol(t, 460, pv.X, 0.1)

	assert.True(t, m.EndDrag(evAt(vp, 460, 300, tool.MiddleButton, t0.Add(80*time.Millisecond))))
	assert.Nil(t, ta.ViewTool())
	assert.True(t, vp.Undo())
}

func TestStandardFocusByModifier(t *testing.T) {
	_, m, vp := testManip(t, MaskOf(HandleRotate, HandleTargetCenter, HandlePan, HandleZoom), false)

	assert.True(t, m.StartDrag(evAt(vp, 200, 200, tool.DataButton, t0)))
	_, isRotate := m.Focus().(*Rotate)
	assert.True(t, isRotate)
	assert.True(t, m.EndDrag(evAt(vp, 200, 200, tool.DataButton, t0.Add(10*time.Millisecond))))

	ev := evAt(vp, 200, 200, tool.DataButton, t0.Add(time.Second))
	ev.Mods.SetFlag(true, key.Shift)
	assert.True(t, m.StartDrag(ev))
	_, isPan := m.Focus().(*Pan)
	assert.True(t, isPan)
	fin := evAt(vp, 200, 200, tool.DataButton, t0.Add(time.Second+10*time.Millisecond))
	fin.Mods.SetFlag(true, key.Shift)
	assert.True(t, m.EndDrag(fin))

	ev = evAt(vp, 200, 200, tool.DataButton, t0.Add(2*time.Second))
	ev.Mods.SetFlag(true, key.Control)
	assert.True(t, m.StartDrag(ev))
	_, isZoom := m.Focus().(*Zoom)
	assert.True(t, isZoom)
}

func TestRotateOrbitsTarget(t *testing.T) {
	_, m, vp := testManip(t, MaskOf(HandleRotate), true)

	// 360 px at 0.25 degrees per px is a quarter turn
	assert.True(t, m.StartDrag(evAt(vp, 400, 300, tool.DataButton, t0)))
	m.Motion(evAt(vp, 760, 300, tool.DataButton, t0.Add(20*time.Millisecond)))

	eye, persp := vp.Frustum().EyePoint()
	assert.True(t, persp)
	tolassert.EqualTol(t, 10, eye.X, 0.02)
	tolassert.EqualTol(t, 0, eye.Y, 0.02)
	tolassert.EqualTol(t, 0, eye.Z, 0.02)
	tolassert.EqualTol(t, 10, eye.Length(), 0.02)
}

func TestRotatePitchClamp(t *testing.T) {
	_, m, vp := testManip(t, MaskOf(HandleRotate), true)

	// 800 px down asks for 200 degrees of pitch
	assert.True(t, m.StartDrag(evAt(vp, 400, 300, tool.DataButton, t0)))
	m.Motion(evAt(vp, 400, 1100, tool.DataButton, t0.Add(20*time.Millisecond)))

	f := vp.Frustum()
	eye, persp := f.EyePoint()
	assert.True(t, persp)
	look := f.Center().Sub(eye).Normal()
	pitch := math32.Asin(math32.Clamp(-look.Dot(math32.Vec3(0, 1, 0)), -1, 1))
	tolassert.EqualTol(t, maxPitch, pitch, 0.01)
}

func TestRotateAxisLock(t *testing.T) {
	_, m, vp := testManip(t, MaskOf(HandleRotate), true)

	assert.True(t, m.StartDrag(evAt(vp, 400, 300, tool.DataButton, t0)))
	ev := evAt(vp, 760, 340, tool.DataButton, t0.Add(20*time.Millisecond))
	ev.Mods.SetFlag(true, key.Alt)
	m.Motion(ev)

	// the smaller vertical component is dropped, leaving a pure yaw
	eye, _ := vp.Frustum().EyePoint()
	tolassert.EqualTol(t, 10, eye.X, 0.02)
	tolassert.EqualTol(t, 0, eye.Y, 0.02)
}

func TestZoomDragOrtho(t *testing.T) {
	_, m, vp := testManip(t, MaskOf(HandleZoom), true)
	orthoVp(vp)
	w0 := vp.Frustum().XVec().Length()

	down := evAt(vp, 400, 300, tool.DataButton, t0)
	assert.True(t, m.StartDrag(down))
	anchorWorld := m.WorldAt(down.ViewPoint)

	// 200 px down doubles the view extent, zooming out
	m.Motion(evAt(vp, 400, 500, tool.DataButton, t0.Add(20*time.Millisecond)))
	tolassert.EqualTol(t, 2*w0, vp.Frustum().XVec().Length(), 1.0e-2)

	// each preview replaces the last, starting over from the snapshot
	m.Motion(evAt(vp, 400, 100, tool.DataButton, t0.Add(40*time.Millisecond)))
	tolassert.EqualTol(t, 0.5*w0, vp.Frustum().XVec().Length(), 1.0e-2)

	// the anchor stays put on screen
	pv := vp.WorldToView(anchorWorld)
	tolassert.EqualTol(t, 400, pv.X, 0.1)
	tolassert.EqualTol(t, 300, pv.Y, 0.1)
}

func TestZoomDragPerspectiveMovesEye(t *testing.T) {
	_, m, vp := testManip(t, MaskOf(HandleZoom), true)

	down := evAt(vp, 400, 300, tool.DataButton, t0)
	assert.True(t, m.StartDrag(down))
	anchorWorld := m.WorldAt(down.ViewPoint)
	d0 := math32.Vec3(0, 0, 10).Sub(anchorWorld).Length()

	// 200 px up halves the distance to the anchor
	m.Motion(evAt(vp, 400, 100, tool.DataButton, t0.Add(20*time.Millisecond)))
	eye, persp := vp.Frustum().EyePoint()
	assert.True(t, persp)
	tolassert.EqualTol(t, 0.5*d0, eye.Sub(anchorWorld).Length(), 0.02)
}

func TestScrollAccumulatesOverTime(t *testing.T) {
	_, m, vp := testManip(t, MaskOf(HandleScroll), true)
	orthoVp(vp)

	assert.True(t, m.StartDrag(evAt(vp, 400, 300, tool.DataButton, t0)))
	m.Motion(evAt(vp, 500, 300, tool.DataButton, t0))

	// the first frame only establishes the clock
	m.DynamicFrame(evAt(vp, 500, 300, tool.DataButton, t0))
	c0 := vp.Frustum().Center().X
	m.DynamicFrame(evAt(vp, 500, 300, tool.DataButton, t0.Add(100*time.Millisecond)))
	c1 := vp.Frustum().Center().X
	m.DynamicFrame(evAt(vp, 500, 300, tool.DataButton, t0.Add(200*time.Millisecond)))
	c2 := vp.Frustum().Center().X

	// a 100 px offset at the default rate scrolls 20 px per 100 ms
	// tick, which is 0.375 world units at this extent
	tolassert.EqualTol(t, 0, c0, 1.0e-4)
	tolassert.EqualTol(t, 0.375, c1, 1.0e-3)
	tolassert.EqualTol(t, 0.75, c2, 1.0e-3)
}

func TestWalkIntegratesVelocity(t *testing.T) {
	_, m, vp := testManip(t, MaskOf(HandleWalk), false)

	assert.True(t, m.StartDrag(evAt(vp, 400, 300, tool.DataButton, t0)))
	m.Motion(evAt(vp, 400, 200, tool.DataButton, t0))

	m.DynamicFrame(evAt(vp, 400, 200, tool.DataButton, t0))
	m.DynamicFrame(evAt(vp, 400, 200, tool.DataButton, t0.Add(500*time.Millisecond)))
	m.DynamicFrame(evAt(vp, 400, 200, tool.DataButton, t0.Add(time.Second)))

	// full throttle at 3.5 world units per second for one second
	eye, persp := vp.Frustum().EyePoint()
	assert.True(t, persp)
	tolassert.EqualTol(t, 0, eye.X, 0.01)
	tolassert.EqualTol(t, 0, eye.Y, 0.01)
	tolassert.EqualTol(t, 6.5, eye.Z, 0.02)
}

func TestWalkNeedsCamera(t *testing.T) {
	_, m, vp := testManip(t, MaskOf(HandleWalk), false)
	orthoVp(vp)

	assert.False(t, m.StartDrag(evAt(vp, 400, 300, tool.DataButton, t0)))
	assert.False(t, m.Manipulating())
}

func TestLookTurnsInPlace(t *testing.T) {
	_, m, vp := testManip(t, MaskOf(HandleLook), false)

	assert.True(t, m.StartDrag(evAt(vp, 400, 300, tool.DataButton, t0)))
	m.Motion(evAt(vp, 760, 300, tool.DataButton, t0.Add(20*time.Millisecond)))

	// the eye stays fixed while the view turns
	eye, persp := vp.Frustum().EyePoint()
	assert.True(t, persp)
	tolassert.EqualTol(t, 0, eye.X, 0.02)
	tolassert.EqualTol(t, 0, eye.Y, 0.02)
	tolassert.EqualTol(t, 10, eye.Z, 0.02)

	// dragging right turns the look direction toward +x
	look := vp.Frustum().Center().Sub(eye).Normal()
	tolassert.EqualTol(t, 1, look.X, 0.01)
	tolassert.EqualTol(t, 0, look.Z, 0.01)
}

func TestTargetCenterPlacesAndPersists(t *testing.T) {
	_, m, vp := testManip(t, MaskOf(HandleRotate, HandleTargetCenter), false)
	picked := math32.Vec3(1, 2, 3)
	vp.PickFunc = func(pt image.Point, radius int) (math32.Vector3, bool) {
		return picked, true
	}

	// the focus point projects to the viewport center, so a first
	// point there hits the target center handle
	assert.True(t, m.StartDrag(evAt(vp, 400, 300, tool.DataButton, t0)))
	_, isTarget := m.Focus().(*TargetCenter)
	assert.True(t, isTarget)
	assert.True(t, m.EndDrag(evAt(vp, 400, 300, tool.DataButton, t0.Add(20*time.Millisecond))))

	assert.Equal(t, picked, m.TargetCenter)
	assert.True(t, m.TargetFixed)
	// placing the target changes no view, so there is nothing to undo
	assert.False(t, vp.Undo())

	// a later rotation orbits the placed target
	vp.PickFunc = nil
	assert.True(t, m.StartDrag(evAt(vp, 600, 400, tool.DataButton, t0.Add(time.Second))))
	_, isRotate := m.Focus().(*Rotate)
	assert.True(t, isRotate)
	d0 := math32.Vec3(0, 0, 10).Sub(picked).Length()
	m.Motion(evAt(vp, 240, 400, tool.DataButton, t0.Add(time.Second+20*time.Millisecond)))
	eye, _ := vp.Frustum().EyePoint()
	tolassert.EqualTol(t, d0, eye.Sub(picked).Length(), 0.02)
}

func TestPinchZoomAndTouchCommit(t *testing.T) {
	ta, m, vp := testManip(t, MaskOf(HandleZoom), true)
	orthoVp(vp)
	w0 := vp.Frustum().XVec().Length()

	ge := &tool.GestureEvent{
		ButtonEvent: *evAt(vp, 400, 300, tool.DataButton, t0),
		Gesture:     tool.GesturePinch,
		Fingers:     2,
		Zoom:        2,
	}
	ge.Source = tool.SourceTouch
	ge.PrevViewPoint = ge.ViewPoint
	assert.True(t, m.Gesture(ge))
	assert.True(t, m.Manipulating())

	// spreading to twice the separation halves the view extent
	tolassert.EqualTol(t, 0.5*w0, vp.Frustum().XVec().Length(), 1.0e-2)

	// once the fingers lift, the next dynamics frame commits
	m.DynamicFrame(evAt(vp, 400, 300, tool.DataButton, t0.Add(100*time.Millisecond)))
	assert.False(t, m.Manipulating())
	assert.Nil(t, ta.ViewTool())
	assert.True(t, vp.Undo())
}

func TestWheelConsumedWhileManipulating(t *testing.T) {
	_, m, vp := testManip(t, MaskOf(HandlePan), true)

	we := &tool.WheelEvent{
		ButtonEvent: *evAt(vp, 400, 300, tool.DataButton, t0),
		Delta:       -120,
	}
	assert.False(t, m.Wheel(we))

	assert.True(t, m.StartDrag(evAt(vp, 400, 300, tool.MiddleButton, t0)))
	assert.True(t, m.Wheel(we))
}
