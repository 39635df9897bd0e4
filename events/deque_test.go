// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"cogentcore.org/cad/view"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestDequeCompressesMotion(t *testing.T) {
	q := &Deque{}
	vp := view.NewBase(800, 600)
	q.Send(NewMouseMove(vp, NoButton, image.Pt(10, 10), image.Pt(5, 5), 0))
	q.Send(NewMouseMove(vp, NoButton, image.Pt(20, 10), image.Pt(10, 10), 0))
	q.Send(NewMouseMove(vp, NoButton, image.Pt(30, 10), image.Pt(20, 10), 0))
	assert.Equal(t, 1, q.Len())

	e := q.NextEvent()
	assert.Equal(t, image.Pt(30, 10), e.Pos())
	// the surviving event's Prev spans the whole compressed run
	assert.Equal(t, image.Pt(5, 5), e.PrevPos())
	assert.Nil(t, q.NextEvent())
}

func TestDequeUniqueBreaksRun(t *testing.T) {
	q := &Deque{}
	vp := view.NewBase(800, 600)
	q.Send(NewMouseMove(vp, NoButton, image.Pt(10, 10), image.Pt(5, 5), 0))
	q.Send(NewMouse(vp, MouseDown, Left, image.Pt(10, 10), 0))
	q.Send(NewMouseMove(vp, Left, image.Pt(20, 10), image.Pt(10, 10), 0))
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, MouseMove, q.NextEvent().Type())
	assert.Equal(t, MouseDown, q.NextEvent().Type())
	assert.Equal(t, MouseMove, q.NextEvent().Type())
}

func TestDequeScrollAccumulates(t *testing.T) {
	q := &Deque{}
	vp := view.NewBase(800, 600)
	q.Send(NewScroll(vp, image.Pt(100, 100), math32.Vec2(0, -10), 0))
	q.Send(NewScroll(vp, image.Pt(105, 100), math32.Vec2(0, -15), 0))
	assert.Equal(t, 1, q.Len())

	sc := q.NextEvent().(*MouseScroll)
	assert.Equal(t, float32(-25), sc.Delta.Y)
	assert.Equal(t, image.Pt(105, 100), sc.Pos())
}

func TestDequeKeepsViewportsApart(t *testing.T) {
	q := &Deque{}
	a := view.NewBase(800, 600)
	b := view.NewBase(400, 300)
	q.Send(NewMouseMove(a, NoButton, image.Pt(10, 10), image.Pt(5, 5), 0))
	q.Send(NewMouseMove(b, NoButton, image.Pt(20, 10), image.Pt(10, 10), 0))
	assert.Equal(t, 2, q.Len())
}

func TestDequeTouchSequences(t *testing.T) {
	q := &Deque{}
	vp := view.NewBase(800, 600)
	q.Send(NewTouch(vp, TouchMove, 1, image.Pt(10, 10)))
	q.Send(NewTouch(vp, TouchMove, 2, image.Pt(20, 20)))
	q.Send(NewTouch(vp, TouchMove, 1, image.Pt(15, 10)))
	// moves of different touch sequences never merge
	assert.Equal(t, 3, q.Len())

	// but an adjacent move of the same sequence does
	q.Send(NewTouch(vp, TouchMove, 1, image.Pt(18, 10)))
	assert.Equal(t, 3, q.Len())
}

func TestDequeDropViewport(t *testing.T) {
	q := &Deque{}
	a := view.NewBase(800, 600)
	b := view.NewBase(400, 300)
	q.Send(NewMouse(a, MouseDown, Left, image.Pt(1, 1), 0))
	q.Send(NewMouse(b, MouseDown, Left, image.Pt(2, 2), 0))
	q.Send(NewMouse(a, MouseUp, Left, image.Pt(3, 3), 0))
	q.DropViewport(a)
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, view.Viewport(b), q.NextEvent().Viewport())
}

func TestDequeDrain(t *testing.T) {
	q := &Deque{}
	vp := view.NewBase(800, 600)
	q.Send(NewMouse(vp, MouseDown, Left, image.Pt(1, 1), 0))
	q.Send(NewMouse(vp, MouseUp, Left, image.Pt(2, 2), 0))
	evs := q.Drain()
	assert.Len(t, evs, 2)
	assert.Equal(t, MouseDown, evs[0].Type())
	assert.Equal(t, MouseUp, evs[1].Type())
	assert.Equal(t, 0, q.Len())
}

func TestEventBasics(t *testing.T) {
	vp := view.NewBase(800, 600)
	e := NewMouse(vp, MouseDown, Left, image.Pt(100, 100), 0)
	e.Init()
	assert.True(t, e.HasPos())
	assert.True(t, e.IsUnique())
	assert.False(t, e.NeedsFocus())
	assert.Equal(t, Left, e.MouseButton())
	assert.False(t, e.IsHandled())
	e.SetHandled()
	assert.True(t, e.IsHandled())

	mv := NewMouseMove(vp, NoButton, image.Pt(30, 40), image.Pt(0, 0), 0)
	mv.Start = image.Pt(0, 0)
	assert.Equal(t, float32(50), mv.StartDistance())
	assert.False(t, mv.IsUnique())

	k := NewKey(vp, KeyDown, 'a', 0, 0)
	assert.True(t, k.NeedsFocus())
}
