// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view provides the viewing state that input tools manipulate:
// the 8-corner world-space [Frustum], the [Camera] that produces and
// decomposes it, the [Viewport] interface with its standard [Base]
// implementation, and the [Animator] for smooth view transitions.
//
// The frustum is the unit of view change throughout: tools snapshot it,
// transform the snapshot, and apply the result back, so a view change is
// always a pure function of the starting view. Viewports reject invalid
// frusta and keep a bounded undo stack of previously applied ones.
package view

import (
	"image"

	"cogentcore.org/core/cursors"
	"cogentcore.org/core/math32"
)

// ViewUndoDepth is the maximum number of view states kept on a
// viewport undo stack. Older states are dropped.
var ViewUndoDepth = 20

// Viewport is the interface through which viewing tools read and change
// what a view shows. [Base] provides the standard implementation;
// rendering viewports embed it and override what they need.
type Viewport interface {

	// Geom returns the position and size of the viewport within its
	// window, in pixels.
	Geom() math32.Geom2DInt

	// IsCameraOn reports whether the perspective camera is on,
	// as opposed to an orthographic projection.
	IsCameraOn() bool

	// Frustum returns the current world-space viewing volume.
	Frustum() Frustum

	// SetFrustum applies the given frustum as the new view.
	// An invalid frustum is rejected with an error and the
	// current view is left unchanged.
	SetFrustum(f Frustum) error

	// WorldToView transforms a world point into view coordinates:
	// x and y in pixels from the top-left of the viewport, z the
	// NPC depth.
	WorldToView(pt math32.Vector3) math32.Vector3

	// ViewToWorld transforms view coordinates (as from [Viewport.WorldToView])
	// back into a world point.
	ViewToWorld(pt math32.Vector3) math32.Vector3

	// WorldToNpc transforms a world point into normalized perspective
	// coordinates.
	WorldToNpc(pt math32.Vector3) math32.Vector3

	// NpcToWorld transforms a normalized perspective coordinate point
	// into world coordinates.
	NpcToWorld(pt math32.Vector3) math32.Vector3

	// FocusPoint returns the world point serving as the depth reference
	// for converting 2D input points into world points, normally the
	// camera target.
	FocusPoint() math32.Vector3

	// PickNearestVisible returns the world point of the nearest visible
	// geometry within the given pixel radius of the given view point,
	// for choosing zoom and orbit centers. The second return value is
	// false when no geometry is there.
	PickNearestVisible(pt image.Point, radius int) (math32.Vector3, bool)

	// DisplayedExtents returns the world bounding box of what the
	// viewport shows, for fitting views. A zero box means the extents
	// are unknown.
	DisplayedExtents() math32.Box3

	Undoer
	Cursorer

	// Animator returns the view transition animator for this viewport.
	Animator() *Animator

	// NeedsRender flags that the view has changed and must be redrawn.
	NeedsRender()
}

// Undoer is the view undo / redo capability of a [Viewport].
type Undoer interface {

	// SaveUndo pushes the current view onto the undo stack and clears
	// the redo stack. Call it before applying a complete view change.
	SaveUndo()

	// Undo restores the most recently saved view exactly, pushing the
	// current view onto the redo stack. It reports whether there was
	// anything to undo.
	Undo() bool

	// Redo restores the most recently undone view exactly.
	// It reports whether there was anything to redo.
	Redo() bool
}

// Cursorer is the cursor capability of a [Viewport].
type Cursorer interface {

	// SetCursor sets the pointer cursor shown over this viewport.
	SetCursor(cur cursors.Cursor)
}

// Base is the standard [Viewport] implementation: a [Camera], pixel
// geometry, the applied frustum, a bounded undo stack, a cursor, and a
// render dirty flag. It has no scene of its own; rendering viewports
// embed it and override [Base.PickNearestVisible] and [Base.NeedsRender].
// All methods must be called from the frame goroutine.
type Base struct {

	// Geometry is the position and size of the viewport within its
	// window, in pixels.
	Geometry math32.Geom2DInt

	// Cam is the camera for this viewport. After setting its fields
	// directly, call [Base.SyncCamera] to re-derive the frustum.
	Cam Camera

	// Cursor is the currently set pointer cursor.
	Cursor cursors.Cursor

	// Bounds is the world bounding box of the displayed content,
	// returned by [Base.DisplayedExtents]. Rendering viewports keep
	// it current.
	Bounds math32.Box3

	// PickFunc, if set, implements [Base.PickNearestVisible].
	PickFunc func(pt image.Point, radius int) (math32.Vector3, bool) `json:"-"`

	// frustum is the source of truth for the current view, so that
	// undo restores it bit for bit.
	frustum Frustum

	undos []Frustum
	redos []Frustum
	anim  Animator
	dirty bool
}

// NewBase returns a new [Base] viewport with the given pixel size at
// position zero, with default camera parameters.
func NewBase(width, height int) *Base {
	b := &Base{}
	b.Geometry.Size = image.Point{width, height}
	b.Cam.Defaults()
	if height > 0 {
		b.Cam.Aspect = float32(width) / float32(height)
	}
	b.SyncCamera()
	return b
}

func (b *Base) Geom() math32.Geom2DInt { return b.Geometry }

// SetGeom sets the viewport pixel geometry and updates the camera
// aspect ratio to match.
func (b *Base) SetGeom(gm math32.Geom2DInt) {
	b.Geometry = gm
	if gm.Size.Y > 0 {
		b.Cam.Aspect = float32(gm.Size.X) / float32(gm.Size.Y)
	}
	b.SyncCamera()
}

func (b *Base) IsCameraOn() bool { return b.Cam.On }

func (b *Base) Frustum() Frustum { return b.frustum }

// SyncCamera updates the camera matrices and re-derives the current
// frustum from them, after direct changes to [Base.Cam].
func (b *Base) SyncCamera() {
	b.Cam.UpdateMatrix()
	b.frustum = b.Cam.Frustum()
	b.NeedsRender()
}

func (b *Base) SetFrustum(f Frustum) error {
	if err := b.Cam.SetFromFrustum(f); err != nil {
		return err
	}
	b.frustum = f
	b.NeedsRender()
	return nil
}

func (b *Base) WorldToNpc(pt math32.Vector3) math32.Vector3 {
	return b.Cam.WorldToNpc(pt)
}

func (b *Base) NpcToWorld(pt math32.Vector3) math32.Vector3 {
	return b.Cam.NpcToWorld(pt)
}

func (b *Base) WorldToView(pt math32.Vector3) math32.Vector3 {
	return b.Cam.WorldToView(pt, b.Geometry.Size)
}

func (b *Base) ViewToWorld(pt math32.Vector3) math32.Vector3 {
	return b.Cam.ViewToWorld(pt, b.Geometry.Size)
}

func (b *Base) FocusPoint() math32.Vector3 { return b.Cam.Target }

func (b *Base) DisplayedExtents() math32.Box3 { return b.Bounds }

func (b *Base) PickNearestVisible(pt image.Point, radius int) (math32.Vector3, bool) {
	if b.PickFunc != nil {
		return b.PickFunc(pt, radius)
	}
	return math32.Vector3{}, false
}

func (b *Base) SaveUndo() {
	b.redos = b.redos[:0]
	b.undos = append(b.undos, b.frustum)
	if len(b.undos) > ViewUndoDepth {
		b.undos = b.undos[len(b.undos)-ViewUndoDepth:]
	}
}

func (b *Base) Undo() bool {
	n := len(b.undos)
	if n == 0 {
		return false
	}
	f := b.undos[n-1]
	b.undos = b.undos[:n-1]
	b.redos = append(b.redos, b.frustum)
	b.restore(f)
	return true
}

func (b *Base) Redo() bool {
	n := len(b.redos)
	if n == 0 {
		return false
	}
	f := b.redos[n-1]
	b.redos = b.redos[:n-1]
	b.undos = append(b.undos, b.frustum)
	b.restore(f)
	return true
}

// restore applies a previously saved frustum without revalidation:
// the saved state is restored exactly even if the camera decomposition
// would reproduce it only approximately.
func (b *Base) restore(f Frustum) {
	b.Cam.SetFromFrustum(f)
	b.frustum = f
	b.NeedsRender()
}

func (b *Base) SetCursor(cur cursors.Cursor) {
	b.Cursor = cur
}

func (b *Base) Animator() *Animator { return &b.anim }

func (b *Base) NeedsRender() { b.dirty = true }

// IsDirty reports whether the view has changed since [Base.ClearDirty].
func (b *Base) IsDirty() bool { return b.dirty }

// ClearDirty resets the render dirty flag, after drawing a frame.
func (b *Base) ClearDirty() { b.dirty = false }
