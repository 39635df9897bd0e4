// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"image"

	"cogentcore.org/core/math32"
)

// Camera defines the viewing camera for a [Base] viewport. It maintains
// the full view and projection matrices from a minimal set of viewing
// parameters, and converts between world, NPC, and view coordinates.
// All updates must happen on the owning viewport's frame goroutine.
type Camera struct {

	// On is whether the perspective camera is on; when off, the
	// projection is orthographic.
	On bool

	// Pos is the position of the camera (the eye point for perspective).
	Pos math32.Vector3

	// Target is the point the camera is looking at, and the default
	// center for orbiting.
	Target math32.Vector3

	// UpDir is the direction of the up vector, which the camera rotates
	// around during orbiting.
	UpDir math32.Vector3

	// FOV is the vertical field of view in degrees, for perspective.
	FOV float32

	// Aspect is the aspect ratio (width / height) of the viewport.
	Aspect float32

	// Near is the distance from the camera to the front (near) plane.
	Near float32

	// Far is the distance from the camera to the rear (far) plane.
	Far float32

	// Extents is the world width and height of the viewing volume,
	// for orthographic projection.
	Extents math32.Vector2

	// ViewMatrix is the camera view matrix, transforming world into
	// camera-centered coordinates.
	ViewMatrix math32.Matrix4 `edit:"-"`

	// ProjectionMatrix is the projection matrix, transforming camera
	// coordinates into normalized display coordinates.
	ProjectionMatrix math32.Matrix4 `edit:"-"`

	// VPMatrix is ProjectionMatrix * ViewMatrix.
	VPMatrix math32.Matrix4 `edit:"-"`

	// InvVPMatrix is the inverse of VPMatrix, for unprojecting.
	InvVPMatrix math32.Matrix4 `edit:"-"`

	// ndc depth of the near and far planes under the current projection,
	// which depends on the projection depth convention. NPC z is
	// normalized against these so the rear (far) face is always 0 and
	// the front (near) face is always 1.
	nearNdc, farNdc float32
}

func (cm *Camera) Defaults() {
	cm.On = true
	cm.FOV = 45
	cm.Aspect = 1.5
	cm.Near = 0.01
	cm.Far = 1000
	cm.Extents = math32.Vec2(15, 10)
	cm.DefaultPose()
}

// DefaultPose restores the default viewing position and orientation.
func (cm *Camera) DefaultPose() {
	cm.Pos = math32.Vec3(0, 0, 10)
	cm.Target = math32.Vector3{}
	cm.UpDir = math32.Vec3(0, 1, 0)
}

// ViewVector is the computed unit vector between the camera position and target.
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Target.Sub(cm.Pos).Normal()
}

// LookAt points the camera at given target location, using given up direction.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
	cm.UpdateMatrix()
}

// UpdateMatrix updates the view, projection, and composite matrices
// from the current camera parameters.
func (cm *Camera) UpdateMatrix() {
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(cm.Pos, cm.Target, cm.UpDir))
	scale := math32.Vec3(1, 1, 1)
	var cview math32.Matrix4
	cview.SetTransform(cm.Pos, lookq, scale)
	view, err := cview.Inverse()
	if err != nil {
		return
	}
	cm.ViewMatrix = *view
	if cm.On {
		cm.ProjectionMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	} else {
		cm.ProjectionMatrix.SetOrthographic(cm.Extents.X, cm.Extents.Y, cm.Near, cm.Far)
	}
	cm.VPMatrix.MulMatrices(&cm.ProjectionMatrix, &cm.ViewMatrix)
	inv, err := cm.VPMatrix.Inverse()
	if err != nil {
		return
	}
	cm.InvVPMatrix = *inv
	dir := cm.ViewVector()
	if dir == (math32.Vector3{}) {
		dir = math32.Vec3(0, 0, -1)
	}
	cm.nearNdc = cm.ndcDepth(cm.Pos.Add(dir.MulScalar(cm.Near)))
	cm.farNdc = cm.ndcDepth(cm.Pos.Add(dir.MulScalar(cm.Far)))
}

func (cm *Camera) ndcDepth(pt math32.Vector3) float32 {
	v4 := math32.Vec4(pt.X, pt.Y, pt.Z, 1).MulMatrix4(&cm.VPMatrix)
	return v4.PerspDiv().Z
}

// WorldToNpc transforms the given world point into normalized perspective
// coordinates, where x goes 0..1 left to right, y 0..1 bottom to top, and
// z 0..1 rear (far) to front (near).
func (cm *Camera) WorldToNpc(pt math32.Vector3) math32.Vector3 {
	v4 := math32.Vec4(pt.X, pt.Y, pt.Z, 1).MulMatrix4(&cm.VPMatrix)
	ndc := v4.PerspDiv()
	return math32.Vec3(0.5*(ndc.X+1), 0.5*(ndc.Y+1), (ndc.Z-cm.farNdc)/(cm.nearNdc-cm.farNdc))
}

// NpcToWorld transforms the given normalized perspective coordinate
// point back into world coordinates.
func (cm *Camera) NpcToWorld(pt math32.Vector3) math32.Vector3 {
	ndcZ := cm.farNdc + pt.Z*(cm.nearNdc-cm.farNdc)
	v4 := math32.Vec4(2*pt.X-1, 2*pt.Y-1, ndcZ, 1).MulMatrix4(&cm.InvVPMatrix)
	return v4.PerspDiv()
}

// WorldToView transforms a world point into the view coordinates of a
// viewport with the given pixel size: x and y in pixels from the top
// left, z the NPC depth.
func (cm *Camera) WorldToView(pt math32.Vector3, sz image.Point) math32.Vector3 {
	npc := cm.WorldToNpc(pt)
	return math32.Vec3(npc.X*float32(sz.X), (1-npc.Y)*float32(sz.Y), npc.Z)
}

// ViewToWorld transforms view coordinates (as from [Camera.WorldToView])
// back into a world point.
func (cm *Camera) ViewToWorld(pt math32.Vector3, sz image.Point) math32.Vector3 {
	npc := math32.Vec3(pt.X/float32(sz.X), 1-pt.Y/float32(sz.Y), pt.Z)
	return cm.NpcToWorld(npc)
}

// Frustum returns the world-space corners of the current viewing volume,
// by unprojecting the NPC cube. UpdateMatrix must be current.
func (cm *Camera) Frustum() Frustum {
	var f Frustum
	for i := NpcLeftBottomRear; i <= NpcRightTopFront; i++ {
		f.Points[i] = cm.NpcToWorld(i.Coords())
	}
	return f
}

// SetFromFrustum sets the camera parameters from the given 8-corner
// frustum, which must be valid. Perspective is detected from the
// convergence of the frustum side edges; skewed frusta are normalized
// to their orthogonal frame. The matrices are updated on success.
func (cm *Camera) SetFromFrustum(f Frustum) error {
	if err := f.Valid(); err != nil {
		return err
	}
	xv, yv, zv := f.XVec(), f.YVec(), f.ZVec()
	rearC, frontC := f.RearCenter(), f.FrontCenter()
	up := yv.Normal()
	eye, persp := f.EyePoint()
	cm.On = persp
	cm.UpDir = up
	cm.Target = f.Center()
	if persp {
		cm.Pos = eye
		cm.Near = eye.Sub(frontC).Length()
		cm.Far = eye.Sub(rearC).Length()
		rh := yv.Length()
		cm.FOV = 2 * math32.RadToDeg(math32.Atan2(0.5*rh, cm.Far))
		cm.Aspect = xv.Length() / rh
	} else {
		zdir := zv.Normal()
		if cm.Near <= 0 {
			cm.Near = 0.01
		}
		cm.Far = cm.Near + zv.Length()
		cm.Pos = frontC.Add(zdir.MulScalar(cm.Near))
		cm.Extents = math32.Vec2(xv.Length(), yv.Length())
		cm.Aspect = cm.Extents.X / cm.Extents.Y
	}
	cm.UpdateMatrix()
	return nil
}
