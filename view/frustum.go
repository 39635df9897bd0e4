// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

//go:generate core generate

// NpcCorners are the indexes of the corners of the normalized perspective
// coordinate (NPC) cube, and of the world-space [Frustum] points derived
// from it. NPC x goes left to right, y bottom to top, and z rear to front,
// where rear is the face farthest from the eye and front is the nearest.
type NpcCorners int32 //enums:enum -trim-prefix Npc

const (
	// NpcLeftBottomRear is corner (0, 0, 0).
	NpcLeftBottomRear NpcCorners = iota

	// NpcRightBottomRear is corner (1, 0, 0).
	NpcRightBottomRear

	// NpcLeftTopRear is corner (0, 1, 0).
	NpcLeftTopRear

	// NpcRightTopRear is corner (1, 1, 0).
	NpcRightTopRear

	// NpcLeftBottomFront is corner (0, 0, 1).
	NpcLeftBottomFront

	// NpcRightBottomFront is corner (1, 0, 1).
	NpcRightBottomFront

	// NpcLeftTopFront is corner (0, 1, 1).
	NpcLeftTopFront

	// NpcRightTopFront is corner (1, 1, 1).
	NpcRightTopFront
)

// Coords returns the NPC cube coordinates of this corner, each axis 0 or 1.
func (nc NpcCorners) Coords() math32.Vector3 {
	i := int32(nc)
	return math32.Vec3(float32(i&1), float32((i>>1)&1), float32((i>>2)&1))
}

// Errors returned by [Frustum.Valid].
var (
	// ErrFrustumDegenerate indicates a frustum with one or more
	// zero-length or non-finite edges.
	ErrFrustumDegenerate = errors.New("view: degenerate frustum")

	// ErrFrustumMirrored indicates a frustum whose corner ordering is
	// inverted (negative volume), e.g., front and rear faces swapped.
	ErrFrustumMirrored = errors.New("view: mirrored frustum")
)

// Frustum is the 8-corner world-space viewing volume of a viewport,
// in [NpcCorners] order: the four rear (far) corners followed by the
// four front (near) corners. It is a value type: viewing tool handles
// snapshot it at the start of a manipulation and apply a fresh transform
// to the snapshot on every dynamics frame, so repeated deltas never
// compound. For perspective views the front face is smaller than the
// rear face and the side edges converge at the eye point.
type Frustum struct {
	Points [8]math32.Vector3
}

// FrustumFromBox returns an axis-aligned [Frustum] covering the given box,
// with the rear face at the minimum z and the front face at the maximum z.
func FrustumFromBox(b math32.Box3) Frustum {
	var f Frustum
	for i := NpcLeftBottomRear; i <= NpcRightTopFront; i++ {
		c := i.Coords()
		f.Points[i] = math32.Vec3(
			b.Min.X+c.X*(b.Max.X-b.Min.X),
			b.Min.Y+c.Y*(b.Max.Y-b.Min.Y),
			b.Min.Z+c.Z*(b.Max.Z-b.Min.Z))
	}
	return f
}

// Corner returns the point at the given NPC corner.
func (f Frustum) Corner(nc NpcCorners) math32.Vector3 {
	return f.Points[nc]
}

// Center returns the center of the frustum volume.
func (f Frustum) Center() math32.Vector3 {
	var sum math32.Vector3
	for _, p := range f.Points {
		sum.SetAdd(p)
	}
	return sum.DivScalar(8)
}

// RearCenter returns the center of the rear (far) face.
func (f Frustum) RearCenter() math32.Vector3 {
	sum := f.Points[NpcLeftBottomRear].Add(f.Points[NpcRightBottomRear])
	sum.SetAdd(f.Points[NpcLeftTopRear])
	sum.SetAdd(f.Points[NpcRightTopRear])
	return sum.DivScalar(4)
}

// FrontCenter returns the center of the front (near) face.
func (f Frustum) FrontCenter() math32.Vector3 {
	sum := f.Points[NpcLeftBottomFront].Add(f.Points[NpcRightBottomFront])
	sum.SetAdd(f.Points[NpcLeftTopFront])
	sum.SetAdd(f.Points[NpcRightTopFront])
	return sum.DivScalar(4)
}

// Transform returns the frustum with all 8 points transformed by the
// given matrix.
func (f Frustum) Transform(m *math32.Matrix4) Frustum {
	var nf Frustum
	for i, p := range f.Points {
		nf.Points[i] = p.MulMatrix4(m)
	}
	return nf
}

// Translate returns the frustum translated by the given delta.
func (f Frustum) Translate(del math32.Vector3) Frustum {
	var nf Frustum
	for i, p := range f.Points {
		nf.Points[i] = p.Add(del)
	}
	return nf
}

// ScaleAbout returns the frustum uniformly scaled about the given point.
func (f Frustum) ScaleAbout(about math32.Vector3, scale float32) Frustum {
	var nf Frustum
	for i, p := range f.Points {
		nf.Points[i] = about.Add(p.Sub(about).MulScalar(scale))
	}
	return nf
}

// RotateAbout returns the frustum rotated by the given quaternion about
// the given point.
func (f Frustum) RotateAbout(about math32.Vector3, q math32.Quat) Frustum {
	var nf Frustum
	for i, p := range f.Points {
		nf.Points[i] = about.Add(q.MulVector(p.Sub(about)))
	}
	return nf
}

// Lerp returns the corner-wise linear interpolation between this frustum
// and the given one, used for animated view transitions.
func (f Frustum) Lerp(to Frustum, t float32) Frustum {
	var nf Frustum
	for i, p := range f.Points {
		nf.Points[i] = p.Lerp(to.Points[i], t)
	}
	return nf
}

// AlmostEquals reports whether all corners are within tol of the
// corresponding corners of the other frustum.
func (f Frustum) AlmostEquals(o Frustum, tol float32) bool {
	for i, p := range f.Points {
		d := p.Sub(o.Points[i])
		if math32.Abs(d.X) > tol || math32.Abs(d.Y) > tol || math32.Abs(d.Z) > tol {
			return false
		}
	}
	return true
}

// XVec returns the rear-face left-to-right edge vector.
func (f Frustum) XVec() math32.Vector3 {
	return f.Points[NpcRightBottomRear].Sub(f.Points[NpcLeftBottomRear])
}

// YVec returns the rear-face bottom-to-top edge vector.
func (f Frustum) YVec() math32.Vector3 {
	return f.Points[NpcLeftTopRear].Sub(f.Points[NpcLeftBottomRear])
}

// ZVec returns the rear-to-front edge vector at the left-bottom corner,
// pointing toward the eye.
func (f Frustum) ZVec() math32.Vector3 {
	return f.Points[NpcLeftBottomFront].Sub(f.Points[NpcLeftBottomRear])
}

const frustumTiny = 1.0e-8

// Valid checks that the frustum encloses a usable viewing volume:
// finite, non-degenerate edges, and un-mirrored corner ordering.
// Viewports reject invalid frusta, leaving the current view unchanged.
func (f Frustum) Valid() error {
	for _, p := range f.Points {
		if math32.IsNaN(p.X) || math32.IsNaN(p.Y) || math32.IsNaN(p.Z) {
			return ErrFrustumDegenerate
		}
	}
	xv, yv, zv := f.XVec(), f.YVec(), f.ZVec()
	if xv.Length() <= frustumTiny || yv.Length() <= frustumTiny || zv.Length() <= frustumTiny {
		return ErrFrustumDegenerate
	}
	if xv.Cross(yv).Dot(zv) <= 0 {
		return ErrFrustumMirrored
	}
	return nil
}

// EyePoint returns the point where the four side edges of a perspective
// frustum converge. The second return value is false for orthographic
// (parallel-edged) frusta.
func (f Frustum) EyePoint() (math32.Vector3, bool) {
	rw := f.XVec().Length()
	fw := f.Points[NpcRightBottomFront].Sub(f.Points[NpcLeftBottomFront]).Length()
	if rw <= frustumTiny {
		return math32.Vector3{}, false
	}
	frac := fw / rw
	if math32.Abs(1-frac) < 1.0e-5 {
		return math32.Vector3{}, false
	}
	r := f.RearCenter()
	fr := f.FrontCenter()
	eye := r.Add(fr.Sub(r).MulScalar(1 / (1 - frac)))
	return eye, true
}

func (f Frustum) String() string {
	return fmt.Sprintf("Frustum{rear: %v %v %v %v, front: %v %v %v %v}",
		f.Points[0], f.Points[1], f.Points[2], f.Points[3],
		f.Points[4], f.Points[5], f.Points[6], f.Points[7])
}
