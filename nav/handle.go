// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nav implements the viewing tools of a session: the [Manip]
// tool composing pan, rotate, zoom, scroll, walk, fly, look, and
// target center [Handle]s, the [Processor] for wheel zooming, the
// [WindowArea] tool, and the fit and view undo one-shots. [Register]
// adds them all to a tool registry under their standard names, which
// is how the idle tool and application shortcuts start them.
package nav

import (
	"cogentcore.org/cad/tool"
	"cogentcore.org/core/cursors"
)

//go:generate core generate

// HandleTypes is the set of viewing handle kinds composed into a
// [Manip], as a bit flag mask.
type HandleTypes int64 //enums:bitflag -trim-prefix Handle

const (
	// HandleRotate orbits the view about the target center.
	HandleRotate HandleTypes = iota

	// HandleTargetCenter places the point rotation orbits about.
	HandleTargetCenter

	// HandlePan slides the view in its own plane.
	HandlePan

	// HandleScroll scrolls the view continuously toward the pointer
	// offset.
	HandleScroll

	// HandleZoom scales the view about an anchor point.
	HandleZoom

	// HandleWalk moves the camera over the ground plane with yaw
	// steering.
	HandleWalk

	// HandleFly moves the camera along the look direction with free
	// yaw and pitch.
	HandleFly

	// HandleLook turns the camera in place.
	HandleLook
)

// HitPriorities ranks the claims of competing handles on the first
// point of a manipulation. Among equal claims the later handle wins.
type HitPriorities int32 //enums:enum -trim-prefix Priority

const (
	// PriorityLow is a fallback claim, taken when nothing else wants
	// the point.
	PriorityLow HitPriorities = iota

	// PriorityNormal is the standard claim of a handle's primary
	// interaction.
	PriorityNormal

	// PriorityHigh is a claim that beats the standard ones, such as a
	// modifier held or a point on a handle's own marker.
	PriorityHigh
)

// Handle is one viewing operation hosted by a [Manip]. The manip arms
// the handle that wins the hit test for the first point, then drives
// it with points until the manipulation commits or is abandoned. All
// view changes a handle applies are computed fresh from the manip's
// frustum snapshot, so repeated previews never compound.
type Handle interface {

	// Type returns the flag identifying this handle kind.
	Type() HandleTypes

	// Cursor returns the pointer cursor shown while this handle drives
	// the manipulation.
	Cursor() cursors.Cursor

	// TestHit reports this handle's claim on a manipulation starting
	// with the given event, or false to pass.
	TestHit(ev *tool.ButtonEvent) (HitPriorities, bool)

	// FirstPoint arms the handle at the anchor point of a new
	// manipulation, after the manip has snapshotted the view.
	// Returning false rejects the manipulation.
	FirstPoint(ev *tool.ButtonEvent) bool

	// DoManipulation applies the view change for the given point.
	// While inDynamics the change is a preview; the final call commits
	// it. Returning false abandons the manipulation.
	DoManipulation(ev *tool.ButtonEvent, inDynamics bool) bool

	// NoMotion is called once per dynamics frame whether or not the
	// pointer moved, for handles that keep moving while it rests.
	NoMotion(ev *tool.ButtonEvent)

	// FocusIn is called when this handle wins the hit test and the
	// manipulation begins.
	FocusIn()

	// FocusOut is called when the manipulation ends, however it ends.
	FocusOut()
}

// HandleBase is the base for handles: the owning manip and no-op
// defaults for the optional callbacks.
type HandleBase struct {

	// M is the manip this handle belongs to.
	M *Manip
}

func (hb *HandleBase) TestHit(ev *tool.ButtonEvent) (HitPriorities, bool) {
	return PriorityNormal, true
}

func (hb *HandleBase) NoMotion(ev *tool.ButtonEvent) {}

func (hb *HandleBase) FocusIn() {}

func (hb *HandleBase) FocusOut() {}

// MaskOf returns a handle mask with the given kinds set.
func MaskOf(hs ...HandleTypes) HandleTypes {
	var m HandleTypes
	for _, h := range hs {
		m.SetFlag(true, h)
	}
	return m
}
