// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tool

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/cad/view"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
)

// Button is the logical button of a synthesized pointer event.
// [InputState] maps the raw left button to [DataButton] and the raw
// right button to [ResetButton], so tools never see physical buttons.
type Button int32 //enums:enum

const (
	// DataButton is the primary (left) button, which enters data points.
	DataButton Button = iota

	// ResetButton is the secondary (right) button, which rejects or resets.
	ResetButton

	// MiddleButton is the middle button or wheel press, used for viewing.
	MiddleButton
)

// Sources is the kind of device a synthesized event originated from.
type Sources int32 //enums:enum -trim-prefix Source

const (
	SourceMouse Sources = iota
	SourceTouch
)

// CoordSources is how the world point of a synthesized event was produced.
type CoordSources int32 //enums:enum -trim-prefix From

const (
	// FromUser is a point produced directly from pointer input.
	FromUser CoordSources = iota

	// FromKeyin is a point entered numerically.
	FromKeyin

	// FromElemSnap is a point substituted by snapping to geometry.
	FromElemSnap

	// FromTentative is a point confirmed by a tentative click.
	FromTentative
)

// Gestures is the tag of a synthesized touch gesture, the single
// dispatch point for all touch input above the raw event level.
type Gestures int32 //enums:enum -trim-prefix Gesture

const (
	// GestureSingleTap is a quick touch and release by one finger.
	GestureSingleTap Gestures = iota

	// GestureDoubleTap is two single taps at nearby points within the
	// tap interval.
	GestureDoubleTap

	// GestureTwoFingerTap is a quick touch and release by two fingers.
	GestureTwoFingerTap

	// GesturePressAndHold is one finger held in place past the hold time.
	GesturePressAndHold

	// GestureSingleMove is one finger moving on the surface.
	GestureSingleMove

	// GestureMultiMove is two or more fingers moving together.
	GestureMultiMove

	// GesturePinch is two fingers changing their separation; see
	// [GestureEvent.Zoom] for the scale factor.
	GesturePinch
)

// ButtonEvent is the synthesized pointer event delivered to tools: the
// raw and adjusted world points, the viewport-local view point, and the
// button state at synthesis time. It is plain data; a tool keeping an
// event beyond the callback must keep a [ButtonEvent.Clone].
type ButtonEvent struct {

	// Point is the adjusted world point, after snap, grid lock, and
	// unit rounding.
	Point math32.Vector3

	// RawPoint is the unadjusted world point.
	RawPoint math32.Vector3

	// ViewPoint is the viewport-local point: x and y in pixels from the
	// top left, z the NPC depth.
	ViewPoint math32.Vector3

	// Vp is the viewport the event happened in, nil after
	// [ButtonEvent.Invalidate].
	Vp view.Viewport

	// Button is the logical button of the event.
	Button Button

	// IsDown is whether the button is down after this event.
	IsDown bool

	// IsDoubleClick is whether this down is the second of a double click.
	IsDoubleClick bool

	// IsDragging is whether a drag is in progress for this button.
	IsDragging bool

	// Mods is the active keyboard modifiers.
	Mods key.Modifiers

	// Source is the kind of device that produced the event.
	Source Sources

	// CoordSource is how the world point was produced.
	CoordSource CoordSources

	// Time is when the state behind this event was current: the raw
	// event time for device events, the frame time for synthesized
	// dynamics and timer events.
	Time time.Time
}

// IsValid reports whether the event refers to a live viewport.
func (ev *ButtonEvent) IsValid() bool { return ev.Vp != nil }

// Invalidate drops the viewport reference, marking the event unusable.
func (ev *ButtonEvent) Invalidate() { ev.Vp = nil }

// Clone returns a copy of the event for retention past the callback.
func (ev *ButtonEvent) Clone() *ButtonEvent {
	c := *ev
	return &c
}

// ViewPt returns the integer pixel position of the view point.
func (ev *ButtonEvent) ViewPt() image.Point {
	return image.Pt(int(ev.ViewPoint.X), int(ev.ViewPoint.Y))
}

func (ev *ButtonEvent) String() string {
	return fmt.Sprintf("%v down=%v drag=%v view=(%g,%g) world=%v",
		ev.Button, ev.IsDown, ev.IsDragging, ev.ViewPoint.X, ev.ViewPoint.Y, ev.Point)
}

// WheelEvent is a [ButtonEvent] plus the vertical wheel amount, in
// normalized wheel units where one detent is about 120.
type WheelEvent struct {
	ButtonEvent

	// Delta is the vertical wheel amount; positive rolls away from the
	// user.
	Delta float32
}

func (ev *WheelEvent) Clone() *WheelEvent {
	c := *ev
	return &c
}

// GestureEvent is a [ButtonEvent] plus the gesture tag and its
// parameters. Tools switch on [GestureEvent.Gesture].
type GestureEvent struct {
	ButtonEvent

	// Gesture is the tag identifying what this gesture is.
	Gesture Gestures

	// TapCount is the running tap count for tap gestures.
	TapCount int

	// Fingers is the number of touch points involved.
	Fingers int

	// Zoom is the pinch scale factor relative to the start of the
	// pinch; 1 means unchanged.
	Zoom float32

	// PrevViewPoint is the view point of the previous move of this
	// gesture, for incremental deltas.
	PrevViewPoint math32.Vector3
}

func (ev *GestureEvent) Clone() *GestureEvent {
	c := *ev
	return &c
}

func (ev *GestureEvent) String() string {
	return fmt.Sprintf("%v fingers=%d taps=%d zoom=%g view=(%g,%g)",
		ev.Gesture, ev.Fingers, ev.TapCount, ev.Zoom, ev.ViewPoint.X, ev.ViewPoint.Y)
}
