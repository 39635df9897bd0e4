// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the raw input events for a CAD viewing session,
// and the Deque queue that buffers them between input drivers and the
// per-frame tool dispatch loop, with motion-event coalescing.
package events

//go:generate core generate

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/cad/view"
	"cogentcore.org/core/enums"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
)

// Event is the interface for all input events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event associated with given event
	Type() Types

	// AsBase returns this event as a Base event type,
	// which is used for most basic event types.
	AsBase() *Base

	// IsUnique returns true if this event must always be sent,
	// by default all events are unique, and only mouse movement
	// and scrolling events are not.
	IsUnique() bool

	// NeedsFocus reports whether this event goes to the keyboard
	// focus target instead of the position target.
	NeedsFocus() bool

	// HasPos returns true if the event has a window position where it takes place
	HasPos() bool

	// Pos returns the original window-based position in raw display dots
	// (pixels) where event took place.
	Pos() image.Point

	// StartPos returns the original starting window-based position.
	StartPos() image.Point

	// StartDelta returns Pos - Start, the total delta from the start of
	// the current motion sequence.
	StartDelta() image.Point

	// PrevPos returns the original previous window-based position.
	PrevPos() image.Point

	// PrevDelta returns Pos - Prev, the delta from the previous event.
	PrevDelta() image.Point

	// Time returns the time at which the event was generated, in UnixNano
	// nanosecond units.
	Time() time.Time

	// StartTime returns time of StartPos (start of motion sequence).
	StartTime() time.Time

	// SinceStart returns Time() - StartTime().
	SinceStart() time.Duration

	// PrevTime returns time of PrevPos.
	PrevTime() time.Time

	// SincePrev returns Time() - PrevTime().
	SincePrev() time.Duration

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// so no further processing occurs.
	SetHandled()

	// ClearHandled is the opposite of [Event.SetHandled].
	ClearHandled()

	// Init sets the time to now, and any other initialization.
	// Senders call it just before [Deque.Send].
	Init()

	// Clone returns a duplicate of this event with the basic event parameters
	// copied (specialized Event types have their own clone methods).
	Clone() *Base

	// MouseButton returns the mouse button associated with the event,
	// for mouse events, and NoButton otherwise.
	MouseButton() Buttons

	// Modifiers returns the modifier keys present at time of event.
	Modifiers() key.Modifiers

	// HasAnyModifier returns whether any of the given
	// modifier keys were present at time of event.
	HasAnyModifier(mods ...enums.BitFlag) bool

	// HasAllModifiers returns whether all of the given
	// modifier keys were present at time of event.
	HasAllModifiers(mods ...enums.BitFlag) bool

	// KeyCode returns the keyboard code associated with the event,
	// for key events, and key.CodeUnknown otherwise.
	KeyCode() key.Codes

	// Viewport returns the viewport in which the event took place,
	// which may be nil for events not tied to a viewport.
	Viewport() view.Viewport

	// SetViewport sets the originating viewport.
	SetViewport(vp view.Viewport)
}

// Base is the base type for all input events, providing the basic event data
// and common behavior for all events. Specific event types embed it and
// extend it as needed.
type Base struct {
	// Typ is the type of the event.
	Typ Types

	// Flags records event boolean state, using atomic flag operations.
	Flags EventFlags

	// GenTime is the time when the event was generated.
	GenTime time.Time

	// Where is the window-based position in raw display dots (pixels)
	// where the event took place.
	Where image.Point

	// Start is the window-based position at the start of the current
	// motion sequence (where the button first went down, for drags).
	Start image.Point

	// StTime is the time of the Start position.
	StTime time.Time

	// Prev is the window-based position of the previous motion event.
	// It is updated when non-unique motion events are compressed.
	Prev image.Point

	// PrvTime is the time of the Prev position.
	PrvTime time.Time

	// Mods are the bit flags of the active modifier keys at time of event.
	Mods key.Modifiers

	// Button is the raw device button for mouse events.
	Button Buttons

	// Code is the keyboard code for key events.
	Code key.Codes

	// KeyRune is the rune for key events.
	KeyRune rune

	// Sequence identifies one touch in a multi-touch sequence.
	Sequence int64

	// Vp is the viewport in which the event took place. Events for a
	// viewport that has since been removed are dropped by the dispatcher.
	Vp view.Viewport
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) AsBase() *Base {
	return ev
}

func (ev *Base) IsUnique() bool {
	return ev.Flags.HasFlag(Unique)
}

// SetUnique sets the event as Unique, not subject to compression.
func (ev *Base) SetUnique() {
	ev.Flags.SetFlag(true, Unique)
}

func (ev *Base) NeedsFocus() bool {
	return ev.Typ == KeyDown || ev.Typ == KeyUp
}

func (ev *Base) HasPos() bool {
	return false
}

func (ev *Base) Pos() image.Point {
	return ev.Where
}

func (ev *Base) StartPos() image.Point {
	return ev.Start
}

func (ev *Base) StartDelta() image.Point {
	return ev.Where.Sub(ev.Start)
}

func (ev *Base) PrevPos() image.Point {
	return ev.Prev
}

func (ev *Base) PrevDelta() image.Point {
	return ev.Where.Sub(ev.Prev)
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) StartTime() time.Time {
	return ev.StTime
}

func (ev *Base) SinceStart() time.Duration {
	return ev.Time().Sub(ev.StartTime())
}

func (ev *Base) PrevTime() time.Time {
	return ev.PrvTime
}

func (ev *Base) SincePrev() time.Duration {
	return ev.Time().Sub(ev.PrevTime())
}

func (ev *Base) IsHandled() bool {
	return ev.Flags.HasFlag(Handled)
}

func (ev *Base) SetHandled() {
	ev.Flags.SetFlag(true, Handled)
}

func (ev *Base) ClearHandled() {
	ev.Flags.SetFlag(false, Handled)
}

func (ev *Base) Init() {
	ev.GenTime = time.Now()
	ev.StTime = ev.GenTime
	ev.PrvTime = ev.GenTime
}

func (ev *Base) Clone() *Base {
	nev := &Base{}
	*nev = *ev
	nev.ClearHandled()
	return nev
}

func (ev *Base) MouseButton() Buttons {
	return ev.Button
}

func (ev *Base) Modifiers() key.Modifiers {
	return ev.Mods
}

func (ev *Base) HasAnyModifier(mods ...enums.BitFlag) bool {
	return key.HasAnyModifier(ev.Mods, mods...)
}

func (ev *Base) HasAllModifiers(mods ...enums.BitFlag) bool {
	return key.HasAllModifiers(ev.Mods, mods...)
}

func (ev *Base) KeyCode() key.Codes {
	return ev.Code
}

func (ev *Base) Viewport() view.Viewport {
	return ev.Vp
}

func (ev *Base) SetViewport(vp view.Viewport) {
	ev.Vp = vp
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Where, ev.Mods.ModifiersString(), ev.Time().Format("04:05"))
}

// StartDistance returns the distance in display dots from the start of the
// current motion sequence, using float32 math on the integer deltas.
func (ev *Base) StartDistance() float32 {
	d := ev.StartDelta()
	return math32.Vec2(float32(d.X), float32(d.Y)).Length()
}
