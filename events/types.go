// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of input event. The type encodes both the
// source of the event (mouse, touch, key) and the action (down, up, move).
// Most events use the same [Base] type and only set relevant fields.
// Unless otherwise noted, all events are marked as Unique, meaning they
// are always sent. Non-Unique events are subject to compression, where
// if the last event added (and not yet processed and therefore removed
// from the queue) is of the same type, for the same viewport and button
// state, then it is replaced with the new one, instead of adding.
type Types int64 //enums:enum

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	// See Button() for which.
	MouseDown

	// MouseUp happens when a mouse button is released.
	// See Button() for which.
	MouseUp

	// MouseMove is sent whenever the mouse moves, with or without a
	// button down. Button state and drag promotion are tracked by the
	// input state, not encoded in the event type.
	// Not unique, and Prev position is updated during compression.
	MouseMove

	// Scroll is for scroll wheel or trackpad scrolling events.
	// These are not unique and Delta is accumulated during compression.
	Scroll

	// KeyDown is when a key is pressed down.
	KeyDown

	// KeyUp is when a key is released.
	KeyUp

	// TouchStart is when a touch point first contacts the surface.
	// See Sequence for which touch in a multi-touch sequence.
	TouchStart

	// TouchEnd is when a touch point leaves the surface.
	TouchEnd

	// TouchMove is when an active touch point moves.
	// Not unique, and Prev position is updated during compression.
	TouchMove

	// TouchCancel is when the system cancels an active touch sequence
	// (e.g., the window loses input focus mid-gesture).
	TouchCancel
)

// EventFlags encode boolean event properties
type EventFlags int64 //enums:bitflag

const (
	// Handled indicates that the event has been handled
	Handled EventFlags = iota

	// Unique indicates that the event is Unique and not
	// to be compressed with like events.
	Unique
)
