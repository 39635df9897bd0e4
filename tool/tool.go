// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tool manages the interactive tools of a viewing session.
// The [Admin] drains the raw event queue once per frame, maintains the
// [InputState] behind double click detection, drag promotion, and
// touch tap counting, and routes synthesized events to the installed
// tools by priority. Tools implement the capability interfaces for the
// input they take and start each other by registry name, so tool
// packages never import one another.
package tool

import (
	"cogentcore.org/cad/events"
)

//go:generate core generate

// Kinds are the kinds of interactive tools, which determine the slot a
// tool occupies on the [Admin] and its claim on input. A view tool has
// first claim while installed, then an input collector, then a
// primitive tool, with the idle tool as the permanent fallback.
type Kinds int32 //enums:enum -trim-prefix Kind

const (
	// KindIdle is the always-installed fallback tool, which provides
	// the default viewing behavior for input no other tool wants.
	KindIdle Kinds = iota

	// KindPrimitive is a modeling or markup tool, which persists until
	// replaced by another primitive tool.
	KindPrimitive

	// KindInputCollector gathers a short input sequence (such as a
	// measurement) on top of a primitive tool, which it suspends.
	KindInputCollector

	// KindView is a viewing tool such as pan or rotate, which suspends
	// the other active tools while it runs and restores them on exit.
	KindView
)

// Tool is the lifecycle interface that all interactive tools implement.
// Input callbacks are separate capability interfaces ([PointerConsumer],
// [WheelConsumer], [GestureConsumer], [KeyConsumer],
// [DynamicsParticipant]) that tools implement selectively; the admin
// checks for them by type assertion at dispatch time.
type Tool interface {

	// AsBase returns the [ToolBase] embedded in this tool.
	AsBase() *ToolBase

	// Name returns the registry name of this tool.
	Name() string

	// Kind returns the kind of this tool, which is fixed over its
	// lifetime and determines its slot on the admin.
	Kind() Kinds

	// Install is called before this tool replaces the current one in
	// its slot. Returning false vetoes the installation and leaves the
	// current tool in place.
	Install() bool

	// PostInstall is called after this tool has become the installed
	// tool in its slot, to take its first input from the current state
	// and set prompts and cursors.
	PostInstall()

	// CleanupTool is called on an outgoing tool when it is replaced or
	// exits, to release whatever it holds.
	CleanupTool()

	// Suspend is called when a higher-priority tool takes over input
	// while this tool remains installed.
	Suspend()

	// Unsuspend is called when this tool regains input after the
	// suspending tool exited.
	Unsuspend()

	// ExitTool requests that this tool end itself, routing through the
	// admin exit path for its kind.
	ExitTool()
}

// PointerConsumer is implemented by tools that respond to synthesized
// pointer events. Boolean returns report whether the event was
// consumed; unconsumed events fall through to the idle tool.
type PointerConsumer interface {

	// ButtonDown is called when a logical button goes down.
	ButtonDown(ev *ButtonEvent) bool

	// ButtonUp is called when a logical button is released without a
	// drag in progress for this tool.
	ButtonUp(ev *ButtonEvent) bool

	// Motion is called for pointer motion, coalesced per frame.
	Motion(ev *ButtonEvent)

	// StartDrag is called once when held motion is promoted to a drag.
	// The event carries the original down point, not the current one.
	StartDrag(ev *ButtonEvent) bool

	// EndDrag is called on release of a drag this tool saw begin.
	EndDrag(ev *ButtonEvent) bool

	// MotionStopped is called at most once each time pointer motion
	// settles, for snap and hover processing.
	MotionStopped(ev *ButtonEvent)
}

// WheelConsumer is implemented by tools that respond to wheel events.
// An unconsumed wheel falls through to the idle tool, which zooms.
type WheelConsumer interface {
	Wheel(ev *WheelEvent) bool
}

// GestureConsumer is implemented by tools that respond to synthesized
// touch gestures. Dispatch switches on [GestureEvent.Gesture].
type GestureConsumer interface {
	Gesture(ev *GestureEvent) bool
}

// KeyConsumer is implemented by tools that respond to raw key events.
type KeyConsumer interface {
	KeyDown(ev *events.Key) bool
	KeyUp(ev *events.Key) bool
}

// DynamicsParticipant is implemented by tools that run a per-frame
// dynamics loop while a manipulation is in progress.
type DynamicsParticipant interface {

	// BeginDynamics is called when the dynamics loop starts.
	BeginDynamics()

	// EndDynamics is called when the dynamics loop stops.
	EndDynamics()

	// DynamicFrame is called once per frame between BeginDynamics and
	// EndDynamics, with the current pointer state.
	DynamicFrame(ev *ButtonEvent)
}

// ToolBase is the base for all tools: the registry name, the admin
// backreference, and the per-button record of which downs this tool
// has seen. It provides no-op lifecycle defaults so concrete tools
// override only what they need. It does not provide Kind; every tool
// declares its own.
type ToolBase struct {

	// Nm is the registry name of this tool.
	Nm string

	// Admin is the admin this tool is installed on.
	Admin *Admin

	// This is the outermost tool, for routing exits by kind.
	This Tool `json:"-"`

	// receivedDown records, per logical button, whether this tool was
	// dispatched the down or drag start for a button currently held.
	// A release only completes a drag on the tool that saw it begin.
	receivedDown [ButtonN]bool
}

// InitTool sets the identity fields of the tool. Constructors must
// call it before the tool is installed.
func (tb *ToolBase) InitTool(this Tool, ta *Admin, name string) {
	tb.This = this
	tb.Admin = ta
	tb.Nm = name
}

func (tb *ToolBase) AsBase() *ToolBase { return tb }

func (tb *ToolBase) Name() string { return tb.Nm }

func (tb *ToolBase) Install() bool { return true }

func (tb *ToolBase) PostInstall() {}

func (tb *ToolBase) CleanupTool() {}

func (tb *ToolBase) Suspend() {}

func (tb *ToolBase) Unsuspend() {}

func (tb *ToolBase) ExitTool() {
	if tb.Admin == nil || tb.This == nil {
		return
	}
	switch tb.This.Kind() {
	case KindView:
		tb.Admin.ExitViewTool()
	case KindInputCollector:
		tb.Admin.ExitInputCollector()
	case KindPrimitive:
		tb.Admin.StartDefaultTool()
	}
}

// ReceivedDown reports whether this tool saw the down or drag start
// for the given button.
func (tb *ToolBase) ReceivedDown(btn Button) bool {
	return tb.receivedDown[btn]
}

// SetReceivedDown records that this tool saw the down or drag start
// for the given button.
func (tb *ToolBase) SetReceivedDown(btn Button, got bool) {
	tb.receivedDown[btn] = got
}

// ClearReceivedDown forgets all seen downs, when the tool is replaced.
func (tb *ToolBase) ClearReceivedDown() {
	for i := range tb.receivedDown {
		tb.receivedDown[i] = false
	}
}
