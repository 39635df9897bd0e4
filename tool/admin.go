// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tool

import (
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"

	"cogentcore.org/cad/events"
	"cogentcore.org/cad/view"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
)

// SnapProvider substitutes snapped points for raw pointer points in
// [InputState.AdjustPoint]. The app wires one in when it has geometry
// to snap to.
type SnapProvider interface {

	// SnapPoint returns the snap replacement for the given raw world
	// point on the viewport, and whether a snap is active there.
	SnapPoint(vp view.Viewport, raw math32.Vector3) (math32.Vector3, bool)
}

// WheelProcessor handles wheel events that no installed tool consumed.
// The viewing package wires in the zoom processor at startup.
type WheelProcessor interface {
	ProcessWheel(ev *WheelEvent) error
}

// Notifier receives user facing output from tools: the prompt line
// and transient messages.
type Notifier interface {

	// Prompt sets the current tool prompt.
	Prompt(msg string)

	// Message shows a transient informational message.
	Message(msg string)
}

// Admin administers the interactive tools of a viewing session. It
// drains the event queue once per frame, maintains the input state,
// synthesizes tool events from it, and routes them to the installed
// tools by priority: the viewing tool first, then the input collector,
// then the primitive tool, then the always present idle tool.
//
// All methods must be called from the frame loop goroutine; only the
// Queue is fed from elsewhere.
type Admin struct {

	// Queue receives raw window events from the platform driver.
	Queue events.Deque

	// State is the live input state that events are synthesized from.
	State InputState

	// Set holds the input timing, distance, and locking settings.
	Set SettingsData

	// Reg is the tool registry used by [Admin.RunTool].
	Reg Registry

	// Snap, if set, supplies snapped points for adjusted points.
	Snap SnapProvider

	// Wheel, if set, handles wheel events no tool consumed.
	Wheel WheelProcessor

	// Notif, if set, receives tool prompts and messages.
	Notif Notifier

	// Observers are called with each raw event before tool routing,
	// for event tracing and tests. An observer that marks the event
	// handled stops its dispatch.
	Observers events.Listeners

	// DefaultToolName, if set, names the registered tool that
	// [Admin.StartDefaultTool] starts.
	DefaultToolName string

	// the tool slots; idle is never nil after NewAdmin.
	idle           Tool
	primitive      Tool
	inputCollector Tool
	viewTool       Tool

	// suspended holds the tools pushed aside by the installed viewing
	// tool, in suspension order.
	suspended []Tool

	// dynamics, when set, receives a frame callback per ProcessFrame.
	dynamics DynamicsParticipant

	// processing guards against overlapping frame processing.
	processing atomic.Bool

	// lastGestureView is the view point of the previous touch move
	// gesture, carried into the next one as its PrevViewPoint.
	lastGestureView math32.Vector3
	gestureMoving   bool

	// maxTouchPoints is the most fingers seen down during the current
	// touch episode, for two finger tap detection.
	maxTouchPoints int
}

// NewAdmin returns a new admin with settings at their defaults and the
// fallback [Idle] tool installed.
func NewAdmin() *Admin {
	ta := &Admin{}
	ta.Set.Defaults()
	ta.State.Set = &ta.Set
	ta.idle = NewIdle(ta)
	return ta
}

// ActiveTool returns the tool that currently has first claim on input:
// the viewing tool if one is installed, else the input collector, else
// the primitive tool, else the idle tool.
func (ta *Admin) ActiveTool() Tool {
	switch {
	case ta.viewTool != nil:
		return ta.viewTool
	case ta.inputCollector != nil:
		return ta.inputCollector
	case ta.primitive != nil:
		return ta.primitive
	}
	return ta.idle
}

// ViewTool returns the installed viewing tool, or nil.
func (ta *Admin) ViewTool() Tool { return ta.viewTool }

// InputCollector returns the installed input collector, or nil.
func (ta *Admin) InputCollector() Tool { return ta.inputCollector }

// PrimitiveTool returns the installed primitive tool, or nil.
func (ta *Admin) PrimitiveTool() Tool { return ta.primitive }

// IdleTool returns the fallback idle tool.
func (ta *Admin) IdleTool() Tool { return ta.idle }

// InstallTool makes the given tool current for its kind, if the tool
// agrees: a false return from its Install vetoes the change and leaves
// the current tools in place. Installing a viewing tool suspends the
// input collector and primitive tool until it exits; installing into
// an occupied slot cleans up the occupant first. Reports whether the
// tool was installed.
func (ta *Admin) InstallTool(t Tool) bool {
	if t == nil || !t.Install() {
		return false
	}
	switch t.Kind() {
	case KindView:
		if ta.viewTool != nil {
			ta.stopDynamicsFor(ta.viewTool)
			ta.viewTool.CleanupTool()
		} else {
			ta.suspendForView()
		}
		ta.viewTool = t
	case KindInputCollector:
		if ta.inputCollector != nil {
			ta.inputCollector.CleanupTool()
		}
		ta.inputCollector = t
	case KindPrimitive:
		if ta.primitive != nil {
			ta.primitive.CleanupTool()
		}
		ta.primitive = t
	default:
		if ta.idle != nil {
			ta.idle.CleanupTool()
		}
		ta.idle = t
	}
	t.PostInstall()
	return true
}

// suspendForView suspends the input collector and primitive tool ahead
// of a viewing tool taking over.
func (ta *Admin) suspendForView() {
	for _, t := range []Tool{ta.inputCollector, ta.primitive} {
		if t != nil {
			t.Suspend()
			ta.suspended = append(ta.suspended, t)
		}
	}
}

// resumeSuspended unsuspends the tools a viewing tool pushed aside, in
// reverse suspension order.
func (ta *Admin) resumeSuspended() {
	for i := len(ta.suspended) - 1; i >= 0; i-- {
		ta.suspended[i].Unsuspend()
	}
	ta.suspended = ta.suspended[:0]
}

// ExitViewTool removes the installed viewing tool, if any, and resumes
// the tools it suspended.
func (ta *Admin) ExitViewTool() {
	vt := ta.viewTool
	if vt == nil {
		return
	}
	ta.viewTool = nil
	ta.stopDynamicsFor(vt)
	vt.CleanupTool()
	ta.resumeSuspended()
}

// ExitInputCollector removes the installed input collector, if any.
func (ta *Admin) ExitInputCollector() {
	ic := ta.inputCollector
	if ic == nil {
		return
	}
	ta.inputCollector = nil
	ic.CleanupTool()
}

// ExitPrimitiveTool removes the installed primitive tool, if any,
// without starting the default tool.
func (ta *Admin) ExitPrimitiveTool() {
	pt := ta.primitive
	if pt == nil {
		return
	}
	ta.primitive = nil
	ta.stopDynamicsFor(pt)
	pt.CleanupTool()
}

// StartDefaultTool replaces the primitive tool with the configured
// default, or clears the slot so the idle tool takes over when no
// default is configured.
func (ta *Admin) StartDefaultTool() {
	ta.ExitPrimitiveTool()
	if ta.DefaultToolName != "" {
		errors.Log(ta.Reg.Run(ta, ta.DefaultToolName))
	}
}

// RunTool constructs and installs the named registered tool,
// forwarding args to its constructor.
func (ta *Admin) RunTool(name string, args ...any) error {
	return ta.Reg.Run(ta, name, args...)
}

// ClaimButton records the given tool as having seen the down of the
// given button, so the matching release is routed to it. A tool
// installed mid drag claims the dragging button in its PostInstall to
// receive the EndDrag.
func (ta *Admin) ClaimButton(t Tool, btn Button) {
	t.AsBase().SetReceivedDown(btn, true)
}

// StartDynamics begins per frame dynamics callbacks to the given tool,
// which must implement [DynamicsParticipant]; any tool already
// receiving them is stopped first. Reports whether dynamics started.
func (ta *Admin) StartDynamics(t Tool) bool {
	dp, ok := t.(DynamicsParticipant)
	if !ok {
		return false
	}
	ta.StopDynamics()
	ta.dynamics = dp
	dp.BeginDynamics()
	return true
}

// StopDynamics ends the per frame dynamics callbacks, if running.
func (ta *Admin) StopDynamics() {
	if ta.dynamics == nil {
		return
	}
	ta.dynamics.EndDynamics()
	ta.dynamics = nil
}

// stopDynamicsFor stops dynamics if the given departing tool is the
// one receiving them.
func (ta *Admin) stopDynamicsFor(t Tool) {
	if ta.dynamics != nil && any(ta.dynamics) == any(t) {
		ta.StopDynamics()
	}
}

// SetPrompt sets the user facing tool prompt, if a [Notifier] is wired.
func (ta *Admin) SetPrompt(msg string) {
	if ta.Notif != nil {
		ta.Notif.Prompt(msg)
	}
}

// ShowMessage shows a transient message, if a [Notifier] is wired.
func (ta *Admin) ShowMessage(msg string) {
	if ta.Notif != nil {
		ta.Notif.Message(msg)
	}
}

// RemoveViewport drops all queued events and input state referring to
// the given viewport, ahead of the viewport closing. No release or
// drag completion is synthesized for buttons that went down in it.
func (ta *Admin) RemoveViewport(vp view.Viewport) {
	ta.Queue.DropViewport(vp)
	ta.State.Clear(vp)
}

// ProcessFrame drains the event queue and runs the time based checks:
// motion stop, press and hold, and the dynamics callback. The frame
// loop calls it once per frame before rendering; a call that overlaps
// a still running one returns immediately.
func (ta *Admin) ProcessFrame(now time.Time) {
	if !ta.processing.CompareAndSwap(false, true) {
		return
	}
	defer ta.processing.Store(false)

	for {
		e := ta.Queue.NextEvent()
		if e == nil {
			break
		}
		ta.safeDispatch(e, func() { ta.dispatchEvent(e) })
	}
	ta.safeDispatch(nil, func() { ta.checkTimers(now) })
	if ta.dynamics != nil && ta.State.Vp != nil {
		ev := &ButtonEvent{}
		ta.State.ToEvent(ev, ta.motionButton())
		ev.Time = now
		ta.safeDispatch(nil, func() { ta.dynamics.DynamicFrame(ev) })
	}
}

// safeDispatch runs f, recovering from a panicking tool callback by
// logging it and resetting the tool stack to the idle tool, so one bad
// tool cannot take down the frame loop.
func (ta *Admin) safeDispatch(e events.Event, f func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		args := []any{"tool", ta.ActiveTool().Name(), "panic", r, "stack", string(debug.Stack())}
		if e != nil {
			args = append(args, "event", e.String())
		}
		slog.Error("tool: panic in tool callback; resetting to idle", args...)
		ta.resetToIdle()
	}()
	f()
}

// resetToIdle drops every installed tool after a failure, without
// running their cleanup, and clears the idle tool's button claims.
func (ta *Admin) resetToIdle() {
	ta.viewTool = nil
	ta.inputCollector = nil
	ta.primitive = nil
	ta.suspended = ta.suspended[:0]
	ta.dynamics = nil
	ta.idle.AsBase().ClearReceivedDown()
}

// dispatchEvent routes one raw event through the input state and on to
// the tools.
func (ta *Admin) dispatchEvent(e events.Event) {
	ta.Observers.Call(e)
	if e.IsHandled() {
		return
	}
	switch e.Type() {
	case events.MouseDown:
		ta.onMouseDown(e)
	case events.MouseUp:
		ta.onMouseUp(e)
	case events.MouseMove:
		ta.onMouseMove(e)
	case events.Scroll:
		if sc, ok := e.(*events.MouseScroll); ok {
			ta.onScroll(sc)
		}
	case events.KeyDown, events.KeyUp:
		if ke, ok := e.(*events.Key); ok {
			ta.onKey(ke)
		}
	case events.TouchStart:
		ta.onTouchStart(e)
	case events.TouchMove:
		ta.onTouchMove(e)
	case events.TouchEnd:
		ta.onTouchEnd(e)
	case events.TouchCancel:
		ta.onTouchCancel()
	}
}

// checkTimers runs the time based synthesis: motion stopped reports
// and touch press and hold.
func (ta *Admin) checkTimers(now time.Time) {
	if ta.State.CheckMotionStop(now) && ta.State.Vp != nil {
		ev := &ButtonEvent{}
		ta.State.ToEvent(ev, ta.motionButton())
		ev.Time = now
		if pc, ok := ta.pointerTarget(); ok {
			pc.MotionStopped(ev)
		}
	}
	if ta.State.CheckPressHold(now) && ta.State.Vp != nil {
		ge := ta.newGestureEvent(GesturePressAndHold, 1)
		ge.Time = now
		ta.deliverGesture(ge)
	}
}

// mapButton maps a raw device button to its logical button.
func mapButton(b events.Buttons) (Button, bool) {
	switch b {
	case events.Left:
		return DataButton, true
	case events.Right:
		return ResetButton, true
	case events.Middle:
		return MiddleButton, true
	}
	return 0, false
}

// motionButton returns the button a motion event is about: the first
// held button, or the data button when none is held.
func (ta *Admin) motionButton() Button {
	for btn := Button(0); btn < ButtonN; btn++ {
		if ta.State.Btns[btn].IsDown {
			return btn
		}
	}
	return DataButton
}

// pointerTarget returns the active tool as a [PointerConsumer],
// falling back to the idle tool when the active tool does not take
// pointer events.
func (ta *Admin) pointerTarget() (PointerConsumer, bool) {
	if pc, ok := ta.ActiveTool().(PointerConsumer); ok {
		return pc, true
	}
	pc, ok := ta.idle.(PointerConsumer)
	return pc, ok
}

// interruptAnimation jumps any running view animation on the viewport
// to its end, so new input manipulates the settled view.
func interruptAnimation(vp view.Viewport) {
	if vp == nil {
		return
	}
	if an := vp.Animator(); an != nil && an.Active() {
		an.Interrupt(vp)
	}
}

func (ta *Admin) onMouseDown(e events.Event) {
	btn, ok := mapButton(e.MouseButton())
	if !ok {
		return
	}
	interruptAnimation(e.Viewport())
	ta.State.OnButtonDown(e, btn, SourceMouse)
	ta.State.AdjustPoint(ta.Snap)
	ev := &ButtonEvent{}
	ta.State.ToEvent(ev, btn)
	ev.Time = e.Time()
	ta.deliverDown(ev, btn)
}

// deliverDown sends a down event to the active tool, falling through
// to the idle tool when unconsumed. Each tool it reaches is marked as
// having seen this button's down, so the release can be paired.
func (ta *Admin) deliverDown(ev *ButtonEvent, btn Button) {
	at := ta.ActiveTool()
	if pc, ok := at.(PointerConsumer); ok {
		at.AsBase().SetReceivedDown(btn, true)
		if pc.ButtonDown(ev) {
			return
		}
	}
	if at == ta.idle {
		return
	}
	if pc, ok := ta.idle.(PointerConsumer); ok {
		ta.idle.AsBase().SetReceivedDown(btn, true)
		pc.ButtonDown(ev)
	}
}

func (ta *Admin) onMouseUp(e events.Event) {
	btn, ok := mapButton(e.MouseButton())
	if !ok {
		return
	}
	was := ta.State.OnButtonUp(e, btn, SourceMouse)
	ta.State.AdjustPoint(ta.Snap)
	ev := &ButtonEvent{}
	ta.State.ToEvent(ev, btn)
	ev.Time = e.Time()
	// the release event carries the state the button went up from
	ev.IsDragging = was.IsDragging
	ev.IsDoubleClick = was.IsDoubleClick
	ta.deliverUp(ev, btn, was.IsDragging)
	ta.clearButtonClaims(btn)
}

// deliverUp routes a release to the tool that saw the matching down:
// the active tool if it did, else the idle tool if it did. A release
// of a promoted drag becomes EndDrag; anything else is ButtonUp.
func (ta *Admin) deliverUp(ev *ButtonEvent, btn Button, wasDragging bool) {
	target := Tool(nil)
	if ta.ActiveTool().AsBase().ReceivedDown(btn) {
		target = ta.ActiveTool()
	} else if ta.idle.AsBase().ReceivedDown(btn) {
		target = ta.idle
	}
	if target == nil {
		return
	}
	pc, ok := target.(PointerConsumer)
	if !ok {
		return
	}
	if wasDragging {
		pc.EndDrag(ev)
	} else {
		pc.ButtonUp(ev)
	}
}

// clearButtonClaims forgets which tools saw the down of the given
// button, across every slot.
func (ta *Admin) clearButtonClaims(btn Button) {
	for _, t := range []Tool{ta.viewTool, ta.inputCollector, ta.primitive, ta.idle} {
		if t != nil {
			t.AsBase().SetReceivedDown(btn, false)
		}
	}
}

func (ta *Admin) onMouseMove(e events.Event) {
	btn, promoted := ta.State.OnMotion(e, SourceMouse)
	ta.State.AdjustPoint(ta.Snap)
	if promoted {
		ta.startDrag(btn, e.Time())
	}
	ev := &ButtonEvent{}
	ta.State.ToEvent(ev, ta.motionButton())
	ev.Time = e.Time()
	if pc, ok := ta.pointerTarget(); ok {
		pc.Motion(ev)
	}
}

// startDrag runs the drag promotion sequence for a button: a StartDrag
// event rewound to the original down point goes to the active tool,
// falling through to the idle tool. Starting a drag commonly installs
// a viewing tool, so the follow up Motion in the caller reaches the
// newly active tool at the live pointer position.
func (ta *Admin) startDrag(btn Button, t time.Time) {
	ev := &ButtonEvent{}
	ta.State.ToDragStartEvent(ev, btn)
	ev.Time = t
	if !ev.IsValid() {
		return
	}
	at := ta.ActiveTool()
	if pc, ok := at.(PointerConsumer); ok {
		at.AsBase().SetReceivedDown(btn, true)
		if pc.StartDrag(ev) {
			return
		}
	}
	if at == ta.idle {
		return
	}
	if pc, ok := ta.idle.(PointerConsumer); ok {
		ta.idle.AsBase().SetReceivedDown(btn, true)
		pc.StartDrag(ev)
	}
}

func (ta *Admin) onScroll(e *events.MouseScroll) {
	ta.State.OnWheel(e, SourceMouse)
	ta.State.AdjustPoint(ta.Snap)
	ev := &WheelEvent{Delta: e.Delta.Y}
	ta.State.ToEvent(&ev.ButtonEvent, DataButton)
	ev.Time = e.Time()
	if wc, ok := ta.ActiveTool().(WheelConsumer); ok && wc.Wheel(ev) {
		return
	}
	if ta.ActiveTool() == ta.idle {
		return
	}
	if wc, ok := ta.idle.(WheelConsumer); ok {
		wc.Wheel(ev)
	}
}

func (ta *Admin) onKey(e *events.Key) {
	ta.State.Mods = e.Modifiers()
	if e.Type() == events.KeyDown && e.KeyCode() == key.CodeEscape {
		switch {
		case ta.viewTool != nil:
			ta.ExitViewTool()
		case ta.inputCollector != nil:
			ta.ExitInputCollector()
		}
		return
	}
	kc, ok := ta.ActiveTool().(KeyConsumer)
	if ok {
		if e.Type() == events.KeyDown && kc.KeyDown(e) {
			return
		}
		if e.Type() == events.KeyUp && kc.KeyUp(e) {
			return
		}
	}
	if ta.ActiveTool() == ta.idle {
		return
	}
	if kc, ok := ta.idle.(KeyConsumer); ok {
		if e.Type() == events.KeyDown {
			kc.KeyDown(e)
		} else {
			kc.KeyUp(e)
		}
	}
}

// newGestureEvent synthesizes a gesture event at the current touch
// centroid, carrying the previous move's view point for deltas.
func (ta *Admin) newGestureEvent(g Gestures, fingers int) *GestureEvent {
	ge := &GestureEvent{Gesture: g, Fingers: fingers, Zoom: 1}
	ta.State.ToEvent(&ge.ButtonEvent, DataButton)
	if c, ok := ta.State.TouchCentroid(); ok && ta.State.Vp != nil {
		ge.ViewPoint = ta.State.viewPoint(ta.State.Vp, c)
	}
	if ta.gestureMoving {
		ge.PrevViewPoint = ta.lastGestureView
	} else {
		ge.PrevViewPoint = ge.ViewPoint
	}
	return ge
}

// deliverGesture sends a gesture to the active tool, falling through
// to the idle tool when unconsumed.
func (ta *Admin) deliverGesture(ge *GestureEvent) {
	if gc, ok := ta.ActiveTool().(GestureConsumer); ok && gc.Gesture(ge) {
		return
	}
	if ta.ActiveTool() == ta.idle {
		return
	}
	if gc, ok := ta.idle.(GestureConsumer); ok {
		gc.Gesture(ge)
	}
}

func (ta *Admin) onTouchStart(e events.Event) {
	interruptAnimation(e.Viewport())
	ta.State.OnTouchStart(e)
	if n := ta.State.TouchCount(); n > ta.maxTouchPoints {
		ta.maxTouchPoints = n
	}
	ta.gestureMoving = false
}

// pinchThreshold is how far finger separation must scale from its
// baseline before moves become pinch gestures.
const pinchThreshold = float32(0.02)

func (ta *Admin) onTouchMove(e events.Event) {
	ta.State.OnTouchMove(e)
	ta.State.AdjustPoint(ta.Snap)
	n := ta.State.TouchCount()
	if n == 0 {
		return
	}
	var ge *GestureEvent
	if zoom, ok := ta.State.PinchZoom(); ok && math32.Abs(zoom-1) >= pinchThreshold {
		ge = ta.newGestureEvent(GesturePinch, n)
		ge.Zoom = zoom
	} else if n == 1 {
		if !ta.State.TouchMoved() {
			return
		}
		ge = ta.newGestureEvent(GestureSingleMove, 1)
	} else {
		ge = ta.newGestureEvent(GestureMultiMove, n)
	}
	ge.Time = e.Time()
	ta.deliverGesture(ge)
	ta.lastGestureView = ge.ViewPoint
	ta.gestureMoving = true
}

func (ta *Admin) onTouchEnd(e events.Event) {
	tap, count := ta.State.OnTouchEnd(e)
	if ta.State.TouchCount() > 0 {
		return
	}
	fingers := ta.maxTouchPoints
	ta.maxTouchPoints = 0
	ta.gestureMoving = false
	if !tap {
		return
	}
	var ge *GestureEvent
	switch {
	case fingers >= 2:
		ge = ta.newGestureEvent(GestureTwoFingerTap, fingers)
		ta.State.TapCount = 0
	case count >= 2:
		ge = ta.newGestureEvent(GestureDoubleTap, 1)
		ge.TapCount = count
	default:
		ge = ta.newGestureEvent(GestureSingleTap, 1)
		ge.TapCount = count
	}
	ge.ViewPoint = ta.State.ViewPoint
	ge.PrevViewPoint = ge.ViewPoint
	ge.Time = e.Time()
	ta.deliverGesture(ge)
}

func (ta *Admin) onTouchCancel() {
	ta.State.OnTouchCancel()
	ta.maxTouchPoints = 0
	ta.gestureMoving = false
}
