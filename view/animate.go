// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnimationDur is the default duration in seconds of animated view
// transitions, as used by fit view and view undo / redo.
var AnimationDur = float32(0.25)

// Animator runs an animated transition between two frusta on a
// viewport. Each frame step applies the corner-wise interpolation of
// the fixed endpoints, so the transition always lands exactly on the
// target regardless of frame timing. A new pointer or wheel event on
// the viewport interrupts the animation by jumping to the target.
type Animator struct {
	from Frustum
	to   Frustum
	tw   *gween.Tween
}

// Start begins an animated transition from the viewport's current view
// to the given frustum, over dur seconds. A dur <= 0 applies the target
// immediately. Any running animation is replaced.
func (an *Animator) Start(vp Viewport, to Frustum, dur float32) error {
	if err := to.Valid(); err != nil {
		return err
	}
	if dur <= 0 {
		an.tw = nil
		return vp.SetFrustum(to)
	}
	an.from = vp.Frustum()
	an.to = to
	an.tw = gween.New(0, 1, dur, ease.OutCubic)
	return nil
}

// Active reports whether a transition is running.
func (an *Animator) Active() bool { return an.tw != nil }

// Step advances a running transition by dt seconds and applies the
// interpolated view to the viewport. The final step applies the exact
// target. It does nothing when no transition is running.
func (an *Animator) Step(vp Viewport, dt float32) {
	if an.tw == nil {
		return
	}
	t, done := an.tw.Update(dt)
	if done {
		an.tw = nil
		vp.SetFrustum(an.to)
		return
	}
	vp.SetFrustum(an.from.Lerp(an.to, t))
}

// Interrupt cancels a running transition by jumping to its target,
// so interactive input always starts from a settled view.
func (an *Animator) Interrupt(vp Viewport) {
	if an.tw == nil {
		return
	}
	an.tw = nil
	vp.SetFrustum(an.to)
}
