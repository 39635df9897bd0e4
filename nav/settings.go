// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
)

// Settings is the viewing tool settings: wheel zoom ratio, drag
// sensitivities, walk speed, and view transition timing. Unusable
// values are reset to their defaults by [Settings.Apply].
type Settings struct {

	// File is the full path this settings object is saved to.
	File string `toml:"-" json:"-" display:"-"`

	// WheelZoomRatio is the view scale applied per wheel detent.
	// Values below 1.01 are raised to 1.01.
	WheelZoomRatio float32 `default:"1.75"`

	// RotateSensitivity is the degrees of orbit or look rotation per
	// pixel of drag.
	RotateSensitivity float32 `default:"0.25"`

	// ZoomSensitivity scales the drag zoom speed.
	ZoomSensitivity float32 `default:"1"`

	// ScrollSensitivity scales the edge scrolling speed.
	ScrollSensitivity float32 `default:"1"`

	// WalkVelocity is the walk and fly speed in world units per second.
	WalkVelocity float32 `default:"3.5"`

	// AnimationTime is the length of animated view transitions, as
	// used by fit view and view undo. Zero disables animation.
	AnimationTime time.Duration `default:"260ms"`

	// PickRadius is the pixel aperture for picking visible geometry
	// under the pointer, for zoom and orbit centers.
	PickRadius int `default:"20"`

	// FitMargin is the fractional padding fit view leaves around the
	// displayed extents.
	FitMargin float32 `default:"0.04"`
}

func (se *Settings) Label() string { return "Viewing" }

func (se *Settings) Filename() string { return se.File }

// Defaults sets the default values from the struct tags.
func (se *Settings) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(se))
}

// Apply resets unusable values to their defaults, after editing or
// loading from a file.
func (se *Settings) Apply() {
	if se.WheelZoomRatio < 1.01 {
		se.WheelZoomRatio = 1.01
	}
	if se.RotateSensitivity <= 0 {
		se.RotateSensitivity = 0.25
	}
	if se.ZoomSensitivity <= 0 {
		se.ZoomSensitivity = 1
	}
	if se.ScrollSensitivity <= 0 {
		se.ScrollSensitivity = 1
	}
	if se.WalkVelocity <= 0 {
		se.WalkVelocity = 3.5
	}
	if se.AnimationTime < 0 {
		se.AnimationTime = 260 * time.Millisecond
	}
	if se.PickRadius <= 0 {
		se.PickRadius = 20
	}
	if se.FitMargin < 0 {
		se.FitMargin = 0
	}
}

// animationSecs is the animation time in seconds, for the animator.
func (se *Settings) animationSecs() float32 {
	return float32(se.AnimationTime.Seconds())
}
