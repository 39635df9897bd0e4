// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tool

import (
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
)

// SettingsData is the input timing and distance settings for the
// [Admin] state machine. Zero or negative values are reset to their
// defaults by [SettingsData.Apply].
type SettingsData struct {

	// File is the full path this settings object is saved to.
	File string `toml:"-" json:"-" display:"-"`

	// DoubleClickInterval is the longest gap between two clicks of the
	// same button for the second to count as a double click.
	DoubleClickInterval time.Duration `default:"500ms"`

	// DoubleClickDistance is the farthest in pixels the second click of
	// a double click may land from the first.
	DoubleClickDistance int `default:"10"`

	// DragStartTime is how long a button must be held before motion
	// can promote it to a drag. Promotion also requires the motion to
	// exceed DragStartDistance.
	DragStartTime time.Duration `default:"110ms"`

	// DragStartDistance is how far in pixels the pointer must move
	// from the down point before a held button promotes to a drag.
	// Promotion also requires the hold to exceed DragStartTime.
	DragStartDistance int `default:"15"`

	// MotionStopTime is how long without pointer motion before motion
	// counts as stopped.
	MotionStopTime time.Duration `default:"50ms"`

	// TouchTapInterval is the longest gap between touch taps that
	// continues a multi-tap sequence.
	TouchTapInterval time.Duration `default:"300ms"`

	// PressAndHoldTime is how long a single touch must stay in place to
	// become a press-and-hold gesture.
	PressAndHoldTime time.Duration `default:"500ms"`

	// GridLock rounds adjusted points to the grid.
	GridLock bool

	// GridSpacing is the grid interval in world units for GridLock.
	GridSpacing float32 `default:"1"`

	// UnitRounding, when positive, rounds adjusted points to this
	// world unit resolution, after snap and grid.
	UnitRounding float32 `default:"0"`
}

func (se *SettingsData) Label() string { return "Input" }

func (se *SettingsData) Filename() string { return se.File }

// Defaults sets the default values from the struct tags.
func (se *SettingsData) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(se))
}

// Apply resets unusable values to their defaults, after editing or
// loading from a file.
func (se *SettingsData) Apply() {
	if se.DoubleClickInterval <= 0 {
		se.DoubleClickInterval = 500 * time.Millisecond
	}
	if se.DoubleClickDistance <= 0 {
		se.DoubleClickDistance = 10
	}
	if se.DragStartTime <= 0 {
		se.DragStartTime = 110 * time.Millisecond
	}
	if se.DragStartDistance <= 0 {
		se.DragStartDistance = 15
	}
	if se.MotionStopTime <= 0 {
		se.MotionStopTime = 50 * time.Millisecond
	}
	if se.TouchTapInterval <= 0 {
		se.TouchTapInterval = 300 * time.Millisecond
	}
	if se.PressAndHoldTime <= 0 {
		se.PressAndHoldTime = 500 * time.Millisecond
	}
	if se.GridSpacing <= 0 {
		se.GridSpacing = 1
	}
	if se.UnitRounding < 0 {
		se.UnitRounding = 0
	}
}
