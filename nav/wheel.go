// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"fmt"

	"cogentcore.org/cad/tool"
)

// Processor implements [tool.WheelProcessor]: wheel zoom about the
// point under the cursor. The admin hands it every wheel event no
// installed tool consumed.
type Processor struct {

	// Set supplies the zoom ratio and the pick aperture.
	Set *Settings
}

// NewProcessor returns a wheel processor reading its parameters from
// the given settings.
func NewProcessor(set *Settings) *Processor {
	if set == nil {
		set = &Settings{}
		set.Defaults()
	}
	return &Processor{Set: set}
}

// ProcessWheel zooms the event's viewport by the configured ratio per
// detent, about the picked geometry under the cursor or, when nothing
// picks, the cursor's point at focus depth. Rolling away from the user
// applies the inverse ratio, zooming in. With the camera on the eye
// moves along the target ray instead of scaling the frustum. An
// invalid resulting view is rejected and the current view kept.
func (pr *Processor) ProcessWheel(ev *tool.WheelEvent) error {
	if ev.Vp == nil || ev.Delta == 0 {
		return nil
	}
	ratio := pr.Set.WheelZoomRatio
	if ratio < 1.01 {
		ratio = 1.01
	}
	factor := ratio
	if ev.Delta > 0 {
		factor = 1 / ratio
	}
	vp := ev.Vp
	target, ok := vp.PickNearestVisible(ev.ViewPt(), pr.Set.PickRadius)
	if !ok {
		target = ev.RawPoint
	}
	f := vp.Frustum()
	nf := f.ScaleAbout(target, factor)
	if vp.IsCameraOn() {
		if eye, persp := f.EyePoint(); persp {
			nf = f.Translate(eye.Sub(target).MulScalar(factor - 1))
		}
	}
	if err := vp.SetFrustum(nf); err != nil {
		return fmt.Errorf("nav: wheel zoom rejected: %w", err)
	}
	return nil
}
