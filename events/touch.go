// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"cogentcore.org/cad/view"
)

// Touch is a touch event for the low-level touch event processing.
// The input state performs tap counting and gesture recognition from
// sequences of these events; tools receive synthesized gesture events.
type Touch struct {
	Base
}

func NewTouch(vp view.Viewport, typ Types, seq int64, where image.Point) *Touch {
	ev := &Touch{}
	ev.Typ = typ
	if typ != TouchMove {
		ev.SetUnique()
	}
	ev.Vp = vp
	ev.Sequence = seq
	ev.Where = where
	return ev
}

func (ev *Touch) String() string {
	return fmt.Sprintf("%v{Seq: %v, Pos: %v, Time: %v}", ev.Type(), ev.Sequence, ev.Where, ev.Time().Format("04:05"))
}

func (ev Touch) HasPos() bool {
	return true
}
