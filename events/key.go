// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/cad/view"
	"cogentcore.org/core/events/key"
)

// Key is a low-level immediately generated key event, tracking press
// and release of keys. The dispatcher routes these to the active tool
// and handles the reserved keys (e.g., Escape exits the active view tool).
type Key struct {
	Base
}

func NewKey(vp view.Viewport, typ Types, rn rune, code key.Codes, mods key.Modifiers) *Key {
	ev := &Key{}
	ev.Typ = typ
	ev.SetUnique()
	ev.Vp = vp
	ev.KeyRune = rn
	ev.Code = code
	ev.Mods = mods
	return ev
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %v, Mods: %v, Time: %v}", ev.Type(), ev.Code, ev.Mods.ModifiersString(), ev.Time().Format("04:05"))
}
