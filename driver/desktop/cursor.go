// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cursors"
	"cogentcore.org/core/cursors/cursorimg"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// CursorSize is the pixel size cursors are rendered at.
var CursorSize = 32

var (
	cursorMu    sync.Mutex
	cursorCache = map[cursors.Cursor]map[int]*glfw.Cursor{}
)

type cursorState struct {
	cur cursors.Cursor
	set bool
}

// glfwCursor returns the glfw cursor for the given kind at the given
// pixel size, rendering and caching it on first use. Must be called on
// the main thread.
func glfwCursor(c cursors.Cursor, size int) (*glfw.Cursor, error) {
	cursorMu.Lock()
	defer cursorMu.Unlock()
	sm := cursorCache[c]
	if sm == nil {
		sm = map[int]*glfw.Cursor{}
		cursorCache[c] = sm
	}
	if gc, ok := sm[size]; ok {
		return gc, nil
	}
	ci, err := cursorimg.Get(c, size)
	if err != nil {
		return nil, err
	}
	gc := glfw.CreateCursor(ci.Image, ci.Hotspot.X, ci.Hotspot.Y)
	sm[size] = gc
	return gc, nil
}

// SyncCursor shows the given cursor kind on the window if it is not
// already showing. Tools set cursors on the viewport; the frame loop
// forwards them here.
func (b *Binding) SyncCursor(c cursors.Cursor) {
	if b.cursor.set && b.cursor.cur == c {
		return
	}
	gc, err := glfwCursor(c, CursorSize)
	if err != nil {
		errors.Log(err)
		return
	}
	b.cursor = cursorState{cur: c, set: true}
	b.Win.SetCursor(gc)
}
