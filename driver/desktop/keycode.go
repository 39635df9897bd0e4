// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"cogentcore.org/core/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// keyCode maps a glfw key to the HID code the event system uses.
// Letters, digits, and function keys are contiguous in both systems;
// keys with no meaning to the pipeline map to [key.CodeUnknown].
func keyCode(k glfw.Key) key.Codes {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return key.CodeA + key.Codes(k-glfw.KeyA)
	case k >= glfw.Key1 && k <= glfw.Key9:
		return key.Code1 + key.Codes(k-glfw.Key1)
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return key.CodeF1 + key.Codes(k-glfw.KeyF1)
	}
	switch k {
	case glfw.Key0:
		return key.Code0
	case glfw.KeyEnter:
		return key.CodeReturnEnter
	case glfw.KeyEscape:
		return key.CodeEscape
	case glfw.KeyBackspace:
		return key.CodeBackspace
	case glfw.KeyTab:
		return key.CodeTab
	case glfw.KeySpace:
		return key.CodeSpacebar
	case glfw.KeyDelete:
		return key.CodeDelete
	case glfw.KeyHome:
		return key.CodeHome
	case glfw.KeyEnd:
		return key.CodeEnd
	case glfw.KeyPageUp:
		return key.CodePageUp
	case glfw.KeyPageDown:
		return key.CodePageDown
	case glfw.KeyRight:
		return key.CodeRightArrow
	case glfw.KeyLeft:
		return key.CodeLeftArrow
	case glfw.KeyDown:
		return key.CodeDownArrow
	case glfw.KeyUp:
		return key.CodeUpArrow
	case glfw.KeyLeftShift:
		return key.CodeLeftShift
	case glfw.KeyLeftControl:
		return key.CodeLeftControl
	case glfw.KeyLeftAlt:
		return key.CodeLeftAlt
	case glfw.KeyLeftSuper:
		return key.CodeLeftMeta
	case glfw.KeyRightShift:
		return key.CodeRightShift
	case glfw.KeyRightControl:
		return key.CodeRightControl
	case glfw.KeyRightAlt:
		return key.CodeRightAlt
	case glfw.KeyRightSuper:
		return key.CodeRightMeta
	case glfw.KeyMinus:
		return key.CodeHyphenMinus
	case glfw.KeyEqual:
		return key.CodeEqualSign
	case glfw.KeyComma:
		return key.CodeComma
	case glfw.KeyPeriod:
		return key.CodeFullStop
	case glfw.KeySlash:
		return key.CodeSlash
	case glfw.KeySemicolon:
		return key.CodeSemicolon
	}
	return key.CodeUnknown
}
