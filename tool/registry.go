// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tool

import (
	"fmt"

	"cogentcore.org/core/base/ordmap"
)

// ToolInfo is one registry entry: the name a tool starts under and how
// to construct it.
type ToolInfo struct {

	// Name is the registry key, such as "view.pan".
	Name string

	// Doc is a one line description, shown in prompts and tool lists.
	Doc string

	// New returns a new instance of the tool for the given admin.
	// Arguments come through from [Registry.Run].
	New func(ta *Admin, args ...any) (Tool, error)
}

// Registry maps tool names to constructors, in registration order.
// Viewing tools register here so that other packages start them by
// name without depending on their package.
type Registry struct {
	tools ordmap.Map[string, *ToolInfo]
}

// Add registers a tool constructor under the given name, replacing any
// existing registration of that name.
func (rg *Registry) Add(name, doc string, ctor func(ta *Admin, args ...any) (Tool, error)) {
	rg.tools.Add(name, &ToolInfo{Name: name, Doc: doc, New: ctor})
}

// Find returns the registration for the given name, or an error if
// there is none.
func (rg *Registry) Find(name string) (*ToolInfo, error) {
	ti, ok := rg.tools.ValueByKeyTry(name)
	if !ok {
		return nil, fmt.Errorf("tool: no tool named %q", name)
	}
	return ti, nil
}

// Run constructs the named tool and installs it on the given admin,
// forwarding args to the constructor. An unknown name or a failed
// constructor is an error; an installation veto is not.
func (rg *Registry) Run(ta *Admin, name string, args ...any) error {
	ti, err := rg.Find(name)
	if err != nil {
		return err
	}
	t, err := ti.New(ta, args...)
	if err != nil {
		return fmt.Errorf("tool: constructing %q: %w", name, err)
	}
	ta.InstallTool(t)
	return nil
}

// Names returns the registered tool names in registration order.
func (rg *Registry) Names() []string {
	return rg.tools.Keys()
}
