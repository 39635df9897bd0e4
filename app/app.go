// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app assembles the input pipeline into a runnable
// application: an [App] owns the [tool.Admin] with its event queue,
// the viewports it serves, and the persistent input and viewing
// settings, and drives them all from one frame loop. Window drivers
// feed the admin queue from their event threads; everything else
// happens on the goroutine calling [App.Frame].
package app

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"time"

	"cogentcore.org/cad/nav"
	"cogentcore.org/cad/tool"
	"cogentcore.org/cad/view"
)

// Standard settings file names within [Options.SettingsDir].
const (
	InputSettingsFile   = "input.toml"
	ViewingSettingsFile = "viewing.toml"
)

// Options configures [Startup].
type Options struct {

	// SettingsDir is the directory the settings files are read from,
	// saved to, and watched in. Empty disables settings persistence.
	SettingsDir string

	// DefaultTool names the registered tool to start whenever no other
	// primitive tool is active. Empty means none; unclaimed input then
	// falls to the idle tool.
	DefaultTool string

	// Notif receives tool prompts and messages for display.
	// It may be nil.
	Notif tool.Notifier
}

// App is one running input pipeline: the tool admin, the viewports it
// serves, and the settings that parameterize it. Construct with
// [Startup]. Apart from sends to the admin queue, all methods must be
// called from the frame goroutine.
type App struct {

	// Admin is the tool admin driven by [App.Frame]. Window drivers
	// send input to its Queue.
	Admin *tool.Admin

	// Viewing is the viewing settings, shared with the registered
	// viewing tools and the wheel processor.
	Viewing *nav.Settings

	// Viewports are the viewports currently served, in add order.
	Viewports []view.Viewport

	// reload carries settings files the watcher saw change, for
	// [App.Frame] to reload on the frame goroutine.
	reload chan string

	watcher   *settingsWatcher
	lastFrame time.Time
	down      bool
}

// Input returns the input settings, held by the tool admin.
func (a *App) Input() *tool.SettingsData { return &a.Admin.Set }

// allSettings returns the settings groups this app manages.
func (a *App) allSettings() []Settings {
	return []Settings{a.Input(), a.Viewing}
}

// Startup builds an [App]: it loads the settings, constructs the tool
// admin, registers the standard viewing tools and the wheel processor,
// starts the default tool, and begins watching the settings files for
// outside edits. The app is usable even when an error is returned; the
// error reports settings that could not be read or watched, and the
// defaults stand in for them.
func Startup(opts Options) (*App, error) {
	a := &App{
		Admin:   tool.NewAdmin(),
		Viewing: &nav.Settings{},
		reload:  make(chan string, 8),
	}
	a.Admin.DefaultToolName = opts.DefaultTool
	a.Admin.Notif = opts.Notif
	if opts.SettingsDir != "" {
		a.Input().File = filepath.Join(opts.SettingsDir, InputSettingsFile)
		a.Viewing.File = filepath.Join(opts.SettingsDir, ViewingSettingsFile)
	}
	var errs []error
	for _, se := range a.allSettings() {
		if err := Load(se); err != nil {
			errs = append(errs, err)
		}
	}
	nav.Register(&a.Admin.Reg, a.Viewing)
	a.Admin.Wheel = nav.NewProcessor(a.Viewing)
	a.Admin.StartDefaultTool()
	if opts.SettingsDir != "" {
		if err := a.watchSettings(opts.SettingsDir); err != nil {
			errs = append(errs, err)
		}
	}
	return a, errors.Join(errs...)
}

// Shutdown stops the settings watcher, exits all active tools, and
// releases the viewports. It is safe to call more than once.
func (a *App) Shutdown() {
	if a.down {
		return
	}
	a.down = true
	a.watcher.stop()
	a.Admin.ExitViewTool()
	a.Admin.ExitInputCollector()
	a.Admin.ExitPrimitiveTool()
	for _, vp := range a.Viewports {
		a.Admin.RemoveViewport(vp)
	}
	a.Viewports = nil
}

// SaveSettings writes all settings groups to their files.
func (a *App) SaveSettings() error {
	var errs []error
	for _, se := range a.allSettings() {
		if se.Filename() == "" {
			continue
		}
		if err := Save(se); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// AddViewport adds a viewport for this app to serve.
func (a *App) AddViewport(vp view.Viewport) {
	if slices.Contains(a.Viewports, vp) {
		return
	}
	a.Viewports = append(a.Viewports, vp)
}

// RemoveViewport removes the given viewport and clears all input state
// referring to it, so a viewport can close mid drag without the tools
// holding on to it.
func (a *App) RemoveViewport(vp view.Viewport) {
	a.Viewports = slices.DeleteFunc(a.Viewports, func(v view.Viewport) bool {
		return v == vp
	})
	a.Admin.RemoveViewport(vp)
}

// Frame runs one frame at the given time: it reloads any settings
// changed on disk, drains and dispatches pending input with dynamics
// and timers, and steps the view animation of each viewport.
func (a *App) Frame(now time.Time) {
	a.reloadChanged()
	a.Admin.ProcessFrame(now)
	dt := a.frameDt(now)
	for _, vp := range a.Viewports {
		if an := vp.Animator(); an.Active() {
			an.Step(vp, dt)
		}
	}
}

// frameDt returns the seconds since the previous frame, 0 on the
// first frame or across a stall.
func (a *App) frameDt(now time.Time) float32 {
	prev := a.lastFrame
	a.lastFrame = now
	if prev.IsZero() || now.IsZero() {
		return 0
	}
	dt := float32(now.Sub(prev).Seconds())
	if dt <= 0 || dt > 1 {
		return 0
	}
	return dt
}

// Run drives [App.Frame] at the given rate until the context is
// canceled, then shuts the app down. A rate of 0 or less runs at 60
// frames per second.
func (a *App) Run(ctx context.Context, hz float32) error {
	if hz <= 0 {
		hz = 60
	}
	tick := time.NewTicker(time.Duration(float64(time.Second) / float64(hz)))
	defer tick.Stop()
	defer a.Shutdown()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-tick.C:
			a.Frame(now)
		}
	}
}
