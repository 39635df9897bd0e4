// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/cad/events"
	"cogentcore.org/cad/nav"
	"cogentcore.org/cad/tool"
	"cogentcore.org/cad/view"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartupRegistersViewingTools(t *testing.T) {
	a, err := Startup(Options{})
	assert.NoError(t, err)
	t.Cleanup(a.Shutdown)

	assert.NotNil(t, a.Admin.Wheel)
	for _, name := range []string{
		tool.PanToolName, tool.RotateToolName, tool.ZoomToolName,
		tool.FitToolName, nav.StandardToolName, nav.WalkToolName,
	} {
		_, err := a.Admin.Reg.Find(name)
		assert.NoError(t, err)
	}
	assert.Equal(t, 110*time.Millisecond, a.Input().DragStartTime)
	assert.Equal(t, float32(1.75), a.Viewing.WheelZoomRatio)
}

func TestStartupReadsSettingsFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ViewingSettingsFile),
		[]byte("WheelZoomRatio = 3.0\n"), 0666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, InputSettingsFile),
		[]byte("DragStartDistance = 22\n"), 0666))

	a, err := Startup(Options{SettingsDir: dir})
	assert.NoError(t, err)
	t.Cleanup(a.Shutdown)

	assert.Equal(t, float32(3), a.Viewing.WheelZoomRatio)
	assert.Equal(t, 22, a.Input().DragStartDistance)
	// unmentioned fields keep their defaults
	assert.Equal(t, 10, a.Input().DoubleClickDistance)
}

func TestStartupMissingDirStillUsable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	a, err := Startup(Options{SettingsDir: dir})
	assert.Error(t, err) // the watcher cannot watch a missing directory
	t.Cleanup(a.Shutdown)
	assert.Equal(t, float32(1.75), a.Viewing.WheelZoomRatio)
	_, ferr := a.Admin.Reg.Find(tool.PanToolName)
	assert.NoError(t, ferr)
}

func TestSettingsWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	a, err := Startup(Options{SettingsDir: dir})
	assert.NoError(t, err)
	t.Cleanup(a.Shutdown)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ViewingSettingsFile),
		[]byte("WheelZoomRatio = 3.0\n"), 0666))
	assert.Eventually(t, func() bool {
		a.Frame(time.Now())
		return a.Viewing.WheelZoomRatio == 3
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSaveSettingsWritesFiles(t *testing.T) {
	dir := t.TempDir()
	a, err := Startup(Options{SettingsDir: dir})
	assert.NoError(t, err)
	t.Cleanup(a.Shutdown)

	assert.NoError(t, a.SaveSettings())
	for _, fnm := range []string{InputSettingsFile, ViewingSettingsFile} {
		_, err := os.Stat(filepath.Join(dir, fnm))
		assert.NoError(t, err)
	}
}

func TestAddViewportIgnoresDuplicates(t *testing.T) {
	a, err := Startup(Options{})
	assert.NoError(t, err)
	t.Cleanup(a.Shutdown)

	vp := view.NewBase(800, 600)
	a.AddViewport(vp)
	a.AddViewport(vp)
	assert.Len(t, a.Viewports, 1)
}

func TestRemoveViewportClearsInputState(t *testing.T) {
	a, err := Startup(Options{})
	assert.NoError(t, err)
	t.Cleanup(a.Shutdown)

	vp := view.NewBase(800, 600)
	a.AddViewport(vp)
	ev := events.NewMouse(vp, events.MouseDown, events.Left, image.Pt(10, 10), 0)
	ev.Init()
	a.Admin.Queue.Send(ev)
	a.Admin.State.Vp = vp

	a.RemoveViewport(vp)
	assert.Empty(t, a.Viewports)
	assert.Equal(t, 0, a.Admin.Queue.Len())
	assert.Nil(t, a.Admin.State.Vp)
}

func TestFrameStepsAnimation(t *testing.T) {
	a, err := Startup(Options{})
	assert.NoError(t, err)
	t.Cleanup(a.Shutdown)

	vp := view.NewBase(800, 600)
	a.AddViewport(vp)
	target := vp.Frustum().Translate(math32.Vec3(1, 0, 0))
	assert.NoError(t, vp.Animator().Start(vp, target, 0.2))

	t0 := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)
	a.Frame(t0) // first frame only establishes the timebase
	assert.True(t, vp.Animator().Active())
	a.Frame(t0.Add(100 * time.Millisecond))
	assert.True(t, vp.Animator().Active())
	a.Frame(t0.Add(300 * time.Millisecond))
	assert.False(t, vp.Animator().Active())
	assert.Equal(t, target, vp.Frustum())
}

func TestShutdownExitsToolsAndIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	a, err := Startup(Options{SettingsDir: dir})
	assert.NoError(t, err)

	vp := view.NewBase(800, 600)
	a.AddViewport(vp)
	assert.NoError(t, a.Admin.RunTool(tool.PanToolName, vp))
	assert.NotNil(t, a.Admin.ViewTool())

	a.Shutdown()
	assert.Nil(t, a.Admin.ViewTool())
	assert.Empty(t, a.Viewports)
	a.Shutdown() // second call is a no-op
}

func TestRunStopsOnCancel(t *testing.T) {
	a, err := Startup(Options{})
	assert.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()
	err = a.Run(ctx, 240)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, a.down)
}
