// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"log/slog"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// settingsWatcher watches the settings directory and reports changed
// files to the app reload channel. The reload itself happens in
// [App.Frame], on the frame goroutine.
type settingsWatcher struct {
	fw   *fsnotify.Watcher
	done chan struct{}
}

// watchSettings starts watching the given directory for settings file
// changes, so outside edits take effect while the app is running.
func (a *App) watchSettings(dir string) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return err
	}
	a.watcher = &settingsWatcher{fw: fw, done: make(chan struct{})}
	go a.watcher.run(a.reload)
	return nil
}

func (sw *settingsWatcher) run(reload chan<- string) {
	for {
		select {
		case <-sw.done:
			return
		case ev, ok := <-sw.fw.Events:
			if !ok {
				return
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			select {
			case reload <- ev.Name:
			default: // reload pending already; it re-reads the file
			}
		case err, ok := <-sw.fw.Errors:
			if !ok {
				return
			}
			slog.Debug("app: settings watcher", "err", err)
		}
	}
}

// stop shuts the watcher down. Safe on a nil watcher.
func (sw *settingsWatcher) stop() {
	if sw == nil {
		return
	}
	close(sw.done)
	errors.Log(sw.fw.Close())
}

// reloadChanged re-opens and re-applies the settings groups whose
// files the watcher saw change. Reload failures keep the settings as
// they are; a later write gets another chance.
func (a *App) reloadChanged() {
	changed := map[string]bool{}
	for {
		select {
		case name := <-a.reload:
			changed[filepath.Base(name)] = true
		default:
			for _, se := range a.allSettings() {
				if se.Filename() == "" || !changed[filepath.Base(se.Filename())] {
					continue
				}
				if err := Open(se); err != nil {
					slog.Debug("app: reloading settings", "label", se.Label(), "err", err)
					continue
				}
				se.Apply()
				slog.Debug("app: reloaded settings", "label", se.Label(), "file", se.Filename())
			}
			return
		}
	}
}
