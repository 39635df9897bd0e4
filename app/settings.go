// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings is the interface common to the settings groups an [App]
// manages: the input settings ([tool.SettingsData]) and the viewing
// settings ([nav.Settings]).
type Settings interface {

	// Label returns the user-visible name of this settings group.
	Label() string

	// Filename returns the file the settings are stored in.
	// Empty disables loading and saving.
	Filename() string

	// Defaults sets all settings to their default values.
	Defaults()

	// Apply validates the settings and puts them into effect.
	Apply()
}

// Open reads the given settings from their [Settings.Filename],
// in TOML.
func Open(se Settings) error {
	fp, err := os.Open(se.Filename())
	if err != nil {
		return err
	}
	defer fp.Close()
	return toml.NewDecoder(bufio.NewReader(fp)).Decode(se)
}

// Save writes the given settings to their [Settings.Filename] in TOML,
// creating the directory if needed.
func Save(se Settings) error {
	fnm := se.Filename()
	if err := os.MkdirAll(filepath.Dir(fnm), 0750); err != nil {
		return err
	}
	fp, err := os.Create(fnm)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := toml.NewEncoder(bw).Encode(se); err != nil {
		return err
	}
	return bw.Flush()
}

// Load sets the defaults of, opens, and applies the given settings.
// A missing file is not an error; the defaults stand.
func Load(se Settings) error {
	se.Defaults()
	var err error
	if se.Filename() != "" {
		err = Open(se)
	}
	// apply even without a file so at least the defaults take effect
	se.Apply()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
