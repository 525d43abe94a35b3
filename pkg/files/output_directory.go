// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"strings"
)

var suspiciousOutputDirectoryPaths = []string{"/", ".", "./", ""}

// OutputDirectory is a directory that is emptied and refilled with
// rendered files on every run.
type OutputDirectory struct {
	path  string
	files []OutputFile
	ui    UI
}

func NewOutputDirectory(path string, files []OutputFile, ui UI) *OutputDirectory {
	return &OutputDirectory{path, files, ui}
}

func (d *OutputDirectory) Files() []OutputFile { return d.files }

// Write replaces the directory's contents with the output files. Nothing is
// removed unless every file can be placed.
func (d *OutputDirectory) Write() error {
	err := d.validate()
	if err != nil {
		return err
	}

	err = os.RemoveAll(d.path)
	if err != nil {
		return err
	}
	err = os.MkdirAll(d.path, 0700)
	if err != nil {
		return err
	}

	for _, file := range d.files {
		d.ui.Printf("creating: %s\n", file.Path(d.path))

		err := file.create(d.path)
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *OutputDirectory) validate() error {
	for _, path := range suspiciousOutputDirectoryPaths {
		if d.path == path {
			return fmt.Errorf("Expected output directory path to not be one of '%s'",
				strings.Join(suspiciousOutputDirectoryPaths, "', '"))
		}
	}

	seen := map[string]struct{}{}
	for _, file := range d.files {
		if _, found := seen[file.RelativePath()]; found {
			return fmt.Errorf("Multiple files have same output destination paths: %s", file.RelativePath())
		}
		seen[file.RelativePath()] = struct{}{}

		err := file.checkContained(d.path)
		if err != nil {
			return err
		}
	}
	return nil
}
