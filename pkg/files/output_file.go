// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputFile is a rendered result destined for a path relative to an output
// directory.
type OutputFile struct {
	relativePath string
	data         []byte
}

func NewOutputFile(relativePath string, data []byte) OutputFile {
	return OutputFile{relativePath, data}
}

func (f OutputFile) RelativePath() string { return f.relativePath }
func (f OutputFile) Bytes() []byte        { return f.data }

func (f OutputFile) Path(dirPath string) string {
	return filepath.Join(dirPath, f.relativePath)
}

// checkContained fails when the relative path would land outside dirPath
// (eg "../escape.yaml").
func (f OutputFile) checkContained(dirPath string) error {
	rel, err := filepath.Rel(dirPath, f.Path(dirPath))
	if err != nil {
		return err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("Expected output file '%s' to be within output directory", f.relativePath)
	}
	return nil
}

func (f OutputFile) create(dirPath string) error {
	resultPath := f.Path(dirPath)

	err := os.MkdirAll(filepath.Dir(resultPath), 0700)
	if err != nil {
		return fmt.Errorf("Creating directory for '%s': %s", f.relativePath, err)
	}
	return os.WriteFile(resultPath, f.data, 0600)
}
