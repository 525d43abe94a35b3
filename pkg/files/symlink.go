// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Symlink is a file found while walking a directory that points elsewhere.
type Symlink struct {
	path string
}

type SymlinkAllowOpts struct {
	AllowAll        bool
	AllowedDstPaths []string
}

// IsAllowed resolves the link and checks that its destination lies within
// one of the allowed directories.
func (s Symlink) IsAllowed(opts SymlinkAllowOpts) error {
	if opts.AllowAll {
		return nil
	}

	dstPath, err := filepath.EvalSymlinks(s.path)
	if err != nil {
		return fmt.Errorf("Evaluating symlink '%s': %s", s.path, err)
	}

	for _, allowedDstPath := range opts.AllowedDstPaths {
		within, err := isWithin(dstPath, allowedDstPath)
		if within || err != nil {
			return err
		}
	}

	return fmt.Errorf("Expected symlink file '%s' -> '%s' to be allowed, but was not", s.path, dstPath)
}

func isWithin(path, dir string) (bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("Abs path '%s': %s", path, err)
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false, fmt.Errorf("Abs path '%s': %s", dir, err)
	}
	if resolved, err := filepath.EvalSymlinks(absDir); err == nil {
		absDir = resolved
	}

	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false, nil
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)), nil
}
