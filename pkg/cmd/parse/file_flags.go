// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"carvel.dev/yamlmarkup/pkg/files"
	"github.com/spf13/cobra"
)

type FileFlags struct {
	Files     []string
	Recursive bool

	SymlinkAllowOpts files.SymlinkAllowOpts
}

func (s *FileFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&s.Files, "file", "f", nil, "File (ie local path, HTTP URL, -) (can be specified multiple times)")
	cmd.Flags().BoolVarP(&s.Recursive, "recursive", "R", true, "Interpret directories as a set of files")

	cmd.Flags().BoolVar(&s.SymlinkAllowOpts.AllowAll, "dangerous-allow-all-symlink-destinations", false,
		"Symlinks to all destinations are allowed")
	cmd.Flags().StringSliceVar(&s.SymlinkAllowOpts.AllowedDstPaths, "allow-symlink-destination", nil,
		"File paths to which symlinks are allowed (can be specified multiple times)")
}

func (s *FileFlags) AsFiles() ([]*files.File, error) {
	return files.NewFiles(s.Files, files.NewFilesOpts{Recursive: s.Recursive, Symlinks: s.SymlinkAllowOpts})
}
