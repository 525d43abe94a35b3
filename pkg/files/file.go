// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	yamlExts = []string{".yaml", ".yml"}
)

type Type int

const (
	TypeUnknown Type = iota
	TypeYAML
)

type File struct {
	src     Source
	relPath string
}

type NewFilesOpts struct {
	Recursive bool
	Symlinks  SymlinkAllowOpts
}

// NewFiles resolves paths into files: "-" is stdin, http(s) URLs are
// fetched, directories are walked (when Recursive) in sorted order.
func NewFiles(paths []string, opts NewFilesOpts) ([]*File, error) {
	var fileSrcs []Source

	for _, path := range paths {
		switch {
		case path == "-":
			fileSrcs = append(fileSrcs, NewStdinSource())

		case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
			fileSrcs = append(fileSrcs, NewCachedSource(NewHTTPSource(path)))

		default:
			fileInfo, err := os.Stat(path)
			if err != nil {
				return nil, fmt.Errorf("Checking file '%s': %s", path, err)
			}

			if fileInfo.IsDir() {
				if !opts.Recursive {
					return nil, fmt.Errorf("Expected file '%s' to not be a directory", path)
				}

				var selectedPaths []string

				err := filepath.Walk(path, func(walkedPath string, fi os.FileInfo, err error) error {
					if err != nil || fi.IsDir() {
						return err
					}
					if fi.Mode()&os.ModeSymlink != 0 {
						err := Symlink{walkedPath}.IsAllowed(opts.Symlinks)
						if err != nil {
							return err
						}
					}
					selectedPaths = append(selectedPaths, walkedPath)
					return nil
				})
				if err != nil {
					return nil, fmt.Errorf("Listing files '%s': %s", path, err)
				}

				sort.Strings(selectedPaths)

				for _, selectedPath := range selectedPaths {
					fileSrcs = append(fileSrcs, NewLocalSource(selectedPath, path))
				}
			} else {
				fileSrcs = append(fileSrcs, NewLocalSource(path, ""))
			}
		}
	}

	var files []*File

	for _, fileSrc := range fileSrcs {
		file, err := NewFileFromSource(fileSrc)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func NewFileFromSource(fileSrc Source) (*File, error) {
	relPath, err := fileSrc.RelativePath()
	if err != nil {
		return nil, fmt.Errorf("Calculating relative path for '%s': %s", fileSrc.Description(), err)
	}

	return &File{src: fileSrc, relPath: relPath}, nil
}

func MustNewFileFromSource(fileSrc Source) *File {
	file, err := NewFileFromSource(fileSrc)
	if err != nil {
		panic(err)
	}
	return file
}

func (r *File) Description() string    { return r.src.Description() }
func (r *File) RelativePath() string   { return r.relPath }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

func (r *File) Type() Type {
	switch {
	case r.matchesExt(yamlExts):
		return TypeYAML
	default:
		return TypeUnknown
	}
}

// Format is the registered parser format for the file, or "" when the
// extension does not tell.
func (r *File) Format() string {
	switch r.Type() {
	case TypeYAML:
		return "yaml"
	default:
		return ""
	}
}

func (r *File) matchesExt(exts []string) bool {
	filename := filepath.Base(r.RelativePath())
	for _, ext := range exts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
