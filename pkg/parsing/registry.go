// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package parsing

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"carvel.dev/yamlmarkup/pkg/markup"
)

// Parser converts a character stream into markup events delivered to handler.
type Parser interface {
	Parse(reader io.Reader, handler markup.Handler) error
}

// Opts are settings understood by every registered parser.
type Opts struct {
	// AssociatedName is the file name recorded in event and error positions.
	AssociatedName string
	RawEscapes     bool
	// DebugWriter, when set, receives a trace of recognized entries.
	DebugWriter io.Writer
}

// Factory creates an independent Parser instance.
type Factory func(opts Opts) Parser

var (
	registryLock sync.RWMutex
	registry     = map[string]Factory{}
)

// Register makes a parser available under format. Format names are case-insensitive.
func Register(format string, factory Factory) {
	if factory == nil {
		panic("Expected parser factory to be non-nil")
	}
	format = normalizeFormat(format)

	registryLock.Lock()
	defer registryLock.Unlock()

	if _, found := registry[format]; found {
		panic(fmt.Sprintf("Parser for format '%s' is already registered", format))
	}
	registry[format] = factory
}

// Lookup returns a new parser for format with default settings.
func Lookup(format string) (Parser, error) {
	return LookupWithOpts(format, Opts{})
}

// LookupWithOpts returns a new parser for format.
func LookupWithOpts(format string, opts Opts) (Parser, error) {
	registryLock.RLock()
	factory, found := registry[normalizeFormat(format)]
	registryLock.RUnlock()

	if !found {
		return nil, fmt.Errorf("Unknown format '%s' (known formats: %s)", format, strings.Join(Formats(), ", "))
	}
	return factory(opts), nil
}

// Formats lists registered format names in sorted order.
func Formats() []string {
	registryLock.RLock()
	defer registryLock.RUnlock()

	var formats []string
	for format := range registry {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}
