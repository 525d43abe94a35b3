// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package parsing

import (
	"errors"
	"fmt"

	"carvel.dev/yamlmarkup/pkg/filepos"
)

// Kinds of parse failures. Use errors.Is to test an *Error against them.
var (
	ErrUnterminated       = errors.New("unterminated construct")
	ErrUnexpectedClosure  = errors.New("unexpected closure")
	ErrReservedIndicator  = errors.New("reserved indicator")
	ErrStructure          = errors.New("structural inconsistency")
	ErrDirective          = errors.New("invalid directive")
	ErrEscape             = errors.New("invalid escape sequence")
	ErrUnsupportedFeature = errors.New("unsupported feature")
)

// Error is reported by parsers for malformed input. Parsing does not continue
// past an Error; no partial result is implied.
type Error struct {
	Format   string
	Kind     error
	Msg      string
	Position *filepos.Position
}

var _ error = &Error{}

func NewError(format string, kind error, pos *filepos.Position, msg string, args ...interface{}) *Error {
	if pos == nil {
		pos = filepos.NewUnknownPosition()
	}
	return &Error{Format: format, Kind: kind, Msg: fmt.Sprintf(msg, args...), Position: pos}
}

func (e *Error) Error() string {
	prefix := e.Format
	if prefix == "" {
		prefix = "parse"
	}
	return fmt.Sprintf("%s: %s: %s", prefix, e.Position.AsCompactString(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }
