// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"io"
	"os"
)

// TTY writes results to out and diagnostics (warnings, debug output, parser
// traces) to diag.
type TTY struct {
	debug bool
	out   io.Writer
	diag  io.Writer
}

var _ UI = TTY{}

func NewTTY(debug bool) TTY {
	return NewCustomWriterTTY(debug, nil, nil)
}

// NewCustomWriterTTY is NewTTY with substitute streams; nil falls back to
// os.Stdout and os.Stderr respectively.
func NewCustomWriterTTY(debug bool, stdout, stderr io.Writer) TTY {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return TTY{debug: debug, out: stdout, diag: stderr}
}

func (t TTY) Printf(str string, args ...interface{}) {
	fmt.Fprintf(t.out, str, args...)
}

func (t TTY) Warnf(str string, args ...interface{}) {
	fmt.Fprintf(t.diag, str, args...)
}

func (t TTY) Debugf(str string, args ...interface{}) {
	if t.debug {
		fmt.Fprintf(t.diag, str, args...)
	}
}

func (t TTY) DebugWriter() io.Writer {
	if t.debug {
		return t.diag
	}
	return io.Discard
}
