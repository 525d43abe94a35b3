// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"io"
)

// UI is the output channel of commands. Printf carries results; Warnf and
// Debugf go to the diagnostic stream.
type UI interface {
	Printf(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})

	// DebugWriter receives the parser trace; it discards writes unless
	// debugging is on.
	DebugWriter() io.Writer
}
