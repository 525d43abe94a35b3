// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

// UI is the subset of the CLI's output channel that file writing needs.
type UI interface {
	Printf(string, ...interface{})
}
