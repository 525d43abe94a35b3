// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui separates what a command produces from what it says about itself.

Results go to standard output. Warnings, debug lines and the parser trace go
to standard error, the latter two only when debugging is enabled.
*/
package ui
