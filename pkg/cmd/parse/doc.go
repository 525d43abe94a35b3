// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package parse implements the "parse" command (the default command of
yamlmarkup): it reads each input file, runs the parser registered for its
format, checks that the resulting event stream is balanced and renders the
events in the requested output type.

Callers embedding yamlmarkup can skip the CLI and use Options.RunWithFiles.
*/
package parse
