// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package parsing is the generic lookup facility that maps a declared format name
(e.g. "yaml") to a Parser producing markup events, plus the error type every
registered parser reports failures with.

Parsers register themselves from an init function:

	func init() {
		parsing.Register("yaml", func(opts parsing.Opts) parsing.Parser { return NewParser(opts) })
	}

Callers select a parser by format and receive a fresh instance each time, so
that concurrent parses never share state:

	parser, err := parsing.LookupWithOpts("yaml", parsing.Opts{AssociatedName: "config.yml"})
*/
package parsing
