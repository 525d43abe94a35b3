// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"bytes"
	"io"

	"carvel.dev/yamlmarkup/pkg/markup"
	"carvel.dev/yamlmarkup/pkg/parsing"
)

func init() {
	factory := func(opts parsing.Opts) parsing.Parser { return NewParser(ParserOpts(opts)) }
	parsing.Register("yaml", factory)
	parsing.Register("yml", factory)
}

type ParserOpts struct {
	// AssociatedName is the file name recorded in event and error positions.
	AssociatedName string
	// RawEscapes keeps quoted scalars exactly as written (no escape
	// translation or line folding).
	RawEscapes bool
	// DebugWriter, when set, receives one line per recognized entry.
	DebugWriter io.Writer
}

// Parser turns YAML text into markup events. A Parser holds no parse state;
// every call to Parse starts from scratch, so one Parser may serve
// concurrent parses.
type Parser struct {
	opts ParserOpts
}

var _ parsing.Parser = &Parser{}

func NewParser(opts ParserOpts) *Parser {
	return &Parser{opts}
}

// Parse reads YAML from reader and delivers events to handler in document
// order. If handler also implements markup.CommentHandler it receives comment
// text. Parsing stops at the first error, which is a *parsing.Error for
// malformed input.
func (p *Parser) Parse(reader io.Reader, handler markup.Handler) error {
	entries := newEntryAssembler(newCursor(reader), p.opts.AssociatedName)
	return newEngine(p.opts, handler).run(entries)
}

func (p *Parser) ParseBytes(data []byte, handler markup.Handler) error {
	return p.Parse(bytes.NewReader(data), handler)
}
