// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"strings"

	"carvel.dev/yamlmarkup/pkg/markup"
	"carvel.dev/yamlmarkup/pkg/parsing"
)

func (e *engine) openDocument() {
	e.tree.reset()
	e.levels.reset()
	e.inline = e.inline[:0]
	e.status = scalarState{}
	e.documentOpen = true

	e.emit(markup.Open, markup.Document, "")
}

func (e *engine) closeDocument() error {
	if len(e.inline) > 0 {
		return parsing.NewError("yaml", parsing.ErrUnterminated, e.pos,
			"Expected flow %s to be closed before the document ends", describeNode(e.inline[len(e.inline)-1]))
	}
	for e.tree.depth() > 0 {
		e.closeFrame()
	}
	// "--- !!null" declares a type for a document without content
	if root := e.tree.current(); root.childrenType != "" && !root.hasValue {
		if !e.status.typeRaised {
			e.emitPair(markup.Type, root.childrenType)
		}
		e.emitPair(markup.Text, "")
	}
	e.emit(markup.Close, markup.Document, "")

	e.documentOpen = false
	e.tree.reset()
	e.levels.reset()
	e.directives.reset()
	e.status = scalarState{}
	return nil
}

// startDocument handles "---": it ends the previous document, if any, and
// opens a new one whose first declared type is announced immediately.
func (e *engine) startDocument() (scalarState, error) {
	if e.documentOpen {
		err := e.closeDocument()
		if err != nil {
			return scalarState{}, err
		}
	}
	e.openDocument()
	return scalarState{forceType: true}, nil
}

// endDocument handles "...".
func (e *engine) endDocument() (scalarState, error) {
	if e.documentOpen {
		return scalarState{}, e.closeDocument()
	}
	e.directives.reset()
	return scalarState{}, nil
}

func (e *engine) parseDirective(st scalarState, text string) (scalarState, error) {
	if e.documentOpen {
		return st, parsing.NewError("yaml", parsing.ErrDirective, e.pos,
			"Expected directive '%s' to precede the document start marker", text)
	}
	err := e.directives.apply(strings.TrimPrefix(text, "%"))
	if err != nil {
		return st, parsing.NewError("yaml", parsing.ErrDirective, e.pos, "%s", err)
	}
	return st, nil
}
