// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"strings"

	"carvel.dev/yamlmarkup/pkg/markup"
	"carvel.dev/yamlmarkup/pkg/parsing"
)

type dispatchFunc func(e *engine, st scalarState, text string) (scalarState, error)

// dispatchTable holds one handler per indicator.
var dispatchTable [numIndicators]dispatchFunc

func init() {
	dispatchTable = [numIndicators]dispatchFunc{
		None:          (*engine).parseNone,
		SequenceEntry: (*engine).parseSequenceEntry,
		MappingKey:    (*engine).parseMappingKey,
		MappingValue:  (*engine).parseMappingValue,
		CollectEntry:  (*engine).parseCollectEntry,
		SequenceStart: (*engine).parseFlowStart,
		SequenceEnd:   (*engine).parseFlowEnd,
		MappingStart:  (*engine).parseFlowStart,
		MappingEnd:    (*engine).parseFlowEnd,
		Comment:       (*engine).parseComment,
		Anchor:        (*engine).parseAnchor,
		Alias:         (*engine).parseAlias,
		TypeTag:       (*engine).parseTypeTag,
		Literal:       (*engine).parseBlockScalar,
		Folded:        (*engine).parseBlockScalar,
		SingleQuote:   (*engine).parseQuoted,
		DoubleQuote:   (*engine).parseQuoted,
		Directive:     (*engine).parseDirective,
		Reserved:      (*engine).parseReserved,
	}
}

func (e *engine) parseNone(st scalarState, text string) (scalarState, error) {
	switch {
	case e.atMarker && text == "...":
		return e.endDocument()
	case strings.HasSuffix(text, ":"):
		return e.parseMappingKey(st, text)
	default:
		return e.emitValue(st, text, true)
	}
}

func (e *engine) parseSequenceEntry(st scalarState, text string) (scalarState, error) {
	if e.atMarker && text == "---" {
		return e.startDocument()
	}

	if st.sequenceEntry {
		// "- - item" nests a sequence one level deeper
		var err error
		st, err = e.openSequence(st, markup.List, false, e.nestedIndent())
		if err != nil {
			return st, err
		}
	}

	cur := e.tree.current()
	if cur.role != roleContainer || cur.node != markup.List || cur.flow {
		return st, e.structureError("Unexpected sequence entry in %s", e.describeContext(cur))
	}
	e.openItem()

	return scalarState{sequenceEntry: true}, nil
}

func (e *engine) parseMappingKey(st scalarState, text string) (scalarState, error) {
	name := strings.TrimSpace(strings.TrimPrefix(text, "?"))
	name = strings.TrimSpace(strings.TrimSuffix(name, ":"))
	if name == "" && strings.HasPrefix(text, "?") {
		return st, parsing.NewError("yaml", parsing.ErrUnsupportedFeature, e.pos,
			"Complex mapping keys are not supported")
	}
	return e.openKey(st, name)
}

func (e *engine) openKey(st scalarState, name string) (scalarState, error) {
	cur := e.tree.current()
	if len(e.inline) > 0 && cur.role == roleTag {
		e.closeFrame()
		cur = e.tree.current()
	}

	if st.sequenceEntry {
		// "- key: value" starts a mapping inside the item
		var err error
		st, err = e.openSequence(st, markup.Map, false, e.nestedIndent())
		if err != nil {
			return st, err
		}
		cur = e.tree.current()
	}

	if cur.role != roleContainer || cur.node != markup.Map {
		return st, e.structureError("Unexpected mapping key '%s' in %s", name, e.describeContext(cur))
	}
	e.openTag(name)

	return scalarState{}, nil
}

// nestedIndent is the indentation of a collection that starts on the same
// line as a sequence entry marker.
func (e *engine) nestedIndent() int {
	if top, ok := e.levels.top(); ok {
		return top.indent + 1
	}
	return 0
}

func (e *engine) parseMappingValue(st scalarState, text string) (scalarState, error) {
	value := strings.TrimSpace(strings.TrimPrefix(text, ":"))
	if value == "" {
		return st, nil
	}
	return e.dispatchAll(st, newValueAssembler(value, e.pos, e.opts.AssociatedName))
}

func (e *engine) parseCollectEntry(st scalarState, _ string) (scalarState, error) {
	return st, nil
}

func (e *engine) parseFlowStart(st scalarState, text string) (scalarState, error) {
	if len(text) > 1 {
		return e.parseFlow(st, text)
	}

	kind := markup.List
	if text == "{" {
		kind = markup.Map
	}
	if st.sequenceEntry {
		st.sequenceEntry = false
	}

	st, err := e.openSequence(st, kind, true, 0)
	if err != nil {
		return st, err
	}
	e.inline = append(e.inline, kind)
	return st, nil
}

// parseFlow re-splits a captured flow collection into flow entries.
func (e *engine) parseFlow(st scalarState, text string) (scalarState, error) {
	start := e.pos
	depth := len(e.inline)

	st, err := e.dispatchAll(st, newFlowAssembler(text, start, e.opts.AssociatedName))
	if err != nil {
		return st, err
	}
	if len(e.inline) != depth {
		return st, parsing.NewError("yaml", parsing.ErrUnterminated, start,
			"Expected flow collection '%s' to be closed", text)
	}
	return st, nil
}

func (e *engine) parseFlowEnd(st scalarState, text string) (scalarState, error) {
	kind := markup.List
	if text == "}" {
		kind = markup.Map
	}
	return e.closeSequence(st, kind, text)
}

func (e *engine) parseComment(st scalarState, text string) (scalarState, error) {
	if e.comments != nil {
		e.comments.HandleComment(strings.TrimSpace(strings.TrimPrefix(text, "#")), e.pos)
	}
	return st, nil
}

// Anchors are recognized but produce no events.
func (e *engine) parseAnchor(st scalarState, _ string) (scalarState, error) {
	return st, nil
}

// Aliases are not resolved; the aliased position counts as having a value.
func (e *engine) parseAlias(st scalarState, _ string) (scalarState, error) {
	cur := e.tree.current()
	if cur.holdsValue() {
		cur.hasValue = true
	}
	st.sequenceEntry = false
	return st, nil
}

func (e *engine) parseTypeTag(st scalarState, text string) (scalarState, error) {
	typeName := markup.TypeString
	if text != "!" {
		typeName = e.directives.resolveType(text[1:])
	}

	e.tree.current().childrenType = typeName

	if st.forceType {
		e.emitPair(markup.Type, typeName)
		st.typeRaised = true
		st.forceType = false
	} else {
		st.typeRaised = false
	}
	return st, nil
}

// Block scalar headers ("|", ">") are accepted without producing events.
func (e *engine) parseBlockScalar(st scalarState, _ string) (scalarState, error) {
	return st, nil
}

func (e *engine) parseQuoted(st scalarState, text string) (scalarState, error) {
	if isQuotedKey(text) {
		name, err := e.unquote(text[:len(text)-1])
		if err != nil {
			return st, err
		}
		return e.openKey(st, name)
	}

	value, err := e.unquote(text)
	if err != nil {
		return st, err
	}
	return e.emitValue(st, value, false)
}

func (e *engine) unquote(text string) (string, error) {
	if len(text) < 2 || text[len(text)-1] != text[0] {
		return "", parsing.NewError("yaml", parsing.ErrUnterminated, e.pos,
			"Expected closing %q of quoted scalar %s", text[0], text)
	}
	value, err := unquote(text, e.opts.RawEscapes)
	if err != nil {
		return "", parsing.NewError("yaml", parsing.ErrEscape, e.pos, "%s", err)
	}
	return value, nil
}

func (e *engine) parseReserved(st scalarState, text string) (scalarState, error) {
	return st, parsing.NewError("yaml", parsing.ErrReservedIndicator, e.pos,
		"Reserved indicator '%c' cannot start a plain scalar ('%s')", text[0], text)
}
