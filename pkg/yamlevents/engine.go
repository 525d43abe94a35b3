// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"carvel.dev/yamlmarkup/pkg/filepos"
	"carvel.dev/yamlmarkup/pkg/markup"
	"carvel.dev/yamlmarkup/pkg/parsing"
)

// scalarState is threaded through every dispatch step.
type scalarState struct {
	typeRaised    bool // TYPE already emitted for the pending value
	forceType     bool // a declared type is emitted as soon as it is seen
	sequenceEntry bool // the line continues after a '-' marker
}

// engine holds the state of a single parse.
type engine struct {
	opts     ParserOpts
	handler  markup.Handler
	comments markup.CommentHandler

	levels     *levelTracker
	tree       *contextTree
	inline     []markup.NodeKind
	directives directives

	documentOpen bool
	atMarker     bool // the entry being dispatched is a document marker
	status       scalarState
	pos          *filepos.Position
}

func newEngine(opts ParserOpts, handler markup.Handler) *engine {
	e := &engine{
		opts:    opts,
		handler: handler,
		levels:  newLevelTracker(),
		tree:    newContextTree(),
		pos:     filepos.NewUnknownPositionInFile(opts.AssociatedName),
	}
	if comments, ok := handler.(markup.CommentHandler); ok {
		e.comments = comments
	}
	return e
}

func (e *engine) run(entries *entryAssembler) error {
	for {
		en, ok, err := entries.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		err = e.dispatchEntry(en)
		if err != nil {
			return err
		}
	}

	if e.documentOpen {
		return e.closeDocument()
	}
	return nil
}

// dispatchEntry handles one top level entry: documents open lazily, line
// starting entries first settle their indentation level, then the entry is
// handed to its indicator's handler.
func (e *engine) dispatchEntry(en entry) error {
	text := strings.TrimSpace(en.Text)
	if text == "" {
		return nil
	}
	e.pos = en.Position
	e.atMarker = en.Marker

	ind := entryIndicator(text, en.Marker)
	e.trace(ind, text, en.LineStart)

	if !e.documentOpen && opensDocument(ind, en.Marker) {
		e.openDocument()
	}

	st := e.status
	if en.LineStart && len(e.inline) == 0 {
		st.sequenceEntry = false
		if isLevelEntry(ind, text, en.Marker) {
			var err error
			st, err = e.enterLevel(st, ind, text, en.Text)
			if err != nil {
				return err
			}
		}
	}

	st, err := e.dispatch(st, ind, text)
	e.status = st
	return err
}

// dispatchAll feeds entries that continue the current line (a mapping value
// or the inside of a flow collection) through the dispatch table.
func (e *engine) dispatchAll(st scalarState, entries *entryAssembler) (scalarState, error) {
	for {
		en, ok, err := entries.Next()
		if err != nil {
			return st, err
		}
		if !ok {
			return st, nil
		}
		text := strings.TrimSpace(en.Text)
		if text == "" {
			continue
		}
		e.pos = en.Position
		// "---" or "..." after the start of a line is plain text
		e.atMarker = false

		ind := entryIndicator(text, false)
		e.trace(ind, text, false)

		st, err = e.dispatch(st, ind, text)
		if err != nil {
			return st, err
		}
	}
}

func (e *engine) dispatch(st scalarState, ind Indicator, text string) (scalarState, error) {
	return dispatchTable[ind](e, st, text)
}

// entryIndicator classifies an entry by its first character. Indicators that
// need a following blank ("- ", "? ", ": ") fall back to None otherwise, and
// "---" is a sequence entry only as a document marker.
func entryIndicator(text string, marker bool) Indicator {
	r, _ := utf8.DecodeRuneInString(text)
	ind := Classify(r)

	switch ind {
	case SequenceEntry:
		if text != "-" && !(marker && text == "---") {
			return None
		}
	case MappingKey, MappingValue:
		if len(text) > 1 && !isBlankOrBreak(rune(text[1])) {
			return None
		}
	}
	return ind
}

func opensDocument(ind Indicator, marker bool) bool {
	switch {
	case ind == Comment, ind == Directive:
		return false
	default:
		return !marker
	}
}

func isLevelEntry(ind Indicator, text string, marker bool) bool {
	switch ind {
	case None:
		return !marker
	case SequenceEntry:
		return text == "-"
	case MappingKey:
		return true
	case DoubleQuote, SingleQuote:
		return isQuotedKey(text)
	default:
		return false
	}
}

// entryNode is the kind of block collection an entry belongs to; scalars
// belong to none.
func entryNode(ind Indicator, text string) (markup.NodeKind, bool) {
	switch {
	case ind == SequenceEntry:
		return markup.List, true
	case ind == MappingKey:
		return markup.Map, true
	case ind == None && strings.HasSuffix(text, ":"):
		return markup.Map, true
	case (ind == DoubleQuote || ind == SingleQuote) && isQuotedKey(text):
		return markup.Map, true
	default:
		return 0, false
	}
}

// enterLevel closes everything deeper than the line's level and opens the
// block collection the line starts, if any.
func (e *engine) enterLevel(st scalarState, ind Indicator, text, raw string) (scalarState, error) {
	indent := e.levels.computeIndent(raw)
	target, ok := e.levels.resolve(indent, ind == SequenceEntry)
	if !ok {
		return st, e.structureError("Inconsistent indentation: no enclosing collection is indented like '%s'", text)
	}
	e.levels.enterLine(target)

	node, isCollection := entryNode(ind, text)

	if target < e.levels.depth() {
		e.closeLevels(target)
		container := e.levels.at(target)

		switch {
		case isCollection && node == container.node:
			e.closeSiblings()
			return st, nil

		case isCollection && node == markup.List && container.node == markup.Map && e.awaitingValue():
			// compact sequence: "key:\n- item" at the key's own indentation
			return e.openSequence(st, markup.List, false, container.indent)

		case isCollection:
			return st, e.structureError("Expected %s entry at this indentation, but found %s entry '%s'",
				describeNode(container.node), describeNode(node), text)

		default:
			return st, e.structureError("Expected %s entry at this indentation, but found scalar '%s'",
				describeNode(container.node), text)
		}
	}

	parent := e.tree.current()
	switch {
	case parent.role == roleContainer:
		return st, e.structureError("Unexpected indentation of '%s'", text)
	case parent.hasValue:
		return st, e.structureError("Unexpected indentation of '%s': %s already has a value", text, e.describeContext(parent))
	case isCollection:
		return e.openSequence(st, node, false, indent)
	default:
		// a scalar on a deeper line is the value of the enclosing key, item or document
		return st, nil
	}
}

func (e *engine) awaitingValue() bool {
	cur := e.tree.current()
	return cur.role == roleTag && !cur.hasValue
}

// openSequence opens a MAP or LIST under the current context, announcing its
// type first unless a TYPE for this position was already emitted.
func (e *engine) openSequence(st scalarState, kind markup.NodeKind, flow bool, indent int) (scalarState, error) {
	parent := e.tree.current()

	switch {
	case parent.holdsValue() && parent.hasValue:
		return st, e.structureError("Unexpected %s: %s already has a value", describeNode(kind), e.describeContext(parent))
	case parent.role == roleContainer && parent.node == markup.Map:
		return st, e.structureError("Expected mapping key, but found %s", describeNode(kind))
	}

	if !st.typeRaised {
		typeName := parent.childrenType
		if typeName == "" {
			typeName = markup.CollectionType(kind)
		}
		e.emitPair(markup.Type, typeName)
	}
	e.emit(markup.Open, kind, "")

	if parent.holdsValue() {
		parent.hasValue = true
	} else {
		parent.childrenType = ""
	}
	parent.childrenNode = kind

	level := parent.level
	if !flow {
		level = e.levels.push(kind, indent)
		e.levels.currentLevel = level
	}
	e.tree.push(nodeContext{role: roleContainer, node: kind, level: level, flow: flow})

	return scalarState{}, nil
}

// closeSequence closes the innermost flow collection.
func (e *engine) closeSequence(st scalarState, kind markup.NodeKind, text string) (scalarState, error) {
	if len(e.inline) == 0 || e.inline[len(e.inline)-1] != kind {
		return st, parsing.NewError("yaml", parsing.ErrUnexpectedClosure, e.pos,
			"Unexpected closure '%s': no open flow %s", text, describeNode(kind))
	}
	e.inline = e.inline[:len(e.inline)-1]

	for {
		if e.tree.current().role == roleRoot {
			return st, e.structureError("Expected open flow %s to close", describeNode(kind))
		}
		closed := e.closeFrame()
		if closed.role == roleContainer && closed.flow {
			break
		}
	}
	return scalarState{}, nil
}

func (e *engine) openTag(name string) {
	cur := e.tree.current()
	e.tree.push(nodeContext{role: roleTag, name: name, level: cur.level, flow: cur.flow})

	e.emit(markup.Open, markup.Tag, name)
	e.emitPair(markup.Type, markup.TypeString)
	e.emitPair(markup.Text, name)
}

func (e *engine) openItem() {
	cur := e.tree.current()
	e.tree.push(nodeContext{role: roleItem, level: cur.level, flow: cur.flow})
}

// closeFrame pops the current context and emits its close events. Keys and
// items that never received a value get an empty null scalar.
func (e *engine) closeFrame() nodeContext {
	cur := e.tree.current()

	switch cur.role {
	case roleTag, roleItem:
		if !cur.hasValue {
			typeName := cur.childrenType
			if typeName == "" {
				typeName = autoType("")
			}
			e.emitPair(markup.Type, typeName)
			e.emitPair(markup.Text, "")
		}
		if cur.role == roleTag {
			e.emit(markup.Close, markup.Tag, cur.name)
		}

	case roleContainer:
		e.emit(markup.Close, cur.node, "")
		if !cur.flow {
			e.levels.pop()
		}

	case roleRoot:
		panic("Expected to never close the document root frame")
	}

	return e.tree.pop()
}

// closeLevels closes contexts nested deeper than the given level.
func (e *engine) closeLevels(target int) {
	for {
		cur := e.tree.current()
		if cur.role == roleRoot || cur.level <= target {
			return
		}
		e.closeFrame()
	}
}

// closeSiblings closes keys and items down to their container.
func (e *engine) closeSiblings() {
	for {
		cur := e.tree.current()
		if cur.role == roleRoot || cur.role == roleContainer {
			return
		}
		e.closeFrame()
	}
}

// emitValue emits a scalar as the value of the current context.
func (e *engine) emitValue(st scalarState, value string, inferType bool) (scalarState, error) {
	cur := e.tree.current()

	switch {
	case cur.role == roleContainer && cur.node == markup.Map:
		return st, e.structureError("Expected mapping key, but found scalar '%s'", value)
	case cur.holdsValue() && cur.hasValue:
		return st, e.structureError("Unexpected scalar '%s': %s already has a value", value, e.describeContext(cur))
	}

	if !st.typeRaised {
		typeName := cur.childrenType
		if typeName == "" {
			if inferType {
				typeName = autoType(value)
			} else {
				typeName = markup.TypeString
			}
		}
		e.emitPair(markup.Type, typeName)
	}
	e.emitPair(markup.Text, value)

	if cur.holdsValue() {
		cur.hasValue = true
	} else {
		cur.childrenType = ""
	}
	return scalarState{}, nil
}

func (e *engine) emit(phase markup.Phase, kind markup.NodeKind, value string) {
	e.handler.HandleEvent(markup.Event{Phase: phase, Kind: kind, Value: value, Position: e.pos})
}

func (e *engine) emitPair(kind markup.NodeKind, value string) {
	e.emit(markup.Open, kind, value)
	e.emit(markup.Close, kind, value)
}

func (e *engine) structureError(msg string, args ...interface{}) error {
	return parsing.NewError("yaml", parsing.ErrStructure, e.pos, msg, args...)
}

func (e *engine) describeContext(ctx *nodeContext) string {
	switch ctx.role {
	case roleTag:
		return fmt.Sprintf("key '%s'", ctx.name)
	case roleItem:
		return "sequence item"
	case roleRoot:
		return "document"
	default:
		return describeNode(ctx.node)
	}
}

func describeNode(kind markup.NodeKind) string {
	switch kind {
	case markup.Map:
		return "mapping"
	case markup.List:
		return "sequence"
	default:
		return strings.ToLower(kind.String())
	}
}

func (e *engine) trace(ind Indicator, text string, lineStart bool) {
	if e.opts.DebugWriter == nil {
		return
	}
	marker := " "
	if lineStart {
		marker = "^"
	}
	fmt.Fprintf(e.opts.DebugWriter, "%s %s %-14s %q\n", e.pos.AsCompactString(), marker, ind, text)
}
