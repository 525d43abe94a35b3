// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"strings"

	"carvel.dev/yamlmarkup/pkg/filepos"
	"carvel.dev/yamlmarkup/pkg/parsing"
)

// entry is a maximal token delimited by YAML structural rules.
type entry struct {
	Text string
	// LineStart is set for the first entry of a physical line; its Text
	// then carries the line's indentation.
	LineStart bool
	Position  *filepos.Position

	// Marker is set for a "---" or "..." document marker in column zero.
	Marker bool
}

// entryAssembler splits a character stream into entries. In flow mode
// (used to re-split captured flow collections) line breaks are insignificant
// and flow indicators are single character entries.
type entryAssembler struct {
	cur         *cursor
	flow        bool
	file        string
	stack       []predicate
	buf         strings.Builder
	atLineStart bool
	marker      bool
}

func newEntryAssembler(cur *cursor, file string) *entryAssembler {
	return &entryAssembler{cur: cur, file: file, atLineStart: true}
}

func newFlowAssembler(text string, pos *filepos.Position, file string) *entryAssembler {
	line, col := 1, 1
	if pos.IsKnown() {
		line, col = pos.LineNum(), pos.Column()
	}
	return &entryAssembler{cur: newCursorAt(strings.NewReader(text), line, col), file: file, flow: true}
}

// newValueAssembler splits text that continues an already started line.
func newValueAssembler(text string, pos *filepos.Position, file string) *entryAssembler {
	a := newFlowAssembler(text, pos, file)
	a.flow = false
	return a
}

// Next returns the next entry; ok is false once input is exhausted.
func (a *entryAssembler) Next() (entry, bool, error) {
	for {
		a.buf.Reset()
		a.stack = a.stack[:0]
		a.marker = false

		lineStart := a.atLineStart && !a.flow
		if lineStart {
			a.takeWhile(isBlank)
		} else if a.flow {
			a.skipWhile(isBlankOrBreak)
		} else {
			a.skipWhile(isBlank)
		}

		r, ok := a.cur.Peek()
		if !ok {
			return entry{}, false, a.cur.Err()
		}
		if r == '\n' {
			a.cur.Pop()
			a.atLineStart = true
			continue
		}

		line, col := a.cur.Position()
		pos := filepos.NewPositionWithColumn(line, col)
		pos.SetFile(a.file)
		a.atLineStart = false

		if !a.start(r, lineStart) {
			if err := a.run(pos); err != nil {
				return entry{}, false, err
			}
		}
		return entry{Text: a.buf.String(), LineStart: lineStart, Marker: a.marker, Position: pos}, true, nil
	}
}

// start decides how an entry beginning with r is delimited. It reports
// whether the entry is already complete.
func (a *entryAssembler) start(r rune, lineStart bool) bool {
	atColumnZero := lineStart && a.buf.Len() == 0

	switch Classify(r) {
	case MappingStart, SequenceStart:
		a.take()
		if a.flow {
			return true
		}
		a.push(predicate{kind: matching, close: closerOf(r)})

	case MappingEnd, SequenceEnd, CollectEntry:
		a.take()
		return true

	case DoubleQuote:
		a.take()
		a.push(predicate{kind: doubleQuoted})

	case SingleQuote:
		a.take()
		a.push(predicate{kind: singleQuoted})

	case Comment, Literal, Folded, Directive, Reserved:
		a.push(predicate{kind: endOfLine})

	case Anchor, Alias, TypeTag:
		a.take()
		a.push(predicate{kind: endOfID, flow: a.flow})

	case SequenceEntry:
		if !a.flow {
			if atColumnZero && a.markerAt("---") {
				a.takeN(3)
				a.marker = true
				return true
			}
			if a.blankAt(1) {
				a.take()
				return true
			}
		}
		a.push(predicate{kind: plainScalar, flow: a.flow})

	case MappingKey, MappingValue:
		if a.valueIndicatorAt(1, a.flow) {
			a.take()
		}
		a.push(predicate{kind: plainScalar, flow: a.flow})

	default:
		if r == '.' && atColumnZero && a.markerAt("...") {
			a.takeN(3)
			a.marker = true
			return true
		}
		a.push(predicate{kind: plainScalar, flow: a.flow})
	}
	return false
}

func (a *entryAssembler) run(pos *filepos.Position) error {
	topLevelQuote := len(a.stack) == 1 && (a.stack[0].kind == doubleQuoted || a.stack[0].kind == singleQuoted)

	for len(a.stack) > 0 {
		top := &a.stack[len(a.stack)-1]

		r, ok := a.cur.Peek()
		if !ok {
			if err := a.cur.Err(); err != nil {
				return err
			}
			if top.requiresCloser() {
				return parsing.NewError("yaml", parsing.ErrUnterminated, pos,
					"Expected closing %q of %s, but reached end of input", top.closer(), top.description())
			}
			break
		}

		switch a.evaluate(top, r) {
		case more:
			a.take()
		case endBefore:
			a.stack = a.stack[:0]
		case endAfter:
			a.take()
			a.stack = a.stack[:len(a.stack)-1]
		}
	}

	// "quoted key": value
	if topLevelQuote {
		if r, ok := a.cur.Peek(); ok && r == ':' && a.valueIndicatorAt(1, a.flow) {
			a.take()
		}
	}
	return nil
}

// valueIndicatorAt reports whether a ':' at the next rune would end a key,
// judging by the rune i positions ahead.
func (a *entryAssembler) valueIndicatorAt(i int, flow bool) bool {
	r, ok := a.cur.PeekAt(i)
	if !ok || isBlankOrBreak(r) {
		return true
	}
	return flow && isFlowTerminator(r)
}

func (a *entryAssembler) blankAt(i int) bool {
	r, ok := a.cur.PeekAt(i)
	return !ok || isBlankOrBreak(r)
}

func (a *entryAssembler) markerAt(marker string) bool {
	return a.cur.PeekN(len(marker)) == marker && a.blankAt(len(marker))
}

func (a *entryAssembler) push(p predicate) { a.stack = append(a.stack, p) }

func (a *entryAssembler) take() {
	if r, ok := a.cur.Pop(); ok {
		a.buf.WriteRune(r)
	}
}

func (a *entryAssembler) takeN(n int) {
	for i := 0; i < n; i++ {
		a.take()
	}
}

func (a *entryAssembler) takeWhile(pred func(rune) bool) {
	for {
		r, ok := a.cur.Peek()
		if !ok || !pred(r) {
			return
		}
		a.take()
	}
}

func (a *entryAssembler) skipWhile(pred func(rune) bool) {
	for {
		r, ok := a.cur.Peek()
		if !ok || !pred(r) {
			return
		}
		a.cur.Pop()
	}
}
