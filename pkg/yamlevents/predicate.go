// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

type predicateKind int

const (
	endOfLine predicateKind = iota
	plainScalar
	endOfID
	doubleQuoted
	singleQuoted
	matching
)

// predicate decides, one character at a time, where an entry ends.
// Only the fields relevant to its kind are used.
type predicate struct {
	kind    predicateKind
	flow    bool // plainScalar, endOfID
	escaped bool // doubleQuoted
	close   rune // matching
}

type verdict int

const (
	more verdict = iota
	endBefore
	endAfter
)

func (p predicate) requiresCloser() bool {
	switch p.kind {
	case doubleQuoted, singleQuoted, matching:
		return true
	default:
		return false
	}
}

func (p predicate) closer() rune {
	switch p.kind {
	case doubleQuoted:
		return '"'
	case singleQuoted:
		return '\''
	case matching:
		return p.close
	default:
		return noRune
	}
}

func (p predicate) description() string {
	switch p.kind {
	case doubleQuoted:
		return "double-quoted scalar"
	case singleQuoted:
		return "single-quoted scalar"
	case matching:
		if p.close == '}' {
			return "flow mapping"
		}
		return "flow sequence"
	default:
		return "entry"
	}
}

// evaluate inspects the next rune r against the predicate on top of the
// stack. It may consume extra runes or push nested predicates.
func (a *entryAssembler) evaluate(p *predicate, r rune) verdict {
	switch p.kind {
	case endOfLine:
		if r == '\n' {
			return endBefore
		}
		return more

	case plainScalar:
		switch {
		case r == '\n':
			return endBefore
		case r == ':' && a.valueIndicatorAt(1, p.flow):
			return endAfter
		case r == '#' && isBlank(a.cur.PeekPrevious()):
			return endBefore
		case p.flow && isFlowTerminator(r):
			return endBefore
		}
		return more

	case endOfID:
		switch {
		case isBlankOrBreak(r) || r == '#':
			return endBefore
		case p.flow && isFlowTerminator(r):
			return endBefore
		}
		return more

	case doubleQuoted:
		switch {
		case p.escaped:
			p.escaped = false
		case r == '\\':
			p.escaped = true
		case r == '"':
			return endAfter
		}
		return more

	case singleQuoted:
		if r == '\'' {
			if a.cur.CheckNext('\'') {
				a.take()
				return more
			}
			return endAfter
		}
		return more

	case matching:
		switch r {
		case p.close:
			return endAfter
		case '"':
			a.push(predicate{kind: doubleQuoted})
		case '\'':
			a.push(predicate{kind: singleQuoted})
		case '{', '[':
			a.push(predicate{kind: matching, close: closerOf(r)})
		}
		return more

	default:
		panic("Unknown predicate kind")
	}
}
