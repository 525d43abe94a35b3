// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"fmt"
)

// Indicator is the semantic category of the character that starts an entry.
type Indicator int

const (
	None Indicator = iota
	SequenceEntry
	MappingKey
	MappingValue
	CollectEntry
	SequenceStart
	SequenceEnd
	MappingStart
	MappingEnd
	Comment
	Anchor
	Alias
	TypeTag
	Literal
	Folded
	SingleQuote
	DoubleQuote
	Directive
	Reserved

	numIndicators
)

var indicatorNames = [numIndicators]string{
	None:          "NONE",
	SequenceEntry: "SEQUENCE_ENTRY",
	MappingKey:    "MAPPING_KEY",
	MappingValue:  "MAPPING_VALUE",
	CollectEntry:  "COLLECT_ENTRY",
	SequenceStart: "SEQUENCE_START",
	SequenceEnd:   "SEQUENCE_END",
	MappingStart:  "MAPPING_START",
	MappingEnd:    "MAPPING_END",
	Comment:       "COMMENT",
	Anchor:        "ANCHOR",
	Alias:         "ALIAS",
	TypeTag:       "TYPE",
	Literal:       "LITERAL",
	Folded:        "FOLDED",
	SingleQuote:   "SINGLE_QUOTE",
	DoubleQuote:   "DOUBLE_QUOTE",
	Directive:     "DIRECTIVE",
	Reserved:      "RESERVED",
}

func (i Indicator) String() string {
	if i >= 0 && i < numIndicators {
		return indicatorNames[i]
	}
	return fmt.Sprintf("Indicator(%d)", int(i))
}

var indicatorTable = [128]Indicator{
	'-':  SequenceEntry,
	'?':  MappingKey,
	':':  MappingValue,
	',':  CollectEntry,
	'[':  SequenceStart,
	']':  SequenceEnd,
	'{':  MappingStart,
	'}':  MappingEnd,
	'#':  Comment,
	'&':  Anchor,
	'*':  Alias,
	'!':  TypeTag,
	'|':  Literal,
	'>':  Folded,
	'\'': SingleQuote,
	'"':  DoubleQuote,
	'%':  Directive,
	'@':  Reserved,
	'`':  Reserved,
}

// Classify maps a character to its Indicator. Characters that are not YAML
// indicators (including all non-ASCII runes) are None.
func Classify(r rune) Indicator {
	if r < 0 || int(r) >= len(indicatorTable) {
		return None
	}
	return indicatorTable[r]
}

// IsIndicator reports whether r is any indicator character.
func IsIndicator(r rune) bool { return Classify(r) != None }

// closerOf returns the character that ends a flow collection opened by r.
func closerOf(r rune) rune {
	switch r {
	case '{':
		return '}'
	case '[':
		return ']'
	default:
		panic(fmt.Sprintf("Expected flow collection start, but was %q", r))
	}
}
