// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"strings"

	"carvel.dev/yamlmarkup/pkg/markup"
)

type levelEntry struct {
	node   markup.NodeKind
	indent int
}

// levelTracker maps line indentation onto the stack of open block
// collections. The indentation unit is whatever whitespace prefixes the first
// indented line of a document; a line's indentation is the number of times
// that unit repeats at its start.
type levelTracker struct {
	unit   string
	levels []levelEntry

	// structural level of the current and previous line; -1 until known
	currentLevel  int
	previousLevel int
}

func newLevelTracker() *levelTracker {
	return &levelTracker{currentLevel: -1, previousLevel: -1}
}

func (t *levelTracker) reset() {
	t.unit = ""
	t.levels = t.levels[:0]
	t.currentLevel = -1
	t.previousLevel = -1
}

func (t *levelTracker) computeIndent(text string) int {
	if t.unit == "" {
		rest := strings.TrimLeft(text, " \t")
		if len(rest) == len(text) {
			return 0
		}
		t.unit = text[:len(text)-len(rest)]
	}

	indent := 0
	for strings.HasPrefix(text, t.unit) {
		indent++
		text = text[len(t.unit):]
	}
	return indent
}

// resolve finds the level a line of the given indentation belongs to.
// A result equal to depth() means a new, deeper level. Sequence entries
// prefer a list at the same indentation so that compact sequences nested
// under a key stay distinguishable from that key's mapping.
func (t *levelTracker) resolve(indent int, dash bool) (int, bool) {
	if dash {
		for i := len(t.levels) - 1; i >= 0 && t.levels[i].indent >= indent; i-- {
			if t.levels[i].indent == indent && t.levels[i].node == markup.List {
				return i, true
			}
		}
	}
	for i, level := range t.levels {
		if level.indent == indent {
			return i, true
		}
	}
	if len(t.levels) == 0 || indent > t.levels[len(t.levels)-1].indent {
		return len(t.levels), true
	}
	return -1, false
}

func (t *levelTracker) depth() int { return len(t.levels) }

func (t *levelTracker) at(i int) levelEntry { return t.levels[i] }

func (t *levelTracker) top() (levelEntry, bool) {
	if len(t.levels) == 0 {
		return levelEntry{}, false
	}
	return t.levels[len(t.levels)-1], true
}

func (t *levelTracker) push(node markup.NodeKind, indent int) int {
	t.levels = append(t.levels, levelEntry{node: node, indent: indent})
	return len(t.levels) - 1
}

func (t *levelTracker) pop() {
	t.levels = t.levels[:len(t.levels)-1]
}

// enterLine records the structural level of a new line.
func (t *levelTracker) enterLine(level int) {
	t.previousLevel = t.currentLevel
	t.currentLevel = level
}
