// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"bufio"
	"io"
	"strings"
)

const (
	byteOrderMark = '\uFEFF'
	noRune        = rune(-1)
	historySize   = 4
)

type poppedRune struct {
	r         rune
	line, col int
}

// cursor is a character stream with arbitrary lookahead, a short history of
// popped runes (for PeekPrevious and Restore) and line/column tracking.
// Carriage returns directly preceding a line feed are dropped.
type cursor struct {
	reader  *bufio.Reader
	ahead   []rune
	history []poppedRune
	eof     bool
	err     error

	line, col int // position of the next rune, 1 based
}

func newCursor(reader io.Reader) *cursor {
	return newCursorAt(reader, 1, 1)
}

func newCursorAt(reader io.Reader, line, col int) *cursor {
	c := &cursor{reader: bufio.NewReader(reader), line: line, col: col}
	if r, ok := c.Peek(); ok && r == byteOrderMark {
		c.ahead = c.ahead[1:]
	}
	return c
}

func (c *cursor) fill(n int) bool {
	for len(c.ahead) < n && !c.eof {
		r, _, err := c.reader.ReadRune()
		if err != nil {
			c.eof = true
			if err != io.EOF {
				c.err = err
			}
			break
		}
		if r == '\r' {
			if next, _, err := c.reader.ReadRune(); err == nil {
				if next == '\n' {
					r = '\n'
				} else {
					c.reader.UnreadRune()
				}
			}
		}
		c.ahead = append(c.ahead, r)
	}
	return len(c.ahead) >= n
}

// Peek returns the next rune without consuming it.
func (c *cursor) Peek() (rune, bool) { return c.PeekAt(0) }

// PeekAt returns the rune i positions ahead of the next one.
func (c *cursor) PeekAt(i int) (rune, bool) {
	if !c.fill(i + 1) {
		return noRune, false
	}
	return c.ahead[i], true
}

// PeekN returns up to n upcoming runes as a string.
func (c *cursor) PeekN(n int) string {
	c.fill(n)
	if n > len(c.ahead) {
		n = len(c.ahead)
	}
	return string(c.ahead[:n])
}

// PeekPrevious returns the last consumed rune, or noRune.
func (c *cursor) PeekPrevious() rune {
	if len(c.history) == 0 {
		return noRune
	}
	return c.history[len(c.history)-1].r
}

// CheckNext reports whether the rune after the next one is r.
func (c *cursor) CheckNext(r rune) bool {
	next, ok := c.PeekAt(1)
	return ok && next == r
}

// Pop consumes the next rune.
func (c *cursor) Pop() (rune, bool) {
	if !c.fill(1) {
		return noRune, false
	}
	r := c.ahead[0]
	c.ahead = c.ahead[1:]

	c.history = append(c.history, poppedRune{r, c.line, c.col})
	if len(c.history) > historySize {
		c.history = c.history[1:]
	}

	if r == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return r, true
}

// Restore pushes back the most recently popped rune.
func (c *cursor) Restore(r rune) {
	if len(c.history) == 0 || c.history[len(c.history)-1].r != r {
		panic("Expected restored rune to be the last popped rune")
	}
	last := c.history[len(c.history)-1]
	c.history = c.history[:len(c.history)-1]
	c.line, c.col = last.line, last.col
	c.ahead = append([]rune{r}, c.ahead...)
}

// Position is the line and column of the next rune.
func (c *cursor) Position() (int, int) { return c.line, c.col }

// Err returns a read error other than io.EOF.
func (c *cursor) Err() error { return c.err }

func isBlank(r rune) bool { return r == ' ' || r == '\t' }

func isBlankOrBreak(r rune) bool { return isBlank(r) || r == '\n' }

func isFlowTerminator(r rune) bool { return strings.ContainsRune(",]}", r) }
