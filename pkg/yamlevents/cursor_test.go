// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"strings"

	. "gopkg.in/check.v1"
)

type CursorSuite struct{}

var _ = Suite(&CursorSuite{})

func (s *CursorSuite) TestPeekDoesNotConsume(c *C) {
	cur := newCursor(strings.NewReader("ab"))

	r, ok := cur.Peek()
	c.Assert(ok, Equals, true)
	c.Assert(r, Equals, 'a')

	r, _ = cur.Peek()
	c.Assert(r, Equals, 'a')
	c.Assert(cur.PeekN(5), Equals, "ab")
	c.Assert(cur.CheckNext('b'), Equals, true)

	r, _ = cur.Pop()
	c.Assert(r, Equals, 'a')
	c.Assert(cur.PeekPrevious(), Equals, 'a')

	r, _ = cur.Pop()
	c.Assert(r, Equals, 'b')

	_, ok = cur.Pop()
	c.Assert(ok, Equals, false)
	c.Assert(cur.Err(), IsNil)
}

func (s *CursorSuite) TestTracksLinesAndColumns(c *C) {
	cur := newCursor(strings.NewReader("ab\r\ncd"))

	cur.Pop()
	cur.Pop()
	line, col := cur.Position()
	c.Assert([]int{line, col}, DeepEquals, []int{1, 3})

	r, _ := cur.Pop()
	c.Assert(r, Equals, '\n')

	line, col = cur.Position()
	c.Assert([]int{line, col}, DeepEquals, []int{2, 1})
}

func (s *CursorSuite) TestRestoreRewindsPosition(c *C) {
	cur := newCursor(strings.NewReader("a\nb"))

	cur.Pop()
	r, _ := cur.Pop()
	c.Assert(r, Equals, '\n')

	cur.Restore(r)
	line, col := cur.Position()
	c.Assert([]int{line, col}, DeepEquals, []int{1, 2})
	c.Assert(cur.PeekN(2), Equals, "\nb")
	c.Assert(cur.PeekPrevious(), Equals, 'a')
}

func (s *CursorSuite) TestSkipsByteOrderMark(c *C) {
	cur := newCursor(strings.NewReader("\uFEFFkey"))
	c.Assert(cur.PeekN(3), Equals, "key")
}

func (s *CursorSuite) TestClassify(c *C) {
	c.Assert(Classify('-'), Equals, SequenceEntry)
	c.Assert(Classify('!'), Equals, TypeTag)
	c.Assert(Classify('@'), Equals, Reserved)
	c.Assert(Classify('`'), Equals, Reserved)
	c.Assert(Classify('a'), Equals, None)
	c.Assert(Classify('é'), Equals, None)
	c.Assert(IsIndicator('%'), Equals, true)
	c.Assert(IsIndicator('.'), Equals, false)
	c.Assert(DoubleQuote.String(), Equals, "DOUBLE_QUOTE")
}
