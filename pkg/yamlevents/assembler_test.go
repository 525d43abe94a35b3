// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"errors"
	"strings"

	"carvel.dev/yamlmarkup/pkg/filepos"
	"carvel.dev/yamlmarkup/pkg/parsing"
	. "gopkg.in/check.v1"
)

type AssemblerSuite struct{}

var _ = Suite(&AssemblerSuite{})

// assemble renders entries; line starting entries are prefixed with '^'.
func assemble(a *entryAssembler) ([]string, error) {
	var result []string
	for {
		en, ok, err := a.Next()
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		if en.LineStart {
			result = append(result, "^"+en.Text)
		} else {
			result = append(result, en.Text)
		}
	}
}

func assembleBlock(input string) ([]string, error) {
	return assemble(newEntryAssembler(newCursor(strings.NewReader(input)), ""))
}

func (s *AssemblerSuite) TestBlockEntries(c *C) {
	examples := []struct {
		input    string
		expected []string
	}{
		{"name: Alice\ntags:\n  - admin\n", []string{"^name:", "Alice", "^tags:", "^  -", "admin"}},
		{"key: value # note", []string{"^key:", "value ", "# note"}},
		{"url: http://x.y/z", []string{"^url:", "http://x.y/z"}},
		{"key:value", []string{"^key:value"}},
		{`"a b": 'c''d'`, []string{`^"a b":`, `'c''d'`}},
		{"--- !!int 42\n...\n", []string{"^---", "!!int", "42", "^..."}},
		{"- -1\n-x\n- - y", []string{"^-", "-1", "^-x", "^-", "-", "y"}},
		{"%YAML 1.2\n---", []string{"^%YAML 1.2", "^---"}},
		{"\n\n  \nfoo\n\n", []string{"^foo"}},
		{"a: &anchor *alias", []string{"^a:", "&anchor", "*alias"}},
		{"? key\n: value", []string{"^? key", "^: value"}},
		{"  ---", []string{"^  ---"}},
		{"a: |\n  text", []string{"^a:", "|", "^  text"}},
	}

	for _, ex := range examples {
		entries, err := assembleBlock(ex.input)
		c.Assert(err, IsNil, Commentf("input: %q", ex.input))
		c.Assert(entries, DeepEquals, ex.expected, Commentf("input: %q", ex.input))
	}
}

func (s *AssemblerSuite) TestBlockCapturesWholeFlowCollections(c *C) {
	entries, err := assembleBlock("a: {b: [1, 2],\n  c: \"}\"}\nd: 4")
	c.Assert(err, IsNil)
	c.Assert(entries, DeepEquals, []string{"^a:", "{b: [1, 2],\n  c: \"}\"}", "^d:", "4"})
}

func (s *AssemblerSuite) TestQuotedScalarsSpanLines(c *C) {
	entries, err := assembleBlock("a: \"one\n  two \\\" three\"\nb: 'x\n  y'")
	c.Assert(err, IsNil)
	c.Assert(entries, DeepEquals, []string{"^a:", "\"one\n  two \\\" three\"", "^b:", "'x\n  y'"})
}

func (s *AssemblerSuite) TestFlowEntries(c *C) {
	a := newFlowAssembler("{a: 1, b: [x, 'y, z'], c: \"}\"}", filepos.NewPositionWithColumn(3, 4), "")

	entries, err := assemble(a)
	c.Assert(err, IsNil)
	c.Assert(entries, DeepEquals, []string{"{", "a:", "1", ",", "b:", "[", "x", ",", "'y, z'", "]", ",", "c:", `"}"`, "}"})
}

func (s *AssemblerSuite) TestFlowEntriesIgnoreLineBreaks(c *C) {
	a := newFlowAssembler("[\n  a,\n  b\n]", filepos.NewPositionWithColumn(1, 1), "")

	entries, err := assemble(a)
	c.Assert(err, IsNil)
	c.Assert(entries, DeepEquals, []string{"[", "a", ",", "b", "]"})
}

func (s *AssemblerSuite) TestEntryPositions(c *C) {
	a := newEntryAssembler(newCursor(strings.NewReader("a: 1\r\n  b: [x,\n y]")), "in.yml")

	var positions []string
	for {
		en, ok, err := a.Next()
		c.Assert(err, IsNil)
		if !ok {
			break
		}
		positions = append(positions, en.Position.AsCompactString())
	}
	c.Assert(positions, DeepEquals, []string{"in.yml:1:1", "in.yml:1:4", "in.yml:2:3", "in.yml:2:6"})
}

func (s *AssemblerSuite) TestUnterminatedConstructs(c *C) {
	for _, input := range []string{`"open`, "'open", "a: [1, 2", "a: {b: 'x}", `a: "x\"`} {
		_, err := assembleBlock(input)
		c.Assert(err, NotNil, Commentf("input: %q", input))
		c.Assert(errors.Is(err, parsing.ErrUnterminated), Equals, true, Commentf("input: %q", input))
	}
}
