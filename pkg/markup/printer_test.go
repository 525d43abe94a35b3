// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package markup_test

import (
	"bytes"
	"strings"
	"testing"

	"carvel.dev/yamlmarkup/pkg/filepos"
	"carvel.dev/yamlmarkup/pkg/markup"
	"carvel.dev/yamlmarkup/pkg/yamlevents"
	"github.com/k14s/difflib"
	"github.com/stretchr/testify/require"
)

func TestPrinterOutline(t *testing.T) {
	events := parse(t, "name: Alice\ntags: [admin]\n")

	expected := `---
!map {
  name: !string "Alice"
  tags: !list [
    !string "admin"
  ]
}
...
`
	actual := markup.NewPrinter(nil).PrintStr(events)
	assertOutline(t, expected, actual)
}

func TestPrinterStreamsToWriter(t *testing.T) {
	buf := new(bytes.Buffer)
	printer := markup.NewPrinterWithOpts(buf, markup.PrinterOpts{Indent: "    "})

	err := yamlevents.NewParser(yamlevents.ParserOpts{}).ParseBytes([]byte("- a\n- b: 1\n"), printer)
	require.NoError(t, err)

	expected := `---
!list [
    !string "a"
    !map {
        b: !string "1"
    }
]
...
`
	assertOutline(t, expected, buf.String())
}

func TestPrinterComments(t *testing.T) {
	src := "# header\na: 1\n"

	for _, withComments := range []bool{true, false} {
		buf := new(bytes.Buffer)
		printer := markup.NewPrinterWithOpts(buf, markup.PrinterOpts{Comments: withComments})

		err := yamlevents.NewParser(yamlevents.ParserOpts{}).ParseBytes([]byte(src), printer)
		require.NoError(t, err)

		if withComments {
			assertOutline(t, "# header\n---\n!map {\n  a: !string \"1\"\n}\n...\n", buf.String())
		} else {
			assertOutline(t, "---\n!map {\n  a: !string \"1\"\n}\n...\n", buf.String())
		}
	}
}

func TestCompactString(t *testing.T) {
	pos := filepos.NewPositionWithColumn(1, 1)
	events := []markup.Event{
		{Phase: markup.Open, Kind: markup.Document, Position: pos},
		{Phase: markup.Open, Kind: markup.Type, Value: "map", Position: pos},
		{Phase: markup.Close, Kind: markup.Type, Value: "map", Position: pos},
		{Phase: markup.Open, Kind: markup.Map, Position: pos},
		{Phase: markup.Close, Kind: markup.Map, Position: pos},
		{Phase: markup.Open, Kind: markup.Text, Value: "a \"b\"", Position: pos},
		{Phase: markup.Close, Kind: markup.Text, Value: "a \"b\"", Position: pos},
		{Phase: markup.Close, Kind: markup.Document, Position: pos},
	}

	expected := `+DOCUMENT
=TYPE map
=MAP
=TEXT "a \"b\""
-DOCUMENT`
	assertOutline(t, expected, markup.CompactString(events))
}

func TestEventString(t *testing.T) {
	require.Equal(t, "OPEN MAP", markup.Event{Phase: markup.Open, Kind: markup.Map}.String())
	require.Equal(t, `CLOSE TAG "key"`, markup.Event{Phase: markup.Close, Kind: markup.Tag, Value: "key"}.String())
	require.Equal(t, "NodeKind(42)", markup.NodeKind(42).String())
	require.Equal(t, "Phase(7)", markup.Phase(7).String())
}

func TestCollectionType(t *testing.T) {
	require.Equal(t, markup.TypeMap, markup.CollectionType(markup.Map))
	require.Equal(t, markup.TypeList, markup.CollectionType(markup.List))
	require.Panics(t, func() { markup.CollectionType(markup.Text) })
}

func parse(t *testing.T, src string) []markup.Event {
	t.Helper()
	recorder := &markup.Recorder{}
	err := yamlevents.NewParser(yamlevents.ParserOpts{AssociatedName: "stdin"}).ParseBytes([]byte(src), recorder)
	require.NoError(t, err)
	return recorder.Events
}

func assertOutline(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("Not equal; diff expected...actual:\n%v\n",
			difflib.PPDiff(strings.Split(expected, "\n"), strings.Split(actual, "\n")))
	}
}
