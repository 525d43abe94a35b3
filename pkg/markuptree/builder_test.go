// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package markuptree_test

import (
	"encoding/json"
	"math"
	"testing"

	"carvel.dev/yamlmarkup/pkg/filepos"
	"carvel.dev/yamlmarkup/pkg/markup"
	"carvel.dev/yamlmarkup/pkg/markuptree"
	"carvel.dev/yamlmarkup/pkg/orderedmap"
	"carvel.dev/yamlmarkup/pkg/yamlevents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTypedDocument(t *testing.T) {
	src := `--- !!omap
name: Alice
count: !!int 0x1F
ratio: !!float 2.5
admin: true
raw: !!binary aGVsbG8=
nothing:
labels: !!set [a, b, a]
nested: {k: [1, "two"]}
`
	docs := build(t, src)
	require.Len(t, docs, 1)

	doc, ok := docs[0].(*orderedmap.Map)
	require.True(t, ok, "Expected *orderedmap.Map, but was %T", docs[0])
	assert.Equal(t, []string{"name", "count", "ratio", "admin", "raw", "nothing", "labels", "nested"}, doc.Keys())

	assert.Equal(t, map[string]interface{}{
		"name":    "Alice",
		"count":   int64(31),
		"ratio":   2.5,
		"admin":   true,
		"raw":     []byte("hello"),
		"nothing": nil,
		"labels":  []interface{}{"a", "b"},
		"nested":  map[string]interface{}{"k": []interface{}{"1", "two"}},
	}, orderedmap.Conversion{Object: doc}.AsUnorderedStringMaps())
}

func TestBuildMultipleDocuments(t *testing.T) {
	docs := build(t, "--- 1\n--- !!null\n---\n- !!bool TRUE\n- !!float -.inf\n")
	require.Len(t, docs, 3)

	assert.Equal(t, "1", docs[0])
	assert.Nil(t, docs[1])
	assert.Equal(t, []interface{}{true, math.Inf(-1)}, docs[2])
}

func TestBuildPreservesOrderInJSON(t *testing.T) {
	docs := build(t, "z: 1\na: [x, {b: c}]\nm: {}\n")

	bs, err := json.Marshal(docs[0])
	require.NoError(t, err)
	assert.Equal(t, `{"z":"1","a":["x",{"b":"c"}],"m":{}}`, string(bs))
}

func TestBuildCustomTypesKeepText(t *testing.T) {
	docs := build(t, "%TAG !e! tag:example.com:\n---\nw: !e!widget 42\n")

	doc := docs[0].(*orderedmap.Map)
	val, found := doc.Get("w")
	require.True(t, found)
	assert.Equal(t, "42", val)
}

func TestBuildConversionErrors(t *testing.T) {
	examples := []struct {
		Src         string
		ExpectedErr string
	}{
		{"a: !!int twelve", "stdin:1:10: Expected int value, but was 'twelve'"},
		{"a: !!bool maybe", "stdin:1:11: Expected bool value, but was 'maybe'"},
		{"a: !!float x1", "stdin:1:12: Expected float value, but was 'x1'"},
		{"a: !!binary '%%'", "stdin:1:13: Expected base64 encoded binary value"},
	}

	for _, ex := range examples {
		t.Run(ex.Src, func(t *testing.T) {
			b := markuptree.NewBuilder()
			err := yamlevents.NewParser(yamlevents.ParserOpts{AssociatedName: "stdin"}).ParseBytes([]byte(ex.Src), b)
			require.NoError(t, err)

			_, err = b.Documents()
			require.Error(t, err)
			assert.Contains(t, err.Error(), ex.ExpectedErr)
		})
	}
}

func TestBuildRejectsMalformedStreams(t *testing.T) {
	pos := filepos.NewPositionWithColumn(1, 1)

	_, err := markuptree.Build([]markup.Event{
		{Phase: markup.Open, Kind: markup.Document, Position: pos},
		{Phase: markup.Open, Kind: markup.Map, Position: pos},
	})
	require.EqualError(t, err, "Expected document to be closed, but MAP is still open")

	_, err = markuptree.Build([]markup.Event{
		{Phase: markup.Open, Kind: markup.Document, Position: pos},
		{Phase: markup.Close, Kind: markup.List, Position: pos},
	})
	require.EqualError(t, err, "Unexpected LIST close at 1:1")

	_, err = markuptree.Build([]markup.Event{
		{Phase: markup.Open, Kind: markup.Document, Position: pos},
		{Phase: markup.Open, Kind: markup.Tag, Value: "k", Position: pos},
	})
	require.EqualError(t, err, "Unexpected key 'k' at 1:1 outside of a mapping")
}

func build(t *testing.T, src string) []interface{} {
	t.Helper()
	b := markuptree.NewBuilder()
	err := yamlevents.NewParser(yamlevents.ParserOpts{AssociatedName: "stdin"}).ParseBytes([]byte(src), b)
	require.NoError(t, err)

	docs, err := b.Documents()
	require.NoError(t, err)
	return docs
}
