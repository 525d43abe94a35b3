// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap_test

import (
	"encoding/json"
	"errors"
	"testing"

	"carvel.dev/yamlmarkup/pkg/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKeepsInsertionOrder(t *testing.T) {
	m := orderedmap.NewMap()
	m.Set("z", 1)
	m.Set("a", 2)
	m.Set("m", 3)
	m.Set("z", 4)

	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())
	assert.Equal(t, 3, m.Len())

	val, found := m.Get("z")
	require.True(t, found)
	assert.Equal(t, 4, val)

	assert.True(t, m.Delete("a"))
	assert.False(t, m.Delete("a"))
	assert.Equal(t, []string{"z", "m"}, m.Keys())

	_, found = m.Get("a")
	assert.False(t, found)
}

func TestMapIterateErrStops(t *testing.T) {
	m := orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "a", Value: 1}, {Key: "b", Value: 2}})

	var seen []string
	err := m.IterateErr(func(k string, _ interface{}) error {
		seen = append(seen, k)
		return errors.New("stop")
	})
	require.EqualError(t, err, "stop")
	assert.Equal(t, []string{"a"}, seen)
}

func TestMapMarshalJSON(t *testing.T) {
	inner := orderedmap.NewMap()
	inner.Set("y", nil)
	inner.Set("x", []interface{}{true, int64(2)})

	m := orderedmap.NewMap()
	m.Set("b", "two")
	m.Set("a", inner)
	m.Set("c", orderedmap.NewMap())

	bs, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"b":"two","a":{"y":null,"x":[true,2]},"c":{}}`, string(bs))
}

func TestAsUnorderedStringMaps(t *testing.T) {
	inner := orderedmap.NewMap()
	inner.Set("nestedKey", "nestedValue")

	m := orderedmap.NewMap()
	m.Set("key", []interface{}{inner})

	result := orderedmap.Conversion{Object: m}.AsUnorderedStringMaps()
	assert.Equal(t, map[string]interface{}{
		"key": []interface{}{map[string]interface{}{"nestedKey": "nestedValue"}},
	}, result)

	// input is not modified
	list, _ := m.Get("key")
	assert.Same(t, inner, list.([]interface{})[0])

	plain := map[string]interface{}{"a": inner}
	assert.Equal(t, map[string]interface{}{
		"a": map[string]interface{}{"nestedKey": "nestedValue"},
	}, orderedmap.Conversion{Object: plain}.AsUnorderedStringMaps())
}
