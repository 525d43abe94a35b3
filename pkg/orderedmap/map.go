// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"bytes"
	"encoding/json"
)

// Map keeps string keys in insertion order.
type Map struct {
	items []MapItem
}

type MapItem struct {
	Key   string
	Value interface{}
}

func NewMap() *Map {
	return &Map{}
}

func NewMapWithItems(items []MapItem) *Map {
	return &Map{items}
}

// Set replaces the value of an existing key in place or appends a new key.
func (m *Map) Set(key string, value interface{}) {
	for i, item := range m.items {
		if item.Key == key {
			m.items[i].Value = value
			return
		}
	}
	m.items = append(m.items, MapItem{key, value})
}

func (m *Map) Get(key string) (interface{}, bool) {
	for _, item := range m.items {
		if item.Key == key {
			return item.Value, true
		}
	}
	return nil, false
}

func (m *Map) Delete(key string) bool {
	for i, item := range m.items {
		if item.Key == key {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Map) Keys() (keys []string) {
	m.Iterate(func(k string, _ interface{}) {
		keys = append(keys, k)
	})
	return
}

func (m *Map) Iterate(iterFunc func(k string, v interface{})) {
	for _, item := range m.items {
		iterFunc(item.Key, item.Value)
	}
}

func (m *Map) IterateErr(iterFunc func(k string, v interface{}) error) error {
	for _, item := range m.items {
		err := iterFunc(item.Key, item.Value)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Map) Len() int { return len(m.items) }

var _ json.Marshaler = &Map{}

// MarshalJSON writes keys in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte('{')

	err := m.IterateErr(func(k string, v interface{}) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		keyBytes, err := json.Marshal(k)
		if err != nil {
			return err
		}
		valBytes, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')
		buf.Write(valBytes)
		return nil
	})
	if err != nil {
		return nil, err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
