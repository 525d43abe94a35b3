// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package markuptree

import (
	"fmt"
	"reflect"

	"carvel.dev/yamlmarkup/pkg/markup"
	"carvel.dev/yamlmarkup/pkg/orderedmap"
)

type frame struct {
	kind     markup.NodeKind
	typeName string

	m    *orderedmap.Map
	list []interface{}

	key         string
	awaitingKey bool
	value       interface{}
}

// Builder is a markup.Handler that collects one value per document.
type Builder struct {
	docs        []interface{}
	stack       []*frame
	pendingType string
	err         error
}

var _ markup.Handler = &Builder{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build is a shortcut for replaying already recorded events into a Builder.
func Build(events []markup.Event) ([]interface{}, error) {
	b := NewBuilder()
	for _, ev := range events {
		b.HandleEvent(ev)
	}
	return b.Documents()
}

// Documents returns the values of all completed documents.
func (b *Builder) Documents() ([]interface{}, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.stack) > 0 {
		return nil, fmt.Errorf("Expected document to be closed, but %s is still open", b.top().kind)
	}
	return b.docs, nil
}

func (b *Builder) HandleEvent(ev markup.Event) {
	if b.err != nil {
		return
	}
	if ev.Phase == markup.Open {
		b.err = b.open(ev)
	} else {
		b.err = b.close(ev)
	}
}

func (b *Builder) open(ev markup.Event) error {
	switch ev.Kind {
	case markup.Document:
		if len(b.stack) > 0 {
			return fmt.Errorf("Unexpected document start at %s: previous document is still open", ev.Position.AsCompactString())
		}
		b.push(&frame{kind: markup.Document})

	case markup.Type:
		if top := b.top(); top != nil && top.awaitingKey {
			return nil
		}
		b.pendingType = ev.Value

	case markup.Map:
		b.push(&frame{kind: markup.Map, typeName: b.takeType(), m: orderedmap.NewMap()})

	case markup.List:
		b.push(&frame{kind: markup.List, typeName: b.takeType(), list: []interface{}{}})

	case markup.Tag:
		if top := b.top(); top == nil || top.kind != markup.Map {
			return fmt.Errorf("Unexpected key '%s' at %s outside of a mapping", ev.Value, ev.Position.AsCompactString())
		}
		b.push(&frame{kind: markup.Tag, key: ev.Value, awaitingKey: true})

	case markup.Text:
		if top := b.top(); top != nil && top.awaitingKey {
			top.awaitingKey = false
			return nil
		}
		typeName := b.takeType()
		val, err := convertScalar(typeName, ev.Value)
		if err != nil {
			return fmt.Errorf("%s: %s", ev.Position.AsCompactString(), err)
		}
		return b.assign(val, ev)
	}
	return nil
}

func (b *Builder) close(ev markup.Event) error {
	switch ev.Kind {
	case markup.Map, markup.List:
		f, err := b.pop(ev)
		if err != nil {
			return err
		}
		if f.kind == markup.Map {
			return b.assign(f.m, ev)
		}
		return b.assign(b.finishList(f), ev)

	case markup.Tag:
		f, err := b.pop(ev)
		if err != nil {
			return err
		}
		b.top().m.Set(f.key, f.value)

	case markup.Document:
		f, err := b.pop(ev)
		if err != nil {
			return err
		}
		b.docs = append(b.docs, f.value)
	}
	return nil
}

func (b *Builder) assign(val interface{}, ev markup.Event) error {
	top := b.top()
	if top == nil {
		return fmt.Errorf("Unexpected %s at %s outside of a document", ev.Kind, ev.Position.AsCompactString())
	}
	switch top.kind {
	case markup.List:
		top.list = append(top.list, val)
	case markup.Map:
		return fmt.Errorf("Expected key at %s, but found %s", ev.Position.AsCompactString(), ev.Kind)
	default:
		top.value = val
	}
	return nil
}

// finishList drops repeated members of set typed sequences.
func (b *Builder) finishList(f *frame) []interface{} {
	if f.typeName != markup.TypeSet && f.typeName != markup.TypeOrderedSet {
		return f.list
	}
	var result []interface{}
	for _, item := range f.list {
		dup := false
		for _, seen := range result {
			if reflect.DeepEqual(seen, item) {
				dup = true
				break
			}
		}
		if !dup {
			result = append(result, item)
		}
	}
	if result == nil {
		result = []interface{}{}
	}
	return result
}

func (b *Builder) takeType() string {
	typeName := b.pendingType
	b.pendingType = ""
	return typeName
}

func (b *Builder) push(f *frame) { b.stack = append(b.stack, f) }

func (b *Builder) pop(ev markup.Event) (*frame, error) {
	top := b.top()
	if top == nil || top.kind != ev.Kind {
		return nil, fmt.Errorf("Unexpected %s close at %s", ev.Kind, ev.Position.AsCompactString())
	}
	b.stack = b.stack[:len(b.stack)-1]
	return top, nil
}

func (b *Builder) top() *frame {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}
