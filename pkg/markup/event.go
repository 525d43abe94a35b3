// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"fmt"

	"carvel.dev/yamlmarkup/pkg/filepos"
)

type Phase int

const (
	Open Phase = iota
	Close
)

func (p Phase) String() string {
	switch p {
	case Open:
		return "OPEN"
	case Close:
		return "CLOSE"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

type NodeKind int

const (
	Document NodeKind = iota
	Map
	List
	Tag
	Type
	Text
	Anchor
	Reference
)

var nodeKindNames = [...]string{
	Document:  "DOCUMENT",
	Map:       "MAP",
	List:      "LIST",
	Tag:       "TAG",
	Type:      "TYPE",
	Text:      "TEXT",
	Anchor:    "ANCHOR",
	Reference: "REFERENCE",
}

func (k NodeKind) String() string {
	if k >= 0 && int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// IsCollection reports whether the kind is MAP or LIST.
func (k NodeKind) IsCollection() bool { return k == Map || k == List }

// Event is a single structural notification delivered to a Handler.
//
// TAG events carry the key name, TYPE events the type name and TEXT events
// the scalar text; DOCUMENT, MAP and LIST events carry no value.
type Event struct {
	Phase    Phase
	Kind     NodeKind
	Value    string
	Position *filepos.Position
}

func (e Event) String() string {
	if e.Value == "" {
		return e.Phase.String() + " " + e.Kind.String()
	}
	return fmt.Sprintf("%s %s %q", e.Phase, e.Kind, e.Value)
}

// Handler receives events in document order.
type Handler interface {
	HandleEvent(Event)
}

type HandlerFunc func(Event)

var _ Handler = HandlerFunc(nil)

func (f HandlerFunc) HandleEvent(ev Event) { f(ev) }

// CommentHandler is optionally implemented by a Handler that wants comment
// text. Comments never produce structural events.
type CommentHandler interface {
	HandleComment(text string, pos *filepos.Position)
}
