// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"carvel.dev/yamlmarkup/pkg/markup"
)

type contextRole int

const (
	roleRoot contextRole = iota
	roleContainer
	roleTag
	roleItem
)

// nodeContext is a frame of the structure being built: the document root, an
// open MAP or LIST, a key of a map or an element of a list. Frames live in an
// arena and refer to their parent by index.
type nodeContext struct {
	role   contextRole
	name   string
	parent int

	node         markup.NodeKind // container kind
	childrenNode markup.NodeKind // kind of container opened under a tag, item or root
	childrenType string          // declared type for the value
	hasValue     bool

	level int
	flow  bool
}

func (c *nodeContext) holdsValue() bool { return c.role != roleContainer }

type contextTree struct {
	arena []nodeContext
	open  []int
}

func newContextTree() *contextTree {
	t := &contextTree{}
	t.reset()
	return t
}

func (t *contextTree) reset() {
	t.arena = append(t.arena[:0], nodeContext{role: roleRoot, parent: -1, level: -1})
	t.open = append(t.open[:0], 0)
}

func (t *contextTree) current() *nodeContext {
	return &t.arena[t.open[len(t.open)-1]]
}

func (t *contextTree) push(ctx nodeContext) *nodeContext {
	ctx.parent = t.open[len(t.open)-1]
	t.arena = append(t.arena, ctx)
	t.open = append(t.open, len(t.arena)-1)
	return &t.arena[len(t.arena)-1]
}

func (t *contextTree) pop() nodeContext {
	idx := t.open[len(t.open)-1]
	t.open = t.open[:len(t.open)-1]
	return t.arena[idx]
}

// depth excludes the root.
func (t *contextTree) depth() int { return len(t.open) - 1 }

// parentOf returns the frame that encloses the current one.
func (t *contextTree) parentOf(ctx *nodeContext) *nodeContext {
	if ctx.parent < 0 {
		return nil
	}
	return &t.arena[ctx.parent]
}
