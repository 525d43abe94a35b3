// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"fmt"

	"carvel.dev/yamlmarkup/pkg/filepos"
)

// BalanceChecker verifies that an event stream is bracket-balanced while
// forwarding every event to the next handler (which may be nil).
type BalanceChecker struct {
	next  Handler
	stack []NodeKind
	depth int
	err   error
}

var _ Handler = &BalanceChecker{}
var _ CommentHandler = &BalanceChecker{}

func NewBalanceChecker(next Handler) *BalanceChecker {
	return &BalanceChecker{next: next}
}

func (b *BalanceChecker) HandleEvent(ev Event) {
	b.check(ev)
	if b.next != nil {
		b.next.HandleEvent(ev)
	}
}

func (b *BalanceChecker) HandleComment(text string, pos *filepos.Position) {
	if commentHandler, ok := b.next.(CommentHandler); ok {
		commentHandler.HandleComment(text, pos)
	}
}

func (b *BalanceChecker) check(ev Event) {
	if b.err != nil {
		return
	}
	switch ev.Phase {
	case Open:
		b.stack = append(b.stack, ev.Kind)
		if ev.Kind.IsCollection() {
			b.depth++
		}
	case Close:
		if len(b.stack) == 0 {
			b.err = fmt.Errorf("Unexpected %s close at %s: nothing is open", ev.Kind, ev.Position.AsCompactString())
			return
		}
		top := b.stack[len(b.stack)-1]
		if top != ev.Kind {
			b.err = fmt.Errorf("Unexpected %s close at %s: %s is open", ev.Kind, ev.Position.AsCompactString(), top)
			return
		}
		b.stack = b.stack[:len(b.stack)-1]
		if ev.Kind.IsCollection() {
			b.depth--
		}
		if ev.Kind == Document && b.depth != 0 {
			b.err = fmt.Errorf("Expected collection depth 0 at document close, but was %d", b.depth)
		}
	}
}

// Depth is the number of currently open MAP and LIST events.
func (b *BalanceChecker) Depth() int { return b.depth }

// Err reports the first imbalance seen, or any event left open.
func (b *BalanceChecker) Err() error {
	if b.err != nil {
		return b.err
	}
	if len(b.stack) > 0 {
		return fmt.Errorf("Expected all events to be closed, but %s is still open", b.stack[len(b.stack)-1])
	}
	return nil
}
