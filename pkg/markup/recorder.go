// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"carvel.dev/yamlmarkup/pkg/filepos"
)

// Recorder keeps every event (and comment) it receives.
type Recorder struct {
	Events   []Event
	Comments []string

	commentMarks []commentMark
}

type commentMark struct {
	before int // index of the first event that followed the comment
	text   string
	pos    *filepos.Position
}

var _ Handler = &Recorder{}
var _ CommentHandler = &Recorder{}

func (r *Recorder) HandleEvent(ev Event) { r.Events = append(r.Events, ev) }

func (r *Recorder) HandleComment(text string, pos *filepos.Position) {
	r.Comments = append(r.Comments, text)
	r.commentMarks = append(r.commentMarks, commentMark{len(r.Events), text, pos})
}

// Compact renders the recorded events with CompactString.
func (r *Recorder) Compact() string { return CompactString(r.Events) }

// Replay delivers the recorded events to another handler. Comments are
// delivered at their original place in the stream when h implements
// CommentHandler.
func (r *Recorder) Replay(h Handler) {
	commentHandler, _ := h.(CommentHandler)
	marks := r.commentMarks

	deliverComments := func(upTo int) {
		for len(marks) > 0 && marks[0].before <= upTo {
			if commentHandler != nil {
				commentHandler.HandleComment(marks[0].text, marks[0].pos)
			}
			marks = marks[1:]
		}
	}

	for i, ev := range r.Events {
		deliverComments(i)
		h.HandleEvent(ev)
	}
	deliverComments(len(r.Events))
}
