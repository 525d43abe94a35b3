// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"carvel.dev/yamlmarkup/pkg/filepos"
)

type PrinterOpts struct {
	Comments bool
	Indent   string
}

// Printer renders an event stream as an indented, human readable outline:
//
//	---
//	!map {
//	  name: !string "Alice"
//	  tags: !list [
//	    !string "admin"
//	  ]
//	}
//	...
type Printer struct {
	writer io.Writer
	opts   PrinterOpts

	depth       int
	pendingType string
	tagHeader   bool
	lineOpen    bool
}

var _ Handler = &Printer{}
var _ CommentHandler = &Printer{}

func NewPrinter(writer io.Writer) *Printer {
	return NewPrinterWithOpts(writer, PrinterOpts{})
}

func NewPrinterWithOpts(writer io.Writer, opts PrinterOpts) *Printer {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	return &Printer{writer: writer, opts: opts}
}

func (p *Printer) HandleEvent(ev Event) {
	open := ev.Phase == Open

	switch ev.Kind {
	case Document:
		p.endLine()
		if open {
			p.line("---")
		} else {
			p.line("...")
		}

	case Tag:
		p.endLine()
		p.tagHeader = open

	case Type:
		if open && !p.tagHeader {
			p.pendingType = ev.Value
		}

	case Text:
		if !open {
			return
		}
		p.startLine()
		if p.tagHeader {
			p.tagHeader = false
			p.write(ev.Value + ":")
			return
		}
		p.write(p.typePrefix() + fmt.Sprintf("%q", ev.Value))
		p.endLine()

	case Map, List:
		opener, closer := "{", "}"
		if ev.Kind == List {
			opener, closer = "[", "]"
		}
		if open {
			p.startLine()
			p.write(p.typePrefix() + opener)
			p.endLine()
			p.depth++
		} else {
			p.endLine()
			p.depth--
			p.line(closer)
		}
	}
}

func (p *Printer) HandleComment(text string, _ *filepos.Position) {
	if !p.opts.Comments {
		return
	}
	p.endLine()
	p.line("# " + text)
}

// PrintStr renders a complete event slice.
func (p *Printer) PrintStr(events []Event) string {
	buf := new(bytes.Buffer)
	printer := NewPrinterWithOpts(buf, p.opts)
	for _, ev := range events {
		printer.HandleEvent(ev)
	}
	printer.endLine()
	return buf.String()
}

func (p *Printer) typePrefix() string {
	if p.pendingType == "" {
		return ""
	}
	prefix := "!" + p.pendingType + " "
	p.pendingType = ""
	return prefix
}

func (p *Printer) startLine() {
	if p.lineOpen {
		p.write(" ")
		return
	}
	p.write(strings.Repeat(p.opts.Indent, p.depth))
	p.lineOpen = true
}

func (p *Printer) endLine() {
	if p.lineOpen {
		p.write("\n")
		p.lineOpen = false
	}
}

func (p *Printer) line(str string) {
	p.write(strings.Repeat(p.opts.Indent, p.depth) + str + "\n")
}

func (p *Printer) write(str string) {
	p.writer.Write([]byte(str)) // not fmt.Fprintf!
}

// CompactString renders one event per line for test expectations. Opens are
// "+KIND value" and closes "-KIND value"; an open immediately followed by its
// own close collapses to "=KIND value". Text values are quoted.
func CompactString(events []Event) string {
	var lines []string
	for i := 0; i < len(events); i++ {
		ev := events[i]
		value := compactValue(ev)

		if ev.Phase == Open && i+1 < len(events) {
			next := events[i+1]
			if next.Phase == Close && next.Kind == ev.Kind && next.Value == ev.Value {
				lines = append(lines, "="+ev.Kind.String()+value)
				i++
				continue
			}
		}
		sign := "+"
		if ev.Phase == Close {
			sign = "-"
		}
		lines = append(lines, sign+ev.Kind.String()+value)
	}
	return strings.Join(lines, "\n")
}

func compactValue(ev Event) string {
	switch {
	case ev.Kind == Text:
		return fmt.Sprintf(" %q", ev.Value)
	case ev.Value != "":
		return " " + ev.Value
	default:
		return ""
	}
}
