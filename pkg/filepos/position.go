// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos

import (
	"fmt"
)

type Position struct {
	lineNum *int // 1 based
	column  int  // 1 based, 0 when unknown
	file    string
	line    string
	known   bool
}

func NewPosition(lineNum int) *Position {
	if lineNum <= 0 {
		panic("Lines are 1 based")
	}
	return &Position{lineNum: &lineNum, known: true}
}

// NewPositionWithColumn returns the Position of column "column" on line "lineNum"
func NewPositionWithColumn(lineNum, column int) *Position {
	if column < 0 {
		panic("Columns are 1 based")
	}
	p := NewPosition(lineNum)
	p.column = column
	return p
}

// NewPositionInFile returns the Position of line "lineNum" within the file "file"
func NewPositionInFile(lineNum int, file string) *Position {
	p := NewPosition(lineNum)
	p.file = file
	return p
}

// NewUnknownPosition is equivalent of zero value *Position
func NewUnknownPosition() *Position {
	return &Position{}
}

// NewUnknownPositionInFile produces a Position of a known file at an unknown line.
func NewUnknownPositionInFile(file string) *Position {
	return &Position{file: file}
}

func (p *Position) SetFile(file string) { p.file = file }

func (p *Position) SetLine(line string) { p.line = line }

func (p *Position) IsKnown() bool { return p != nil && p.known }

func (p *Position) LineNum() int {
	if !p.IsKnown() {
		panic("Position is unknown")
	}
	if p.lineNum == nil {
		panic("Position was not properly initialized")
	}
	return *p.lineNum
}

// Column is 0 if the column within the line was not recorded.
func (p *Position) Column() int {
	if p == nil {
		return 0
	}
	return p.column
}

func (p *Position) GetLine() string {
	if p == nil {
		return ""
	}
	return p.line
}

func (p *Position) GetFile() string {
	if p == nil {
		return ""
	}
	return p.file
}

func (p *Position) AsString() string {
	return "line " + p.AsCompactString()
}

func (p *Position) AsCompactString() string {
	filePrefix := p.GetFile()
	if len(filePrefix) > 0 {
		filePrefix += ":"
	}
	if !p.IsKnown() {
		return fmt.Sprintf("%s?", filePrefix)
	}
	if p.column > 0 {
		return fmt.Sprintf("%s%d:%d", filePrefix, p.LineNum(), p.column)
	}
	return fmt.Sprintf("%s%d", filePrefix, p.LineNum())
}

func (p *Position) AsIntString() string {
	if p.IsKnown() {
		return fmt.Sprintf("%d", p.LineNum())
	}
	return "?"
}

func (p *Position) As4DigitString() string {
	if p.IsKnown() {
		return fmt.Sprintf("%4d", p.LineNum())
	}
	return "????"
}

func (p *Position) DeepCopy() *Position {
	if p == nil {
		return nil
	}
	newPos := &Position{file: p.file, known: p.known, line: p.line, column: p.column}
	if p.lineNum != nil {
		lineVal := *p.lineNum
		newPos.lineNum = &lineVal
	}
	return newPos
}

// Before reports whether this position comes strictly earlier than other within the same source.
func (p *Position) Before(other *Position) bool {
	if !p.IsKnown() || !other.IsKnown() {
		return false
	}
	if p.LineNum() != other.LineNum() {
		return p.LineNum() < other.LineNum()
	}
	return p.column < other.column
}
