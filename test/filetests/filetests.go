// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filetests houses a test harness for parsing YAML sources and asserting
the emitted events.
*/
package filetests

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carvel.dev/yamlmarkup/pkg/markup"
	"carvel.dev/yamlmarkup/pkg/yamlevents"
)

// MarshalableResult is a parse result that can be (likely) marshaled into a slice of bytes.
type MarshalableResult interface {
	AsBytes() ([]byte, error)
}

// EvaluateSource is the processing desired from a source document to the final result.
type EvaluateSource func(src string) (MarshalableResult, *TestErr)

// FileTests contain a suite of test cases, each described in a separate file, verifying the events parsed from YAML.
//
// Test cases:
// - are found within the directory at "PathToTests"
// - conventionally have a .evtest extension
// - top-half is the YAML source; bottom-half is the expected output; divided by `+++` and a blank line.
//
// Types of tests:
// - expected output starting with `ERR:` indicate that expected output is an error message
// - expected output starting with `OUTPUT POSITION:` indicate that expected output lists opened nodes with their positions
// - otherwise expected output is the compact event listing (see markup.CompactString)
//
// For example:
//
//	name: Alice
//	+++
//
//	+DOCUMENT
//	=TYPE map
//	...
type FileTests struct {
	PathToTests string
	EvalFunc    EvaluateSource
	ShowTrace   bool
	ParserOpts  yamlevents.ParserOpts
}

// Run runs each tests: enumerates each file within FileTests.PathToTests; splits and evaluates using FileTests.EvalFunc.
//
// If an error occurs and FileTests.ShowTrace is set, then the output includes the parser's entry trace.
func (f FileTests) Run(t *testing.T) {
	var files []string

	err := filepath.Walk(f.PathToTests, func(walkedPath string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		files = append(files, walkedPath)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to enumerate filetests: %s", err)
	}
	if len(files) == 0 {
		t.Fatalf("Expected to find filetests in %s", f.PathToTests)
	}

	if f.EvalFunc == nil {
		f.EvalFunc = f.DefaultEvalSource
	}

	for _, filePath := range files {
		t.Run(filePath, func(t *testing.T) {
			contents, err := os.ReadFile(filePath)
			if err != nil {
				t.Fatal(err)
			}

			pieces := strings.SplitN(string(contents), "\n+++\n\n", 2)

			if len(pieces) != 2 {
				t.Fatalf("expected file %s to include +++ separator", filePath)
			}
			expectedStr := pieces[1]

			result, testErr := f.EvalFunc(pieces[0])

			switch {
			case strings.HasPrefix(expectedStr, "ERR:"):
				if testErr == nil {
					err = fmt.Errorf("expected parse error, but did not receive it")
				} else {
					resultStr := TrimTrailingMultilineWhitespace(testErr.UserErr().Error())

					expectedStr = strings.TrimPrefix(expectedStr, "ERR:")
					expectedStr = strings.TrimPrefix(expectedStr, " ")
					expectedStr = TrimTrailingMultilineWhitespace(expectedStr)
					err = f.expectEquals(resultStr, expectedStr)
				}
			case strings.HasPrefix(expectedStr, "OUTPUT POSITION:"):
				if testErr == nil {
					expectedStr = strings.TrimPrefix(expectedStr, "OUTPUT POSITION:\n")
					err = f.expectEquals(f.asFilePositionsStr(result), TrimTrailingMultilineWhitespace(expectedStr))
				} else {
					err = testErr.TestErr()
				}
			default:
				if testErr == nil {
					resultStr, strErr := f.asString(result)
					if strErr != nil {
						err = strErr
					} else {
						err = f.expectEquals(resultStr, TrimTrailingMultilineWhitespace(expectedStr))
					}
				} else {
					err = testErr.TestErr()
				}
			}

			if err != nil {
				t.Fatalf("%s", err)
			}
		})
	}
}

func (f FileTests) asFilePositionsStr(result MarshalableResult) string {
	var lines []string
	for _, ev := range result.(*EventsResult).Events {
		if ev.Phase != markup.Open {
			continue
		}
		line := ev.Position.AsCompactString() + " " + ev.Kind.String()
		if ev.Value != "" {
			line += " " + ev.Value
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (f FileTests) asString(result MarshalableResult) (string, error) {
	resultBytes, err := result.AsBytes()
	if err != nil {
		return "", fmt.Errorf("marshal error: %v", err)
	}

	return string(resultBytes), nil
}

// EventsResult holds the events parsed from a single test source.
type EventsResult struct {
	Events []markup.Event
}

// AsBytes renders the events in compact form.
func (r *EventsResult) AsBytes() ([]byte, error) {
	return []byte(markup.CompactString(r.Events)), nil
}

// TestErr captures an error result from a single test.
type TestErr struct {
	realErr error
	testErr error
}

// NewTestErr creates a new TestErr
func NewTestErr(realErr, testErr error) *TestErr {
	return &TestErr{realErr, testErr}
}

// UserErr yields the error returned to the user
func (e TestErr) UserErr() error { return e.realErr }

// TestErr yields the error wrapped with helpful test context
func (e TestErr) TestErr() error { return e.testErr }

func (f FileTests) expectEquals(resultStr, expectedStr string) error {
	if resultStr != expectedStr {
		return fmt.Errorf("not equal\n\n### result %d chars:\n>>>%s<<<\n###expected %d chars:\n>>>%s<<<", len(resultStr), resultStr, len(expectedStr), expectedStr)
	}
	return nil
}

// DefaultEvalSource parses the YAML "src" and checks that the events balance.
func (f FileTests) DefaultEvalSource(src string) (MarshalableResult, *TestErr) {
	var trace bytes.Buffer
	opts := f.ParserOpts
	if opts.AssociatedName == "" {
		opts.AssociatedName = "stdin"
	}
	if f.ShowTrace {
		opts.DebugWriter = &trace
	}

	recorder := &markup.Recorder{}
	balance := markup.NewBalanceChecker(recorder)

	err := yamlevents.NewParser(opts).ParseBytes([]byte(src), balance)
	if err != nil {
		return nil, NewTestErr(err, fmt.Errorf("parse error: %v\ntrace:\n%s", err, trace.String()))
	}
	if err := balance.Err(); err != nil {
		return nil, NewTestErr(err, fmt.Errorf("unbalanced events: %v\nevents:\n%s", err, recorder.Compact()))
	}
	return &EventsResult{Events: recorder.Events}, nil
}

// TrimTrailingMultilineWhitespace returns a string with trailing whitespace trimmed from every line as well
// as trimmed trailing empty lines
func TrimTrailingMultilineWhitespace(s string) string {
	var trimmedLines []string
	for _, line := range strings.Split(s, "\n") {
		trimmedLine := strings.TrimRight(line, "\t ")
		trimmedLines = append(trimmedLines, trimmedLine)
	}
	multiline := strings.Join(trimmedLines, "\n")
	return strings.TrimRight(multiline, "\n")
}
