// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"carvel.dev/yamlmarkup/pkg/cmd/ui"
	"carvel.dev/yamlmarkup/pkg/files"
	"carvel.dev/yamlmarkup/pkg/markup"
	"carvel.dev/yamlmarkup/pkg/markuptree"
	"github.com/spf13/cobra"
)

const (
	OutputTypeText    = "text"
	OutputTypeCompact = "compact"
	OutputTypeJSON    = "json"
	OutputTypeTOML    = "toml"
	OutputTypeTree    = "tree"
)

var outputTypeExts = map[string]string{
	OutputTypeText:    ".txt",
	OutputTypeCompact: ".events",
	OutputTypeJSON:    ".json",
	OutputTypeTOML:    ".toml",
	OutputTypeTree:    ".json",
}

type OutputFlags struct {
	Type     string
	Comments bool

	// Directory receives one rendered file per input instead of stdout.
	Directory string
}

func (s *OutputFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.Type, "output", "o", OutputTypeText,
		"Output type (text, compact, json, toml, tree)")
	cmd.Flags().BoolVar(&s.Comments, "comments", false, "Include comments in text output")
	cmd.Flags().StringVar(&s.Directory, "dangerous-emptied-output-directory", "",
		"Delete given directory, and then create it with output files")
}

// Write renders every result either to stdout or into the output directory.
func (s *OutputFlags) Write(out Output, ui ui.UI) error {
	if s.Directory != "" {
		var outputFiles []files.OutputFile
		for _, result := range out.Results {
			bs, err := s.Render(result)
			if err != nil {
				return err
			}
			outputFiles = append(outputFiles, files.NewOutputFile(s.outputPath(result), bs))
		}
		return files.NewOutputDirectory(s.Directory, outputFiles, ui).Write()
	}

	for _, result := range out.Results {
		bs, err := s.Render(result)
		if err != nil {
			return err
		}
		ui.Printf("%s", bs)
	}
	return nil
}

// Render produces the bytes of a single result in the configured output type.
func (s *OutputFlags) Render(result FileResult) ([]byte, error) {
	buf := new(bytes.Buffer)
	events := result.Recorder.Events

	switch s.typeOrDefault() {
	case OutputTypeText:
		printer := markup.NewPrinterWithOpts(buf, markup.PrinterOpts{Comments: s.Comments})
		result.Recorder.Replay(printer)

	case OutputTypeCompact:
		if len(events) > 0 {
			buf.WriteString(markup.CompactString(events) + "\n")
		}

	case OutputTypeJSON:
		err := markup.EncodeJSON(buf, events)
		if err != nil {
			return nil, err
		}

	case OutputTypeTOML:
		err := markup.EncodeTOML(buf, events)
		if err != nil {
			return nil, err
		}

	case OutputTypeTree:
		docs, err := markuptree.Build(events)
		if err != nil {
			return nil, fmt.Errorf("Building documents of %s: %s", result.File.Description(), err)
		}
		if docs == nil {
			docs = []interface{}{}
		}
		bs, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("Encoding documents as JSON: %s", err)
		}
		buf.Write(bs)
		buf.WriteString("\n")

	default:
		return nil, fmt.Errorf("Unknown output type '%s' (known types: %s)", s.Type, strings.Join(s.knownTypes(), ", "))
	}

	return buf.Bytes(), nil
}

func (s *OutputFlags) typeOrDefault() string {
	if s.Type == "" {
		return OutputTypeText
	}
	return s.Type
}

func (s *OutputFlags) outputPath(result FileResult) string {
	return result.File.RelativePath() + outputTypeExts[s.typeOrDefault()]
}

func (*OutputFlags) knownTypes() []string {
	return []string{OutputTypeText, OutputTypeCompact, OutputTypeJSON, OutputTypeTOML, OutputTypeTree}
}
