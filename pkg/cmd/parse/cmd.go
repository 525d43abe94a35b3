// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"bytes"
	"fmt"
	"time"

	"carvel.dev/yamlmarkup/pkg/cmd/ui"
	"carvel.dev/yamlmarkup/pkg/files"
	"carvel.dev/yamlmarkup/pkg/markup"
	"carvel.dev/yamlmarkup/pkg/parsing"
	"github.com/spf13/cobra"

	// registers the "yaml" format
	_ "carvel.dev/yamlmarkup/pkg/yamlevents"
)

const defaultFormat = "yaml"

type Options struct {
	FileFlags   FileFlags
	OutputFlags OutputFlags

	Format     string
	RawEscapes bool
	Debug      bool
}

type Input struct {
	Files []*files.File
}

// FileResult holds the recorded event stream of one input file.
type FileResult struct {
	File     *files.File
	Recorder *markup.Recorder
}

type Output struct {
	Results []FileResult
	Err     error
}

func NewOptions() *Options {
	return &Options{}
}

func NewCmd(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "parse",
		Aliases: []string{"p"},
		Short:   "Parse YAML into markup events",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.FileFlags.Set(cmd)
	o.OutputFlags.Set(cmd)
	cmd.Flags().StringVar(&o.Format, "format", "", "Input format (default is based on file extension, falling back to yaml)")
	cmd.Flags().BoolVar(&o.RawEscapes, "raw-escapes", false, "Keep quoted scalars exactly as written")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *Options) Run() error {
	ui := ui.NewTTY(o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	if o.OutputFlags.Comments && o.OutputFlags.typeOrDefault() != OutputTypeText {
		ui.Warnf("Warning: --comments only applies to text output\n")
	}

	filesToProcess, err := o.FileFlags.AsFiles()
	if err != nil {
		return err
	}
	if len(filesToProcess) == 0 {
		return fmt.Errorf("Expected at least one file (use -f to specify files)")
	}

	out := o.RunWithFiles(Input{Files: filesToProcess}, ui)
	if out.Err != nil {
		return out.Err
	}

	return o.OutputFlags.Write(out, ui)
}

// RunWithFiles parses every file in order and stops at the first error.
func (o *Options) RunWithFiles(in Input, ui ui.UI) Output {
	var results []FileResult

	for _, file := range in.Files {
		result, err := o.parseFile(file, ui)
		if err != nil {
			return Output{Err: err}
		}
		results = append(results, result)
	}

	return Output{Results: results}
}

func (o *Options) parseFile(file *files.File, ui ui.UI) (FileResult, error) {
	format := o.Format
	if format == "" {
		format = file.Format()
	}
	if format == "" {
		format = defaultFormat
	}

	parser, err := parsing.LookupWithOpts(format, parsing.Opts{
		AssociatedName: file.RelativePath(),
		RawEscapes:     o.RawEscapes,
		DebugWriter:    ui.DebugWriter(),
	})
	if err != nil {
		return FileResult{}, err
	}

	data, err := file.Bytes()
	if err != nil {
		return FileResult{}, fmt.Errorf("Reading %s: %s", file.Description(), err)
	}

	ui.Debugf("### %s (%s)\n", file.Description(), format)

	recorder := &markup.Recorder{}
	balance := markup.NewBalanceChecker(recorder)

	err = parser.Parse(bytes.NewReader(data), balance)
	if err != nil {
		return FileResult{}, err
	}
	err = balance.Err()
	if err != nil {
		return FileResult{}, fmt.Errorf("Checking events of %s: %s", file.Description(), err)
	}

	return FileResult{File: file, Recorder: recorder}, nil
}
