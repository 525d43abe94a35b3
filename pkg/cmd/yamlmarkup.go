// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/yamlmarkup/pkg/cmd/parse"
	"carvel.dev/yamlmarkup/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type YamlmarkupOptions struct{}

func NewDefaultYamlmarkupOptions() *YamlmarkupOptions {
	return &YamlmarkupOptions{}
}

func NewDefaultYamlmarkupCmd() *cobra.Command {
	return NewYamlmarkupCmd(NewDefaultYamlmarkupOptions())
}

func NewYamlmarkupCmd(o *YamlmarkupOptions) *cobra.Command {
	cmd := parse.NewCmd(parse.NewOptions())

	cmd.Use = "yamlmarkup"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "yamlmarkup turns YAML into a stream of markup events"
	cmd.Long = `yamlmarkup turns YAML into a stream of markup events.

Every document becomes DOCUMENT, MAP, LIST, TAG, TYPE and TEXT events.
Use --output to choose between the text outline, compact dump, JSON, TOML
or a JSON rendering of the built documents.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(parse.NewCmd(parse.NewOptions())) // explicit form of the default command
	cmd.AddCommand(NewWebsiteCmd(NewWebsiteOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
