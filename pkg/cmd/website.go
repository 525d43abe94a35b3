// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"encoding/json"
	"io"

	"carvel.dev/yamlmarkup/pkg/cmd/parse"
	"carvel.dev/yamlmarkup/pkg/cmd/ui"
	"carvel.dev/yamlmarkup/pkg/files"
	"carvel.dev/yamlmarkup/pkg/markup"
	"carvel.dev/yamlmarkup/pkg/website"
	"github.com/spf13/cobra"
)

const websiteInputName = "playground.yaml"

type WebsiteOptions struct {
	ListenAddr      string
	RedirectToHTTPS bool
	RawEscapes      bool
}

type websiteErrors struct {
	Errors string `json:"errors"`
}

func NewWebsiteOptions() *WebsiteOptions {
	return &WebsiteOptions{}
}

func NewWebsiteCmd(o *WebsiteOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "website",
		Short: "Starts website HTTP server",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVar(&o.ListenAddr, "listen-addr", "localhost:8080", "Listen address")
	cmd.Flags().BoolVar(&o.RedirectToHTTPS, "redirect-to-https", true, "Redirect to HTTPs address")
	cmd.Flags().BoolVar(&o.RawEscapes, "raw-escapes", false, "Keep quoted scalars exactly as written")
	return cmd
}

func (o *WebsiteOptions) Server() *website.Server {
	opts := website.ServerOpts{
		ListenAddr:      o.ListenAddr,
		RedirectToHTTPS: o.RedirectToHTTPS,
		ParseFunc:       o.parse,
		ErrorFunc:       o.parseErr,
	}
	return website.NewServer(opts)
}

func (o *WebsiteOptions) Run() error {
	return o.Server().Run()
}

func (o *WebsiteOptions) parse(data []byte) ([]byte, error) {
	file, err := files.NewFileFromSource(files.NewBytesSource(websiteInputName, data))
	if err != nil {
		return nil, err
	}

	parseOpts := parse.NewOptions()
	parseOpts.RawEscapes = o.RawEscapes

	out := parseOpts.RunWithFiles(parse.Input{Files: []*files.File{file}}, ui.NewCustomWriterTTY(false, io.Discard, io.Discard))
	if out.Err != nil {
		return nil, out.Err
	}

	buf := new(bytes.Buffer)
	err = markup.EncodeJSON(buf, out.Results[0].Recorder.Events)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (*WebsiteOptions) parseErr(err error) ([]byte, error) {
	return json.Marshal(websiteErrors{Errors: err.Error()})
}
