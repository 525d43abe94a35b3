// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for enumerating and loading data from various
file or file-like Source's and for writing output to filesystem files and
directories.

This allows the CLI to feed parsers logically chunked streams of data without
becoming entangled in the details of how to read or write data.

Files are parsed by the format their Type names. For example, File instances
that are TypeYAML are parsed with the "yaml" parser.
*/
package files
