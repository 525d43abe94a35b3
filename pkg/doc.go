// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
yamlmarkup.

The codebase is organized into layers. Each package keeps a narrow
responsibility and depends on the others only as far as it has to.

In the inventory, below, individual packages are named alongside their coupling
with the other packages in the codebase.

	(# of dependents) => <package name> => (# of dependencies)

Where "# of dependents" is the count of packages that import the named package
and "# of dependencies" is the count of packages that this named package
imports.

# Entry Point

yamlmarkup is built into two executable formats:

	./cmd/yamlmarkup                  // a command-line tool
	./cmd/yamlmarkup-lambda-website   // an AWS Lambda function

Both can serve a small website that parses YAML pasted into the browser.

	(1) => pkg/website => (0)

# Commands

The root command parses files and renders their events. "parse" is the same
command under its own name; "website" and "version" round out the set.

	(1) => pkg/cmd => (7)
	(1) => pkg/cmd/parse => (6)

# Parsing

Parsers are looked up by format name through a registry. Each parser turns a
byte stream into a stream of markup events delivered to a handler.

	(3) => pkg/parsing => (2)
	(1) => pkg/yamlevents => (3)

The yaml parser is a line-oriented state machine: a cursor splits the input
into physical lines, an assembler cuts each line into scalars and indicators,
and a dispatcher routes every piece through the engine that tracks open
documents, collections, and keys.

# Events

Events are the vocabulary shared by every parser and consumer. Each carries a
phase (open or close), a kind, an optional value, and the position it came
from.

	(5) => pkg/markup => (1)
	(3) => pkg/filepos => (0)

Consumers of events include printers, encoders, a balance checker, a recorder,
and a builder that assembles plain Go values:

	(1) => pkg/markuptree => (2)
	(1) => pkg/orderedmap => (0)

# Utilities

The remainder are domain-agnostic utilities.

	(2) => pkg/files => (0)
	(2) => pkg/cmd/ui => (0)
	(1) => pkg/version => (0)

# Dependencies

Each package's dependencies on other packages within this module are as follows
(if a package is not listed, it has no dependencies on other packages within
this module):

	pkg/cmd:
	- pkg/cmd/parse
	- pkg/cmd/ui
	- pkg/files
	- pkg/markup
	- pkg/parsing
	- pkg/version
	- pkg/website
	pkg/cmd/parse:
	- pkg/cmd/ui
	- pkg/files
	- pkg/markup
	- pkg/markuptree
	- pkg/parsing
	- pkg/yamlevents
	pkg/yamlevents:
	- pkg/filepos
	- pkg/markup
	- pkg/parsing
	pkg/parsing:
	- pkg/filepos
	- pkg/markup
	pkg/markuptree:
	- pkg/markup
	- pkg/orderedmap
	pkg/markup:
	- pkg/filepos
*/
package pkg
