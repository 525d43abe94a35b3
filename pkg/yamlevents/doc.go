// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlevents is a streaming YAML parser that reports document structure
as markup events instead of building a tree.

Input is split into entries (keys, scalars, markers, quoted strings, whole
flow collections), each classified by its leading indicator character.
Indentation of line starting entries decides which block collections close
and open; every other entry is handled by the dispatch arm of its indicator.
For

	name: Alice
	tags:
	  - admin

the handler receives

	+DOCUMENT
	=TYPE map
	+MAP
	+TAG name
	=TYPE string
	=TEXT "name"
	=TYPE string
	=TEXT "Alice"
	-TAG name
	+TAG tags
	...

Anchors, aliases and block scalars are recognized but do not produce events.
An alias still fills the position it appears in, so a key whose value is an
alias gets no implicit null, and a sequence item that is only an alias
leaves no trace in the stream: "- *x\n- b" yields a LIST holding the single
scalar "b". Consumers that count items (such as a tree builder) see one
fewer element than the source shows.
*/
package yamlevents
