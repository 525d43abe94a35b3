// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package markup defines the generic event model that format parsers produce:
an ordered stream of (Phase, NodeKind, Value) triples describing nested maps,
lists, named tags, type annotations and text.

A parser never builds a tree of its own. Consumers implement Handler and
receive each Event synchronously, in document order. For well-formed input the
stream is bracket-balanced: every Open is followed by exactly one Close of the
same NodeKind, properly nested. BalanceChecker verifies that property for any
stream.

	DOCUMENT
	  TYPE map
	  MAP
	    TAG name
	      TYPE string / TEXT "name"      (the key's own identity)
	      TYPE string / TEXT "Alice"     (the key's value)
	    TAG
	  MAP
	DOCUMENT

Recorder keeps events in memory, Printer renders them for humans, and
EncodeJSON / EncodeTOML serialize them for other tools.
*/
package markup
