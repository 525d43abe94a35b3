// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package markuptree builds plain Go values from a markup event stream.

Mappings become *orderedmap.Map, sequences []interface{}, and scalars are
converted according to their TYPE:

	string  -> string
	bool    -> bool
	int     -> int64
	float   -> float64
	null    -> nil
	binary  -> []byte (base64 decoded)

Any other type name (for example one expanded from a %TAG handle) keeps the
scalar text as a string.
*/
package markuptree
