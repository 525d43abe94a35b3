// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package markup

// Canonical type names carried by TYPE events.
const (
	TypeString     = "string"
	TypeBool       = "bool"
	TypeInt        = "int"
	TypeFloat      = "float"
	TypeNull       = "null"
	TypeList       = "list"
	TypeSet        = "set"
	TypeOrderedSet = "oset"
	TypeMap        = "map"
	TypeOrderedMap = "omap"
	TypeBinary     = "binary"
)

// CollectionType returns the generic type name announced before a MAP or LIST
// that was not given an explicit type.
func CollectionType(kind NodeKind) string {
	switch kind {
	case Map:
		return TypeMap
	case List:
		return TypeList
	default:
		panic("Expected MAP or LIST, but was " + kind.String())
	}
}
