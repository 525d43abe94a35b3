// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

// Conversion turns trees built from *Map values into plain Go values.
type Conversion struct {
	Object interface{}
}

// AsUnorderedStringMaps returns a copy of the object in which every *Map is
// a map[string]interface{}. Key order is lost; the input is left untouched.
func (c Conversion) AsUnorderedStringMaps() interface{} {
	return unordered(c.Object)
}

func unordered(object interface{}) interface{} {
	switch typed := object.(type) {
	case *Map:
		result := make(map[string]interface{}, typed.Len())
		typed.Iterate(func(k string, v interface{}) {
			result[k] = unordered(v)
		})
		return result

	case map[string]interface{}:
		result := make(map[string]interface{}, len(typed))
		for k, v := range typed {
			result[k] = unordered(v)
		}
		return result

	case []interface{}:
		result := make([]interface{}, len(typed))
		for i, item := range typed {
			result[i] = unordered(item)
		}
		return result

	default:
		return typed
	}
}
