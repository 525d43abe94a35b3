// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"carvel.dev/yamlmarkup/pkg/markup"
)

var shorthandTypes = map[string]string{
	"!str":    markup.TypeString,
	"!bool":   markup.TypeBool,
	"!int":    markup.TypeInt,
	"!float":  markup.TypeFloat,
	"!null":   markup.TypeNull,
	"!seq":    markup.TypeList,
	"!set":    markup.TypeSet,
	"!oset":   markup.TypeOrderedSet,
	"!map":    markup.TypeMap,
	"!omap":   markup.TypeOrderedMap,
	"!binary": markup.TypeBinary,
}

const coreSchemaPrefix = "tag:yaml.org,2002:"

// autoType infers the type of a bare scalar without a declared type.
func autoType(value string) string {
	switch value {
	case "":
		return markup.TypeNull
	case "true", "True", "TRUE", "false", "False", "FALSE":
		return markup.TypeBool
	default:
		return markup.TypeString
	}
}

// unquote returns the content of a quoted scalar, folding line breaks and
// (for double quotes, unless raw) translating escape sequences.
func unquote(quoted string, raw bool) (string, error) {
	quote := quoted[0]
	inner := quoted[1 : len(quoted)-1]
	if raw {
		return inner, nil
	}

	var out strings.Builder
	for i := 0; i < len(inner); {
		switch ch := inner[i]; {
		case quote == '\'' && ch == '\'' && i+1 < len(inner) && inner[i+1] == '\'':
			out.WriteByte('\'')
			i += 2

		case quote == '"' && ch == '\\':
			if i+1 < len(inner) && inner[i+1] == '\n' {
				i = skipIndent(inner, i+2)
				continue
			}
			n, err := translateEscape(inner[i:], &out)
			if err != nil {
				return "", err
			}
			i += n

		case ch == '\n':
			trimTrailingBlanks(&out)
			breaks := 0
			for i < len(inner) && (inner[i] == '\n' || inner[i] == ' ' || inner[i] == '\t') {
				if inner[i] == '\n' {
					breaks++
				}
				i++
			}
			if breaks == 1 {
				out.WriteByte(' ')
			} else {
				out.WriteString(strings.Repeat("\n", breaks-1))
			}

		default:
			out.WriteByte(ch)
			i++
		}
	}
	return out.String(), nil
}

var simpleEscapes = map[byte]string{
	'0':  "\x00",
	'a':  "\a",
	'b':  "\b",
	't':  "\t",
	'\t': "\t",
	'n':  "\n",
	'v':  "\v",
	'f':  "\f",
	'r':  "\r",
	'e':  "\x1b",
	' ':  " ",
	'"':  "\"",
	'/':  "/",
	'\\': "\\",
	'N':  "\u0085",
	'_':  "\u00a0",
	'L':  "\u2028",
	'P':  "\u2029",
}

var hexEscapeLengths = map[byte]int{'x': 2, 'u': 4, 'U': 8}

// translateEscape writes the character denoted by the escape sequence at the
// start of str and returns how many bytes the sequence spans.
func translateEscape(str string, out *strings.Builder) (int, error) {
	if len(str) < 2 {
		return 0, fmt.Errorf("Expected escaped character after '\\'")
	}
	code := str[1]
	if replacement, found := simpleEscapes[code]; found {
		out.WriteString(replacement)
		return 2, nil
	}

	length, found := hexEscapeLengths[code]
	if !found {
		r, _ := utf8.DecodeRuneInString(str[1:])
		return 0, fmt.Errorf("Unknown escape sequence '\\%c'", r)
	}
	if len(str) < 2+length {
		return 0, fmt.Errorf("Expected %d hex digits after '\\%c'", length, code)
	}
	value, err := strconv.ParseUint(str[2:2+length], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("Expected %d hex digits after '\\%c', but was '%s'", length, code, str[2:2+length])
	}
	if !utf8.ValidRune(rune(value)) {
		return 0, fmt.Errorf("Escape sequence '%s' is not a valid character", str[:2+length])
	}
	out.WriteRune(rune(value))
	return 2 + length, nil
}

func skipIndent(str string, i int) int {
	for i < len(str) && (str[i] == ' ' || str[i] == '\t') {
		i++
	}
	return i
}

func trimTrailingBlanks(out *strings.Builder) {
	str := out.String()
	trimmed := strings.TrimRight(str, " \t")
	if len(trimmed) != len(str) {
		out.Reset()
		out.WriteString(trimmed)
	}
}

// isQuotedKey reports whether a quoted entry is a mapping key ("name": ...).
func isQuotedKey(text string) bool {
	n := len(text)
	return n >= 3 && text[n-1] == ':' && text[n-2] == text[0]
}
