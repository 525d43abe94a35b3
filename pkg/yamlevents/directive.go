// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-version"
)

const supportedYAMLRange = ">= 1.0, < 2.0"

var supportedYAMLVersions = mustConstraint(supportedYAMLRange)

func mustConstraint(str string) version.Constraints {
	c, err := version.NewConstraint(str)
	if err != nil {
		panic(fmt.Sprintf("Parsing version constraint '%s': %s", str, err))
	}
	return c
}

// directives are the %YAML and %TAG declarations in effect for one document.
type directives struct {
	version *version.Version
	handles map[string]string
}

func (d *directives) reset() {
	d.version = nil
	d.handles = nil
}

// apply interprets a directive line without its leading '%'.
func (d *directives) apply(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return fmt.Errorf("Expected directive name after '%%'")
	}

	switch fields[0] {
	case "YAML":
		if len(fields) != 2 {
			return fmt.Errorf("Expected %%YAML directive to have exactly one version, but was '%s'", line)
		}
		if d.version != nil {
			return fmt.Errorf("Expected at most one %%YAML directive per document")
		}
		ver, err := version.NewVersion(fields[1])
		if err != nil {
			return fmt.Errorf("Parsing YAML version '%s': %s", fields[1], err)
		}
		if !supportedYAMLVersions.Check(ver) {
			return fmt.Errorf("Unsupported YAML version '%s' (supported: %s)", fields[1], supportedYAMLRange)
		}
		d.version = ver

	case "TAG":
		if len(fields) != 3 {
			return fmt.Errorf("Expected %%TAG directive to have a handle and a prefix, but was '%s'", line)
		}
		handle := fields[1]
		if len(handle) < 1 || handle[0] != '!' || handle[len(handle)-1] != '!' {
			return fmt.Errorf("Expected tag handle to start and end with '!', but was '%s'", handle)
		}
		if _, found := d.handles[handle]; found {
			return fmt.Errorf("Expected tag handle '%s' to be declared once per document", handle)
		}
		if d.handles == nil {
			d.handles = map[string]string{}
		}
		d.handles[handle] = fields[2]

	default:
		// reserved directives are ignored
	}
	return nil
}

// resolveType turns the text of a TYPE entry (without the first '!') into a
// type name. Verbatim tags are unwrapped and declared handles expand before
// core shorthands are mapped onto canonical names.
func (d *directives) resolveType(tag string) string {
	if strings.HasPrefix(tag, "<") && strings.HasSuffix(tag, ">") {
		verbatim := tag[1 : len(tag)-1]
		if strings.HasPrefix(verbatim, coreSchemaPrefix) {
			if name, found := shorthandTypes["!"+strings.TrimPrefix(verbatim, coreSchemaPrefix)]; found {
				return name
			}
		}
		return verbatim
	}

	full := "!" + tag
	if prefix, found := d.handles[tagHandle(full)]; found {
		return prefix + full[len(tagHandle(full)):]
	}
	if name, found := shorthandTypes[tag]; found {
		return name
	}
	return tag
}

// tagHandle is the handle a tag is written with: "!!", a named "!x!" or the
// primary "!".
func tagHandle(full string) string {
	if strings.HasPrefix(full, "!!") {
		return "!!"
	}
	if idx := strings.Index(full[1:], "!"); idx >= 0 {
		return full[:idx+2]
	}
	return "!"
}
