// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package markuptree

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"

	"carvel.dev/yamlmarkup/pkg/markup"
)

func convertScalar(typeName, text string) (interface{}, error) {
	switch typeName {
	case markup.TypeNull:
		return nil, nil

	case markup.TypeBool:
		val, err := strconv.ParseBool(text)
		if err != nil {
			return nil, fmt.Errorf("Expected bool value, but was '%s'", text)
		}
		return val, nil

	case markup.TypeInt:
		val, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("Expected int value, but was '%s'", text)
		}
		return val, nil

	case markup.TypeFloat:
		return parseFloat(text)

	case markup.TypeBinary:
		val, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(text), ""))
		if err != nil {
			return nil, fmt.Errorf("Expected base64 encoded binary value: %s", err)
		}
		return val, nil

	default:
		return text, nil
	}
}

func parseFloat(text string) (interface{}, error) {
	switch strings.ToLower(text) {
	case ".inf", "+.inf":
		return math.Inf(1), nil
	case "-.inf":
		return math.Inf(-1), nil
	case ".nan":
		return math.NaN(), nil
	}
	val, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("Expected float value, but was '%s'", text)
	}
	return val, nil
}
