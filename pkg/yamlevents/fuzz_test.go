// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevents_test

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"carvel.dev/yamlmarkup/pkg/markup"
	"carvel.dev/yamlmarkup/pkg/yamlevents"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fuzzedDoc is rendered both as block and as flow YAML.
type fuzzedDoc struct {
	Keys   []string
	Values []string
	Items  []string
}

func (d fuzzedDoc) block() string {
	var sb strings.Builder
	for i, key := range d.Keys {
		fmt.Fprintf(&sb, "%s: %s\n", key, d.Values[i])
	}
	sb.WriteString("items:\n")
	for _, item := range d.Items {
		fmt.Fprintf(&sb, "  - %s # %s\n", item, item)
	}
	sb.WriteString("nested:\n")
	for i, key := range d.Keys {
		fmt.Fprintf(&sb, "  %s:\n  - %s\n", key, d.Values[i])
	}
	return sb.String()
}

func (d fuzzedDoc) flow() string {
	var pairs, nested []string
	for i, key := range d.Keys {
		pairs = append(pairs, fmt.Sprintf("%s: %s", key, d.Values[i]))
		nested = append(nested, fmt.Sprintf("%s: [%s]", key, d.Values[i]))
	}
	return fmt.Sprintf("{%s, items: [%s], nested: {%s}}",
		strings.Join(pairs, ", "), strings.Join(d.Items, ", "), strings.Join(nested, ",\n  "))
}

func TestParserWithFuzzedDocuments(t *testing.T) {
	letters := fuzz.UnicodeRange{First: 'a', Last: 'z'}
	randSource := getRandSource(t)

	fuzzWord := func(prefix string) func(s *string, c fuzz.Continue) {
		return func(s *string, c fuzz.Continue) {
			letters.CustomStringFuzzFunc()(s, c)
			*s = prefix + *s
		}
	}
	fuzzKeys := fuzz.New().RandSource(randSource).NilChance(0).NumElements(1, 8).Funcs(fuzzWord("k"))
	fuzzValues := fuzz.New().RandSource(randSource).NilChance(0).NumElements(8, 8).Funcs(func(s *string, c fuzz.Continue) {
		switch c.Intn(3) {
		case 0:
			*s = strconv.Itoa(c.Int())
		case 1:
			*s = strconv.FormatBool(c.RandBool())
		default:
			fuzzWord("v")(s, c)
		}
	})
	fuzzItems := fuzz.New().RandSource(randSource).NilChance(0).NumElements(1, 5).Funcs(fuzzWord("i"))

	for i := 0; i < 100; i++ {
		var doc fuzzedDoc
		fuzzKeys.Fuzz(&doc.Keys)
		fuzzValues.Fuzz(&doc.Values)
		fuzzItems.Fuzz(&doc.Items)
		doc.Values = doc.Values[:len(doc.Keys)]

		t.Run(fmt.Sprintf("keys: %v, values: %v, items: %v", doc.Keys, doc.Values, doc.Items), func(t *testing.T) {
			blockEvents := parseBalanced(t, doc.block())
			flowEvents := parseBalanced(t, doc.flow())

			assertEqual(t, markup.CompactString(blockEvents), markup.CompactString(flowEvents))

			tags := openValues(blockEvents, markup.Tag)
			assert.Equal(t, append(append(append([]string{}, doc.Keys...), "items", "nested"), doc.Keys...), tags)
		})
	}
}

func parseBalanced(t *testing.T, data string) []markup.Event {
	recorder := &markup.Recorder{}
	balance := markup.NewBalanceChecker(recorder)

	err := yamlevents.NewParser(yamlevents.ParserOpts{}).ParseBytes([]byte(data), balance)
	require.NoError(t, err, "data:\n%s", data)
	require.NoError(t, balance.Err(), "data:\n%s", data)

	assertCollectionsTyped(t, recorder.Events)
	return recorder.Events
}

// assertCollectionsTyped checks that each MAP or LIST open directly follows
// exactly one TYPE.
func assertCollectionsTyped(t *testing.T, events []markup.Event) {
	for i, ev := range events {
		if ev.Phase != markup.Open || !ev.Kind.IsCollection() {
			continue
		}
		require.True(t, i >= 2, "collection opened without type")
		assert.Equal(t, markup.Type, events[i-1].Kind)
		assert.Equal(t, markup.Type, events[i-2].Kind)
		if i >= 4 {
			assert.False(t, events[i-3].Kind == markup.Type && events[i-4].Kind == markup.Type && events[i-4].Phase == markup.Open,
				"collection at %d announced by two types", i)
		}
	}
}

func getRandSource(t *testing.T) rand.Source {
	var seed int64
	if os.Getenv("YAMLMARKUP_SEED") == "" {
		seed = time.Now().UnixNano()
	} else {
		envSeed, err := strconv.Atoi(os.Getenv("YAMLMARKUP_SEED"))
		require.NoError(t, err)
		seed = int64(envSeed)
	}

	t.Logf("Seed used was: [%v]. To reproduce this test failure, re-run the test with `export YAMLMARKUP_SEED=%v`", seed, seed)
	return rand.NewSource(seed)
}
