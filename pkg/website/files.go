// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package website

import (
	"embed"
	"path"
	"sort"
	"strings"
)

//go:embed assets
var assets embed.FS

type File struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type Example struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Files       []File `json:"files,omitempty"`
}

type exampleSet struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Description string    `json:"description"`
	Examples    []Example `json:"examples"`
}

// Files holds the static assets served by the playground, keyed by their path
// relative to the assets directory (eg "js/playground.js").
var Files = mustLoadFiles("assets")

type exampleCatalog []exampleSet

var exampleSets = exampleCatalog{
	{
		ID:          "basics",
		DisplayName: "Basics",
		Description: "Mappings, sequences, types and documents",
		Examples:    mustLoadExamples("examples/"),
	},
}

func mustLoadFiles(dir string) map[string]File {
	result := map[string]File{}

	entries, err := assets.ReadDir(dir)
	if err != nil {
		panic(err)
	}
	for _, entry := range entries {
		fullPath := path.Join(dir, entry.Name())
		if entry.IsDir() {
			for name, file := range mustLoadFiles(fullPath) {
				result[name] = file
			}
			continue
		}
		content, err := assets.ReadFile(fullPath)
		if err != nil {
			panic(err)
		}
		name := strings.TrimPrefix(fullPath, "assets/")
		result[name] = File{Name: name, Content: string(content)}
	}
	return result
}

func mustLoadExamples(prefix string) []Example {
	var examples []Example
	for name, file := range Files {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		id := strings.TrimSuffix(path.Base(name), path.Ext(name))
		examples = append(examples, Example{
			ID:          id,
			DisplayName: strings.ToUpper(id[:1]) + id[1:],
			Files:       []File{{Name: path.Base(name), Content: file.Content}},
		})
	}
	sort.Slice(examples, func(i, j int) bool { return examples[i].ID < examples[j].ID })
	return examples
}

// listing describes every set without file contents.
func (c exampleCatalog) listing() []exampleSet {
	result := []exampleSet{}
	for _, set := range c {
		slim := set
		slim.Examples = []Example{}
		for _, example := range set.Examples {
			slim.Examples = append(slim.Examples, Example{ID: example.ID, DisplayName: example.DisplayName})
		}
		result = append(result, slim)
	}
	return result
}

func (c exampleCatalog) find(id string) (Example, bool) {
	for _, set := range c {
		for _, example := range set.Examples {
			if example.ID == id {
				return example, true
			}
		}
	}
	return Example{}, false
}
