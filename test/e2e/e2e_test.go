// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/k14s/difflib"
	"github.com/stretchr/testify/require"
)

func TestCompactOutput(t *testing.T) {
	for _, name := range []string{"app", "documents"} {
		t.Run(name, func(t *testing.T) {
			actualOutput := runYamlmarkup(t, testInputFiles{"../../examples/basics/" + name + ".yaml"}, "", yamlmarkupFlags{{"-o": "compact"}})
			assertEqual(t, readAsset(t, name+".events"), actualOutput)
		})
	}
}

func TestTextOutputWithComments(t *testing.T) {
	actualOutput := runYamlmarkup(t, testInputFiles{"../../examples/basics/app.yaml"}, "", yamlmarkupFlags{{"--comments": ""}})
	assertEqual(t, readAsset(t, "app.txt"), actualOutput)
}

func TestTreeOutput(t *testing.T) {
	actualOutput := runYamlmarkup(t, testInputFiles{"../../examples/basics/app.yaml"}, "", yamlmarkupFlags{{"-o": "tree"}})
	assertEqual(t, readAsset(t, "app.tree.json"), actualOutput)
}

func TestCheckStdInReading(t *testing.T) {
	actualOutput := runYamlmarkup(t, testInputFiles{"-"}, "../../examples/basics/app.yaml", yamlmarkupFlags{{"-o": "compact"}})
	assertEqual(t, readAsset(t, "app.events"), actualOutput)
}

func TestCheckDirectoryReading(t *testing.T) {
	tempOutputDir := filepath.Join(t.TempDir(), "out")
	flags := yamlmarkupFlags{{"-o": "compact"}, {"--dangerous-emptied-output-directory": tempOutputDir}}
	runYamlmarkup(t, testInputFiles{"../../examples/basics/"}, "", flags)

	for _, name := range []string{"app", "documents"} {
		actualOutput, err := os.ReadFile(filepath.Join(tempOutputDir, name+".yaml.events"))
		require.NoError(t, err)
		assertEqual(t, readAsset(t, name+".events"), string(actualOutput))
	}
}

func TestParseErrorsExitNonZero(t *testing.T) {
	badFile := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(badFile, []byte("a: 1\n  b: 2\n"), 0600))

	command := exec.Command("../../yamlmarkup", "-f", badFile)
	stdErr := bytes.NewBufferString("")
	command.Stderr = stdErr

	err := command.Run()
	require.Error(t, err)
	require.Contains(t, stdErr.String(), "yamlmarkup: Error: yaml: bad.yaml:2:3: Unexpected indentation of 'b:'")
}

func TestVersion(t *testing.T) {
	command := exec.Command("../../yamlmarkup", "version")
	output, err := command.Output()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(output), "yamlmarkup version "))
}

type testInputFiles []string

type yamlmarkupFlags []map[string]string

func runYamlmarkup(t *testing.T, files testInputFiles, stdinFileName string, flags yamlmarkupFlags) string {
	var fileFlags []string
	for _, file := range files {
		fileFlags = append(fileFlags, "-f", file)
	}

	var otherFlags []string
	for _, flagElement := range flags {
		for flagName, flagVal := range flagElement {
			if flagVal != "" {
				otherFlags = append(otherFlags, flagName, flagVal)
			} else {
				otherFlags = append(otherFlags, flagName)
			}
		}
	}

	command := exec.Command("../../yamlmarkup", append(fileFlags, otherFlags...)...)
	stdError := bytes.NewBufferString("")
	command.Stderr = stdError

	if stdinFileName != "" {
		fileToUseInStdIn, err := os.Open(stdinFileName)
		require.NoError(t, err)
		defer fileToUseInStdIn.Close()
		command.Stdin = fileToUseInStdIn
	}
	output, err := command.Output()
	require.NoError(t, err, stdError.String())

	return string(output)
}

func readAsset(t *testing.T, name string) string {
	bs, err := os.ReadFile(filepath.Join("assets", name))
	require.NoError(t, err)
	return string(bs)
}

func assertEqual(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("Not equal; diff expected...actual:\n%v\n",
			difflib.PPDiff(strings.Split(expected, "\n"), strings.Split(actual, "\n")))
	}
}
