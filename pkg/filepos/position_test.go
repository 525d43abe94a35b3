// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos_test

import (
	"testing"

	"carvel.dev/yamlmarkup/pkg/filepos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionCompactString(t *testing.T) {
	t.Run("line only", func(t *testing.T) {
		assert.Equal(t, "3", filepos.NewPosition(3).AsCompactString())
	})
	t.Run("line and column within a file", func(t *testing.T) {
		pos := filepos.NewPositionWithColumn(3, 7)
		pos.SetFile("config.yml")
		assert.Equal(t, "config.yml:3:7", pos.AsCompactString())
		assert.Equal(t, "line config.yml:3:7", pos.AsString())
	})
	t.Run("unknown", func(t *testing.T) {
		assert.Equal(t, "?", filepos.NewUnknownPosition().AsCompactString())
		assert.Equal(t, "config.yml:?", filepos.NewUnknownPositionInFile("config.yml").AsCompactString())
	})
}

func TestPositionPanicsOnInvalidLines(t *testing.T) {
	assert.Panics(t, func() { filepos.NewPosition(0) })
	assert.Panics(t, func() { filepos.NewUnknownPosition().LineNum() })
}

func TestPositionDeepCopy(t *testing.T) {
	pos := filepos.NewPositionWithColumn(2, 4)
	pos.SetFile("a.yml")
	pos.SetLine("key: value")

	copied := pos.DeepCopy()
	require.Equal(t, pos, copied)
	require.NotSame(t, pos, copied)
	assert.Nil(t, (*filepos.Position)(nil).DeepCopy())
}

func TestPositionBefore(t *testing.T) {
	assert.True(t, filepos.NewPositionWithColumn(1, 9).Before(filepos.NewPositionWithColumn(2, 1)))
	assert.True(t, filepos.NewPositionWithColumn(2, 1).Before(filepos.NewPositionWithColumn(2, 3)))
	assert.False(t, filepos.NewPositionWithColumn(2, 3).Before(filepos.NewPositionWithColumn(2, 3)))
	assert.False(t, filepos.NewUnknownPosition().Before(filepos.NewPosition(1)))
}
