// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "spvbuild.toml")
	require.NoError(t, os.WriteFile(fn, nil, 0o644))

	ok, err := FileExists(fn)
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = FileExists(dir)
	assert.NoError(t, err)
	assert.False(t, ok)
	ok, err = FileExists(filepath.Join(dir, "missing"))
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = DirExists(dir)
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = DirExists(fn)
	assert.NoError(t, err)
	assert.False(t, ok)
	ok, err = DirExists(filepath.Join(dir, "missing"))
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFindFilesOnPaths(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "configs")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "spvbuild.toml"), nil, 0o644))

	res := FindFilesOnPaths([]string{dir, sub}, "spvbuild.toml")
	require.Len(t, res, 1)
	assert.Equal(t, "spvbuild.toml", filepath.Base(res[0]))
	assert.True(t, filepath.IsAbs(res[0]))
	assert.Nil(t, FindFilesOnPaths([]string{dir}, "spvbuild.toml"))
}
