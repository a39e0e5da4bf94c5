// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"cogentcore.org/spvbuild/base/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestMajorMinor(t *testing.T) {
	old := logx.UserLevel
	defer func() { logx.UserLevel = old }()

	logx.UserLevel = slog.LevelWarn
	assert.Nil(t, Major().Commands)
	assert.Nil(t, Minor().Commands)
	assert.NotNil(t, Major().Errors)

	logx.UserLevel = slog.LevelInfo
	assert.NotNil(t, Major().Commands)
	assert.Nil(t, Minor().Commands)

	logx.UserLevel = slog.LevelDebug
	assert.NotNil(t, Major().Commands)
	assert.NotNil(t, Minor().Commands)
}

func TestCapture(t *testing.T) {
	skipWindows(t)
	var cmds bytes.Buffer
	xc := &Config{Commands: &cmds}
	res, err := xc.Capture(context.Background(), "sh", "-c", "echo out; echo err >&2; exit 3")
	require.NoError(t, err)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
	assert.True(t, res.Ran)
	assert.Equal(t, 3, res.Code)
	assert.Equal(t, "exit status 3", res.String())
	assert.Contains(t, cmds.String(), "echo out")
}

func TestCaptureNoExpansion(t *testing.T) {
	skipWindows(t)
	t.Setenv("HOME", "/nonexistent-home")
	res, err := (&Config{}).Capture(context.Background(), "echo", "a$HOME.vert", "$UNSET_SPVBUILD_VAR")
	require.NoError(t, err)
	assert.Equal(t, "a$HOME.vert $UNSET_SPVBUILD_VAR\n", res.Stdout)
}

func TestCaptureNotFound(t *testing.T) {
	res, err := (&Config{}).Capture(context.Background(), "spvbuild-no-such-tool")
	assert.Error(t, err)
	require.NotNil(t, res)
	assert.False(t, res.Ran)
	assert.Equal(t, -1, res.Code)
	assert.Equal(t, "not run", res.String())
}

func TestArgs(t *testing.T) {
	args, err := Args(`-O --target-env=vulkan1.2 -DNAME="a b"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"-O", "--target-env=vulkan1.2", "-DNAME=a b"}, args)

	args, err = Args("")
	require.NoError(t, err)
	assert.Empty(t, args)

	_, err = Args(`"unterminated`)
	assert.Error(t, err)
}

func TestRemoveAllMkdir(t *testing.T) {
	var cmds, errs bytes.Buffer
	xc := &Config{Commands: &cmds, Errors: &errs}
	dir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, xc.Mkdir(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale"), []byte("x"), 0o644))
	require.NoError(t, xc.RemoveAll(dir))
	assert.NoDirExists(t, dir)
	assert.Contains(t, cmds.String(), "mkdir")
	assert.Contains(t, cmds.String(), "rm -rf")

	assert.Error(t, xc.Mkdir(filepath.Join(dir, "a", "b")))
	assert.NotEmpty(t, errs.String())
}
