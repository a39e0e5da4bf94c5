// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"io"
	"log/slog"
	"os"

	"cogentcore.org/spvbuild/base/logx"
)

// Config contains the configuration information that
// controls the behavior of exec. A default version of it
// can be easily constructed using [Major] or [Minor].
type Config struct {

	// Stdin is the reader to use as the standard input.
	Stdin io.Reader

	// Commands is the writer to write the string representation of the called commands to.
	// It can be set to nil to disable the writing of the string representations of the called commands.
	Commands io.Writer

	// Errors is the writer to write program errors to.
	// It can be set to nil to disable the writing of program errors.
	Errors io.Writer
}

// Major returns the default [Config] object for a major command,
// based on [logx.UserLevel]. Commands are echoed at [slog.LevelInfo]
// and below.
func Major() *Config {
	return newConfig(slog.LevelInfo)
}

// Minor returns the default [Config] object for a minor command,
// based on [logx.UserLevel]. Commands are only echoed at
// [slog.LevelDebug].
func Minor() *Config {
	return newConfig(slog.LevelDebug)
}

// newConfig returns a config that echoes commands
// if [logx.UserLevel] is at or below the given level.
func newConfig(echo slog.Level) *Config {
	c := &Config{
		Stdin:  os.Stdin,
		Errors: os.Stderr,
	}
	if logx.UserLevel <= echo {
		c.Commands = os.Stdout
	}
	return c
}
