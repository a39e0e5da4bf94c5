// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted in part from: https://github.com/magefile/mage
// Copyright presumably by Nate Finch, primary contributor
// Apache License, Version 2.0, January 2004

package exec

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"

	"cogentcore.org/spvbuild/base/logx"
)

// LookPath searches for an executable named file in the directories
// named by the PATH environment variable. It is [exec.LookPath].
func LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// command returns the [exec.Cmd] for the given command with the
// standard input of the config. The command and arguments are
// passed as is, without any shell or environment expansion.
func (c *Config) command(ctx context.Context, cmd string, args ...string) *exec.Cmd {
	cm := exec.CommandContext(ctx, cmd, args...)
	cm.Stdin = c.Stdin
	return cm
}

func (c *Config) printCommand(cm *exec.Cmd) {
	if c.Commands == nil {
		return
	}
	c.Commands.Write([]byte(logx.ApplyLevelColor(slog.LevelInfo, strings.Join(cm.Args, " ")) + "\n"))
}

// CmdRan examines the error to determine if it was generated as a result of a
// command running via os/exec.Command.  If the error is nil, or the command ran
// (even if it exited with a non-zero exit code), CmdRan reports true.  If the
// error is an unrecognized type, or it is an error from exec.Command that says
// the command failed to run (usually due to the command not existing or not
// being executable), it reports false.
func CmdRan(err error) bool {
	if err == nil {
		return true
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.Exited()
	}
	return false
}
