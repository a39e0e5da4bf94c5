// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"bytes"
	"context"
	"fmt"
)

// Result is the outcome of a command run through [Config.Capture].
type Result struct {

	// Stdout is the text the command wrote to its standard output.
	Stdout string

	// Stderr is the text the command wrote to its standard error.
	Stderr string

	// Ran is whether the command was started at all.
	Ran bool

	// Code is the exit code of the command, or -1 if it did not run.
	Code int
}

func (r *Result) String() string {
	if r == nil {
		return "<nil>"
	}
	if !r.Ran {
		return "not run"
	}
	return fmt.Sprintf("exit status %d", r.Code)
}

// Capture runs the command, waiting for it to complete, and captures
// its standard output and standard error as text. The command and
// arguments are passed as is, and the command is echoed to
// [Config.Commands]. A non-zero exit status is not an error:
// it is only recorded in [Result.Code]. The returned
// error is non-nil only if the command could not be started or waited
// on; the result is always non-nil.
func (c *Config) Capture(ctx context.Context, cmd string, args ...string) (*Result, error) {
	cm := c.command(ctx, cmd, args...)
	var stdout, stderr bytes.Buffer
	cm.Stdout = &stdout
	cm.Stderr = &stderr
	c.printCommand(cm)
	err := cm.Run()
	res := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		Ran:    CmdRan(err) || cm.ProcessState != nil,
		Code:   -1,
	}
	if cm.ProcessState != nil {
		res.Code = cm.ProcessState.ExitCode()
	}
	if err != nil && !res.Ran {
		return res, fmt.Errorf(`failed to start "%s": %w`, cm.String(), err)
	}
	return res, nil
}
