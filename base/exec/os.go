// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/spvbuild/base/logx"
)

// PrintCmd writes the given command to [Config.Commands], and the given
// error, if any, to [Config.Errors].
func (c *Config) PrintCmd(cmd string, err error) {
	if c.Commands != nil {
		c.Commands.Write([]byte(logx.ApplyLevelColor(slog.LevelInfo, cmd) + "\n"))
	}
	if err != nil && c.Errors != nil {
		c.Errors.Write([]byte(logx.ApplyLevelColor(slog.LevelError, err.Error()) + "\n"))
	}
}

// RemoveAll is a simple helper function that calls [os.RemoveAll] and [Config.PrintCmd].
func (c *Config) RemoveAll(path string) error {
	err := os.RemoveAll(path)
	c.PrintCmd(fmt.Sprintf("rm -rf %q", path), err)
	return err
}

// Mkdir is a simple helper function that calls [os.Mkdir] and [Config.PrintCmd].
// It fails if the parent directory does not exist.
func (c *Config) Mkdir(path string) error {
	err := os.Mkdir(path, 0o755)
	c.PrintCmd(fmt.Sprintf("mkdir %q", path), err)
	return err
}
