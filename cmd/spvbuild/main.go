// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spvbuild compiles the shaders in shaders/src to SPIR-V in
// shaders/spv using glslc, if glslc is installed. It is typically run
// with no arguments from the root of a project.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/spvbuild/base/logx"
)

func main() {
	logx.SetDefaultLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error(err.Error())
		stop()
		os.Exit(1)
	}
}
