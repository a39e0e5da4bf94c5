// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cogentcore.org/spvbuild/base/logx"
	"cogentcore.org/spvbuild/build"
	"cogentcore.org/spvbuild/config"
	"cogentcore.org/spvbuild/spirv"
	"cogentcore.org/spvbuild/watch"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// options are the command line flags that are
// not fields of [config.Config] directly.
type options struct {
	configFile string
	naming     string
	vv, v, q   bool
	noColor    bool
}

func newRootCmd() *cobra.Command {
	o := &options{}
	c := config.Defaults()
	cmd := &cobra.Command{
		Use:   "spvbuild",
		Short: "Compile shader sources to SPIR-V",
		Long: `spvbuild compiles every file in the source directory to SPIR-V
with the shader compiler, writing the results to the output directory,
which is removed and recreated first. If the compiler is not installed,
spvbuild does nothing. The output of the compiler is printed as is, and
a failed compile does not make spvbuild fail.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configure(cmd.Flags(), o, c)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	bindFlags(cmd.Flags(), o, c)
	return cmd
}

// bindFlags defines the command line flags on fs,
// storing their values in o and c.
func bindFlags(fs *pflag.FlagSet, o *options, c *config.Config) {
	fs.StringVarP(&o.configFile, "config", "c", "", "the TOML config file (default "+config.DefaultFile+" if it exists)")
	fs.StringVarP(&c.Dir, "dir", "C", c.Dir, "the directory the source and output paths are relative to")
	fs.StringVar(&c.Compiler, "compiler", c.Compiler, "the shader compiler executable, looked up on the PATH")
	fs.StringVar(&c.Source, "src", c.Source, "the directory containing the shader source files")
	fs.StringVar(&c.Output, "out", c.Output, "the directory the compiled files are written to")
	fs.StringVar(&c.Flags, "flags", c.Flags, "additional shell-quoted arguments passed to the compiler")
	fs.StringVar(&o.naming, "naming", c.Naming.String(), `how output names are derived: "stage" (a.vert -> vert.spv) or "file" (a.vert -> a.vert.spv)`)
	fs.BoolVar(&c.Check, "check", c.Check, "validate the SPIR-V header of each compiled file")
	fs.BoolVarP(&c.Watch, "watch", "w", c.Watch, "keep running and rebuild when the source directory changes")
	fs.DurationVar(&c.Debounce, "debounce", c.Debounce, "how long to wait for source changes to settle in watch mode")
	fs.BoolVar(&o.vv, "vv", false, "print debug messages and all commands")
	fs.BoolVarP(&o.v, "verbose", "v", false, "print informational messages and commands")
	fs.BoolVarP(&o.q, "quiet", "q", false, "only print errors")
	fs.BoolVar(&o.noColor, "no-color", false, "do not color messages and commands")
}

// configure returns the config to run with: the defaults, updated
// from the config file, updated from the flags that were set in fs,
// whose values are in o and flagged.
func configure(fs *pflag.FlagSet, o *options, flagged *config.Config) (*config.Config, error) {
	logx.UserLevel = logx.LevelFromFlags(o.vv, o.v, o.q)
	logx.UseColor = !o.noColor
	c, err := config.Load(flagged.Dir, o.configFile)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "dir":
			c.Dir = flagged.Dir
		case "compiler":
			c.Compiler = flagged.Compiler
		case "src":
			c.Source = flagged.Source
		case "out":
			c.Output = flagged.Output
		case "flags":
			c.Flags = flagged.Flags
		case "check":
			c.Check = flagged.Check
		case "watch":
			c.Watch = flagged.Watch
		case "debounce":
			c.Debounce = flagged.Debounce
		case "naming":
			c.Naming, err = spirv.ParseNaming(o.naming)
		}
	})
	if err != nil {
		return nil, err
	}
	if err := c.Expand(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// run builds once and then, in watch mode, rebuilds on
// every change until ctx is done.
func run(ctx context.Context, c *config.Config) error {
	start := time.Now()
	rep, err := build.Build(ctx, c)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}
	if rep.Skipped {
		return nil
	}
	slog.Info("compiled shaders", "count", len(rep.Invocations), "output", c.OutputDir(), "time", time.Since(start))
	if !c.Watch {
		return nil
	}
	err = watch.Run(ctx, c.SourceDir(), c.Debounce, func(ctx context.Context) error {
		_, err := build.Build(ctx, c)
		return err
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
