// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package build compiles a directory of shader sources to SPIR-V
// by running an external compiler once per source file.
package build

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/spvbuild/base/errors"
	"cogentcore.org/spvbuild/base/exec"
	"cogentcore.org/spvbuild/base/fsx"
	"cogentcore.org/spvbuild/base/logx"
	"cogentcore.org/spvbuild/config"
	"cogentcore.org/spvbuild/spirv"
)

// Invocation is one run of the compiler on one source file.
type Invocation struct {

	// Source is the path of the source file.
	Source string

	// Output is the path of the output file.
	Output string

	// Result is the captured result of running the compiler.
	Result *exec.Result
}

// Report describes what a [Driver.Run] did.
type Report struct {

	// Compiler is the resolved path of the compiler,
	// or "" if it was not found.
	Compiler string

	// Skipped is whether the run did nothing
	// because the compiler was not found.
	Skipped bool

	// Invocations are the compiler runs, in order.
	Invocations []Invocation

	// Collisions are the output names shared by more than one
	// source, and those sources in the order they were compiled.
	Collisions map[string][]string
}

// Driver runs the compiler over the source directory of its config.
type Driver struct {

	// Config is the build configuration.
	Config *config.Config

	// Exec is used to run the compiler.
	Exec *exec.Config

	// Files is used to remove and create the output directory.
	Files *exec.Config

	// Console is where the captured output of
	// each compiler run is printed.
	Console io.Writer
}

// NewDriver returns a new [Driver] for the given config that
// prints to [os.Stdout]. Compiler runs are echoed as major commands
// and directory changes as minor ones, according to [logx.UserLevel].
func NewDriver(c *config.Config) *Driver {
	return &Driver{Config: c, Exec: exec.Major(), Files: exec.Minor(), Console: os.Stdout}
}

// Build runs a new [Driver] for the given config once.
func Build(ctx context.Context, c *config.Config) (*Report, error) {
	return NewDriver(c).Run(ctx)
}

// Run performs one build. If the compiler cannot be found on the PATH,
// it does nothing and returns a skipped report and no error. Otherwise,
// it removes and recreates the output directory and runs the compiler on
// every entry of the source directory in name order, printing whatever
// each run writes to stdout or stderr. The exit status of the compiler is
// not checked: a failed compile is only visible through its printed output.
// Errors are only returned for filesystem failures and cancellation.
func (d *Driver) Run(ctx context.Context) (*Report, error) {
	c := d.Config
	rep := &Report{}
	compiler, err := exec.LookPath(c.Compiler)
	if err != nil {
		slog.Debug("shader compiler not found; nothing to do", "compiler", c.Compiler, "err", err)
		rep.Skipped = true
		return rep, nil
	}
	rep.Compiler = compiler
	flags, err := c.Args()
	if err != nil {
		return rep, err
	}

	src, out := c.SourceDir(), c.OutputDir()
	if err := d.resetOutput(out); err != nil {
		return rep, err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return rep, fmt.Errorf("reading source directory: %w", err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	rep.Collisions = spirv.Collisions(names, c.Naming)
	for _, on := range spirv.SortedKeys(rep.Collisions) {
		logx.PrintlnWarn("warning: ", strings.Join(rep.Collisions[on], ", "), " all compile to ", filepath.Join(out, on), "; only the last one is kept")
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		inv := Invocation{
			Source: filepath.Join(src, name),
			Output: filepath.Join(out, c.Naming.OutputName(name)),
		}
		args := append(append([]string{}, flags...), inv.Source, "-o", inv.Output)
		inv.Result, err = d.Exec.Capture(ctx, compiler, args...)
		if err != nil {
			fmt.Fprintln(d.Console, err)
		}
		d.print(inv.Result.Stdout)
		d.print(inv.Result.Stderr)
		slog.Debug("compiled shader", "source", inv.Source, "stage", spirv.StageFor(name), "output", inv.Output, "result", inv.Result)
		if c.Check {
			d.check(inv.Output)
		}
		rep.Invocations = append(rep.Invocations, inv)
	}
	return rep, nil
}

// resetOutput removes the given output directory if it exists
// and creates it again, empty.
func (d *Driver) resetOutput(out string) error {
	exists, err := fsx.DirExists(out)
	if err != nil {
		return fmt.Errorf("checking output directory: %w", err)
	}
	if exists {
		if err := d.Files.RemoveAll(out); err != nil {
			return fmt.Errorf("removing output directory: %w", err)
		}
	}
	if err := d.Files.Mkdir(out); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

// print writes the given captured text to the console,
// ending it with a newline, if it is not empty.
func (d *Driver) print(text string) {
	if text == "" {
		return
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(d.Console, text)
	errors.Log(err)
}

// check logs a warning if the given output exists
// and is not a valid SPIR-V module.
func (d *Driver) check(output string) {
	h, err := spirv.CheckFile(output)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	if err != nil {
		slog.Warn("compiled shader is not valid SPIR-V", "err", err)
		return
	}
	slog.Debug("checked SPIR-V", "output", output, "version", h.Version, "words", h.Words)
}
