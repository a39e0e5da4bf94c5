// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the spvbuild tool.
package config

import (
	"path/filepath"
	"time"

	"cogentcore.org/spvbuild/spirv"
)

// DefaultFile is the name of the configuration file that is
// read from the working directory when it exists.
const DefaultFile = "spvbuild.toml"

// Config is the main config struct that contains
// all of the configuration options for spvbuild.
type Config struct {

	// the directory that the source and output paths are relative to;
	// if it is empty, the current working directory is used
	Dir string `toml:"dir" desc:"the directory that the source and output paths are relative to"`

	// [def: glslc] the shader compiler executable, looked up on the PATH
	Compiler string `toml:"compiler" def:"glslc" desc:"the shader compiler executable, looked up on the PATH"`

	// [def: shaders/src] the directory containing the shader source files
	Source string `toml:"source" def:"shaders/src" desc:"the directory containing the shader source files"`

	// [def: shaders/spv] the directory the compiled files are written to; it is removed and recreated on every run
	Output string `toml:"output" def:"shaders/spv" desc:"the directory the compiled files are written to"`

	// additional shell-quoted arguments passed to the compiler before the input file
	Flags string `toml:"flags" desc:"additional shell-quoted arguments passed to the compiler"`

	// [def: stage] how output file names are derived from source file names:
	// "stage" uses the source extension (a.vert -> vert.spv) and "file"
	// uses the whole source name (a.vert -> a.vert.spv)
	Naming spirv.Naming `toml:"naming" def:"stage" desc:"how output file names are derived from source file names"`

	// whether to validate the SPIR-V header of each compiled file
	Check bool `toml:"check" desc:"whether to validate the SPIR-V header of each compiled file"`

	// whether to keep running and rebuild when the source directory changes
	Watch bool `toml:"watch" desc:"whether to keep running and rebuild when the source directory changes"`

	// [def: 200ms] how long to wait for source changes to settle before rebuilding in watch mode
	Debounce time.Duration `toml:"-" def:"200ms" desc:"how long to wait for source changes to settle before rebuilding"`
}

// Defaults returns a new [Config] with the default values.
func Defaults() *Config {
	return &Config{
		Compiler: "glslc",
		Source:   filepath.Join("shaders", "src"),
		Output:   filepath.Join("shaders", "spv"),
		Naming:   spirv.NamingStage,
		Debounce: 200 * time.Millisecond,
	}
}

// SourceDir returns the source directory joined onto [Config.Dir].
func (c *Config) SourceDir() string {
	return filepath.Join(c.Dir, c.Source)
}

// OutputDir returns the output directory joined onto [Config.Dir].
func (c *Config) OutputDir() string {
	return filepath.Join(c.Dir, c.Output)
}
