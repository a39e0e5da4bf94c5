// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/spvbuild/base/exec"
	"cogentcore.org/spvbuild/base/fsx"
	"cogentcore.org/spvbuild/spirv"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Open reads the given TOML file into the config. Fields
// not present in the file keep their current values.
func (c *Config) Open(file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	dec := toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("%s:%d:%d: %w", file, row, col, err)
		}
		return fmt.Errorf("%s: %w", file, err)
	}
	return nil
}

// Load returns the default config updated from the given file.
// If file is empty, [DefaultFile] is read from dir when it exists,
// and the defaults are used otherwise. An explicitly named file
// must exist.
func Load(dir, file string) (*Config, error) {
	c := Defaults()
	if file == "" {
		fs := fsx.FindFilesOnPaths([]string{dir}, DefaultFile)
		if len(fs) == 0 {
			return c, nil
		}
		file = fs[0]
	}
	if err := c.Open(file); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return c, nil
}

// Expand expands a leading ~ in the path fields of the config
// to the home directory of the user.
func (c *Config) Expand() error {
	for _, p := range []*string{&c.Dir, &c.Compiler, &c.Source, &c.Output} {
		ep, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expanding %q: %w", *p, err)
		}
		*p = ep
	}
	return nil
}

// Args returns [Config.Flags] parsed into separate arguments.
func (c *Config) Args() ([]string, error) {
	return exec.Args(c.Flags)
}

// Validate returns an error if the config cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if c.Compiler == "" {
		errs = append(errs, errors.New("no compiler specified"))
	}
	if c.Source == "" {
		errs = append(errs, errors.New("no source directory specified"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("no output directory specified"))
	}
	if c.Source != "" && c.Output != "" && within(c.Output, c.Source) {
		errs = append(errs, fmt.Errorf("the source directory %q is inside the output directory %q, which is removed on every run", c.Source, c.Output))
	}
	if _, err := c.Args(); err != nil {
		errs = append(errs, err)
	}
	if c.Naming != spirv.NamingStage && c.Naming != spirv.NamingFile {
		errs = append(errs, fmt.Errorf("invalid naming policy %v", c.Naming))
	}
	if c.Debounce < 0 {
		errs = append(errs, fmt.Errorf("negative debounce %v", c.Debounce))
	}
	return errors.Join(errs...)
}

// within returns whether path is dir or inside of it.
func within(dir, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
