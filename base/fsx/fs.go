// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides various utility functions for dealing with filesystems.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/spvbuild/base/errors"
)

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
// Directories do not count as files.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// DirExists checks whether given directory exists, returning true if so,
// false if not, and error if there is an error in accessing the directory.
func DirExists(dirPath string) (bool, error) {
	fileInfo, err := os.Stat(dirPath)
	if err == nil {
		return fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFilesOnPaths attempts to locate given file(s) on given list of paths,
// returning the full Abs path to each file found (nil if none).
func FindFilesOnPaths(paths []string, files ...string) []string {
	var res []string
	for _, path := range paths {
		for _, fn := range files {
			fp := filepath.Join(path, fn)
			ok, _ := FileExists(fp)
			if ok {
				res = append(res, errors.Log1(filepath.Abs(fp)))
			}
		}
	}
	return res
}
