// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spirv

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Ext is the file extension of compiled SPIR-V artifacts.
const Ext = ".spv"

// Naming is a policy for deriving the output file name
// of a compiled shader from its source file name.
type Naming int32

const (
	// NamingStage names the output after the source extension
	// (shader.vert -> vert.spv). It is the default.
	NamingStage Naming = iota

	// NamingFile names the output after the full source name
	// (shader.vert -> shader.vert.spv).
	NamingFile
)

var namingNames = [...]string{"stage", "file"}

func (n Naming) String() string {
	if n < 0 || int(n) >= len(namingNames) {
		return fmt.Sprintf("Naming(%d)", int32(n))
	}
	return namingNames[n]
}

// ParseNaming returns the [Naming] with the given name.
func ParseNaming(s string) (Naming, error) {
	for i, nm := range namingNames {
		if strings.EqualFold(nm, s) {
			return Naming(i), nil
		}
	}
	return NamingStage, fmt.Errorf("unknown naming policy %q (must be one of %s)", s, strings.Join(namingNames[:], ", "))
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (n *Naming) UnmarshalText(text []byte) error {
	v, err := ParseNaming(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// OutputName returns the output file name for the given source
// file according to the naming policy. Only the base name of
// the source is used.
func (n Naming) OutputName(source string) string {
	if n == NamingFile {
		return FileName(source)
	}
	return StageName(source)
}

// StageName returns the output file name derived from the extension of
// the given source file: "shader.vert" gives "vert.spv". Leading dots
// do not start an extension, so a name without an extension, such
// as "Makefile" or ".hidden", gives ".spv".
func StageName(source string) string {
	return extension(source) + Ext
}

// FileName returns the output file name derived from the full name
// of the given source file: "shader.vert" gives "shader.vert.spv".
func FileName(source string) string {
	return filepath.Base(source) + Ext
}

// extension returns the extension of the base name of the given
// path, without the leading dot.
func extension(source string) string {
	base := strings.TrimLeft(filepath.Base(source), ".")
	return strings.TrimPrefix(filepath.Ext(base), ".")
}

// Collisions returns, for each output name that more than one of the
// given sources maps to under the naming policy, the sources that share
// it, in the given order. It returns nil if there are no collisions.
func Collisions(sources []string, n Naming) map[string][]string {
	byOut := map[string][]string{}
	for _, src := range sources {
		out := n.OutputName(src)
		byOut[out] = append(byOut[out], src)
	}
	var res map[string][]string
	for out, srcs := range byOut {
		if len(srcs) < 2 {
			continue
		}
		if res == nil {
			res = map[string][]string{}
		}
		res[out] = srcs
	}
	return res
}

// SortedKeys returns the output names of the given collisions in sorted order.
func SortedKeys(collisions map[string][]string) []string {
	keys := make([]string, 0, len(collisions))
	for k := range collisions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
