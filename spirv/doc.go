// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spirv names and checks the SPIR-V artifacts produced
// by an external shader compiler.
//
// # Output naming
//
// The default [NamingStage] policy names each output after the
// extension of its source, so that shaders/src/shader.vert
// becomes shaders/spv/vert.spv, which is the path a renderer
// loads its vertex stage from. Two sources with the same extension
// therefore map to the same output, and the later one wins; use
// [Collisions] to detect that. The opt-in [NamingFile] policy keeps
// the full source name instead (shader.vert.spv).
//
// # Header checks
//
// [ParseHeader] and [CheckFile] validate the five-word SPIR-V header
// of a compiled artifact, in either byte order.
package spirv
