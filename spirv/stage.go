// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spirv

// Stage is a shader pipeline stage, as inferred from the
// file extension conventions of glslc.
type Stage uint8

const (
	StageUnknown Stage = iota
	StageVertex
	StageFragment
	StageCompute
	StageGeometry
	StageTessControl
	StageTessEval
	StageMesh
	StageTask
	StageRayGen
	StageAnyHit
	StageClosestHit
	StageMiss
	StageIntersection
	StageCallable
)

var stageNames = [...]string{
	StageUnknown:      "unknown",
	StageVertex:       "vertex",
	StageFragment:     "fragment",
	StageCompute:      "compute",
	StageGeometry:     "geometry",
	StageTessControl:  "tess-control",
	StageTessEval:     "tess-eval",
	StageMesh:         "mesh",
	StageTask:         "task",
	StageRayGen:       "raygen",
	StageAnyHit:       "anyhit",
	StageClosestHit:   "closesthit",
	StageMiss:         "miss",
	StageIntersection: "intersection",
	StageCallable:     "callable",
}

func (s Stage) String() string {
	if int(s) >= len(stageNames) {
		return stageNames[StageUnknown]
	}
	return stageNames[s]
}

var stageExts = map[string]Stage{
	"vert":  StageVertex,
	"frag":  StageFragment,
	"comp":  StageCompute,
	"geom":  StageGeometry,
	"tesc":  StageTessControl,
	"tese":  StageTessEval,
	"mesh":  StageMesh,
	"task":  StageTask,
	"rgen":  StageRayGen,
	"rahit": StageAnyHit,
	"rchit": StageClosestHit,
	"rmiss": StageMiss,
	"rint":  StageIntersection,
	"rcall": StageCallable,
}

// StageFor returns the [Stage] implied by the extension of the
// given source file, or [StageUnknown].
func StageFor(source string) Stage {
	return stageExts[extension(source)]
}
