// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages. It is on by default.
// Colors are only emitted when standard output is a terminal that
// supports them.
var UseColor = true

var output = termenv.NewOutput(os.Stdout)

// levelColors are the ANSI color codes used for each level.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "4", // blue
	slog.LevelInfo:  "6", // cyan
	slog.LevelWarn:  "3", // yellow
	slog.LevelError: "1", // red
}

// ApplyLevelColor applies the color associated with the given level to the
// given string and returns the resulting string. If [UseColor] is false,
// or the terminal does not support color, it returns the string unchanged.
func ApplyLevelColor(level slog.Level, str string) string {
	if !UseColor {
		return str
	}
	code, ok := levelColors[level]
	if !ok {
		return str
	}
	return output.String(str).Foreground(output.Color(code)).String()
}
