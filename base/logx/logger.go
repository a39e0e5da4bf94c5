// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// SetDefaultLogger sets the default [slog] logger to one that
// writes to [os.Stderr], filtered by [UserLevel] and colored
// by level.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// NewHandler returns a new [slog.Handler] that writes text records
// to w at or above [UserLevel], with the level colored.
func NewHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if len(groups) == 0 && a.Key == slog.LevelKey {
				lv, ok := a.Value.Any().(slog.Level)
				if ok {
					a.Value = slog.StringValue(ApplyLevelColor(lv, lv.String()))
				}
			}
			return a
		},
	})
}

// Println is equivalent to [fmt.Println], but with color based on the given level.
// Also, if [UserLevel] is above the given level, it does not print anything.
func Println(level slog.Level, a ...any) (n int, err error) {
	if UserLevel > level {
		return 0, nil
	}
	return fmt.Println(ApplyLevelColor(level, fmt.Sprint(a...)))
}

// PrintlnWarn is equivalent to [Println] with [slog.LevelWarn].
func PrintlnWarn(a ...any) (n int, err error) { return Println(slog.LevelWarn, a...) }
