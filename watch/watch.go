// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package watch reruns a function when the contents of a directory change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// changeOps are the operations that trigger a rebuild.
const changeOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Run watches the given directory (non-recursively) and calls fn once the
// directory has been quiet for the given debounce duration after a file in
// it is created, written, removed, or renamed. Calls to fn never overlap:
// changes made while fn runs schedule one more call after it returns.
// Errors returned by fn are logged and do not stop the watch.
// Run blocks until ctx is done, and then returns nil.
func Run(ctx context.Context, dir string, debounce time.Duration, fn func(ctx context.Context) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watching %q: %w", dir, err)
	}
	slog.Info("watching for changes", "dir", dir)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&changeOps == 0 {
				continue
			}
			slog.Debug("source changed", "event", ev.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "dir", dir, "err", err)
		case <-fire:
			fire = nil
			if err := fn(ctx); err != nil && ctx.Err() == nil {
				slog.Error("rebuild failed", "err", err)
			}
		}
	}
}
