// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	called := make(chan struct{}, 10)
	done := make(chan error, 1)
	started := make(chan struct{})
	go func() {
		close(started)
		done <- Run(ctx, dir, 100*time.Millisecond, func(ctx context.Context) error {
			calls.Add(1)
			called <- struct{}{}
			return nil
		})
	}()
	<-started
	// give the watcher time to be added before changing the directory
	time.Sleep(200 * time.Millisecond)

	for _, name := range []string{"a.vert", "b.frag", "c.comp"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("void main() {}"), 0o644))
	}
	select {
	case <-called:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for rebuild")
	}
	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	require.NoError(t, os.Remove(filepath.Join(dir, "b.frag")))
	select {
	case <-called:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for rebuild after remove")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunMissingDir(t *testing.T) {
	err := Run(context.Background(), filepath.Join(t.TempDir(), "missing"), time.Millisecond, func(ctx context.Context) error {
		return nil
	})
	assert.Error(t, err)
}
