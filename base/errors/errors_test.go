// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(old)

	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := errors.New("broken")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, buf.String(), "broken")
	assert.Contains(t, buf.String(), "errors_test.go")

	buf.Reset()
	assert.Equal(t, 3, Log1(strconv.Atoi("3")))
	assert.Empty(t, buf.String())
	assert.Equal(t, 0, Log1(strconv.Atoi("x")))
	assert.Contains(t, buf.String(), "invalid syntax")

	assert.True(t, Is(fmt.Errorf("wrapped: %w", err), err))
}
