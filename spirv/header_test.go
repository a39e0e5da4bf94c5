// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spirv

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func module(order binary.AppendByteOrder, words ...uint32) []byte {
	hdr := []uint32{MagicNumber, 0x00010300, 0x000d000b, 42, 0}
	b := make([]byte, 0, 4*(len(hdr)+len(words)))
	for _, w := range append(hdr, words...) {
		b = order.AppendUint32(b, w)
	}
	return b
}

func TestParseHeader(t *testing.T) {
	h, err := ParseHeader(module(binary.LittleEndian, 0x00020011, 1))
	require.NoError(t, err)
	assert.Equal(t, binary.LittleEndian, h.ByteOrder)
	assert.Equal(t, Version{1, 3}, h.Version)
	assert.Equal(t, "1.3", h.Version.String())
	assert.Equal(t, uint32(0x000d000b), h.Generator)
	assert.Equal(t, uint32(42), h.Bound)
	assert.Equal(t, 7, h.Words)

	h, err = ParseHeader(module(binary.BigEndian))
	require.NoError(t, err)
	assert.Equal(t, binary.BigEndian, h.ByteOrder)
	assert.Equal(t, Version{1, 3}, h.Version)
}

func TestParseHeaderErrors(t *testing.T) {
	_, err := ParseHeader(nil)
	assert.ErrorIs(t, err, ErrNotSPIRV)

	_, err = ParseHeader(module(binary.LittleEndian)[:17])
	assert.ErrorIs(t, err, ErrNotSPIRV)

	_, err = ParseHeader(module(binary.LittleEndian)[:16])
	assert.ErrorIs(t, err, ErrNotSPIRV)

	_, err = ParseHeader([]byte("#version 450\n\nvoid main() {}\n"))
	assert.ErrorIs(t, err, ErrNotSPIRV)
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "vert.spv")
	require.NoError(t, os.WriteFile(good, module(binary.LittleEndian), 0o644))
	_, err := CheckFile(good)
	assert.NoError(t, err)

	bad := filepath.Join(dir, "frag.spv")
	require.NoError(t, os.WriteFile(bad, []byte("error: not compiled"), 0o644))
	_, err = CheckFile(bad)
	assert.ErrorIs(t, err, ErrNotSPIRV)
	assert.Contains(t, err.Error(), "frag.spv")

	_, err = CheckFile(filepath.Join(dir, "missing.spv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
