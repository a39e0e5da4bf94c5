// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spirv

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

// MagicNumber is the first word of every SPIR-V module.
const MagicNumber = 0x07230203

// HeaderWords is the number of words in a SPIR-V module header.
const HeaderWords = 5

// ErrNotSPIRV is returned when data does not start with a valid SPIR-V header.
var ErrNotSPIRV = errors.New("not a SPIR-V module")

// Version is a SPIR-V version.
type Version struct {
	Major uint8
	Minor uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Header is the header of a SPIR-V module.
type Header struct {

	// ByteOrder is the byte order the module was written in.
	ByteOrder binary.ByteOrder

	// Version is the SPIR-V version of the module.
	Version Version

	// Generator is the registered generator magic number.
	Generator uint32

	// Bound is the upper bound of all ids in the module.
	Bound uint32

	// Words is the total number of words in the module.
	Words int
}

// ParseHeader parses the header of the given SPIR-V module. The
// module must be a whole number of words, at least [HeaderWords] long,
// and start with [MagicNumber] in either byte order.
func ParseHeader(b []byte) (*Header, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 4", ErrNotSPIRV, len(b))
	}
	if len(b) < HeaderWords*4 {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrNotSPIRV, len(b))
	}
	var order binary.ByteOrder
	switch {
	case binary.LittleEndian.Uint32(b) == MagicNumber:
		order = binary.LittleEndian
	case binary.BigEndian.Uint32(b) == MagicNumber:
		order = binary.BigEndian
	default:
		return nil, fmt.Errorf("%w: bad magic number %#08x", ErrNotSPIRV, binary.LittleEndian.Uint32(b))
	}
	vw := order.Uint32(b[4:])
	return &Header{
		ByteOrder: order,
		Version:   Version{Major: uint8(vw >> 16), Minor: uint8(vw >> 8)},
		Generator: order.Uint32(b[8:]),
		Bound:     order.Uint32(b[12:]),
		Words:     len(b) / 4,
	}, nil
}

// CheckFile reads the given compiled artifact and
// validates its SPIR-V header.
func CheckFile(path string) (*Header, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	h, err := ParseHeader(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}
