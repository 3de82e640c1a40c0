// Copyright 2024 The jvozip Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitstream

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Unpacker wraps a byte slice as a sequential bit stream. It reads what
// Packer (or any compatible encoder) wrote; the two share no state.
type Unpacker struct {
	data []byte
	pos  int // cursor in bits
}

// NewUnpacker returns an Unpacker positioned at the first bit of data.
func NewUnpacker(data []byte) *Unpacker {
	return &Unpacker{data: data}
}

// Empty reports whether no unread bits remain.
func (u *Unpacker) Empty() bool {
	return u.pos >= len(u.data)*8
}

// Remaining returns the number of unread bits.
func (u *Unpacker) Remaining() int {
	return len(u.data)*8 - u.pos
}

// Unpack returns the next width bits as an unsigned integer, most
// significant bit first, and advances the cursor. width must be in
// [1, 64]. It fails with ErrExhausted if fewer than width bits remain;
// the cursor is not advanced on failure.
func (u *Unpacker) Unpack(width int) (uint64, error) {
	assert.Assertf(width >= 1 && width <= 64, "width %d out of range [1, 64]", width)
	if u.Remaining() < width {
		return 0, fmt.Errorf("%w: need %d bits, have %d", ErrExhausted, width, u.Remaining())
	}
	var v uint64
	for i := 0; i < width; i++ {
		v = v<<1 | uint64(u.bit())
	}
	return v, nil
}

// UnpackString returns the next width bits as a string of '0' and '1'
// bytes. Unlike Unpack it has no 64 bit limit and so can read whole
// codes. It fails with ErrExhausted if fewer than width bits remain.
func (u *Unpacker) UnpackString(width int) (string, error) {
	assert.Assertf(width >= 1, "width %d out of range", width)
	if u.Remaining() < width {
		return "", fmt.Errorf("%w: need %d bits, have %d", ErrExhausted, width, u.Remaining())
	}
	out := make([]byte, width)
	for i := range out {
		out[i] = '0' + u.bit()
	}
	return string(out), nil
}

func (u *Unpacker) bit() byte {
	b := u.data[u.pos/8] >> uint(7-u.pos%8) & 1
	u.pos++
	return b
}
