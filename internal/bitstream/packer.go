// Copyright 2024 The jvozip Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bitstream provides the bit-level packing and unpacking used by
// the jvozip container format. Bits are always packed most significant
// first, that is, the bitstream can be visualized as flowing from left
// to right.
package bitstream

import (
	"errors"
	"fmt"

	"github.com/chronos-tachyon/assert"
)

var (
	// ErrInvalidValue is returned when a value has set bits at or above
	// its declared width.
	ErrInvalidValue = errors.New("bitstream: value does not fit in declared width")

	// ErrExhausted is returned when an unpack requests more bits than
	// remain in the stream.
	ErrExhausted = errors.New("bitstream: no bits remaining")
)

// Packer accumulates values of known bit width into a growing bit buffer.
// The zero value is ready to use and a Packer is reusable after Flush.
type Packer struct {
	buf   []byte
	nbits int
}

// Pack appends the lowest width bits of value, most significant first.
// width must be in [1, 64]; values with set bits at position >= width are
// rejected with ErrInvalidValue.
func (p *Packer) Pack(value uint64, width int) error {
	assert.Assertf(width >= 1 && width <= 64, "width %d out of range [1, 64]", width)
	if width < 64 && value>>uint(width) != 0 {
		return fmt.Errorf("%w: %#x in %d bits", ErrInvalidValue, value, width)
	}
	for i := width - 1; i >= 0; i-- {
		p.packBit(byte(value >> uint(i) & 1))
	}
	return nil
}

// PackString appends a code expressed as a string of '0' and '1' bytes.
// Codes in a 256 symbol alphabet can be up to 255 bits long, wider than
// any fixed width integer, hence the string form.
func (p *Packer) PackString(code string) error {
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '0':
			p.packBit(0)
		case '1':
			p.packBit(1)
		default:
			return fmt.Errorf("%w: %q is not a bit string", ErrInvalidValue, code)
		}
	}
	return nil
}

func (p *Packer) packBit(b byte) {
	if p.nbits%8 == 0 {
		p.buf = append(p.buf, 0)
	}
	if b != 0 {
		p.buf[p.nbits/8] |= 1 << uint(7-p.nbits%8)
	}
	p.nbits++
}

// Len returns the number of bits packed since the last Flush.
func (p *Packer) Len() int {
	return p.nbits
}

// Flush pads the buffer with zero bits to the next byte boundary (zero
// to seven bits, none if already aligned), returns the packed bytes and
// resets the packer to empty.
func (p *Packer) Flush() []byte {
	// The buffer grows a zeroed byte at a time, so the trailing bits of
	// the last byte are already zero padding.
	out := p.buf
	p.buf = nil
	p.nbits = 0
	if out == nil {
		out = []byte{}
	}
	return out
}
