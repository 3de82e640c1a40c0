// Copyright 2024 The jvozip Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jvozip

import (
	"fmt"
	"math"

	"github.com/jorenvo/jvozip/internal/bitstream"
)

// Compress encodes the sequence the tree was built over into a single
// compressed blob. Table entries are written in ascending symbol order
// so the output is reproducible across runs.
func (t *Tree) Compress() ([]byte, error) {
	if len(t.data) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d symbols overflow the 32 bit count field", ErrUnsupportedInput, len(t.data))
	}
	codes := t.Codes()
	var pk bitstream.Packer
	if err := pk.Pack(uint64(len(codes)-1), 8); err != nil {
		return nil, err
	}
	for sym := 0; sym < 256; sym++ {
		code, ok := codes[byte(sym)]
		if !ok {
			continue
		}
		if err := pk.Pack(uint64(sym), 8); err != nil {
			return nil, err
		}
		if err := pk.Pack(uint64(len(code)), 8); err != nil {
			return nil, err
		}
		if err := pk.PackString(code); err != nil {
			return nil, err
		}
	}
	if err := pk.Pack(uint64(len(t.data)), 32); err != nil {
		return nil, err
	}
	for _, b := range t.data {
		if err := pk.PackString(codes[b]); err != nil {
			return nil, err
		}
	}
	return pk.Flush(), nil
}

// Compress builds a Huffman tree over data and returns the compressed
// blob. It fails with ErrUnsupportedInput for empty input.
func Compress(data []byte) ([]byte, error) {
	t, err := NewTree(data)
	if err != nil {
		return nil, err
	}
	return t.Compress()
}
