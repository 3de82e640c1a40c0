// Copyright 2024 The jvozip Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package jvozip implements a byte stream compressor and decompressor
// using a non-canonical Huffman code. The compressed container holds the
// code table followed by the encoded payload:
//
//  1. number of table entries minus one (8 bits, an empty table is not
//     supported)
//  2. for each entry: symbol (8 bits), code length (8 bits), the code
//     itself (code length bits)
//  3. the number of symbols in the original input (32 bits, needed
//     because the payload is padded to a byte boundary)
//  4. each input symbol's code, in input order
//
// All fields are packed most significant bit first. The whole input is
// buffered and measured before encoding begins; this is not a streaming
// format.
package jvozip

import "errors"

var (
	// ErrUnsupportedInput is returned for input the format cannot
	// represent: an empty input, or one whose length overflows the
	// 32 bit symbol count field.
	ErrUnsupportedInput = errors.New("jvozip: unsupported input")

	// ErrMalformedInput is returned when a compressed blob cannot be
	// decoded: a truncated header or payload, or bits that match no
	// code in the table.
	ErrMalformedInput = errors.New("jvozip: malformed input")
)
