// Copyright 2024 The jvozip Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jvozip

import (
	"fmt"

	"github.com/jorenvo/jvozip/internal/bitstream"
)

// TableEntry is one symbol to code assignment from a compressed blob's
// header.
type TableEntry struct {
	Symbol byte
	Code   string
}

// readTable rebuilds the code table from the container header. No tree
// is reconstructed; the serialized (symbol, code) pairs are all a
// decoder needs.
func readTable(un *bitstream.Unpacker) ([]TableEntry, error) {
	numCodes, err := un.Unpack(8)
	if err != nil {
		return nil, fmt.Errorf("%w: truncated header: %v", ErrMalformedInput, err)
	}
	entries := make([]TableEntry, 0, numCodes+1)
	for i := uint64(0); i <= numCodes; i++ {
		sym, err := un.Unpack(8)
		if err != nil {
			return nil, fmt.Errorf("%w: truncated header: %v", ErrMalformedInput, err)
		}
		length, err := un.Unpack(8)
		if err != nil {
			return nil, fmt.Errorf("%w: truncated header: %v", ErrMalformedInput, err)
		}
		if length == 0 {
			return nil, fmt.Errorf("%w: zero length code for symbol %#x", ErrMalformedInput, byte(sym))
		}
		code, err := un.UnpackString(int(length))
		if err != nil {
			return nil, fmt.Errorf("%w: truncated header: %v", ErrMalformedInput, err)
		}
		entries = append(entries, TableEntry{Symbol: byte(sym), Code: code})
	}
	return entries, nil
}

// Decompress decodes a blob produced by Compress (or any conforming
// encoder) and returns the original byte sequence. It fails with
// ErrMalformedInput if the blob is truncated, declares impossible codes
// or contains bits that match no code.
func Decompress(data []byte) ([]byte, error) {
	un := bitstream.NewUnpacker(data)
	entries, err := readTable(un)
	if err != nil {
		return nil, err
	}
	codes := make(map[string]byte, len(entries))
	for _, e := range entries {
		codes[e.Code] = e.Symbol
	}
	total, err := un.Unpack(32)
	if err != nil {
		return nil, fmt.Errorf("%w: truncated header: %v", ErrMalformedInput, err)
	}
	out := make([]byte, 0, total)
	scratch := make([]byte, 0, maxCodeLen)
	for uint64(len(out)) < total {
		bit, err := un.Unpack(1)
		if err != nil {
			return nil, fmt.Errorf("%w: payload exhausted after %d of %d symbols", ErrMalformedInput, len(out), total)
		}
		scratch = append(scratch, '0'+byte(bit))
		if sym, ok := codes[string(scratch)]; ok {
			out = append(out, sym)
			scratch = scratch[:0]
			continue
		}
		if len(scratch) > maxCodeLen {
			return nil, fmt.Errorf("%w: no code matches after %d bits", ErrMalformedInput, len(scratch))
		}
	}
	return out, nil
}

// Stats describes a compressed blob without decoding its payload.
type Stats struct {
	// Table holds the code table in header order.
	Table []TableEntry
	// TotalSymbols is the declared length of the decompressed output.
	TotalSymbols uint32
	// CompressedBytes is the size of the blob itself.
	CompressedBytes int
}

// ReadStats decodes only the header of a compressed blob.
func ReadStats(data []byte) (Stats, error) {
	un := bitstream.NewUnpacker(data)
	entries, err := readTable(un)
	if err != nil {
		return Stats{}, err
	}
	total, err := un.Unpack(32)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: truncated header: %v", ErrMalformedInput, err)
	}
	return Stats{
		Table:           entries,
		TotalSymbols:    uint32(total),
		CompressedBytes: len(data),
	}, nil
}
