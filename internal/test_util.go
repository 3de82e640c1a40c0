// Copyright 2024 The jvozip Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package internal

import (
	"math/rand"
)

// Seed for the pseudorandom generators, shared across the test packages
// so that failures reproduce.
const fixedRandSeed = 0x1234

// GenPredictableRandomData generates random data starting from a fixed
// known seed. The full byte alphabet is used, so the data is close to
// incompressible.
func GenPredictableRandomData(size int) []byte {
	gen := rand.New(rand.NewSource(fixedRandSeed))
	out := make([]byte, size)
	for i := range out {
		out[i] = byte(gen.Intn(256))
	}
	return out
}

// GenPredictableText generates compressible data from a fixed known
// seed: symbols are drawn from a small alphabet with a heavily skewed
// distribution, the shape Huffman coding rewards.
func GenPredictableText(size int) []byte {
	gen := rand.New(rand.NewSource(fixedRandSeed))
	alphabet := []byte("etaoin shrdlu")
	out := make([]byte, size)
	for i := range out {
		// Squaring skews the draw towards the start of the alphabet.
		f := gen.Float64()
		out[i] = alphabet[int(f*f*float64(len(alphabet)))]
	}
	return out
}

// FirstN returns at most the first n bytes of b.
func FirstN(n int, b []byte) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
