// Copyright 2024 The jvozip Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jvozip

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestCodesConcrete(t *testing.T) {
	// 5xA, 4xB, 3xC, 2xD: a balanced 4 symbol tree, every code 2 bits.
	tree, err := NewTree([]byte("AAAAABBBBCCCDD"))
	if err != nil {
		t.Fatal(err)
	}
	codes := tree.Codes()
	for _, tc := range []struct {
		sym  byte
		code string
	}{
		{'A', "11"},
		{'B', "10"},
		{'C', "01"},
		{'D', "00"},
	} {
		if got, want := codes[tc.sym], tc.code; got != want {
			t.Errorf("%c: got %v, want %v", tc.sym, got, want)
		}
	}
	if got, want := len(codes), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSingleSymbolAlphabet(t *testing.T) {
	tree, err := NewTree(bytes.Repeat([]byte{'x'}, 10))
	if err != nil {
		t.Fatal(err)
	}
	codes := tree.Codes()
	if got, want := len(codes), 1; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	// A lone leaf has no root to leaf edges; the symbol still needs a
	// serializable 1 bit code.
	if got, want := codes['x'], "0"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEmptyInput(t *testing.T) {
	_, err := NewTree(nil)
	if got, want := errors.Is(err, ErrUnsupportedInput), true; got != want {
		t.Errorf("got %v, want ErrUnsupportedInput", err)
	}
}

func prefixFree(codes map[byte]string) (byte, byte, bool) {
	for a, ca := range codes {
		for b, cb := range codes {
			if a == b {
				continue
			}
			if strings.HasPrefix(cb, ca) {
				return a, b, false
			}
		}
	}
	return 0, 0, true
}

func TestPrefixFree(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x1234))
	for iter := 0; iter < 50; iter++ {
		data := make([]byte, rnd.Intn(4096)+1)
		alphabet := rnd.Intn(256) + 1
		for i := range data {
			data[i] = byte(rnd.Intn(alphabet))
		}
		tree, err := NewTree(data)
		if err != nil {
			t.Fatal(err)
		}
		if a, b, ok := prefixFree(tree.Codes()); !ok {
			t.Errorf("%v: code for %#x is a prefix of the code for %#x", iter, a, b)
		}
	}
}

func TestCodeLengthBound(t *testing.T) {
	// Fibonacci frequencies force the most skewed tree an alphabet can
	// produce; even then every code must be at most n-1 bits and fit
	// the 8 bit length field.
	for _, n := range []int{1, 2, 3, 16, 24} {
		fib := []int{1, 1}
		for len(fib) < n {
			fib = append(fib, fib[len(fib)-1]+fib[len(fib)-2])
		}
		var data []byte
		for sym := 0; sym < n; sym++ {
			data = append(data, bytes.Repeat([]byte{byte(sym)}, fib[sym])...)
		}
		tree, err := NewTree(data)
		if err != nil {
			t.Fatal(err)
		}
		bound := n - 1
		if bound < 1 {
			bound = 1
		}
		for sym, code := range tree.Codes() {
			if got := len(code); got < 1 || got > bound {
				t.Errorf("n=%v: %#x: code length %v outside [1, %v]", n, sym, got, bound)
			}
		}
	}

	// The full 256 symbol alphabet with uniform frequencies codes every
	// symbol in exactly 8 bits.
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	tree, err := NewTree(data)
	if err != nil {
		t.Fatal(err)
	}
	codes := tree.Codes()
	if got, want := len(codes), 256; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for sym, code := range codes {
		if got, want := len(code), 8; got != want {
			t.Errorf("%#x: got %v bits, want %v", sym, got, want)
		}
	}
}

func TestDeterministicTieBreak(t *testing.T) {
	// Equal frequencies everywhere; the tie-break must still yield the
	// same tree, codes and bits on every run.
	data := bytes.Repeat([]byte("abcdefgh"), 3)
	first, err := Compress(data)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		next, err := Compress(data)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := next, first; !bytes.Equal(got, want) {
			t.Fatalf("%v: got %x, want %x", i, got, want)
		}
	}
}

func TestArenaHasNoRecursion(t *testing.T) {
	// A maximally skewed 256 symbol tree is 255 levels deep; deriving
	// its codes must not exhaust anything but the explicit stack. The
	// counts grow too fast to realize with real input, so build the
	// arena directly.
	t.Parallel()
	tree := &Tree{}
	prev := tree.add(node{count: 1, sym: 0, leaf: true, left: invalidNode, right: invalidNode})
	for sym := 1; sym < 256; sym++ {
		leaf := tree.add(node{count: 1, sym: byte(sym), leaf: true, left: invalidNode, right: invalidNode})
		prev = tree.add(node{left: prev, right: leaf})
	}
	tree.root = prev
	codes := tree.Codes()
	if got, want := len(codes), 256; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := len(codes[0]), maxCodeLen; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if a, b, ok := prefixFree(codes); !ok {
		t.Errorf("code for %#x is a prefix of the code for %#x", a, b)
	}
}
