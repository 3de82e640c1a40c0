//go:build ignore
// +build ignore

// Copyright 2024 The jvozip Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// gentestdata writes sample corpora and their compressed blobs into
// testdata/. Run it manually with go run when the container format
// changes.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/jorenvo/jvozip"
	"github.com/jorenvo/jvozip/internal"
)

func main() {
	if err := os.MkdirAll("testdata", 0770); err != nil {
		log.Fatal(err)
	}
	for _, tc := range []struct {
		name string
		data []byte
	}{
		{"hello", []byte("hello world\n")},
		{"scenario", []byte("AAAAABBBBCCCDD")},
		{"text64KB", internal.GenPredictableText(64 * 1024)},
		{"random4KB", internal.GenPredictableRandomData(4 * 1024)},
	} {
		raw := filepath.Join("testdata", tc.name)
		if err := os.WriteFile(raw, tc.data, 0660); err != nil {
			log.Fatal(err)
		}
		blob, err := jvozip.Compress(tc.data)
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(raw+".jvo", blob, 0660); err != nil {
			log.Fatal(err)
		}
		log.Printf("%v: %v -> %v bytes", tc.name, len(tc.data), len(blob))
	}
}
