// Copyright 2024 The jvozip Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"cloudeng.io/errors"
	"github.com/jorenvo/jvozip"
)

func printCodes(wr io.Writer, codes map[byte]string) {
	symbols := make([]int, 0, len(codes))
	for sym := range codes {
		symbols = append(symbols, int(sym))
	}
	sort.Ints(symbols)
	fmt.Fprintf(wr, "Symbol, Length, Code\n")
	for _, sym := range symbols {
		code := codes[byte(sym)]
		fmt.Fprintf(wr, "% 6x   : % 6d - %v\n", sym, len(code), code)
	}
}

func inspectFile(ctx context.Context, name string) error {
	rd, _, cleanup, err := openFileOrURL(ctx, name)
	if err != nil {
		return err
	}
	defer cleanup(ctx)
	blob, err := io.ReadAll(rd)
	if err != nil {
		return fmt.Errorf("failed to read: %v: %v", name, err)
	}
	stats, err := jvozip.ReadStats(blob)
	if err != nil {
		return fmt.Errorf("%v: %v", name, err)
	}
	fmt.Printf("=== %v ===\n", name)
	fmt.Printf("Symbol, Length, Code\n")
	for _, e := range stats.Table {
		fmt.Printf("% 6x   : % 6d - %v\n", e.Symbol, len(e.Code), e.Code)
	}
	fmt.Printf("Distinct symbols     : %v\n", len(stats.Table))
	fmt.Printf("Decompressed size    : %v\n", stats.TotalSymbols)
	fmt.Printf("Compressed size      : %v\n", stats.CompressedBytes)
	return nil
}

// inspectCmd prints the code table and declared sizes of each compressed
// blob without decompressing the payloads.
func inspectCmd(ctx context.Context, args []string) error {
	errs := errors.M{}
	for _, arg := range args {
		errs.Append(inspectFile(ctx, arg))
	}
	return errs.Err()
}
