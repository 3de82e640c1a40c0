// Copyright 2024 The jvozip Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"cloudeng.io/cmdutil"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/file/s3file"
	"github.com/grailbio/base/must"
	"github.com/jorenvo/jvozip"
	"github.com/schollz/progressbar/v2"
	"golang.org/x/crypto/ssh/terminal"
	"v.io/x/lib/cmd/flagvar"
)

var commandline struct {
	InputFile   string `cmd:"input,,'input file, s3 path, or url, omit for stdin'"`
	OutputFile  string `cmd:"output,,'output file or s3 path, omit for stdout'"`
	GraphFile   string `cmd:"graph,,'write a graphviz rendering of the code tree to this file (compress only)'"`
	ProgressBar bool   `cmd:"progress,true,display a progress bar while reading the input"`
	Verbose     bool   `cmd:"verbose,false,verbose debug/trace information"`
}

func init() {
	must.Nil(flagvar.RegisterFlagsInStruct(flag.CommandLine, "cmd", &commandline,
		nil, nil))
	file.RegisterImplementation("s3", func() file.Implementation {
		return s3file.NewImplementation(
			s3file.NewDefaultProvider(session.Options{}), s3file.Options{})
	})
}

func openFileOrURL(ctx context.Context, name string) (io.Reader, int64, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if len(name) == 0 {
		return os.Stdin, -1, noop, nil
	}
	if strings.HasPrefix(name, "http") {
		resp, err := http.Get(name)
		if err != nil {
			return nil, 0, nil, err
		}
		return resp.Body,
			resp.ContentLength,
			func(context.Context) error {
				resp.Body.Close()
				return nil
			},
			nil
	}
	info, err := file.Stat(ctx, name)
	if err != nil {
		return nil, 0, nil, err
	}
	file, err := file.Open(ctx, name)
	if err != nil {
		return nil, 0, nil, err
	}
	return file.Reader(ctx), info.Size(), file.Close, nil
}

func createFile(ctx context.Context, name string) (io.Writer, func(context.Context) error, error) {
	if len(name) == 0 {
		return os.Stdout,
			func(context.Context) error {
				return nil
			},
			nil
	}
	file, err := file.Create(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	return file.Writer(ctx), file.Close, nil
}

type barWriter struct {
	bar *progressbar.ProgressBar
}

func (w barWriter) Write(buf []byte) (int, error) {
	w.bar.Add(len(buf))
	return len(buf), nil
}

// readInput reads the entire input, showing a progress bar when its
// size is known and the bar won't interleave with output on stdout.
func readInput(ctx context.Context) ([]byte, error) {
	rd, size, cleanup, err := openFileOrURL(ctx, commandline.InputFile)
	if err != nil {
		return nil, err
	}
	defer cleanup(ctx)

	isTTY := terminal.IsTerminal(int(os.Stdout.Fd()))
	writingToStdout := len(commandline.OutputFile) == 0
	if commandline.ProgressBar && size > 0 && !(writingToStdout && isTTY) {
		progressBarWr := os.Stdout
		if isTTY {
			progressBarWr = os.Stderr
		}
		bar := progressbar.NewOptions64(size,
			progressbar.OptionSetBytes64(size),
			progressbar.OptionSetWriter(progressBarWr),
			progressbar.OptionSetPredictTime(true))
		bar.RenderBlank()
		defer fmt.Fprintf(progressBarWr, "\n")
		rd = io.TeeReader(rd, barWriter{bar})
	}
	return io.ReadAll(rd)
}

func writeOutput(ctx context.Context, data []byte) (returnErr error) {
	wr, cleanup, err := createFile(ctx, commandline.OutputFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := cleanup(ctx); err != nil {
			log.Printf("writer cleanup: %v", err)
			if returnErr == nil {
				returnErr = err
			}
		}
	}()
	_, returnErr = wr.Write(data)
	return
}

func compressCmd(ctx context.Context) error {
	data, err := readInput(ctx)
	if err != nil {
		return err
	}
	tree, err := jvozip.NewTree(data)
	if err != nil {
		return err
	}
	if len(commandline.GraphFile) > 0 {
		if err := tree.RenderGraph(ctx, commandline.GraphFile); err != nil {
			return err
		}
	}
	if commandline.Verbose {
		printCodes(os.Stderr, tree.Codes())
	}
	blob, err := tree.Compress()
	if err != nil {
		return err
	}
	if commandline.Verbose {
		fmt.Fprintf(os.Stderr, "%v bytes in, %v bytes out\n", len(data), len(blob))
	}
	return writeOutput(ctx, blob)
}

func decompressCmd(ctx context.Context) error {
	blob, err := readInput(ctx)
	if err != nil {
		return err
	}
	data, err := jvozip.Decompress(blob)
	if err != nil {
		return err
	}
	return writeOutput(ctx, data)
}

func main() {
	flag.Parse()
	if err := runner(); err != nil {
		log.Fatal(err)
	}
}

func runner() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cmdutil.HandleSignals(cancel, os.Interrupt)

	switch action := flag.Arg(0); action {
	case "compress":
		return compressCmd(ctx)
	case "decompress":
		return decompressCmd(ctx)
	case "inspect":
		return inspectCmd(ctx, flag.Args()[1:])
	default:
		return fmt.Errorf("unknown action %q: expected compress, decompress or inspect", action)
	}
}
