// Copyright 2024 The jvozip Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jvozip

import (
	"bytes"
	"io"
)

type reader struct {
	rd  io.Reader
	buf *bytes.Reader
	err error
}

// NewReader returns an io.Reader that yields the decompressed contents
// of rd. The compressed input is read in full before the first byte is
// returned; the format is not streamable since the payload's bit length
// is only implied by the 32 bit symbol count in the header.
func NewReader(rd io.Reader) io.Reader {
	return &reader{rd: rd}
}

// Read implements io.Reader.
func (r *reader) Read(buf []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.buf == nil {
		compressed, err := io.ReadAll(r.rd)
		if err == nil {
			var data []byte
			data, err = Decompress(compressed)
			r.buf = bytes.NewReader(data)
		}
		if err != nil {
			r.err = err
			return 0, err
		}
	}
	return r.buf.Read(buf)
}

type writer struct {
	wr     io.Writer
	buf    bytes.Buffer
	closed bool
}

// NewWriter returns an io.WriteCloser that buffers everything written to
// it and writes the compressed blob to wr on Close. Close must be called
// for any output to be produced. It does not close the underlying
// writer.
func NewWriter(wr io.Writer) io.WriteCloser {
	return &writer{wr: wr}
}

// Write implements io.Writer.
func (w *writer) Write(buf []byte) (int, error) {
	return w.buf.Write(buf)
}

// Close compresses the buffered data and writes it out.
func (w *writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	blob, err := Compress(w.buf.Bytes())
	if err != nil {
		return err
	}
	_, err = w.wr.Write(blob)
	return err
}
