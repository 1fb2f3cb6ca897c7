// Copyright 2022 trapexit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"encoding/binary"
	"io"
)

// wordWriter adapts an io.Writer to the WordSink contract, serializing
// each word big-endian and latching the first write error.
type wordWriter struct {
	w   io.Writer
	err error
}

func (ww *wordWriter) PutWord(word uint32) {
	if ww.err != nil {
		return
	}
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], word)
	_, ww.err = ww.w.Write(buf[:])
}

// Writer compresses data written to it onto an underlying io.Writer. Close
// must be called to terminate the stream.
//
// The format regroups decoded data into whole words: writing a byte count
// that is not a multiple of 4 produces a stream that does not decode to the
// same length. A remainder of 1 byte is dropped; a remainder of 2 or 3
// bytes comes back filled out to a whole word with trailing filler bytes.
// Callers that care pad with zeros, as the command line tool does.
type Writer struct {
	ww  wordWriter
	c   *Compressor
	err error
}

// NewWriter creates a Writer compressing onto w.
func NewWriter(w io.Writer) *Writer {
	lw := &Writer{ww: wordWriter{w: w}}
	lw.c, _ = NewCompressor(&lw.ww)
	return lw
}

// Write feeds p to the compressor. It satisfies the io.Writer interface.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	if err = w.c.Feed(p); err == nil {
		err = w.ww.err
	}
	if err != nil {
		w.err = err
		return 0, err
	}
	return len(p), nil
}

// Close drains the compressor, writes the terminator and flushes the last
// word to the underlying writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	err := w.c.Close()
	if err == nil {
		err = w.ww.err
	}
	if err != nil {
		w.err = err
		return err
	}
	w.err = ErrClosed
	return nil
}
