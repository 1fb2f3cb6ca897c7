// Copyright 2022 trapexit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"encoding/binary"
	"io"
)

// Reader decompresses a stream read from an underlying io.Reader. It stops
// at the end-of-stream marker, leaving any bytes beyond the word holding it
// unread. A trailing partial word is zero padded the way the reference tool
// reads files. A stream cut off before its terminator ends with io.EOF
// after the last token the decoder could start; ErrDataMissing is returned
// only if the bit reader underflows.
type Reader struct {
	r    io.Reader
	d    *Decompressor
	out  []byte
	word [4]byte
	err  error
}

// NewReader creates a Reader decompressing from r.
func NewReader(r io.Reader) *Reader {
	lr := &Reader{r: r}
	lr.d, _ = NewDecompressor(WordSinkFunc(func(w uint32) {
		lr.out = binary.BigEndian.AppendUint32(lr.out, w)
	}))
	return lr
}

// Read returns decompressed data. It satisfies the io.Reader interface.
func (r *Reader) Read(p []byte) (n int, err error) {
	for len(r.out) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		r.fill()
	}
	n = copy(p, r.out)
	r.out = r.out[n:]
	return n, nil
}

// fill pulls one compressed word from the underlying reader and decodes
// it. On exhaustion it settles the stream status into r.err.
func (r *Reader) fill() {
	n, err := io.ReadFull(r.r, r.word[:])
	if err == io.ErrUnexpectedEOF {
		for i := n; i < len(r.word); i++ {
			r.word[i] = 0
		}
		err = nil
	}
	if err != nil {
		if err == io.EOF {
			err = r.finish()
		}
		r.err = err
		return
	}
	if err := r.d.Feed(r.word[:]); err != nil {
		r.err = err
		return
	}
	if r.d.eos {
		r.err = r.finish()
	}
}

// finish closes the decompressor, which may deliver one last word to the
// sink, and maps the status: leftover input beyond the terminator is not
// an error at this layer.
func (r *Reader) finish() error {
	switch err := r.d.Close(); err {
	case nil, ErrDataRemains:
		return io.EOF
	default:
		return err
	}
}
