// Copyright 2022 trapexit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import "encoding/binary"

// A WordSink consumes the 32-bit words produced by a codec. The compressor
// delivers words of the packed bit stream; the decompressor delivers words
// whose bytes are the reconstructed data in stream order. Serialize with
// big-endian byte order to obtain the wire bytes.
type WordSink interface {
	PutWord(word uint32)
}

// WordSinkFunc adapts a plain function to the WordSink interface.
type WordSinkFunc func(word uint32)

// PutWord calls f(word).
func (f WordSinkFunc) PutWord(word uint32) {
	f(word)
}

// sliceSink collects words as big-endian bytes into a growing slice.
type sliceSink struct {
	buf []byte
}

func (s *sliceSink) PutWord(word uint32) {
	s.buf = binary.BigEndian.AppendUint32(s.buf, word)
}

// boundedSink writes words into a fixed buffer and records overflow
// instead of growing, mirroring the bounded one-shot contract.
type boundedSink struct {
	buf      []byte
	n        int
	overflow bool
}

func (s *boundedSink) PutWord(word uint32) {
	if s.n+4 > len(s.buf) {
		s.overflow = true
		return
	}
	binary.BigEndian.PutUint32(s.buf[s.n:], word)
	s.n += 4
}
