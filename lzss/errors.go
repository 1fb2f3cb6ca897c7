// Copyright 2022 trapexit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import "errors"

// Errors returned by the codec.
var (
	// ErrNilSink is returned by the constructors for a nil word sink.
	ErrNilSink = errors.New("lzss: sink must not be nil")

	// ErrClosed is returned when a codec is used after Close.
	ErrClosed = errors.New("lzss: codec is closed")

	// ErrWordAlign is returned by Decompressor.Feed when the data is not
	// a whole number of 32-bit words.
	ErrWordAlign = errors.New("lzss: compressed data must be whole 32-bit words")

	// ErrOverflow is returned by the bounded one-shot helpers when the
	// output buffer is too small.
	ErrOverflow = errors.New("lzss: output buffer too small")

	// ErrDataRemains is returned by Decompressor.Close when input words
	// were still queued after the end-of-stream marker. The decoded
	// output is intact.
	ErrDataRemains = errors.New("lzss: data remains after end of stream")

	// ErrDataMissing is returned by Decompressor.Close when the bit
	// stream ran out mid-token. The decoded output is truncated.
	ErrDataMissing = errors.New("lzss: compressed stream truncated")
)
