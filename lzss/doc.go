// Copyright 2022 trapexit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lzss implements the LZSS variant used by the 3DO SDK compression
library: an LZ77-style codec with a 4096-byte sliding window, 12-bit window
offsets and 4-bit match lengths covering phrases of 3 to 18 bytes.

The wire format is a single MSB-first bit stream packed into big-endian
32-bit words. A 1 flag bit introduces an 8-bit literal; a 0 flag bit
introduces a 12-bit window offset followed by a 4-bit length field. Offset
zero is reserved as the end-of-stream marker and carries no length field.
The last word is zero padded.

Compressor and Decompressor are resumable state machines fed in chunks:
arbitrary byte chunks for the Compressor, whole 32-bit words for the
Decompressor. Both deliver output as 32-bit words through a caller-supplied
WordSink. Writer and Reader wrap them in the usual io interfaces, and
Compress/Decompress cover the one-shot case.

Compress a buffer and get it back:

	enc := lzss.Compress(data)
	dec, err := lzss.Decompress(enc)
	if err != nil {
		return err
	}
	// dec equals data when len(data) is a multiple of 4

Stream a file:

	w := lzss.NewWriter(dst)
	if _, err := io.Copy(w, src); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

Decoded output is regrouped into whole words: a stream whose decoded length
is not a multiple of 4 bytes silently loses the trailing 1-3 bytes. This
reproduces the reference library byte for byte and is the reason the
command line tool zero pads its input.
*/
package lzss
