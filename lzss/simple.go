// Copyright 2022 trapexit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

// Compress compresses src in one shot and returns the packed stream in
// wire byte order. The stream always ends with the terminator token and
// zero padding, so even empty input produces output.
func Compress(src []byte) []byte {
	var out sliceSink
	c, _ := NewCompressor(&out)
	c.Feed(src)
	c.Close()
	return out.buf
}

// Decompress decodes src, a whole stream in wire byte order, in one shot.
// The decoded bytes are returned even when an error is reported:
// ErrDataRemains leaves the output intact, ErrDataMissing marks it
// truncated.
func Decompress(src []byte) ([]byte, error) {
	var out sliceSink
	d, _ := NewDecompressor(&out)
	if err := d.Feed(src); err != nil {
		return nil, err
	}
	return out.buf, d.Close()
}

// CompressBuffer compresses src into dst and returns the number of bytes
// written, or ErrOverflow if dst cannot hold the whole stream.
func CompressBuffer(dst, src []byte) (int, error) {
	s := boundedSink{buf: dst}
	c, _ := NewCompressor(&s)
	c.Feed(src)
	c.Close()
	if s.overflow {
		return 0, ErrOverflow
	}
	return s.n, nil
}

// DecompressBuffer decodes src into dst and returns the number of bytes
// written. ErrOverflow reports an undersized dst; stream status errors are
// the same as Decompress.
func DecompressBuffer(dst, src []byte) (int, error) {
	s := boundedSink{buf: dst}
	d, _ := NewDecompressor(&s)
	if err := d.Feed(src); err != nil {
		return 0, err
	}
	err := d.Close()
	if s.overflow {
		return 0, ErrOverflow
	}
	return s.n, err
}
