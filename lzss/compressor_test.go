// Copyright 2022 trapexit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"bytes"
	"testing"

	"github.com/kr/pretty"
)

// Reference words traced from the 3DO SDK encoder. The drain loop encodes
// two slack byte slots past the real input before the terminator; the
// decoder's word regrouping drops them again.
var (
	refEmpty = []byte{0x80, 0x40, 0x00, 0x00}
	refABCD  = []byte{
		0xA0, 0xD0, 0xA8, 0x74,
		0x48, 0x04, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
)

func TestCompressEmptyReference(t *testing.T) {
	got := Compress(nil)
	if !bytes.Equal(got, refEmpty) {
		t.Fatalf("reference mismatch: %v", pretty.Diff(refEmpty, got))
	}
}

func TestCompressABCDReference(t *testing.T) {
	got := Compress([]byte("ABCD"))
	if !bytes.Equal(got, refABCD) {
		t.Fatalf("reference mismatch: %v", pretty.Diff(refABCD, got))
	}
}

func TestCompressDeterministic(t *testing.T) {
	data := bytes.Repeat([]byte("deterministic?"), 100)
	if !bytes.Equal(Compress(data), Compress(data)) {
		t.Fatal("two runs produced different streams")
	}
}

func TestCompressorNilSink(t *testing.T) {
	if _, err := NewCompressor(nil); err != ErrNilSink {
		t.Fatalf("got %v, want ErrNilSink", err)
	}
}

func TestCompressorUseAfterClose(t *testing.T) {
	c, err := NewCompressor(WordSinkFunc(func(uint32) {}))
	if err != nil {
		t.Fatalf("NewCompressor error %s", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close error %s", err)
	}
	if err := c.Feed([]byte("more")); err != ErrClosed {
		t.Fatalf("Feed after Close: got %v, want ErrClosed", err)
	}
	if err := c.Close(); err != ErrClosed {
		t.Fatalf("second Close: got %v, want ErrClosed", err)
	}
}

// Feeding byte by byte must keep the tree consistent, including across the
// window wrap. The tree is checked every 97 bytes and after Close.
func TestTreeConsistencyDuringCompression(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefg"), 860) // 6020 bytes, wraps the window
	c, err := NewCompressor(WordSinkFunc(func(uint32) {}))
	if err != nil {
		t.Fatalf("NewCompressor error %s", err)
	}
	for i := range data {
		if err := c.Feed(data[i : i+1]); err != nil {
			t.Fatalf("Feed byte %d error %s", i, err)
		}
		if i%97 == 0 {
			checkTree(t, &c.tree)
		}
	}
	checkTree(t, &c.tree)
	if err := c.Close(); err != nil {
		t.Fatalf("Close error %s", err)
	}
	checkTree(t, &c.tree)
}

func TestSplitFeedEquivalence(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 64)
	want := Compress(data)

	for _, k := range []int{1, 3, 100, len(data) - 1} {
		var out sliceSink
		c, err := NewCompressor(&out)
		if err != nil {
			t.Fatalf("NewCompressor error %s", err)
		}
		if err := c.Feed(data[:k]); err != nil {
			t.Fatalf("split %d: first Feed error %s", k, err)
		}
		if err := c.Feed(data[k:]); err != nil {
			t.Fatalf("split %d: second Feed error %s", k, err)
		}
		if err := c.Close(); err != nil {
			t.Fatalf("split %d: Close error %s", k, err)
		}
		if !bytes.Equal(out.buf, want) {
			t.Fatalf("split %d: stream differs from single feed", k)
		}
	}
}

func TestManyChunkSizes(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox "), 60)
	want := Compress(data)

	for _, chunk := range []int{1, 2, 3, 5, 7, 17, 64, 1021} {
		var out sliceSink
		c, err := NewCompressor(&out)
		if err != nil {
			t.Fatalf("NewCompressor error %s", err)
		}
		for off := 0; off < len(data); off += chunk {
			end := off + chunk
			if end > len(data) {
				end = len(data)
			}
			if err := c.Feed(data[off:end]); err != nil {
				t.Fatalf("chunk %d: Feed error %s", chunk, err)
			}
		}
		if err := c.Close(); err != nil {
			t.Fatalf("chunk %d: Close error %s", chunk, err)
		}
		if !bytes.Equal(out.buf, want) {
			t.Fatalf("chunk size %d: stream differs from single feed", chunk)
		}
	}
}
