// Copyright 2022 trapexit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"

	"github.com/trapexit/3ct/lzss"
)

type checkCmd struct{}

// Reference vectors produced by the 3DO SDK compression library. Empty
// input still carries the two look-ahead slack literals the SDK encoder
// drains before the terminator.
var (
	refEmpty = []byte{0x80, 0x40, 0x00, 0x00}
	refABCD  = []byte{
		0xA0, 0xD0, 0xA8, 0x74,
		0x48, 0x04, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
)

func (cmd *checkCmd) Run() error {
	checks := []struct {
		name string
		fn   func() error
	}{
		{"empty input reference words", checkEmptyReference},
		{"ABCD reference words", checkABCDReference},
		{"ABCD round trip", func() error { return checkRoundTrip([]byte("ABCD")) }},
		{"repetition round trip", checkRepetition},
		{"window wrap round trip", checkWindowWrap},
		{"split feed equivalence", checkSplitFeed},
		{"truncated stream handling", checkTruncation},
	}

	failed := 0
	for _, c := range checks {
		if err := c.fn(); err != nil {
			failed++
			fmt.Printf("FAIL %s: %s\n", c.name, err)
			continue
		}
		fmt.Printf("ok   %s\n", c.name)
	}

	if failed > 0 {
		return errors.Errorf("%d of %d checks failed", failed, len(checks))
	}
	fmt.Println("all checks passed")
	return nil
}

func checkEmptyReference() error {
	if got := lzss.Compress(nil); !bytes.Equal(got, refEmpty) {
		return errors.Errorf("got % x, want % x", got, refEmpty)
	}
	return nil
}

func checkABCDReference() error {
	if got := lzss.Compress([]byte("ABCD")); !bytes.Equal(got, refABCD) {
		return errors.Errorf("got % x, want % x", got, refABCD)
	}
	return nil
}

func checkRoundTrip(data []byte) error {
	dec, err := lzss.Decompress(lzss.Compress(data))
	if err != nil {
		return errors.Wrap(err, "decompress")
	}
	if !bytes.Equal(dec, data) {
		return errors.Errorf("round trip mismatch: %d bytes in, %d bytes out", len(data), len(dec))
	}
	return nil
}

func checkRepetition() error {
	data := append(bytes.Repeat([]byte{'A'}, 18), 0, 0)
	return checkRoundTrip(data)
}

func checkWindowWrap() error {
	data := bytes.Repeat([]byte("abcdefg"), 715)[:5000]
	return checkRoundTrip(data)
}

func checkSplitFeed() error {
	data := bytes.Repeat([]byte("0123456789abcdef"), 64)
	want := lzss.Compress(data)

	for _, k := range []int{1, 3, 100, len(data) - 1} {
		var got []byte
		c, err := lzss.NewCompressor(lzss.WordSinkFunc(func(w uint32) {
			got = append(got,
				byte(w>>24), byte(w>>16), byte(w>>8), byte(w))
		}))
		if err != nil {
			return err
		}
		if err := c.Feed(data[:k]); err != nil {
			return err
		}
		if err := c.Feed(data[k:]); err != nil {
			return err
		}
		if err := c.Close(); err != nil {
			return err
		}
		if !bytes.Equal(got, want) {
			return errors.Errorf("split at %d produced different words", k)
		}
	}
	return nil
}

func checkTruncation() error {
	enc := lzss.Compress([]byte("ABCD"))
	dec, err := lzss.Decompress(enc[:len(enc)-4])
	if err != nil && err != lzss.ErrDataMissing {
		return errors.Wrap(err, "decompress")
	}
	if !bytes.Equal(dec, []byte("ABCD")) {
		return errors.Errorf("truncated decode lost the prefix: % x", dec)
	}
	return nil
}
