// Copyright 2022 trapexit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss_test

import (
	"bytes"
	"fmt"
	"io"

	"github.com/trapexit/3ct/lzss"
)

func ExampleCompress() {
	enc := lzss.Compress([]byte("ABCD"))
	fmt.Printf("% x\n", enc)
	// Output:
	// a0 d0 a8 74 48 04 00 00 00 00 00 00
}

func ExampleNewReader() {
	data := []byte("hello, word-sized world!") // 24 bytes, a whole number of words

	var compressed bytes.Buffer
	w := lzss.NewWriter(&compressed)
	if _, err := w.Write(data); err != nil {
		fmt.Println(err)
		return
	}
	if err := w.Close(); err != nil {
		fmt.Println(err)
		return
	}

	var out bytes.Buffer
	if _, err := io.Copy(&out, lzss.NewReader(&compressed)); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out.String())
	// Output:
	// hello, word-sized world!
}
