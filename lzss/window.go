// Copyright 2022 trapexit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

// window is the sliding dictionary: a fixed circular buffer addressed
// modulo WindowSize. Both sides of the codec start from an all-zero window
// so that phrases reaching into never-written slots decode identically.
type window struct {
	data [WindowSize]byte
}

func (w *window) at(off uint32) byte {
	return w.data[off&windowMask]
}

func (w *window) set(off uint32, c byte) {
	w.data[off&windowMask] = c
}
