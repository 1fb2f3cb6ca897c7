// Copyright 2022 trapexit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

// Wire format constants. IndexBits is the width of a window offset on the
// wire and fixes the window size; LengthBits is the width of the length
// field and, together with BreakEven, fixes the longest encodable phrase.
// These values are part of the format and cannot be tuned.
const (
	IndexBits  = 12
	LengthBits = 4

	// WindowSize is the size of the sliding dictionary in bytes.
	WindowSize = 1 << IndexBits

	// BreakEven is the longest match that is still cheaper to emit as
	// literals. Match tokens encode lengths of BreakEven+1 and up.
	BreakEven = 2

	// LookAheadSize is the maximum match length.
	LookAheadSize = (1 << LengthBits) + BreakEven

	// EndOfStream is the reserved window offset used as terminator.
	EndOfStream = 0
)

const (
	windowMask = WindowSize - 1

	// treeRoot is the sentinel node whose right child is the true root.
	treeRoot = WindowSize

	// unused marks an absent parent or child link. It collides with
	// window offset 0, which is safe because offset 0 is reserved as
	// EndOfStream and never becomes a live node.
	unused = 0
)

// modWindow reduces a window offset into the buffer range.
func modWindow(off uint32) uint32 {
	return off & windowMask
}
