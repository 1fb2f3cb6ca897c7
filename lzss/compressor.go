// Copyright 2022 trapexit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

// Compressor is the encoding state machine. It may be fed arbitrary chunks
// of input; all loop state survives call boundaries, so splitting the input
// differently never changes the output. Output words reach the sink during
// the Feed or Close call that produced them.
//
// The machine has three phases. Warm-up copies the first LookAheadSize
// bytes into the window. The main loop then repeatedly decides literal
// versus match for the current position, writes the token, and replaces the
// consumed bytes one at a time: delete the tree node whose window slot is
// about to be overwritten, pull in the next input byte, and reindex the new
// string. secondPass records the one legal suspension point inside that
// replacement loop (after the delete, before the byte read). Close drains
// the remaining look-ahead with no new input, writes the terminator and
// flushes the bit stream.
type Compressor struct {
	bw         bitWriter
	win        window
	tree       searchTree
	lookAhead  int
	matchLen   int
	matchPos   uint32
	currentPos uint32
	replaceCnt int
	secondPass bool
	closed     bool
}

// NewCompressor returns a compressor delivering the packed stream to sink.
func NewCompressor(sink WordSink) (*Compressor, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	c := new(Compressor)
	c.bw.init(sink)
	c.lookAhead = 1
	c.currentPos = 1
	c.tree.init()
	return c, nil
}

// Feed consumes the next chunk of input. The chunk boundaries are
// arbitrary; a stream fed byte by byte compresses identically to one fed in
// a single call.
func (c *Compressor) Feed(p []byte) error {
	if c.closed {
		return ErrClosed
	}
	if len(p) == 0 {
		return nil
	}

	if c.secondPass {
		// Resume inside the replacement loop: the delete already
		// happened last call, only the byte read is owed.
		c.secondPass = false
		p = c.slide(p)
	} else {
		for c.lookAhead <= LookAheadSize {
			if len(p) == 0 {
				return nil
			}
			c.win.data[c.lookAhead] = p[0]
			c.lookAhead++
			p = p[1:]
		}
		c.lookAhead--
	}

	for {
		for c.replaceCnt > 0 {
			c.replaceCnt--
			c.tree.delete(modWindow(c.currentPos + LookAheadSize))
			if len(p) == 0 {
				c.secondPass = true
				return nil
			}
			p = c.slide(p)
		}
		c.emit()
	}
}

// Close drains the look-ahead, writes the terminator and flushes the final
// word. The compressor cannot be used afterwards.
func (c *Compressor) Close() error {
	if c.closed {
		return ErrClosed
	}
	c.closed = true

	c.drain()
	c.bw.writeBits(0, EndOfStream, IndexBits)
	c.bw.flush()
	return nil
}

// emit writes the token for the current position and sets up the
// replacement count. Matches no longer than BreakEven go out as literals.
func (c *Compressor) emit() {
	if c.matchLen > c.lookAhead {
		c.matchLen = c.lookAhead
	}
	if c.matchLen <= BreakEven {
		c.bw.writeBits(1, uint32(c.win.at(c.currentPos)), 8)
		c.replaceCnt = 1
	} else {
		code := c.matchPos<<LengthBits | uint32(c.matchLen-(BreakEven+1))
		c.bw.writeBits(0, code, IndexBits+LengthBits)
		c.replaceCnt = c.matchLen
	}
}

// slide pulls the next input byte into the slot leaving the look-ahead,
// advances the coding position and reindexes the new string.
func (c *Compressor) slide(p []byte) []byte {
	c.win.set(c.currentPos+LookAheadSize, p[0])
	c.currentPos = modWindow(c.currentPos + 1)
	if c.lookAhead != 0 {
		c.matchLen, c.matchPos = c.tree.insert(&c.win, c.currentPos)
	}
	return p[1:]
}

// slideDry is slide without input: the window keeps whatever the slot
// already held. Used only while draining.
func (c *Compressor) slideDry() {
	c.currentPos = modWindow(c.currentPos + 1)
	if c.lookAhead != 0 {
		c.matchLen, c.matchPos = c.tree.insert(&c.win, c.currentPos)
	}
}

// drain encodes the bytes still sitting in the look-ahead, decrementing
// lookAhead in place of the byte read until it goes negative. The loop
// bounds match the reference codec exactly: the tail it encodes includes
// two slack byte slots which the decoder's word regrouping drops again.
func (c *Compressor) drain() {
	if c.secondPass {
		c.secondPass = false
		c.slideDry()
	}
	for {
		for c.replaceCnt > 0 {
			c.replaceCnt--
			c.tree.delete(modWindow(c.currentPos + LookAheadSize))
			c.lookAhead--
			c.slideDry()
		}
		if c.lookAhead < 0 {
			return
		}
		c.emit()
	}
}
