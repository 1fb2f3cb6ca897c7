// Copyright 2022 trapexit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

// Decompressor is the decoding state machine. Compressed words go in
// through Feed; reconstructed data comes out through the sink regrouped
// into 32-bit words. A token is only started while at least one unloaded
// input word remains, which is enough for any token to complete, so feeds
// may be cut at any word boundary.
type Decompressor struct {
	sink       WordSink
	br         bitReader
	win        window
	wordBuffer uint32
	bytesLeft  uint32
	pos        uint32
	eos        bool
	trailing   bool
	closed     bool
}

// NewDecompressor returns a decompressor delivering decoded words to sink.
func NewDecompressor(sink WordSink) (*Decompressor, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	return &Decompressor{
		sink:      sink,
		bytesLeft: 4,
		pos:       1,
	}, nil
}

// Feed consumes the next chunk of the compressed stream. len(p) must be a
// multiple of 4. Chunks fed after the end-of-stream marker are not decoded
// but are reported by Close as remaining data.
func (d *Decompressor) Feed(p []byte) error {
	if d.closed {
		return ErrClosed
	}
	if len(p)%4 != 0 {
		return ErrWordAlign
	}
	if d.eos {
		if len(p) > 0 {
			d.trailing = true
		}
		return nil
	}

	d.br.feed(p)
	for d.br.words() > 0 {
		if d.br.read(1) != 0 {
			d.emit(byte(d.br.read(8)))
			continue
		}

		matchPos := d.br.read(IndexBits)
		if matchPos == EndOfStream {
			d.eos = true
			break
		}
		matchLen := d.br.read(LengthBits) + BreakEven

		// Inclusive upper bound: a length field of L plays back L+1
		// bytes. That is the wire format, not an off-by-one.
		for i := matchPos; i <= matchPos+matchLen; i++ {
			d.emit(d.win.at(i))
		}
	}
	return nil
}

// Close flushes the pending output word if and only if it is complete and
// reports the stream status. ErrDataRemains means input was left over after
// the terminator; ErrDataMissing means the stream ended mid-token.
func (d *Decompressor) Close() error {
	if d.closed {
		return ErrClosed
	}
	d.closed = true

	if d.bytesLeft == 0 {
		d.sink.PutWord(d.wordBuffer)
	}

	var err error
	if d.br.words() > 0 || d.trailing {
		err = ErrDataRemains
	}
	if d.br.underflow {
		err = ErrDataMissing
	}
	return err
}

// emit appends one decoded byte to the output word buffer and plays it
// back into the window. A completed word is only delivered once the next
// byte arrives (or at Close), so trailing bytes that never fill a word are
// silently dropped, exactly like the reference.
func (d *Decompressor) emit(c byte) {
	if d.bytesLeft == 0 {
		d.sink.PutWord(d.wordBuffer)
		d.wordBuffer = uint32(c)
		d.bytesLeft = 3
	} else {
		d.wordBuffer = d.wordBuffer<<8 | uint32(c)
		d.bytesLeft--
	}
	d.win.set(d.pos, c)
	d.pos = modWindow(d.pos + 1)
}
