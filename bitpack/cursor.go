package bitpack

// bitWriter appends value bits to a byte buffer little-bit-first,
// tracking the current byte and bit offset. Target bytes must start
// out zero; bits are OR-ed in.
type bitWriter struct {
	buf []byte
	idx int
	bit uint
}

func (w *bitWriter) put(v uint32, width uint) {
	v &= 1<<width - 1
	for width > 0 {
		free := 8 - w.bit
		n := width
		if n > free {
			n = free
		}
		w.buf[w.idx] |= byte(v) << w.bit
		v >>= n
		width -= n
		w.bit += n
		if w.bit == 8 {
			w.idx++
			w.bit = 0
		}
	}
}

// bitReader is the mirror of bitWriter.
type bitReader struct {
	buf []byte
	idx int
	bit uint
}

func (r *bitReader) get(width uint) uint32 {
	var v uint32
	var got uint
	for got < width {
		avail := 8 - r.bit
		n := width - got
		if n > avail {
			n = avail
		}
		chunk := uint32(r.buf[r.idx]>>r.bit) & (1<<n - 1)
		v |= chunk << got
		got += n
		r.bit += n
		if r.bit == 8 {
			r.idx++
			r.bit = 0
		}
	}
	return v
}

// packCursor and unpackCursor are the generic little-bit-first
// reference implementations. The specialized width codecs must produce
// byte-identical output; tests enforce the equivalence.
func packCursor(width uint, dst []byte, symbols []uint32) {
	w := bitWriter{buf: dst}
	for _, s := range symbols {
		w.put(s, width)
	}
}

func unpackCursor(width uint, symbols []uint32, packed []byte) {
	r := bitReader{buf: packed}
	for i := range symbols {
		symbols[i] = r.get(width)
	}
}
