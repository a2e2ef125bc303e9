package bitpack

// The four width codecs below are the wire-format authority. Each full
// group is stored with direct shifts and masks; the generic bit cursor
// in cursor.go cross-checks the layouts in tests.
//
// Group layouts (little-bit-first, contiguous):
//
//	width  symbols/group  bytes/group
//	4      2              1
//	6      4              3
//	8      1              1
//	12     2              3

// pack4 stores two symbols per byte: low nibble first, high nibble
// second. A trailing unpaired symbol occupies the low nibble of one
// final byte; its high nibble is stored as zero.
func pack4(dst []byte, symbols []uint32) {
	limit := len(symbols) / 2
	for i := 0; i < limit; i++ {
		dst[i] = byte(symbols[2*i]&0x0F) | byte(symbols[2*i+1]&0x0F)<<4
	}
	if len(symbols)%2 != 0 {
		dst[limit] = byte(symbols[len(symbols)-1] & 0x0F)
	}
}

func unpack4(symbols []uint32, packed []byte) {
	limit := len(symbols) / 2
	for i := 0; i < limit; i++ {
		symbols[2*i] = uint32(packed[i] & 0x0F)
		symbols[2*i+1] = uint32(packed[i]&0xF0) >> 4
	}
	if len(symbols)%2 != 0 {
		symbols[len(symbols)-1] = uint32(packed[limit] & 0x0F)
	}
}

// pack6 stores four symbols in three bytes:
//
//	byte0 = s0[0:6) | s1[0:2)<<6
//	byte1 = s1[2:6) | s2[0:4)<<4
//	byte2 = s2[4:6) | s3[0:6)<<2
//
// Tail groups of 1, 2 or 3 symbols emit 1, 2 or 3 bytes respectively,
// continuing the same bit ranges; unused high bits of the last emitted
// byte are stored as zero.
func pack6(dst []byte, symbols []uint32) {
	limit := len(symbols) / 4
	for i := 0; i < limit; i++ {
		s := symbols[4*i : 4*i+4]
		d := dst[3*i : 3*i+3]
		d[0] = byte(s[0]&0x3F) | byte(s[1]&0x03)<<6
		d[1] = byte(s[1]&0x3C)>>2 | byte(s[2]&0x0F)<<4
		d[2] = byte(s[2]&0x30)>>4 | byte(s[3]&0x3F)<<2
	}

	rem := symbols[4*limit:]
	d := dst[3*limit:]
	switch len(rem) {
	case 1:
		d[0] = byte(rem[0] & 0x3F)
	case 2:
		d[0] = byte(rem[0]&0x3F) | byte(rem[1]&0x03)<<6
		d[1] = byte(rem[1]&0x3C) >> 2
	case 3:
		d[0] = byte(rem[0]&0x3F) | byte(rem[1]&0x03)<<6
		d[1] = byte(rem[1]&0x3C)>>2 | byte(rem[2]&0x0F)<<4
		d[2] = byte(rem[2]&0x30) >> 4
	}
}

func unpack6(symbols []uint32, packed []byte) {
	limit := len(symbols) / 4
	for i := 0; i < limit; i++ {
		s := symbols[4*i : 4*i+4]
		p := packed[3*i : 3*i+3]
		s[0] = uint32(p[0] & 0x3F)
		s[1] = uint32(p[0]&0xC0)>>6 | uint32(p[1]&0x0F)<<2
		s[2] = uint32(p[1]&0xF0)>>4 | uint32(p[2]&0x03)<<4
		s[3] = uint32(p[2]&0xFC) >> 2
	}

	rem := symbols[4*limit:]
	p := packed[3*limit:]
	switch len(rem) {
	case 1:
		rem[0] = uint32(p[0] & 0x3F)
	case 2:
		rem[0] = uint32(p[0] & 0x3F)
		rem[1] = uint32(p[0]&0xC0)>>6 | uint32(p[1]&0x0F)<<2
	case 3:
		rem[0] = uint32(p[0] & 0x3F)
		rem[1] = uint32(p[0]&0xC0)>>6 | uint32(p[1]&0x0F)<<2
		rem[2] = uint32(p[1]&0xF0)>>4 | uint32(p[2]&0x03)<<4
	}
}

// pack8 is an identity copy, one byte per symbol.
func pack8(dst []byte, symbols []uint32) {
	for i, s := range symbols {
		dst[i] = byte(s)
	}
}

func unpack8(symbols []uint32, packed []byte) {
	for i := range symbols {
		symbols[i] = uint32(packed[i])
	}
}

// pack12 stores two symbols in three bytes:
//
//	byte0 = s0[0:8)
//	byte1 = s0[8:12) | s1[0:4)<<4
//	byte2 = s1[4:12)
//
// A trailing unpaired symbol emits two bytes: its low 8 bits, then its
// high 4 bits in the low nibble of the second byte (high nibble zero).
func pack12(dst []byte, symbols []uint32) {
	limit := len(symbols) / 2
	for i := 0; i < limit; i++ {
		s0, s1 := symbols[2*i], symbols[2*i+1]
		d := dst[3*i : 3*i+3]
		d[0] = byte(s0 & 0xFF)
		d[1] = byte(s0&0xF00>>8) | byte(s1&0x00F)<<4
		d[2] = byte(s1 & 0xFF0 >> 4)
	}
	if len(symbols)%2 != 0 {
		s := symbols[len(symbols)-1]
		dst[3*limit] = byte(s & 0xFF)
		dst[3*limit+1] = byte(s & 0xF00 >> 8)
	}
}

func unpack12(symbols []uint32, packed []byte) {
	limit := len(symbols) / 2
	for i := 0; i < limit; i++ {
		p := packed[3*i : 3*i+3]
		symbols[2*i] = uint32(p[0]) | uint32(p[1]&0x0F)<<8
		symbols[2*i+1] = uint32(p[1]&0xF0)>>4 | uint32(p[2])<<4
	}
	if len(symbols)%2 != 0 {
		p := packed[3*limit:]
		symbols[len(symbols)-1] = uint32(p[0]) | uint32(p[1]&0x0F)<<8
	}
}
