// Package endian converts between fixed-size arrays of 32-bit words and their
// big- or little-endian byte representations. It is the level-0 dependency
// of every cipher, hash and MAC kernel in the module: nothing in this
// package depends on anything else here.
package endian

// BigEndianToBytes packs words into out using big-endian byte order, four
// bytes per word.
func BigEndianToBytes(out []byte, words []uint32) {
	for i, w := range words {
		out[i*4+0] = byte(w >> 24)
		out[i*4+1] = byte(w >> 16)
		out[i*4+2] = byte(w >> 8)
		out[i*4+3] = byte(w)
	}
}

// BigEndianFromBytes unpacks big-endian bytes into words, four bytes per word.
func BigEndianFromBytes(words []uint32, in []byte) {
	for i := range words {
		words[i] = uint32(in[i*4+0])<<24 | uint32(in[i*4+1])<<16 | uint32(in[i*4+2])<<8 | uint32(in[i*4+3])
	}
}

// LittleEndianToBytes packs words into out using little-endian byte order,
// four bytes per word.
func LittleEndianToBytes(out []byte, words []uint32) {
	for i, w := range words {
		out[i*4+0] = byte(w)
		out[i*4+1] = byte(w >> 8)
		out[i*4+2] = byte(w >> 16)
		out[i*4+3] = byte(w >> 24)
	}
}

// LittleEndianFromBytes unpacks little-endian bytes into words, four bytes
// per word.
func LittleEndianFromBytes(words []uint32, in []byte) {
	for i := range words {
		words[i] = uint32(in[i*4+0]) | uint32(in[i*4+1])<<8 | uint32(in[i*4+2])<<16 | uint32(in[i*4+3])<<24
	}
}
