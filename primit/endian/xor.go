package endian

// XORBytes XORs src into dst in place, one byte at a time, for
// len(dst) == len(src). Callers own the slices; no allocation happens here.
func XORBytes(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// XORWords XORs src into dst in place, word by word.
func XORWords(dst, src []uint32) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
