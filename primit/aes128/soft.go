package aes128

import "github.com/go-primit/primit/primit/endian"

// sbox is the FIPS 197 S-box. It is the only secret-dependent memory index
// in this package; every other lookup and branch is data-independent.
var sbox = [256]byte{
	0x63, 0x7c, 0x77, 0x7b, 0xf2, 0x6b, 0x6f, 0xc5, 0x30, 0x01, 0x67, 0x2b, 0xfe, 0xd7, 0xab, 0x76,
	0xca, 0x82, 0xc9, 0x7d, 0xfa, 0x59, 0x47, 0xf0, 0xad, 0xd4, 0xa2, 0xaf, 0x9c, 0xa4, 0x72, 0xc0,
	0xb7, 0xfd, 0x93, 0x26, 0x36, 0x3f, 0xf7, 0xcc, 0x34, 0xa5, 0xe5, 0xf1, 0x71, 0xd8, 0x31, 0x15,
	0x04, 0xc7, 0x23, 0xc3, 0x18, 0x96, 0x05, 0x9a, 0x07, 0x12, 0x80, 0xe2, 0xeb, 0x27, 0xb2, 0x75,
	0x09, 0x83, 0x2c, 0x1a, 0x1b, 0x6e, 0x5a, 0xa0, 0x52, 0x3b, 0xd6, 0xb3, 0x29, 0xe3, 0x2f, 0x84,
	0x53, 0xd1, 0x00, 0xed, 0x20, 0xfc, 0xb1, 0x5b, 0x6a, 0xcb, 0xbe, 0x39, 0x4a, 0x4c, 0x58, 0xcf,
	0xd0, 0xef, 0xaa, 0xfb, 0x43, 0x4d, 0x33, 0x85, 0x45, 0xf9, 0x02, 0x7f, 0x50, 0x3c, 0x9f, 0xa8,
	0x51, 0xa3, 0x40, 0x8f, 0x92, 0x9d, 0x38, 0xf5, 0xbc, 0xb6, 0xda, 0x21, 0x10, 0xff, 0xf3, 0xd2,
	0xcd, 0x0c, 0x13, 0xec, 0x5f, 0x97, 0x44, 0x17, 0xc4, 0xa7, 0x7e, 0x3d, 0x64, 0x5d, 0x19, 0x73,
	0x60, 0x81, 0x4f, 0xdc, 0x22, 0x2a, 0x90, 0x88, 0x46, 0xee, 0xb8, 0x14, 0xde, 0x5e, 0x0b, 0xdb,
	0xe0, 0x32, 0x3a, 0x0a, 0x49, 0x06, 0x24, 0x5c, 0xc2, 0xd3, 0xac, 0x62, 0x91, 0x95, 0xe4, 0x79,
	0xe7, 0xc8, 0x37, 0x6d, 0x8d, 0xd5, 0x4e, 0xa9, 0x6c, 0x56, 0xf4, 0xea, 0x65, 0x7a, 0xae, 0x08,
	0xba, 0x78, 0x25, 0x2e, 0x1c, 0xa6, 0xb4, 0xc6, 0xe8, 0xdd, 0x74, 0x1f, 0x4b, 0xbd, 0x8b, 0x8a,
	0x70, 0x3e, 0xb5, 0x66, 0x48, 0x03, 0xf6, 0x0e, 0x61, 0x35, 0x57, 0xb9, 0x86, 0xc1, 0x1d, 0x9e,
	0xe1, 0xf8, 0x98, 0x11, 0x69, 0xd9, 0x8e, 0x94, 0x9b, 0x1e, 0x87, 0xe9, 0xce, 0x55, 0x28, 0xdf,
	0x8c, 0xa1, 0x89, 0x0d, 0xbf, 0xe6, 0x42, 0x68, 0x41, 0x99, 0x2d, 0x0f, 0xb0, 0x54, 0xbb, 0x16,
}

var rsbox = [256]byte{
	0x52, 0x09, 0x6a, 0xd5, 0x30, 0x36, 0xa5, 0x38, 0xbf, 0x40, 0xa3, 0x9e, 0x81, 0xf3, 0xd7, 0xfb,
	0x7c, 0xe3, 0x39, 0x82, 0x9b, 0x2f, 0xff, 0x87, 0x34, 0x8e, 0x43, 0x44, 0xc4, 0xde, 0xe9, 0xcb,
	0x54, 0x7b, 0x94, 0x32, 0xa6, 0xc2, 0x23, 0x3d, 0xee, 0x4c, 0x95, 0x0b, 0x42, 0xfa, 0xc3, 0x4e,
	0x08, 0x2e, 0xa1, 0x66, 0x28, 0xd9, 0x24, 0xb2, 0x76, 0x5b, 0xa2, 0x49, 0x6d, 0x8b, 0xd1, 0x25,
	0x72, 0xf8, 0xf6, 0x64, 0x86, 0x68, 0x98, 0x16, 0xd4, 0xa4, 0x5c, 0xcc, 0x5d, 0x65, 0xb6, 0x92,
	0x6c, 0x70, 0x48, 0x50, 0xfd, 0xed, 0xb9, 0xda, 0x5e, 0x15, 0x46, 0x57, 0xa7, 0x8d, 0x9d, 0x84,
	0x90, 0xd8, 0xab, 0x00, 0x8c, 0xbc, 0xd3, 0x0a, 0xf7, 0xe4, 0x58, 0x05, 0xb8, 0xb3, 0x45, 0x06,
	0xd0, 0x2c, 0x1e, 0x8f, 0xca, 0x3f, 0x0f, 0x02, 0xc1, 0xaf, 0xbd, 0x03, 0x01, 0x13, 0x8a, 0x6b,
	0x3a, 0x91, 0x11, 0x41, 0x4f, 0x67, 0xdc, 0xea, 0x97, 0xf2, 0xcf, 0xce, 0xf0, 0xb4, 0xe6, 0x73,
	0x96, 0xac, 0x74, 0x22, 0xe7, 0xad, 0x35, 0x85, 0xe2, 0xf9, 0x37, 0xe8, 0x1c, 0x75, 0xdf, 0x6e,
	0x47, 0xf1, 0x1a, 0x71, 0x1d, 0x29, 0xc5, 0x89, 0x6f, 0xb7, 0x62, 0x0e, 0xaa, 0x18, 0xbe, 0x1b,
	0xfc, 0x56, 0x3e, 0x4b, 0xc6, 0xd2, 0x79, 0x20, 0x9a, 0xdb, 0xc0, 0xfe, 0x78, 0xcd, 0x5a, 0xf4,
	0x1f, 0xdd, 0xa8, 0x33, 0x88, 0x07, 0xc7, 0x31, 0xb1, 0x12, 0x10, 0x59, 0x27, 0x80, 0xec, 0x5f,
	0x60, 0x51, 0x7f, 0xa9, 0x19, 0xb5, 0x4a, 0x0d, 0x2d, 0xe5, 0x7a, 0x9f, 0x93, 0xc9, 0x9c, 0xef,
	0xa0, 0xe0, 0x3b, 0x4d, 0xae, 0x2a, 0xf5, 0xb0, 0xc8, 0xeb, 0xbb, 0x3c, 0x83, 0x53, 0x99, 0x61,
	0x17, 0x2b, 0x04, 0x7e, 0xba, 0x77, 0xd6, 0x26, 0xe1, 0x69, 0x14, 0x63, 0x55, 0x21, 0x0c, 0x7d,
}

var rcon = [10]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

func rotl32(x uint32, n uint) uint32 {
	return (x << n) | (x >> (32 - n))
}

func byteAt(w uint32, n uint32) byte {
	return byte(w >> ((3 - n) * 8))
}

func subWord(x uint32, box *[256]byte) uint32 {
	return uint32(box[byte(x>>24)])<<24 | uint32(box[byte(x>>16)])<<16 | uint32(box[byte(x>>8)])<<8 | uint32(box[byte(x)])
}

func subBytes(state *[4]uint32) {
	for i := range state {
		state[i] = subWord(state[i], &sbox)
	}
}

func invSubBytes(state *[4]uint32) {
	for i := range state {
		state[i] = subWord(state[i], &rsbox)
	}
}

func shiftRows(state *[4]uint32) {
	s := *state
	state[0] = uint32(byteAt(s[0], 0))<<24 | uint32(byteAt(s[1], 1))<<16 | uint32(byteAt(s[2], 2))<<8 | uint32(byteAt(s[3], 3))
	state[1] = uint32(byteAt(s[1], 0))<<24 | uint32(byteAt(s[2], 1))<<16 | uint32(byteAt(s[3], 2))<<8 | uint32(byteAt(s[0], 3))
	state[2] = uint32(byteAt(s[2], 0))<<24 | uint32(byteAt(s[3], 1))<<16 | uint32(byteAt(s[0], 2))<<8 | uint32(byteAt(s[1], 3))
	state[3] = uint32(byteAt(s[3], 0))<<24 | uint32(byteAt(s[0], 1))<<16 | uint32(byteAt(s[1], 2))<<8 | uint32(byteAt(s[2], 3))
}

func invShiftRows(state *[4]uint32) {
	s := *state
	state[0] = uint32(byteAt(s[0], 0))<<24 | uint32(byteAt(s[3], 1))<<16 | uint32(byteAt(s[2], 2))<<8 | uint32(byteAt(s[1], 3))
	state[1] = uint32(byteAt(s[1], 0))<<24 | uint32(byteAt(s[0], 1))<<16 | uint32(byteAt(s[3], 2))<<8 | uint32(byteAt(s[2], 3))
	state[2] = uint32(byteAt(s[2], 0))<<24 | uint32(byteAt(s[1], 1))<<16 | uint32(byteAt(s[0], 2))<<8 | uint32(byteAt(s[3], 3))
	state[3] = uint32(byteAt(s[3], 0))<<24 | uint32(byteAt(s[2], 1))<<16 | uint32(byteAt(s[1], 2))<<8 | uint32(byteAt(s[0], 3))
}

// gfMul2 multiplies a 4-lane byte word by 2 in GF(2^8) lane-wise, without a
// secret-dependent branch: the carry-out of the high bit of each lane
// selects whether the reduction polynomial 0x1b is XORed in.
func gfMul2(x uint32) uint32 {
	return ((x & 0x7f7f7f7f) << 1) ^ (((x & 0x80808080) >> 7) * 0x1b)
}

func mixColumn(x uint32) uint32 {
	x2 := gfMul2(x)
	return x2 ^ rotl32(x^x2, 8) ^ rotl32(x, 16) ^ rotl32(x, 24)
}

func invMixColumn(x uint32) uint32 {
	x2 := gfMul2(x)
	x4 := gfMul2(x2)
	x9 := x ^ gfMul2(x4)
	x11 := x2 ^ x9
	x13 := x4 ^ x9
	return x ^ x2 ^ x13 ^ rotl32(x11, 8) ^ rotl32(x13, 16) ^ rotl32(x9, 24)
}

func mixColumns(state *[4]uint32) {
	for i := range state {
		state[i] = mixColumn(state[i])
	}
}

func invMixColumns(state *[4]uint32) {
	for i := range state {
		state[i] = invMixColumn(state[i])
	}
}

// softCipher is the portable, table-driven AES-128 implementation. The only
// secret-dependent memory access is the 256-byte S-box lookup in subWord;
// every arithmetic step (MixColumns, ShiftRows, the key schedule) is
// data-independent.
type softCipher struct {
	roundKeys [11][4]uint32
}

func newSoftCipher(key *[16]byte) *softCipher {
	c := &softCipher{}
	endian.BigEndianFromBytes(c.roundKeys[0][:], key[:])

	for i := 0; i < len(c.roundKeys)-1; i++ {
		prev := c.roundKeys[i]
		temp := subWord(rotl32(prev[3], 8), &sbox)
		temp ^= uint32(rcon[i]) << 24

		next := prev
		for j := range next {
			next[j] ^= temp
			temp = next[j]
		}
		c.roundKeys[i+1] = next
	}

	return c
}

func (c *softCipher) encrypt(block *[16]byte) {
	keys := c.roundKeys
	first, last, middle := keys[0], keys[len(keys)-1], keys[1:len(keys)-1]

	var state [4]uint32
	endian.BigEndianFromBytes(state[:], block[:])

	endian.XORWords(state[:], first[:])

	for _, key := range middle {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		endian.XORWords(state[:], key[:])
	}

	subBytes(&state)
	shiftRows(&state)
	endian.XORWords(state[:], last[:])

	endian.BigEndianToBytes(block[:], state[:])
}

func (c *softCipher) decrypt(block *[16]byte) {
	keys := c.roundKeys
	first, last, middle := keys[0], keys[len(keys)-1], keys[1:len(keys)-1]

	var state [4]uint32
	endian.BigEndianFromBytes(state[:], block[:])

	endian.XORWords(state[:], last[:])
	invShiftRows(&state)
	invSubBytes(&state)

	for i := len(middle) - 1; i >= 0; i-- {
		endian.XORWords(state[:], middle[i][:])
		invMixColumns(&state)
		invShiftRows(&state)
		invSubBytes(&state)
	}

	endian.XORWords(state[:], first[:])

	endian.BigEndianToBytes(block[:], state[:])
}
