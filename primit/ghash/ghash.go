// Package ghash implements GHASH, the GF(2^128) universal hash underlying
// AES-GCM, via an internal byte-reversed POLYVAL and a bit-sliced GF(2^128)
// multiply (bmul32) that avoids any secret-dependent table lookup.
package ghash

import "math/bits"

// Size is the GHASH output size in bytes.
const Size = 16

// GHash accumulates a GHASH computation over successive 16-byte blocks.
type GHash struct {
	p polyval
}

// New creates a GHash keyed by the 16-byte hash subkey H (AES-encrypt of
// an all-zero block under the AEAD's data key).
func New(h [16]byte) *GHash {
	reversed := reverseBytes(h)
	return &GHash{p: newPolyval(mulx(reversed))}
}

// Update absorbs one full 16-byte block. Partial blocks must be zero-padded
// by the caller before being passed in, per the GCM construction.
func (g *GHash) Update(block [16]byte) {
	g.p.update(reverseBytes(block))
}

// Sum finalizes the hash and returns the 16-byte tag.
func (g *GHash) Sum() [16]byte {
	return reverseBytes(g.p.finalize())
}

func reverseBytes(b [16]byte) [16]byte {
	var out [16]byte
	for i := range b {
		out[i] = b[15-i]
	}
	return out
}

// mulx applies the GCM-to-POLYVAL twist: multiply the reversed H by x in
// the POLYVAL field representation (GHASH and POLYVAL use the same
// multiplication with their operands bit-reversed relative to each other).
// The 128-bit value is carried as a little-endian (lo, hi) uint64 pair.
func mulx(block [16]byte) [16]byte {
	lo := uint64(block[0]) | uint64(block[1])<<8 | uint64(block[2])<<16 | uint64(block[3])<<24 |
		uint64(block[4])<<32 | uint64(block[5])<<40 | uint64(block[6])<<48 | uint64(block[7])<<56
	hi := uint64(block[8]) | uint64(block[9])<<8 | uint64(block[10])<<16 | uint64(block[11])<<24 |
		uint64(block[12])<<32 | uint64(block[13])<<40 | uint64(block[14])<<48 | uint64(block[15])<<56

	vHi := hi >> 63

	newHi := (hi << 1) | (lo >> 63)
	newLo := lo << 1

	if vHi != 0 {
		newLo ^= 1
		newHi ^= (uint64(1) << 63) | (uint64(1) << 62) | (uint64(1) << 57)
	}

	var out [16]byte
	for i := 0; i < 8; i++ {
		out[i] = byte(newLo >> (8 * i))
		out[8+i] = byte(newHi >> (8 * i))
	}
	return out
}

// polyval is the POLYVAL accumulator: s = (s + x) * h over GF(2^128), with
// "+" being XOR.
type polyval struct {
	h u32x4
	s u32x4
}

func newPolyval(h [16]byte) polyval {
	return polyval{h: u32x4FromBytes(h)}
}

func (p *polyval) update(x [16]byte) {
	xw := u32x4FromBytes(x)
	p.s = p.s.xor(xw).mul(p.h)
}

func (p *polyval) finalize() [16]byte {
	return p.s.toBytes()
}

type u32x4 [4]uint32

func u32x4FromBytes(b [16]byte) u32x4 {
	var w u32x4
	for i := 0; i < 4; i++ {
		w[i] = uint32(b[i*4]) | uint32(b[i*4+1])<<8 | uint32(b[i*4+2])<<16 | uint32(b[i*4+3])<<24
	}
	return w
}

func (w u32x4) toBytes() [16]byte {
	var out [16]byte
	for i := 0; i < 4; i++ {
		out[i*4+0] = byte(w[i])
		out[i*4+1] = byte(w[i] >> 8)
		out[i*4+2] = byte(w[i] >> 16)
		out[i*4+3] = byte(w[i] >> 24)
	}
	return out
}

func (w u32x4) xor(other u32x4) u32x4 {
	return u32x4{w[0] ^ other[0], w[1] ^ other[1], w[2] ^ other[2], w[3] ^ other[3]}
}

// mul is the GF(2^128) multiplication from the original GHASH module: a
// bit-sliced Karatsuba-style combine over four 32-bit limbs, reduced via
// the fixed POLYVAL reduction polynomial.
func (w u32x4) mul(rhs u32x4) u32x4 {
	hw := [4]uint32{w[0], w[1], w[2], w[3]}
	yw := [4]uint32{rhs[0], rhs[1], rhs[2], rhs[3]}
	var hwr [4]uint32
	for i, v := range hw {
		hwr[i] = bits.Reverse32(v)
	}

	var a [18]uint32
	a[0], a[1], a[2], a[3] = yw[0], yw[1], yw[2], yw[3]
	a[4] = a[0] ^ a[1]
	a[5] = a[2] ^ a[3]
	a[6] = a[0] ^ a[2]
	a[7] = a[1] ^ a[3]
	a[8] = a[6] ^ a[7]
	a[9] = bits.Reverse32(yw[0])
	a[10] = bits.Reverse32(yw[1])
	a[11] = bits.Reverse32(yw[2])
	a[12] = bits.Reverse32(yw[3])
	a[13] = a[9] ^ a[10]
	a[14] = a[11] ^ a[12]
	a[15] = a[9] ^ a[11]
	a[16] = a[10] ^ a[12]
	a[17] = a[15] ^ a[16]

	var b [18]uint32
	b[0], b[1], b[2], b[3] = hw[0], hw[1], hw[2], hw[3]
	b[4] = b[0] ^ b[1]
	b[5] = b[2] ^ b[3]
	b[6] = b[0] ^ b[2]
	b[7] = b[1] ^ b[3]
	b[8] = b[6] ^ b[7]
	b[9] = hwr[0]
	b[10] = hwr[1]
	b[11] = hwr[2]
	b[12] = hwr[3]
	b[13] = b[9] ^ b[10]
	b[14] = b[11] ^ b[12]
	b[15] = b[9] ^ b[11]
	b[16] = b[10] ^ b[12]
	b[17] = b[15] ^ b[16]

	var c [18]uint32
	for i := 0; i < 18; i++ {
		c[i] = bmul32(a[i], b[i])
	}

	c[4] ^= c[0] ^ c[1]
	c[5] ^= c[2] ^ c[3]
	c[8] ^= c[6] ^ c[7]

	c[13] ^= c[9] ^ c[10]
	c[14] ^= c[11] ^ c[12]
	c[17] ^= c[15] ^ c[16]

	var zw [8]uint32
	zw[0] = c[0]
	zw[1] = c[4] ^ bits.Reverse32(c[9])>>1
	zw[2] = c[1] ^ c[0] ^ c[2] ^ c[6] ^ bits.Reverse32(c[13])>>1
	zw[3] = c[4] ^ c[5] ^ c[8] ^ bits.Reverse32(c[10]^c[9]^c[11]^c[15])>>1
	zw[4] = c[2] ^ c[1] ^ c[3] ^ c[7] ^ bits.Reverse32(c[13]^c[14]^c[17])>>1
	zw[5] = c[5] ^ bits.Reverse32(c[11]^c[10]^c[12]^c[16])>>1
	zw[6] = c[3] ^ bits.Reverse32(c[14])>>1
	zw[7] = bits.Reverse32(c[12]) >> 1

	for i := 0; i < 4; i++ {
		lw := zw[i]
		zw[i+4] ^= lw ^ (lw >> 1) ^ (lw >> 2) ^ (lw >> 7)
		zw[i+3] ^= (lw << 31) ^ (lw << 30) ^ (lw << 25)
	}

	return u32x4{zw[4], zw[5], zw[6], zw[7]}
}

// bmul32 is a constant-time, carry-less 32x32 multiply over GF(2): each
// operand is split into four interleaved 1-bit-per-nibble lanes so the
// ordinary integer multiply below cannot carry between lanes, then the
// four lane products are recombined.
func bmul32(x, y uint32) uint32 {
	x0 := x & 0x11111111
	x1 := x & 0x22222222
	x2 := x & 0x44444444
	x3 := x & 0x88888888
	y0 := y & 0x11111111
	y1 := y & 0x22222222
	y2 := y & 0x44444444
	y3 := y & 0x88888888

	z0 := (x0 * y0) ^ (x1 * y3) ^ (x2 * y2) ^ (x3 * y1)
	z1 := (x0 * y1) ^ (x1 * y0) ^ (x2 * y3) ^ (x3 * y2)
	z2 := (x0 * y2) ^ (x1 * y1) ^ (x2 * y0) ^ (x3 * y3)
	z3 := (x0 * y3) ^ (x1 * y2) ^ (x2 * y1) ^ (x3 * y0)

	z0 &= 0x11111111
	z1 &= 0x22222222
	z2 &= 0x44444444
	z3 &= 0x88888888

	return z0 | z1 | z2 | z3
}

// Sum computes GHASH(h, blocks) in one call over already 16-byte-aligned
// blocks (callers are responsible for zero-padding the final AAD/
// ciphertext block per the GCM construction).
func Sum(h [16]byte, blocks [][16]byte) [16]byte {
	g := New(h)
	for _, block := range blocks {
		g.Update(block)
	}
	return g.Sum()
}
