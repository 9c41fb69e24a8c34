// Package poly1305 implements the RFC 7539 Poly1305 one-time
// authenticator: a MAC over GF(2^130-5) keyed by a 32-byte (r, s) pair.
//
// The corpus this module was grounded on carries only a truncated stub of
// the original Poly1305 implementation (a bare key-clamping struct with no
// accumulate/finalize logic), so the 26-bit-limb arithmetic below follows
// the RFC 7539 §2.5 reference algorithm directly rather than a ported
// file.
package poly1305

import "github.com/go-primit/primit/primit/endian"

// KeySize and TagSize are the Poly1305 sizes in bytes.
const (
	KeySize = 32
	TagSize = 16
)

// rMask clamps the r part of the key per RFC 7539 §2.5.1: clear bits
// 28, 29, 30, 31 of every 4th byte and bits 4-7 of every first byte of
// each 32-bit group (the "0x0ffffffc0ffffffc0ffffffc0fffffff" mask applied
// big-endian over the 16-byte r).
var rMask = [16]byte{
	0xff, 0xff, 0xff, 0x0f,
	0xfc, 0xff, 0xff, 0x0f,
	0xfc, 0xff, 0xff, 0x0f,
	0xfc, 0xff, 0xff, 0x0f,
}

// MAC accumulates a Poly1305 tag incrementally.
type MAC struct {
	// r, one per 26-bit limb.
	r [5]uint32
	// precomputed r*5 for the reduction trick.
	r5 [5]uint32
	// accumulator, 26-bit limbs (kept slightly wider to absorb carries).
	h [5]uint32
	// s, the final additive mask, little-endian 32-bit words.
	s [4]uint32

	buffer   [16]byte
	bufUsed  int
	finished bool
}

// New creates a MAC keyed by a 32-byte one-time key (r || s).
func New(key [KeySize]byte) *MAC {
	var rBytes [16]byte
	copy(rBytes[:], key[:16])
	for i := range rBytes {
		rBytes[i] &= rMask[i]
	}

	m := &MAC{}
	m.r = bytesToLimbs(rBytes)
	for i, v := range m.r {
		m.r5[i] = v * 5
	}
	endian.LittleEndianFromBytes(m.s[:], key[16:32])
	return m
}

// bytesToLimbs splits a 16-byte little-endian integer into five 26-bit
// limbs, reading five overlapping little-endian 32-bit words at byte
// offsets 0, 3, 6, 9, 12 and shifting each down by 0, 2, 4, 6, 8 bits
// before masking — the standard radix-2^26 decomposition.
func bytesToLimbs(b [16]byte) [5]uint32 {
	word := func(offset, shift uint) uint32 {
		v := uint32(b[offset]) | uint32(b[offset+1])<<8 | uint32(b[offset+2])<<16 | uint32(b[offset+3])<<24
		return (v >> shift) & 0x3ffffff
	}

	var l [5]uint32
	l[0] = word(0, 0)
	l[1] = word(3, 2)
	l[2] = word(6, 4)
	l[3] = word(9, 6)
	l[4] = (uint32(b[12]) | uint32(b[13])<<8 | uint32(b[14])<<16 | uint32(b[15])<<24) >> 8
	return l
}

// Write absorbs message bytes, processing full 16-byte blocks immediately
// and buffering any partial trailing block for the next call or Sum.
func (m *MAC) Write(p []byte) {
	if m.finished {
		panic("poly1305: Write after Sum")
	}

	if m.bufUsed > 0 {
		n := copy(m.buffer[m.bufUsed:], p)
		m.bufUsed += n
		p = p[n:]
		if m.bufUsed < 16 {
			return
		}
		m.block(m.buffer, true)
		m.bufUsed = 0
	}

	for len(p) >= 16 {
		var block [16]byte
		copy(block[:], p[:16])
		m.block(block, true)
		p = p[16:]
	}

	if len(p) > 0 {
		m.bufUsed = copy(m.buffer[:], p)
	}
}

// block absorbs one 16-byte message block: h = ((h + (block || highBit)) * r) mod (2^130-5).
// withHighBit is true for every block except a padded final partial block,
// per RFC 7539 §2.5.1.
func (m *MAC) block(block [16]byte, withHighBit bool) {
	n := bytesToLimbs(block)
	if withHighBit {
		n[4] |= 1 << 24
	}

	var h [5]uint64
	for i := range h {
		h[i] = uint64(m.h[i]) + uint64(n[i])
	}

	r, r5 := m.r, m.r5

	d0 := h[0]*uint64(r[0]) + h[1]*uint64(r5[4]) + h[2]*uint64(r5[3]) + h[3]*uint64(r5[2]) + h[4]*uint64(r5[1])
	d1 := h[0]*uint64(r[1]) + h[1]*uint64(r[0]) + h[2]*uint64(r5[4]) + h[3]*uint64(r5[3]) + h[4]*uint64(r5[2])
	d2 := h[0]*uint64(r[2]) + h[1]*uint64(r[1]) + h[2]*uint64(r[0]) + h[3]*uint64(r5[4]) + h[4]*uint64(r5[3])
	d3 := h[0]*uint64(r[3]) + h[1]*uint64(r[2]) + h[2]*uint64(r[1]) + h[3]*uint64(r[0]) + h[4]*uint64(r5[4])
	d4 := h[0]*uint64(r[4]) + h[1]*uint64(r[3]) + h[2]*uint64(r[2]) + h[3]*uint64(r[1]) + h[4]*uint64(r[0])

	// carry propagation with the 2^130 ≡ 5 mod (2^130-5) reduction folded
	// back into limb 0.
	const mask26 = (1 << 26) - 1

	c := d0 >> 26
	h0 := d0 & mask26
	d1 += c

	c = d1 >> 26
	h1 := d1 & mask26
	d2 += c

	c = d2 >> 26
	h2 := d2 & mask26
	d3 += c

	c = d3 >> 26
	h3 := d3 & mask26
	d4 += c

	c = d4 >> 26
	h4 := d4 & mask26
	h0 += c * 5

	c = h0 >> 26
	h0 &= mask26
	h1 += c

	m.h[0] = uint32(h0)
	m.h[1] = uint32(h1)
	m.h[2] = uint32(h2)
	m.h[3] = uint32(h3)
	m.h[4] = uint32(h4)
}

// Sum finalizes the accumulator and returns the 16-byte tag. The MAC must
// not be reused after Sum is called.
func (m *MAC) Sum() [TagSize]byte {
	if !m.finished {
		if m.bufUsed > 0 {
			var block [16]byte
			copy(block[:], m.buffer[:m.bufUsed])
			block[m.bufUsed] = 1
			m.block(block, false)
		}
		m.finished = true
	}

	// fully carry h so each limb is in canonical [0, 2^26) range, then
	// compute h - p (p = 2^130-5) to detect whether h >= p.
	h := m.h
	const mask26 = (1 << 26) - 1

	c := h[1] >> 26
	h[1] &= mask26
	h[2] += c
	c = h[2] >> 26
	h[2] &= mask26
	h[3] += c
	c = h[3] >> 26
	h[3] &= mask26
	h[4] += c
	c = h[4] >> 26
	h[4] &= mask26
	h[0] += c * 5
	c = h[0] >> 26
	h[0] &= mask26
	h[1] += c

	var g [5]uint32
	g[0] = h[0] + 5
	c = g[0] >> 26
	g[0] &= mask26
	g[1] = h[1] + c
	c = g[1] >> 26
	g[1] &= mask26
	g[2] = h[2] + c
	c = g[2] >> 26
	g[2] &= mask26
	g[3] = h[3] + c
	c = g[3] >> 26
	g[3] &= mask26
	g[4] = h[4] + c - (1 << 26)

	// mask is all-ones if h+5 did NOT underflow past 2^130 (i.e. h >= p),
	// meaning g is the correct reduced value; otherwise h already was.
	mask := (g[4] >> 31) - 1
	notMask := ^mask
	for i := range h {
		h[i] = (h[i] & notMask) | (g[i] & mask)
	}

	// pack the 5 limbs back to 4 32-bit words and add s mod 2^128.
	h0 := uint64(h[0]) | uint64(h[1])<<26
	h1 := uint64(h[1])>>6 | uint64(h[2])<<20
	h2 := uint64(h[2])>>12 | uint64(h[3])<<14
	h3 := uint64(h[3])>>18 | uint64(h[4])<<8

	words := [4]uint32{uint32(h0), uint32(h1), uint32(h2), uint32(h3)}

	var carry uint64
	for i := range words {
		sum := uint64(words[i]) + uint64(m.s[i]) + carry
		words[i] = uint32(sum)
		carry = sum >> 32
	}

	var tag [TagSize]byte
	endian.LittleEndianToBytes(tag[:], words[:])
	return tag
}

// Sum16 computes the Poly1305 tag of msg under key in one call.
func Sum16(key [KeySize]byte, msg []byte) [TagSize]byte {
	m := New(key)
	m.Write(msg)
	return m.Sum()
}

// Verify reports whether tag is the correct Poly1305 tag of msg under
// key, comparing in constant time.
func Verify(key [KeySize]byte, msg []byte, tag [TagSize]byte) bool {
	got := Sum16(key, msg)
	var diff byte
	for i := range got {
		diff |= got[i] ^ tag[i]
	}
	return diff == 0
}
