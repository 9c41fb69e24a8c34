// Package chacha implements the ChaCha permutation and the buffered
// keystream state machine shared by ChaCha20, ChaCha8 (used by the DRBG)
// and HChaCha20 (used by XChaCha20). The round count is a constructor
// parameter rather than a fixed constant so all three can share one kernel.
package chacha

import (
	"math/bits"

	"github.com/go-primit/primit/primit/endian"
)

// BlockSize is the size in bytes of a ChaCha keystream block.
const BlockSize = 64

// constants is "expand 32-byte k" split into four little-endian words.
var constants = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

// InitState builds the initial 16-word ChaCha state from a key, a 12-byte
// nonce and a starting block counter.
func InitState(key [32]byte, nonce [12]byte, counter uint32) [16]uint32 {
	var state [16]uint32
	copy(state[0:4], constants[:])
	endian.LittleEndianFromBytes(state[4:12], key[:])
	state[12] = counter
	endian.LittleEndianFromBytes(state[13:16], nonce[:])
	return state
}

// InitHState builds the 16-word state HChaCha20 permutes: the same
// constants and key words as InitState, but with all four of words 12-15
// taken from a 16-byte nonce instead of a counter plus a 12-byte nonce.
func InitHState(key [32]byte, nonce [16]byte) [16]uint32 {
	var state [16]uint32
	copy(state[0:4], constants[:])
	endian.LittleEndianFromBytes(state[4:12], key[:])
	endian.LittleEndianFromBytes(state[12:16], nonce[:])
	return state
}

func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 16)

	c += d
	b ^= c
	b = bits.RotateLeft32(b, 12)

	a += b
	d ^= a
	d = bits.RotateLeft32(d, 8)

	c += d
	b ^= c
	b = bits.RotateLeft32(b, 7)

	return a, b, c, d
}

func quarterRoundIdx(state *[16]uint32, x, y, z, w int) {
	state[x], state[y], state[z], state[w] = quarterRound(state[x], state[y], state[z], state[w])
}

func doubleRound(state *[16]uint32) {
	// column round
	quarterRoundIdx(state, 0, 4, 8, 12)
	quarterRoundIdx(state, 1, 5, 9, 13)
	quarterRoundIdx(state, 2, 6, 10, 14)
	quarterRoundIdx(state, 3, 7, 11, 15)

	// diagonal round
	quarterRoundIdx(state, 0, 5, 10, 15)
	quarterRoundIdx(state, 1, 6, 11, 12)
	quarterRoundIdx(state, 2, 7, 8, 13)
	quarterRoundIdx(state, 3, 4, 9, 14)
}

// Permute runs rounds/2 double-rounds of the ChaCha permutation over state
// and returns the result. It does not add the original state back in
// (the Salsa-style feed-forward) and does not touch the counter; callers
// that want a keystream block apply the feed-forward themselves (see
// Cipher.Block), and HChaCha20 uses the bare permutation output directly.
func Permute(state [16]uint32, rounds int) [16]uint32 {
	if rounds%2 != 0 {
		panic("chacha: rounds must be even")
	}
	for i := 0; i < rounds/2; i++ {
		doubleRound(&state)
	}
	return state
}

// Serialize writes state out as 64 little-endian bytes.
func Serialize(state [16]uint32) [64]byte {
	var out [64]byte
	endian.LittleEndianToBytes(out[:], state[:])
	return out
}

// Cipher is a buffered ChaCha keystream generator: it owns the permutation
// state, the block counter, and a 64-byte keystream buffer with an offset
// marking how much of it is unconsumed.
type Cipher struct {
	rounds int
	state  [16]uint32

	buffer       [64]byte
	bufferOffset int
}

// NewCipher creates a ChaCha keystream generator from a key, a 12-byte
// nonce, a starting block counter, and a round count (must be even: 20 for
// ChaCha20, 8 for the ChaCha8 DRBG).
func NewCipher(key [32]byte, nonce [12]byte, counter uint32, rounds int) *Cipher {
	return &Cipher{
		rounds:       rounds,
		state:        InitState(key, nonce, counter),
		bufferOffset: BlockSize,
	}
}

// Block produces the next 64-byte keystream block: permute a working copy
// of the state, add the original state back in (feed-forward), serialize
// to bytes, then increment the counter at word index 12, carrying into
// word 13 on overflow — this extends ChaCha20's keystream capacity past
// the 32-bit counter a strict RFC 8439 implementation would have.
func (c *Cipher) Block() [64]byte {
	permuted := Permute(c.state, c.rounds)
	for i := range permuted {
		permuted[i] += c.state[i]
	}

	block := Serialize(permuted)

	c.state[12]++
	if c.state[12] == 0 {
		c.state[13]++
	}

	return block
}

// XORKeyStream XORs data with the keystream in place, resuming correctly
// across calls: any unconsumed tail of the current buffer is used first,
// then whole blocks are generated and XORed directly, and finally any
// partial trailing chunk refills the buffer and records the new offset.
// No keystream byte is ever produced twice across the lifetime of a
// Cipher.
func (c *Cipher) XORKeyStream(data []byte) {
	remaining := c.buffer[c.bufferOffset:]

	if len(data) < len(remaining) {
		endian.XORBytes(data, remaining[:len(data)])
		c.bufferOffset += len(data)
		return
	}

	endian.XORBytes(data[:len(remaining)], remaining)
	data = data[len(remaining):]

	for len(data) >= BlockSize {
		block := c.Block()
		endian.XORBytes(data[:BlockSize], block[:])
		data = data[BlockSize:]
	}

	c.buffer = c.Block()
	endian.XORBytes(data, c.buffer[:len(data)])
	c.bufferOffset = len(data)
}
