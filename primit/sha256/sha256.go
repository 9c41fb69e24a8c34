// Package sha256 implements the FIPS 180-4 SHA-256 hash function: a
// Merkle-Damgard construction over a 512-bit block compressor.
package sha256

import (
	"math/bits"

	"github.com/go-primit/primit/primit/endian"
)

// Size is the SHA-256 digest size in bytes.
const Size = 32

const blockSize = 64

var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var initVector = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a, 0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// Digest computes a SHA-256 hash incrementally.
type Digest struct {
	count        uint64
	state        [8]uint32
	buffer       [blockSize]byte
	bufferOffset int
}

// New returns a Digest initialized to the SHA-256 initial hash value.
func New() *Digest {
	return &Digest{state: initVector}
}

// Write absorbs data into the running hash. It never returns an error.
func (d *Digest) Write(data []byte) (int, error) {
	n := len(data)

	if d.bufferOffset+len(data) < blockSize {
		copy(d.buffer[d.bufferOffset:], data)
		d.bufferOffset += len(data)
		d.count += uint64(len(data))
		return n, nil
	}

	firstChunk := blockSize - d.bufferOffset
	copy(d.buffer[d.bufferOffset:], data[:firstChunk])
	compress(&d.state, &d.buffer)
	d.count += uint64(firstChunk)
	data = data[firstChunk:]

	for len(data) >= blockSize {
		var block [blockSize]byte
		copy(block[:], data[:blockSize])
		compress(&d.state, &block)
		d.count += blockSize
		data = data[blockSize:]
	}

	d.bufferOffset = copy(d.buffer[:], data)
	d.count += uint64(len(data))

	return n, nil
}

// Sum finalizes the hash and returns the 32-byte digest. The Digest must
// not be reused afterward.
func (d *Digest) Sum() [Size]byte {
	buffer := d.buffer
	offset := d.bufferOffset

	buffer[offset] = 0x80
	for i := offset + 1; i < blockSize; i++ {
		buffer[i] = 0
	}

	state := d.state

	const counterSize = 8
	if offset >= blockSize-counterSize {
		compress(&state, &buffer)
		buffer = [blockSize]byte{}
	}

	bitLen := d.count * 8
	for i := 0; i < 8; i++ {
		buffer[blockSize-1-i] = byte(bitLen >> (8 * i))
	}

	compress(&state, &buffer)

	var result [Size]byte
	endian.BigEndianToBytes(result[:], state[:])
	return result
}

func compress(state *[8]uint32, data *[blockSize]byte) {
	var w [64]uint32
	endian.BigEndianFromBytes(w[:16], data[:])

	for j := 16; j < 64; j++ {
		wj15 := w[j-15]
		sig0 := bits.RotateLeft32(wj15, -7) ^ bits.RotateLeft32(wj15, -18) ^ (wj15 >> 3)

		wj2 := w[j-2]
		sig1 := bits.RotateLeft32(wj2, -17) ^ bits.RotateLeft32(wj2, -19) ^ (wj2 >> 10)

		w[j] = sig0 + sig1 + w[j-7] + w[j-16]
	}

	a, b, c, dd, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for j := 0; j < 64; j++ {
		ch := (e & f) ^ (^e & g)
		maj := (a & b) ^ (a & c) ^ (b & c)

		sig0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		sig1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)

		t1 := h + sig1 + ch + k[j] + w[j]
		t2 := sig0 + maj

		h = g
		g = f
		f = e
		e = dd + t1
		dd = c
		c = b
		b = a
		a = t1 + t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += dd
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

// Sum256 computes the SHA-256 digest of data in one call.
func Sum256(data []byte) [Size]byte {
	d := New()
	_, _ = d.Write(data)
	return d.Sum()
}
