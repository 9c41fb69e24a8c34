// Package md5 implements the RFC 1321 MD5 hash function. It is retained
// and wired into the HMAC package for interoperability with systems that
// still key MD5, not for anything requiring collision resistance.
package md5

import (
	"math/bits"

	"github.com/go-primit/primit/primit/endian"
)

// Size is the MD5 digest size in bytes.
const Size = 16

const blockSize = 64

var r = [64]uint32{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

var k = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee, 0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be, 0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa, 0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed, 0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c, 0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05, 0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039, 0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1, 0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

var initVector = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

// Digest computes an MD5 hash incrementally.
type Digest struct {
	count        uint64
	state        [4]uint32
	buffer       [blockSize]byte
	bufferOffset int
}

// New returns a Digest initialized to the MD5 initial hash value.
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

// Sum finalizes the hash and returns the 16-byte digest. The Digest must
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
		buffer[blockSize-counterSize+i] = byte(bitLen >> (8 * i))
	}

	compress(&state, &buffer)

	var result [Size]byte
	endian.LittleEndianToBytes(result[:], state[:])
	return result
}

func compress(state *[4]uint32, data *[blockSize]byte) {
	a, b, c, d := state[0], state[1], state[2], state[3]

	var w [16]uint32
	endian.LittleEndianFromBytes(w[:], data[:])

	for i := 0; i < 64; i++ {
		var f, g uint32
		switch {
		case i < 16:
			f = (b & c) | (^b & d)
			g = uint32(i)
		case i < 32:
			f = (d & b) | (^d & c)
			g = uint32(5*i+1) % 16
		case i < 48:
			f = b ^ c ^ d
			g = uint32(3*i+5) % 16
		default:
			f = c ^ (b | ^d)
			g = uint32(7*i) % 16
		}

		temp := d
		d = c
		c = b
		b = bits.RotateLeft32(a+f+k[i]+w[g], int(r[i])) + b
		a = temp
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
}

// Sum128 computes the MD5 digest of data in one call.
func Sum128(data []byte) [Size]byte {
	d := New()
	_, _ = d.Write(data)
	return d.Sum()
}
