package drbg

import "github.com/go-primit/primit/primit/aes128"

// AES128RNG is a counter-mode generator: a 16-byte state whose first 8
// bytes are an incrementing little-endian counter, encrypted whole under a
// fixed AES-128 key derived from the same seed.
type AES128RNG struct {
	state  [16]byte
	cipher *aes128.Cipher
}

// NewAES128RNG seeds a generator from a 32-byte value: the first 16 bytes
// become the initial state, the last 16 the AES-128 key.
func NewAES128RNG(seed [32]byte) *AES128RNG {
	var r AES128RNG
	copy(r.state[:], seed[:16])
	var key [aes128.KeySize]byte
	copy(key[:], seed[16:32])
	r.cipher = aes128.New(&key)
	return &r
}

func (r *AES128RNG) nextBlock() [16]byte {
	var counter uint64
	for i := 0; i < 8; i++ {
		counter |= uint64(r.state[i]) << (8 * i)
	}
	counter++
	for i := 0; i < 8; i++ {
		r.state[i] = byte(counter >> (8 * i))
	}

	block := r.state
	r.cipher.Encrypt(&block)
	return block
}

// FillBytes fills data with generator output, sixteen bytes at a time.
func (r *AES128RNG) FillBytes(data []byte) {
	for len(data) >= 16 {
		block := r.nextBlock()
		copy(data[:16], block[:])
		data = data[16:]
	}
	if len(data) > 0 {
		block := r.nextBlock()
		copy(data, block[:len(data)])
	}
}
