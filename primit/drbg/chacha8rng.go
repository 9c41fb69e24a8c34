package drbg

import "github.com/go-primit/primit/primit/chacha"

const chacha8Rounds = 8

// ChaCha8RNG is a ChaCha20-family generator run at the reduced 8-round
// count: faster than the full cipher and adequate for a DRBG, where the
// adversary never gets to choose or observe the permutation's input
// directly. Its block counter carries from state word 12 into word 13 (see
// chacha.Cipher.Block), so it does not wrap after 2^32 blocks.
type ChaCha8RNG struct {
	cipher *chacha.Cipher
}

// NewChaCha8RNG seeds a generator from a 32-byte value used directly as
// the ChaCha key, with the first 12 bytes of the same seed reused as the
// nonce.
func NewChaCha8RNG(seed [32]byte) *ChaCha8RNG {
	var nonce [12]byte
	copy(nonce[:], seed[:12])
	return &ChaCha8RNG{cipher: chacha.NewCipher(seed, nonce, 0, chacha8Rounds)}
}

// FillBytes fills data with generator output, 64 bytes at a time.
func (r *ChaCha8RNG) FillBytes(data []byte) {
	for len(data) >= chacha.BlockSize {
		block := r.cipher.Block()
		copy(data[:chacha.BlockSize], block[:])
		data = data[chacha.BlockSize:]
	}
	if len(data) > 0 {
		block := r.cipher.Block()
		copy(data, block[:len(data)])
	}
}
