// Package xchacha20 implements HChaCha20 subkey derivation and the
// XChaCha20 stream cipher (draft-irtf-cfrg-xchacha-03), which extends
// ChaCha20's 12-byte nonce to 24 bytes.
package xchacha20

import "github.com/go-primit/primit/primit/chacha"

// KeySize is the HChaCha20/XChaCha20 key size in bytes.
const KeySize = 32

// hNonceSize is the 16-byte nonce HChaCha20 consumes as state words 12-15.
const hNonceSize = 16

const hRounds = 20

// HChaCha20 derives a pseudorandom 32-byte subkey from a key and a 16-byte
// nonce. Unlike a ChaCha20 block it skips the feed-forward addition and
// only keeps state words 0-3 and 12-15 of the permuted output, which is
// what makes it safe to use as a key derivation step rather than a
// keystream.
func HChaCha20(key [KeySize]byte, nonce [hNonceSize]byte) [32]byte {
	state := chacha.InitHState(key, nonce)
	permuted := chacha.Permute(state, hRounds)
	block := chacha.Serialize(permuted)

	var subkey [32]byte
	copy(subkey[0:16], block[0:16])
	copy(subkey[16:32], block[48:64])
	return subkey
}
