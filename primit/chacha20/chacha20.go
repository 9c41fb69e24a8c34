// Package chacha20 implements the RFC 8439 ChaCha20 stream cipher: the
// fixed 20-round instantiation of the shared ChaCha permutation.
package chacha20

import "github.com/go-primit/primit/primit/chacha"

// KeySize and NonceSize are the RFC 8439 sizes in bytes.
const (
	KeySize   = 32
	NonceSize = 12
	rounds    = 20
)

// Cipher is a ChaCha20 keystream generator bound to a key, nonce and
// initial block counter.
type Cipher struct {
	core *chacha.Cipher
}

// New creates a ChaCha20 cipher starting at block counter 0.
func New(key [KeySize]byte, nonce [NonceSize]byte) *Cipher {
	return NewWithCounter(key, nonce, 0)
}

// NewWithCounter creates a ChaCha20 cipher starting at an explicit block
// counter, as used when a caller (e.g. an AEAD construction) reserves
// block 0 for something else.
func NewWithCounter(key [KeySize]byte, nonce [NonceSize]byte, counter uint32) *Cipher {
	return &Cipher{core: chacha.NewCipher(key, nonce, counter, rounds)}
}

// XORKeyStream XORs data in place with the keystream, correctly resuming
// across calls regardless of call-size granularity.
func (c *Cipher) XORKeyStream(data []byte) {
	c.core.XORKeyStream(data)
}

// Block returns the raw 64-byte keystream block at the cipher's current
// counter position and advances the counter, for callers that need raw
// keystream rather than an XOR.
func (c *Cipher) Block() [64]byte {
	return c.core.Block()
}
