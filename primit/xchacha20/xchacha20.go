package xchacha20

import "github.com/go-primit/primit/primit/chacha20"

// NonceSize is the extended 24-byte XChaCha20 nonce size.
const NonceSize = 24

// Cipher is an XChaCha20 keystream generator. It derives a subkey via
// HChaCha20 from the first 16 nonce bytes, then runs ordinary ChaCha20
// under that subkey with a 12-byte nonce built from four zero bytes
// followed by the last 8 nonce bytes, per draft-irtf-cfrg-xchacha-03 §2.3.
type Cipher struct {
	inner *chacha20.Cipher
}

// New creates an XChaCha20 cipher starting at block counter 0.
func New(key [KeySize]byte, nonce [NonceSize]byte) *Cipher {
	var hNonce [hNonceSize]byte
	copy(hNonce[:], nonce[:16])
	subkey := HChaCha20(key, hNonce)

	var innerNonce [chacha20.NonceSize]byte
	copy(innerNonce[4:], nonce[16:24])

	return &Cipher{inner: chacha20.New(subkey, innerNonce)}
}

// XORKeyStream XORs data in place with the keystream.
func (c *Cipher) XORKeyStream(data []byte) {
	c.inner.XORKeyStream(data)
}
