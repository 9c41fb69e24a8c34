// Package hmac implements RFC 2104 HMAC generically over any of the
// module's hash functions, following the same "key pad, embed message,
// embed again" construction as the Rust reference implementation's
// generic hmac<H: Digest> function.
package hmac

// Hash is the interface an underlying hash function exposes to be usable
// with HMAC: a streaming Write, a finalizing Sum that returns a fresh
// slice, and its internal compression BlockSize in bytes. md5 and sha256
// are adapted to this interface in adapters.go.
type Hash interface {
	Write(p []byte)
	Sum() []byte
	BlockSize() int
}

const (
	ipad = 0x36
	opad = 0x5c
)

// MAC computes HMAC over a Hash constructor. Calling New twice, once for
// the inner hash and once for the outer hash, mirrors how the block cipher
// modes in this module keep each cryptographic primitive as a small,
// independently testable unit.
type MAC struct {
	newHash   func() Hash
	blockSize int
	outer     Hash
	inner     Hash
}

// New builds an HMAC keyed by key, using newHash to produce fresh
// underlying hash instances on demand.
func New(newHash func() Hash, key []byte) *MAC {
	h := newHash()
	blockSize := h.BlockSize()

	block := make([]byte, blockSize)
	if len(key) > blockSize {
		h.Write(key)
		copy(block, h.Sum())
	} else {
		copy(block, key)
	}

	iKeyPad := make([]byte, blockSize)
	oKeyPad := make([]byte, blockSize)
	for i := 0; i < blockSize; i++ {
		iKeyPad[i] = block[i] ^ ipad
		oKeyPad[i] = block[i] ^ opad
	}

	inner := newHash()
	inner.Write(iKeyPad)

	outer := newHash()
	outer.Write(oKeyPad)

	return &MAC{newHash: newHash, blockSize: blockSize, outer: outer, inner: inner}
}

// Write absorbs message bytes into the inner hash.
func (m *MAC) Write(p []byte) {
	m.inner.Write(p)
}

// Sum finalizes the inner hash, feeds its digest into the outer hash, and
// returns the HMAC tag. The MAC must not be reused afterward.
func (m *MAC) Sum() []byte {
	m.outer.Write(m.inner.Sum())
	return m.outer.Sum()
}

// Compute returns HMAC(key, message) in one call.
func Compute(newHash func() Hash, key, message []byte) []byte {
	m := New(newHash, key)
	m.Write(message)
	return m.Sum()
}
