package p256

import "github.com/go-primit/primit/primit/errors"

// PointSize is the length in bytes of an SEC1 uncompressed P-256 point.
// ScalarSize is the length in bytes of a P-256 private scalar or shared
// secret's x-coordinate.
const (
	PointSize  = 65
	ScalarSize = 32
)

// rng is the byte source a PrivateKey is generated from. It is satisfied
// by *drbg.AES128RNG and *drbg.ChaCha8RNG without either package
// depending on the other.
type rng interface {
	FillBytes(data []byte)
}

// PrivateKey is a P-256 Diffie-Hellman private scalar.
type PrivateKey struct {
	scalar int256
}

// New draws a private scalar from source, retrying until the sampled
// 256-bit value lands strictly below the field prime p256 (not the group
// order n; an astronomically likely single draw, but retried to avoid the
// tiny modular bias a single reduction would otherwise introduce).
func New(source rng) *PrivateKey {
	var buf [ScalarSize]byte
	for {
		source.FillBytes(buf[:])
		x := int256FromBytes(buf)
		if x.notEqual(x.reduceOnceZero()) {
			continue
		}
		return &PrivateKey{scalar: x}
	}
}

// NewFromBytes builds a private scalar directly from 32 big-endian bytes,
// for deterministic test vectors and key import. It does not validate
// that the value is below the field modulus.
func NewFromBytes(x [ScalarSize]byte) *PrivateKey {
	return &PrivateKey{scalar: int256FromBytes(x)}
}

// Public returns the SEC1 uncompressed public point corresponding to k.
func (k *PrivateKey) Public() [PointSize]byte {
	p := generator.multScalar(k.scalar).normalize()
	return p.toUncompressedBytes()
}

// Bytes returns k's scalar as 32 big-endian bytes, for persisting a
// generated key or displaying it to a caller.
func (k *PrivateKey) Bytes() [ScalarSize]byte {
	return k.scalar.toBytes()
}

// ECDH computes the shared secret with peer's uncompressed public point:
// the x-coordinate of peer*k, big-endian. It returns ErrInvalidPublicKey
// if peer is not a validly-encoded point on the curve.
func (k *PrivateKey) ECDH(peer [PointSize]byte) ([ScalarSize]byte, error) {
	np, ok := normalizedPointFromUncompressedBytes(peer)
	if !ok {
		return [ScalarSize]byte{}, errors.ErrInvalidPublicKey
	}

	shared := np.toPoint().multScalar(k.scalar).normalize()
	return shared.x.toBytes(), nil
}
