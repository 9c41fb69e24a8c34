package p256

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestP256_KnownScalarToPublicKeyVectors checks concrete scalar -> public key
// mappings against known points on the curve, including the negated
// generator at scalar n-1.
func TestP256_KnownScalarToPublicKeyVectors(t *testing.T) {
	cases := []struct {
		name   string
		scalar string
		public string
	}{
		{
			name:   "n-1 maps to the negated generator",
			scalar: "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632550",
			public: "046B17D1F2E12C4247F8BCE6E563A440F277037D812DEB33A0F4A13945D898C296B01CBD1C01E58065711814B583F061E9D431CCA994CEA1313449BF97C840AE0A",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scalarBytes, err := hex.DecodeString(c.scalar)
			require.NoError(t, err)
			var scalar [ScalarSize]byte
			copy(scalar[:], scalarBytes)

			publicBytes, err := hex.DecodeString(c.public)
			require.NoError(t, err)
			var public [PointSize]byte
			copy(public[:], publicBytes)

			k := NewFromBytes(scalar)
			require.Equal(t, public, k.Public())
		})
	}
}

// sequentialRNG is a deterministic, non-cryptographic Rng stand-in for
// tests: each call returns the next byte of an incrementing counter.
type sequentialRNG struct {
	next byte
}

func (r *sequentialRNG) FillBytes(data []byte) {
	for i := range data {
		r.next++
		data[i] = r.next
	}
}

func TestP256_ECDHRoundTrip(t *testing.T) {
	alice := New(&sequentialRNG{next: 10})
	bob := New(&sequentialRNG{next: 200})

	alicePub := alice.Public()
	bobPub := bob.Public()

	aliceShared, err := alice.ECDH(bobPub)
	require.NoError(t, err)

	bobShared, err := bob.ECDH(alicePub)
	require.NoError(t, err)

	require.Equal(t, aliceShared, bobShared)
	require.NotEqual(t, [ScalarSize]byte{}, aliceShared)
}

func TestP256_GeneratorIsOnCurve(t *testing.T) {
	pub := generator.normalize()
	_, ok := normalizedPointFromUncompressedBytes(pub.toUncompressedBytes())
	require.True(t, ok)
}

func TestP256_PublicKeyRoundTripsThroughBytes(t *testing.T) {
	k := New(&sequentialRNG{next: 7})
	pub := k.Public()

	np, ok := normalizedPointFromUncompressedBytes(pub)
	require.True(t, ok)
	require.Equal(t, pub, np.toUncompressedBytes())
}

func TestP256_ECDHRejectsBadPrefix(t *testing.T) {
	k := New(&sequentialRNG{next: 3})
	var bad [PointSize]byte
	bad[0] = 0x02 // compressed-point prefix, not supported

	_, err := k.ECDH(bad)
	require.Error(t, err)
}

func TestP256_ECDHRejectsPointNotOnCurve(t *testing.T) {
	k := New(&sequentialRNG{next: 5})
	pub := k.Public()
	pub[1] ^= 0xff // corrupt the x-coordinate

	_, err := k.ECDH(pub)
	require.Error(t, err)
}

func TestP256_DifferentScalarsGiveDifferentPublicKeys(t *testing.T) {
	a := New(&sequentialRNG{next: 1})
	b := New(&sequentialRNG{next: 2})

	require.NotEqual(t, a.Public(), b.Public())
}
