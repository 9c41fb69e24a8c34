package hmac

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHMAC_SHA256Vector(t *testing.T) {
	key := []byte("key")
	msg := []byte("The quick brown fox jumps over the lazy dog")

	want, err := hex.DecodeString("f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd")
	require.NoError(t, err)

	got := ComputeSHA256(key, msg)
	require.Equal(t, want, got)
}

func TestHMAC_MD5Vector(t *testing.T) {
	key := []byte("key")
	msg := []byte("The quick brown fox jumps over the lazy dog")

	want, err := hex.DecodeString("80070713463e7749b90c2dc24911e275")
	require.NoError(t, err)

	got := ComputeMD5(key, msg)
	require.Equal(t, want, got)
}

func TestHMAC_IncrementalMatchesOneShot(t *testing.T) {
	key := []byte("a reasonably long HMAC key used across calls")
	msg := []byte("split across several Write calls to exercise streaming")

	oneShot := ComputeSHA256(key, msg)

	m := NewSHA256(key)
	m.Write(msg[:10])
	m.Write(msg[10:30])
	m.Write(msg[30:])

	require.Equal(t, oneShot, m.Sum())
}
