package poly1305

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPoly1305_RFC7539 exercises the RFC 7539 §2.5.2 test vector.
func TestPoly1305_RFC7539(t *testing.T) {
	keyBytes, err := hex.DecodeString("85d6be7857556d337f4452fe42d506a80103808afb0db2fd4abff6af4149f51b")
	require.NoError(t, err)
	require.Len(t, keyBytes, 32)

	var key [KeySize]byte
	copy(key[:], keyBytes)

	msg := []byte("Cryptographic Forum Research Group")

	want, err := hex.DecodeString("a8061dc1305136c6c22b8baf0c0127a9")
	require.NoError(t, err)

	got := Sum16(key, msg)
	require.Equal(t, want, got[:])
	require.True(t, Verify(key, msg, got))
}

// TestPoly1305_IncrementalMatchesOneShot checks that feeding the message
// through Write in arbitrary chunk sizes produces the same tag as Sum16.
func TestPoly1305_IncrementalMatchesOneShot(t *testing.T) {
	var key [KeySize]byte
	for i := range key {
		key[i] = byte(i * 3)
	}
	msg := make([]byte, 200)
	for i := range msg {
		msg[i] = byte(i)
	}

	want := Sum16(key, msg)

	m := New(key)
	chunkSizes := []int{1, 7, 16, 32, 50, 94}
	offset := 0
	for _, n := range chunkSizes {
		if offset+n > len(msg) {
			n = len(msg) - offset
		}
		m.Write(msg[offset : offset+n])
		offset += n
	}
	m.Write(msg[offset:])

	got := m.Sum()
	require.Equal(t, want, got)
}
