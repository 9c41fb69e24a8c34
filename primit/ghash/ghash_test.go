package ghash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func hexBlock(t *testing.T, s string) [16]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, 16)
	var block [16]byte
	copy(block[:], b)
	return block
}

// TestGHash_NISTGCMTestCase2 exercises the GHASH intermediate value from
// NIST's AES-GCM Test Case 2 (all-zero key and plaintext, 96-bit zero IV):
// S = GHASH_H(C || len(A) || len(C)) before the J0 tag mask is applied.
func TestGHash_NISTGCMTestCase2(t *testing.T) {
	h := hexBlock(t, "66e94bd4ef8a2c3b884cfa59ca342b2e")
	ciphertext := hexBlock(t, "0388dace60b6a392f328c2b971b2fe78")

	var lenBlock [16]byte
	// len(A) = 0 bits in the high 8 bytes, len(C) = 128 bits in the low 8.
	lenBlock[15] = 128

	want := hexBlock(t, "f38cbb1ad69223dcc3457ae5b6b0f885")

	got := Sum(h, [][16]byte{ciphertext, lenBlock})
	require.Equal(t, want, got)
}

// TestGHash_IncrementalMatchesOneShot checks that Update called block by
// block matches Sum called over the same blocks at once.
func TestGHash_IncrementalMatchesOneShot(t *testing.T) {
	h := hexBlock(t, "66e94bd4ef8a2c3b884cfa59ca342b2e")
	blocks := [][16]byte{
		hexBlock(t, "0388dace60b6a392f328c2b971b2fe78"),
		hexBlock(t, "00000000000000000000000000000001"),
	}

	want := Sum(h, blocks)

	g := New(h)
	for _, b := range blocks {
		g.Update(b)
	}
	got := g.Sum()

	require.Equal(t, want, got)
}
