package aes128

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAES128_FIPS197(t *testing.T) {
	t.Run("FIPS 197 Appendix B", func(t *testing.T) {
		t.Parallel()

		key := [16]byte{0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6, 0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c}
		plaintext := [16]byte{0x6b, 0xc1, 0xbe, 0xe2, 0x2e, 0x40, 0x9f, 0x96, 0xe9, 0x3d, 0x7e, 0x11, 0x73, 0x93, 0x17, 0x2a}
		want := [16]byte{0x3a, 0xd7, 0x7b, 0xb4, 0x0d, 0x7a, 0x36, 0x60, 0xa8, 0x9e, 0xca, 0xf3, 0x24, 0x66, 0xef, 0x97}

		c := New(&key)
		block := plaintext
		c.Encrypt(&block)
		require.Equal(t, want, block)

		c.Decrypt(&block)
		require.Equal(t, plaintext, block)
	})
}

func TestAES128_RoundTrip(t *testing.T) {
	tt := map[string]struct {
		key       [16]byte
		plaintext [16]byte
	}{
		"all zero":   {},
		"all one":    {key: [16]byte{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, plaintext: [16]byte{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
		"increasing": {
			key:       [16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
			plaintext: [16]byte{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		},
	}

	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c := New(&tc.key)
			block := tc.plaintext
			c.Encrypt(&block)
			require.NotEqual(t, tc.plaintext, block)

			c.Decrypt(&block)
			require.Equal(t, tc.plaintext, block)
		})
	}
}
