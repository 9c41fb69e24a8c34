//go:build amd64

package aes128

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAES128_SoftwareAndHardwareAgree exercises the "two variants must
// produce bit-identical output" invariant from the design notes.
func TestAES128_SoftwareAndHardwareAgree(t *testing.T) {
	key := [16]byte{0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6, 0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c}
	plaintext := [16]byte{0x6b, 0xc1, 0xbe, 0xe2, 0x2e, 0x40, 0x9f, 0x96, 0xe9, 0x3d, 0x7e, 0x11, 0x73, 0x93, 0x17, 0x2a}

	soft := newSoftCipher(&key)
	softBlock := plaintext
	soft.encrypt(&softBlock)

	hw := newHardwareCipher(&key)
	hwBlock := plaintext
	hw.encrypt(&hwBlock)

	require.Equal(t, softBlock, hwBlock, "software and hardware kernels must be bit-identical")
}
