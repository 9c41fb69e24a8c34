package hex

import (
	"testing"

	"github.com/go-primit/primit/primit/errors"
	"github.com/stretchr/testify/require"
)

func TestHex_EncodeDecodeRoundTrip(t *testing.T) {
	data := []byte{0xd4, 0x1d, 0x8c, 0xd9, 0x8f, 0x00, 0xb2, 0x04, 0xe9, 0x80, 0x09, 0x98, 0xec, 0xf8, 0x42, 0x7e}
	want := "d41d8cd98f00b204e9800998ecf8427e"

	require.Equal(t, want, EncodeToString(data))

	got, err := DecodeString(want)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestHex_DecodeUppercase(t *testing.T) {
	got, err := DecodeString("D41D8CD9")
	require.NoError(t, err)
	require.Equal(t, []byte{0xd4, 0x1d, 0x8c, 0xd9}, got)
}

func TestHex_DecodeRejectsOddLength(t *testing.T) {
	_, err := DecodeString("abc")
	require.ErrorIs(t, err, errors.ErrInvalidHexLength)
}

func TestHex_DecodeRejectsBadCharacter(t *testing.T) {
	_, err := DecodeString("zz")
	require.ErrorIs(t, err, errors.ErrInvalidHexCharacter)
}

func TestHex_EmptyRoundTrip(t *testing.T) {
	require.Equal(t, "", EncodeToString(nil))
	got, err := DecodeString("")
	require.NoError(t, err)
	require.Empty(t, got)
}
