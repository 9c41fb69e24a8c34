package sha256

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSHA256_Vectors(t *testing.T) {
	tt := map[string]struct {
		msg  string
		want string
	}{
		"empty": {
			msg:  "",
			want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		"abc": {
			msg:  "abc",
			want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			want, err := hex.DecodeString(tc.want)
			require.NoError(t, err)

			got := Sum256([]byte(tc.msg))
			require.Equal(t, want, got[:])
		})
	}
}

func TestSHA256_StreamingMatchesOneShot(t *testing.T) {
	msg := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 50)

	oneShot := Sum256([]byte(msg))

	d := New()
	chunks := []int{1, 3, 55, 64, 65, 127, 1000}
	data := []byte(msg)
	for _, n := range chunks {
		if n > len(data) {
			n = len(data)
		}
		_, _ = d.Write(data[:n])
		data = data[n:]
	}
	_, _ = d.Write(data)

	require.Equal(t, oneShot, d.Sum())
}
