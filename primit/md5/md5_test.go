package md5

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMD5_Vectors(t *testing.T) {
	tt := map[string]struct {
		msg  string
		want string
	}{
		"empty": {
			msg:  "",
			want: "d41d8cd98f00b204e9800998ecf8427e",
		},
		"abc": {
			msg:  "abc",
			want: "900150983cd24fb0d6963f7d28e17f72",
		},
		"quick brown fox": {
			msg:  "The quick brown fox jumps over the lazy dog",
			want: "9e107d9d372bb6826bd81d3542a419d6",
		},
	}

	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			want, err := hex.DecodeString(tc.want)
			require.NoError(t, err)

			got := Sum128([]byte(tc.msg))
			require.Equal(t, want, got[:])
		})
	}
}

func TestMD5_StreamingMatchesOneShot(t *testing.T) {
	msg := strings.Repeat("A", 200)
	oneShot := Sum128([]byte(msg))

	d := New()
	chunks := []int{1, 3, 60, 64, 65, 67}
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
