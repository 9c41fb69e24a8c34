package chacha20poly1305

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAEAD_RFC8439 exercises the RFC 8439 §2.8.2 AEAD test vector.
func TestAEAD_RFC8439(t *testing.T) {
	keyBytes, err := hex.DecodeString("808182838485868788898a8b8c8d8e8f909192939495969798999a9b9c9d9e9f")
	require.NoError(t, err)
	var key [KeySize]byte
	copy(key[:], keyBytes)

	nonceBytes, err := hex.DecodeString("070000004041424344454647")
	require.NoError(t, err)
	var nonce [NonceSize]byte
	copy(nonce[:], nonceBytes)

	ad, err := hex.DecodeString("50515253c0c1c2c3c4c5c6c7")
	require.NoError(t, err)

	plaintext := []byte("Ladies and Gentlemen of the class of '99: If I could offer you only one tip for the future, sunscreen would be it.")

	wantCT, err := hex.DecodeString("d31a8d34648e60db7b86afbc53ef7ec2a4aded51296e08fea9e2b5a736ee62d63dbea45e8ca9671282fafb69da92728b1a71de0a9e060b2905d6a5b67ecd3b3692ddbd7f2d778b8c9803aee328091b58fab324e4fad675945585808b4831d7bc3ff4def08e4b7a9de576d26586cec64b6116")
	require.NoError(t, err)
	wantTag, err := hex.DecodeString("1ae10b594f09e26a7e902ecbd0600691")
	require.NoError(t, err)

	a := New(key)
	sealed := a.Seal(nonce, plaintext, ad)

	require.Equal(t, wantCT, sealed[:len(plaintext)])
	require.Equal(t, wantTag, sealed[len(plaintext):])

	opened, err := a.Open(nonce, sealed, ad)
	require.NoError(t, err)
	require.Equal(t, plaintext, opened)
}

// TestAEAD_EncryptorMatchesSealAcrossMultipleCalls checks that Encryptor/
// Decryptor driven with several incremental calls of uneven size produce the
// same ciphertext and tag as the one-shot Seal/Open wrappers.
func TestAEAD_EncryptorMatchesSealAcrossMultipleCalls(t *testing.T) {
	var key [KeySize]byte
	for i := range key {
		key[i] = byte(i * 3)
	}
	var nonce [NonceSize]byte
	for i := range nonce {
		nonce[i] = byte(i + 9)
	}
	ad := []byte("associated data")
	plaintext := []byte("this message is split across several incremental Encrypt calls of different lengths")

	a := New(key)
	wantSealed := a.Seal(nonce, plaintext, ad)

	enc := a.NewEncryptor(nonce, ad)
	out := make([]byte, len(plaintext))
	copy(out, plaintext)

	chunkSizes := []int{3, 13, 50, 1000}
	pos := 0
	for _, n := range chunkSizes {
		if pos >= len(out) {
			break
		}
		end := pos + n
		if end > len(out) {
			end = len(out)
		}
		enc.Encrypt(out[pos:end])
		pos = end
	}
	tag := enc.Finalize()

	require.Equal(t, wantSealed[:len(plaintext)], out)
	require.Equal(t, wantSealed[len(plaintext):], tag[:])

	dec := a.NewDecryptor(nonce, ad)
	back := make([]byte, len(out))
	copy(back, out)
	pos = 0
	for _, n := range chunkSizes {
		if pos >= len(back) {
			break
		}
		end := pos + n
		if end > len(back) {
			end = len(back)
		}
		dec.Decrypt(back[pos:end])
		pos = end
	}
	require.NoError(t, dec.Finalize(tag))
	require.Equal(t, plaintext, back)
}

func TestAEAD_TamperedTagFails(t *testing.T) {
	var key [KeySize]byte
	var nonce [NonceSize]byte
	plaintext := []byte("hello, world")

	a := New(key)
	sealed := a.Seal(nonce, plaintext, nil)
	sealed[len(sealed)-1] ^= 0x01

	_, err := a.Open(nonce, sealed, nil)
	require.Error(t, err)
}
