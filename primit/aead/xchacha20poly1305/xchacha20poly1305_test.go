package xchacha20poly1305

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAEAD_RoundTripWithAAD(t *testing.T) {
	var key [KeySize]byte
	for i := range key {
		key[i] = byte(i)
	}
	var nonce [NonceSize]byte
	for i := range nonce {
		nonce[i] = byte(i + 50)
	}

	plaintext := []byte("the extended nonce lets a random 24-byte value be safe to reuse across messages")
	ad := []byte("xchacha header")

	a := New(key)
	sealed := a.Seal(nonce, plaintext, ad)

	opened, err := a.Open(nonce, sealed, ad)
	require.NoError(t, err)
	require.Equal(t, plaintext, opened)
}

func TestAEAD_TamperedCiphertextFails(t *testing.T) {
	var key [KeySize]byte
	var nonce [NonceSize]byte
	plaintext := []byte("hello, world")

	a := New(key)
	sealed := a.Seal(nonce, plaintext, nil)
	sealed[0] ^= 0x01

	_, err := a.Open(nonce, sealed, nil)
	require.Error(t, err)
}

// TestAEAD_EncryptorMatchesSealAcrossMultipleCalls checks that Encryptor/
// Decryptor driven with several incremental calls of uneven size produce the
// same ciphertext and tag as the one-shot Seal/Open wrappers.
func TestAEAD_EncryptorMatchesSealAcrossMultipleCalls(t *testing.T) {
	var key [KeySize]byte
	for i := range key {
		key[i] = byte(i * 5)
	}
	var nonce [NonceSize]byte
	for i := range nonce {
		nonce[i] = byte(i + 2)
	}
	ad := []byte("xchacha header data")
	plaintext := []byte("this message is split across several incremental Encrypt calls of different lengths under xchacha20")

	a := New(key)
	wantSealed := a.Seal(nonce, plaintext, ad)

	enc := a.NewEncryptor(nonce, ad)
	out := make([]byte, len(plaintext))
	copy(out, plaintext)

	chunkSizes := []int{7, 20, 1, 64, 1000}
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

func TestAEAD_WrongNonceFailsToDecrypt(t *testing.T) {
	var key [KeySize]byte
	var nonceA, nonceB [NonceSize]byte
	nonceB[0] = 1
	plaintext := []byte("hello, world")

	a := New(key)
	sealed := a.Seal(nonceA, plaintext, nil)

	_, err := a.Open(nonceB, sealed, nil)
	require.Error(t, err)
}

func TestAEAD_DistinctNoncesGiveDistinctCiphertext(t *testing.T) {
	var key [KeySize]byte
	var nonceA, nonceB [NonceSize]byte
	nonceB[23] = 1
	plaintext := []byte("same plaintext, different nonce")

	a := New(key)
	require.NotEqual(t, a.Seal(nonceA, plaintext, nil), a.Seal(nonceB, plaintext, nil))
}
