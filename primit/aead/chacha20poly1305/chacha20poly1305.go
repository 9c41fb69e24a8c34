// Package chacha20poly1305 implements the RFC 8439 ChaCha20-Poly1305
// AEAD: a ChaCha20 keystream composed with a Poly1305 MAC keyed from the
// cipher's own first keystream block.
package chacha20poly1305

import (
	"github.com/go-primit/primit/primit/chacha20"
	"github.com/go-primit/primit/primit/errors"
	"github.com/go-primit/primit/primit/poly1305"
)

// KeySize, NonceSize and TagSize are the RFC 8439 sizes in bytes.
const (
	KeySize   = chacha20.KeySize
	NonceSize = chacha20.NonceSize
	TagSize   = poly1305.TagSize
)

// AEAD is a ChaCha20-Poly1305 AEAD bound to a single key.
type AEAD struct {
	key [KeySize]byte
}

// New creates an AEAD under a 32-byte key.
func New(key [KeySize]byte) *AEAD {
	return &AEAD{key: key}
}

func (a *AEAD) newMAC(nonce [NonceSize]byte) (*chacha20.Cipher, *poly1305.MAC) {
	cipher := chacha20.New(a.key, nonce)

	var firstBlock [64]byte
	cipher.XORKeyStream(firstBlock[:])

	var macKey [poly1305.KeySize]byte
	copy(macKey[:], firstBlock[:32])

	return cipher, poly1305.New(macKey)
}

// padTo16 feeds n zero bytes into mac to round an already-written length
// up to the next 16-byte boundary, per RFC 8439 §2.8.1.
func padTo16(mac *poly1305.MAC, writtenLen int) {
	if left := writtenLen % 16; left != 0 {
		var zeros [16]byte
		mac.Write(zeros[:16-left])
	}
}

func lengthFooter(mac *poly1305.MAC, adLen, dataLen int) {
	var lens [16]byte
	putUint64LE(lens[0:8], uint64(adLen))
	putUint64LE(lens[8:16], uint64(dataLen))
	mac.Write(lens[:])
}

func putUint64LE(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

// Encryptor is a stateful ChaCha20-Poly1305 encryption stream bound to one
// nonce and one set of associated data, accepting any number of incremental
// Encrypt calls before Finalize. Poly1305's own Write already buffers a
// trailing partial block across calls (see poly1305.MAC.Write), so no extra
// block-alignment bookkeeping is needed here beyond tracking the total
// ciphertext length for the length footer.
type Encryptor struct {
	cipher  *chacha20.Cipher
	mac     *poly1305.MAC
	adLen   int
	dataLen int
}

// NewEncryptor constructs an Encryptor for nonce, MACing ad immediately
// (associated data is supplied up front, not streamed).
func (a *AEAD) NewEncryptor(nonce [NonceSize]byte, ad []byte) *Encryptor {
	cipher, mac := a.newMAC(nonce)
	mac.Write(ad)
	padTo16(mac, len(ad))
	return &Encryptor{cipher: cipher, mac: mac, adLen: len(ad)}
}

// Encrypt XORs buf with the keystream in place and feeds the resulting
// ciphertext into the running MAC. It may be called any number of times.
func (e *Encryptor) Encrypt(buf []byte) {
	e.cipher.XORKeyStream(buf)
	e.mac.Write(buf)
	e.dataLen += len(buf)
}

// Finalize pads and closes the MAC over ad and the accumulated ciphertext
// length, and returns the 16-byte tag. The Encryptor must not be reused.
func (e *Encryptor) Finalize() [TagSize]byte {
	padTo16(e.mac, e.dataLen)
	lengthFooter(e.mac, e.adLen, e.dataLen)
	return e.mac.Sum()
}

// Decryptor is the dual of Encryptor: it MACs each chunk of ciphertext
// before decrypting it in place, so a tag mismatch at Finalize is detected
// without ever having trusted unauthenticated plaintext.
type Decryptor struct {
	cipher  *chacha20.Cipher
	mac     *poly1305.MAC
	adLen   int
	dataLen int
}

// NewDecryptor constructs a Decryptor for nonce, MACing ad immediately.
func (a *AEAD) NewDecryptor(nonce [NonceSize]byte, ad []byte) *Decryptor {
	cipher, mac := a.newMAC(nonce)
	mac.Write(ad)
	padTo16(mac, len(ad))
	return &Decryptor{cipher: cipher, mac: mac, adLen: len(ad)}
}

// Decrypt MACs buf as ciphertext, then decrypts it in place. Callers MUST
// discard the resulting plaintext if Finalize returns an error.
func (d *Decryptor) Decrypt(buf []byte) {
	d.mac.Write(buf)
	d.dataLen += len(buf)
	d.cipher.XORKeyStream(buf)
}

// Finalize closes the MAC and verifies tag in constant time, returning
// ErrBadMAC on mismatch.
func (d *Decryptor) Finalize(tag [TagSize]byte) error {
	padTo16(d.mac, d.dataLen)
	lengthFooter(d.mac, d.adLen, d.dataLen)

	wantTag := d.mac.Sum()
	var diff byte
	for i := range wantTag {
		diff |= wantTag[i] ^ tag[i]
	}
	if diff != 0 {
		return errors.ErrBadMAC
	}
	return nil
}

// Seal encrypts plaintext under nonce with ad authenticated but not
// encrypted, and returns ciphertext with a 16-byte tag appended. It is a
// single-shot convenience wrapper over Encryptor.
func (a *AEAD) Seal(nonce [NonceSize]byte, plaintext, ad []byte) []byte {
	enc := a.NewEncryptor(nonce, ad)

	ciphertext := make([]byte, len(plaintext)+TagSize)
	out := ciphertext[:len(plaintext)]
	copy(out, plaintext)
	enc.Encrypt(out)

	tag := enc.Finalize()
	copy(ciphertext[len(plaintext):], tag[:])
	return ciphertext
}

// Open decrypts ciphertext (which must include its trailing 16-byte tag)
// under nonce and ad, returning an error if authentication fails. It is a
// single-shot convenience wrapper over Decryptor.
func (a *AEAD) Open(nonce [NonceSize]byte, ciphertext, ad []byte) ([]byte, error) {
	if len(ciphertext) < TagSize {
		return nil, errors.ErrBadMAC
	}
	body := ciphertext[:len(ciphertext)-TagSize]
	var tag [TagSize]byte
	copy(tag[:], ciphertext[len(ciphertext)-TagSize:])

	dec := a.NewDecryptor(nonce, ad)
	plaintext := make([]byte, len(body))
	copy(plaintext, body)
	dec.Decrypt(plaintext)

	if err := dec.Finalize(tag); err != nil {
		return nil, err
	}
	return plaintext, nil
}
