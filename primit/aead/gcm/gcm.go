// Package gcm implements AES-GCM (NIST SP 800-38D): AES-128 in counter
// mode composed with a GHASH universal-hash MAC over the associated data
// and ciphertext.
package gcm

import (
	"github.com/go-primit/primit/primit/aes128"
	"github.com/go-primit/primit/primit/endian"
	"github.com/go-primit/primit/primit/errors"
	"github.com/go-primit/primit/primit/ghash"
)

// KeySize, NonceSize and TagSize are the AES-GCM sizes in bytes.
const (
	KeySize   = aes128.KeySize
	NonceSize = 12
	TagSize   = 16
	blockSize = 16
)

// GCM is an AES-128-GCM AEAD bound to a single key.
type GCM struct {
	cipher *aes128.Cipher
}

// New creates a GCM instance under a 16-byte key.
func New(key [KeySize]byte) *GCM {
	return &GCM{cipher: aes128.New(&key)}
}

// counterState is the 16-byte CTR-mode state (nonce || 32-bit big-endian
// counter) shared by sealing and opening.
type counterState struct {
	cipher *aes128.Cipher
	state  [16]byte
}

func newCounterState(cipher *aes128.Cipher, nonce [NonceSize]byte, startCounter uint32) counterState {
	var s counterState
	s.cipher = cipher
	copy(s.state[:NonceSize], nonce[:])
	endian.BigEndianToBytes(s.state[12:16], []uint32{startCounter})
	return s
}

// nextKey encrypts the current counter value to produce one 16-byte
// keystream block, then increments the counter for the following call.
func (s *counterState) nextKey() [16]byte {
	key := s.state

	var counter [1]uint32
	endian.BigEndianFromBytes(counter[:], s.state[12:16])
	counter[0]++
	endian.BigEndianToBytes(s.state[12:16], counter[:])

	s.cipher.Encrypt(&key)
	return key
}

// ghashAD feeds associated data into mac, zero-padding a trailing partial
// block, per SP 800-38D §6.4.
func ghashAD(mac *ghash.GHash, ad []byte) {
	for len(ad) >= blockSize {
		var block [16]byte
		copy(block[:], ad[:blockSize])
		mac.Update(block)
		ad = ad[blockSize:]
	}
	if len(ad) > 0 {
		var block [16]byte
		copy(block[:], ad)
		mac.Update(block)
	}
}

func (g *GCM) newMAC(ad []byte) *ghash.GHash {
	var ghashKeyBlock [16]byte
	g.cipher.Encrypt(&ghashKeyBlock)

	mac := ghash.New(ghashKeyBlock)
	ghashAD(mac, ad)

	return mac
}

func lengthBlock(adLen, dataLen int) [16]byte {
	var block [16]byte
	endian.BigEndianToBytes(block[0:8], []uint32{0, uint32(adLen) * 8})
	endian.BigEndianToBytes(block[8:16], []uint32{0, uint32(dataLen) * 8})
	return block
}

// tagBlock computes the final tag: encrypt J0 (nonce || 0^31 1) under the
// block cipher directly (not through the counter stream) and XOR it with
// the finished GHASH value.
func (g *GCM) tagBlock(nonce [NonceSize]byte, macSum [16]byte) [16]byte {
	var head [16]byte
	copy(head[:NonceSize], nonce[:])
	head[15] = 1

	g.cipher.Encrypt(&head)
	endian.XORBytes(head[:], macSum[:])
	return head
}

// blockBuffer accumulates bytes up to blockSize across independent calls,
// mirroring the resumption invariant primit/chacha.Cipher's keystream
// buffer and primit/ghash's block-at-a-time Update already rely on: never
// lose a partial block's worth of unprocessed bytes between calls.
type blockBuffer struct {
	buf [blockSize]byte
	n   int
}

// fill copies as many bytes of data into the buffer as fit, returning how
// many were consumed. The caller drains a full buffer before calling again.
func (b *blockBuffer) fill(data []byte) int {
	n := copy(b.buf[b.n:], data)
	b.n += n
	return n
}

func (b *blockBuffer) full() bool { return b.n == blockSize }

func (b *blockBuffer) reset() { b.n = 0 }

// paddedBlock returns the buffered bytes zero-padded to a full block, for
// feeding a trailing partial block into GHASH at Finalize.
func (b *blockBuffer) paddedBlock() [blockSize]byte {
	var block [blockSize]byte
	copy(block[:], b.buf[:b.n])
	return block
}

// Encryptor is a stateful AES-GCM encryption stream bound to one nonce and
// one set of associated data, accepting any number of incremental Encrypt
// calls before Finalize. It buffers keystream and ciphertext bytes across
// calls so neither CTR-mode block generation nor GHASH block accumulation
// ever depends on Encrypt being called with 16-byte-aligned slices.
type Encryptor struct {
	gcm     *GCM
	mac     *ghash.GHash
	ctr     counterState
	nonce   [NonceSize]byte
	adLen   int
	dataLen int

	keyBuf       [blockSize]byte
	keyBufOffset int
	macBuf       blockBuffer
}

// NewEncryptor constructs an Encryptor for nonce, MACing ad immediately
// (associated data is supplied up front, not streamed).
func (g *GCM) NewEncryptor(nonce [NonceSize]byte, ad []byte) *Encryptor {
	return &Encryptor{
		gcm:          g,
		mac:          g.newMAC(ad),
		ctr:          newCounterState(g.cipher, nonce, 2),
		nonce:        nonce,
		adLen:        len(ad),
		keyBufOffset: blockSize,
	}
}

// Encrypt XORs buf with the keystream in place, one keystream block at a
// time, and feeds each completed ciphertext block into GHASH as it fills.
func (e *Encryptor) Encrypt(buf []byte) {
	e.dataLen += len(buf)

	for len(buf) > 0 {
		if e.keyBufOffset == blockSize {
			e.keyBuf = e.ctr.nextKey()
			e.keyBufOffset = 0
		}

		n := blockSize - e.keyBufOffset
		if n > len(buf) {
			n = len(buf)
		}

		chunk := buf[:n]
		endian.XORBytes(chunk, e.keyBuf[e.keyBufOffset:e.keyBufOffset+n])
		e.keyBufOffset += n

		if e.macBuf.fill(chunk) == n && e.macBuf.full() {
			e.mac.Update(e.macBuf.buf)
			e.macBuf.reset()
		}

		buf = buf[n:]
	}
}

// Finalize closes GHASH over any trailing partial block and the AD/
// ciphertext length trailer, and returns the 16-byte tag. The Encryptor
// must not be reused.
func (e *Encryptor) Finalize() [TagSize]byte {
	if e.macBuf.n > 0 {
		e.mac.Update(e.macBuf.paddedBlock())
	}
	e.mac.Update(lengthBlock(e.adLen, e.dataLen))
	return e.gcm.tagBlock(e.nonce, e.mac.Sum())
}

// Decryptor is the dual of Encryptor: it MACs each ciphertext block before
// decrypting it in place, so a tag mismatch at Finalize is detected without
// ever having trusted unauthenticated plaintext.
type Decryptor struct {
	gcm     *GCM
	mac     *ghash.GHash
	ctr     counterState
	nonce   [NonceSize]byte
	adLen   int
	dataLen int

	keyBuf       [blockSize]byte
	keyBufOffset int
	macBuf       blockBuffer
}

// NewDecryptor constructs a Decryptor for nonce, MACing ad immediately.
func (g *GCM) NewDecryptor(nonce [NonceSize]byte, ad []byte) *Decryptor {
	return &Decryptor{
		gcm:          g,
		mac:          g.newMAC(ad),
		ctr:          newCounterState(g.cipher, nonce, 2),
		nonce:        nonce,
		adLen:        len(ad),
		keyBufOffset: blockSize,
	}
}

// Decrypt MACs buf as ciphertext before decrypting it in place, one
// keystream block at a time. Callers MUST discard the resulting plaintext
// if Finalize returns an error.
func (d *Decryptor) Decrypt(buf []byte) {
	d.dataLen += len(buf)

	for len(buf) > 0 {
		if d.keyBufOffset == blockSize {
			d.keyBuf = d.ctr.nextKey()
			d.keyBufOffset = 0
		}

		n := blockSize - d.keyBufOffset
		if n > len(buf) {
			n = len(buf)
		}

		chunk := buf[:n]
		if d.macBuf.fill(chunk) == n && d.macBuf.full() {
			d.mac.Update(d.macBuf.buf)
			d.macBuf.reset()
		}

		endian.XORBytes(chunk, d.keyBuf[d.keyBufOffset:d.keyBufOffset+n])
		d.keyBufOffset += n

		buf = buf[n:]
	}
}

// Finalize closes GHASH and verifies tag in constant time, returning
// ErrBadMAC on mismatch.
func (d *Decryptor) Finalize(tag [TagSize]byte) error {
	if d.macBuf.n > 0 {
		d.mac.Update(d.macBuf.paddedBlock())
	}
	d.mac.Update(lengthBlock(d.adLen, d.dataLen))

	wantTag := d.gcm.tagBlock(d.nonce, d.mac.Sum())
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
func (g *GCM) Seal(nonce [NonceSize]byte, plaintext, ad []byte) []byte {
	enc := g.NewEncryptor(nonce, ad)

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
func (g *GCM) Open(nonce [NonceSize]byte, ciphertext, ad []byte) ([]byte, error) {
	if len(ciphertext) < TagSize {
		return nil, errors.ErrBadMAC
	}
	body := ciphertext[:len(ciphertext)-TagSize]
	var tag [TagSize]byte
	copy(tag[:], ciphertext[len(ciphertext)-TagSize:])

	dec := g.NewDecryptor(nonce, ad)
	plaintext := make([]byte, len(body))
	copy(plaintext, body)
	dec.Decrypt(plaintext)

	if err := dec.Finalize(tag); err != nil {
		return nil, err
	}
	return plaintext, nil
}
