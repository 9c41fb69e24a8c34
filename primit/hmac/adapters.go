package hmac

import (
	"github.com/go-primit/primit/primit/md5"
	"github.com/go-primit/primit/primit/sha256"
)

const blockSize = 64 // shared by both MD5 and SHA-256

type md5Hash struct{ d *md5.Digest }

func (h md5Hash) Write(p []byte) { _, _ = h.d.Write(p) }
func (h md5Hash) Sum() []byte    { sum := h.d.Sum(); return sum[:] }
func (h md5Hash) BlockSize() int { return blockSize }

type sha256Hash struct{ d *sha256.Digest }

func (h sha256Hash) Write(p []byte) { _, _ = h.d.Write(p) }
func (h sha256Hash) Sum() []byte    { sum := h.d.Sum(); return sum[:] }
func (h sha256Hash) BlockSize() int { return blockSize }

// NewMD5 builds an HMAC-MD5 keyed by key.
func NewMD5(key []byte) *MAC {
	return New(func() Hash { return md5Hash{d: md5.New()} }, key)
}

// NewSHA256 builds an HMAC-SHA256 keyed by key.
func NewSHA256(key []byte) *MAC {
	return New(func() Hash { return sha256Hash{d: sha256.New()} }, key)
}

// ComputeMD5 returns HMAC-MD5(key, message) in one call.
func ComputeMD5(key, message []byte) []byte {
	return Compute(func() Hash { return md5Hash{d: md5.New()} }, key, message)
}

// ComputeSHA256 returns HMAC-SHA256(key, message) in one call.
func ComputeSHA256(key, message []byte) []byte {
	return Compute(func() Hash { return sha256Hash{d: sha256.New()} }, key, message)
}
