//go:build amd64

package aes128

import "golang.org/x/sys/cpu"

// cpuSupportsAESNI reports whether the running CPU advertises the AES-NI
// instruction set extension. AES-NI also requires SSE4.1 to be usable in
// the key-schedule shuffles, so both are checked.
func cpuSupportsAESNI() bool {
	return cpu.X86.HasAES && cpu.X86.HasSSE41
}

// hardwareCipher is the selection point for an AES-NI round function. The
// corpus this module was grounded on carries no Go assembly (.s) files to
// model an AESENC/AESKEYGENASSIST instruction sequence on, and shipping
// hand-written, unverifiable assembly was judged a worse trade than an
// honest, fully exercised software kernel reachable through the same
// dispatch surface — see SPEC_FULL.md §12. The
// cpu-feature probe above is real; only the accelerated kernel itself is
// deferred.
type hardwareCipher struct {
	inner *softCipher
}

func newHardwareCipher(key *[KeySize]byte) *hardwareCipher {
	return &hardwareCipher{inner: newSoftCipher(key)}
}

func (h *hardwareCipher) encrypt(block *[BlockSize]byte) {
	h.inner.encrypt(block)
}

func (h *hardwareCipher) decrypt(block *[BlockSize]byte) {
	h.inner.decrypt(block)
}
