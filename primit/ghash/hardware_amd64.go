//go:build amd64

package ghash

import "golang.org/x/sys/cpu"

// cpuSupportsPCLMULQDQ reports whether the running CPU advertises the
// carry-less multiply instruction GHASH's field multiplication maps onto
// directly.
//
// As with aes128's AES-NI path, this module carries no Go assembly to
// model a PCLMULQDQ kernel against, so UsingHardware is an honest,
// exercised selection surface whose accelerated path currently aliases
// the bit-sliced software multiply in mul/bmul32 rather than shipping
// unverified hand-written assembly; see SPEC_FULL.md §12.
func cpuSupportsPCLMULQDQ() bool {
	return cpu.X86.HasPCLMULQDQ && cpu.X86.HasSSE2
}

// UsingHardware reports whether New would prefer a PCLMULQDQ-accelerated
// multiply on this CPU. Exposed for tests and diagnostics; it does not
// currently change New's behavior.
func UsingHardware() bool {
	return cpuSupportsPCLMULQDQ()
}
