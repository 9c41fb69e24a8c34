package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "primit",
	Short: "primit exercises the primit cryptographic primitives library from the command line",
	Long: `primit is a small command-line front end over the primit Go module:
AES-128, ChaCha20/XChaCha20, SHA-256/MD5, HMAC, P-256 Diffie-Hellman, and the
AES-GCM / ChaCha20-Poly1305 / XChaCha20-Poly1305 AEAD constructions.`,
}

func init() {
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(hmacCmd)
	rootCmd.AddCommand(randCmd)
	rootCmd.AddCommand(ecdhCmd)
	rootCmd.AddCommand(aeadCmd)
	rootCmd.AddCommand(hexCmd)
}

// readInput returns path's contents, or stdin's if path is empty.
func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
