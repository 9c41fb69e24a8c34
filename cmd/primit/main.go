// Command primit is a thin CLI front end over the primit cryptographic
// primitives library: hashing, HMAC, deterministic byte generation, P-256
// ECDH and the AEAD constructions.
package main

import (
	"os"

	"go.uber.org/zap"
)

var logger = newLogger()

func newLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		// zap's own constructor failing means stderr is unusable; fall
		// back to the no-op logger rather than panic in a CLI's main.
		return zap.NewNop()
	}
	return l
}

func main() {
	defer func() { _ = logger.Sync() }()

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
