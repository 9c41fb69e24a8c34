package main

import (
	"fmt"

	"github.com/go-primit/primit/primit/drbg"
	"github.com/go-primit/primit/primit/hex"
	"github.com/spf13/cobra"
)

var (
	randSeedHex string
	randCount   int
	randGen     string
)

var randCmd = &cobra.Command{
	Use:   "rand",
	Short: "Generate deterministic bytes from a seed",
	RunE: func(cmd *cobra.Command, args []string) error {
		seedBytes, err := hex.DecodeString(randSeedHex)
		if err != nil {
			return fmt.Errorf("decoding --seed: %w", err)
		}
		if len(seedBytes) != 32 {
			return fmt.Errorf("--seed must decode to 32 bytes, got %d", len(seedBytes))
		}
		var seed [32]byte
		copy(seed[:], seedBytes)

		var gen drbg.Rng
		switch randGen {
		case "aes128":
			gen = drbg.NewAES128RNG(seed)
		case "chacha8":
			gen = drbg.NewChaCha8RNG(seed)
		default:
			return fmt.Errorf("unknown --gen %q, want aes128 or chacha8", randGen)
		}

		out := make([]byte, randCount)
		gen.FillBytes(out)
		fmt.Println(hex.EncodeToString(out))
		return nil
	},
}

func init() {
	randCmd.Flags().StringVar(&randSeedHex, "seed", "", "hex-encoded 32-byte seed (required)")
	randCmd.Flags().IntVar(&randCount, "count", 32, "number of bytes to generate")
	randCmd.Flags().StringVar(&randGen, "gen", "chacha8", "generator: aes128 or chacha8")
	_ = randCmd.MarkFlagRequired("seed")
}
