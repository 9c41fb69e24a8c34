package main

import (
	"fmt"

	"github.com/go-primit/primit/primit/drbg"
	"github.com/go-primit/primit/primit/ecdh/p256"
	"github.com/go-primit/primit/primit/hex"
	"github.com/spf13/cobra"
)

var ecdhCmd = &cobra.Command{
	Use:   "ecdh",
	Short: "P-256 Diffie-Hellman key exchange",
}

func init() {
	var seedHex string
	keygenCmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a P-256 private key and its public point",
		RunE: func(cmd *cobra.Command, args []string) error {
			seedBytes, err := hex.DecodeString(seedHex)
			if err != nil {
				return fmt.Errorf("decoding --seed: %w", err)
			}
			if len(seedBytes) != 32 {
				return fmt.Errorf("--seed must decode to 32 bytes, got %d", len(seedBytes))
			}
			var seed [32]byte
			copy(seed[:], seedBytes)

			key := p256.New(drbg.NewChaCha8RNG(seed))
			priv := key.Bytes()
			pub := key.Public()
			fmt.Printf("private: %s\n", hex.EncodeToString(priv[:]))
			fmt.Printf("public:  %s\n", hex.EncodeToString(pub[:]))
			return nil
		},
	}
	keygenCmd.Flags().StringVar(&seedHex, "seed", "", "hex-encoded 32-byte seed (required)")
	_ = keygenCmd.MarkFlagRequired("seed")

	var privHex, peerHex string
	sharedCmd := &cobra.Command{
		Use:   "shared",
		Short: "Derive the ECDH shared secret with a peer's public point",
		RunE: func(cmd *cobra.Command, args []string) error {
			privBytes, err := hex.DecodeString(privHex)
			if err != nil {
				return fmt.Errorf("decoding --private: %w", err)
			}
			if len(privBytes) != p256.ScalarSize {
				return fmt.Errorf("--private must decode to %d bytes, got %d", p256.ScalarSize, len(privBytes))
			}
			peerBytes, err := hex.DecodeString(peerHex)
			if err != nil {
				return fmt.Errorf("decoding --peer: %w", err)
			}
			if len(peerBytes) != p256.PointSize {
				return fmt.Errorf("--peer must decode to %d bytes, got %d", p256.PointSize, len(peerBytes))
			}

			var scalar [p256.ScalarSize]byte
			copy(scalar[:], privBytes)
			var peer [p256.PointSize]byte
			copy(peer[:], peerBytes)

			key := p256.NewFromBytes(scalar)
			shared, err := key.ECDH(peer)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(shared[:]))
			return nil
		},
	}
	sharedCmd.Flags().StringVar(&privHex, "private", "", "hex-encoded 32-byte private scalar (required)")
	sharedCmd.Flags().StringVar(&peerHex, "peer", "", "hex-encoded 65-byte uncompressed peer public point (required)")
	_ = sharedCmd.MarkFlagRequired("private")
	_ = sharedCmd.MarkFlagRequired("peer")

	ecdhCmd.AddCommand(keygenCmd, sharedCmd)
}
