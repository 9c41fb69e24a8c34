package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-primit/primit/primit/aead/chacha20poly1305"
	"github.com/go-primit/primit/primit/aead/gcm"
	"github.com/go-primit/primit/primit/aead/xchacha20poly1305"
	"github.com/go-primit/primit/primit/hex"
	"github.com/spf13/cobra"
)

var aeadCmd = &cobra.Command{
	Use:   "aead",
	Short: "Authenticated encryption",
}

// sealer and opener let the three AEAD constructions below share a single
// seal/open command pair despite having distinct key and nonce sizes.
type sealer func(key, nonce, plaintext, ad []byte) ([]byte, error)
type opener func(key, nonce, ciphertext, ad []byte) ([]byte, error)

func init() {
	aeadCmd.AddCommand(
		newAEADCmd("gcm", gcm.KeySize, gcm.NonceSize, sealGCM, openGCM),
		newAEADCmd("chacha20poly1305", chacha20poly1305.KeySize, chacha20poly1305.NonceSize, sealChaCha20Poly1305, openChaCha20Poly1305),
		newAEADCmd("xchacha20poly1305", xchacha20poly1305.KeySize, xchacha20poly1305.NonceSize, sealXChaCha20Poly1305, openXChaCha20Poly1305),
	)
}

func sealGCM(key, nonce, plaintext, ad []byte) ([]byte, error) {
	var k [gcm.KeySize]byte
	copy(k[:], key)
	var n [gcm.NonceSize]byte
	copy(n[:], nonce)
	return gcm.New(k).Seal(n, plaintext, ad), nil
}

func openGCM(key, nonce, ciphertext, ad []byte) ([]byte, error) {
	var k [gcm.KeySize]byte
	copy(k[:], key)
	var n [gcm.NonceSize]byte
	copy(n[:], nonce)
	return gcm.New(k).Open(n, ciphertext, ad)
}

func sealChaCha20Poly1305(key, nonce, plaintext, ad []byte) ([]byte, error) {
	var k [chacha20poly1305.KeySize]byte
	copy(k[:], key)
	var n [chacha20poly1305.NonceSize]byte
	copy(n[:], nonce)
	return chacha20poly1305.New(k).Seal(n, plaintext, ad), nil
}

func openChaCha20Poly1305(key, nonce, ciphertext, ad []byte) ([]byte, error) {
	var k [chacha20poly1305.KeySize]byte
	copy(k[:], key)
	var n [chacha20poly1305.NonceSize]byte
	copy(n[:], nonce)
	return chacha20poly1305.New(k).Open(n, ciphertext, ad)
}

func sealXChaCha20Poly1305(key, nonce, plaintext, ad []byte) ([]byte, error) {
	var k [xchacha20poly1305.KeySize]byte
	copy(k[:], key)
	var n [xchacha20poly1305.NonceSize]byte
	copy(n[:], nonce)
	return xchacha20poly1305.New(k).Seal(n, plaintext, ad), nil
}

func openXChaCha20Poly1305(key, nonce, ciphertext, ad []byte) ([]byte, error) {
	var k [xchacha20poly1305.KeySize]byte
	copy(k[:], key)
	var n [xchacha20poly1305.NonceSize]byte
	copy(n[:], nonce)
	return xchacha20poly1305.New(k).Open(n, ciphertext, ad)
}

// newAEADCmd builds the `seal`/`open` pair for one AEAD construction. seal
// reads raw plaintext and prints hex ciphertext; open reads hex ciphertext
// and writes raw plaintext to stdout.
func newAEADCmd(use string, keySize, nonceSize int, seal sealer, open opener) *cobra.Command {
	cmd := &cobra.Command{Use: use}

	var keyHex, nonceHex, adHex string
	addFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&keyHex, "key", "", fmt.Sprintf("hex-encoded %d-byte key (required)", keySize))
		c.Flags().StringVar(&nonceHex, "nonce", "", fmt.Sprintf("hex-encoded %d-byte nonce (required)", nonceSize))
		c.Flags().StringVar(&adHex, "ad", "", "hex-encoded associated data")
		_ = c.MarkFlagRequired("key")
		_ = c.MarkFlagRequired("nonce")
	}

	sealCmd := &cobra.Command{
		Use:   "seal [file]",
		Short: "Encrypt and authenticate a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, nonce, ad, err := decodeAEADFlags(keyHex, nonceHex, adHex, keySize, nonceSize)
			if err != nil {
				return err
			}
			plaintext, err := readInput(argOrEmpty(args))
			if err != nil {
				return err
			}
			ciphertext, err := seal(key, nonce, plaintext, ad)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(ciphertext))
			return nil
		},
	}
	addFlags(sealCmd)

	openCmd := &cobra.Command{
		Use:   "open [file]",
		Short: "Decrypt and verify a hex-encoded file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, nonce, ad, err := decodeAEADFlags(keyHex, nonceHex, adHex, keySize, nonceSize)
			if err != nil {
				return err
			}
			raw, err := readInput(argOrEmpty(args))
			if err != nil {
				return err
			}
			ciphertext, err := hex.DecodeString(string(bytes.TrimSpace(raw)))
			if err != nil {
				return fmt.Errorf("decoding ciphertext: %w", err)
			}
			plaintext, err := open(key, nonce, ciphertext, ad)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(plaintext)
			return err
		},
	}
	addFlags(openCmd)

	cmd.AddCommand(sealCmd, openCmd)
	return cmd
}

func decodeAEADFlags(keyHex, nonceHex, adHex string, keySize, nonceSize int) (key, nonce, ad []byte, err error) {
	key, err = hex.DecodeString(keyHex)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("decoding --key: %w", err)
	}
	if len(key) != keySize {
		return nil, nil, nil, fmt.Errorf("--key must decode to %d bytes, got %d", keySize, len(key))
	}
	nonce, err = hex.DecodeString(nonceHex)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("decoding --nonce: %w", err)
	}
	if len(nonce) != nonceSize {
		return nil, nil, nil, fmt.Errorf("--nonce must decode to %d bytes, got %d", nonceSize, len(nonce))
	}
	if adHex != "" {
		ad, err = hex.DecodeString(adHex)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("decoding --ad: %w", err)
		}
	}
	return key, nonce, ad, nil
}
