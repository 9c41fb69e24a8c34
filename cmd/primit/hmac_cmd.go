package main

import (
	"fmt"

	"github.com/go-primit/primit/primit/hex"
	primithmac "github.com/go-primit/primit/primit/hmac"
	"github.com/spf13/cobra"
)

var hmacKeyHex string

var hmacCmd = &cobra.Command{
	Use:   "hmac",
	Short: "Compute a keyed message authentication code",
}

func init() {
	sha256Cmd := &cobra.Command{
		Use:   "sha256 [file]",
		Short: "Compute HMAC-SHA256 of a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := hex.DecodeString(hmacKeyHex)
			if err != nil {
				return fmt.Errorf("decoding --key: %w", err)
			}
			data, err := readInput(argOrEmpty(args))
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(primithmac.ComputeSHA256(key, data)))
			return nil
		},
	}
	md5Cmd := &cobra.Command{
		Use:   "md5 [file]",
		Short: "Compute HMAC-MD5 of a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := hex.DecodeString(hmacKeyHex)
			if err != nil {
				return fmt.Errorf("decoding --key: %w", err)
			}
			data, err := readInput(argOrEmpty(args))
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(primithmac.ComputeMD5(key, data)))
			return nil
		},
	}

	for _, c := range []*cobra.Command{sha256Cmd, md5Cmd} {
		c.Flags().StringVar(&hmacKeyHex, "key", "", "hex-encoded key (required)")
		_ = c.MarkFlagRequired("key")
	}

	hmacCmd.AddCommand(sha256Cmd, md5Cmd)
}
