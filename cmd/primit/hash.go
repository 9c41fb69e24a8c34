package main

import (
	"fmt"

	primithex "github.com/go-primit/primit/primit/hex"
	"github.com/go-primit/primit/primit/md5"
	"github.com/go-primit/primit/primit/sha256"
	"github.com/spf13/cobra"
)

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Compute a message digest",
}

func init() {
	hashCmd.AddCommand(&cobra.Command{
		Use:   "sha256 [file]",
		Short: "Compute the SHA-256 digest of a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(argOrEmpty(args))
			if err != nil {
				return err
			}
			sum := sha256.Sum256(data)
			fmt.Println(primithex.EncodeToString(sum[:]))
			return nil
		},
	})

	hashCmd.AddCommand(&cobra.Command{
		Use:   "md5 [file]",
		Short: "Compute the MD5 digest of a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(argOrEmpty(args))
			if err != nil {
				return err
			}
			sum := md5.Sum128(data)
			fmt.Println(primithex.EncodeToString(sum[:]))
			return nil
		},
	})
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
