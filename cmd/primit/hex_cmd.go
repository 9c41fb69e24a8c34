package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-primit/primit/primit/hex"
	"github.com/spf13/cobra"
)

var hexCmd = &cobra.Command{
	Use:   "hex",
	Short: "Hex-encode or decode a file or stdin",
}

func init() {
	hexCmd.AddCommand(&cobra.Command{
		Use:   "encode [file]",
		Short: "Print the lowercase hex encoding of a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(argOrEmpty(args))
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(data))
			return nil
		},
	})

	hexCmd.AddCommand(&cobra.Command{
		Use:   "decode [file]",
		Short: "Write the raw bytes a hex string decodes to",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(argOrEmpty(args))
			if err != nil {
				return err
			}
			data, err := hex.DecodeString(string(bytes.TrimSpace(raw)))
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	})
}
