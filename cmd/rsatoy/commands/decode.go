package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rsatoy/internal/codec"
)

// decode <c>: decode a number with the stored key pair.
func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <c>",
		Short: "Decode a number with the stored key pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseInt("c", args[0])
			if err != nil {
				return err
			}

			pub, priv, err := wire.Keys.Load()
			if err != nil {
				return err
			}
			fmt.Printf("Decoded number m: %d\n", codec.Decode(pub, priv, c))
			return nil
		},
	}
}
