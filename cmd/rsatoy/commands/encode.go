package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rsatoy/internal/codec"
)

// encode <m>: encode a number with the stored public key.
func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <m>",
		Short: "Encode a number with the stored public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseInt("m", args[0])
			if err != nil {
				return err
			}

			pub, err := wire.Store.LoadPublicKey()
			if err != nil {
				return err
			}
			if err := codec.CheckRange(pub, m); err != nil {
				return err
			}
			fmt.Printf("Encoded number c: %d\n", codec.Encode(pub, m))
			return nil
		},
	}
}
