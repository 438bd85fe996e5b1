package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// show: print the stored key pair.
func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, priv, err := wire.Keys.Load()
			if err != nil {
				return err
			}
			fmt.Printf("Public key:  %s\nPrivate key: %s\n", pub, priv)
			return nil
		},
	}
}
