package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// keygen <p> <q>: derive a key pair and write the key files.
func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen <p> <q>",
		Short: "Derive a key pair from two primes and save it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseInt("p", args[0])
			if err != nil {
				return err
			}
			q, err := parseInt("q", args[1])
			if err != nil {
				return err
			}

			pub, priv, err := wire.Keys.Generate(p, q)
			if err != nil {
				return err
			}
			fmt.Printf("Public key:  %s\nPrivate key: %s\n", pub, priv)
			return nil
		},
	}
}
