package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"rsatoy/internal/codec"
)

// demo: the full interactive session. Prompts for two primes and a message,
// derives and saves the key pair, then encodes and decodes the message and
// reports whether the round trip matched.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Interactive generate/encode/decode round trip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			p, err := prompt(out, in, "Insert p: ")
			if err != nil {
				return err
			}
			q, err := prompt(out, in, "Insert q: ")
			if err != nil {
				return err
			}

			pub, priv, err := wire.Keys.Generate(p, q)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Public key:  %s\nPrivate key: %s\n", pub, priv)

			m, err := prompt(out, in, "Insert m: ")
			if err != nil {
				return err
			}
			if err := codec.CheckRange(pub, m); err != nil {
				return err
			}

			c := codec.Encode(pub, m)
			fmt.Fprintf(out, "Encoded number c: %d\n", c)

			decoded := codec.Decode(pub, priv, c)
			fmt.Fprintf(out, "Decoded number m: %d\n", decoded)

			if decoded == m {
				fmt.Fprintln(out, "Encoding/Decoding successful!")
			} else {
				fmt.Fprintln(out, "Encoding/Decoding failed.")
			}
			return nil
		},
	}
}

// prompt prints label and reads one integer line.
func prompt(out io.Writer, in *bufio.Scanner, label string) (int64, error) {
	fmt.Fprint(out, label)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("no input")
	}
	return parseInt("input", strings.TrimSpace(in.Text()))
}
