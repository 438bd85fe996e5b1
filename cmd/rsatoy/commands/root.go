package commands

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rsatoy/internal/app"
)

var (
	cfg  *app.Config
	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "rsatoy",
		Short: "Toy RSA key generator and integer codec",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.NewConfig(cmd.Flags())
			if err != nil {
				return err
			}
			cfg = c
			if cfg.Debug {
				log.SetLevel(log.DebugLevel)
			}
			wire = app.NewWire(cfg)
			return nil
		},
	}

	app.BindFlags(root.PersistentFlags())

	root.AddCommand(keygenCmd(), encodeCmd(), decodeCmd(), showCmd(), demoCmd())
	return root.Execute()
}

// parseInt parses a decimal command argument.
func parseInt(name, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, s)
	}
	return v, nil
}
