package app

import (
	"errors"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home           string // directory the key files live in
	PublicKeyFile  string // file name for the public key
	PrivateKeyFile string // file name for the private key
	Debug          bool   // debug logging toggle
}

// Configuration options
const (
	Home           = "home"
	PublicKeyFile  = "public-key-file"
	PrivateKeyFile = "private-key-file"
	DebugEnabled   = "debug"
)

func init() {
	// Every option is configurable through the environment, e.g. --home
	// becomes RSATOY_HOME.
	viper.SetEnvPrefix("RSATOY")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Optional config file in the working directory; any format viper
	// understands (JSON, TOML, YAML, ...).
	viper.SetConfigName("rsatoy")
	viper.AddConfigPath(".")
}

// BindFlags declares the configuration flags on fs.
func BindFlags(fs *flag.FlagSet) {
	fs.String(Home, ".", "directory the key files are written to and read from")
	fs.String(PublicKeyFile, "publickey.txt", "file name for the public key")
	fs.String(PrivateKeyFile, "privatekey.txt", "file name for the private key")
	fs.Bool(DebugEnabled, false, "enable debug logging")
}

// NewConfig resolves the configuration from fs, the environment and an
// optional config file.
func NewConfig(fs *flag.FlagSet) (*Config, error) {
	if err := viper.BindPFlags(fs); err != nil {
		return nil, err
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return &Config{
		Home:           viper.GetString(Home),
		PublicKeyFile:  viper.GetString(PublicKeyFile),
		PrivateKeyFile: viper.GetString(PrivateKeyFile),
		Debug:          viper.GetBool(DebugEnabled),
	}, nil
}
