package config

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the processor configuration
type Config struct {
	LogFormat string
	LogLevel  string
}

// setDefaults configures the default values for configuration parameters
func setDefaults() {
	viper.SetDefault("log-level", "info")
	viper.SetDefault("log-format", "json")
}

// InitConfig initializes viper configuration with environment variables support
func InitConfig() *Config {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	setDefaults()

	return &Config{
		LogFormat: viper.GetString("log-format"),
		LogLevel:  viper.GetString("log-level"),
	}
}

// SetupFlags binds cobra flags to viper
func SetupFlags(cmd *cobra.Command) {
	cmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().String("log-format", "json", "Log format (json or console)")

	// Bind flags to viper
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		os.Stderr.WriteString("unable to bind flags to viper: " + err.Error() + "\n")
		os.Exit(1)
	}
}
