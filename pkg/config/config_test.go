package config

import (
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestInitConfig(t *testing.T) {
	// Reset viper before the test to ensure clean state
	viper.Reset()

	// Test with default values
	cfg := InitConfig()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)

	// Test with environment variables
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "console")

	// Reset viper to pick up the new environment variables
	viper.Reset()

	cfg = InitConfig()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)

	// Clean up
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_FORMAT")
}

func TestSetupFlags(t *testing.T) {
	// Reset viper before the test
	viper.Reset()

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test command for SetupFlags",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	SetupFlags(cmd)

	flags := cmd.Flags()
	assert.True(t, flags.HasAvailableFlags())

	logLevel, _ := flags.GetString("log-level")
	assert.Equal(t, "info", logLevel)

	logFormat, _ := flags.GetString("log-format")
	assert.Equal(t, "json", logFormat)
}
