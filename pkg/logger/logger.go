package logger

import (
	"os"
	"strings"

	"github.com/powerhome/pac-data-processor/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SetupLogger configures the zap logger based on provided configuration
func SetupLogger(config *config.Config) *zap.Logger {
	// Set the log level
	var level zapcore.Level
	switch strings.ToLower(config.LogLevel) {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	// Create encoder configuration
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Configure the encoder based on the format
	var encoder zapcore.Encoder
	if config.LogFormat == "console" {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	// Stdout is reserved for the pipeline status line, so logs go to stderr.
	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level)

	return zap.New(core)
}
