package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/powerhome/pac-data-processor/cmd/version"
	"github.com/powerhome/pac-data-processor/internal/services"
	"github.com/powerhome/pac-data-processor/pkg/config"
	"github.com/powerhome/pac-data-processor/pkg/logger"
)

// sampleData is the built-in input sequence processed on each run.
var sampleData = []int{3, 1, 2, 3, 1}

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "pac-data-processor",
		Short: "Deduplicate-and-sort data processing pipeline",
		Long:  "Runs the deduplicate-and-sort pipeline over an in-memory integer sequence and reports the result.",
		Run: func(cmd *cobra.Command, args []string) {
			// Initialize configuration
			cfg := config.InitConfig()

			// Set up logging
			zapLogger := logger.SetupLogger(cfg)
			defer func() {
				if err := zapLogger.Sync(); err != nil {
					zapLogger.Error("Failed to sync logger", zap.Error(err))
				}
			}()

			// Run the pipeline once over the sample sequence
			svc := services.NewProcessorService(zapLogger)
			report := svc.Process(sampleData)

			zapLogger.Debug("pipeline run finished",
				zap.Int("inputSize", report.InputSize),
				zap.Int("distinctCount", report.DistinctCount),
				zap.Ints("values", report.Values))

			// The status line is the only stdout output
			fmt.Println("Processing complete")
		},
	}

	// Add version command
	rootCmd.AddCommand(version.NewVersionCmd())

	// Setup flags
	config.SetupFlags(rootCmd)

	// Execute the root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
