// Package cmd provides the quotectl commands.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hometheater_quote/internal/adapter/persistence/repository"
	"hometheater_quote/internal/infrastructure/config"
	"hometheater_quote/internal/infrastructure/logging"
	"hometheater_quote/internal/usecase"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "quotectl",
	Short: "Administer home theater service requests",
	Long: `quotectl works against the same storage as the quote API.

Storage and logging are configured through the API's environment variables
(STORAGE_DRIVER, DATABASE_URL, DYNAMODB_ENDPOINT, ...).

Examples:
  quotectl export --format xlsx --out requests.xlsx
  quotectl export --query polk --sort total_price --order desc
  quotectl hash-password`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}

// openServiceRequests is replaced in tests.
var openServiceRequests = func(ctx context.Context) (usecase.IServiceRequestUseCase, func() error, error) {
	cfg, err := config.LoadStorage()
	if err != nil {
		return nil, nil, err
	}
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	logger := logging.Must(level, "console")

	repo, closeRepo, err := repository.NewServiceRequestRepository(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to initialize storage", zap.Error(err))
		return nil, nil, err
	}
	return usecase.NewServiceRequestUseCase(repo, logger), closeRepo, nil
}
