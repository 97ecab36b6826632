package cmd

import (
	"fmt"
	"os"

	"s3-client/core/config"
	"s3-client/core/logger"
	"s3-client/core/storage"
	"s3-client/feature/objects"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "s3-client",
	Short: "S3 compatible object storage client",
	Long: `s3-client manages buckets and objects on AWS S3 or any S3 compatible server (MinIO, Ceph).
The endpoint and credentials come from S3_ENDPOINT_URL, AWS_ACCESS_KEY_ID and
AWS_SECRET_ACCESS_KEY, read from the environment or a .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// connect loads configuration and returns a service connected to the configured endpoint.
func connect() (*objects.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	svc := objects.NewService(storage.NewClient, logg)
	if err := svc.Connect(cfg.Storage); err != nil {
		return nil, nil, err
	}
	return svc, logg, nil
}
