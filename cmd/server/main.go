package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nekogravitycat/group-read-service/internal/config"
	"github.com/nekogravitycat/group-read-service/internal/pkg/logger"
)

var (
	cfg     *config.Config
	log     *zap.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "group-read-service",
	Short: "Hierarchy-scoped read API for client groups",
	Long: `Serves read-only views of client groups. Every listing and detail read
is restricted to the office hierarchy of the authenticated user.

Run "serve" to start the HTTP API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logCfg := logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}
		if verbose {
			logCfg.Level = "debug"
		}
		log, err = logger.New(logCfg)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	tokenCmd.Flags().Int64Var(&tokenUserID, "user-id", 0, "m_appuser id the token is issued for")
	tokenCmd.Flags().StringVar(&tokenUsername, "username", "", "username embedded in the token")
	_ = tokenCmd.MarkFlagRequired("user-id")

	rootCmd.AddCommand(serveCmd, migrateCmd, tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
