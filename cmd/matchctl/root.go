package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/donor-matching-service/internal/config"
	"github.com/donor-matching-service/internal/pkg/logger"
)

var (
	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "matchctl",
	Short: "Operator tool for the donor matching service",
	Long:  "Runs proximity searches against the configured candidate store and publishes test blood requests to the matching worker.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")

		c, err := config.LoadFile(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if driver, _ := cmd.Flags().GetString("store"); driver != "" {
			cfg.Store.Driver = driver
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		l, err := logger.New(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		log = l.With(zap.String("command", cmd.Name()))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", ".env", "dotenv config file")
	rootCmd.PersistentFlags().String("store", "", "override STORE_DRIVER (postgres or memory)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
