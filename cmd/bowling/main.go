package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bowling_backend/internal/app"
	"bowling_backend/internal/config"
	"bowling_backend/internal/config/env"
	"bowling_backend/pkg/bowling"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envFile = ".env"

var (
	logger     *zap.Logger
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "bowling <rolls>",
	Short: "Ten-pin bowling score calculator",
	Long: `Scores a game of ten-pin bowling from a comma separated list of rolls.

Each roll is a pin count from 0 to 10 or X for a strike, e.g.

  bowling "X,7,3,9,0,X,0,8,8,2,0,6,X,X,X,8,1"`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envErr := config.Load(envFile)

		level := zapcore.WarnLevel
		if cmd.Name() == serveCmd.Name() {
			logCfg, err := env.NewLogConfig()
			if err != nil {
				return err
			}
			level = logCfg.Level()
		}
		if verbose {
			level = zapcore.DebugLevel
		}

		zapCfg := zap.NewProductionConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(level)
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}

		if envErr != nil {
			logger.Debug("no .env file loaded", zap.Error(envErr))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: scoreRolls,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scoring HTTP service",
	Args:  cobra.NoArgs,
	RunE:  serve,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	serveCmd.Flags().StringVarP(&configPath, "config", "c", env.ConfigPath(), "Path to the scoring config file")

	rootCmd.AddCommand(serveCmd)
}

// scoreRolls prints the total of a single game. Games that break pin limits
// are scored as given.
func scoreRolls(cmd *cobra.Command, args []string) error {
	res, err := bowling.Score(args[0], false)
	if err != nil {
		logger.Debug("rolls rejected", zap.String("rolls", args[0]), zap.Error(err))
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Total)
	return err
}

func serve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.NewApp(logger, configPath).Run(ctx)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
