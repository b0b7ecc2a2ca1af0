package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tickersentiment/internal/config"
)

func main() {
	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app carries state shared by all subcommands
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tickersentiment",
		Short: "Sentiment analysis of recent news for a stock ticker",
		Long: `tickersentiment fetches recent news headlines for a ticker, extracts the
full text of each linked article, and scores sentiment per article and over
the combined text of all articles.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg *config.Config
				err error
			)
			configFile, _ := cmd.Flags().GetString("config")
			if configFile != "" {
				cfg, err = config.LoadFromFile(configFile)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if level, _ := cmd.Flags().GetString("log-level"); level != "" {
				cfg.LogLevel = level
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: cfg.SlogLevel(),
			})))

			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(newAnalyzeCmd(a))
	root.AddCommand(newSessionCmd(a))
	root.AddCommand(newScoreCmd(a))

	return root
}
