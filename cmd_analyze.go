package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tickersentiment/internal/config"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [ticker]",
		Short: "Analyze news sentiment for a ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			if count == 0 {
				count = a.cfg.ArticleCount
			}
			if count < config.MinArticleCount || count > config.MaxArticleCount {
				return fmt.Errorf("--count must be between %d and %d", config.MinArticleCount, config.MaxArticleCount)
			}

			quiet, _ := cmd.Flags().GetBool("quiet")
			sink := newProgressSink(cmd.ErrOrStderr(), quiet)

			res, err := newCoordinator(a.cfg).Analyze(cmd.Context(), args[0], count, sink)
			sink.Done()

			if res != nil {
				writeReport(cmd.OutOrStdout(), res)
			}
			if err != nil {
				return fmt.Errorf("analysis interrupted: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntP("count", "n", 0, "number of articles to analyze (default from ARTICLE_COUNT)")
	cmd.Flags().BoolP("quiet", "q", false, "suppress progress output")

	return cmd
}
