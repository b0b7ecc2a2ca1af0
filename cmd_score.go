package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tickersentiment/internal/sentiment"
)

func newScoreCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "score [text...]",
		Short: "Score the sentiment of free text (reads stdin when no text is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				text = string(b)
			}

			if strings.TrimSpace(text) == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Please enter some text to analyze.")
				return nil
			}

			writeScore(cmd.OutOrStdout(), sentiment.NewScorer(nil).Score(text))
			return nil
		},
	}
}
