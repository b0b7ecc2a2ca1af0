package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tickersentiment/internal/cache"
	"tickersentiment/internal/config"
)

const sessionHelp = `Enter a ticker to analyze it. Other commands:
  count N   analyze N articles per ticker (1-10)
  clear     forget the saved results
  quit      leave the session`

func newSessionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Interactive session that reuses results for repeated tickers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			s := &session{
				cache: cache.New(newCoordinator(a.cfg), nil),
				count: a.cfg.ArticleCount,
				out:   cmd.OutOrStdout(),
				errw:  cmd.ErrOrStderr(),
				quiet: quiet,
			}
			return s.run(cmd, cmd.InOrStdin())
		},
	}

	cmd.Flags().BoolP("quiet", "q", false, "suppress progress output")

	return cmd
}

// session drives a ResultCache from line-oriented input
type session struct {
	cache *cache.ResultCache
	count int
	out   io.Writer
	errw  io.Writer
	quiet bool
}

func (s *session) run(cmd *cobra.Command, in io.Reader) error {
	ctx := cmd.Context()

	fmt.Fprintln(s.out, sessionHelp)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(s.out, sessionHelp)
		case "clear":
			s.cache.Clear()
			fmt.Fprintln(s.out, "Saved results cleared.")
		case "count":
			s.setCount(fields[1:])
		default:
			if len(fields) > 1 {
				fmt.Fprintln(s.out, "Please enter a single ticker.")
				continue
			}
			s.analyze(cmd, fields[0])
		}
	}

	fmt.Fprintln(s.out)
	return scanner.Err()
}

func (s *session) setCount(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(s.out, "Article count is %d.\n", s.count)
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < config.MinArticleCount || n > config.MaxArticleCount {
		fmt.Fprintf(s.out, "Article count must be a number between %d and %d.\n", config.MinArticleCount, config.MaxArticleCount)
		return
	}
	s.count = n
	fmt.Fprintf(s.out, "Article count set to %d.\n", n)
}

func (s *session) analyze(cmd *cobra.Command, ticker string) {
	sink := newProgressSink(s.errw, s.quiet)
	res, err := s.cache.GetOrCompute(cmd.Context(), ticker, s.count, sink)
	sink.Done()

	switch {
	case errors.Is(err, cache.ErrEmptyTicker), errors.Is(err, cache.ErrInvalidCount):
		fmt.Fprintf(s.out, "%v\n", err)
		return
	case err != nil && res == nil:
		fmt.Fprintf(s.out, "Analysis failed: %v\n", err)
		return
	}

	writeReport(s.out, res)
	if err != nil {
		fmt.Fprintf(s.out, "Analysis interrupted: %v\n", err)
	}
}
