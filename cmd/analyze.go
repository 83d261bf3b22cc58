// Package cmd provides CLI commands for the rockgyo tool.
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rashtad-web/rockgyo-kakao-analyze/config"
	"github.com/rashtad-web/rockgyo-kakao-analyze/pkg/ingest"
	"github.com/rashtad-web/rockgyo-kakao-analyze/pkg/logging"
	"github.com/rashtad-web/rockgyo-kakao-analyze/services/analyzer"
)

// Analyze command flags.
var (
	analyzeStart    string
	analyzeEnd      string
	analyzeKeywords string
	analyzeCharset  string
	analyzeOutput   string
)

// timeLayouts are the accepted layouts for --start and --end.
var timeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// AnalyzeCommandDeps holds the dependencies for the analyze command.
type AnalyzeCommandDeps struct {
	Config     *config.Config
	LoadConfig func() (*config.Config, error)
	Logger     logging.Logger
}

// DefaultAnalyzeDeps returns the default dependencies for production use.
func DefaultAnalyzeDeps() *AnalyzeCommandDeps {
	return &AnalyzeCommandDeps{
		LoadConfig: config.LoadConfig,
	}
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(deps *AnalyzeCommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultAnalyzeDeps()
	}

	cmd := &cobra.Command{
		Use:   "analyze <transcript-file>",
		Short: "Analyze a KakaoTalk chat export",
		Long: `Analyze a KakaoTalk plain-text chat export and print a statistical report.

The report covers per-participant activity, content types, emotional and
keyword signals, conversational rhythm (streaks, starters/enders, density,
gaps), and ranked leaderboards for each metric.

Examples:
  # Full report as text
  rockgyo analyze chat.txt

  # Restrict to a date range (start inclusive, end exclusive)
  rockgyo analyze chat.txt --start 2024-01-01 --end 2024-07-01

  # Custom topic keywords (multi-word keywords keep their spaces)
  rockgyo analyze chat.txt --keywords "정모, 맛집, 보드 게임"

  # Machine-readable output
  rockgyo analyze chat.txt -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(deps.Config, deps.LoadConfig)
			if err != nil {
				return err
			}

			opts := analyzer.Options{
				TopParticipants: cfg.TopParticipants,
				TopRankings:     cfg.TopRankings,
				Keywords:        cfg.Keywords,
			}

			if analyzeStart != "" {
				t, err := parseTimeFlag(analyzeStart)
				if err != nil {
					return fmt.Errorf("invalid --start: %w", err)
				}
				opts.Start = &t
			}
			if analyzeEnd != "" {
				t, err := parseTimeFlag(analyzeEnd)
				if err != nil {
					return fmt.Errorf("invalid --end: %w", err)
				}
				opts.End = &t
			}
			if analyzeKeywords != "" {
				opts.Keywords = config.ParseKeywordList(analyzeKeywords)
			}

			charset := cfg.Charset
			if analyzeCharset != "" {
				charset = analyzeCharset
			}

			t, err := ingest.LoadFile(args[0], ingest.LoadOptions{Charset: charset})
			if err != nil {
				return err
			}
			opts.ContentHash = t.ContentHash

			result, err := analyzer.New(deps.Logger).Analyze(t.Text, opts)
			if err != nil {
				return fmt.Errorf("analyzing transcript: %w", err)
			}

			format := cfg.OutputFormat
			if analyzeOutput != "" {
				format = config.OutputFormat(analyzeOutput)
			}
			return renderResult(cmd.OutOrStdout(), result, format)
		},
	}

	cmd.Flags().StringVar(&analyzeStart, "start", "", "Start of the date range (2006-01-02 or 2006-01-02T15:04:05), inclusive")
	cmd.Flags().StringVar(&analyzeEnd, "end", "", "End of the date range, exclusive")
	cmd.Flags().StringVar(&analyzeKeywords, "keywords", "", "Comma-separated topic keywords (default: built-in vocabulary)")
	cmd.Flags().StringVar(&analyzeCharset, "charset", "", "Source encoding: auto, utf-8, or cp949")
	cmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Output format: text, json, or yaml")

	return cmd
}

// resolveConfig returns the injected config or loads it.
func resolveConfig(cfg *config.Config, load func() (*config.Config, error)) (*config.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	if load == nil {
		return config.DefaultConfig(), nil
	}
	loaded, err := load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return loaded, nil
}

// parseTimeFlag parses a --start/--end value against the accepted layouts.
func parseTimeFlag(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (want 2006-01-02 or 2006-01-02T15:04:05)", s)
}
