// Package main provides the rockgyo CLI entry point.
// rockgyo analyzes KakaoTalk group-chat exports into statistical reports.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rashtad-web/rockgyo-kakao-analyze/cmd"
	"github.com/rashtad-web/rockgyo-kakao-analyze/config"
	"github.com/rashtad-web/rockgyo-kakao-analyze/pkg/buildinfo"
	"github.com/rashtad-web/rockgyo-kakao-analyze/pkg/logging"
)

// Global flags and state.
var (
	cfgFile      string
	outputFormat string
	logLevel     string
	debug        bool

	// cfg holds the loaded configuration.
	cfg *config.Config

	// log is the shared logger, built after configuration loads.
	log logging.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rockgyo",
	Short: "KakaoTalk chat statistics analyzer",
	Long: `rockgyo analyzes KakaoTalk plain-text chat exports.

It reconstructs messages from the export's header lines, then computes
per-participant activity, content-type breakdowns, emotional and keyword
signals, conversational rhythm (streaks, starters/enders, density, gaps),
and ranked leaderboards for each metric.

COMMON WORKFLOWS:
  Analyze an export:     rockgyo analyze chat.txt
  Date-range filter:     rockgyo analyze chat.txt --start 2024-01-01 --end 2024-07-01
  Custom topics:         rockgyo analyze chat.txt --keywords "정모, 맛집"
  Machine output:        rockgyo analyze chat.txt -o json
  Show vocabulary:       rockgyo keywords`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		// Skip initialization for commands that don't need it.
		if c.Name() == "version" || c.Name() == "help" || c.Name() == "completion" {
			return nil
		}

		var err error
		if cfgFile != "" {
			cfg, err = config.LoadConfigFrom(cfgFile)
		} else {
			cfg, err = config.LoadConfig()
		}
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		// Override with command-line flags.
		if outputFormat != "" {
			cfg.OutputFormat = config.OutputFormat(outputFormat)
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if debug {
			cfg.LogLevel = "debug"
		}

		log = logging.NewLogger(&logging.Config{
			Level:     logging.Level(cfg.LogLevel),
			Component: "rockgyo",
			// Console output for humans, JSON when piped.
			JSONFormat: !term.IsTerminal(int(os.Stderr.Fd())),
			Output:     os.Stderr,
		})

		return nil
	},
}

// versionCmd prints build information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(c *cobra.Command, args []string) {
		fmt.Fprintln(c.OutOrStdout(), "rockgyo", buildinfo.String())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.rockgyo/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: text, json, or yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cmd.NewAnalyzeCommand(&cmd.AnalyzeCommandDeps{
		LoadConfig: activeConfig,
		Logger:     activeLogger(),
	}))
	rootCmd.AddCommand(cmd.NewKeywordsCommand(&cmd.KeywordsCommandDeps{
		LoadConfig: activeConfig,
	}))
}

// activeConfig hands the configuration loaded in PersistentPreRunE to
// subcommands, falling back to a fresh load for direct invocation.
func activeConfig() (*config.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	return config.LoadConfig()
}

// activeLogger returns a logger that defers to the one built during
// initialization.
func activeLogger() logging.Logger {
	return deferredLogger{}
}

// deferredLogger resolves the shared logger at call time, after
// PersistentPreRunE has built it.
type deferredLogger struct{}

func resolve() logging.Logger {
	if log != nil {
		return log
	}
	return logging.Nop()
}

func (deferredLogger) Debug(msg string, fields ...logging.Field) { resolve().Debug(msg, fields...) }
func (deferredLogger) Info(msg string, fields ...logging.Field)  { resolve().Info(msg, fields...) }
func (deferredLogger) Warn(msg string, fields ...logging.Field)  { resolve().Warn(msg, fields...) }
func (deferredLogger) Error(msg string, fields ...logging.Field) { resolve().Error(msg, fields...) }
func (deferredLogger) With(fields ...logging.Field) logging.Logger {
	return resolve().With(fields...)
}
func (deferredLogger) Zerolog() zerolog.Logger { return resolve().Zerolog() }

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
