package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rashtad-web/rockgyo-kakao-analyze/config"
	"github.com/rashtad-web/rockgyo-kakao-analyze/pkg/classify"
)

// KeywordsCommandDeps holds the dependencies for the keywords command.
type KeywordsCommandDeps struct {
	Config     *config.Config
	LoadConfig func() (*config.Config, error)
}

// DefaultKeywordsDeps returns the default dependencies for production use.
func DefaultKeywordsDeps() *KeywordsCommandDeps {
	return &KeywordsCommandDeps{
		LoadConfig: config.LoadConfig,
	}
}

// NewKeywordsCommand creates the keywords command, which prints the
// effective topic vocabulary: configured keywords when present, otherwise
// the built-in default list.
func NewKeywordsCommand(deps *KeywordsCommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultKeywordsDeps()
	}

	var output string

	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Show the effective topic keyword vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(deps.Config, deps.LoadConfig)
			if err != nil {
				return err
			}

			keywords := cfg.Keywords
			source := "config"
			if len(keywords) == 0 {
				keywords = classify.DefaultKeywords
				source = "default"
			}

			format := cfg.OutputFormat
			if output != "" {
				format = config.OutputFormat(output)
			}

			w := cmd.OutOrStdout()
			switch format {
			case config.OutputFormatJSON:
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{"source": source, "keywords": keywords})
			case config.OutputFormatYAML:
				return yaml.NewEncoder(w).Encode(map[string]any{"source": source, "keywords": keywords})
			default:
				fmt.Fprintf(w, "Topic keywords (%s):\n", source)
				for i, kw := range keywords {
					fmt.Fprintf(w, "  %2d. %s\n", i+1, kw)
				}
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: text, json, or yaml")

	return cmd
}
