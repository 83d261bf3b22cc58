package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rashtad-web/rockgyo-kakao-analyze/config"
	"github.com/rashtad-web/rockgyo-kakao-analyze/pkg/classify"
)

func TestKeywordsCommandDefaultVocabulary(t *testing.T) {
	cmd := NewKeywordsCommand(&KeywordsCommandDeps{Config: config.DefaultConfig()})

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Topic keywords (default)")
	for _, kw := range classify.DefaultKeywords {
		assert.Contains(t, out, kw)
	}
}

func TestKeywordsCommandConfiguredJSON(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keywords = []string{"합주", "공연 일정"}
	cmd := NewKeywordsCommand(&KeywordsCommandDeps{Config: cfg})

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"-o", "json"})
	require.NoError(t, cmd.Execute())

	var out struct {
		Source   string   `json:"source"`
		Keywords []string `json:"keywords"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "config", out.Source)
	assert.Equal(t, []string{"합주", "공연 일정"}, out.Keywords)
}
