package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordMatcher(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		body    string
		want    bool
	}{
		{"korean substring", "벙", "내일 벙 나갈 사람?", true},
		{"no match", "정모", "그냥 잡담", false},
		{"case insensitive", "Band", "우리 band 연습하자", true},
		{"regex metacharacters escaped", "a.b", "literal a.b here", true},
		{"dot does not wildcard", "a.b", "axb should not match", false},
		{"multi-word keyword", "홍대 공연", "다음주 홍대 공연 보러 가자", true},
		{"surrounding whitespace trimmed", "  술  ", "술 한잔 어때", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewKeywordMatcher(tt.keyword)
			assert.Equal(t, tt.keyword, m.Keyword)
			assert.Equal(t, tt.want, m.Matches(strings.ToLower(tt.body)))
		})
	}
}

func TestNewKeywordMatchers(t *testing.T) {
	custom := NewKeywordMatchers([]string{"공연", "합주"})
	require.Len(t, custom, 2)
	assert.Equal(t, "공연", custom[0].Keyword)

	fallback := NewKeywordMatchers(nil)
	require.Len(t, fallback, len(DefaultKeywords))
	for i, m := range fallback {
		assert.Equal(t, DefaultKeywords[i], m.Keyword)
	}
}
