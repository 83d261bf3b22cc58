package classify

import (
	"regexp"
	"strings"
)

// DefaultKeywords is the fixed ten-term topic vocabulary used when the
// caller supplies none. Order is significant for default ranking.
var DefaultKeywords = []string{
	"벙", "정모", "술", "맛집", "공연", "연습", "밴드", "음악", "노래", "라이브",
}

// KeywordMatcher tests case-insensitive substring containment of one topic
// keyword. Regex-special characters in the keyword are escaped; internal
// whitespace in multi-word keywords is preserved verbatim.
type KeywordMatcher struct {
	// Keyword is the original caller-supplied term.
	Keyword string

	pattern *regexp.Regexp
}

// NewKeywordMatcher compiles a matcher for one keyword.
func NewKeywordMatcher(keyword string) KeywordMatcher {
	escaped := regexp.QuoteMeta(strings.ToLower(strings.TrimSpace(keyword)))
	return KeywordMatcher{
		Keyword: keyword,
		pattern: regexp.MustCompile(escaped),
	}
}

// Matches tests the matcher against an already-lowercased body.
func (m KeywordMatcher) Matches(lowerBody string) bool {
	return m.pattern.MatchString(lowerBody)
}

// NewKeywordMatchers compiles matchers for a keyword list, falling back to
// DefaultKeywords when the list is empty.
func NewKeywordMatchers(keywords []string) []KeywordMatcher {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	matchers := make([]KeywordMatcher, 0, len(keywords))
	for _, kw := range keywords {
		matchers = append(matchers, NewKeywordMatcher(kw))
	}
	return matchers
}
