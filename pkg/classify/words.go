package classify

import (
	"regexp"
	"strings"
)

var (
	hangulWordPattern = regexp.MustCompile(`[가-힣]{2,}`)
	latinWordPattern  = regexp.MustCompile(`[a-zA-Z]{2,}`)
)

// stopWords are connective and function words excluded from word-frequency
// ranking, in both scripts.
var stopWords = map[string]struct{}{
	"그리고": {}, "그런데": {}, "그래서": {}, "그러나": {}, "하지만": {},
	"그때": {}, "그것": {}, "이것": {}, "저것": {},
	"the": {}, "and": {}, "or": {}, "but": {}, "is": {},
	"are": {}, "was": {}, "were": {}, "this": {}, "that": {},
}

// ExtractWords tokenizes a text-type message body for word-frequency
// analysis: maximal runs of two or more Hangul syllables, then maximal
// runs of two or more Latin letters case-folded to lower case. Both kinds
// feed the same frequency table.
func ExtractWords(body string) []string {
	words := hangulWordPattern.FindAllString(body, -1)
	for _, w := range latinWordPattern.FindAllString(body, -1) {
		words = append(words, strings.ToLower(w))
	}
	return words
}

// IsStopWord reports whether a token is excluded from ranking.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// MinWordLength is the minimum rune length for a ranked word.
const MinWordLength = 2

// RankableWord reports whether a token survives the stop-word and
// minimum-length filters applied before ranking.
func RankableWord(word string) bool {
	if IsStopWord(word) {
		return false
	}
	return len([]rune(word)) >= MinWordLength
}
