package classify

import "strings"

// Sentiment keyword lists. Order matters only in that detection stops at
// the first hit; a message increments a category at most once no matter
// how many of its keywords appear.
var (
	PositiveKeywords = []string{
		"좋아", "최고", "고마워", "사랑", "행복", "즐거", "멋있", "예쁘", "귀여",
		"대박", "완벽", "훌륭", "좋다", "좋은", "좋게",
	}
	NegativeKeywords = []string{
		"싫어", "안돼", "아니", "화나", "슬프", "힘들", "짜증", "불편", "나쁘",
		"안좋", "미워", "싫다", "싫은",
	}
	QuestionKeywords = []string{
		"?", "뭐", "어디", "언제", "누구", "왜", "어떻게", "무엇", "어떤", "몇",
	}
	ExclamationKeywords = []string{"와", "헐", "대박", "와우", "오", "와!", "헐!", "!"}
)

// ContainsAny reports whether the lowercased body contains any keyword
// from the list.
func ContainsAny(lowerBody string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowerBody, kw) {
			return true
		}
	}
	return false
}
