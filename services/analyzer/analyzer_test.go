package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAnalyze(t *testing.T, text string, opts Options) *Result {
	t.Helper()
	res, err := New(nil).Analyze(text, opts)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func TestAnalyzeBasicCounts(t *testing.T) {
	text := "2024년 1월 1일 오전 9:00, Alice : hello\n" +
		"2024년 1월 1일 오전 9:02, Alice : world"

	res := mustAnalyze(t, text, Options{})
	stats := res.Stats

	assert.Equal(t, 2, stats.TotalMessages)
	assert.Equal(t, 1, stats.TotalParticipants)
	assert.Equal(t, map[string]int{"Alice": 2}, stats.MessagesByParticipant)
	assert.Equal(t, map[int]int{9: 2}, stats.MessagesByHour)
	assert.Equal(t, map[string]int{"2024년 1월 1일": 2}, stats.MessagesByDate)
	assert.Equal(t, map[string]int{"월요일": 2}, stats.MessagesByDayOfWeek)

	// The first message opens the first conversation; two messages two
	// minutes apart form one streak and nothing follows within an hour.
	assert.Equal(t, []NameCount{{Name: "Alice", Count: 1}}, stats.ConversationStarters)
	assert.Equal(t, []NameCount{{Name: "Alice", Count: 1}}, stats.ConversationEnders)
	assert.Equal(t, []StreakEntry{{Name: "Alice", MaxConsecutive: 2}}, stats.Streaks)

	assert.Equal(t, 2, stats.MessageTypes.Text)
	assert.Equal(t, 100.0, stats.TypePercentages.Text)
}

func TestAnalyzeStarterAtExactHourGap(t *testing.T) {
	// A gap of exactly one hour opens a new conversation. The earlier
	// message is still followed within the hour bound, so only the last
	// message ends one.
	text := "2024년 1월 1일 오전 9:00, Alice : hello\n" +
		"2024년 1월 1일 오전 10:00, Bob : hi"

	stats := mustAnalyze(t, text, Options{}).Stats
	assert.Equal(t, []NameCount{
		{Name: "Alice", Count: 1},
		{Name: "Bob", Count: 1},
	}, stats.ConversationStarters)
	assert.Equal(t, []NameCount{{Name: "Bob", Count: 1}}, stats.ConversationEnders)
}

func TestAnalyzeStreakBreaks(t *testing.T) {
	// Three in a row within the threshold, broken by another sender, then
	// a same-sender pair split by a gap over five minutes.
	text := "2024년 1월 1일 오전 9:00, Alice : one\n" +
		"2024년 1월 1일 오전 9:02, Alice : two\n" +
		"2024년 1월 1일 오전 9:04, Alice : three\n" +
		"2024년 1월 1일 오전 9:05, Bob : interject\n" +
		"2024년 1월 1일 오전 9:06, Alice : four\n" +
		"2024년 1월 1일 오전 9:20, Alice : five"

	stats := mustAnalyze(t, text, Options{}).Stats
	assert.Equal(t, []StreakEntry{
		{Name: "Alice", MaxConsecutive: 3},
		{Name: "Bob", MaxConsecutive: 1},
	}, stats.Streaks)
}

func TestAnalyzeLateNightAndSlots(t *testing.T) {
	text := "2024년 1월 1일 오전 3:00, Alice : 잠이 안와\n" +
		"2024년 1월 1일 오후 1:00, Bob : lunch\n" +
		"2024년 1월 1일 오후 11:00, Carol : night"

	stats := mustAnalyze(t, text, Options{}).Stats
	assert.Equal(t, []NameCount{{Name: "Alice", Count: 1}}, stats.LateNight)
	assert.Equal(t, map[int]int{3: 1, 13: 1, 23: 1}, stats.MessagesByHour)

	slots := make(map[string]int)
	for _, s := range stats.ActivityByTimeSlot {
		slots[s.Slot] = s.Count
	}
	assert.Equal(t, map[string]int{
		"새벽 (0-5시)":   1,
		"점심 (12-13시)": 1,
		"밤 (22-23시)":  1,
	}, slots)
}

func TestAnalyzeTypesAndSharers(t *testing.T) {
	text := "2024년 1월 1일 오전 9:00, Alice : 사진\n" +
		"2024년 1월 1일 오전 9:01, Alice : https://example.com\n" +
		"2024년 1월 1일 오전 9:02, Bob : 동영상\n" +
		"2024년 1월 1일 오전 9:03, Bob : just text"

	stats := mustAnalyze(t, text, Options{}).Stats
	assert.Equal(t, TypeCounts{Text: 1, Photo: 1, Video: 1, Link: 1}, stats.MessageTypes)
	assert.Equal(t, []NameCount{{Name: "Alice", Count: 1}}, stats.PhotoSharers)
	assert.Equal(t, []NameCount{{Name: "Bob", Count: 1}}, stats.VideoSharers)
	assert.Equal(t, []NameCount{{Name: "Alice", Count: 1}}, stats.LinkSharers)
	assert.Equal(t, 25.0, stats.TypePercentages.Photo)
}

func TestAnalyzeKeywordGroupsOrderedByTotal(t *testing.T) {
	text := "2024년 1월 1일 오전 10:00, Alice : 오늘 술 한잔?\n" +
		"2024년 1월 1일 오전 10:05, Bob : 공연 보러 가자\n" +
		"2024년 1월 1일 오전 10:10, Alice : 술 좋지"

	stats := mustAnalyze(t, text, Options{}).Stats
	require.Len(t, stats.KeywordMentions, 2)
	assert.Equal(t, "술", stats.KeywordMentions[0].Keyword)
	assert.Equal(t, 2, stats.KeywordMentions[0].Total)
	assert.Equal(t, []NameCount{{Name: "Alice", Count: 2}}, stats.KeywordMentions[0].Mentions)
	assert.Equal(t, "공연", stats.KeywordMentions[1].Keyword)
	assert.Equal(t, 1, stats.KeywordMentions[1].Total)
}

func TestAnalyzeCustomKeywords(t *testing.T) {
	text := "2024년 1월 1일 오전 10:00, Alice : 합주 일정 잡자\n" +
		"2024년 1월 1일 오전 10:05, Bob : 술 한잔 어때"

	stats := mustAnalyze(t, text, Options{Keywords: []string{"합주"}}).Stats
	require.Len(t, stats.KeywordMentions, 1)
	assert.Equal(t, "합주", stats.KeywordMentions[0].Keyword)
}

func TestAnalyzeAvgLengthRounding(t *testing.T) {
	// 3 and 4 characters average to 3.5, which rounds up to 4.
	text := "2024년 1월 1일 오전 9:00, Alice : abc\n" +
		"2024년 1월 1일 오전 9:01, Alice : abcd"

	stats := mustAnalyze(t, text, Options{}).Stats
	assert.Equal(t, []AvgLength{{Name: "Alice", AvgLength: 4}}, stats.AvgMessageLength)
}

func TestAnalyzeLengthBuckets(t *testing.T) {
	short := "abc"
	medium := "일이삼사오육칠팔구십"
	text := "2024년 1월 1일 오전 9:00, Alice : " + short + "\n" +
		"2024년 1월 1일 오전 9:01, Alice : " + medium

	stats := mustAnalyze(t, text, Options{}).Stats
	assert.Equal(t, 1, stats.LengthPattern.Short)
	assert.Equal(t, 1, stats.LengthPattern.Medium)
	assert.Equal(t, 2, stats.LengthPattern.OneLine)
	require.Len(t, stats.LengthPattern.ByParticipant, 1)
	assert.Equal(t, "Alice", stats.LengthPattern.ByParticipant[0].Name)
}

func TestAnalyzeDateFilterHalfOpen(t *testing.T) {
	text := "2024년 1월 1일 오전 9:00, Alice : one\n" +
		"2024년 1월 2일 오전 9:00, Bob : two\n" +
		"2024년 1월 3일 오전 9:00, Carol : three"

	start := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, time.January, 3, 9, 0, 0, 0, time.Local)
	res := mustAnalyze(t, text, Options{Start: &start, End: &end})

	// Only Bob's message is in [start, end): Carol's falls exactly on the
	// exclusive end bound.
	assert.Equal(t, 1, res.Stats.TotalMessages)
	assert.Equal(t, []NameCount{{Name: "Bob", Count: 1}}, res.Stats.TopParticipants)

	// The retained message list and the date range ignore the filter.
	assert.Len(t, res.AllMessages, 3)
	assert.Equal(t, time.Date(2024, time.January, 1, 9, 0, 0, 0, time.Local), res.DateRange.Min)
	assert.Equal(t, time.Date(2024, time.January, 3, 9, 0, 0, 0, time.Local), res.DateRange.Max)
}

func TestAnalyzeFilterIncludesExactStart(t *testing.T) {
	text := "2024년 1월 1일 오전 9:00, Alice : hello"
	start := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.Local)
	res := mustAnalyze(t, text, Options{Start: &start})
	assert.Equal(t, 1, res.Stats.TotalMessages)
}

func TestAnalyzeStartAfterEnd(t *testing.T) {
	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	_, err := New(nil).Analyze("", Options{Start: &start, End: &end})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date range")
}

func TestAnalyzeEmptyTranscript(t *testing.T) {
	res := mustAnalyze(t, "", Options{})
	assert.Equal(t, 0, res.Stats.TotalMessages)
	assert.Equal(t, 0, res.Stats.TotalParticipants)
	assert.Empty(t, res.AllMessages)
	assert.True(t, res.DateRange.Min.IsZero())
	assert.True(t, res.DateRange.Max.IsZero())
	assert.NotEmpty(t, res.AnalysisID)
}

func TestAnalyzeDeterministic(t *testing.T) {
	text := "2024년 1월 1일 오전 9:00, Alice : 오늘 공연 최고 ㅋㅋ\n" +
		"2024년 1월 1일 오전 9:02, Bob : @Alice 어디야?\n" +
		"2024년 1월 1일 오후 11:30, Carol : 사진\n" +
		"2024년 1월 5일 오전 3:00, Alice : 잠이 안와 ㅠㅠ\n" +
		"2024년 1월 5일 오전 3:01, Alice : 술 한잔 하고 싶다"

	opts := Options{ContentHash: "deadbeef"}
	first := mustAnalyze(t, text, opts)
	second := mustAnalyze(t, text, opts)

	assert.Equal(t, first.Stats, second.Stats)
	assert.Equal(t, first.AllMessages, second.AllMessages)
	assert.Equal(t, first.DateRange, second.DateRange)
	assert.Equal(t, "deadbeef", first.ContentHash)
	assert.NotEqual(t, first.AnalysisID, second.AnalysisID)
}

func TestAnalyzeDensity(t *testing.T) {
	text := "2024년 1월 1일 오전 9:00, Alice : one\n" +
		"2024년 1월 1일 오전 9:01, Alice : two\n" +
		"2024년 1월 5일 오전 9:00, Bob : three"

	d := mustAnalyze(t, text, Options{}).Stats.Density
	assert.Equal(t, 2, d.ActiveDays)
	assert.Equal(t, 1.5, d.AvgMessagesPerDay)
	assert.Equal(t, DayActivity{Date: "2024년 1월 1일", Count: 2}, d.MostActiveDay)
	assert.Equal(t, DayActivity{Date: "2024년 1월 5일", Count: 1}, d.QuietestDay)
	assert.Equal(t, ActivityGap{
		Days:      4,
		StartDate: "2024년 1월 1일",
		EndDate:   "2024년 1월 5일",
	}, d.LongestGap)
}

func TestAnalyzeEmotionAndExpressions(t *testing.T) {
	text := "2024년 1월 1일 오전 9:00, Alice : 진짜 최고다 ㅋㅋㅋ\n" +
		"2024년 1월 1일 오전 9:01, Bob : 아 짜증나 ㅠㅠ\n" +
		"2024년 1월 1일 오전 9:02, Carol : 언제 모여?"

	stats := mustAnalyze(t, text, Options{}).Stats
	assert.Equal(t, []NameCount{{Name: "Alice", Count: 1}}, stats.Emotion.Positive)
	assert.Equal(t, []NameCount{{Name: "Bob", Count: 1}}, stats.Emotion.Negative)
	assert.Equal(t, []NameCount{{Name: "Carol", Count: 1}}, stats.Emotion.Questions)
	assert.Equal(t, []NameCount{{Name: "Alice", Count: 1}}, stats.TopLaughing)
	assert.Equal(t, []NameCount{{Name: "Bob", Count: 1}}, stats.TopCrying)
}

func TestAnalyzeMentions(t *testing.T) {
	text := "2024년 1월 1일 오전 9:00, Alice : @Bob 연습 가자\n" +
		"2024년 1월 1일 오전 9:01, Carol : @Bob @Alice 모여"

	stats := mustAnalyze(t, text, Options{}).Stats
	assert.Equal(t, []NameCount{
		{Name: "Bob", Count: 2},
		{Name: "Alice", Count: 1},
	}, stats.TopMentioned)
}

func TestAnalyzeTopWordsFiltered(t *testing.T) {
	text := "2024년 1월 1일 오전 9:00, Alice : 그리고 연습 가자\n" +
		"2024년 1월 1일 오전 9:01, Bob : 연습 끝나고 the pub"

	stats := mustAnalyze(t, text, Options{}).Stats
	words := make(map[string]int)
	for _, w := range stats.TopWords {
		words[w.Word] = w.Count
	}
	assert.Equal(t, 2, words["연습"])
	assert.NotContains(t, words, "그리고")
	assert.NotContains(t, words, "the")
	assert.Contains(t, words, "pub")
}

func TestAnalyzeRankingCapsAndTieBreak(t *testing.T) {
	text := "2024년 1월 1일 오전 9:00, Carol : a\n" +
		"2024년 1월 1일 오전 9:01, Alice : b\n" +
		"2024년 1월 1일 오전 9:02, Bob : c"

	stats := mustAnalyze(t, text, Options{TopParticipants: 2}).Stats
	// All three tie at one message; first-seen order decides, and the cap
	// truncates the third.
	assert.Equal(t, []NameCount{
		{Name: "Carol", Count: 1},
		{Name: "Alice", Count: 1},
	}, stats.TopParticipants)
	assert.Equal(t, 3, stats.TotalParticipants)
}

func TestAnalyzeSenderNameSplit(t *testing.T) {
	text := "2024년 1월 1일 오전 9:00, Bob / 드럼 : hello"
	res := mustAnalyze(t, text, Options{})
	assert.Equal(t, map[string]int{"Bob": 1}, res.Stats.MessagesByParticipant)
	require.Len(t, res.AllMessages, 1)
	assert.Equal(t, "Bob / 드럼", res.AllMessages[0].FullName)
}
