package analyzer

import (
	"time"

	"github.com/rashtad-web/rockgyo-kakao-analyze/pkg/transcript"
)

// NameCount is one ranked participant entry.
type NameCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// DateCount is one ranked calendar-date entry.
type DateCount struct {
	Date  string `json:"date" yaml:"date"`
	Count int    `json:"count" yaml:"count"`
}

// HourCount is one ranked hour-of-day entry.
type HourCount struct {
	Hour  int `json:"hour" yaml:"hour"`
	Count int `json:"count" yaml:"count"`
}

// WordCount is one ranked word-frequency entry.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// AvgLength is one ranked average-message-length entry, in characters.
type AvgLength struct {
	Name      string `json:"name" yaml:"name"`
	AvgLength int    `json:"avg_length" yaml:"avg_length"`
}

// StreakEntry is a participant's longest consecutive-message streak.
type StreakEntry struct {
	Name           string `json:"name" yaml:"name"`
	MaxConsecutive int    `json:"max_consecutive" yaml:"max_consecutive"`
}

// KeywordMentions groups per-sender mention counts for one topic keyword.
type KeywordMentions struct {
	Keyword  string      `json:"keyword" yaml:"keyword"`
	Total    int         `json:"total" yaml:"total"`
	Mentions []NameCount `json:"mentions" yaml:"mentions"`
}

// EmotionAnalysis holds the ranked sentiment/expression leaderboards.
type EmotionAnalysis struct {
	Positive     []NameCount `json:"positive" yaml:"positive"`
	Negative     []NameCount `json:"negative" yaml:"negative"`
	Questions    []NameCount `json:"questions" yaml:"questions"`
	Exclamations []NameCount `json:"exclamations" yaml:"exclamations"`
}

// TimeSlotActivity is one six-way time-slot bucket with its share of all
// bucketed messages.
type TimeSlotActivity struct {
	Slot       string  `json:"slot" yaml:"slot"`
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// ParticipantLengths is one participant's message-length bucket counts.
type ParticipantLengths struct {
	Name     string `json:"name" yaml:"name"`
	OneLine  int    `json:"one_line" yaml:"one_line"`
	Short    int    `json:"short" yaml:"short"`
	Medium   int    `json:"medium" yaml:"medium"`
	Long     int    `json:"long" yaml:"long"`
	VeryLong int    `json:"very_long" yaml:"very_long"`
}

// LengthPattern holds global and per-participant length bucketing.
type LengthPattern struct {
	OneLine       int                  `json:"one_line" yaml:"one_line"`
	Short         int                  `json:"short" yaml:"short"`
	Medium        int                  `json:"medium" yaml:"medium"`
	Long          int                  `json:"long" yaml:"long"`
	VeryLong      int                  `json:"very_long" yaml:"very_long"`
	ByParticipant []ParticipantLengths `json:"by_participant" yaml:"by_participant"`
}

// DayActivity is a calendar day with its message count.
type DayActivity struct {
	Date  string `json:"date" yaml:"date"`
	Count int    `json:"count" yaml:"count"`
}

// ActivityGap is the longest silence between two consecutive active dates.
type ActivityGap struct {
	Days      int    `json:"days" yaml:"days"`
	StartDate string `json:"start_date" yaml:"start_date"`
	EndDate   string `json:"end_date" yaml:"end_date"`
}

// ConversationDensity holds the derived conversation-rhythm metrics.
type ConversationDensity struct {
	AvgMessagesPerDay float64     `json:"avg_messages_per_day" yaml:"avg_messages_per_day"`
	MostActiveDay     DayActivity `json:"most_active_day" yaml:"most_active_day"`
	QuietestDay       DayActivity `json:"quietest_day" yaml:"quietest_day"`
	LongestGap        ActivityGap `json:"longest_gap" yaml:"longest_gap"`
	ActiveDays        int         `json:"active_days" yaml:"active_days"`
	TotalDays         int         `json:"total_days" yaml:"total_days"`
}

// TypeCounts is the exclusive content-type breakdown.
type TypeCounts struct {
	Text  int `json:"text" yaml:"text"`
	Photo int `json:"photo" yaml:"photo"`
	Video int `json:"video" yaml:"video"`
	Emoji int `json:"emoji" yaml:"emoji"`
	Link  int `json:"link" yaml:"link"`
	Other int `json:"other" yaml:"other"`
}

// TypePercentages is TypeCounts as one-decimal shares of the total.
type TypePercentages struct {
	Text  float64 `json:"text" yaml:"text"`
	Photo float64 `json:"photo" yaml:"photo"`
	Video float64 `json:"video" yaml:"video"`
	Emoji float64 `json:"emoji" yaml:"emoji"`
	Link  float64 `json:"link" yaml:"link"`
	Other float64 `json:"other" yaml:"other"`
}

// DateRange is the unfiltered transcript extent. It is always computed from
// the full transcript, untouched by any caller-supplied filter.
type DateRange struct {
	Min time.Time `json:"min" yaml:"min"`
	Max time.Time `json:"max" yaml:"max"`
}

// Stats is the aggregated statistical report for one analysis invocation.
type Stats struct {
	TotalMessages     int `json:"total_messages" yaml:"total_messages"`
	TotalParticipants int `json:"total_participants" yaml:"total_participants"`

	MessagesByParticipant map[string]int `json:"messages_by_participant" yaml:"messages_by_participant"`
	MessagesByDate        map[string]int `json:"messages_by_date" yaml:"messages_by_date"`
	MessagesByHour        map[int]int    `json:"messages_by_hour" yaml:"messages_by_hour"`
	MessagesByDayOfWeek   map[string]int `json:"messages_by_day_of_week" yaml:"messages_by_day_of_week"`

	MessageTypes    TypeCounts      `json:"message_types" yaml:"message_types"`
	TypePercentages TypePercentages `json:"type_percentages" yaml:"type_percentages"`

	TopParticipants []NameCount `json:"top_participants" yaml:"top_participants"`
	TopDates        []DateCount `json:"top_dates" yaml:"top_dates"`
	TopHours        []HourCount `json:"top_hours" yaml:"top_hours"`
	TopMentioned    []NameCount `json:"top_mentioned" yaml:"top_mentioned"`
	TopCrying       []NameCount `json:"top_crying" yaml:"top_crying"`
	TopLaughing     []NameCount `json:"top_laughing" yaml:"top_laughing"`
	TopWords        []WordCount `json:"top_words" yaml:"top_words"`

	AvgMessageLength []AvgLength   `json:"avg_message_length" yaml:"avg_message_length"`
	LateNight        []NameCount   `json:"late_night" yaml:"late_night"`
	Streaks          []StreakEntry `json:"streaks" yaml:"streaks"`
	PhotoSharers     []NameCount   `json:"photo_sharers" yaml:"photo_sharers"`
	VideoSharers     []NameCount   `json:"video_sharers" yaml:"video_sharers"`
	LinkSharers      []NameCount   `json:"link_sharers" yaml:"link_sharers"`

	KeywordMentions []KeywordMentions `json:"keyword_mentions" yaml:"keyword_mentions"`

	ConversationStarters []NameCount     `json:"conversation_starters" yaml:"conversation_starters"`
	ConversationEnders   []NameCount     `json:"conversation_enders" yaml:"conversation_enders"`
	Emotion              EmotionAnalysis `json:"emotion" yaml:"emotion"`

	ActivityByTimeSlot []TimeSlotActivity  `json:"activity_by_time_slot" yaml:"activity_by_time_slot"`
	LengthPattern      LengthPattern       `json:"length_pattern" yaml:"length_pattern"`
	Density            ConversationDensity `json:"density" yaml:"density"`
}

// Result is the terminal, read-only product of one analysis invocation.
// A filter or keyword change produces an entirely new Result from the
// original transcript text; Results have no relationship to each other.
type Result struct {
	// AnalysisID uniquely identifies this invocation.
	AnalysisID string `json:"analysis_id" yaml:"analysis_id"`

	// ContentHash is the SHA-256 of the source transcript, when known.
	ContentHash string `json:"content_hash,omitempty" yaml:"content_hash,omitempty"`

	Stats Stats `json:"stats" yaml:"stats"`

	// AllMessages is the full unfiltered parsed message list.
	AllMessages []transcript.Record `json:"all_messages" yaml:"all_messages"`

	// DateRange is the unfiltered transcript extent.
	DateRange DateRange `json:"date_range" yaml:"date_range"`
}
