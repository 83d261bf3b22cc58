// Package transcript locates and parses KakaoTalk message headers.
//
// A header line has the form
//
//	2024년 1월 3일 오후 9:15, 김철수 / 기타: 본문...
//
// where the clock is 12-hour with an 오전 (before noon) or 오후 (from noon)
// period marker. The package converts these localized expressions into
// absolute instants and slices the text between headers into message bodies.
package transcript

import (
	"regexp"
	"strconv"
	"time"
)

// Period markers used by the KakaoTalk export format.
const (
	PeriodAM = "오전"
	PeriodPM = "오후"
)

var (
	datePattern  = regexp.MustCompile(`(\d+)년\s*(\d+)월\s*(\d+)일`)
	clockPattern = regexp.MustCompile(`(오전|오후)\s*(\d+):(\d+)`)
)

// dayLabels maps time.Weekday ordinals (Sunday == 0) to Korean labels.
var dayLabels = [7]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}

// DayUnknown is returned by DayOfWeek for unparsable date expressions.
const DayUnknown = "알 수 없음"

// To24Hour converts a 12-hour clock value with its period marker to a
// 24-hour value. 오후 adds 12 except for 12 itself; 오전 maps 12 to 0.
func To24Hour(period string, hour int) int {
	if period == PeriodPM && hour != 12 {
		return hour + 12
	}
	if period == PeriodAM && hour == 12 {
		return 0
	}
	return hour
}

// ParseDate extracts year, month, and day from an expression like
// "2024년 1월 3일". The match may occur anywhere in the string.
func ParseDate(dateStr string) (year, month, day int, ok bool) {
	m := datePattern.FindStringSubmatch(dateStr)
	if m == nil {
		return 0, 0, 0, false
	}
	year, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	day, _ = strconv.Atoi(m[3])
	return year, month, day, true
}

// ParseClock extracts the 24-hour hour and minute from an expression like
// "오후 9:15".
func ParseClock(timeStr string) (hour, minute int, ok bool) {
	m := clockPattern.FindStringSubmatch(timeStr)
	if m == nil {
		return 0, 0, false
	}
	h, _ := strconv.Atoi(m[2])
	minute, _ = strconv.Atoi(m[3])
	return To24Hour(m[1], h), minute, true
}

// Normalize combines a date expression and a period-qualified clock
// expression into an absolute instant in the local timezone. ok is false
// when either expression fails to match.
func Normalize(dateStr, timeStr string) (time.Time, bool) {
	year, month, day, ok := ParseDate(dateStr)
	if !ok {
		return time.Time{}, false
	}
	hour, minute, ok := ParseClock(timeStr)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local), true
}

// NormalizeDateOnly converts a bare date expression to midnight of that day.
func NormalizeDateOnly(dateStr string) (time.Time, bool) {
	year, month, day, ok := ParseDate(dateStr)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}

// HourOf returns the 24-hour hour of a clock expression, or -1 when the
// expression does not match.
func HourOf(timeStr string) int {
	hour, _, ok := ParseClock(timeStr)
	if !ok {
		return -1
	}
	return hour
}

// DayOfWeek derives the Korean weekday label for a date expression.
func DayOfWeek(dateStr string) string {
	t, ok := NormalizeDateOnly(dateStr)
	if !ok {
		return DayUnknown
	}
	return dayLabels[int(t.Weekday())]
}
