package transcript

import (
	"regexp"
	"strings"
	"time"
)

// dateTimeSplit separates the date part from the period-qualified clock
// part of a captured date-time expression.
var (
	dateTimeSplit = regexp.MustCompile(`^(\d+년\s*\d+월\s*\d+일)\s*(오전|오후)\s*(\d+:\d+)`)
	dateOnlySplit = regexp.MustCompile(`^(\d+년\s*\d+월\s*\d+일)`)
)

// Record is one reconstructed message. Records are immutable once parsed.
type Record struct {
	// Date is the localized calendar date expression, e.g. "2024년 1월 3일".
	Date string `json:"date"`

	// Time is the period-qualified clock expression, e.g. "오후 9:15".
	// Empty when the header carried only a date.
	Time string `json:"time"`

	// Name is the sender short name: the sender field up to the first '/'.
	Name string `json:"name"`

	// FullName is the whole sender field, trimmed.
	FullName string `json:"full_name"`

	// Body is the message text between this header and the next.
	Body string `json:"body"`

	// Timestamp is the normalized absolute instant of the header.
	Timestamp time.Time `json:"timestamp"`
}

// ParseRecord reconstructs the message for one boundary. nextStart is the
// start offset of the following boundary, or len(text) for the last one.
// ok is false when the header's date-time expression cannot be normalized;
// such boundaries are dropped rather than retained with zero timestamps.
func ParseRecord(text string, b Boundary, nextStart int) (*Record, bool) {
	end := nextStart
	if end <= 0 || end > len(text) {
		end = len(text)
	}
	body := strings.TrimSpace(text[b.End:end])

	var date, clock string
	if m := dateTimeSplit.FindStringSubmatch(b.DateTime); m != nil {
		date = m[1]
		clock = m[2] + " " + m[3]
	} else if m := dateOnlySplit.FindStringSubmatch(b.DateTime); m != nil {
		date = m[1]
	} else {
		return nil, false
	}

	var ts time.Time
	if clock != "" {
		normalized, ok := Normalize(date, clock)
		if !ok {
			return nil, false
		}
		ts = normalized
	} else {
		// Date-only headers keep the record with a midnight timestamp.
		normalized, ok := NormalizeDateOnly(date)
		if !ok {
			return nil, false
		}
		ts = normalized
	}

	name := strings.TrimSpace(strings.SplitN(b.Sender, "/", 2)[0])

	return &Record{
		Date:      date,
		Time:      clock,
		Name:      name,
		FullName:  strings.TrimSpace(b.Sender),
		Body:      body,
		Timestamp: ts,
	}, true
}

// Parse scans the transcript and reconstructs every parsable record in
// document order.
func Parse(text string) []Record {
	boundaries := Scan(text)
	records := make([]Record, 0, len(boundaries))
	for i, b := range boundaries {
		nextStart := len(text)
		if i < len(boundaries)-1 {
			nextStart = boundaries[i+1].Start
		}
		rec, ok := ParseRecord(text, b, nextStart)
		if !ok {
			continue
		}
		records = append(records, *rec)
	}
	return records
}
