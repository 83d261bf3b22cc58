package transcript

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	records := Parse(sampleTranscript)
	if len(records) != 3 {
		t.Fatalf("Parse() returned %d records, want 3", len(records))
	}

	first := records[0]
	if first.Name != "Alice" || first.FullName != "Alice" {
		t.Errorf("first record name = %q / %q", first.Name, first.FullName)
	}
	if first.Body != "hello" {
		t.Errorf("first record body = %q, want %q", first.Body, "hello")
	}
	if first.Date != "2024년 1월 1일" || first.Time != "오전 9:00" {
		t.Errorf("first record date/time = %q / %q", first.Date, first.Time)
	}
	want := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.Local)
	if !first.Timestamp.Equal(want) {
		t.Errorf("first record timestamp = %v, want %v", first.Timestamp, want)
	}

	// The sender field splits at the first '/'; the full field is kept trimmed.
	second := records[1]
	if second.Name != "Bob" {
		t.Errorf("second record name = %q, want %q", second.Name, "Bob")
	}
	if second.FullName != "Bob / 기타" {
		t.Errorf("second record full name = %q, want %q", second.FullName, "Bob / 기타")
	}

	// Multi-line bodies run to the next header, trimmed.
	if second.Body != "사진\n여러 줄\n본문: 콜론 포함" {
		t.Errorf("second record body = %q", second.Body)
	}

	// The last record's body runs to end of text.
	if records[2].Body != "bye" {
		t.Errorf("last record body = %q, want %q", records[2].Body, "bye")
	}
	if records[2].Timestamp.Hour() != 23 {
		t.Errorf("오후 11:30 hour = %d, want 23", records[2].Timestamp.Hour())
	}
}

func TestParseRecordRejectsBadDateTime(t *testing.T) {
	b := Boundary{DateTime: "garbage", Sender: "Alice", Start: 0, End: 0}
	if _, ok := ParseRecord("some text", b, len("some text")); ok {
		t.Error("ParseRecord() accepted an unparsable date-time expression")
	}
}

func TestParseRecordDateOnly(t *testing.T) {
	// Date-only headers keep the record with a midnight timestamp and an
	// empty clock expression.
	b := Boundary{DateTime: "2024년 3월 2일", Sender: "Alice", Start: 0, End: 0}
	rec, ok := ParseRecord("body", b, 4)
	if !ok {
		t.Fatal("ParseRecord() rejected a date-only header")
	}
	if rec.Time != "" {
		t.Errorf("record time = %q, want empty", rec.Time)
	}
	want := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.Local)
	if !rec.Timestamp.Equal(want) {
		t.Errorf("record timestamp = %v, want %v", rec.Timestamp, want)
	}
}

func TestParseEmpty(t *testing.T) {
	if got := Parse(""); len(got) != 0 {
		t.Errorf("Parse(\"\") = %d records, want 0", len(got))
	}
}
