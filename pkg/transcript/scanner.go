package transcript

import "regexp"

// headerPattern matches one message header: a date, a period-qualified
// clock, a comma, the sender field, and a terminating colon. The sender
// capture is non-greedy and excludes colons and newlines so a body that
// itself contains a colon cannot extend the header.
var headerPattern = regexp.MustCompile(`(\d+년\s*\d+월\s*\d+일\s*(?:오전|오후)\s*\d+:\d+),\s*([^:\n]+?)\s*:\s*`)

// Boundary is one located header occurrence.
type Boundary struct {
	// Full is the complete matched header text.
	Full string

	// DateTime is the captured date-time expression.
	DateTime string

	// Sender is the captured sender field, untrimmed.
	Sender string

	// Start is the byte offset of the header in the transcript.
	Start int

	// End is the byte offset just past the header, where the body begins.
	End int
}

// Scan locates every message header in the transcript and returns the
// boundaries in ascending document order. A transcript without headers
// yields an empty slice.
func Scan(text string) []Boundary {
	idx := headerPattern.FindAllStringSubmatchIndex(text, -1)
	boundaries := make([]Boundary, 0, len(idx))
	for _, m := range idx {
		boundaries = append(boundaries, Boundary{
			Full:     text[m[0]:m[1]],
			DateTime: text[m[2]:m[3]],
			Sender:   text[m[4]:m[5]],
			Start:    m[0],
			End:      m[1],
		})
	}
	return boundaries
}
