// Package analyzer is the parsing-and-aggregation engine: it reconstructs
// message records from a raw KakaoTalk transcript and computes the full
// statistical report in a single streaming pass plus one ordered sweep for
// conversation enders.
//
// The engine is a pure, deterministic function of its inputs. Every
// accumulator is owned by one Analyze invocation and discarded on return;
// re-running with identical arguments yields an identical report (modulo
// the generated analysis ID).
package analyzer

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/rashtad-web/rockgyo-kakao-analyze/pkg/classify"
	"github.com/rashtad-web/rockgyo-kakao-analyze/pkg/logging"
	"github.com/rashtad-web/rockgyo-kakao-analyze/pkg/transcript"
)

// Thresholds for the sequential pass.
const (
	// consecutiveThreshold is the maximum gap between two messages of the
	// same sender for them to extend one streak.
	consecutiveThreshold = 5 * time.Minute

	// conversationGap is the silence that starts (>= before) and ends
	// (no message within, after) a conversation.
	conversationGap = time.Hour
)

// Default ranking caps.
const (
	DefaultTopParticipants = 20
	DefaultTopRankings     = 10
)

// Options configures one analysis invocation.
type Options struct {
	// Start and End bound the records by normalized timestamp,
	// inclusive-exclusive: start <= ts < end. Nil means unbounded.
	Start *time.Time
	End   *time.Time

	// Keywords is the topic vocabulary. Empty falls back to the fixed
	// ten-term default list.
	Keywords []string

	// ContentHash, when set, is stamped onto the Result.
	ContentHash string

	// TopParticipants caps participant-keyed rankings (default 20).
	TopParticipants int

	// TopRankings caps date, hour, and per-keyword rankings (default 10).
	TopRankings int
}

// Analyzer runs analysis passes. It is stateless; all per-invocation state
// lives inside Analyze.
type Analyzer struct {
	log logging.Logger
}

// New creates an Analyzer. A nil logger disables logging.
func New(log logging.Logger) *Analyzer {
	if log == nil {
		log = logging.Nop()
	}
	return &Analyzer{log: log}
}

// lengthAccum accumulates character totals for average-length ranking.
type lengthAccum struct {
	total int
	count int
}

// Analyze parses the transcript and computes the full report.
//
// An empty transcript, or one without any recognizable header, is not an
// error: the returned report has zero totals and an empty message list.
func (a *Analyzer) Analyze(text string, opts Options) (*Result, error) {
	if opts.Start != nil && opts.End != nil && opts.Start.After(*opts.End) {
		return nil, fmt.Errorf("invalid date range: start %s is after end %s", opts.Start, opts.End)
	}

	capParticipants := opts.TopParticipants
	if capParticipants <= 0 {
		capParticipants = DefaultTopParticipants
	}
	capRankings := opts.TopRankings
	if capRankings <= 0 {
		capRankings = DefaultTopRankings
	}

	matchers := classify.NewKeywordMatchers(opts.Keywords)

	// Full parse of the unfiltered transcript. The date range and the
	// retained message list always come from this pass, regardless of any
	// caller-supplied filter.
	allRecords := transcript.Parse(text)
	a.log.Debug("parsed transcript",
		logging.F("records", len(allRecords)),
		logging.F("bytes", len(text)))

	var dateRange DateRange
	for _, rec := range allRecords {
		if dateRange.Min.IsZero() || rec.Timestamp.Before(dateRange.Min) {
			dateRange.Min = rec.Timestamp
		}
		if dateRange.Max.IsZero() || rec.Timestamp.After(dateRange.Max) {
			dateRange.Max = rec.Timestamp
		}
	}

	// Date-range filter, inclusive-exclusive on the normalized timestamp.
	records := make([]transcript.Record, 0, len(allRecords))
	for _, rec := range allRecords {
		if opts.Start != nil && rec.Timestamp.Before(*opts.Start) {
			continue
		}
		if opts.End != nil && !rec.Timestamp.Before(*opts.End) {
			continue
		}
		records = append(records, rec)
	}

	// Frequency tables, one per metric, owned by this invocation.
	var (
		byParticipant = newCounter()
		byDate        = newCounter()
		byHour        = newIntCounter()
		byDayOfWeek   = newCounter()
		mentioned     = newCounter()
		crying        = newCounter()
		laughing      = newCounter()
		words         = newCounter()
		lateNight     = newCounter()
		maxStreaks    = newCounter()
		photoShares   = newCounter()
		videoShares   = newCounter()
		linkShares    = newCounter()
		starters      = newCounter()
		enders        = newCounter()
		positive      = newCounter()
		negative      = newCounter()
		questions     = newCounter()
		exclamations  = newCounter()
		timeSlots     = newCounter()
	)

	perKeyword := make([]*counter, len(matchers))
	for i := range matchers {
		perKeyword[i] = newCounter()
	}

	lengths := make(map[string]*lengthAccum)
	var lengthOrder []string
	details := make(map[string]*ParticipantLengths)
	var detailOrder []string

	var typeCounts TypeCounts

	// Running state for streak and starter detection.
	lastSender := ""
	var lastTime time.Time
	streak := 0

	for _, rec := range records {
		byParticipant.add(rec.Name, 1)
		byDate.add(rec.Date, 1)

		hour := transcript.HourOf(rec.Time)
		if hour >= 0 {
			byHour.add(hour, 1)
		}
		byDayOfWeek.add(transcript.DayOfWeek(rec.Date), 1)

		msgType := classify.DetectType(rec.Body)
		switch msgType {
		case classify.TypeText:
			typeCounts.Text++
		case classify.TypePhoto:
			typeCounts.Photo++
			photoShares.add(rec.Name, 1)
		case classify.TypeVideo:
			typeCounts.Video++
			videoShares.add(rec.Name, 1)
		case classify.TypeEmoji:
			typeCounts.Emoji++
		case classify.TypeLink:
			typeCounts.Link++
			linkShares.add(rec.Name, 1)
		case classify.TypeOther:
			typeCounts.Other++
		}

		for _, name := range classify.ExtractMentions(rec.Body) {
			mentioned.add(name, 1)
		}
		if n := classify.CountCrying(rec.Body); n > 0 {
			crying.add(rec.Name, n)
		}
		if n := classify.CountLaughing(rec.Body); n > 0 {
			laughing.add(rec.Name, n)
		}

		msgLen := utf8.RuneCountInString(rec.Body)
		acc, seen := lengths[rec.Name]
		if !seen {
			acc = &lengthAccum{}
			lengths[rec.Name] = acc
			lengthOrder = append(lengthOrder, rec.Name)
		}
		acc.total += msgLen
		acc.count++

		if msgType == classify.TypeText && msgLen > 0 {
			for _, w := range classify.ExtractWords(rec.Body) {
				words.add(w, 1)
			}
		}

		if hour >= 2 && hour < 5 {
			lateNight.add(rec.Name, 1)
		}

		lowerBody := strings.ToLower(rec.Body)
		for i, m := range matchers {
			if m.Matches(lowerBody) {
				perKeyword[i].add(rec.Name, 1)
			}
		}

		// A message increments each sentiment category at most once.
		if classify.ContainsAny(lowerBody, classify.PositiveKeywords) {
			positive.add(rec.Name, 1)
		}
		if classify.ContainsAny(lowerBody, classify.NegativeKeywords) {
			negative.add(rec.Name, 1)
		}
		if classify.ContainsAny(lowerBody, classify.QuestionKeywords) {
			questions.add(rec.Name, 1)
		}
		if classify.ContainsAny(lowerBody, classify.ExclamationKeywords) {
			exclamations.add(rec.Name, 1)
		}

		timeSlots.add(slotFor(hour), 1)

		det, seenDet := details[rec.Name]
		if !seenDet {
			det = &ParticipantLengths{Name: rec.Name}
			details[rec.Name] = det
			detailOrder = append(detailOrder, rec.Name)
		}
		if msgLen > 0 && !strings.Contains(rec.Body, "\n") {
			det.OneLine++
		}
		switch {
		case msgLen <= 5:
			det.Short++
		case msgLen <= 50:
			det.Medium++
		case msgLen <= 100:
			det.Long++
		default:
			det.VeryLong++
		}

		// Conversation starter: the first message always; thereafter any
		// message at least an hour after its predecessor, whoever sent it.
		if lastTime.IsZero() {
			starters.add(rec.Name, 1)
		} else if rec.Timestamp.Sub(lastTime) >= conversationGap {
			starters.add(rec.Name, 1)
		}

		// Streak: same sender within the threshold extends; anything else
		// closes the previous streak against its owner and restarts.
		if rec.Name == lastSender && !lastTime.IsZero() {
			gap := rec.Timestamp.Sub(lastTime)
			if gap >= 0 && gap <= consecutiveThreshold {
				streak++
			} else {
				if streak > 0 {
					maxStreaks.setMax(lastSender, streak)
				}
				streak = 1
			}
		} else {
			if lastSender != "" && streak > 0 {
				maxStreaks.setMax(lastSender, streak)
			}
			lastSender = rec.Name
			streak = 1
		}
		lastTime = rec.Timestamp
	}

	// The final open streak is never closed by a state change.
	if lastSender != "" && streak > 0 {
		maxStreaks.setMax(lastSender, streak)
	}

	// Conversation enders: a message after which nobody sends anything for
	// an hour. The records are time-ordered, so a single forward pointer to
	// the first strictly-later message gives the minimal positive gap.
	k := 0
	for i := range records {
		for k < len(records) && !records[k].Timestamp.After(records[i].Timestamp) {
			k++
		}
		isEnd := true
		if k < len(records) && records[k].Timestamp.Sub(records[i].Timestamp) <= conversationGap {
			isEnd = false
		}
		if isEnd {
			enders.add(records[i].Name, 1)
		}
	}

	stats := Stats{
		TotalMessages:         len(records),
		TotalParticipants:     byParticipant.size(),
		MessagesByParticipant: byParticipant.snapshot(),
		MessagesByDate:        byDate.snapshot(),
		MessagesByHour:        byHour.snapshot(),
		MessagesByDayOfWeek:   byDayOfWeek.snapshot(),
		MessageTypes:          typeCounts,
		TypePercentages:       typePercentages(typeCounts, len(records)),
		TopParticipants:       nameCounts(byParticipant.top(capParticipants)),
		TopDates:              dateCounts(byDate.top(capRankings)),
		TopHours:              hourCounts(byHour.top(capRankings)),
		TopMentioned:          nameCounts(mentioned.top(capParticipants)),
		TopCrying:             nameCounts(crying.top(capParticipants)),
		TopLaughing:           nameCounts(laughing.top(capParticipants)),
		TopWords:              rankWords(words, capParticipants),
		AvgMessageLength:      rankAvgLengths(lengths, lengthOrder, capParticipants),
		LateNight:             nameCounts(lateNight.top(capParticipants)),
		Streaks:               streakEntries(maxStreaks.top(capParticipants)),
		PhotoSharers:          nameCounts(photoShares.top(capParticipants)),
		VideoSharers:          nameCounts(videoShares.top(capParticipants)),
		LinkSharers:           nameCounts(linkShares.top(capParticipants)),
		KeywordMentions:       rankKeywordMentions(matchers, perKeyword, capRankings),
		ConversationStarters:  nameCounts(starters.top(capParticipants)),
		ConversationEnders:    nameCounts(enders.top(capParticipants)),
		Emotion: EmotionAnalysis{
			Positive:     nameCounts(positive.top(capParticipants)),
			Negative:     nameCounts(negative.top(capParticipants)),
			Questions:    nameCounts(questions.top(capParticipants)),
			Exclamations: nameCounts(exclamations.top(capParticipants)),
		},
		ActivityByTimeSlot: slotActivity(timeSlots),
		LengthPattern:      lengthPattern(details, detailOrder, capParticipants),
		Density:            density(byDate, len(records)),
	}

	a.log.Debug("analysis complete",
		logging.F("total_messages", stats.TotalMessages),
		logging.F("participants", stats.TotalParticipants))

	return &Result{
		AnalysisID:  uuid.New().String(),
		ContentHash: opts.ContentHash,
		Stats:       stats,
		AllMessages: allRecords,
		DateRange:   dateRange,
	}, nil
}

// slotFor maps an hour of day to its fixed six-way time slot. Hour -1
// (date-only headers) falls through to the night bucket.
func slotFor(hour int) string {
	switch {
	case hour >= 0 && hour < 6:
		return "새벽 (0-5시)"
	case hour >= 6 && hour < 12:
		return "아침 (6-11시)"
	case hour >= 12 && hour < 14:
		return "점심 (12-13시)"
	case hour >= 14 && hour < 18:
		return "오후 (14-17시)"
	case hour >= 18 && hour < 22:
		return "저녁 (18-21시)"
	default:
		return "밤 (22-23시)"
	}
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(count) / float64(total) * 100)
}

func typePercentages(t TypeCounts, total int) TypePercentages {
	return TypePercentages{
		Text:  percent(t.Text, total),
		Photo: percent(t.Photo, total),
		Video: percent(t.Video, total),
		Emoji: percent(t.Emoji, total),
		Link:  percent(t.Link, total),
		Other: percent(t.Other, total),
	}
}

func nameCounts(entries []rankedEntry) []NameCount {
	out := make([]NameCount, 0, len(entries))
	for _, e := range entries {
		out = append(out, NameCount{Name: e.key, Count: e.count})
	}
	return out
}

func dateCounts(entries []rankedEntry) []DateCount {
	out := make([]DateCount, 0, len(entries))
	for _, e := range entries {
		out = append(out, DateCount{Date: e.key, Count: e.count})
	}
	return out
}

func hourCounts(entries []rankedIntEntry) []HourCount {
	out := make([]HourCount, 0, len(entries))
	for _, e := range entries {
		out = append(out, HourCount{Hour: e.key, Count: e.count})
	}
	return out
}

func streakEntries(entries []rankedEntry) []StreakEntry {
	out := make([]StreakEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, StreakEntry{Name: e.key, MaxConsecutive: e.count})
	}
	return out
}

// rankWords applies the stop-word and minimum-length filters, then ranks.
func rankWords(words *counter, limit int) []WordCount {
	filtered := newCounter()
	for _, w := range words.order {
		if classify.RankableWord(w) {
			filtered.add(w, words.counts[w])
		}
	}
	out := make([]WordCount, 0, limit)
	for _, e := range filtered.top(limit) {
		out = append(out, WordCount{Word: e.key, Count: e.count})
	}
	return out
}

// rankAvgLengths divides each sender's character total by their message
// count, rounds to the nearest integer, then ranks.
func rankAvgLengths(lengths map[string]*lengthAccum, order []string, limit int) []AvgLength {
	entries := make([]AvgLength, 0, len(order))
	for _, name := range order {
		acc := lengths[name]
		avg := int(math.Round(float64(acc.total) / float64(acc.count)))
		entries = append(entries, AvgLength{Name: name, AvgLength: avg})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AvgLength > entries[j].AvgLength
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// rankKeywordMentions ranks senders per keyword, drops keywords nobody
// mentioned, and orders the surviving keywords by total mention count so
// the most-discussed topics surface first.
func rankKeywordMentions(matchers []classify.KeywordMatcher, perKeyword []*counter, limit int) []KeywordMentions {
	groups := make([]KeywordMentions, 0, len(matchers))
	for i, m := range matchers {
		mentions := nameCounts(perKeyword[i].top(limit))
		if len(mentions) == 0 {
			continue
		}
		total := 0
		for _, nc := range mentions {
			total += nc.Count
		}
		groups = append(groups, KeywordMentions{
			Keyword:  m.Keyword,
			Total:    total,
			Mentions: mentions,
		})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total > groups[j].Total
	})
	return groups
}

// slotActivity turns the time-slot table into percentage-bearing entries
// sorted by count.
func slotActivity(slots *counter) []TimeSlotActivity {
	total := 0
	for _, e := range slots.top(0) {
		total += e.count
	}
	out := make([]TimeSlotActivity, 0, slots.size())
	for _, e := range slots.top(0) {
		out = append(out, TimeSlotActivity{
			Slot:       e.key,
			Count:      e.count,
			Percentage: percent(e.count, total),
		})
	}
	return out
}

// lengthPattern sums the per-participant buckets globally and ranks the
// participants by their bucket totals.
func lengthPattern(details map[string]*ParticipantLengths, order []string, limit int) LengthPattern {
	var p LengthPattern
	entries := make([]ParticipantLengths, 0, len(order))
	for _, name := range order {
		d := details[name]
		p.OneLine += d.OneLine
		p.Short += d.Short
		p.Medium += d.Medium
		p.Long += d.Long
		p.VeryLong += d.VeryLong
		entries = append(entries, *d)
	}
	totalOf := func(d ParticipantLengths) int {
		return d.OneLine + d.Short + d.Medium + d.Long + d.VeryLong
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return totalOf(entries[i]) > totalOf(entries[j])
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	p.ByParticipant = entries
	return p
}

// density derives the conversation-rhythm metrics from the per-date table.
// Active dates are ordered chronologically; the longest gap is measured in
// whole days between consecutive distinct active dates.
func density(byDate *counter, totalMessages int) ConversationDensity {
	type dayEntry struct {
		date string
		ts   time.Time
		n    int
	}
	entries := make([]dayEntry, 0, byDate.size())
	for _, e := range byDate.top(0) {
		ts, ok := transcript.NormalizeDateOnly(e.key)
		if !ok {
			continue
		}
		entries = append(entries, dayEntry{date: e.key, ts: ts, n: e.count})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ts.Before(entries[j].ts)
	})

	d := ConversationDensity{
		TotalDays:  len(entries),
		ActiveDays: len(entries),
	}
	if len(entries) > 0 {
		d.AvgMessagesPerDay = round1(float64(totalMessages) / float64(len(entries)))
	}

	quietest := DayActivity{}
	quietestSet := false
	for _, e := range entries {
		if e.n > d.MostActiveDay.Count {
			d.MostActiveDay = DayActivity{Date: e.date, Count: e.n}
		}
		if e.n > 0 && (!quietestSet || e.n < quietest.Count) {
			quietest = DayActivity{Date: e.date, Count: e.n}
			quietestSet = true
		}
	}
	if !quietestSet && len(entries) > 0 {
		quietest = DayActivity{Date: entries[0].date, Count: 0}
	}
	d.QuietestDay = quietest

	for i := 0; i+1 < len(entries); i++ {
		days := int(entries[i+1].ts.Sub(entries[i].ts).Hours() / 24)
		if days > d.LongestGap.Days {
			d.LongestGap = ActivityGap{
				Days:      days,
				StartDate: entries[i].date,
				EndDate:   entries[i+1].date,
			}
		}
	}

	return d
}
