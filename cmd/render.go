package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/rashtad-web/rockgyo-kakao-analyze/config"
	"github.com/rashtad-web/rockgyo-kakao-analyze/services/analyzer"
)

// renderResult writes the report in the requested format.
func renderResult(w io.Writer, result *analyzer.Result, format config.OutputFormat) error {
	switch format {
	case config.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case config.OutputFormatYAML:
		return yaml.NewEncoder(w).Encode(result)
	case config.OutputFormatText:
		return renderText(w, result)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// renderText writes the human-readable report.
func renderText(w io.Writer, result *analyzer.Result) error {
	s := &result.Stats

	fmt.Fprintf(w, "Chat analysis %s\n", result.AnalysisID)
	if !result.DateRange.Min.IsZero() {
		fmt.Fprintf(w, "Transcript range: %s ~ %s\n",
			result.DateRange.Min.Format("2006-01-02 15:04"),
			result.DateRange.Max.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(w, "Messages: %d   Participants: %d\n\n", s.TotalMessages, s.TotalParticipants)

	fmt.Fprintln(w, "Message types")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  text\t%d\t%.1f%%\n", s.MessageTypes.Text, s.TypePercentages.Text)
	fmt.Fprintf(tw, "  photo\t%d\t%.1f%%\n", s.MessageTypes.Photo, s.TypePercentages.Photo)
	fmt.Fprintf(tw, "  video\t%d\t%.1f%%\n", s.MessageTypes.Video, s.TypePercentages.Video)
	fmt.Fprintf(tw, "  emoji\t%d\t%.1f%%\n", s.MessageTypes.Emoji, s.TypePercentages.Emoji)
	fmt.Fprintf(tw, "  link\t%d\t%.1f%%\n", s.MessageTypes.Link, s.TypePercentages.Link)
	fmt.Fprintf(tw, "  other\t%d\t%.1f%%\n", s.MessageTypes.Other, s.TypePercentages.Other)
	tw.Flush()
	fmt.Fprintln(w)

	writeNameCounts(w, "Top participants", s.TopParticipants)
	writeNameCounts(w, "Most laughter", s.TopLaughing)
	writeNameCounts(w, "Most tears", s.TopCrying)
	writeNameCounts(w, "Most @-mentioned", s.TopMentioned)

	if len(s.Streaks) > 0 {
		fmt.Fprintln(w, "Longest consecutive-message streaks (within 5 minutes)")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for i, e := range s.Streaks {
			fmt.Fprintf(tw, "  %d.\t%s\t%d\n", i+1, e.Name, e.MaxConsecutive)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	writeNameCounts(w, "Conversation starters (after 1h+ silence)", s.ConversationStarters)
	writeNameCounts(w, "Conversation enders (1h+ silence after)", s.ConversationEnders)
	writeNameCounts(w, "Positive expressions", s.Emotion.Positive)
	writeNameCounts(w, "Negative expressions", s.Emotion.Negative)
	writeNameCounts(w, "Questions", s.Emotion.Questions)
	writeNameCounts(w, "Exclamations", s.Emotion.Exclamations)
	writeNameCounts(w, "Late-night messages (02-05h)", s.LateNight)
	writeNameCounts(w, "Photo sharers", s.PhotoSharers)
	writeNameCounts(w, "Video sharers", s.VideoSharers)
	writeNameCounts(w, "Link sharers", s.LinkSharers)

	if len(s.AvgMessageLength) > 0 {
		fmt.Fprintln(w, "Average message length (characters)")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for i, e := range s.AvgMessageLength {
			fmt.Fprintf(tw, "  %d.\t%s\t%d\n", i+1, e.Name, e.AvgLength)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	if len(s.TopWords) > 0 {
		fmt.Fprintln(w, "Most used words")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for i, e := range s.TopWords {
			fmt.Fprintf(tw, "  %d.\t%s\t%d\n", i+1, e.Word, e.Count)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	if len(s.TopDates) > 0 {
		fmt.Fprintln(w, "Busiest dates")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for i, e := range s.TopDates {
			fmt.Fprintf(tw, "  %d.\t%s\t%d\n", i+1, e.Date, e.Count)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	if len(s.TopHours) > 0 {
		fmt.Fprintln(w, "Busiest hours")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for i, e := range s.TopHours {
			fmt.Fprintf(tw, "  %d.\t%02d:00\t%d\n", i+1, e.Hour, e.Count)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	if len(s.ActivityByTimeSlot) > 0 {
		fmt.Fprintln(w, "Activity by time slot")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, e := range s.ActivityByTimeSlot {
			fmt.Fprintf(tw, "  %s\t%d\t%.1f%%\n", e.Slot, e.Count, e.Percentage)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Message length pattern")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  one-line\t%d\n", s.LengthPattern.OneLine)
	fmt.Fprintf(tw, "  short (<=5)\t%d\n", s.LengthPattern.Short)
	fmt.Fprintf(tw, "  medium (6-50)\t%d\n", s.LengthPattern.Medium)
	fmt.Fprintf(tw, "  long (51-100)\t%d\n", s.LengthPattern.Long)
	fmt.Fprintf(tw, "  very long (>100)\t%d\n", s.LengthPattern.VeryLong)
	tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Conversation density")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  avg messages per active day\t%.1f\n", s.Density.AvgMessagesPerDay)
	fmt.Fprintf(tw, "  active days\t%d\n", s.Density.ActiveDays)
	fmt.Fprintf(tw, "  most active day\t%s (%d)\n", s.Density.MostActiveDay.Date, s.Density.MostActiveDay.Count)
	fmt.Fprintf(tw, "  quietest day\t%s (%d)\n", s.Density.QuietestDay.Date, s.Density.QuietestDay.Count)
	fmt.Fprintf(tw, "  longest gap\t%d days (%s ~ %s)\n",
		s.Density.LongestGap.Days, s.Density.LongestGap.StartDate, s.Density.LongestGap.EndDate)
	tw.Flush()
	fmt.Fprintln(w)

	for _, kw := range s.KeywordMentions {
		fmt.Fprintf(w, "Keyword %q (%d mentions)\n", kw.Keyword, kw.Total)
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for i, e := range kw.Mentions {
			fmt.Fprintf(tw, "  %d.\t%s\t%d\n", i+1, e.Name, e.Count)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	return nil
}

// writeNameCounts prints one ranked leaderboard section, skipping empty ones.
func writeNameCounts(w io.Writer, title string, entries []analyzer.NameCount) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintln(w, title)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, e := range entries {
		fmt.Fprintf(tw, "  %d.\t%s\t%d\n", i+1, e.Name, e.Count)
	}
	tw.Flush()
	fmt.Fprintln(w)
}
