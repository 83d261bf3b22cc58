// Package classify derives content signals from message bodies: content
// type, @-mentions, laughing/crying expressions, word tokens, sentiment
// keywords, and caller-supplied topic keywords.
package classify

import (
	"regexp"
	"strings"
)

// MessageType is the exclusive content category of a message body.
type MessageType string

const (
	TypeText  MessageType = "text"
	TypePhoto MessageType = "photo"
	TypeVideo MessageType = "video"
	TypeEmoji MessageType = "emoji"
	TypeLink  MessageType = "link"
	TypeOther MessageType = "other"
)

var linkPattern = regexp.MustCompile(`https?://`)

// DetectType classifies a message body. The checks are priority-ordered:
// a body containing both a photo keyword and a URL classifies as photo.
func DetectType(body string) MessageType {
	if strings.Contains(body, "사진") || strings.Contains(body, "photo") ||
		strings.Contains(body, "image") {
		return TypePhoto
	}
	if strings.Contains(body, "동영상") || strings.Contains(body, "video") {
		return TypeVideo
	}
	if strings.Contains(body, "이모티콘") || strings.Contains(body, "emoji") {
		return TypeEmoji
	}
	if linkPattern.MatchString(body) {
		return TypeLink
	}
	if strings.TrimSpace(body) == "" {
		return TypeOther
	}
	return TypeText
}
