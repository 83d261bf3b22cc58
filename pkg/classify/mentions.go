package classify

import (
	"regexp"
	"strings"
)

// mentionPattern matches @name with an optional '/'-qualified suffix that
// is discarded. The name itself excludes whitespace, '@', and '/'.
var mentionPattern = regexp.MustCompile(`@([^/\s@]+)(?:/[^\s@]*)?`)

// ExtractMentions returns every name mentioned with an @-tag in the body.
// A body may yield zero or many names.
func ExtractMentions(body string) []string {
	var names []string
	for _, m := range mentionPattern.FindAllStringSubmatch(body, -1) {
		name := strings.TrimSpace(m[1])
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
