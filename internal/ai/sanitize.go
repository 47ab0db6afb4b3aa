package ai

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>?`)

// StripTags removes HTML/markup tags. Article bodies are stored as
// HTML; tags must never reach the completion endpoint.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// StripCodeFence unwraps a markdown-fenced block. Models sometimes wrap
// JSON answers in ```json fences; parsing happens after this stage.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// drop the language hint on the opening fence line
		first := strings.TrimSpace(s[:idx])
		if first == "" || !strings.ContainsAny(first, "{}[]") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
