package service

import "strings"

// extractJSONBlock pulls the payload out of a model reply. Replies wrapped in
// a markdown code fence yield the fenced content, preferring a json-tagged
// fence over a plain one; anything else is returned as-is. Only the first
// fence is considered.
func extractJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if content, ok := fencedContent(text, "```json"); ok {
		return content
	}
	if content, ok := fencedContent(text, "```"); ok {
		return content
	}

	return text
}

func fencedContent(text, opener string) (string, bool) {
	start := strings.Index(text, opener)
	if start == -1 {
		return "", false
	}

	rest := text[start+len(opener):]
	end := strings.Index(rest, "```")
	if end == -1 {
		return "", false
	}

	return strings.TrimSpace(rest[:end]), true
}
