package search

import "strings"

// DefaultContextLines is the number of lines kept on each side of a match.
const DefaultContextLines = 5

// MaxSnippetLen is the display limit for a snippet, in runes.
const MaxSnippetLen = 300

// ExtractSnippet returns the lines around the first line of body that
// contains the query. When no line contains the whole query, the first
// term (in query order) that appears anywhere decides the line. It returns
// "" when nothing matches.
func ExtractSnippet(body string, q Query, contextLines int) string {
	if q.Empty() {
		return ""
	}
	lines := strings.Split(body, "\n")

	idx := firstLineContaining(lines, q.Raw)
	if idx < 0 {
		for _, t := range q.Terms {
			if idx = firstLineContaining(lines, t); idx >= 0 {
				break
			}
		}
	}
	if idx < 0 {
		return ""
	}

	if contextLines < 0 {
		contextLines = 0
	}
	start := max(0, idx-contextLines)
	end := min(len(lines)-1, idx+contextLines)
	return strings.Join(lines[start:end+1], "\n")
}

func firstLineContaining(lines []string, s string) int {
	for i, ln := range lines {
		if strings.Contains(strings.ToLower(ln), s) {
			return i
		}
	}
	return -1
}

// TruncateSnippet cuts s to at most n runes, appending "..." when it
// had to cut.
func TruncateSnippet(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
