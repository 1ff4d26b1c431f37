package search

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterMarker = "---"

// Metadata holds the decoded front matter of a document.
type Metadata map[string]any

// String returns the value for key as a string. Missing keys and null
// values yield "". Non-string scalars are formatted with fmt.
func (m Metadata) String(key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	switch tv := v.(type) {
	case string:
		return tv
	case []any, map[string]any:
		return ""
	default:
		return fmt.Sprint(tv)
	}
}

// Strings returns the value for key as a list. A scalar becomes a one
// element list.
func (m Metadata) Strings(key string) []string {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	switch tv := v.(type) {
	case []any:
		out := make([]string, 0, len(tv))
		for _, item := range tv {
			if item == nil {
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	case map[string]any:
		return nil
	default:
		return []string{fmt.Sprint(tv)}
	}
}

// ParseFrontmatter splits content into its front matter and body.
//
// Content without an opening "---" line, or without a closing one, is
// returned whole as the body. Front matter that is not a valid YAML
// mapping yields empty metadata while the body is still split off.
func ParseFrontmatter(content string) (Metadata, string) {
	s := strings.TrimPrefix(content, "\ufeff")

	first, rest, ok := strings.Cut(s, "\n")
	if !ok || !isMarker(first) {
		return Metadata{}, content
	}

	var header []string
	for {
		line, tail, more := strings.Cut(rest, "\n")
		if isMarker(line) {
			return decodeFrontmatter(strings.Join(header, "\n")), tail
		}
		if !more {
			return Metadata{}, content
		}
		header = append(header, line)
		rest = tail
	}
}

func isMarker(line string) bool {
	return strings.TrimRight(line, " \t\r") == frontmatterMarker
}

func decodeFrontmatter(text string) Metadata {
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(text), &raw); err != nil {
		return Metadata{}
	}
	if raw == nil {
		return Metadata{}
	}
	return Metadata(raw)
}
