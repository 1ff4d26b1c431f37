package search

import "strings"

// Query is a user query split into its lowercased whole form and terms.
type Query struct {
	Raw   string
	Terms []string
}

// ParseQuery lowercases q and splits it on whitespace. Terms are not
// deduplicated.
func ParseQuery(q string) Query {
	return Query{
		Raw:   strings.ToLower(q),
		Terms: tokenize(q),
	}
}

// Empty reports whether the query has no terms.
func (q Query) Empty() bool {
	return len(q.Terms) == 0
}

func tokenize(q string) []string {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	parts := strings.Fields(q)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
