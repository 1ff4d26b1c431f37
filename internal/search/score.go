package search

import "strings"

// Rule weights one field.
//
// Phrase is added when the whole query is a substring of a value;
// otherwise Term is added for every query term found in it. Occurrence
// is added per occurrence of each term, counted up to OccurrenceCap,
// whether or not the phrase matched.
type Rule struct {
	Field         string
	Phrase        float64
	Term          float64
	Occurrence    float64
	OccurrenceCap int
}

// Profile is the weight table used to score a collection.
type Profile struct {
	Name  string
	Rules []Rule
}

// Score returns the relevance of fields to q under p. It is zero for an
// empty query.
func Score(q Query, fields Fields, p Profile) float64 {
	if q.Empty() {
		return 0
	}
	var score float64
	for _, r := range p.Rules {
		for _, v := range fields[r.Field] {
			score += r.score(q, strings.ToLower(v))
		}
	}
	return score
}

func (r Rule) score(q Query, v string) float64 {
	var score float64
	if strings.Contains(v, q.Raw) {
		score += r.Phrase
	} else if r.Term != 0 {
		for _, t := range q.Terms {
			if strings.Contains(v, t) {
				score += r.Term
			}
		}
	}
	if r.Occurrence != 0 {
		for _, t := range q.Terms {
			n := strings.Count(v, t)
			if r.OccurrenceCap > 0 && n > r.OccurrenceCap {
				n = r.OccurrenceCap
			}
			score += float64(n) * r.Occurrence
		}
	}
	return score
}
