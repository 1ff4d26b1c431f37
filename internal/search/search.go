package search

// Search scores every document of src against query and returns the topN
// best matches. Documents scoring zero are dropped. An empty query
// matches nothing.
func Search(src Source, c Collection, query string, topN int) ([]SearchResult, error) {
	if err := ValidateTop(topN); err != nil {
		return nil, err
	}
	q := ParseQuery(query)
	if q.Empty() {
		return []SearchResult{}, nil
	}

	var results []SearchResult
	for doc := range src.Documents() {
		doc = c.Prepare(doc)
		score := Score(q, c.Adapter.Fields(doc), c.Profile)
		if score <= 0 {
			continue
		}
		r := c.Adapter.Present(doc, q)
		r.Score = score
		r.Snippet = TruncateSnippet(r.Snippet, MaxSnippetLen)
		results = append(results, r)
	}
	return Rank(results, topN)
}
