package search

// Document is one file treated as a searchable unit.
type Document struct {
	Path     string
	Raw      string
	Metadata Metadata
	Body     string
}

// Fields maps a field name to the values scored for it. Each value is
// matched on its own and the contributions are summed.
type Fields map[string][]string

// SearchResult represents one matched document.
type SearchResult struct {
	Title      string
	Path       string
	File       string
	Score      float64
	Snippet    string
	SkillLevel string
	Summary    string
}

// ScanStats counts the files seen by the last traversal of a source.
type ScanStats struct {
	Processed int
	Skipped   int
}
