package search

// Field names shared by the collection adapters and profiles.
const (
	FieldFilename = "filename"
	FieldTitle    = "title"
	FieldTags     = "tags"
	FieldSummary  = "summary"
	FieldHeaders  = "headers"
	FieldBody     = "body"
)

// ReferenceProfile scores plain markdown references by file name, body
// text and "##" headers.
var ReferenceProfile = Profile{
	Name: "references",
	Rules: []Rule{
		{Field: FieldFilename, Phrase: 10, Term: 4},
		{Field: FieldBody, Phrase: 8, Occurrence: 0.5, OccurrenceCap: 10},
		{Field: FieldHeaders, Phrase: 5, Term: 2},
	},
}

// PatternProfile scores front matter documents by title, tags, summary
// and body.
var PatternProfile = Profile{
	Name: "patterns",
	Rules: []Rule{
		{Field: FieldTitle, Phrase: 10, Term: 3},
		{Field: FieldTags, Phrase: 8, Term: 2},
		{Field: FieldSummary, Phrase: 5, Term: 1.5},
		{Field: FieldBody, Phrase: 3, Term: 0.5},
	},
}
