package search

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Adapter exposes a document as the named fields a Profile scores and
// builds the result shown for it.
type Adapter interface {
	Fields(doc Document) Fields
	Present(doc Document, q Query) SearchResult
}

// Collection describes one kind of document set: where its files are,
// how they are parsed and how they are weighted.
type Collection struct {
	Name        string
	Ext         string
	Recursive   bool
	Frontmatter bool
	Profile     Profile
	Adapter     Adapter
}

// References are flat directories of plain markdown files.
var References = Collection{
	Name:    "references",
	Ext:     ".md",
	Profile: ReferenceProfile,
	Adapter: referenceAdapter{},
}

// Patterns are directory trees of MDX files carrying YAML front matter.
var Patterns = Collection{
	Name:        "patterns",
	Ext:         ".mdx",
	Recursive:   true,
	Frontmatter: true,
	Profile:     PatternProfile,
	Adapter:     patternAdapter{},
}

// ScanOptions returns the scanner options for the collection.
func (c Collection) ScanOptions(excludes []string, log *zerolog.Logger) ScanOptions {
	return ScanOptions{Ext: c.Ext, Recursive: c.Recursive, Excludes: excludes, Logger: log}
}

// Prepare fills in Metadata and Body from the raw text.
func (c Collection) Prepare(doc Document) Document {
	if c.Frontmatter {
		doc.Metadata, doc.Body = ParseFrontmatter(doc.Raw)
		return doc
	}
	doc.Metadata = Metadata{}
	doc.Body = doc.Raw
	return doc
}

type referenceAdapter struct{}

func (referenceAdapter) Fields(doc Document) Fields {
	var headers []string
	for _, ln := range strings.Split(doc.Body, "\n") {
		if strings.HasPrefix(ln, "##") {
			headers = append(headers, ln)
		}
	}
	return Fields{
		FieldFilename: {stem(doc.Path)},
		FieldBody:     {doc.Body},
		FieldHeaders:  headers,
	}
}

func (referenceAdapter) Present(doc Document, q Query) SearchResult {
	return SearchResult{
		Title:   referenceTitle(doc),
		Path:    doc.Path,
		File:    filepath.Base(doc.Path),
		Snippet: ExtractSnippet(doc.Body, q, DefaultContextLines),
	}
}

// referenceTitle is the first "# " heading, or the file stem in title case.
func referenceTitle(doc Document) string {
	for _, ln := range strings.Split(doc.Body, "\n") {
		if strings.HasPrefix(ln, "# ") {
			return strings.TrimSpace(ln[2:])
		}
	}
	name := strings.ReplaceAll(stem(doc.Path), "-", " ")
	return cases.Title(language.English).String(name)
}

type patternAdapter struct{}

func (patternAdapter) Fields(doc Document) Fields {
	f := Fields{FieldBody: {doc.Body}}
	if v := doc.Metadata.String("title"); v != "" {
		f[FieldTitle] = []string{v}
	}
	if tags := doc.Metadata.Strings("tags"); len(tags) > 0 {
		f[FieldTags] = []string{strings.Join(tags, " ")}
	}
	if v := doc.Metadata.String("summary"); v != "" {
		f[FieldSummary] = []string{v}
	}
	return f
}

func (patternAdapter) Present(doc Document, q Query) SearchResult {
	return SearchResult{
		Title:      orDefault(doc.Metadata.String("title"), "Untitled"),
		Path:       doc.Path,
		File:       filepath.Base(doc.Path),
		Snippet:    ExtractSnippet(doc.Body, q, DefaultContextLines),
		SkillLevel: orDefault(doc.Metadata.String("skillLevel"), "unknown"),
		Summary:    orDefault(doc.Metadata.String("summary"), "No summary available"),
	}
}

func stem(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
