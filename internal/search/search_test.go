package search

import (
	"errors"
	"strings"
	"testing"
)

func referenceDocs() SliceSource {
	return SliceSource{
		{Path: "/refs/streams.md", Raw: "# Streams\n\nBounded queues give backpressure.\n"},
		{Path: "/refs/error-handling.md", Raw: "# Error Handling\n\n## Error handling with catchTag\nUse catchTag for typed errors.\n"},
		{Path: "/refs/layers.md", Raw: "# Layers\n\nProvide services.\n"},
		{Path: "/refs/retry-basics.md", Raw: "No heading here.\nretry once, handling the error.\n"},
	}
}

func TestSearch_References(t *testing.T) {
	got, err := Search(referenceDocs(), References, "error handling", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2: %+v", len(got), got)
	}
	if got[0].File != "error-handling.md" || got[0].Title != "Error Handling" {
		t.Errorf("top result = %+v", got[0])
	}
	if got[1].Title != "Retry Basics" {
		t.Errorf("fallback title = %q, want %q", got[1].Title, "Retry Basics")
	}
	if got[0].Score < got[1].Score {
		t.Errorf("results not sorted: %v < %v", got[0].Score, got[1].Score)
	}
	if !strings.Contains(got[0].Snippet, "## Error handling with catchTag") {
		t.Errorf("snippet = %q", got[0].Snippet)
	}
	if got[0].Path != "/refs/error-handling.md" {
		t.Errorf("path = %q", got[0].Path)
	}
}

func TestSearch_TopTruncation(t *testing.T) {
	docs := SliceSource{
		{Path: "/r/a.md", Raw: "effect"},
		{Path: "/r/b.md", Raw: "effect effect"},
		{Path: "/r/c.md", Raw: "effect effect effect"},
		{Path: "/r/d.md", Raw: "nothing"},
	}
	for topN, want := range map[int]int{1: 1, 2: 2, 3: 3, 5: 3} {
		got, err := Search(docs, References, "effect", topN)
		if err != nil {
			t.Fatalf("Search(top=%d): %v", topN, err)
		}
		if len(got) != want {
			t.Errorf("top=%d: got %d results, want %d", topN, len(got), want)
		}
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	got, err := Search(referenceDocs(), References, "   ", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no results for empty query, got %d", len(got))
	}
}

func TestSearch_InvalidTop(t *testing.T) {
	_, err := Search(SliceSource{}, References, "x", 0)
	if !errors.Is(err, ErrInvalidTop) {
		t.Fatalf("err = %v, want ErrInvalidTop", err)
	}
}

func TestSearch_Patterns(t *testing.T) {
	docs := SliceSource{
		{Path: "/p/error-handling.mdx", Raw: "---\ntitle: Error Handling Patterns\ntags: [errors]\nsummary: Recover from failures.\nskillLevel: beginner\n---\nUse catchAll.\n"},
		{Path: "/p/no-frontmatter.mdx", Raw: "Plain text about error handling.\n"},
		{Path: "/p/broken.mdx", Raw: "---\ntitle: [oops\n---\nerror details\n"},
		{Path: "/p/unrelated.mdx", Raw: "---\ntitle: Streams\n---\nqueues\n"},
	}
	got, err := Search(docs, Patterns, "error handling", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3: %+v", len(got), got)
	}

	top := got[0]
	if top.Title != "Error Handling Patterns" || top.SkillLevel != "beginner" || top.Summary != "Recover from failures." {
		t.Errorf("top result = %+v", top)
	}
	if top.Score < 10 {
		t.Errorf("title phrase match scored %v, want >= 10", top.Score)
	}

	// Body phrase (3) ranks above a single body term (0.5).
	if got[1].Path != "/p/no-frontmatter.mdx" || got[1].Score != 3 {
		t.Errorf("second result = %+v", got[1])
	}
	if got[2].Path != "/p/broken.mdx" || got[2].Score != 0.5 {
		t.Errorf("third result = %+v", got[2])
	}
	for _, r := range got[1:] {
		if r.Title != "Untitled" || r.SkillLevel != "unknown" || r.Summary != "No summary available" {
			t.Errorf("defaults not applied: %+v", r)
		}
	}
}

func TestSearch_SnippetTruncated(t *testing.T) {
	long := strings.Repeat("x", 400)
	docs := SliceSource{{Path: "/r/long.md", Raw: "match here " + long}}
	got, err := Search(docs, References, "match", 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d results", len(got))
	}
	if len([]rune(got[0].Snippet)) != MaxSnippetLen+3 || !strings.HasSuffix(got[0].Snippet, "...") {
		t.Fatalf("snippet not truncated: %d runes", len([]rune(got[0].Snippet)))
	}
}

func TestSearch_DirSource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "layers.md", "# Layers\n\n## Providing layers\nlayer composition")
	writeFile(t, dir, "bad.md", "layer \xff")
	writeFile(t, dir, "other.md", "# Other\nnothing relevant")

	src, err := OpenDir(dir, References.ScanOptions(nil, nil))
	if err != nil {
		t.Fatalf("OpenDir: %v", err)
	}
	got, err := Search(src, References, "layer", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].File != "layers.md" {
		t.Fatalf("results = %+v", got)
	}
	if st := src.Stats(); st.Processed != 2 || st.Skipped != 1 {
		t.Fatalf("stats = %+v", st)
	}
}
