package search

import (
	"strings"
	"testing"
)

func referenceFields(name, body string) Fields {
	return References.Adapter.Fields(References.Prepare(Document{Path: "/refs/" + name, Raw: body}))
}

func patternFields(content string) Fields {
	return Patterns.Adapter.Fields(Patterns.Prepare(Document{Path: "/p/x.mdx", Raw: content}))
}

func TestScore_EmptyQueryIsZero(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		if got := Score(ParseQuery(q), referenceFields("anything.md", "anything at all"), ReferenceProfile); got != 0 {
			t.Errorf("references: Score(%q) = %v, want 0", q, got)
		}
		if got := Score(ParseQuery(q), patternFields("---\ntitle: T\n---\nbody"), PatternProfile); got != 0 {
			t.Errorf("patterns: Score(%q) = %v, want 0", q, got)
		}
	}
}

func TestScore_References(t *testing.T) {
	f := referenceFields("error-handling.md", "## Error handling\nerror error handling")
	// filename: 2 terms x 4; body: phrase 8 + 3x0.5 + 2x0.5; header: phrase 5.
	if got := Score(ParseQuery("error handling"), f, ReferenceProfile); got != 23.5 {
		t.Fatalf("score = %v, want 23.5", got)
	}
}

func TestScore_ReferencesHeaderTerms(t *testing.T) {
	f := referenceFields("misc.md", "## Retry policies\n## Backoff\nplain")
	// body: retry 1x0.5, backoff 1x0.5; headers: 2 + 2.
	if got := Score(ParseQuery("retry backoff"), f, ReferenceProfile); got != 5 {
		t.Fatalf("score = %v, want 5", got)
	}
}

func TestScore_Patterns(t *testing.T) {
	content := "---\ntitle: Retry with Backoff\ntags: [effect, retry, schedule]\nsummary: Retry failed effects with exponential backoff\n---\nUse Schedule.exponential to retry.\n"
	// title 3+3, tags 2, summary 1.5+1.5, body 0.5.
	if got := Score(ParseQuery("retry backoff"), patternFields(content), PatternProfile); got != 11.5 {
		t.Fatalf("score = %v, want 11.5", got)
	}
}

func TestScore_PatternsWithoutFrontmatterUsesBody(t *testing.T) {
	if got := Score(ParseQuery("stream"), patternFields("a stream of values"), PatternProfile); got != 3 {
		t.Fatalf("score = %v, want 3", got)
	}
}

func TestScore_TitlePhraseScenario(t *testing.T) {
	q := ParseQuery("error handling")

	pf := patternFields("---\ntitle: Error Handling Patterns\n---\n")
	if got := Score(q, pf, PatternProfile); got < 10 {
		t.Errorf("patterns score = %v, want >= 10", got)
	}

	rf := referenceFields("Error Handling Patterns.md", "")
	if got := Score(q, rf, ReferenceProfile); got < 10 {
		t.Errorf("references score = %v, want >= 10", got)
	}
}

func TestScore_PhraseAndFrequencyAreAdditive(t *testing.T) {
	f := referenceFields("x.md", "scope")
	// phrase 8 plus one occurrence 0.5.
	if got := Score(ParseQuery("scope"), f, ReferenceProfile); got != 8.5 {
		t.Fatalf("score = %v, want 8.5", got)
	}
}

func TestScore_MonotonicInFrequencyUpToCap(t *testing.T) {
	q := ParseQuery("layer")
	prev := -1.0
	for n := 1; n <= 15; n++ {
		body := strings.Repeat("layer ", n)
		got := Score(q, referenceFields("x.md", body), ReferenceProfile)
		if got < prev {
			t.Fatalf("n=%d: score decreased from %v to %v", n, prev, got)
		}
		if n > 10 && got != prev {
			t.Fatalf("n=%d: score changed past the cap: %v -> %v", n, prev, got)
		}
		prev = got
	}
	if prev != 8+10*0.5 {
		t.Fatalf("capped score = %v, want 13", prev)
	}
}

func TestScore_NoMatchIsZero(t *testing.T) {
	f := referenceFields("streams.md", "## Queues\nbounded queues")
	if got := Score(ParseQuery("fiber"), f, ReferenceProfile); got != 0 {
		t.Fatalf("score = %v, want 0", got)
	}
}
