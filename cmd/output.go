package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kamusis/refsearch/internal/search"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// Status lines use the same icons everywhere:
//   ✓  success / healthy
//   ~  neutral info
//   ⚠  warning
//   ✗  error / failure

const ruleWidth = 70

// previewLines is the number of snippet lines shown under a result.
const previewLines = 5

// printSection prints a top-level section header, e.g. "=== doctor ===".
func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)
}

// printOK prints a success line.
func printOK(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ✓  %s\n", msg)
}

// printInfo prints a neutral informational line.
func printInfo(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ~  %s\n", msg)
}

// printWarn prints a warning line.
func printWarn(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ⚠  %s\n", msg)
}

// printErr prints an error line.
func printErr(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ✗  %s\n", msg)
}

// resultStyles are bound to the writer they render for, so output that is
// not a terminal stays plain text.
type resultStyles struct {
	title lipgloss.Style
	label lipgloss.Style
	rule  lipgloss.Style
}

func newResultStyles(w io.Writer) resultStyles {
	r := lipgloss.NewRenderer(w)
	return resultStyles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		label: r.NewStyle().Foreground(lipgloss.Color("241")),
		rule:  r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// printResults renders the ranked results of one search.
func printResults(w io.Writer, c search.Collection, query string, results []search.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintf(w, "No %s found matching: %s\n", c.Name, query)
		return
	}

	st := newResultStyles(w)
	fmt.Fprintf(w, "\nTop %d %s matching '%s':\n\n", len(results), c.Name, query)
	fmt.Fprintln(w, st.rule.Render(strings.Repeat("=", ruleWidth)))

	for i, r := range results {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, st.title.Render(r.Title))
		if c.Frontmatter {
			fmt.Fprintf(w, "   %s %s\n", st.label.Render("Skill Level:"), r.SkillLevel)
			fmt.Fprintf(w, "   %s %s\n", st.label.Render("File:"), r.Path)
			fmt.Fprintf(w, "   %s %s\n", st.label.Render("Summary:"), r.Summary)
		} else {
			fmt.Fprintf(w, "   %s %s\n", st.label.Render("File:"), r.File)
		}
		fmt.Fprintf(w, "   %s %.1f\n", st.label.Render("Score:"), r.Score)
		if r.Snippet != "" {
			fmt.Fprintf(w, "   %s\n", st.label.Render("Preview:"))
			lines := strings.Split(r.Snippet, "\n")
			if len(lines) > previewLines {
				lines = lines[:previewLines]
			}
			for _, ln := range lines {
				fmt.Fprintf(w, "      %s\n", ln)
			}
		}
		fmt.Fprintln(w, st.rule.Render(strings.Repeat("-", ruleWidth)))
	}
}
