package cmd

import (
	"fmt"
	"io"

	"github.com/kamusis/refsearch/internal/config"
	"github.com/kamusis/refsearch/internal/search"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and document collections",
	Long: `Check that the configuration loads, that every collection directory exists,
and report files that would be skipped or searched without front matter.
Run this command when a search returns less than expected.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	failures := 0
	failD := func(format string, args ...any) {
		printErr(errOut, fmt.Sprintf(format, args...))
		failures++
	}

	printSection(out, "refsearch doctor")
	fmt.Fprintln(out)

	// ── Check 1: config loads ─────────────────────────────────────────────────
	fmt.Fprintln(out, "[ config ]")
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		failD("cannot load config: %v", err)
		return fmt.Errorf("%d check(s) failed", failures)
	}
	printOK(out, "configuration loaded")
	if err := search.ValidateTop(cfg.Top); err != nil {
		failD("invalid top in configuration: %v", err)
	}
	fmt.Fprintln(out)

	// ── Check 2: collections ──────────────────────────────────────────────────
	for _, c := range []search.Collection{search.References, search.Patterns} {
		fmt.Fprintf(out, "[ %s ]\n", c.Name)
		root, err := cfg.Root(c.Name)
		if err != nil {
			failD("%v", err)
			continue
		}
		if err := checkCollection(out, errOut, c, root, cfg.Excludes); err != nil {
			failD("%v", err)
		}
		fmt.Fprintln(out)
	}

	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}
	printOK(out, "all checks passed")
	return nil
}

// checkCollection scans root and reports what a search would see. Only a
// missing or unusable root is an error; skipped files are warnings.
func checkCollection(out, errOut io.Writer, c search.Collection, root string, excludes []string) error {
	src, err := search.OpenDir(root, c.ScanOptions(excludes, nil))
	if err != nil {
		return err
	}

	var noFrontmatter, untitled []string
	for doc := range src.Documents() {
		if !c.Frontmatter {
			continue
		}
		doc = c.Prepare(doc)
		switch {
		case len(doc.Metadata) == 0:
			noFrontmatter = append(noFrontmatter, doc.Path)
		case doc.Metadata.String("title") == "":
			untitled = append(untitled, doc.Path)
		}
	}

	st := src.Stats()
	printOK(out, fmt.Sprintf("%s: %d %s file(s) readable", root, st.Processed, c.Ext))
	if st.Processed == 0 {
		printWarn(out, "no documents to search")
	}
	if st.Skipped > 0 {
		printWarn(out, fmt.Sprintf("%d file(s) skipped (unreadable or not UTF-8); rerun a search with --verbose for details", st.Skipped))
	}
	for _, p := range noFrontmatter {
		printWarn(out, fmt.Sprintf("no valid front matter, body only: %s", p))
	}
	for _, p := range untitled {
		printInfo(out, fmt.Sprintf("no title, shown as Untitled: %s", p))
	}
	return nil
}
