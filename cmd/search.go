package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kamusis/refsearch/internal/config"
	"github.com/kamusis/refsearch/internal/logging"
	"github.com/kamusis/refsearch/internal/search"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var referencesCmd = newSearchCmd(search.References, &cobra.Command{
	Use:     "references <query>",
	Aliases: []string{"refs"},
	Short:   "Search Markdown reference files in a flat directory",
	Example: `  refsearch references "error handling"
  refsearch refs catchTag -n 10 --verbose`,
})

var patternsCmd = newSearchCmd(search.Patterns, &cobra.Command{
	Use:   "patterns <query>",
	Short: "Search MDX pattern files (with YAML front matter) recursively",
	Example: `  refsearch patterns "stream backpressure"
  refsearch patterns retry -d ./content/published/patterns`,
})

func init() {
	rootCmd.AddCommand(referencesCmd, patternsCmd)
}

// searchOptions is everything a single search run needs, resolved from
// config and flags.
type searchOptions struct {
	Collection search.Collection
	Query      string
	Dir        string
	Top        int
	Verbose    bool
	LogLevel   string
	Excludes   []string
}

func newSearchCmd(c search.Collection, cmd *cobra.Command) *cobra.Command {
	cmd.Args = cobra.MinimumNArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts, err := resolveSearchOptions(cmd, c, args)
		if err != nil {
			return err
		}
		return executeSearch(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	}
	cmd.Flags().IntP("top", "n", config.DefaultTop, "Number of results to return")
	cmd.Flags().StringP("dir", "d", "", fmt.Sprintf("Directory of %s to search (overrides config)", c.Name))
	cmd.Flags().BoolP("verbose", "v", false, "Show warnings and processing details on stderr")
	return cmd
}

func resolveSearchOptions(cmd *cobra.Command, c search.Collection, args []string) (searchOptions, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return searchOptions{}, fmt.Errorf("cannot load config: %w", err)
	}
	dir, err := cfg.Root(c.Name)
	if err != nil {
		return searchOptions{}, err
	}

	opts := searchOptions{
		Collection: c,
		Query:      strings.Join(args, " "),
		Dir:        dir,
		Top:        cfg.Top,
		LogLevel:   cfg.LogLevel,
		Excludes:   cfg.Excludes,
	}
	// Flags win over config only when given explicitly.
	if cmd.Flags().Changed("top") {
		if opts.Top, err = cmd.Flags().GetInt("top"); err != nil {
			return searchOptions{}, err
		}
	}
	if cmd.Flags().Changed("dir") {
		d, err := cmd.Flags().GetString("dir")
		if err != nil {
			return searchOptions{}, err
		}
		if opts.Dir, err = config.ExpandPath(d); err != nil {
			return searchOptions{}, err
		}
	}
	if opts.Verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return searchOptions{}, err
	}
	return opts, nil
}

func executeSearch(out, errOut io.Writer, opts searchOptions) error {
	if err := search.ValidateTop(opts.Top); err != nil {
		return fmt.Errorf("invalid --top: %w", err)
	}

	log := logging.New(logging.Config{
		Enabled: opts.Verbose,
		Level:   opts.LogLevel,
		Output:  errOut,
		NoColor: !isTerminal(errOut),
	})
	src, err := search.OpenDir(opts.Dir, opts.Collection.ScanOptions(opts.Excludes, &log))
	if err != nil {
		if errors.Is(err, search.ErrRootNotFound) {
			return fmt.Errorf("%s directory not found: %s", opts.Collection.Name, opts.Dir)
		}
		return err
	}

	results, err := search.Search(src, opts.Collection, opts.Query, opts.Top)
	if err != nil {
		return err
	}

	if opts.Verbose {
		st := src.Stats()
		printInfo(errOut, fmt.Sprintf("Processed %d files", st.Processed))
		if st.Skipped > 0 {
			printWarn(errOut, fmt.Sprintf("Skipped %d files due to errors", st.Skipped))
		}
	}

	printResults(out, opts.Collection, opts.Query, results)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
