package search

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

var (
	// ErrRootNotFound is returned when the directory to scan does not exist.
	ErrRootNotFound = errors.New("directory not found")
	// ErrNotDirectory is returned when the root to scan is a regular file.
	ErrNotDirectory = errors.New("not a directory")
)

// Source produces the documents to search. Every call to Documents starts
// a fresh traversal.
type Source interface {
	Documents() iter.Seq[Document]
}

// SliceSource serves an in-memory list of documents.
type SliceSource []Document

// Documents implements Source.
func (s SliceSource) Documents() iter.Seq[Document] {
	return func(yield func(Document) bool) {
		for _, d := range s {
			if !yield(d) {
				return
			}
		}
	}
}

// ScanOptions controls which files a DirSource yields.
type ScanOptions struct {
	// Ext is the file extension to keep, including the dot (".md").
	Ext string
	// Recursive descends into subdirectories.
	Recursive bool
	// Excludes are glob patterns matched against both the base name and
	// the slash-separated path relative to the root. A trailing "/" limits
	// a pattern to directories.
	Excludes []string
	// Logger receives per-file diagnostics. Nil disables them.
	Logger *zerolog.Logger
}

// DirSource reads documents from a directory tree.
type DirSource struct {
	root  string
	fsys  fs.FS
	opts  ScanOptions
	log   zerolog.Logger
	stats ScanStats
}

// OpenDir checks that root is an existing directory and returns a source
// over it. Nothing under root is read until Documents is ranged over.
func OpenDir(root string, opts ScanOptions) (*DirSource, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("cannot stat directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &DirSource{
		root: root,
		fsys: os.DirFS(root),
		opts: opts,
		log:  log,
	}, nil
}

// Root returns the scanned directory.
func (s *DirSource) Root() string {
	return s.root
}

// Stats returns the counters of the most recent traversal.
func (s *DirSource) Stats() ScanStats {
	return s.stats
}

// Documents implements Source. Files that cannot be read or are not valid
// UTF-8 are skipped.
func (s *DirSource) Documents() iter.Seq[Document] {
	return func(yield func(Document) bool) {
		s.stats = ScanStats{}
		if s.opts.Recursive {
			s.walk(yield)
			return
		}
		s.list(yield)
	}
}

func (s *DirSource) list(yield func(Document) bool) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		s.log.Warn().Err(err).Str("dir", s.root).Msg("cannot list directory")
		return
	}
	for _, e := range entries {
		if e.IsDir() || !s.matches(e.Name()) || s.excluded(e.Name(), false) {
			continue
		}
		doc, ok := s.read(e.Name())
		if !ok {
			continue
		}
		if !yield(doc) {
			return
		}
	}
}

func (s *DirSource) walk(yield func(Document) bool) {
	walkFn := func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			s.log.Warn().Err(err).Str("path", s.fullPath(p)).Msg("cannot scan")
			return nil
		}
		if d.IsDir() {
			if p != "." && s.excluded(p, true) {
				return fs.SkipDir
			}
			return nil
		}
		if !s.matches(d.Name()) || s.excluded(p, false) {
			return nil
		}
		doc, ok := s.read(p)
		if !ok {
			return nil
		}
		if !yield(doc) {
			return fs.SkipAll
		}
		return nil
	}
	_ = fs.WalkDir(s.fsys, ".", walkFn)
}

func (s *DirSource) matches(name string) bool {
	return path.Ext(name) == s.opts.Ext
}

func (s *DirSource) excluded(rel string, dir bool) bool {
	name := path.Base(rel)
	for _, pattern := range s.opts.Excludes {
		if strings.HasSuffix(pattern, "/") {
			if !dir {
				continue
			}
			pattern = strings.TrimSuffix(pattern, "/")
		}
		if matched, _ := path.Match(pattern, name); matched {
			return true
		}
		if matched, _ := path.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}

func (s *DirSource) read(rel string) (Document, bool) {
	full := s.fullPath(rel)
	b, err := fs.ReadFile(s.fsys, rel)
	if err != nil {
		s.stats.Skipped++
		s.log.Warn().Err(err).Str("path", full).Msg("could not read file")
		return Document{}, false
	}
	text, err := decodeUTF8(b)
	if err != nil {
		s.stats.Skipped++
		s.log.Warn().Err(err).Str("path", full).Msg("encoding error")
		return Document{}, false
	}
	s.stats.Processed++
	s.log.Debug().Str("path", full).Int("bytes", len(b)).Msg("processed")
	return Document{Path: full, Raw: text}, true
}

func (s *DirSource) fullPath(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

func decodeUTF8(b []byte) (string, error) {
	out, _, err := transform.Bytes(encoding.UTF8Validator, b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
