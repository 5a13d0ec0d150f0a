// Package filetree selects files below a root directory by include and
// exclude globs.
//
// Patterns follow the Ant/Gradle conventions: '*' and '?' match within a
// single path element, '**' matches across elements and a trailing '/' is
// short for '/**'. Patterns are always written with forward slashes.
package filetree

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/moby/patternmatcher"
)

// FileTree is a root directory plus ordered include and exclude patterns.
type FileTree struct {
	Dir      string
	Includes []string
	Excludes []string
}

// New returns a tree rooted at dir with the given include patterns.
func New(dir string, includes ...string) *FileTree {
	t := &FileTree{Dir: dir}
	return t.Include(includes...)
}

// Include appends include patterns not yet present.
func (t *FileTree) Include(patterns ...string) *FileTree {
	t.Includes = appendNew(t.Includes, patterns)
	return t
}

// Exclude appends exclude patterns not yet present.
func (t *FileTree) Exclude(patterns ...string) *FileTree {
	t.Excludes = appendNew(t.Excludes, patterns)
	return t
}

func appendNew(list, patterns []string) []string {
	for _, p := range patterns {
		if !slices.Contains(list, p) {
			list = append(list, p)
		}
	}
	return list
}

// Clone returns a deep copy of the tree.
func (t *FileTree) Clone() *FileTree {
	return &FileTree{
		Dir:      t.Dir,
		Includes: append([]string(nil), t.Includes...),
		Excludes: append([]string(nil), t.Excludes...),
	}
}

// Matches reports whether path, relative to Dir, is selected. A path is
// selected if at least one include pattern matches it (or there are none)
// and no exclude pattern matches it or one of its parent directories.
// Patterns that fail to compile never match.
func (t *FileTree) Matches(path string) bool {
	return t.compile().matches(path)
}

// Files walks Dir and returns the sorted absolute paths of all selected
// regular files. Hidden directories are not descended into. A missing Dir
// yields no files.
func (t *FileTree) Files() ([]string, error) {
	root, err := filepath.Abs(t.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", t.Dir, err)
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	m := t.compile()
	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if m.matches(rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

func (t *FileTree) String() string {
	return fmt.Sprintf("%s include=%v exclude=%v", t.Dir, t.Includes, t.Excludes)
}

type matcher struct {
	restricted bool
	includes   []*patternmatcher.PatternMatcher
	excludes   []*patternmatcher.PatternMatcher
}

func (t *FileTree) compile() matcher {
	m := matcher{
		includes: compilePatterns(t.Includes),
		excludes: compilePatterns(t.Excludes),
	}
	for _, p := range t.Includes {
		if strings.TrimSpace(p) != "" {
			m.restricted = true
			break
		}
	}
	return m
}

// compilePatterns keeps one matcher per pattern so that a broken pattern
// only disables itself.
func compilePatterns(patterns []string) []*patternmatcher.PatternMatcher {
	var result []*patternmatcher.PatternMatcher
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || strings.HasPrefix(p, "!") {
			continue
		}
		if strings.HasSuffix(p, "/") {
			p += "**"
		}
		pm, err := patternmatcher.New([]string{filepath.FromSlash(p)})
		if err != nil {
			continue
		}
		result = append(result, pm)
	}
	return result
}

func (m matcher) matches(path string) bool {
	path = filepath.FromSlash(filepath.ToSlash(path))
	if m.restricted && !anyMatch(m.includes, path, false) {
		return false
	}
	return !anyMatch(m.excludes, path, true)
}

// anyMatch tests path against each matcher. Includes must match the path
// itself, excludes also match when a parent directory does.
func anyMatch(pms []*patternmatcher.PatternMatcher, path string, parents bool) bool {
	for _, pm := range pms {
		var ok bool
		var err error
		if parents {
			ok, err = pm.MatchesOrParentMatches(path)
		} else {
			ok, err = pm.MatchesUsingParentResult(path, false)
		}
		if err == nil && ok {
			return true
		}
	}
	return false
}
