package walker

import (
	"iter"
	"os"
	"path/filepath"
	"time"

	ignore "github.com/sabhiram/go-gitignore"

	"file-go/internal/filter"
	"file-go/internal/pathinfo"
)

// Observer is told about traversal progress. Visit is called for every entry
// considered, before its snapshot is taken; Match for every entry yielded.
type Observer interface {
	Visit(path string, isDir bool)
	Match(path string)
}

// Option configures a Finder.
type Option func(*Finder)

// WithNow fixes the reference time used to compute entry ages.
func WithNow(now time.Time) Option {
	return func(f *Finder) {
		f.now = now
	}
}

// WithExclude skips entries matching any of the gitignore-style patterns.
// Excluded directories are not descended into. Patterns are matched against
// the path relative to the root, with a trailing slash for directories.
func WithExclude(patterns []string) Option {
	return func(f *Finder) {
		if len(patterns) > 0 {
			f.exclude = ignore.CompileIgnoreLines(patterns...)
		}
	}
}

// WithObserver registers o for traversal notifications.
func WithObserver(o Observer) Option {
	return func(f *Finder) {
		f.observer = o
	}
}

// Finder is a pull-based, pre-order depth-first traversal that yields entries
// accepted by its matcher. Entries within a directory are visited in lexical
// order. A Finder owns a single cursor and cannot be restarted.
//
// A directory is only read when the caller asks for the entry after it, so a
// caller that stops pulling stops all filesystem access.
type Finder struct {
	root     string
	matcher  filter.Matcher
	now      time.Time
	exclude  *ignore.GitIgnore
	observer Observer

	started bool
	stack   []*dirCursor

	scanned int
	matched int
}

type dirCursor struct {
	path    string
	entries []os.DirEntry
	loaded  bool
	pos     int
}

// New returns a Finder over the tree rooted at root.
func New(root string, matcher filter.Matcher, opts ...Option) *Finder {
	f := &Finder{
		root:    root,
		matcher: matcher,
		now:     time.Now(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Next returns the path of the next accepted entry. It returns false once the
// traversal is exhausted.
func (f *Finder) Next() (string, bool) {
	info, ok := f.NextInfo()
	if !ok {
		return "", false
	}
	return info.Path, true
}

// NextInfo is Next returning the entry's snapshot instead of its path.
func (f *Finder) NextInfo() (*pathinfo.Info, bool) {
	if !f.started {
		f.started = true
		if info, ok := f.visitRoot(); ok {
			return info, true
		}
	}

	for len(f.stack) > 0 {
		top := f.stack[len(f.stack)-1]
		if !top.loaded {
			// ReadDir returns what it managed to read alongside any error.
			top.entries, _ = os.ReadDir(top.path)
			top.loaded = true
		}
		if top.pos >= len(top.entries) {
			f.stack = f.stack[:len(f.stack)-1]
			continue
		}

		entry := top.entries[top.pos]
		top.pos++

		if info, ok := f.visit(filepath.Join(top.path, entry.Name()), entry.IsDir()); ok {
			return info, true
		}
	}

	return nil, false
}

// Paths returns the remaining accepted paths as a sequence. Breaking out of
// the range stops the traversal.
func (f *Finder) Paths() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			path, ok := f.Next()
			if !ok || !yield(path) {
				return
			}
		}
	}
}

// Infos is Paths yielding snapshots.
func (f *Finder) Infos() iter.Seq[*pathinfo.Info] {
	return func(yield func(*pathinfo.Info) bool) {
		for {
			info, ok := f.NextInfo()
			if !ok || !yield(info) {
				return
			}
		}
	}
}

// Scanned returns the number of entries visited so far.
func (f *Finder) Scanned() int {
	return f.scanned
}

// Matched returns the number of entries yielded so far.
func (f *Finder) Matched() int {
	return f.matched
}

// visitRoot evaluates the root itself. A root that is, or links to, a
// directory is descended into; an unreadable root ends the traversal.
func (f *Finder) visitRoot() (*pathinfo.Info, bool) {
	info, ok := pathinfo.FromPath(f.root, f.now)
	f.notifyVisit(f.root, ok && info.IsDir)
	if !ok {
		return nil, false
	}
	if info.IsDir {
		f.stack = append(f.stack, &dirCursor{path: f.root})
	}
	return f.accept(info)
}

// visit evaluates one entry found inside a directory. isDir comes from the
// directory listing and does not follow symlinks, so links are never
// descended into.
func (f *Finder) visit(path string, isDir bool) (*pathinfo.Info, bool) {
	if f.excluded(path, isDir) {
		return nil, false
	}

	f.notifyVisit(path, isDir)

	if isDir {
		// Pushed before the snapshot so the subtree is still walked when the
		// directory itself cannot be stat'ed or is rejected.
		f.stack = append(f.stack, &dirCursor{path: path})
	}

	info, ok := pathinfo.FromPath(path, f.now)
	if !ok {
		return nil, false
	}
	return f.accept(info)
}

func (f *Finder) accept(info *pathinfo.Info) (*pathinfo.Info, bool) {
	if !f.matcher.Matches(info) {
		return nil, false
	}
	f.matched++
	if f.observer != nil {
		f.observer.Match(info.Path)
	}
	return info, true
}

func (f *Finder) notifyVisit(path string, isDir bool) {
	f.scanned++
	if f.observer != nil {
		f.observer.Visit(path, isDir)
	}
}

func (f *Finder) excluded(path string, isDir bool) bool {
	if f.exclude == nil {
		return false
	}

	relPath, err := filepath.Rel(f.root, path)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)
	if isDir {
		relPath += "/"
	}
	return f.exclude.MatchesPath(relPath)
}
