// Package filter holds the selection predicate evaluated against each
// traversed entry.
//
// A Filter is a flat set of category clauses. Categories are ANDed together;
// the terms within one list category are ORed. An empty list imposes no
// constraint. Bounds are inclusive, and an entry lacking the measured value
// (size for directories, age when mtime is unavailable) fails any configured
// bound.
package filter

import (
	"slices"
	"strings"

	"file-go/internal/pathinfo"
)

// Matcher decides whether a snapshot is selected.
type Matcher interface {
	Matches(info *pathinfo.Info) bool
}

// MatcherFunc adapts an ordinary function to a Matcher.
type MatcherFunc func(info *pathinfo.Info) bool

// Matches calls f(info).
func (f MatcherFunc) Matches(info *pathinfo.Info) bool {
	return f(info)
}

// Filter is the selection predicate. The zero value matches every non-hidden
// entry.
type Filter struct {
	Contains []string
	Prefix   []string
	Suffix   []string
	Exts     []string // without the leading dot

	OnlyFiles bool
	OnlyDirs  bool

	MinAgeSecs *uint64
	MaxAgeSecs *uint64
	MinSize    *uint64
	MaxSize    *uint64

	IncludeHidden bool
}

// Matches reports whether info satisfies every configured clause.
func (f Filter) Matches(info *pathinfo.Info) bool {
	if f.OnlyFiles && !info.IsFile {
		return false
	}
	if f.OnlyDirs && !info.IsDir {
		return false
	}

	if !f.IncludeHidden && info.Hidden {
		return false
	}

	if !anyTerm(f.Contains, info.Name, strings.Contains) {
		return false
	}
	if !anyTerm(f.Prefix, info.Name, strings.HasPrefix) {
		return false
	}
	if !anyTerm(f.Suffix, info.Name, strings.HasSuffix) {
		return false
	}

	if len(f.Exts) > 0 {
		if !info.HasExt() {
			return false
		}
		if !anyTerm(f.Exts, info.Ext, func(ext, term string) bool {
			return ext == strings.TrimPrefix(term, ".")
		}) {
			return false
		}
	}

	if !within(info.Size, f.MinSize, f.MaxSize) {
		return false
	}
	if !within(info.AgeSecs, f.MinAgeSecs, f.MaxAgeSecs) {
		return false
	}

	return true
}

// IsEmpty reports whether f carries no clause at all.
func (f Filter) IsEmpty() bool {
	return len(f.Contains) == 0 && len(f.Prefix) == 0 && len(f.Suffix) == 0 &&
		len(f.Exts) == 0 && !f.OnlyFiles && !f.OnlyDirs &&
		f.MinAgeSecs == nil && f.MaxAgeSecs == nil &&
		f.MinSize == nil && f.MaxSize == nil && !f.IncludeHidden
}

// Merge layers overlay on top of base. List categories are concatenated with
// base terms first. Type flags are taken from overlay only when it sets at
// least one of them. Each bound is taken from overlay when overlay sets it.
// Hidden inclusion is the OR of both sides.
func Merge(base, overlay Filter) Filter {
	merged := Filter{
		Contains: slices.Concat(base.Contains, overlay.Contains),
		Prefix:   slices.Concat(base.Prefix, overlay.Prefix),
		Suffix:   slices.Concat(base.Suffix, overlay.Suffix),
		Exts:     slices.Concat(base.Exts, overlay.Exts),

		OnlyFiles: base.OnlyFiles,
		OnlyDirs:  base.OnlyDirs,

		MinAgeSecs: pick(base.MinAgeSecs, overlay.MinAgeSecs),
		MaxAgeSecs: pick(base.MaxAgeSecs, overlay.MaxAgeSecs),
		MinSize:    pick(base.MinSize, overlay.MinSize),
		MaxSize:    pick(base.MaxSize, overlay.MaxSize),

		IncludeHidden: base.IncludeHidden || overlay.IncludeHidden,
	}

	if overlay.OnlyFiles || overlay.OnlyDirs {
		merged.OnlyFiles = overlay.OnlyFiles
		merged.OnlyDirs = overlay.OnlyDirs
	}

	return merged
}

// MergeAll folds filters left to right with Merge.
func MergeAll(filters ...Filter) Filter {
	var merged Filter
	for _, f := range filters {
		merged = Merge(merged, f)
	}
	return merged
}

// Uint64 returns a pointer to v, for populating bound fields.
func Uint64(v uint64) *uint64 {
	return &v
}

// anyTerm reports whether value satisfies match against at least one
// lowercased term. An empty term list is satisfied by everything.
func anyTerm(terms []string, value string, match func(value, term string) bool) bool {
	if len(terms) == 0 {
		return true
	}
	for _, term := range terms {
		if match(value, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func within(v, lo, hi *uint64) bool {
	if lo != nil && (v == nil || *v < *lo) {
		return false
	}
	if hi != nil && (v == nil || *v > *hi) {
		return false
	}
	return true
}

func pick(base, overlay *uint64) *uint64 {
	if overlay != nil {
		return overlay
	}
	return base
}
