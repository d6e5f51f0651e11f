package pathinfo

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Info is a normalized snapshot of one filesystem entry taken when it is visited.
// Name and Ext are lowercased so every textual comparison made against them is
// case-insensitive.
type Info struct {
	Path    string
	Name    string // lowercased base name
	Ext     string // lowercased, without the dot; empty when the entry has none
	IsFile  bool
	IsDir   bool
	Size    *uint64 // set only for regular files
	AgeSecs *uint64 // now minus mtime; nil when mtime is in the future or unavailable
	Hidden  bool
	ModTime time.Time
}

// HasExt reports whether the entry has an extension.
func (i *Info) HasExt() bool {
	return i.Ext != ""
}

// FromPath reads metadata for path and builds its snapshot relative to now.
// Symlinks are followed. Any read failure yields false and the entry should be
// skipped.
func FromPath(path string, now time.Time) (*Info, bool) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	return FromFileInfo(path, fi, now), true
}

// FromFileInfo builds a snapshot from metadata that has already been read.
func FromFileInfo(path string, fi os.FileInfo, now time.Time) *Info {
	name := strings.ToLower(baseName(path))

	info := &Info{
		Path:    path,
		Name:    name,
		Ext:     extension(name),
		IsFile:  fi.Mode().IsRegular(),
		IsDir:   fi.IsDir(),
		Hidden:  IsHidden(name),
		ModTime: fi.ModTime(),
	}

	if info.IsFile {
		size := uint64(fi.Size())
		info.Size = &size
	}

	if mt := fi.ModTime(); !mt.IsZero() && !now.Before(mt) {
		age := uint64(now.Sub(mt) / time.Second)
		info.AgeSecs = &age
	}

	return info
}

// IsHidden reports whether a base name denotes a dotfile.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// baseName returns the final path element, or "" for paths such as "." and
// "/" that do not name an entry of their own.
func baseName(path string) string {
	base := filepath.Base(path)
	switch base {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	return base
}

// extension returns the text after the last dot. A leading dot (".env")
// and a trailing dot ("notes.") do not count as an extension; an empty
// extension could never match an ext term anyway.
func extension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return ""
	}
	return name[idx+1:]
}
