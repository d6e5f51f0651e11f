package progress

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"file-go/internal/logging"
)

// Status renders a single self-overwriting line with traversal counts. It is
// driven from the traversal loop and is not safe for concurrent use.
type Status struct {
	writer     io.Writer
	enabled    bool
	scanned    int64
	matched    int64
	currentDir string
	lastUpdate time.Time
	interval   time.Duration
}

// New returns a Status writing to w. Rendering is enabled only when w is a
// terminal, so redirected stderr stays clean.
func New(w io.Writer) *Status {
	return &Status{
		writer:   w,
		enabled:  logging.IsTerminal(w),
		interval: 100 * time.Millisecond,
	}
}

// Visit records one traversed entry.
func (s *Status) Visit(path string, isDir bool) {
	s.scanned++
	if isDir {
		s.currentDir = path
	}
	s.maybeRender()
}

// Match records one selected entry.
func (s *Status) Match(path string) {
	s.matched++
	s.maybeRender()
}

// Scanned returns the number of entries seen.
func (s *Status) Scanned() int64 { return s.scanned }

// Matched returns the number of entries selected.
func (s *Status) Matched() int64 { return s.matched }

// Update at most every interval to reduce flickering
func (s *Status) maybeRender() {
	if !s.enabled {
		return
	}
	now := time.Now()
	if now.Sub(s.lastUpdate) < s.interval {
		return
	}
	s.lastUpdate = now
	s.render()
}

func (s *Status) render() {
	var dirDisplay string
	if s.currentDir != "" {
		dirDisplay = " | " + filepath.Base(s.currentDir)
	}

	// Clear the line and write progress
	fmt.Fprintf(s.writer, "\r\033[Kscanned %d | matched %d%s", s.scanned, s.matched, dirDisplay)
}

// Finish draws the final counts and ends the line.
func (s *Status) Finish() {
	if !s.enabled {
		return
	}
	s.render()
	fmt.Fprintf(s.writer, "\n")
}
