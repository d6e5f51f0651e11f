// Package input reads candidate paths supplied on standard input.
package input

import (
	"bufio"
	"bytes"
	"io"
	"iter"
)

// MaxRecord is the longest record accepted. A longer one ends the sequence
// with bufio.ErrTooLong.
const MaxRecord = 1024 * 1024

// Records is a lazy stream of paths read from a reader. Ranging over All
// consumes the stream; Err reports what stopped it early, if anything.
type Records struct {
	scanner *bufio.Scanner
}

// Lines reads newline-delimited records from r. A trailing "\r" is stripped
// and empty records are dropped.
func Lines(r io.Reader) *Records {
	return newRecords(r, bufio.ScanLines)
}

// NulSeparated reads NUL-delimited records from r, as produced by
// "find -print0" or "file-go find --print0". Empty records are dropped.
func NulSeparated(r io.Reader) *Records {
	return newRecords(r, scanNul)
}

func newRecords(r io.Reader, split bufio.SplitFunc) *Records {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxRecord)
	scanner.Split(split)
	return &Records{scanner: scanner}
}

// All yields the remaining records.
func (r *Records) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for r.scanner.Scan() {
			if len(r.scanner.Bytes()) == 0 {
				continue
			}
			if !yield(r.scanner.Text()) {
				return
			}
		}
	}
}

// Err returns the first read error. It is nil when the input ended normally.
func (r *Records) Err() error {
	return r.scanner.Err()
}

func scanNul(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
