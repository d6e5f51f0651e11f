// Package output writes selected entries for downstream consumers.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"file-go/internal/hash"
	"file-go/internal/pathinfo"
)

// Options select the listing format. The zero value prints one path per line.
type Options struct {
	Print0   bool // terminate records with NUL instead of newline
	Long     bool // prefix size and age columns
	Checksum bool // prefix the xxHash64 of file contents
	Color    bool // colour directory paths
	Now      time.Time
}

// Printer writes one record per selected entry.
type Printer struct {
	w        io.Writer
	opts     Options
	dirColor *color.Color
	log      zerolog.Logger
}

// New returns a Printer writing to w.
func New(w io.Writer, opts Options, log zerolog.Logger) *Printer {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	dirColor := color.New(color.FgBlue, color.Bold)
	if opts.Color {
		dirColor.EnableColor()
	} else {
		dirColor.DisableColor()
	}

	return &Printer{
		w:        w,
		opts:     opts,
		dirColor: dirColor,
		log:      log,
	}
}

// Print writes the record for info.
func (p *Printer) Print(info *pathinfo.Info) error {
	var b strings.Builder

	if p.opts.Long {
		b.WriteString(p.size(info))
		b.WriteByte('\t')
		b.WriteString(p.age(info))
		b.WriteByte('\t')
	}
	if p.opts.Checksum {
		b.WriteString(p.checksum(info))
		b.WriteString("  ")
	}

	if info.IsDir {
		b.WriteString(p.dirColor.Sprint(info.Path))
	} else {
		b.WriteString(info.Path)
	}

	if p.opts.Print0 {
		b.WriteByte(0)
	} else {
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(p.w, b.String()); err != nil {
		return fmt.Errorf("failed to write %s: %w", info.Path, err)
	}
	return nil
}

func (p *Printer) size(info *pathinfo.Info) string {
	if info.Size == nil {
		return "-"
	}
	return humanize.IBytes(*info.Size)
}

func (p *Printer) age(info *pathinfo.Info) string {
	if info.AgeSecs == nil {
		return "-"
	}
	return humanize.RelTime(info.ModTime, p.opts.Now, "ago", "from now")
}

func (p *Printer) checksum(info *pathinfo.Info) string {
	if !info.IsFile {
		return "-"
	}
	sum, err := hash.Checksum(info.Path)
	if err != nil {
		p.log.Warn().Err(err).Str("path", info.Path).Msg("checksum failed")
		return "-"
	}
	return sum
}
