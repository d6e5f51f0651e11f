package cmd

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"file-go/internal/logging"
	"file-go/internal/output"
)

// listingFlags control how selected entries are printed.
type listingFlags struct {
	print0   bool
	long     bool
	checksum bool
	noColor  bool
}

func (l *listingFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVar(&l.print0, "print0", false, "Terminate each path with NUL instead of newline")
	flags.BoolVarP(&l.long, "long", "l", false, "Prefix each path with its size and age")
	flags.BoolVar(&l.checksum, "checksum", false, "Prefix each file with its xxHash64 checksum")
	flags.BoolVar(&l.noColor, "no-color", false, "Never colour directory paths")
}

func (l *listingFlags) printer(w io.Writer, now time.Time, log zerolog.Logger) *output.Printer {
	return output.New(w, output.Options{
		Print0:   l.print0,
		Long:     l.long,
		Checksum: l.checksum,
		Color:    !l.noColor && !l.print0 && logging.IsTerminal(w),
		Now:      now,
	}, log)
}
