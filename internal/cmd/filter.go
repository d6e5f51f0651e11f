package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"file-go/internal/input"
	"file-go/internal/pathinfo"
)

// NewFilterCommand creates the filter command, which applies the selection to
// paths read from stdin instead of walking a tree.
func NewFilterCommand(global *globalOptions) *cobra.Command {
	var (
		stdin0  bool
		sel     selectionFlags
		listing listingFlags
	)

	cmd := &cobra.Command{
		Use:   "filter [pattern]",
		Short: "Print paths read from stdin that match the selection",
		Long: `Read candidate paths from stdin, one per line (or NUL-separated with
--stdin0), and print those the selection accepts. Paths that cannot be
stat'ed are skipped.`,
		Example: `  git ls-files | file-go filter --larger 1MB
  find . -print0 | file-go filter --stdin0 --images --print0`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := global.load(cmd)
			if err != nil {
				return err
			}

			var pattern string
			if len(args) == 1 {
				pattern = args[0]
			}

			matcher := sel.build(cfg, pattern, log)
			now := time.Now()
			printer := listing.printer(cmd.OutOrStdout(), now, log)

			records := input.Lines(cmd.InOrStdin())
			if stdin0 {
				records = input.NulSeparated(cmd.InOrStdin())
			}

			var read, matched int
			for path := range records.All() {
				read++
				info, ok := pathinfo.FromPath(path, now)
				if !ok {
					log.Debug().Str("path", path).Msg("skipping unreadable path")
					continue
				}
				if !matcher.Matches(info) {
					continue
				}
				matched++
				if err := printer.Print(info); err != nil {
					return err
				}
			}

			if err := records.Err(); err != nil {
				return fmt.Errorf("failed to read paths after %d records: %w", read, err)
			}

			log.Info().Int("read", read).Int("matched", matched).Msg("filter complete")
			return nil
		},
	}

	cmd.Flags().BoolVar(&stdin0, "stdin0", false, "Read NUL-separated paths from stdin")
	sel.register(cmd)
	listing.register(cmd)

	return cmd
}
