package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"file-go/internal/progress"
	"file-go/internal/walker"
)

// NewFindCommand creates the find command, which walks a directory tree and
// prints every entry the selection accepts.
func NewFindCommand(global *globalOptions) *cobra.Command {
	var (
		root         string
		showProgress bool
		sel          selectionFlags
		listing      listingFlags
	)

	cmd := &cobra.Command{
		Use:   "find [pattern]",
		Short: "Print entries under a directory that match the selection",
		Long: `Walk the tree under --root and print each matching entry in traversal order.

The optional pattern is a shortcut for a single term: a glob such as "*.jpg"
selects its extension, a leading dot such as ".log" selects a name suffix,
and anything else selects a name substring.`,
		Example: `  file-go find --images --older 30d
  file-go find "*.log" --root /var/log --larger 100MB
  file-go find --select "ext:txt age>2d size<10MB" --print0 | xargs -0 rm`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := global.load(cmd)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("root") {
				root = cfg.Root
			}

			var pattern string
			if len(args) == 1 {
				pattern = args[0]
			}

			if _, err := os.Stat(root); err != nil {
				log.Warn().Err(err).Str("root", root).Msg("root is not accessible; nothing to select")
			}

			now := time.Now()
			opts := []walker.Option{
				walker.WithNow(now),
				walker.WithExclude(cfg.Exclude),
			}

			var status *progress.Status
			if showProgress {
				status = progress.New(cmd.ErrOrStderr())
				opts = append(opts, walker.WithObserver(status))
			}

			finder := walker.New(root, sel.build(cfg, pattern, log), opts...)
			printer := listing.printer(cmd.OutOrStdout(), now, log)

			for info := range finder.Infos() {
				if err := printer.Print(info); err != nil {
					return err
				}
			}

			if status != nil {
				status.Finish()
			}

			log.Info().
				Str("root", root).
				Int("scanned", finder.Scanned()).
				Int("matched", finder.Matched()).
				Msg("find complete")

			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Directory to search")
	cmd.Flags().BoolVar(&showProgress, "progress", false, "Show a live scan counter on stderr when it is a terminal")
	sel.register(cmd)
	listing.register(cmd)

	return cmd
}
