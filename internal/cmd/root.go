package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"file-go/internal/config"
	"file-go/internal/logging"
)

// Version is injected at build time via -ldflags
var Version = "dev"

type globalOptions struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates and returns the root cobra command for file-go
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "file-go",
		Short: "Select files by name, type, size and age",
		Long: `file-go walks a directory tree and prints the entries that satisfy a
selection built from preset flags and a small query language, one per line,
ready to be piped into move, copy, archive or delete tools.`,
		Version: Version,
		// Subcommands are routed before this; anything left over is unknown.
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main reports the error
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "Config file path")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")

	cmd.AddCommand(NewFindCommand(opts))
	cmd.AddCommand(NewFilterCommand(opts))

	return cmd
}

// load reads the config file and builds the stderr logger.
func (o *globalOptions) load(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if o.logLevel != "" {
		level = o.logLevel
	}
	return cfg, logging.New(cmd.ErrOrStderr(), level), nil
}
