package cmd

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"file-go/internal/config"
	"file-go/internal/filter"
	"file-go/internal/query"
	"file-go/internal/units"
)

// selectionFlags are the predicate-building flags shared by find and filter.
type selectionFlags struct {
	selectQuery string
	images      bool
	videos      bool
	docs        bool
	presets     []string
	older       string
	newer       string
	larger      string
	smaller     string
	entryType   string
	hidden      bool
}

func (s *selectionFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&s.selectQuery, "select", "", `Selection query, e.g. "ext:txt age>2d size<10MB"`)
	flags.BoolVar(&s.images, "images", false, "Select images (jpg, jpeg, png, gif, webp)")
	flags.BoolVar(&s.videos, "videos", false, "Select videos (mp4, mov, mkv, avi)")
	flags.BoolVar(&s.docs, "docs", false, "Select documents (pdf, docx, txt, md)")
	flags.StringArrayVar(&s.presets, "preset", nil, "Select a named extension preset from the config (repeatable)")
	flags.StringVar(&s.older, "older", "", "Minimum age, e.g. 30d")
	flags.StringVar(&s.newer, "newer", "", "Maximum age, e.g. 2h")
	flags.StringVar(&s.larger, "larger", "", "Minimum size, e.g. 100MB")
	flags.StringVar(&s.smaller, "smaller", "", "Maximum size, e.g. 1k")
	flags.StringVar(&s.entryType, "type", "", "Restrict to entry type: file or dir")
	flags.BoolVar(&s.hidden, "hidden", false, "Include hidden entries")
}

// build assembles the predicate. Layers are merged in order, so presets form
// the base and the --select query refines everything before it.
func (s *selectionFlags) build(cfg *config.Config, pattern string, log zerolog.Logger) filter.Filter {
	layers := []filter.Filter{{IncludeHidden: cfg.IncludeHidden}}

	if s.images {
		layers = append(layers, filter.Images())
	}
	if s.videos {
		layers = append(layers, filter.Videos())
	}
	if s.docs {
		layers = append(layers, filter.Docs())
	}
	for _, name := range s.presets {
		if exts, ok := lookupPreset(cfg, name); ok {
			layers = append(layers, filter.FromExtensions(exts...))
		} else {
			log.Warn().Str("preset", name).Msg("unknown preset ignored")
		}
	}

	if pattern != "" {
		layers = append(layers, filter.FromPattern(pattern))
	}

	layers = append(layers, s.flagFilter(log))

	if s.selectQuery != "" {
		compiled, ignored := query.CompileWithReport(s.selectQuery)
		for _, ig := range ignored {
			log.Warn().Str("token", ig.Token).Str("reason", ig.Reason).Msg("ignored query token")
		}
		layers = append(layers, compiled)
	}

	return filter.MergeAll(layers...)
}

func (s *selectionFlags) flagFilter(log zerolog.Logger) filter.Filter {
	f := filter.Filter{IncludeHidden: s.hidden}

	f.MinAgeSecs = parseFlag("older", s.older, units.ParseAge, log)
	f.MaxAgeSecs = parseFlag("newer", s.newer, units.ParseAge, log)
	f.MinSize = parseFlag("larger", s.larger, units.ParseSize, log)
	f.MaxSize = parseFlag("smaller", s.smaller, units.ParseSize, log)

	switch s.entryType {
	case "":
	case "file", "f":
		f.OnlyFiles = true
	case "dir", "d":
		f.OnlyDirs = true
	default:
		log.Warn().Str("type", s.entryType).Msg("unknown entry type ignored")
	}

	return f
}

func parseFlag(name, value string, parse func(string) (uint64, bool), log zerolog.Logger) *uint64 {
	if value == "" {
		return nil
	}
	v, ok := parse(value)
	if !ok {
		log.Warn().Str("flag", "--"+name).Str("value", value).Msg("unparseable value ignored")
		return nil
	}
	return &v
}

// lookupPreset resolves built-in presets first so the config cannot redefine
// them.
func lookupPreset(cfg *config.Config, name string) ([]string, bool) {
	if exts, ok := filter.BuiltinPresets[strings.ToLower(name)]; ok {
		return exts, true
	}
	return cfg.Preset(name)
}
