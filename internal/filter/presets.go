package filter

import (
	"strings"
)

// Built-in extension sets behind the --images, --videos and --docs flags.
var (
	ImageExts = []string{"jpg", "jpeg", "png", "gif", "webp"}
	VideoExts = []string{"mp4", "mov", "mkv", "avi"}
	DocExts   = []string{"pdf", "docx", "txt", "md"}
)

// BuiltinPresets maps preset names to their extension sets.
var BuiltinPresets = map[string][]string{
	"images": ImageExts,
	"videos": VideoExts,
	"docs":   DocExts,
}

// Images selects common image extensions.
func Images() Filter { return FromExtensions(ImageExts...) }

// Videos selects common video extensions.
func Videos() Filter { return FromExtensions(VideoExts...) }

// Docs selects common document extensions.
func Docs() Filter { return FromExtensions(DocExts...) }

// FromExtensions builds a filter over the given extensions, normalized to
// lowercase without a leading dot. Empty entries are dropped.
func FromExtensions(exts ...string) Filter {
	var f Filter
	for _, ext := range exts {
		if ext = normalizeExt(ext); ext != "" {
			f.Exts = append(f.Exts, ext)
		}
	}
	return f
}

// FromPattern turns the positional shortcut argument into a single term:
//
//   - a glob ("*.jpg") selects by its final dot-suffix as an extension
//   - a leading dot (".log") selects names ending with it
//   - anything else selects names containing it
//
// A glob without a dot-suffix ("draft*") falls back to a substring of its
// literal characters. A pattern that leaves no usable term yields an empty
// filter.
func FromPattern(pattern string) Filter {
	var f Filter
	switch {
	case pattern == "":
	case strings.ContainsAny(pattern, "*?["):
		if idx := strings.LastIndexByte(pattern, '.'); idx >= 0 {
			ext := pattern[idx+1:]
			if ext != "" && !strings.ContainsAny(ext, "*?[]") {
				f.Exts = append(f.Exts, strings.ToLower(ext))
				return f
			}
		}
		literal := strings.Map(func(r rune) rune {
			if strings.ContainsRune("*?[]", r) {
				return -1
			}
			return r
		}, pattern)
		if literal != "" {
			f.Contains = append(f.Contains, literal)
		}
	case strings.HasPrefix(pattern, "."):
		f.Suffix = append(f.Suffix, pattern)
	default:
		f.Contains = append(f.Contains, pattern)
	}
	return f
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
