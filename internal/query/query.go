// Package query compiles the --select mini-language into a filter.
//
// Input is split on whitespace and every token is compiled on its own:
//
//	contains:foo  name:foo  prefix:2024_  suffix:.bak  ext:jpg
//	type:file  type:dir  hidden:true
//	age>2d  age<1h  size>10MB  size<1k
//
// "key=value" is accepted wherever "key:value" is. Tokens that cannot be
// compiled are skipped; CompileWithReport says which ones and why.
package query

import (
	"fmt"
	"strings"

	"file-go/internal/filter"
	"file-go/internal/units"
)

// Ignored describes a token that contributed nothing to the compiled filter.
type Ignored struct {
	Token  string
	Reason string
}

func (i Ignored) String() string {
	return fmt.Sprintf("%q: %s", i.Token, i.Reason)
}

// Compile turns query text into a filter, silently skipping malformed tokens.
func Compile(text string) filter.Filter {
	f, _ := CompileWithReport(text)
	return f
}

// CompileWithReport is Compile that also returns the skipped tokens in input
// order.
func CompileWithReport(text string) (filter.Filter, []Ignored) {
	var (
		f       filter.Filter
		ignored []Ignored
	)

	for _, tok := range strings.Fields(text) {
		if reason := apply(&f, tok); reason != "" {
			ignored = append(ignored, Ignored{Token: tok, Reason: reason})
		}
	}

	return f, ignored
}

// apply compiles tok into f and returns a non-empty reason when tok has no
// effect.
func apply(f *filter.Filter, tok string) string {
	switch {
	case strings.HasPrefix(tok, "age>"):
		return setBound(&f.MinAgeSecs, tok[4:], units.ParseAge, "age")
	case strings.HasPrefix(tok, "age<"):
		return setBound(&f.MaxAgeSecs, tok[4:], units.ParseAge, "age")
	case strings.HasPrefix(tok, "size>"):
		return setBound(&f.MinSize, tok[5:], units.ParseSize, "size")
	case strings.HasPrefix(tok, "size<"):
		return setBound(&f.MaxSize, tok[5:], units.ParseSize, "size")
	}

	idx := strings.IndexAny(tok, ":=")
	if idx < 0 {
		return "expected key:value, key=value or a comparison"
	}
	key, value := tok[:idx], tok[idx+1:]

	switch key {
	case "contains", "name":
		if value == "" {
			return "empty value"
		}
		f.Contains = append(f.Contains, value)
	case "prefix":
		if value == "" {
			return "empty value"
		}
		f.Prefix = append(f.Prefix, value)
	case "suffix":
		if value == "" {
			return "empty value"
		}
		f.Suffix = append(f.Suffix, value)
	case "ext":
		ext := strings.ToLower(strings.TrimPrefix(value, "."))
		if ext == "" {
			return "empty extension"
		}
		f.Exts = append(f.Exts, ext)
	case "type":
		switch value {
		case "file":
			f.OnlyFiles = true
		case "dir":
			f.OnlyDirs = true
		default:
			return "type must be file or dir"
		}
	case "hidden":
		f.IncludeHidden = isTruthy(value)
	default:
		return fmt.Sprintf("unknown key %q", key)
	}

	return ""
}

func setBound(dst **uint64, literal string, parse func(string) (uint64, bool), what string) string {
	v, ok := parse(literal)
	if !ok {
		return fmt.Sprintf("invalid %s %q", what, literal)
	}
	*dst = &v
	return ""
}

func isTruthy(value string) bool {
	switch value {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
