// Package units parses the human-readable size and age literals accepted on
// the command line and in selection queries.
package units

import (
	"math"
	"strconv"
	"strings"
)

var sizeMultipliers = map[string]float64{
	"":   1,
	"b":  1,
	"k":  1 << 10,
	"kb": 1 << 10,
	"m":  1 << 20,
	"mb": 1 << 20,
	"g":  1 << 30,
	"gb": 1 << 30,
	"t":  1 << 40,
	"tb": 1 << 40,
}

var ageMultipliers = map[string]float64{
	"":  1,
	"s": 1,
	"m": 60,
	"h": 3600,
	"d": 86400,
	"w": 604800,
}

// ParseSize parses literals such as "100MB", "64k" or "1.5G" into bytes.
// Multipliers are binary (1K = 1024).
func ParseSize(s string) (uint64, bool) {
	return parse(s, sizeMultipliers)
}

// ParseAge parses literals such as "30s", "2h", "1d" or "1.5w" into seconds.
func ParseAge(s string) (uint64, bool) {
	return parse(s, ageMultipliers)
}

func parse(s string, multipliers map[string]float64) (uint64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	num, unit := splitNumUnit(s)
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}

	mul, ok := multipliers[strings.ToLower(unit)]
	if !ok {
		return 0, false
	}

	product := n * mul
	if product >= math.MaxUint64 {
		return math.MaxUint64, true
	}
	return uint64(product), true
}

// splitNumUnit splits "<number><unit>" at the first byte that is neither a
// digit nor a dot.
func splitNumUnit(s string) (string, string) {
	idx := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx:])
}
