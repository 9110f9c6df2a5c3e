package decoder

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rcliao/beatmap/internal/model"
)

var numericRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// coerceNumber parses s when it looks like a decimal number.
func coerceNumber(s string) (model.Number, bool) {
	s = strings.TrimSpace(s)
	if !numericRegex.MatchString(s) {
		return model.NaN(), false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return model.NaN(), false
	}
	return model.Number(f), true
}

// parseNumber parses s, yielding NaN for anything malformed.
func parseNumber(s string) model.Number {
	n, _ := coerceNumber(s)
	return n
}

// parseBits parses a bitmask field. Malformed input has no bits set.
func parseBits(s string) int {
	n, ok := coerceNumber(s)
	if !ok {
		return 0
	}
	return int(n)
}

// field returns fields[i] trimmed, and whether it is present and non-empty.
func field(fields []string, i int) (string, bool) {
	if i >= len(fields) {
		return "", false
	}
	f := strings.TrimSpace(fields[i])
	return f, f != ""
}
