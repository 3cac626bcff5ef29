package listing

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const nightSuffix = "night"

// ExtractRate parses the numeric nightly rate out of a price label such as
// "$200/night". One leading currency symbol and a trailing "/night" are
// stripped before parsing. A label that does not parse yields 0, so
// malformed prices sort as the cheapest.
func ExtractRate(label string) float64 {
	s := strings.TrimSpace(label)

	if r, size := utf8.DecodeRuneInString(s); size > 0 && unicode.Is(unicode.Sc, r) {
		s = strings.TrimSpace(s[size:])
	}

	if strings.HasSuffix(s, nightSuffix) {
		rest := strings.TrimSpace(strings.TrimSuffix(s, nightSuffix))
		if strings.HasSuffix(rest, "/") {
			s = strings.TrimSpace(strings.TrimSuffix(rest, "/"))
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
