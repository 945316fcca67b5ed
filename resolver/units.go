// File: units.go
// Role: SI-prefixed unit-literal parsing (§4.1's "unit handling").
//
// A literal matching <number><prefix?><unit> converts to base units,
// magnitude only (the unit name itself is discarded after scaling —
// the resolver does not track dimensional types). Anything that does
// not match this shape — including a bare number with no suffix, which
// is handled as a plain literal — falls through to symbolic parsing.
package resolver

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var literalPattern = regexp.MustCompile(`^\s*([+-]?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?)\s*([a-zA-ZµΩ]*)\s*$`)

var siPrefixes = map[string]float64{
	"f": 1e-15,
	"p": 1e-12,
	"n": 1e-9,
	"u": 1e-6,
	"µ": 1e-6,
	"m": 1e-3,
	"k": 1e3,
	"K": 1e3,
	"M": 1e6,
	"G": 1e9,
	"T": 1e12,
}

// knownUnits lists the bare (no-prefix) unit suffixes the resolver
// recognizes, so that e.g. "m" alone (meters) is not mistaken for the
// milli- prefix applied to an empty unit.
var knownUnits = map[string]bool{
	"ohm": true, "Ohm": true, "Ω": true,
	"F": true, "H": true, "Hz": true,
	"s": true, "V": true, "A": true, "W": true, "m": true, "dB": true,
}

// ParseLiteral attempts to parse s as a plain number or a
// <number><SI-prefix?><unit> literal. ok is false if s is not of this
// shape at all (it should then be handed to the symbolic parser).
func ParseLiteral(s string) (value float64, ok bool) {
	m := literalPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	numPart, suffix := m[1], m[2]
	num, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, false
	}
	if suffix == "" {
		return num, true
	}
	return parseUnitSuffix(num, suffix)
}

func parseUnitSuffix(num float64, suffix string) (float64, bool) {
	if knownUnits[suffix] {
		return num, true
	}
	// Try a one-rune SI prefix followed by a known (possibly empty-body) unit.
	if _, size := utf8.DecodeRuneInString(suffix); size > 0 {
		prefix, rest := suffix[:size], suffix[size:]
		if scale, hasPrefix := siPrefixes[prefix]; hasPrefix && (knownUnits[rest] || rest == "") {
			return num * scale, true
		}
	}
	// Case-insensitive unit match as a last resort (e.g. "ohm" vs "OHM").
	if knownUnits[strings.ToLower(suffix)] {
		return num, true
	}
	return 0, false
}
