package jmdict

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/jmdict/internal/domain"
)

// xrefSeparator is U+30FB KATAKANA MIDDLE DOT.
const xrefSeparator = "・"

// DecodeCrossReference parses xref text of the form
//
//	TARGET [・READING] [・INDEX]
//
// where INDEX is a decimal sense number no greater than 255. READING is matched
// before INDEX, so with exactly two parts the second is always READING, digits
// included: "食う・1" has reading "1" and no index.
func DecodeCrossReference(text string, offset int64) (domain.CrossReference, error) {
	malformed := func() (domain.CrossReference, error) {
		return domain.CrossReference{}, domain.NewParseErrorRaw(domain.ErrMalformedCrossReference, tagXref, offset, text)
	}

	parts := strings.Split(text, xrefSeparator)
	if len(parts) > 3 {
		return malformed()
	}
	for _, p := range parts {
		if p == "" {
			return malformed()
		}
	}

	ref := domain.CrossReference{Target: parts[0]}
	switch len(parts) {
	case 2:
		reading := parts[1]
		ref.Reading = &reading
	case 3:
		idx, ok := parseSenseIndex(parts[2])
		if !ok {
			return malformed()
		}
		reading := parts[1]
		ref.Reading = &reading
		ref.SenseIndex = &idx
	}
	return ref, nil
}

func parseSenseIndex(s string) (uint8, bool) {
	if !isDigits(s) {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
