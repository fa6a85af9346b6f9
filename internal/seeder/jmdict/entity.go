package jmdict

import (
	"strings"

	"github.com/heartmarshall/jmdict/internal/domain"
)

// DecodeEntity unwraps a category code written as an entity literal: "&adj-i;"
// yields "adj-i". The literal must start with '&', end with ';' and contain
// neither delimiter in between. raw is the escaped source text, so "&amp;v1;"
// is rejected, as is the bare "&;".
// offset is reported in the error.
func DecodeEntity(raw string, offset int64) (string, error) {
	if len(raw) < 3 || raw[0] != '&' || raw[len(raw)-1] != ';' {
		return "", domain.NewParseErrorRaw(domain.ErrMalformedEntity, "", offset, raw)
	}
	name := raw[1 : len(raw)-1]
	if strings.ContainsAny(name, "&;") {
		return "", domain.NewParseErrorRaw(domain.ErrMalformedEntity, "", offset, raw)
	}
	return name, nil
}
