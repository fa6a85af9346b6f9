package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for every fatal parse condition. Wrapped in *ParseError.
var (
	ErrMalformedMarkup         = errors.New("malformed markup")
	ErrUnexpectedEOF           = errors.New("unexpected end of document")
	ErrMalformedEntity         = errors.New("malformed entity literal")
	ErrMalformedCrossReference = errors.New("malformed cross reference")
	ErrNestedIdentifier        = errors.New("nested ent_seq")
	ErrMismatchedIdentifier    = errors.New("mismatched ent_seq tags")
	ErrInvalidIdentifier       = errors.New("invalid ent_seq")
	ErrIdentifierNotFound      = errors.New("identifier not found")
	ErrNoReadings              = errors.New("no reading entries")
	ErrEmptyText               = errors.New("empty text")
	ErrPaddedText              = errors.New("leading or trailing whitespace")
	ErrInconsistentLanguage    = errors.New("inconsistent gloss language within one sense")
)

// ParseError is a fatal error raised while reading a document.
// Offset is the byte position in the input where it was detected.
type ParseError struct {
	Element string // enclosing element, may be empty
	Offset  int64
	Raw     string // offending text, may be empty
	Err     error
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Element != "" {
		msg = fmt.Sprintf("%s in %s", msg, e.Element)
	}
	msg = fmt.Sprintf("%s at position #%d", msg, e.Offset)
	if e.Raw != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Raw)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError creates a ParseError without raw text.
func NewParseError(err error, element string, offset int64) *ParseError {
	return &ParseError{Element: element, Offset: offset, Err: err}
}

// NewParseErrorRaw creates a ParseError carrying the offending text.
func NewParseErrorRaw(err error, element string, offset int64, raw string) *ParseError {
	return &ParseError{Element: element, Offset: offset, Raw: raw, Err: err}
}
