package jmdict

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/jmdict/internal/domain"
)

// unknownPolicy decides what happens to children a group does not model.
type unknownPolicy uint8

const (
	// warnUnknown reports unrecognized tags and stray text to the sink.
	warnUnknown unknownPolicy = iota
	// ignoreUnknown drops them silently. Used where the schema is only partly modeled.
	ignoreUnknown
)

// group describes one container element and its diagnostics policy.
type group struct {
	name    string
	unknown unknownPolicy
}

var (
	entryGroup    = group{name: tagEntry, unknown: warnUnknown}
	headwordGroup = group{name: tagKEle, unknown: warnUnknown}
	readingGroup  = group{name: tagREle, unknown: warnUnknown}
	senseGroup    = group{name: tagSense, unknown: ignoreUnknown}
)

func (g group) unknownTag(sink Sink, offset int64, tag string) {
	if g.unknown == ignoreUnknown {
		return
	}
	sink.Warn(offset, g.name, fmt.Sprintf("unrecognized member element %s", tag))
}

func (g group) unexpectedText(sink Sink, offset int64, text string) {
	if g.unknown == ignoreUnknown {
		return
	}
	sink.Warn(offset, g.name, fmt.Sprintf("unexpected text %q", text))
}

func (g group) unexpectedEOF(offset int64) error {
	return domain.NewParseError(domain.ErrUnexpectedEOF, g.name, offset)
}

// checkKeyText enforces the keb/reb invariant: non-empty and already trimmed.
func (g group) checkKeyText(text string, offset int64) error {
	if text == "" {
		return domain.NewParseError(domain.ErrEmptyText, g.name, offset)
	}
	if strings.TrimSpace(text) != text {
		return domain.NewParseErrorRaw(domain.ErrPaddedText, g.name, offset, text)
	}
	return nil
}
