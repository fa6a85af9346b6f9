package jmdict

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/jmdict/internal/domain"
	"github.com/heartmarshall/jmdict/internal/xmlevent"
)

// parseEntry consumes events up to and including </entry>.
func parseEntry(src EventSource, sink Sink) (domain.Entry, error) {
	var (
		entry domain.Entry
		inSeq bool
		seq   strings.Builder
	)

	for {
		ev, err := src.Next()
		if err != nil {
			return domain.Entry{}, err
		}

		switch ev.Kind {
		case xmlevent.KindStart:
			switch ev.Name {
			case tagEntSeq:
				if inSeq {
					return domain.Entry{}, domain.NewParseError(domain.ErrNestedIdentifier, tagEntry, src.Offset())
				}
				inSeq = true
				seq.Reset()
			case tagKEle:
				hw, err := parseHeadword(src, sink)
				if err != nil {
					return domain.Entry{}, err
				}
				entry.Headwords = append(entry.Headwords, hw)
			case tagREle:
				rd, err := parseReading(src, sink)
				if err != nil {
					return domain.Entry{}, err
				}
				entry.Readings = append(entry.Readings, rd)
			case tagSense:
				sense, err := parseSense(src, sink)
				if err != nil {
					return domain.Entry{}, err
				}
				entry.Senses = append(entry.Senses, sense)
			default:
				entryGroup.unknownTag(sink, src.Offset(), ev.Name)
			}

		case xmlevent.KindEnd:
			switch ev.Name {
			case tagEntry:
				return finishEntry(entry, src.Offset())
			case tagEntSeq:
				if !inSeq {
					return domain.Entry{}, domain.NewParseError(domain.ErrMismatchedIdentifier, tagEntry, src.Offset())
				}
				inSeq = false
				id, err := parseSequence(seq.String(), src.Offset())
				if err != nil {
					return domain.Entry{}, err
				}
				entry.ID = id
			}

		case xmlevent.KindText:
			if inSeq {
				seq.WriteString(ev.Text)
			}

		case xmlevent.KindEOF:
			return domain.Entry{}, entryGroup.unexpectedEOF(src.Offset())
		}
	}
}

// parseSequence converts accumulated ent_seq text. Empty text leaves the id unset.
func parseSequence(text string, offset int64) (uint32, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, domain.NewParseErrorRaw(domain.ErrInvalidIdentifier, tagEntry, offset, text)
	}
	return uint32(n), nil
}

func finishEntry(entry domain.Entry, offset int64) (domain.Entry, error) {
	if entry.ID == 0 {
		return domain.Entry{}, domain.NewParseError(domain.ErrIdentifierNotFound, tagEntry, offset)
	}
	if len(entry.Readings) == 0 {
		return domain.Entry{}, domain.NewParseError(domain.ErrNoReadings, tagEntry, offset)
	}
	return entry, nil
}
