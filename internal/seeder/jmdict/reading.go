package jmdict

import (
	"github.com/heartmarshall/jmdict/internal/domain"
	"github.com/heartmarshall/jmdict/internal/xmlevent"
)

// readingField is the leaf element currently open inside <r_ele>.
type readingField uint8

const (
	readingNone readingField = iota
	readingText
	readingRestriction
	readingCategory
	readingPriority
	// readingFlag covers re_nokanji, which carries no text.
	readingFlag
	readingUnknown
)

var readingFields = map[string]readingField{
	tagReb:       readingText,
	tagReNoKanji: readingFlag,
	tagReRestr:   readingRestriction,
	tagReInf:     readingCategory,
	tagRePri:     readingPriority,
}

// parseReading consumes events up to and including </r_ele>.
func parseReading(src EventSource, sink Sink) (domain.ReadingGroup, error) {
	var (
		rd    domain.ReadingGroup
		field = readingNone
	)

	for {
		ev, err := src.Next()
		if err != nil {
			return domain.ReadingGroup{}, err
		}

		switch ev.Kind {
		case xmlevent.KindStart:
			f, ok := readingFields[ev.Name]
			if !ok {
				readingGroup.unknownTag(sink, src.Offset(), ev.Name)
				f = readingUnknown
			}
			switch f {
			case readingFlag:
				rd.NoHeadword = true
			case readingText:
				rd.Text = ""
			}
			field = f

		case xmlevent.KindEnd:
			if ev.Name == tagREle {
				if err := readingGroup.checkKeyText(rd.Text, src.Offset()); err != nil {
					return domain.ReadingGroup{}, err
				}
				return rd, nil
			}
			field = readingNone

		case xmlevent.KindText:
			switch field {
			case readingText:
				rd.Text += ev.Text
			case readingRestriction:
				rd.RestrictedTo = append(rd.RestrictedTo, ev.Text)
			case readingCategory:
				code, err := DecodeEntity(ev.Raw, src.Offset())
				if err != nil {
					return domain.ReadingGroup{}, err
				}
				rd.Categories = append(rd.Categories, code)
			case readingPriority:
				rd.Priorities = append(rd.Priorities, ev.Text)
			case readingNone, readingFlag:
				readingGroup.unexpectedText(sink, src.Offset(), ev.Text)
			}

		case xmlevent.KindEOF:
			return domain.ReadingGroup{}, readingGroup.unexpectedEOF(src.Offset())
		}
	}
}
