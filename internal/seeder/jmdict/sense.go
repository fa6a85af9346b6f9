package jmdict

import (
	"github.com/heartmarshall/jmdict/internal/domain"
	"github.com/heartmarshall/jmdict/internal/xmlevent"
)

// senseField is the leaf element currently open inside <sense>.
type senseField uint8

const (
	senseNone senseField = iota
	senseHeadwordRestriction
	senseReadingRestriction
	sensePartOfSpeech
	senseCrossReference
	senseGloss
	// senseUnknown covers ant, field, misc, s_inf, lsource, dial and anything newer.
	senseUnknown
)

var senseFields = map[string]senseField{
	tagStagk: senseHeadwordRestriction,
	tagStagr: senseReadingRestriction,
	tagPos:   sensePartOfSpeech,
	tagXref:  senseCrossReference,
	tagGloss: senseGloss,
}

// parseSense consumes events up to and including </sense>.
func parseSense(src EventSource, sink Sink) (domain.Sense, error) {
	var (
		sense domain.Sense
		field = senseNone
	)

	for {
		ev, err := src.Next()
		if err != nil {
			return domain.Sense{}, err
		}

		switch ev.Kind {
		case xmlevent.KindStart:
			f, ok := senseFields[ev.Name]
			if !ok {
				senseGroup.unknownTag(sink, src.Offset(), ev.Name)
				f = senseUnknown
			}
			if f == senseGloss {
				if err := adoptLanguage(&sense, ev, src.Offset()); err != nil {
					return domain.Sense{}, err
				}
			}
			field = f

		case xmlevent.KindEnd:
			if ev.Name == tagSense {
				return sense, nil
			}
			field = senseNone

		case xmlevent.KindText:
			switch field {
			case senseHeadwordRestriction:
				sense.HeadwordRestriction = append(sense.HeadwordRestriction, ev.Text)
			case senseReadingRestriction:
				sense.ReadingRestriction = append(sense.ReadingRestriction, ev.Text)
			case sensePartOfSpeech:
				code, err := DecodeEntity(ev.Raw, src.Offset())
				if err != nil {
					return domain.Sense{}, err
				}
				sense.PartsOfSpeech = append(sense.PartsOfSpeech, code)
			case senseCrossReference:
				ref, err := DecodeCrossReference(ev.Text, src.Offset())
				if err != nil {
					return domain.Sense{}, err
				}
				sense.CrossReferences = append(sense.CrossReferences, ref)
			case senseGloss:
				sense.Glosses = append(sense.Glosses, ev.Text)
			case senseNone:
				senseGroup.unexpectedText(sink, src.Offset(), ev.Text)
			}

		case xmlevent.KindEOF:
			return domain.Sense{}, senseGroup.unexpectedEOF(src.Offset())
		}
	}
}

// adoptLanguage hoists the gloss xml:lang onto the sense. The first annotated
// gloss sets it; a later gloss with a different value is an error.
func adoptLanguage(sense *domain.Sense, ev xmlevent.Event, offset int64) error {
	lang, ok := ev.Attr(attrLang)
	if !ok {
		return nil
	}
	if sense.Language == nil {
		sense.Language = &lang
		return nil
	}
	if *sense.Language != lang {
		return domain.NewParseErrorRaw(domain.ErrInconsistentLanguage, tagSense, offset, lang)
	}
	return nil
}
