package jmdict

import (
	"github.com/heartmarshall/jmdict/internal/domain"
	"github.com/heartmarshall/jmdict/internal/xmlevent"
)

// headwordField is the leaf element currently open inside <k_ele>.
type headwordField uint8

const (
	headwordNone headwordField = iota
	headwordText
	headwordCategory
	headwordPriority
	headwordUnknown
)

var headwordFields = map[string]headwordField{
	tagKeb:   headwordText,
	tagKeInf: headwordCategory,
	tagKePri: headwordPriority,
}

// parseHeadword consumes events up to and including </k_ele>.
func parseHeadword(src EventSource, sink Sink) (domain.HeadwordGroup, error) {
	var (
		hw    domain.HeadwordGroup
		field = headwordNone
	)

	for {
		ev, err := src.Next()
		if err != nil {
			return domain.HeadwordGroup{}, err
		}

		switch ev.Kind {
		case xmlevent.KindStart:
			f, ok := headwordFields[ev.Name]
			if !ok {
				headwordGroup.unknownTag(sink, src.Offset(), ev.Name)
				f = headwordUnknown
			}
			if f == headwordText {
				// A repeated keb replaces the earlier one.
				hw.Text = ""
			}
			field = f

		case xmlevent.KindEnd:
			if ev.Name == tagKEle {
				if err := headwordGroup.checkKeyText(hw.Text, src.Offset()); err != nil {
					return domain.HeadwordGroup{}, err
				}
				return hw, nil
			}
			field = headwordNone

		case xmlevent.KindText:
			switch field {
			case headwordText:
				hw.Text += ev.Text
			case headwordCategory:
				code, err := DecodeEntity(ev.Raw, src.Offset())
				if err != nil {
					return domain.HeadwordGroup{}, err
				}
				hw.Categories = append(hw.Categories, code)
			case headwordPriority:
				hw.Priorities = append(hw.Priorities, ev.Text)
			case headwordNone:
				headwordGroup.unexpectedText(sink, src.Offset(), ev.Text)
			}

		case xmlevent.KindEOF:
			return domain.HeadwordGroup{}, headwordGroup.unexpectedEOF(src.Offset())
		}
	}
}
