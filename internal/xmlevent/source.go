// Package xmlevent turns an XML byte stream into the flat start/end/text event
// sequence consumed by the dictionary parsers.
//
// Whitespace-only text is dropped, other text is passed through untrimmed, and
// self-closing tags arrive as a start/end pair. General entity references are
// never expanded: &name; is delivered as the literal text "&name;" whether or not
// the DOCTYPE declares it. Text events also carry their raw, still escaped, source
// bytes so callers can check entity literals exactly as written.
package xmlevent

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"maps"
	"regexp"

	"github.com/heartmarshall/jmdict/internal/domain"
)

// xmlNamespace is what encoding/xml reports for the reserved "xml" prefix.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// entityDecl matches a general entity declaration with a quoted literal value.
// Only used to collect descriptions; references parse without a declaration.
var entityDecl = regexp.MustCompile(`<!ENTITY\s+([^\s%"]+)\s+"([^"]*)"\s*>`)

// Kind identifies an event type.
type Kind uint8

const (
	KindEOF Kind = iota
	KindStart
	KindEnd
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	case KindText:
		return "text"
	default:
		return "eof"
	}
}

// Attr is one attribute of a start tag. Prefixed names keep the "xml:" prefix.
type Attr struct {
	Name  string
	Value string
}

// Event is one structural event. Name is set for start and end events, Attrs for
// start events. Text events carry the unescaped Text and the source bytes in Raw.
type Event struct {
	Kind  Kind
	Name  string
	Attrs []Attr
	Text  string
	Raw   string
}

// Attr returns the value of the named attribute.
func (e Event) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Option configures a Source.
type Option func(*Source)

// WithEntities registers entity descriptions up front, for fragments without
// a DOCTYPE. Keys are entity names, values their descriptions.
func WithEntities(entities map[string]string) Option {
	return func(s *Source) {
		maps.Copy(s.entities, entities)
	}
}

// Source reads events from an XML document. It is not safe for concurrent use.
type Source struct {
	dec      *xml.Decoder
	in       *rawReader
	entities map[string]string
	done     bool
}

// NewSource creates a Source reading from r.
func NewSource(r io.Reader, opts ...Option) *Source {
	refs := make(map[string]string)
	in := newRawReader(r, refs)
	dec := xml.NewDecoder(in)
	dec.Entity = refs
	s := &Source{
		dec:      dec,
		in:       in,
		entities: make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Entities returns the declared entity names and their descriptions.
func (s *Source) Entities() map[string]string {
	return maps.Clone(s.entities)
}

// Offset returns the byte offset just past the most recently returned event.
func (s *Source) Offset() int64 {
	return s.dec.InputOffset()
}

// Next returns the next event. At end of input it returns a KindEOF event, and
// keeps doing so on later calls. Markup errors are returned as *domain.ParseError
// wrapping domain.ErrMalformedMarkup.
func (s *Source) Next() (Event, error) {
	if s.done {
		return Event{Kind: KindEOF}, nil
	}

	for {
		from := s.dec.InputOffset()
		s.in.discardBefore(from)

		tok, err := s.dec.Token()
		if errors.Is(err, io.EOF) {
			s.done = true
			return Event{Kind: KindEOF}, nil
		}
		if err != nil {
			return Event{}, domain.NewParseError(
				fmt.Errorf("%w: %w", domain.ErrMalformedMarkup, err), "", s.Offset())
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return Event{Kind: KindStart, Name: t.Name.Local, Attrs: convertAttrs(t.Attr)}, nil
		case xml.EndElement:
			return Event{Kind: KindEnd, Name: t.Name.Local}, nil
		case xml.CharData:
			if len(bytes.TrimSpace(t)) == 0 {
				continue
			}
			return Event{
				Kind: KindText,
				Text: string(t),
				Raw:  string(s.in.slice(from, s.dec.InputOffset())),
			}, nil
		case xml.Directive:
			s.scanDoctype(t)
		}
		// Comments and processing instructions are not surfaced.
	}
}

// scanDoctype records the descriptions declared in a DOCTYPE internal subset.
func (s *Source) scanDoctype(d xml.Directive) {
	if !bytes.HasPrefix(d, []byte("DOCTYPE")) {
		return
	}
	for _, m := range entityDecl.FindAllSubmatch(d, -1) {
		s.entities[string(m[1])] = string(m[2])
	}
}

func convertAttrs(attrs []xml.Attr) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attr, 0, len(attrs))
	for _, a := range attrs {
		name := a.Name.Local
		switch a.Name.Space {
		case "":
		case xmlNamespace, "xml":
			name = "xml:" + name
		default:
			name = a.Name.Space + ":" + name
		}
		out = append(out, Attr{Name: name, Value: a.Value})
	}
	return out
}
