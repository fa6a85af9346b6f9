package jmdict

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/jmdict/internal/xmlevent"
)

// testEntities mirrors the handful of JMdict DTD entities used by fixtures.
// References parse without them; they only feed Source.Entities.
var testEntities = map[string]string{
	"v1":     "Ichidan verb",
	"v5u":    "Godan verb with 'u' ending",
	"adj-i":  "adjective (keiyoushi)",
	"n":      "noun (common) (futsuumeishi)",
	"ateji":  "ateji (phonetic) reading",
	"ik":     "word containing irregular kana usage",
	"uk":     "word usually written using kana alone",
	"vulg":   "vulgar expression or word",
	"exp":    "expressions (phrases, clauses, etc.)",
	"gikun":  "gikun (meaning as reading) or jukujikun (special kanji reading)",
	"oK":     "word containing out-dated kanji or kanji usage",
	"sK":     "search-only kanji form",
	"rK":     "rarely used kanji form",
	"io":     "irregular okurigana usage",
	"arch":   "archaic",
	"v5r":    "Godan verb with 'ru' ending",
	"vt":     "transitive verb",
	"vi":     "intransitive verb",
	"adv":    "adverb (fukushi)",
	"int":    "interjection (kandoushi)",
	"ok":     "out-dated or obsolete kana usage",
	"hon":    "honorific or respectful (sonkeigo) language",
	"col":    "colloquial",
	"male":   "male term or language",
	"fem":    "female term or language",
	"sl":     "slang",
	"on-mim": "onomatopoeic or mimetic word",
	"food":   "food, cooking",
	"iK":     "word containing irregular kanji usage",
}

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

// newSource builds an event source over an XML fragment.
func newSource(doc string) *xmlevent.Source {
	return xmlevent.NewSource(strings.NewReader(doc), xmlevent.WithEntities(testEntities))
}

// openAt builds a source over doc and consumes the opening tag, leaving the
// cursor where an assembler expects it.
func openAt(t *testing.T, doc, tag string) *xmlevent.Source {
	t.Helper()
	src := newSource(doc)
	ev, err := src.Next()
	require.NoError(t, err)
	require.Equal(t, xmlevent.KindStart, ev.Kind)
	require.Equal(t, tag, ev.Name)
	return src
}

// sliceSource replays a fixed event list, for sequences a real decoder rejects.
type sliceSource struct {
	events []xmlevent.Event
	pos    int
}

func (s *sliceSource) Next() (xmlevent.Event, error) {
	if s.pos >= len(s.events) {
		return xmlevent.Event{Kind: xmlevent.KindEOF}, nil
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

func (s *sliceSource) Offset() int64 { return int64(s.pos) }

func start(name string, attrs ...xmlevent.Attr) xmlevent.Event {
	return xmlevent.Event{Kind: xmlevent.KindStart, Name: name, Attrs: attrs}
}

func end(name string) xmlevent.Event {
	return xmlevent.Event{Kind: xmlevent.KindEnd, Name: name}
}

func text(s string) xmlevent.Event {
	return xmlevent.Event{Kind: xmlevent.KindText, Text: s, Raw: s}
}

func ptr[T any](v T) *T { return &v }
