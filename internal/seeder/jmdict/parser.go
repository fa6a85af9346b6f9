// Package jmdict parses the JMdict Japanese-multilingual dictionary XML into
// domain entries in a single streaming pass.
// Pure function: file path in, domain structs out. No database dependencies.
//
// Category codes (ke_inf, re_inf, pos) are kept as the entity names used by the
// document, e.g. "v1" or "adj-i". Cross references are decoded but not resolved.
// The first hard error aborts the whole document.
package jmdict

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/jmdict/internal/domain"
	"github.com/heartmarshall/jmdict/internal/xmlevent"
)

// EventSource is the event cursor shared by all assemblers. Each assembler
// reads from it only for the duration of its own call.
type EventSource interface {
	Next() (xmlevent.Event, error)
	Offset() int64
}

// Reader yields entries one at a time. After the first error, every call
// returns that error again.
type Reader struct {
	src  EventSource
	sink Sink
	err  error
}

// NewReader creates a Reader. A nil sink discards warnings.
func NewReader(src EventSource, sink Sink) *Reader {
	if sink == nil {
		sink = Discard
	}
	return &Reader{src: src, sink: sink}
}

// Next returns the next entry in document order, or io.EOF once the document ends.
// Top-level events other than <entry> are skipped.
func (r *Reader) Next() (domain.Entry, error) {
	if r.err != nil {
		return domain.Entry{}, r.err
	}

	for {
		ev, err := r.src.Next()
		if err != nil {
			r.err = err
			return domain.Entry{}, err
		}

		switch {
		case ev.Kind == xmlevent.KindEOF:
			r.err = io.EOF
			return domain.Entry{}, io.EOF
		case ev.Kind == xmlevent.KindStart && ev.Name == tagEntry:
			entry, err := parseEntry(r.src, r.sink)
			if err != nil {
				r.err = err
				return domain.Entry{}, err
			}
			return entry, nil
		}
	}
}

// ParseAll reads every entry from src. On error no entries are returned.
func ParseAll(src EventSource, sink Sink) ([]domain.Entry, error) {
	r := NewReader(src, sink)
	var entries []domain.Entry
	for {
		entry, err := r.Next()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
}

// Options tunes Parse.
type Options struct {
	// Logger receives warnings and progress. Nil means slog.Default().
	Logger *slog.Logger
	// Sink overrides where warnings go. Nil means a LogSink on Logger.
	Sink Sink
	// ReportEvery logs progress after this many entries. Zero disables it.
	ReportEvery int
	// Entities adds entity descriptions for documents without a DOCTYPE.
	// References parse either way; this only fills ParseResult.Entities.
	Entities map[string]string
}

// ParseResult holds the parsed document.
type ParseResult struct {
	Entries []domain.Entry
	// Entities maps each declared entity name to its description,
	// e.g. "v1" → "Ichidan verb".
	Entities map[string]string
	Stats    Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	Entries         int
	Headwords       int
	Readings        int
	Senses          int
	Glosses         int
	CrossReferences int
	Warnings        int
}

func (s *Stats) add(e domain.Entry) {
	s.Entries++
	s.Headwords += len(e.Headwords)
	s.Readings += len(e.Readings)
	s.Senses += len(e.Senses)
	for _, sense := range e.Senses {
		s.Glosses += len(sense.Glosses)
		s.CrossReferences += len(sense.CrossReferences)
	}
}

// Parse reads a JMdict XML file.
func Parse(filePath string, opts Options) (ParseResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ParseStream(f, opts)
}

// ParseStream reads a JMdict XML document from r.
func ParseStream(r io.Reader, opts Options) (ParseResult, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	sink := opts.Sink
	if sink == nil {
		sink = NewLogSink(log)
	}
	counter := &countingSink{next: sink}

	var srcOpts []xmlevent.Option
	if len(opts.Entities) > 0 {
		srcOpts = append(srcOpts, xmlevent.WithEntities(opts.Entities))
	}
	src := xmlevent.NewSource(r, srcOpts...)
	reader := NewReader(src, counter)

	var result ParseResult
	start := time.Now()
	for {
		entry, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return ParseResult{}, err
		}
		result.Entries = append(result.Entries, entry)
		result.Stats.add(entry)

		if opts.ReportEvery > 0 && result.Stats.Entries%opts.ReportEvery == 0 {
			log.Info("jmdict progress",
				slog.Int("entries", result.Stats.Entries),
				slog.Int64("offset", src.Offset()),
				slog.Duration("elapsed", time.Since(start)),
			)
		}
	}

	result.Stats.Warnings = counter.count
	result.Entities = src.Entities()
	return result, nil
}
