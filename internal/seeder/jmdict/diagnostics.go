package jmdict

import (
	"log/slog"
)

// Sink receives non-fatal diagnostics. Implementations must not influence parsing.
type Sink interface {
	Warn(offset int64, parent, message string)
}

// Warning is one recorded diagnostic.
type Warning struct {
	Offset  int64
	Parent  string
	Message string
}

// Recorder keeps every warning in memory.
type Recorder struct {
	Warnings []Warning
}

// Warn implements Sink.
func (r *Recorder) Warn(offset int64, parent, message string) {
	r.Warnings = append(r.Warnings, Warning{Offset: offset, Parent: parent, Message: message})
}

// LogSink writes warnings to a structured logger.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a LogSink. A nil logger means slog.Default().
func NewLogSink(log *slog.Logger) *LogSink {
	if log == nil {
		log = slog.Default()
	}
	return &LogSink{log: log}
}

// Warn implements Sink.
func (s *LogSink) Warn(offset int64, parent, message string) {
	s.log.Warn(message,
		slog.String("parent", parent),
		slog.Int64("offset", offset),
	)
}

// Discard drops all warnings.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) Warn(int64, string, string) {}

// countingSink forwards to another sink and counts warnings for Stats.
type countingSink struct {
	next  Sink
	count int
}

func (c *countingSink) Warn(offset int64, parent, message string) {
	c.count++
	c.next.Warn(offset, parent, message)
}
