package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/jmdict/internal/config"
	"github.com/heartmarshall/jmdict/internal/seeder/jmdict"
)

// Run parses the JMdict file named by cfg. When cfg.Dump is set, every entry is
// written to out as one JSON object per line.
func Run(ctx context.Context, log *slog.Logger, cfg config.JMdictConfig, out io.Writer) (jmdict.ParseResult, error) {
	if cfg.Path == "" {
		return jmdict.ParseResult{}, fmt.Errorf("jmdict path is not set")
	}
	if err := ctx.Err(); err != nil {
		return jmdict.ParseResult{}, err
	}

	log = log.With(slog.String("run_id", uuid.NewString()))
	log.Info("starting parse",
		slog.String("version", BuildVersion()),
		slog.String("path", cfg.Path),
	)

	start := time.Now()
	result, err := jmdict.Parse(cfg.Path, jmdict.Options{
		Logger:      log,
		ReportEvery: cfg.ReportEvery,
	})
	if err != nil {
		log.Error("parse failed",
			slog.String("error", err.Error()),
			slog.Duration("duration", time.Since(start)),
		)
		return jmdict.ParseResult{}, fmt.Errorf("parse %s: %w", cfg.Path, err)
	}

	log.Info("parse completed",
		slog.Int("entries", result.Stats.Entries),
		slog.Int("headwords", result.Stats.Headwords),
		slog.Int("readings", result.Stats.Readings),
		slog.Int("senses", result.Stats.Senses),
		slog.Int("glosses", result.Stats.Glosses),
		slog.Int("xrefs", result.Stats.CrossReferences),
		slog.Int("warnings", result.Stats.Warnings),
		slog.Int("entities", len(result.Entities)),
		slog.Duration("duration", time.Since(start)),
	)

	if cfg.Dump {
		if err := dump(ctx, out, result); err != nil {
			return jmdict.ParseResult{}, fmt.Errorf("dump entries: %w", err)
		}
	}

	return result, nil
}

func dump(ctx context.Context, out io.Writer, result jmdict.ParseResult) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	for i := range result.Entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := enc.Encode(&result.Entries[i]); err != nil {
			return err
		}
	}
	return nil
}
