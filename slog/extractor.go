// Package slog provides logging decorators for recipeclip domain interfaces
// using the standard library structured logger.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/recipeclip"
)

// Ensure LoggingExtractor implements recipeclip.Extractor.
var _ recipeclip.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with outcome logging.
type LoggingExtractor struct {
	next   recipeclip.Extractor
	name   string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The name identifies
// the wrapped extractor in log output (e.g. "jsonld", "heuristic").
func NewLoggingExtractor(next recipeclip.Extractor, name string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, name: name, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(doc recipeclip.Document, sourceURL string) (*recipeclip.Recipe, error) {
	begin := time.Now()
	recipe, err := e.next.Extract(doc, sourceURL)

	attrs := []any{
		"extractor", e.name,
		"url", sourceURL,
		"duration", time.Since(begin),
	}
	if err != nil {
		e.logger.Info("extract", append(attrs, "err", err)...)
		return nil, err
	}

	e.logger.Info("extract", append(attrs,
		"title", recipe.Title,
		"ingredients", len(recipe.Ingredients),
		"instructions", len(recipe.Instructions),
	)...)
	return recipe, nil
}
