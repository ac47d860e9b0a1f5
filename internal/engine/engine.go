package engine

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/docsort/docsort/internal/model"
)

// DefaultMaxInputChars bounds how much document text reaches the prompt.
const DefaultMaxInputChars = 8000

// DefaultFallbackCategory is reported whenever classification cannot produce
// a valid category.
const DefaultFallbackCategory = "uncategorized"

// Config wires an Engine.
type Config struct {
	Extractor     TextExtractor
	Classifier    Classifier
	Categories    *model.CategorySet
	Fallback      string
	MaxInputChars int
	Logger        *slog.Logger
}

// Engine runs the classification pipeline for one file at a time.
type Engine struct {
	extractor     TextExtractor
	classifier    Classifier
	categories    *model.CategorySet
	logger        *slog.Logger
	fallback      string
	maxInputChars int
}

// New validates the configuration and builds an Engine.
func New(cfg Config) (*Engine, error) {
	if cfg.Extractor == nil {
		return nil, fmt.Errorf("extractor is required")
	}
	if cfg.Classifier == nil {
		return nil, fmt.Errorf("classifier is required")
	}
	if cfg.Categories == nil {
		return nil, fmt.Errorf("category set is required")
	}
	if cfg.Fallback == "" {
		cfg.Fallback = DefaultFallbackCategory
	}
	if cfg.MaxInputChars <= 0 {
		cfg.MaxInputChars = DefaultMaxInputChars
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Engine{
		extractor:     cfg.Extractor,
		classifier:    cfg.Classifier,
		categories:    cfg.Categories,
		logger:        cfg.Logger,
		fallback:      cfg.Fallback,
		maxInputChars: cfg.MaxInputChars,
	}, nil
}

// Process classifies a single file. It always returns a Classification whose
// Category is either a member of the category set or the fallback; errors in
// any stage are logged and degrade to the fallback instead of propagating.
func (e *Engine) Process(ctx context.Context, path string) model.Classification {
	filename := filepath.Base(path)

	contents, err := e.extractor.Extract(ctx, path)
	if err != nil {
		e.logger.Warn("could not extract text",
			"file", filename, "error", err)
		return e.fallbackResult(filename)
	}

	contents, truncated := truncate(contents, e.maxInputChars)
	if truncated {
		e.logger.Info("truncating document text",
			"file", filename, "max_chars", e.maxInputChars)
	}

	raw, err := e.classifier.Classify(ctx, filename, contents, e.categories)
	if err != nil {
		e.logger.Error("classification failed",
			"file", filename, "error", err)
		return e.fallbackResult(filename)
	}

	category, matched := Resolve(raw, e.categories, e.fallback)
	if !matched {
		e.logger.Warn("invalid category from model",
			"file", filename, "output", raw, "fallback", e.fallback)
	}

	return model.Classification{
		File:     filename,
		Category: category,
		Fallback: !matched,
	}
}

// Fallback returns the configured fallback category name.
func (e *Engine) Fallback() string {
	return e.fallback
}

func (e *Engine) fallbackResult(filename string) model.Classification {
	return model.Classification{
		File:     filename,
		Category: e.fallback,
		Fallback: true,
	}
}

// truncate hard-cuts text to at most limit characters. The cut counts runes,
// not bytes, so it never splits a UTF-8 sequence.
func truncate(text string, limit int) (string, bool) {
	runes := []rune(text)
	if len(runes) <= limit {
		return text, false
	}
	return string(runes[:limit]), true
}
