// Package engine orchestrates the per-file classification pipeline: extract,
// truncate, classify, resolve. Every failure past startup degrades to the
// fallback category so one bad file can never stop the watch loop.
package engine

import (
	"context"

	"github.com/docsort/docsort/internal/model"
)

// TextExtractor produces plain text from a file on disk.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// Classifier asks the generation backend for a category name. The returned
// string is raw model output; validation happens in Resolve.
type Classifier interface {
	Classify(ctx context.Context, filename, contents string, categories *model.CategorySet) (string, error)
}
