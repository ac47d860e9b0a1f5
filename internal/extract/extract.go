// Package extract produces best-effort plain text from files on disk.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DefaultMaxPDFPages bounds how many pages of a PDF are read.
const DefaultMaxPDFPages = 10

// ErrNoText indicates a file yielded no extractable text.
var ErrNoText = errors.New("no extractable text found")

// Extractor reads files and returns their text content. PDFs are read page
// by page up to a page ceiling; everything else is treated as plain text.
type Extractor struct {
	logger      *slog.Logger
	maxPDFPages int
}

// NewExtractor creates an Extractor. A maxPDFPages of zero or less selects
// the default.
func NewExtractor(maxPDFPages int, logger *slog.Logger) *Extractor {
	if maxPDFPages <= 0 {
		maxPDFPages = DefaultMaxPDFPages
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{maxPDFPages: maxPDFPages, logger: logger}
}

// Extract returns the text content of the file at path. It fails when the
// file cannot be read or when the extracted text is empty or whitespace-only.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var (
		text string
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err = e.extractPDF(path)
	} else {
		text, err = extractPlainText(path)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w in %s", ErrNoText, filepath.Base(path))
	}

	return text, nil
}

// extractPDF reads at most maxPDFPages pages; pages beyond the ceiling are
// dropped with an informational log line.
func (e *Extractor) extractPDF(path string) (text string, err error) {
	// ledongthuc/pdf panics on some malformed files; convert to an error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parsing pdf %s: %v", filepath.Base(path), r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf %s: %w", filepath.Base(path), err)
	}
	defer func() { _ = f.Close() }()

	total := reader.NumPage()
	limit := total
	if limit > e.maxPDFPages {
		limit = e.maxPDFPages
		e.logger.Info("reading first pages of pdf only",
			"file", filepath.Base(path),
			"pages_read", limit,
			"pages_total", total)
	}

	var pages []string
	for i := 1; i <= limit; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			// A single unreadable page should not sink the document.
			e.logger.Debug("skipping unreadable pdf page",
				"file", filepath.Base(path), "page", i, "error", pageErr)
			continue
		}
		if content != "" {
			pages = append(pages, content)
		}
	}

	return strings.Join(pages, "\n"), nil
}

// extractPlainText reads the file as UTF-8 text, dropping any invalid byte
// sequences instead of failing.
func extractPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
