package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/docsort/docsort/internal/model"
)

// DefaultMaxTokens caps the length of the model's reply. A category name
// needs very few tokens; the budget only exists to cut off a rambling model.
const DefaultMaxTokens = 80

// DefaultRequestTimeout bounds a single classification request, including a
// backend that opens a stream and never closes it.
const DefaultRequestTimeout = 60 * time.Second

// Classifier asks the generation backend to name a category for a document.
// It issues exactly one request per call and never retries.
type Classifier struct {
	client    Client
	logger    *slog.Logger
	maxTokens int
	timeout   time.Duration
}

// NewClassifier creates a Classifier on top of a backend client. Zero values
// for maxTokens and timeout select the defaults.
func NewClassifier(client Client, maxTokens int, timeout time.Duration, logger *slog.Logger) *Classifier {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		client:    client,
		logger:    logger,
		maxTokens: maxTokens,
		timeout:   timeout,
	}
}

// Classify builds the prompt for the document and folds the streamed reply
// into a single trimmed string. An empty reply is returned as "" with a nil
// error; deciding what to do with it belongs to the resolver. Transport and
// stream failures are returned as errors.
func (c *Classifier) Classify(ctx context.Context, filename, contents string, categories *model.CategorySet) (string, error) {
	prompt := BuildPrompt(filename, contents, categories)
	c.logger.Debug("built classification prompt",
		"file", filename,
		"instructions", instructionSegment(filename, categories))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	fragments, err := c.client.CompleteStream(ctx, CompletionRequest{
		Prompt:    prompt,
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("classification request failed: %w", err)
	}

	var result strings.Builder
	for fragment := range fragments {
		if fragment.Err != nil {
			return "", fmt.Errorf("classification stream failed: %w", fragment.Err)
		}
		result.WriteString(fragment.Content)
	}

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("classification request timed out: %w", err)
	}

	return strings.TrimSpace(result.String()), nil
}
