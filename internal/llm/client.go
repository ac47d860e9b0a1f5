// Package llm talks to the text-generation backend: it builds classification
// prompts, issues completion requests, and folds streamed replies into a
// single result.
package llm

import "context"

// Fragment is one piece of a streamed completion. A non-nil Err terminates
// the stream.
type Fragment struct {
	Content string
	Err     error
}

// CompletionRequest describes a single generation call.
type CompletionRequest struct {
	Prompt    string
	MaxTokens int
}

// Client is the transport to a text-generation backend. CompleteStream
// returns a finite, non-restartable sequence of fragments; the channel is
// closed when the backend finishes or the context is cancelled.
type Client interface {
	CompleteStream(ctx context.Context, req CompletionRequest) (<-chan Fragment, error)
}
