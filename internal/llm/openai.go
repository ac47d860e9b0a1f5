package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Config holds settings for the OpenAI-compatible backend client. The
// defaults target a local model server, so no key or network access is
// required out of the box.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

const (
	defaultBaseURL = "http://127.0.0.1:1337/v1"
	defaultAPIKey  = "not-needed"
	defaultModel   = "foundation"
	defaultTimeout = 60 * time.Second
)

// OpenAIClient implements Client against any chat-completion API that speaks
// the OpenAI wire protocol. Constructed once at startup and reused for every
// request.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a backend client, applying defaults for any unset
// field.
func NewOpenAIClient(cfg Config) *OpenAIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.APIKey == "" {
		cfg.APIKey = defaultAPIKey
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

// CompleteStream issues one streaming chat-completion request and forwards
// each delta as a Fragment. The returned channel is closed when the backend
// finishes, errors, or the context is cancelled.
func (c *OpenAIClient) CompleteStream(ctx context.Context, req CompletionRequest) (<-chan Fragment, error) {
	stream, err := c.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: req.MaxTokens,
		Stream:    true,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating completion stream: %w", err)
	}

	fragments := make(chan Fragment)
	go func() {
		defer close(fragments)
		defer func() { _ = stream.Close() }()

		for {
			resp, recvErr := stream.Recv()
			if errors.Is(recvErr, io.EOF) {
				return
			}
			if recvErr != nil {
				select {
				case fragments <- Fragment{Err: fmt.Errorf("receiving completion chunk: %w", recvErr)}:
				case <-ctx.Done():
				}
				return
			}

			if len(resp.Choices) == 0 || resp.Choices[0].Delta.Content == "" {
				continue
			}

			select {
			case fragments <- Fragment{Content: resp.Choices[0].Delta.Content}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return fragments, nil
}
