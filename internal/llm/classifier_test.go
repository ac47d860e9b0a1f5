package llm

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test implementation of the Client interface.
type mockClient struct {
	fragments  []Fragment
	openErr    error
	mu         sync.Mutex
	calls      int
	lastPrompt string
}

func (m *mockClient) CompleteStream(_ context.Context, req CompletionRequest) (<-chan Fragment, error) {
	m.mu.Lock()
	m.calls++
	m.lastPrompt = req.Prompt
	m.mu.Unlock()

	if m.openErr != nil {
		return nil, m.openErr
	}

	ch := make(chan Fragment, len(m.fragments))
	for _, f := range m.fragments {
		ch <- f
	}
	close(ch)
	return ch, nil
}

func TestClassify_AccumulatesFragmentsInOrder(t *testing.T) {
	client := &mockClient{fragments: []Fragment{
		{Content: "inv"},
		{Content: "oi"},
		{Content: "ces"},
	}}
	classifier := NewClassifier(client, 0, 0, nil)

	result, err := classifier.Classify(context.Background(), "bill.pdf", "pay me", testCategories(t))
	require.NoError(t, err)
	assert.Equal(t, "invoices", result)
}

func TestClassify_TrimsWhitespace(t *testing.T) {
	client := &mockClient{fragments: []Fragment{
		{Content: "  invoices"},
		{Content: "\n"},
	}}
	classifier := NewClassifier(client, 0, 0, nil)

	result, err := classifier.Classify(context.Background(), "bill.pdf", "pay me", testCategories(t))
	require.NoError(t, err)
	assert.Equal(t, "invoices", result)
}

func TestClassify_EmptyStreamIsNotAnError(t *testing.T) {
	client := &mockClient{}
	classifier := NewClassifier(client, 0, 0, nil)

	result, err := classifier.Classify(context.Background(), "bill.pdf", "pay me", testCategories(t))
	require.NoError(t, err)
	assert.Empty(t, result, "an empty reply resolves to fallback downstream, not here")
}

func TestClassify_TransportError(t *testing.T) {
	client := &mockClient{openErr: errors.New("connection refused")}
	classifier := NewClassifier(client, 0, 0, nil)

	_, err := classifier.Classify(context.Background(), "bill.pdf", "pay me", testCategories(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestClassify_StreamError(t *testing.T) {
	client := &mockClient{fragments: []Fragment{
		{Content: "inv"},
		{Err: errors.New("stream reset")},
	}}
	classifier := NewClassifier(client, 0, 0, nil)

	_, err := classifier.Classify(context.Background(), "bill.pdf", "pay me", testCategories(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stream reset")
}

func TestClassify_SendsBuiltPrompt(t *testing.T) {
	client := &mockClient{fragments: []Fragment{{Content: "invoices"}}}
	classifier := NewClassifier(client, 0, 0, nil)

	cats := testCategories(t)
	_, err := classifier.Classify(context.Background(), "bill.pdf", "pay me", cats)
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls, "exactly one generation request per classification")
	assert.Equal(t, BuildPrompt("bill.pdf", "pay me", cats), client.lastPrompt)
}

func TestClassify_TimeoutOnHangingStream(t *testing.T) {
	// A client whose stream never produces anything and never closes until
	// the context does.
	hanging := clientFunc(func(ctx context.Context, _ CompletionRequest) (<-chan Fragment, error) {
		ch := make(chan Fragment)
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		return ch, nil
	})
	classifier := NewClassifier(hanging, 0, 50*time.Millisecond, nil)

	_, err := classifier.Classify(context.Background(), "bill.pdf", "pay me", testCategories(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

// clientFunc adapts a function to the Client interface.
type clientFunc func(ctx context.Context, req CompletionRequest) (<-chan Fragment, error)

func (f clientFunc) CompleteStream(ctx context.Context, req CompletionRequest) (<-chan Fragment, error) {
	return f(ctx, req)
}
