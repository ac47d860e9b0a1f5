package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestExtract_PlainText(t *testing.T) {
	path := writeFile(t, "note.txt", []byte("quarterly report\nwith two lines"))

	e := NewExtractor(0, nil)
	text, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "quarterly report\nwith two lines", text)
}

func TestExtract_DropsInvalidUTF8(t *testing.T) {
	path := writeFile(t, "binary.txt", []byte{'h', 'i', 0xff, 0xfe, '!'})

	e := NewExtractor(0, nil)
	text, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "hi!", text)
}

func TestExtract_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", nil)

	e := NewExtractor(0, nil)
	_, err := e.Extract(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoText))
}

func TestExtract_WhitespaceOnlyFile(t *testing.T) {
	path := writeFile(t, "blank.txt", []byte("  \n\t \n"))

	e := NewExtractor(0, nil)
	_, err := e.Extract(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoText))
}

func TestExtract_MissingFile(t *testing.T) {
	e := NewExtractor(0, nil)
	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "gone.txt"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoText))
}

func TestExtract_CorruptPDF(t *testing.T) {
	path := writeFile(t, "broken.pdf", []byte("this is not a pdf at all"))

	e := NewExtractor(0, nil)
	_, err := e.Extract(context.Background(), path)
	require.Error(t, err)
}

func TestExtract_CancelledContext(t *testing.T) {
	path := writeFile(t, "note.txt", []byte("content"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := NewExtractor(0, nil)
	_, err := e.Extract(ctx, path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewExtractor_Defaults(t *testing.T) {
	e := NewExtractor(0, nil)
	assert.Equal(t, DefaultMaxPDFPages, e.maxPDFPages)
	assert.NotNil(t, e.logger)
}
