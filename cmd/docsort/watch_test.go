package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsort/docsort/internal/model"
)

func TestRunWatch_MissingDirectory(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("watch.dir", filepath.Join(t.TempDir(), "does-not-exist"))

	cmd := watchCmd()
	cmd.SetContext(context.Background())

	err := runWatch(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch folder does not exist")
}

func TestCategoriesPath_DefaultsToWatchedDir(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("watch.dir", "/tmp/inbox")
	viper.Set("categories.file", "")

	assert.Equal(t, filepath.Join("/tmp/inbox", "categories.yaml"), categoriesPath())
}

func TestCategoriesPath_Explicit(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("categories.file", "/etc/docsort/cat.yaml")

	assert.Equal(t, "/etc/docsort/cat.yaml", categoriesPath())
}

func TestReportResult(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	reportResult(cmd, model.Classification{File: "bill.pdf", Category: "invoices"})
	assert.Contains(t, out.String(), "bill.pdf")
	assert.Contains(t, out.String(), "invoices")

	out.Reset()
	reportResult(cmd, model.Classification{File: "blob.bin", Category: "uncategorized", Fallback: true})
	assert.Contains(t, out.String(), "uncategorized")
}
