package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/docsort/docsort/internal/config"
	"github.com/docsort/docsort/internal/engine"
	"github.com/docsort/docsort/internal/extract"
	"github.com/docsort/docsort/internal/llm"
	"github.com/docsort/docsort/internal/model"
)

func watchDir() string {
	return config.ExpandPath(viper.GetString("watch.dir"))
}

// categoriesPath defaults to a categories.yaml inside the watched folder so
// the whole setup lives in one place.
func categoriesPath() string {
	if path := viper.GetString("categories.file"); path != "" {
		return config.ExpandPath(path)
	}
	return filepath.Join(watchDir(), "categories.yaml")
}

// buildEngine assembles the classification pipeline from configuration: the
// category set, the extractor, and the streaming backend client.
func buildEngine() (*engine.Engine, *model.CategorySet, error) {
	categories, err := config.LoadCategories(categoriesPath())
	if err != nil {
		return nil, nil, err
	}

	logger := slog.Default()

	client := llm.NewOpenAIClient(llm.Config{
		BaseURL: viper.GetString("llm.base_url"),
		APIKey:  viper.GetString("llm.api_key"),
		Model:   viper.GetString("llm.model"),
		Timeout: viper.GetDuration("llm.timeout"),
	})
	classifier := llm.NewClassifier(client,
		viper.GetInt("llm.max_tokens"),
		viper.GetDuration("llm.timeout"),
		logger)

	extractor := extract.NewExtractor(viper.GetInt("extract.max_pdf_pages"), logger)

	eng, err := engine.New(engine.Config{
		Extractor:     extractor,
		Classifier:    classifier,
		Categories:    categories,
		Fallback:      viper.GetString("classification.fallback"),
		MaxInputChars: viper.GetInt("extract.max_input_chars"),
		Logger:        logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("building classification engine: %w", err)
	}

	return eng, categories, nil
}
