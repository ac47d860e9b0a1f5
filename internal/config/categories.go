package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/docsort/docsort/internal/common"
	"github.com/docsort/docsort/internal/model"
)

// LoadCategories reads a category definition file and builds the immutable
// CategorySet used by the classification pipeline. The file format is:
//
//	categories:
//	  invoices:
//	    subject: "bills, receipts, and payment reminders"
//	  personal:
//	    subject: "letters and private correspondence"
//
// Category order in the file is preserved so prompts render deterministically.
// Any problem with the file is fatal: classification cannot start without a
// valid category set.
func LoadCategories(path string) (*model.CategorySet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading category file %s: %v", common.ErrMissingConfig, path, err)
	}

	var doc struct {
		Categories yaml.Node `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing category file %s: %v", common.ErrInvalidConfig, path, err)
	}

	if doc.Categories.IsZero() {
		return nil, fmt.Errorf("%w: category file %s has no \"categories\" key", common.ErrInvalidConfig, path)
	}
	if doc.Categories.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: \"categories\" in %s must be a mapping", common.ErrInvalidConfig, path)
	}

	// A yaml mapping node stores keys and values as alternating children,
	// which is what lets us keep the author's ordering.
	categories := make([]model.Category, 0, len(doc.Categories.Content)/2)
	for i := 0; i+1 < len(doc.Categories.Content); i += 2 {
		name := doc.Categories.Content[i].Value

		var entry struct {
			Subject string `yaml:"subject"`
		}
		if err := doc.Categories.Content[i+1].Decode(&entry); err != nil {
			return nil, fmt.Errorf("%w: category %q in %s: %v", common.ErrInvalidConfig, name, path, err)
		}

		categories = append(categories, model.Category{
			Name:        name,
			Description: strings.TrimSpace(entry.Subject),
		})
	}

	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: category file %s defines no categories", common.ErrInvalidConfig, path)
	}

	set, err := model.NewCategorySet(categories)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	return set, nil
}
