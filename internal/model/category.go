// Package model contains the core domain types for document classification.
package model

import (
	"fmt"
	"strings"
)

// Category is a named bucket a document can be classified into.
type Category struct {
	Name        string
	Description string
}

// CategorySet is an immutable, ordered collection of categories. It is built
// once at startup and shared read-only across the pipeline, so no locking is
// needed.
type CategorySet struct {
	ordered []Category
	index   map[string]struct{}
}

// NewCategorySet builds a CategorySet from the given categories, preserving
// their order. Names must be non-empty and unique; descriptions must be
// non-empty.
func NewCategorySet(categories []Category) (*CategorySet, error) {
	set := &CategorySet{
		ordered: make([]Category, 0, len(categories)),
		index:   make(map[string]struct{}, len(categories)),
	}

	for _, c := range categories {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("category name is required")
		}
		if strings.TrimSpace(c.Description) == "" {
			return nil, fmt.Errorf("category %q: description is required", c.Name)
		}
		if _, exists := set.index[c.Name]; exists {
			return nil, fmt.Errorf("duplicate category %q", c.Name)
		}
		set.ordered = append(set.ordered, c)
		set.index[c.Name] = struct{}{}
	}

	return set, nil
}

// Contains reports whether name is exactly (case-sensitively) one of the
// category names.
func (s *CategorySet) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Categories returns the categories in their original order. The returned
// slice is a copy; mutating it does not affect the set.
func (s *CategorySet) Categories() []Category {
	out := make([]Category, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Names returns the category names in their original order.
func (s *CategorySet) Names() []string {
	names := make([]string, len(s.ordered))
	for i, c := range s.ordered {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of categories in the set.
func (s *CategorySet) Len() int {
	return len(s.ordered)
}
