package engine

import (
	"strings"

	"github.com/docsort/docsort/internal/model"
)

// Resolve maps raw model output to a guaranteed-valid category. The trimmed
// output must equal a category name exactly, case included; anything else
// resolves to the fallback. Resolve is total: it never fails and never
// returns a name outside the set plus fallback.
func Resolve(raw string, categories *model.CategorySet, fallback string) (category string, matched bool) {
	trimmed := strings.TrimSpace(raw)
	if categories.Contains(trimmed) {
		return trimmed, true
	}
	return fallback, false
}
