package llm

import (
	"fmt"
	"strings"

	"github.com/docsort/docsort/internal/model"
)

// BuildPrompt assembles the classification prompt: task framing, the
// category list in its configured order, the output rules, the filename, and
// finally the document contents. It is deterministic; identical inputs
// produce byte-identical prompts.
func BuildPrompt(filename, contents string, categories *model.CategorySet) string {
	return strings.TrimSpace(instructionSegment(filename, categories) + "\n\nDocument contents:\n" + contents)
}

// instructionSegment is everything except the document text. Logged at debug
// level so the operator can see what the model is being asked.
func instructionSegment(filename string, categories *model.CategorySet) string {
	var block strings.Builder
	for _, c := range categories.Categories() {
		fmt.Fprintf(&block, "- %s: %s\n", c.Name, c.Description)
	}

	return fmt.Sprintf(`You are classifying a document into ONE folder.

Choose the single best folder name from the list below of folder names and descriptions of the kind of content that should go into the folder.
Respond with ONLY the folder name.

Available folders:
%s
Rules:
- Output ONLY a folder name
- No explanations
- No punctuation
- If uncertain, choose the closest match

Filename: %s`, block.String(), filename)
}
