package prompt

import (
	"strings"

	"github.com/AbhiSharma69/revenue-rescue/internal/dataset"
)

// Conversational assembles the prompt for one chat turn: system instruction,
// context block, then the current question. The output is opaque to the
// gateway.
func Conversational(contextBlock, question string) string {
	var b strings.Builder
	b.WriteString(chatSystemPrompt)
	b.WriteString("\n\nDataset context:\n")
	b.WriteString(contextBlock)
	b.WriteString("\nUser question: ")
	b.WriteString(question)
	return b.String()
}

// Report assembles the strict JSON-only report prompt. Chat history is
// deliberately excluded; only the dataset context is embedded.
func Report(d *dataset.Descriptor) string {
	var b strings.Builder
	b.WriteString(reportSystemPrompt)
	b.WriteString("\n\nDataset context:\n")
	b.WriteString(BuildContext(d, nil))
	b.WriteString("\n")
	b.WriteString(reportClosingInstruction)
	return b.String()
}
