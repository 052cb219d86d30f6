// Package prompt builds the bounded text context and the two prompt variants
// sent to the model gateway. Everything here is a pure function of its
// inputs; sanitization happens on the response path, not here.
package prompt

import (
	"fmt"
	"strings"

	"github.com/AbhiSharma69/revenue-rescue/internal/conversation"
	"github.com/AbhiSharma69/revenue-rescue/internal/dataset"
)

// historyLimit bounds how many conversation entries are replayed into the
// prompt, keeping context window usage predictable.
const historyLimit = 10

// NoDataSentinel is produced when no CSV has been uploaded yet.
const NoDataSentinel = "No CSV file has been uploaded yet. Tell the user to upload a CSV file before asking for analysis."

// BuildContext renders the dataset and recent history into the context block
// embedded in conversational prompts. Report-type messages are excluded from
// the replayed history.
func BuildContext(d *dataset.Descriptor, history []conversation.Message) string {
	var b strings.Builder

	if d == nil {
		b.WriteString(NoDataSentinel)
	} else {
		writeDataset(&b, d)
	}

	recent := recentHistory(history)
	if len(recent) > 0 {
		b.WriteString("\nRecent conversation:\n")
		for _, m := range recent {
			speaker := "User"
			if m.Type == conversation.TypeBot {
				speaker = "Assistant"
			}
			fmt.Fprintf(&b, "%s: %s\n", speaker, m.Text)
		}
	}

	return b.String()
}

func writeDataset(b *strings.Builder, d *dataset.Descriptor) {
	fmt.Fprintf(b, "File: %s\n", d.FileName)
	fmt.Fprintf(b, "Total Records: %d\n", d.RowCount)
	fmt.Fprintf(b, "Columns (%d): %s\n", len(d.Schema), strings.Join(d.Schema, ", "))

	if len(d.Sample) > 0 {
		b.WriteString("\nSample rows:\n")
		for i, row := range d.Sample {
			fmt.Fprintf(b, "Row %d: ", i+1)
			for j, col := range d.Schema {
				if j > 0 {
					b.WriteString("; ")
				}
				fmt.Fprintf(b, "%s=%s", col, row[col])
			}
			b.WriteString("\n")
		}
	}

	if d.RowCount > len(d.Sample) {
		fmt.Fprintf(b, "\nNote: only the first %d of %d rows are included above; analysis is limited to this sampled subset.\n",
			len(d.Sample), d.RowCount)
	}
}

// recentHistory returns the last historyLimit user/bot entries, oldest first.
func recentHistory(history []conversation.Message) []conversation.Message {
	eligible := make([]conversation.Message, 0, len(history))
	for _, m := range history {
		if m.Type == conversation.TypeUser || m.Type == conversation.TypeBot {
			eligible = append(eligible, m)
		}
	}
	if len(eligible) > historyLimit {
		eligible = eligible[len(eligible)-historyLimit:]
	}
	return eligible
}
