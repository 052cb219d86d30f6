// Package conversation holds the chat state for one browser session: the
// ordered message history, the active dataset descriptor, and persistence.
package conversation

import (
	"time"

	"github.com/google/uuid"

	"github.com/AbhiSharma69/revenue-rescue/internal/report"
)

type MessageType string

const (
	TypeUser   MessageType = "user"
	TypeBot    MessageType = "bot"
	TypeReport MessageType = "report"
)

// Greeting seeds every new or cleared conversation.
const Greeting = "Hi! Upload a CSV file and ask me anything about your data, or ask for a business report."

// Message is one conversation entry. Text carries user/bot content; Report is
// set only for report-type messages and is immutable once stored.
type Message struct {
	ID        uuid.UUID              `json:"id"`
	Type      MessageType            `json:"type"`
	Text      string                 `json:"text,omitempty"`
	Report    *report.BusinessReport `json:"report,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

func NewUserMessage(text string) Message {
	return Message{ID: uuid.New(), Type: TypeUser, Text: text, CreatedAt: time.Now().UTC()}
}

func NewBotMessage(text string) Message {
	return Message{ID: uuid.New(), Type: TypeBot, Text: text, CreatedAt: time.Now().UTC()}
}

func NewReportMessage(rep *report.BusinessReport) Message {
	return Message{ID: uuid.New(), Type: TypeReport, Report: rep, CreatedAt: time.Now().UTC()}
}

func greetingMessage() Message {
	return NewBotMessage(Greeting)
}
