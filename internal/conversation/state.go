package conversation

import (
	"sync"

	"github.com/AbhiSharma69/revenue-rescue/internal/dataset"
)

// State is the session-scoped conversation state passed explicitly into the
// pipeline. It replaces the ambient globals of the original UI layer so the
// context builder and gateway stay pure and testable. The mutex only guards
// the short mutations; nothing holds it across a network call, so a chat
// request and a report request can be in flight at the same time.
type State struct {
	mu       sync.Mutex
	messages []Message
	dataset  *dataset.Descriptor
}

// NewState returns a state seeded with the fixed greeting.
func NewState() *State {
	return &State{messages: []Message{greetingMessage()}}
}

// Restore builds a state from persisted messages and descriptor. An empty
// history is re-seeded with the greeting.
func Restore(messages []Message, d *dataset.Descriptor) *State {
	if len(messages) == 0 {
		messages = []Message{greetingMessage()}
	}
	return &State{messages: messages, dataset: d}
}

// Append adds one message to the conversation. The history is append-only
// apart from Clear.
func (s *State) Append(m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
}

// Messages returns a copy of the conversation in chronological order.
func (s *State) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// ReplaceHistory swaps the conversation for the history supplied by the
// client, which is authoritative when present in a request body.
func (s *State) ReplaceHistory(messages []Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = make([]Message, len(messages))
	copy(s.messages, messages)
}

// Clear resets the conversation to a single seeded greeting. Idempotent.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = []Message{greetingMessage()}
}

// Dataset returns the active descriptor, or nil before any upload.
func (s *State) Dataset() *dataset.Descriptor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataset
}

// SetDataset replaces the descriptor wholesale, as a new upload does.
func (s *State) SetDataset(d *dataset.Descriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = d
}

// Snapshot returns the history copy and descriptor in one locked read, for
// building prompt context.
func (s *State) Snapshot() ([]Message, *dataset.Descriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out, s.dataset
}
