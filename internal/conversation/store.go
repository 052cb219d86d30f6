package conversation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/AbhiSharma69/revenue-rescue/internal/dataset"
)

// Store persists the conversation and the active dataset descriptor under
// fixed keys, mirroring the browser's local-storage contract: loaded on
// session start, written on every mutation. Implementations must be safe for
// concurrent use. Load methods return nil without error when nothing has been
// stored yet.
type Store interface {
	SaveConversation(messages []Message) error
	LoadConversation() ([]Message, error)
	SaveDataset(d *dataset.Descriptor) error
	LoadDataset() (*dataset.Descriptor, error)
}

const (
	conversationFile = "conversation.json"
	datasetFile      = "dataset.json"
)

// FileStore keeps each key as a JSON file in a directory. Writes go through a
// temp file and rename so a crash never leaves a torn file behind.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) SaveConversation(messages []Message) error {
	return s.write(conversationFile, messages)
}

func (s *FileStore) LoadConversation() ([]Message, error) {
	var messages []Message
	ok, err := s.read(conversationFile, &messages)
	if err != nil || !ok {
		return nil, err
	}
	return messages, nil
}

func (s *FileStore) SaveDataset(d *dataset.Descriptor) error {
	if d == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		err := os.Remove(filepath.Join(s.dir, datasetFile))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("clear dataset: %w", err)
		}
		return nil
	}
	return s.write(datasetFile, d)
}

func (s *FileStore) LoadDataset() (*dataset.Descriptor, error) {
	var d dataset.Descriptor
	ok, err := s.read(datasetFile, &d)
	if err != nil || !ok {
		return nil, err
	}
	return &d, nil
}

func (s *FileStore) write(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) read(name string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", name, err)
	}
	return true, nil
}
