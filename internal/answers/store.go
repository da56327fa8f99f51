// Package answers persists the questionnaire answer set between runs.
package answers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bartekus/autoui/internal/projection"
	"github.com/bartekus/autoui/internal/questionnaire"
)

// DefaultPath is where answers live relative to the repository root.
const DefaultPath = ".autoui/answers.json"

// Store handles reading and writing the answer file.
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads stored answers. A missing file is a clean state and yields
// an empty set.
func (s *Store) Load() (questionnaire.Answers, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return questionnaire.Answers{}, nil
	}
	if err != nil {
		return nil, &questionnaire.InputError{Source: s.path, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return questionnaire.Answers{}, nil
	}

	var a questionnaire.Answers
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, &questionnaire.InputError{Source: s.path, Err: fmt.Errorf("decoding answers: %w", err)}
	}
	if a == nil {
		a = questionnaire.Answers{}
	}
	return a, nil
}

// Save writes answers atomically. Keys are emitted in sorted order so the
// file diffs cleanly between runs.
func (s *Store) Save(a questionnaire.Answers) error {
	if a == nil {
		a = questionnaire.Answers{}
	}
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}
	data = append(data, '\n')
	if err := projection.AtomicWrite(s.path, data, projection.StateMode); err != nil {
		return fmt.Errorf("writing answers: %w", err)
	}
	return nil
}

// Reset removes the stored answers and reports whether a file was there.
func (s *Store) Reset() (bool, error) {
	err := os.Remove(s.path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}
