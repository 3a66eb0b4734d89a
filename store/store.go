package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store reads and writes the state file at a fixed path
type Store struct {
	path string
}

// NewStore creates a store for the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path
func (st *Store) Path() string {
	return st.path
}

// Load reads the state file. A missing file yields an empty state with
// no error. A file that cannot be decoded yields an empty state plus
// the error, so the caller can report it and keep running; the broken
// file stays on disk until the next Save replaces it.
func (st *Store) Load() (State, error) {
	state := NewState()

	data, err := os.ReadFile(st.path)
	if errors.Is(err, os.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return state, fmt.Errorf("read %s: %w", st.path, err)
	}

	if err := json.Unmarshal(data, &state); err != nil {
		return NewState(), fmt.Errorf("decode %s: %w", st.path, err)
	}
	state.normalize()
	return state, nil
}

// Save writes the state atomically: marshal, write to a temp file in
// the same directory, then rename over the target. A crash mid-write
// leaves the previous file intact.
func (st *Store) Save(state State) error {
	state.normalize()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	dir := filepath.Dir(st.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".state-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if info, err := os.Stat(st.path); err == nil {
		os.Chmod(tmpPath, info.Mode())
	}

	if err := os.Rename(tmpPath, st.path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
