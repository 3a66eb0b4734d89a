// Package store persists everything that must survive a restart: the
// spin history, per-difficulty best scores and the last selected
// difficulty. State is plain data; Store does the file I/O.
package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is one completed spin
type Record struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	WonAt time.Time `json:"won_at"`
}

// State is the full persisted document
type State struct {
	History    []Record       `json:"history"`
	Best       map[string]int `json:"best"`
	Difficulty string         `json:"difficulty"`
}

// NewState returns an empty state with allocated containers
func NewState() State {
	return State{
		History: []Record{},
		Best:    make(map[string]int),
	}
}

// normalize repairs nil containers after a decode so callers never
// branch on them
func (s *State) normalize() {
	if s.History == nil {
		s.History = []Record{}
	}
	if s.Best == nil {
		s.Best = make(map[string]int)
	}
}

// RecordWin appends a spin result
func (s *State) RecordWin(name string, at time.Time) Record {
	rec := Record{
		ID:    uuid.New(),
		Name:  name,
		WonAt: at,
	}
	s.History = append(s.History, rec)
	return rec
}

// PickedSet returns the lowercased names already drawn. Eligibility
// checks are case-insensitive so a roster edit that changes casing
// cannot resurrect a picked name.
func (s *State) PickedSet() map[string]bool {
	set := make(map[string]bool, len(s.History))
	for _, rec := range s.History {
		set[strings.ToLower(rec.Name)] = true
	}
	return set
}

// ClearHistory forgets all spins, making every name eligible again
func (s *State) ClearHistory() {
	s.History = s.History[:0]
}

// BestFor returns the stored best score for a difficulty, zero when
// none has been recorded
func (s *State) BestFor(difficulty string) int {
	return s.Best[difficulty]
}

// UpdateBest stores score if it beats the current best for the
// difficulty and reports whether it did
func (s *State) UpdateBest(difficulty string, score int) bool {
	if score <= s.Best[difficulty] {
		return false
	}
	s.Best[difficulty] = score
	return true
}
