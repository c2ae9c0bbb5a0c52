// Package mood records and reads back mood logs and journal entries.
package mood

import (
	"context"
	"errors"
	"fmt"

	moodmodel "github.com/mindease/mindease/backend/internal/model/mood"
	"github.com/mindease/mindease/backend/internal/store"
)

var (
	ErrUserRequired = errors.New("user id is required")
	ErrNoMoodLogged = errors.New("no mood logged")
)

// Service wraps mood and journal persistence.
type Service struct {
	store *store.Store
}

// NewService wires the mood service to its store.
func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// LogMood stores a mood entry. Entries are immutable once saved; there is
// no update path.
func (s *Service) LogMood(ctx context.Context, userID string, m moodmodel.Mood, journal string) (moodmodel.Entry, error) {
	if userID == "" {
		return moodmodel.Entry{}, ErrUserRequired
	}

	entry, err := s.store.InsertMoodEntry(ctx, userID, m, journal)
	if err != nil {
		return moodmodel.Entry{}, fmt.Errorf("log mood: %w", err)
	}
	return entry, nil
}

// History returns the user's mood entries within the window.
func (s *Service) History(ctx context.Context, userID string, days int) ([]moodmodel.Entry, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	return s.store.MoodHistory(ctx, userID, days)
}

// Latest returns the most recent mood entry, or ErrNoMoodLogged.
func (s *Service) Latest(ctx context.Context, userID string) (moodmodel.Entry, error) {
	entry, err := s.store.LatestMood(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return moodmodel.Entry{}, ErrNoMoodLogged
	}
	return entry, err
}

// AddJournal stores a free-form journal note.
func (s *Service) AddJournal(ctx context.Context, userID, text string) (moodmodel.JournalEntry, error) {
	if userID == "" {
		return moodmodel.JournalEntry{}, ErrUserRequired
	}
	return s.store.InsertJournalEntry(ctx, userID, text)
}

// ListJournals returns the user's journal notes, newest first.
func (s *Service) ListJournals(ctx context.Context, userID string, limit int) ([]moodmodel.JournalEntry, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	return s.store.ListJournalEntries(ctx, userID, limit)
}
