package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mindease/mindease/backend/internal/model/mood"
)

// InsertJournalEntry stores a free-form journal note.
func (s *Store) InsertJournalEntry(ctx context.Context, userID, text string) (mood.JournalEntry, error) {
	entry := mood.JournalEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO journal_entries (id, user_id, content, created_at) VALUES (?, ?, ?, ?)`,
		entry.ID, entry.UserID, entry.Text, entry.CreatedAt,
	)
	if err != nil {
		return mood.JournalEntry{}, fmt.Errorf("insert journal entry: %w", err)
	}
	return entry, nil
}

// ListJournalEntries returns the user's journal notes, newest first.
func (s *Store) ListJournalEntries(ctx context.Context, userID string, limit int) ([]mood.JournalEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, content, created_at FROM journal_entries
		 WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []mood.JournalEntry
	for rows.Next() {
		var e mood.JournalEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Text, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
