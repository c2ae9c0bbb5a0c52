package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mindease/mindease/backend/internal/model/mood"
)

// InsertMoodEntry logs a mood for the user. Entries are never updated.
func (s *Store) InsertMoodEntry(ctx context.Context, userID string, m mood.Mood, journal string) (mood.Entry, error) {
	entry := mood.Entry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Mood:      m,
		Emoji:     m.Emoji(),
		Journal:   journal,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO mood_logs (id, user_id, mood, journal, created_at) VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.UserID, string(entry.Mood), entry.Journal, entry.CreatedAt,
	)
	if err != nil {
		return mood.Entry{}, fmt.Errorf("insert mood log: %w", err)
	}
	return entry, nil
}

// MoodHistory returns the user's mood logs from the last `days` days,
// newest first.
func (s *Store) MoodHistory(ctx context.Context, userID string, days int) ([]mood.Entry, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, mood, journal, created_at FROM mood_logs
		 WHERE user_id = ? AND created_at >= ? ORDER BY created_at DESC`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("mood history: %w", err)
	}
	defer rows.Close()

	var entries []mood.Entry
	for rows.Next() {
		var e mood.Entry
		var raw string
		if err := rows.Scan(&e.ID, &e.UserID, &raw, &e.Journal, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan mood log: %w", err)
		}
		e.Mood = mood.Mood(raw)
		e.Emoji = e.Mood.Emoji()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LatestMood returns the user's most recent mood entry.
func (s *Store) LatestMood(ctx context.Context, userID string) (mood.Entry, error) {
	var e mood.Entry
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, mood, journal, created_at FROM mood_logs
		 WHERE user_id = ? ORDER BY created_at DESC LIMIT 1`,
		userID,
	).Scan(&e.ID, &e.UserID, &raw, &e.Journal, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mood.Entry{}, ErrNotFound
		}
		return mood.Entry{}, fmt.Errorf("latest mood: %w", err)
	}
	e.Mood = mood.Mood(raw)
	e.Emoji = e.Mood.Emoji()
	return e, nil
}
