package mood

import (
	"fmt"
	"strings"
	"time"
)

// Mood is one of the fixed set of moods the tracker accepts.
type Mood string

const (
	Joy     Mood = "joy"
	Calm    Mood = "calm"
	Neutral Mood = "neutral"
	Sad     Mood = "sad"
	Angry   Mood = "angry"
	Anxious Mood = "anxious"
)

var emojis = map[Mood]string{
	Joy:     "😊",
	Calm:    "😌",
	Neutral: "😐",
	Sad:     "😢",
	Angry:   "😠",
	Anxious: "😰",
}

// Parse validates a raw mood string.
func Parse(raw string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := emojis[m]; !ok {
		return "", fmt.Errorf("unknown mood %q", raw)
	}
	return m, nil
}

// Emoji returns the display emoji for the mood.
func (m Mood) Emoji() string {
	return emojis[m]
}

// Entry is a logged mood, immutable once saved.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Mood      Mood      `json:"mood"`
	Emoji     string    `json:"emoji"`
	Journal   string    `json:"journal,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
}

// JournalEntry is a free-form note, independent of any mood log.
type JournalEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"timestamp"`
}
