// Package mood provides a keyword heuristic used when no chat model is
// configured for mood analysis.
package mood

import (
	"strings"

	moodmodel "github.com/mindease/mindease/backend/internal/model/mood"
)

// Analysis mirrors the JSON shape the LLM analyzer returns.
type Analysis struct {
	Mood        string   `json:"mood"`
	Intensity   string   `json:"intensity"`
	Sentiment   string   `json:"sentiment"`
	Confidence  float64  `json:"confidence"`
	Keywords    []string `json:"keywords"`
	Suggestions []string `json:"suggestions"`
}

var keywordBuckets = map[moodmodel.Mood][]string{
	moodmodel.Joy: {
		"happy", "joy", "glad", "great", "amazing", "awesome", "excited", "wonderful",
		"love", "grateful", "thankful", "proud", "haha", "lol", "smile", "fantastic",
	},
	moodmodel.Calm: {
		"calm", "peaceful", "relaxed", "rested", "content", "settled", "at ease",
		"breathing", "quiet", "serene", "comfortable", "balanced",
	},
	moodmodel.Sad: {
		"sad", "down", "unhappy", "depressed", "cry", "crying", "lonely", "alone",
		"hopeless", "miserable", "hurt", "grief", "empty", "heartbroken", "upset",
	},
	moodmodel.Angry: {
		"angry", "mad", "furious", "rage", "annoyed", "irritated", "frustrated",
		"fed up", "hate", "pissed", "unfair", "resent",
	},
	moodmodel.Anxious: {
		"anxious", "anxiety", "worried", "nervous", "panic", "scared", "afraid",
		"overwhelmed", "stressed", "stress", "racing", "can't sleep", "dread", "tense",
	},
}

var sentiments = map[moodmodel.Mood]string{
	moodmodel.Joy:     "positive",
	moodmodel.Calm:    "positive",
	moodmodel.Neutral: "neutral",
	moodmodel.Sad:     "negative",
	moodmodel.Angry:   "negative",
	moodmodel.Anxious: "negative",
}

var suggestions = map[moodmodel.Mood][]string{
	moodmodel.Joy:     {"Savor the moment", "Share the good news with someone", "Note what made today work"},
	moodmodel.Calm:    {"Keep your current routine", "Try a short meditation to stay grounded"},
	moodmodel.Neutral: {"Check in with yourself later today", "A short walk can lift your energy"},
	moodmodel.Sad:     {"Be gentle with yourself", "Reach out to someone you trust", "Try writing down what you feel"},
	moodmodel.Angry:   {"Step away and take deep breaths", "Move your body to release tension"},
	moodmodel.Anxious: {"Try box breathing: in 4, hold 4, out 4", "Name 5 things you can see around you"},
}

// Analyze scores the text against the keyword buckets and returns the best
// matching mood with a rough intensity and confidence.
func Analyze(text string) Analysis {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return neutral()
	}

	scores := make(map[moodmodel.Mood]int)
	matched := make(map[moodmodel.Mood][]string)
	for mood, keywords := range keywordBuckets {
		for _, word := range keywords {
			if strings.Contains(normalized, word) {
				scores[mood] += 3
				matched[mood] = append(matched[mood], word)
			}
		}
	}

	// Exclamation marks push the reading toward the stronger end.
	exclamations := strings.Count(text, "!")
	if exclamations > 0 && scores[moodmodel.Joy] > 0 {
		scores[moodmodel.Joy] += exclamations * 2
	}

	best := moodmodel.Neutral
	bestScore := 0
	for mood, s := range scores {
		if s > bestScore {
			bestScore = s
			best = mood
		}
	}
	if bestScore == 0 {
		return neutral()
	}

	intensity := "low"
	switch {
	case bestScore >= 9:
		intensity = "high"
	case bestScore >= 5:
		intensity = "medium"
	}

	confidence := 0.4 + float64(bestScore)*0.05
	if confidence > 0.9 {
		confidence = 0.9
	}

	return Analysis{
		Mood:        string(best),
		Intensity:   intensity,
		Sentiment:   sentiments[best],
		Confidence:  confidence,
		Keywords:    matched[best],
		Suggestions: append([]string(nil), suggestions[best]...),
	}
}

func neutral() Analysis {
	return Analysis{
		Mood:        string(moodmodel.Neutral),
		Intensity:   "low",
		Sentiment:   "neutral",
		Confidence:  0.3,
		Keywords:    []string{},
		Suggestions: append([]string(nil), suggestions[moodmodel.Neutral]...),
	}
}
