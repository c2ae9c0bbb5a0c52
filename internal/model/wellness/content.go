package wellness

// Strategy is a single coping exercise suggestion.
type Strategy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Category    string `json:"category"`
}

// Quote is a short motivational line with attribution.
type Quote struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// Resource points at an external crisis support service.
type Resource struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
	Available   string `json:"available"`
	Website     string `json:"website,omitempty"`
}

// Tip is a short meditation pointer.
type Tip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Store exposes the static wellness content sets to HTTP handlers.
type Store interface {
	Strategies(mood string) []Strategy
	Quotes() []Quote
	CrisisResources() map[string]Resource
	MeditationTips() []Tip
}

// MemoryStore implements Store over the seeded in-memory content.
type MemoryStore struct {
	strategies map[string][]Strategy
	quotes     []Quote
	resources  map[string]Resource
	tips       []Tip
}

// NewMemoryStore returns a MemoryStore preloaded with the default content.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		strategies: seedStrategies(),
		quotes:     seedQuotes(),
		resources:  seedResources(),
		tips:       seedTips(),
	}
}

// Strategies returns the coping strategies for a mood, falling back to the
// general set when the mood is unknown.
func (s *MemoryStore) Strategies(mood string) []Strategy {
	if list, ok := s.strategies[mood]; ok {
		return append([]Strategy(nil), list...)
	}
	return append([]Strategy(nil), s.strategies["general"]...)
}

// Quotes returns all motivational quotes.
func (s *MemoryStore) Quotes() []Quote {
	return append([]Quote(nil), s.quotes...)
}

// CrisisResources returns the crisis resource directory.
func (s *MemoryStore) CrisisResources() map[string]Resource {
	out := make(map[string]Resource, len(s.resources))
	for k, v := range s.resources {
		out[k] = v
	}
	return out
}

// MeditationTips returns the meditation tip list.
func (s *MemoryStore) MeditationTips() []Tip {
	return append([]Tip(nil), s.tips...)
}

func seedStrategies() map[string][]Strategy {
	return map[string][]Strategy{
		"anxious": {
			{Title: "Deep Breathing", Description: "Take slow, deep breaths. Inhale for 4 counts, hold for 4, exhale for 4.", Duration: "5-10 minutes", Category: "breathing"},
			{Title: "Progressive Muscle Relaxation", Description: "Tense and relax each muscle group from toes to head.", Duration: "10-15 minutes", Category: "relaxation"},
			{Title: "Grounding Exercise", Description: "Name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, 1 you can taste.", Duration: "2-3 minutes", Category: "mindfulness"},
		},
		"sad": {
			{Title: "Gentle Movement", Description: "Take a short walk, stretch, or do some light yoga.", Duration: "10-20 minutes", Category: "movement"},
			{Title: "Gratitude Practice", Description: "Write down 3 things you're grateful for today.", Duration: "5 minutes", Category: "mindfulness"},
			{Title: "Connect with Others", Description: "Reach out to a friend or family member for support.", Duration: "15-30 minutes", Category: "social"},
		},
		"stressed": {
			{Title: "Time Management", Description: "Break down tasks into smaller, manageable steps.", Duration: "10 minutes", Category: "organization"},
			{Title: "Nature Connection", Description: "Spend time outdoors or look at nature photos.", Duration: "15-30 minutes", Category: "nature"},
			{Title: "Mindful Break", Description: "Take a 5-minute break to just be present.", Duration: "5 minutes", Category: "mindfulness"},
		},
		"angry": {
			{Title: "Cool Down", Description: "Step away from the situation and take deep breaths.", Duration: "5-10 minutes", Category: "breathing"},
			{Title: "Physical Release", Description: "Exercise, punch a pillow, or do vigorous cleaning.", Duration: "15-30 minutes", Category: "movement"},
			{Title: "Express Feelings", Description: "Write down your feelings or talk to someone you trust.", Duration: "10-20 minutes", Category: "expression"},
		},
		"general": {
			{Title: "Mindful Breathing", Description: "Focus on your breath and let thoughts pass by.", Duration: "5-10 minutes", Category: "mindfulness"},
			{Title: "Self-Care Activity", Description: "Do something that brings you joy or comfort.", Duration: "30 minutes", Category: "self-care"},
			{Title: "Journaling", Description: "Write about your thoughts and feelings.", Duration: "10-15 minutes", Category: "expression"},
		},
	}
}

func seedQuotes() []Quote {
	return []Quote{
		{Text: "You are stronger than you think.", Author: "Unknown", Category: "strength"},
		{Text: "Every day is a new beginning.", Author: "Unknown", Category: "hope"},
		{Text: "It's okay to not be okay.", Author: "Unknown", Category: "acceptance"},
		{Text: "You don't have to be perfect to be worthy of love and respect.", Author: "Brené Brown", Category: "self-worth"},
		{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs", Category: "passion"},
		{Text: "You are not alone in this journey.", Author: "Unknown", Category: "support"},
		{Text: "Small progress is still progress.", Author: "Unknown", Category: "growth"},
		{Text: "Your mental health is a priority. Your happiness is essential. Your self-care is a necessity.", Author: "Unknown", Category: "self-care"},
	}
}

func seedResources() map[string]Resource {
	return map[string]Resource{
		"emergency": {
			Title:       "Emergency Services",
			Description: "If you're in immediate danger, call emergency services immediately.",
			Contact:     "911 (US) / 112 (EU) / 000 (Australia)",
			Available:   "24/7",
		},
		"suicide_prevention": {
			Title:       "Suicide Prevention Lifeline",
			Description: "Free, confidential support for people in distress.",
			Contact:     "988 (US) / 1-800-273-8255",
			Available:   "24/7",
			Website:     "https://988lifeline.org",
		},
		"crisis_text": {
			Title:       "Crisis Text Line",
			Description: "Text-based crisis support.",
			Contact:     "Text HOME to 741741",
			Available:   "24/7",
			Website:     "https://www.crisistextline.org",
		},
		"mental_health_america": {
			Title:       "Mental Health America",
			Description: "Information and resources for mental health support.",
			Contact:     "1-800-969-6642",
			Available:   "24/7",
			Website:     "https://www.mhanational.org",
		},
	}
}

func seedTips() []Tip {
	return []Tip{
		{Title: "Start Small", Description: "Begin with just 2-3 minutes of meditation and gradually increase.", Category: "beginner"},
		{Title: "Focus on Breath", Description: "Use your breath as an anchor. When your mind wanders, gently return to your breath.", Category: "technique"},
		{Title: "Be Kind to Yourself", Description: "Don't judge your thoughts. Simply observe them and let them pass.", Category: "mindset"},
		{Title: "Create a Routine", Description: "Meditate at the same time each day to build a habit.", Category: "habit"},
		{Title: "Find Your Space", Description: "Choose a quiet, comfortable place where you won't be disturbed.", Category: "environment"},
	}
}
