package mood

import "testing"

func TestAnalyzeAnxiousText(t *testing.T) {
	analysis := Analyze("I'm so worried about tomorrow, I feel overwhelmed and can't sleep")
	if analysis.Mood != "anxious" {
		t.Fatalf("expected anxious, got %s", analysis.Mood)
	}
	if analysis.Sentiment != "negative" {
		t.Fatalf("expected negative sentiment, got %s", analysis.Sentiment)
	}
	if len(analysis.Keywords) == 0 {
		t.Fatal("expected matched keywords")
	}
}

func TestAnalyzeJoyWithExclamations(t *testing.T) {
	analysis := Analyze("This is amazing!! I'm so happy today!")
	if analysis.Mood != "joy" {
		t.Fatalf("expected joy, got %s", analysis.Mood)
	}
	if analysis.Intensity == "low" {
		t.Fatalf("expected boosted intensity, got %s", analysis.Intensity)
	}
}

func TestAnalyzeNeutralFallback(t *testing.T) {
	for _, text := range []string{"", "the meeting is at noon"} {
		analysis := Analyze(text)
		if analysis.Mood != "neutral" {
			t.Fatalf("expected neutral for %q, got %s", text, analysis.Mood)
		}
		if len(analysis.Suggestions) == 0 {
			t.Fatal("neutral analysis should still carry suggestions")
		}
	}
}

func TestAnalyzeConfidenceBounds(t *testing.T) {
	analysis := Analyze("sad lonely hopeless crying miserable empty heartbroken upset hurt down")
	if analysis.Confidence > 0.9 {
		t.Fatalf("confidence exceeds cap: %f", analysis.Confidence)
	}
	if analysis.Mood != "sad" {
		t.Fatalf("expected sad, got %s", analysis.Mood)
	}
	if analysis.Intensity != "high" {
		t.Fatalf("expected high intensity, got %s", analysis.Intensity)
	}
}
