package ai

import (
	"errors"
	"testing"

	"github.com/mindease/mindease/backend/internal/model/chat"
)

func TestParseAnalysisPlainJSON(t *testing.T) {
	raw := `{"mood":"anxious","intensity":"high","sentiment":"negative","confidence":0.8,"keywords":["worried"],"suggestions":["breathe"]}`

	result, err := parseAnalysis(raw)
	if err != nil {
		t.Fatalf("parseAnalysis err: %v", err)
	}
	if result.Mood != "anxious" || result.Confidence != 0.8 {
		t.Fatalf("unexpected analysis: %+v", result)
	}
}

func TestParseAnalysisStripsCodeFence(t *testing.T) {
	raw := "```json\n{\"mood\":\"calm\",\"intensity\":\"low\",\"sentiment\":\"positive\",\"confidence\":0.6,\"keywords\":[],\"suggestions\":[]}\n```"

	result, err := parseAnalysis(raw)
	if err != nil {
		t.Fatalf("parseAnalysis err: %v", err)
	}
	if result.Mood != "calm" {
		t.Fatalf("unexpected mood: %s", result.Mood)
	}
}

func TestParseAnalysisMalformedKeepsRaw(t *testing.T) {
	raw := "I'd say the user seems quite anxious today."

	_, err := parseAnalysis(raw)
	var malformed *MalformedAnalysisError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedAnalysisError, got %v", err)
	}
	if malformed.Raw != raw {
		t.Fatalf("raw text not preserved: %q", malformed.Raw)
	}
}

func TestBuildHistoryMessagesLimit(t *testing.T) {
	var history []chat.Message
	for i := 0; i < 25; i++ {
		sender := chat.SenderUser
		if i%2 == 1 {
			sender = chat.SenderAI
		}
		history = append(history, chat.Message{Sender: sender, Content: "turn"})
	}

	built := buildHistoryMessages(history)
	if len(built) != historyLimit {
		t.Fatalf("expected %d history turns, got %d", historyLimit, len(built))
	}
}

func TestBuildHistoryMessagesEmpty(t *testing.T) {
	if built := buildHistoryMessages(nil); built != nil {
		t.Fatalf("expected nil history, got %v", built)
	}
}
