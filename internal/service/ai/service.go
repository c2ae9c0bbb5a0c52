// Package ai fronts the hosted chat model for wellness conversations and
// mood analysis.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	analysis "github.com/mindease/mindease/backend/internal/analysis/mood"
	"github.com/mindease/mindease/backend/internal/config"
	"github.com/mindease/mindease/backend/internal/model/chat"
)

const historyLimit = 10

// MalformedAnalysisError reports a mood analysis the model did not return
// as valid JSON. Raw carries the model text for diagnostics.
type MalformedAnalysisError struct {
	Raw string
	Err error
}

func (e *MalformedAnalysisError) Error() string {
	return fmt.Sprintf("mood analysis response is not valid JSON: %v", e.Err)
}

func (e *MalformedAnalysisError) Unwrap() error { return e.Err }

// Service encapsulates the model chain used for chat and mood analysis.
type Service struct {
	chatModel model.ChatModel
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService creates the chat chain from the configured model.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		cfg:       cfg,
		chain:     runnable,
	}, nil
}

// StreamingEnabled reports whether streamed delivery is configured.
func (s *Service) StreamingEnabled() bool {
	return s.cfg.Stream
}

// GenerateResponse produces the companion's reply for a conversation turn.
// latestMood, when present, is the user's most recently logged mood and is
// folded into the system prompt so the model does not re-ask for it.
func (s *Service) GenerateResponse(ctx context.Context, history []chat.Message, userMessage, latestMood string) (string, error) {
	input := s.buildChainInput(history, userMessage, latestMood)

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run chat chain: %w", err)
	}

	log.Printf("[ai] generated response, history=%d, length=%d", len(history), len(response.Content))
	return response.Content, nil
}

// StreamResponse streams the reply chunk by chunk.
func (s *Service) StreamResponse(ctx context.Context, history []chat.Message, userMessage, latestMood string) (*schema.StreamReader[*schema.Message], error) {
	if !s.StreamingEnabled() {
		return nil, fmt.Errorf("streaming disabled in configuration")
	}

	input := s.buildChainInput(history, userMessage, latestMood)

	stream, err := s.chain.Stream(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to stream chat chain output: %w", err)
	}
	return stream, nil
}

// AnalyzeMood asks the model for a JSON mood classification of the text.
// A response that does not parse comes back as *MalformedAnalysisError.
func (s *Service) AnalyzeMood(ctx context.Context, text string) (analysis.Analysis, error) {
	query := strings.Replace(moodAnalysisPrompt, "{text}", text, 1)

	response, err := s.chain.Invoke(ctx, map[string]any{
		"system":  "You are a precise sentiment analysis engine.",
		"history": []*schema.Message(nil),
		"query":   query,
	})
	if err != nil {
		return analysis.Analysis{}, fmt.Errorf("failed to run mood analysis: %w", err)
	}

	return parseAnalysis(response.Content)
}

func parseAnalysis(raw string) (analysis.Analysis, error) {
	// Models wrap JSON in code fences often enough to strip them up front.
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var result analysis.Analysis
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return analysis.Analysis{}, &MalformedAnalysisError{Raw: raw, Err: err}
	}
	return result, nil
}

func (s *Service) buildChainInput(history []chat.Message, userMessage, latestMood string) map[string]any {
	system := systemPrompt
	if latestMood != "" {
		system += fmt.Sprintf("\n\nThe user's most recently logged mood is %q. Acknowledge it naturally instead of asking how they feel.", latestMood)
	}

	return map[string]any{
		"system":  system,
		"history": buildHistoryMessages(history),
		"query":   userMessage,
	}
}

func buildHistoryMessages(messages []chat.Message) []*schema.Message {
	if len(messages) == 0 {
		return nil
	}

	startIdx := 0
	if len(messages) > historyLimit {
		startIdx = len(messages) - historyLimit
	}

	history := make([]*schema.Message, 0, len(messages)-startIdx)
	for _, msg := range messages[startIdx:] {
		switch msg.Sender {
		case chat.SenderUser:
			history = append(history, schema.UserMessage(msg.Content))
		case chat.SenderAI:
			history = append(history, schema.AssistantMessage(msg.Content, nil))
		}
	}
	return history
}
