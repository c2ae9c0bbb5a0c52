// Package chat manages conversation lifecycle against the persistent store.
package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mindease/mindease/backend/internal/model/chat"
	"github.com/mindease/mindease/backend/internal/store"
)

var (
	ErrUserRequired         = errors.New("user id is required")
	ErrConversationNotFound = errors.New("conversation not found")
)

// Service encapsulates conversation state management.
type Service struct {
	store *store.Store
}

// NewService wires the conversation service to its store.
func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// CreateConversation provisions a conversation for the user. A blank title
// gets the frontend's default "New Chat <time>" form.
func (s *Service) CreateConversation(ctx context.Context, userID, title string) (chat.Conversation, error) {
	if userID == "" {
		return chat.Conversation{}, ErrUserRequired
	}
	if title == "" {
		title = "New Chat " + time.Now().Format("3:04:05 PM")
	}

	conv, err := s.store.CreateConversation(ctx, userID, title)
	if err != nil {
		return chat.Conversation{}, fmt.Errorf("create conversation: %w", err)
	}
	return conv, nil
}

// ListConversations returns the user's conversations, newest activity first.
func (s *Service) ListConversations(ctx context.Context, userID string, limit int) ([]chat.Conversation, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	return s.store.ListConversations(ctx, userID, limit)
}

// GetConversation loads one conversation with its transcript. Missing or
// foreign conversations both surface as ErrConversationNotFound.
func (s *Service) GetConversation(ctx context.Context, id, userID string) (chat.Conversation, []chat.Message, error) {
	conv, messages, err := s.store.GetConversation(ctx, id, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return chat.Conversation{}, nil, ErrConversationNotFound
		}
		return chat.Conversation{}, nil, err
	}
	return conv, messages, nil
}

// DeleteConversation removes a conversation and its messages.
func (s *Service) DeleteConversation(ctx context.Context, id, userID string) error {
	err := s.store.DeleteConversation(ctx, id, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrConversationNotFound
	}
	return err
}

// AppendExchange stores a user turn followed by the AI reply, bumping the
// conversation's updated_at twice in sequence so the list ordering follows
// the latest activity.
func (s *Service) AppendExchange(ctx context.Context, conversationID, userText, aiText string) error {
	now := time.Now().UTC()

	if err := s.store.AppendMessage(ctx, chat.Message{
		ConversationID: conversationID,
		Sender:         chat.SenderUser,
		Content:        userText,
		CreatedAt:      now,
	}); err != nil {
		return fmt.Errorf("append user message: %w", err)
	}

	if err := s.store.AppendMessage(ctx, chat.Message{
		ConversationID: conversationID,
		Sender:         chat.SenderAI,
		Content:        aiText,
		CreatedAt:      now.Add(time.Millisecond),
	}); err != nil {
		return fmt.Errorf("append ai message: %w", err)
	}

	return nil
}
