// Package chatclient is a Go client for the Mind-Ease conversation API.
// It bundles a thin HTTP wrapper with a conversation state manager that
// tracks the active conversation and its message list.
package chatclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// TokenSource supplies the bearer token attached to authenticated requests.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource returning a fixed credential. An empty
// string sends unauthenticated requests.
type StaticToken string

func (t StaticToken) Token(ctx context.Context) (string, error) {
	return string(t), nil
}

// APIError describes a non-success response from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

// IsAuthError reports whether err is a 401 from the server, so callers
// can route to a login flow without string matching.
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// Conversation mirrors the server's conversation list entry.
type Conversation struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	UpdatedAt string `json:"updated_at"`
}

// RemoteMessage is the wire shape of a stored message as returned by
// GET /api/conversations/{id}.
type RemoteMessage struct {
	Content   string `json:"content"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

// Client wraps HTTP access to the Mind-Ease API: bearer auth, JSON
// codec, fixed per-request timeout, typed error surfacing.
type Client struct {
	baseURL string
	tokens  TokenSource
	httpc   *http.Client
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithTimeout overrides the default 10s per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient builds a Client for the given base URL. Trailing slashes on
// the base URL are ignored.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	if tokens == nil {
		tokens = StaticToken("")
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		httpc:   http.DefaultClient,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("obtain token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || !env.Success {
		return &APIError{Status: resp.StatusCode, Code: env.Error, Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

// ListConversations fetches the conversation list for the current identity.
func (c *Client) ListConversations(ctx context.Context) ([]Conversation, error) {
	var data struct {
		Conversations []Conversation `json:"conversations"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/conversations", nil, &data); err != nil {
		return nil, err
	}
	return data.Conversations, nil
}

// CreateConversation posts a new conversation and returns its id.
func (c *Client) CreateConversation(ctx context.Context, title string) (string, error) {
	var data struct {
		ConversationID string `json:"conversation_id"`
	}
	body := map[string]string{"title": title}
	if err := c.doJSON(ctx, http.MethodPost, "/api/conversations", body, &data); err != nil {
		return "", err
	}
	return data.ConversationID, nil
}

// GetConversation fetches a conversation's stored messages.
func (c *Client) GetConversation(ctx context.Context, id string) ([]RemoteMessage, error) {
	var data struct {
		Messages []RemoteMessage `json:"messages"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/conversations/"+id, nil, &data); err != nil {
		return nil, err
	}
	return data.Messages, nil
}

// DeleteConversation removes a conversation and its messages.
func (c *Client) DeleteConversation(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/conversations/"+id, nil, nil)
}

// SendMessage posts a user message to a conversation and returns the
// AI reply text.
func (c *Client) SendMessage(ctx context.Context, conversationID, message string) (string, error) {
	var data struct {
		Message string `json:"message"`
	}
	body := map[string]string{"message": message}
	if err := c.doJSON(ctx, http.MethodPost, "/api/conversations/"+conversationID+"/messages", body, &data); err != nil {
		return "", err
	}
	return data.Message, nil
}
