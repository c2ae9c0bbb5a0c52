package chatclient

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mindease/mindease/backend/pkg/markdown"
)

// Sender tags who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// ParseSender maps a remote message type tag to a Sender. Any tag other
// than "user" is treated as the assistant.
func ParseSender(tag string) Sender {
	if tag == string(SenderUser) {
		return SenderUser
	}
	return SenderAI
}

// Message is a single chat turn as held by the state manager.
type Message struct {
	ID        string
	Content   string
	Sender    Sender
	Timestamp time.Time
}

const welcomeContent = "Hello! I'm Solari, your quiet companion. I'm here to support your mental wellness. I can help in a number of ways:\n\n" +
	"Emotional Support: I can listen to you without judgment and validate your feelings.\n\n" +
	"Stress & Anxiety Management: I can guide you through breathing exercises, mindfulness techniques, and even help you create a personalized stress-relief plan.\n\n" +
	"General Well-Being: I can offer advice on things like hydration, nutrition, sleep, and exercise.\n\n" +
	"Relationship & Social Advice: I can provide guidance on friendships, romantic relationships, and building self-worth.\n\n" +
	"A little bit of Fun: I can share jokes and quotes to lighten the mood!\n\n" +
	"Basically, I'm here to listen, offer helpful tips, and be a supportive presence for you. How are you feeling today? Is there anything specific on your mind?"

const (
	createFallback  = "I'm sorry, I'm having trouble creating a new conversation. Please try again."
	connectFallback = "I'm sorry, I'm having trouble connecting to my AI brain right now. Please check if the backend server is running and try again."
)

// ErrOperationInFlight is returned when an operation is invoked while a
// previous invocation of the same operation has not yet settled.
var ErrOperationInFlight = errors.New("chatclient: operation already in flight")

const (
	opLoad   = "load-conversations"
	opCreate = "create-conversation"
)

// Manager tracks the active conversation and its messages, reconciled
// against the remote store through a Client. All methods are safe for
// concurrent use.
type Manager struct {
	api      *Client
	store    KeyValueStore
	notifier Notifier

	mu            sync.Mutex
	userID        string
	conversations []Conversation
	activeID      string
	messages      []Message
	inflight      map[string]bool
}

// NewManager builds a Manager for the given identity. A nil store falls
// back to an in-memory one and a nil notifier to a no-op.
func NewManager(api *Client, store KeyValueStore, notifier Notifier, userID string) *Manager {
	if store == nil {
		store = NewMemoryStore()
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	m := &Manager{
		api:      api,
		store:    store,
		notifier: notifier,
		userID:   userID,
		inflight: make(map[string]bool),
	}
	m.mu.Lock()
	m.ensureWelcomeLocked()
	m.mu.Unlock()
	return m
}

// acquire claims the named operation token. It returns false when the
// token is already held, so overlapping invocations short-circuit
// instead of racing.
func (m *Manager) acquire(op string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inflight[op] {
		return false
	}
	m.inflight[op] = true
	return true
}

func (m *Manager) release(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inflight, op)
}

// ensureWelcomeLocked injects the local welcome message when no
// conversation is active and the thread is empty. The welcome message is
// never sent to the remote store.
func (m *Manager) ensureWelcomeLocked() {
	if m.activeID != "" || len(m.messages) != 0 {
		return
	}
	m.messages = append(m.messages, Message{
		ID:        "welcome-" + uuid.NewString(),
		Content:   welcomeContent,
		Sender:    SenderAI,
		Timestamp: time.Now(),
	})
}

// Conversations returns a copy of the local conversation list.
func (m *Manager) Conversations() []Conversation {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Conversation, len(m.conversations))
	copy(out, m.conversations)
	return out
}

// ActiveConversationID returns the id of the active conversation, or ""
// when none is selected.
func (m *Manager) ActiveConversationID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeID
}

// Messages returns a copy of the current message thread.
func (m *Manager) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// LoadConversations fetches the conversation list and restores the
// last-viewed conversation from the bookmark store when it is still
// present in the results. Overlapping calls are deduplicated; on fetch
// failure the prior state is left untouched.
func (m *Manager) LoadConversations(ctx context.Context) error {
	if !m.acquire(opLoad) {
		return ErrOperationInFlight
	}
	defer m.release(opLoad)

	loaded, err := m.api.ListConversations(ctx)
	if err != nil {
		log.Printf("chatclient: load conversations: %v", err)
		return err
	}

	m.mu.Lock()
	m.conversations = loaded
	lastID, ok := m.store.Get(bookmarkKey(m.userID))
	found := ok && containsConversation(loaded, lastID)
	m.ensureWelcomeLocked()
	m.mu.Unlock()

	if found {
		return m.SelectConversation(ctx, lastID)
	}
	return nil
}

func containsConversation(list []Conversation, id string) bool {
	for _, c := range list {
		if c.ID == id {
			return true
		}
	}
	return false
}

// NewConversation creates a conversation with a timestamp-derived title,
// makes it active and bookmarks it. A second call made before the first
// settles returns ErrOperationInFlight and creates nothing.
func (m *Manager) NewConversation(ctx context.Context) (Conversation, error) {
	if !m.acquire(opCreate) {
		return Conversation{}, ErrOperationInFlight
	}
	defer m.release(opCreate)

	conv, err := m.createConversation(ctx)
	if err != nil {
		m.notifier.NotifyError("Error creating conversation", "Please try again later.")
		return Conversation{}, err
	}
	m.notifier.Notify("New conversation created", "You can start chatting now!")
	return conv, nil
}

// createConversation is the single creation routine shared by
// NewConversation and SendMessage. Callers hold the opCreate token.
func (m *Manager) createConversation(ctx context.Context) (Conversation, error) {
	title := "New Chat " + time.Now().Format("3:04:05 PM")
	id, err := m.api.CreateConversation(ctx, title)
	if err != nil {
		return Conversation{}, fmt.Errorf("create conversation: %w", err)
	}
	conv := Conversation{
		ID:        id,
		Title:     title,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	m.mu.Lock()
	m.conversations = append([]Conversation{conv}, m.conversations...)
	m.activeID = id
	m.messages = nil
	m.store.Set(bookmarkKey(m.userID), id)
	m.mu.Unlock()

	return conv, nil
}

// SelectConversation fetches a conversation's messages, maps them into
// the local shape and makes the conversation active. Message content is
// stripped of markdown for display.
func (m *Manager) SelectConversation(ctx context.Context, conversationID string) error {
	remote, err := m.api.GetConversation(ctx, conversationID)
	if err != nil {
		log.Printf("chatclient: select conversation %s: %v", conversationID, err)
		m.notifier.NotifyError("Error loading conversation", "Please try again later.")
		return err
	}

	mapped := make([]Message, 0, len(remote))
	for i, msg := range remote {
		ts, parseErr := time.Parse(time.RFC3339, msg.Timestamp)
		if parseErr != nil {
			ts = time.Now()
		}
		mapped = append(mapped, Message{
			ID:        fmt.Sprintf("msg-%d", i),
			Content:   markdown.Strip(msg.Content),
			Sender:    ParseSender(msg.Type),
			Timestamp: ts,
		})
	}

	m.mu.Lock()
	m.activeID = conversationID
	m.messages = mapped
	m.store.Set(bookmarkKey(m.userID), conversationID)
	m.mu.Unlock()
	return nil
}

// DeleteConversation removes a conversation remotely and locally. When
// the deleted conversation was active, the active id, message thread and
// bookmark are cleared and the welcome message re-arms.
func (m *Manager) DeleteConversation(ctx context.Context, conversationID string) error {
	if err := m.api.DeleteConversation(ctx, conversationID); err != nil {
		log.Printf("chatclient: delete conversation %s: %v", conversationID, err)
		m.notifier.NotifyError("Error deleting conversation", "Please try again later.")
		return err
	}

	m.mu.Lock()
	kept := m.conversations[:0]
	for _, c := range m.conversations {
		if c.ID != conversationID {
			kept = append(kept, c)
		}
	}
	m.conversations = kept
	if m.activeID == conversationID {
		m.activeID = ""
		m.messages = nil
		m.store.Delete(bookmarkKey(m.userID))
		m.ensureWelcomeLocked()
	}
	m.mu.Unlock()

	m.notifier.Notify("Conversation deleted", "The conversation has been removed.")
	return nil
}

// AddMessage appends a message to the local thread. A message whose id
// is already present is silently ignored.
func (m *Manager) AddMessage(msg Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.messages {
		if existing.ID == msg.ID {
			return
		}
	}
	m.messages = append(m.messages, msg)
}

// SendMessage posts text to the active conversation, creating one first
// when none is active, and returns the AI reply stripped of markdown.
// Failures never surface as errors: the returned string is always
// displayable, falling back to a canned apology.
func (m *Manager) SendMessage(ctx context.Context, text string) string {
	m.mu.Lock()
	conversationID := m.activeID
	m.mu.Unlock()

	if conversationID == "" {
		if !m.acquire(opCreate) {
			return createFallback
		}
		conv, err := m.createConversation(ctx)
		m.release(opCreate)
		if err != nil {
			log.Printf("chatclient: send: %v", err)
			return createFallback
		}
		conversationID = conv.ID
	}

	reply, err := m.api.SendMessage(ctx, conversationID, text)
	if err != nil {
		log.Printf("chatclient: send message: %v", err)
		return connectFallback
	}

	m.mu.Lock()
	now := time.Now().UTC().Format(time.RFC3339)
	for i := range m.conversations {
		if m.conversations[i].ID == conversationID {
			m.conversations[i].UpdatedAt = now
			break
		}
	}
	m.mu.Unlock()

	return markdown.Strip(reply)
}

// Reset tears down all local state for a logout or identity switch and
// re-arms the welcome message for the new identity.
func (m *Manager) Reset(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store.Delete(bookmarkKey(m.userID))
	m.userID = userID
	m.conversations = nil
	m.activeID = ""
	m.messages = nil
	m.inflight = make(map[string]bool)
	m.ensureWelcomeLocked()
}
