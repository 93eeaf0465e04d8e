package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/docmindhq/docmind/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// apologyText is the fixed content of the synthetic assistant turn appended
// when a gateway call fails. The underlying failure code stays in the logs.
const apologyText = "I'm sorry, I encountered an error processing your request. Please try again."

// ChatGateway is the slice of the gateway client a conversation drives.
type ChatGateway interface {
	Chat(ctx context.Context, req domain.ChatRequest) domain.Result[domain.ChatPayload]
}

// Conversation owns the state of one visible conversation: the append-only
// message log, the backend session token, and the awaiting-reply flag. All
// mutation happens through Submit; at most one gateway call is in flight at
// a time, and a submission while a reply is pending is rejected, not queued.
type Conversation struct {
	mu        sync.Mutex
	id        string
	orgID     string
	userID    string
	sessionID string
	awaiting  bool
	messages  []domain.ChatMessage

	gateway ChatGateway
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
}

// NewConversation creates an empty conversation for the given organization
// and user. The backend session token is assigned on the first successful
// exchange.
func NewConversation(orgID, userID string, gw ChatGateway, logger *zap.Logger) *Conversation {
	return &Conversation{
		id:      uuid.New().String(),
		orgID:   orgID,
		userID:  userID,
		gateway: gw,
		logger:  logger,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// ID returns the conversation's local identifier.
func (c *Conversation) ID() string { return c.id }

// SessionID returns the backend session token, empty until the first
// successful exchange.
func (c *Conversation) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Awaiting reports whether a gateway call is in flight.
func (c *Conversation) Awaiting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.awaiting
}

// Messages returns a snapshot of the message log in creation order.
func (c *Conversation) Messages() []domain.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Submit appends a user turn and drives one gateway exchange. Whitespace-only
// content is refused with ErrEmptyMessage and appends nothing; a submission
// while a reply is pending is refused with ErrConversationBusy. On a gateway
// success the assistant turn carries the payload's citations in order and the
// session token is overwritten with the payload's; on any failure a fixed
// apology turn is appended and the token is left unchanged. The assistant
// turn is returned either way.
func (c *Conversation) Submit(ctx context.Context, content string) (*domain.ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyMessage
	}

	c.mu.Lock()
	if c.awaiting {
		c.mu.Unlock()
		return nil, domain.ErrConversationBusy
	}
	c.awaiting = true
	sessionID := c.sessionID
	c.messages = append(c.messages, domain.ChatMessage{
		ID:        c.newID(),
		Role:      domain.RoleUser,
		Content:   content,
		CreatedAt: c.now(),
	})
	c.mu.Unlock()

	// The call runs outside the lock so concurrent submissions observe the
	// busy rejection instead of blocking.
	result := c.gateway.Chat(ctx, domain.ChatRequest{
		OrganizationID: c.orgID,
		UserID:         c.userID,
		Message:        content,
		SessionID:      sessionID,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.awaiting = false

	var reply domain.ChatMessage
	if result.OK {
		reply = domain.ChatMessage{
			ID:        c.newID(),
			Role:      domain.RoleAssistant,
			Content:   result.Data.Response,
			Citations: result.Data.Citations,
			CreatedAt: c.now(),
		}
		// The backend is authoritative for continuity.
		c.sessionID = result.Data.SessionID
	} else {
		c.logger.Warn("chat turn failed",
			zap.String("conversation_id", c.id),
			zap.String("code", result.Err.Code),
			zap.String("message", result.Err.Message),
		)
		reply = domain.ChatMessage{
			ID:        c.newID(),
			Role:      domain.RoleAssistant,
			Content:   apologyText,
			CreatedAt: c.now(),
		}
	}
	c.messages = append(c.messages, reply)

	return &reply, nil
}
