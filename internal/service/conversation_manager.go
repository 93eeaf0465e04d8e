package service

import (
	"sync"

	"github.com/docmindhq/docmind/internal/config"
	"go.uber.org/zap"
)

// ConversationManager holds the live conversations, one per chat view.
// Conversations share nothing with each other; discarding one is the only
// way it ends.
type ConversationManager struct {
	mu            sync.RWMutex
	conversations map[string]*Conversation

	cfg     *config.Config
	gateway ChatGateway
	logger  *zap.Logger
}

// NewConversationManager creates an empty manager.
func NewConversationManager(cfg *config.Config, gw ChatGateway, logger *zap.Logger) *ConversationManager {
	return &ConversationManager{
		conversations: make(map[string]*Conversation),
		cfg:           cfg,
		gateway:       gw,
		logger:        logger,
	}
}

// Create starts a new conversation. Empty organization or user fall back to
// the configured defaults.
func (m *ConversationManager) Create(orgID, userID string) *Conversation {
	if orgID == "" {
		orgID = m.cfg.Chat.OrganizationID
	}
	if userID == "" {
		userID = m.cfg.Chat.UserID
	}

	conv := NewConversation(orgID, userID, m.gateway, m.logger)

	m.mu.Lock()
	m.conversations[conv.ID()] = conv
	m.mu.Unlock()

	return conv
}

// Get returns a live conversation by id.
func (m *ConversationManager) Get(id string) (*Conversation, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	conv, ok := m.conversations[id]
	return conv, ok
}

// Delete discards a conversation and its transcript.
func (m *ConversationManager) Delete(id string) {
	m.mu.Lock()
	delete(m.conversations, id)
	m.mu.Unlock()
}

// Count returns the number of live conversations.
func (m *ConversationManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conversations)
}
