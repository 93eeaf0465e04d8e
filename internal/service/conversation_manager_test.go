package service

import (
	"context"
	"testing"

	"github.com/docmindhq/docmind/internal/config"
	"github.com/docmindhq/docmind/internal/domain"
	"go.uber.org/zap"
)

func newTestManager() *ConversationManager {
	cfg := &config.Config{}
	cfg.Chat.OrganizationID = "default-org"
	cfg.Chat.UserID = "default-user"
	gw := &fakeGateway{result: domain.Ok(domain.ChatPayload{SessionID: "s1"})}
	return NewConversationManager(cfg, gw, zap.NewNop())
}

func TestManager_CreateAndGet(t *testing.T) {
	m := newTestManager()

	conv := m.Create("org-1", "user-1")
	if conv.ID() == "" {
		t.Fatal("expected a conversation id")
	}

	got, ok := m.Get(conv.ID())
	if !ok || got != conv {
		t.Error("Get should return the created conversation")
	}

	if _, ok := m.Get("missing"); ok {
		t.Error("Get should report unknown ids")
	}
}

func TestManager_ConfigDefaults(t *testing.T) {
	m := newTestManager()

	conv := m.Create("", "")
	if conv.orgID != "default-org" || conv.userID != "default-user" {
		t.Errorf("expected configured defaults, got org=%q user=%q", conv.orgID, conv.userID)
	}
}

func TestManager_Delete(t *testing.T) {
	m := newTestManager()

	conv := m.Create("", "")
	m.Delete(conv.ID())

	if _, ok := m.Get(conv.ID()); ok {
		t.Error("deleted conversation should be gone")
	}
	if m.Count() != 0 {
		t.Errorf("expected 0 conversations, got %d", m.Count())
	}
}

func TestManager_ConversationsAreIndependent(t *testing.T) {
	m := newTestManager()

	a := m.Create("", "")
	b := m.Create("", "")

	if _, err := a.Submit(context.Background(), "hello"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if len(b.Messages()) != 0 {
		t.Error("conversations must not share state")
	}
	if b.SessionID() != "" {
		t.Error("session id must not leak across conversations")
	}
}
