package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/docmindhq/docmind/internal/config"
	"github.com/docmindhq/docmind/internal/domain"
	"github.com/docmindhq/docmind/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubGateway struct {
	result domain.Result[domain.ChatPayload]
}

func (s *stubGateway) Chat(ctx context.Context, req domain.ChatRequest) domain.Result[domain.ChatPayload] {
	return s.result
}

func setupRouter(gw service.ChatGateway) (*gin.Engine, *service.ConversationManager) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Chat.OrganizationID = "demo-org"
	cfg.Chat.UserID = "demo-user"

	manager := service.NewConversationManager(cfg, gw, zap.NewNop())

	r := gin.New()
	NewHandler(manager).RegisterRoutes(r.Group("/api/conversations"))
	return r, manager
}

func createConversation(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/conversations", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	return body.ID
}

func postMessage(r *gin.Engine, id, message string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(map[string]string{"message": message})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/conversations/"+id+"/messages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSubmit_Success(t *testing.T) {
	gw := &stubGateway{result: domain.Ok(domain.ChatPayload{
		Response:  "Here is your answer.",
		Citations: []domain.Citation{{DocumentID: "d1", Title: "Doc", Excerpt: "e", RelevanceScore: 0.8}},
		SessionID: "s1",
	})}
	r, _ := setupRouter(gw)
	id := createConversation(t, r)

	w := postMessage(r, id, "What is our refund policy?")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Message   domain.ChatMessage `json:"message"`
		SessionID string             `json:"session_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Message.Role != domain.RoleAssistant {
		t.Errorf("expected assistant turn, got %s", body.Message.Role)
	}
	if len(body.Message.Citations) != 1 {
		t.Errorf("expected citations on the assistant turn, got %+v", body.Message.Citations)
	}
	if body.SessionID != "s1" {
		t.Errorf("expected session id s1, got %q", body.SessionID)
	}
}

func TestSubmit_WhitespaceRejected(t *testing.T) {
	gw := &stubGateway{result: domain.Ok(domain.ChatPayload{SessionID: "s1"})}
	r, manager := setupRouter(gw)
	id := createConversation(t, r)

	w := postMessage(r, id, "   ")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	conv, _ := manager.Get(id)
	if len(conv.Messages()) != 0 {
		t.Error("rejected input must not touch the transcript")
	}
}

func TestSubmit_UnknownConversation(t *testing.T) {
	r, _ := setupRouter(&stubGateway{})

	w := postMessage(r, "missing", "hello")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGet_Transcript(t *testing.T) {
	gw := &stubGateway{result: domain.Ok(domain.ChatPayload{Response: "answer", SessionID: "s1"})}
	r, _ := setupRouter(gw)
	id := createConversation(t, r)
	postMessage(r, id, "question")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/conversations/"+id, nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		SessionID string               `json:"session_id"`
		Messages  []domain.ChatMessage `json:"messages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Messages) != 2 {
		t.Errorf("expected 2 messages, got %d", len(body.Messages))
	}
	if body.SessionID != "s1" {
		t.Errorf("expected session id s1, got %q", body.SessionID)
	}
}

func TestDelete_DiscardsConversation(t *testing.T) {
	r, _ := setupRouter(&stubGateway{})
	id := createConversation(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/conversations/"+id, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/conversations/"+id, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestGetHTML_RendersTranscript(t *testing.T) {
	gw := &stubGateway{result: domain.Ok(domain.ChatPayload{Response: "rendered answer", SessionID: "s1"})}
	r, _ := setupRouter(gw)
	id := createConversation(t, r)
	postMessage(r, id, "question")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/conversations/"+id+"/html", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("rendered answer")) {
		t.Error("expected rendered assistant content in HTML fragment")
	}
}
