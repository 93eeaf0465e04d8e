package domain

import "time"

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatMessage represents one turn in a conversation. Messages are never
// mutated after creation; Citations is set only on assistant turns.
type ChatMessage struct {
	ID        string     `json:"id"`
	Role      string     `json:"role"` // user, assistant, system
	Content   string     `json:"content"`
	Citations []Citation `json:"citations,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Citation is a backend-supplied evidence snippet attached to an assistant
// turn. Order is as ranked by the backend and must be preserved.
// RelevanceScore is an opaque ordering key, not guaranteed to be in [0,1].
type Citation struct {
	DocumentID     string  `json:"documentId"`
	Title          string  `json:"title"`
	URL            string  `json:"url,omitempty"`
	Excerpt        string  `json:"excerpt"`
	RelevanceScore float64 `json:"relevanceScore"`
}

// ChatRequest is the chat-turn request sent to the automation backend.
// SessionID is omitted on the first turn of a conversation.
type ChatRequest struct {
	OrganizationID string `json:"organizationId"`
	UserID         string `json:"userId"`
	Message        string `json:"message"`
	SessionID      string `json:"sessionId,omitempty"`
}

// ChatPayload is the success payload of a chat turn. SessionID is the
// backend-assigned continuity token and is authoritative.
type ChatPayload struct {
	Response  string     `json:"response"`
	Citations []Citation `json:"citations"`
	SessionID string     `json:"sessionId"`
}

// SyncRequest is the request to trigger a Notion content sync.
type SyncRequest struct {
	OrganizationID string `json:"organizationId"`
	IntegrationID  string `json:"integrationId"`
}

// SyncPayload is the success payload of a sync trigger.
type SyncPayload struct {
	Success            bool `json:"success"`
	DocumentsProcessed int  `json:"documentsProcessed"`
	EmbeddingsCreated  int  `json:"embeddingsCreated"`
}

// SyncStatusPayload is the success payload of a sync status query.
type SyncStatusPayload struct {
	LastSync *time.Time `json:"lastSync,omitempty"`
	Status   string     `json:"status"`
}
