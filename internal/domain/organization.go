package domain

import "time"

// Member roles
const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
)

// Organization represents a tenant of the knowledge assistant.
type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Member represents a user's membership in an organization.
type Member struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"` // ADMIN, MEMBER
	JoinedAt       time.Time `json:"joined_at"`
}

// Integration represents a connected Notion workspace. The OAuth exchange
// itself happens outside this service; only the resulting metadata lives here.
type Integration struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	WorkspaceID    string     `json:"workspace_id"`
	WorkspaceName  string     `json:"workspace_name"`
	BotID          string     `json:"bot_id"`
	LastSyncAt     *time.Time `json:"last_sync_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CreateOrganizationRequest is the request to create an organization.
type CreateOrganizationRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateOrganizationRequest is the request to rename an organization.
type UpdateOrganizationRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddMemberRequest is the request to add a member to an organization.
type AddMemberRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role,omitempty"`
}

// UpdateMemberRequest is the request to change a member's role.
type UpdateMemberRequest struct {
	Role string `json:"role" binding:"required"`
}

// ConnectIntegrationRequest records an already-authorized Notion workspace.
type ConnectIntegrationRequest struct {
	WorkspaceID   string `json:"workspace_id" binding:"required"`
	WorkspaceName string `json:"workspace_name" binding:"required"`
	BotID         string `json:"bot_id,omitempty"`
}
