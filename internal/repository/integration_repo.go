package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/docmindhq/docmind/internal/domain"
	"github.com/google/uuid"
)

// IntegrationRepository handles Notion integration persistence
type IntegrationRepository struct {
	db *DB
}

// NewIntegrationRepository creates a new integration repository
func NewIntegrationRepository(db *DB) *IntegrationRepository {
	return &IntegrationRepository{db: db}
}

// Create records a connected workspace
func (r *IntegrationRepository) Create(integration *domain.Integration) error {
	if integration.ID == "" {
		integration.ID = uuid.New().String()
	}
	now := time.Now()
	integration.CreatedAt = now
	integration.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO integrations (id, organization_id, workspace_id, workspace_name, bot_id, last_sync_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, integration.ID, integration.OrganizationID, integration.WorkspaceID,
		integration.WorkspaceName, integration.BotID, integration.LastSyncAt,
		integration.CreatedAt, integration.UpdatedAt)

	return err
}

// Get retrieves an integration by ID
func (r *IntegrationRepository) Get(id string) (*domain.Integration, error) {
	return r.scanOne(r.db.QueryRow(`
		SELECT id, organization_id, workspace_id, workspace_name, bot_id, last_sync_at, created_at, updated_at
		FROM integrations WHERE id = ?
	`, id))
}

// GetByOrganization retrieves the integration connected for an organization
func (r *IntegrationRepository) GetByOrganization(organizationID string) (*domain.Integration, error) {
	return r.scanOne(r.db.QueryRow(`
		SELECT id, organization_id, workspace_id, workspace_name, bot_id, last_sync_at, created_at, updated_at
		FROM integrations WHERE organization_id = ?
		ORDER BY created_at DESC LIMIT 1
	`, organizationID))
}

func (r *IntegrationRepository) scanOne(row *sql.Row) (*domain.Integration, error) {
	integration := &domain.Integration{}
	var botID sql.NullString
	var lastSync sql.NullTime

	err := row.Scan(&integration.ID, &integration.OrganizationID,
		&integration.WorkspaceID, &integration.WorkspaceName, &botID,
		&lastSync, &integration.CreatedAt, &integration.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if botID.Valid {
		integration.BotID = botID.String
	}
	if lastSync.Valid {
		t := lastSync.Time
		integration.LastSyncAt = &t
	}

	return integration, nil
}

// MarkSynced stamps the integration's last sync time
func (r *IntegrationRepository) MarkSynced(id string, at time.Time) error {
	result, err := r.db.Exec(`
		UPDATE integrations SET last_sync_at = ?, updated_at = ? WHERE id = ?
	`, at, at, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("integration not found: %s", id)
	}

	return nil
}

// Delete disconnects a workspace
func (r *IntegrationRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM integrations WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("integration not found: %s", id)
	}

	return nil
}
