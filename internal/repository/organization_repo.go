package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/docmindhq/docmind/internal/domain"
	"github.com/google/uuid"
)

// OrganizationRepository handles organization persistence
type OrganizationRepository struct {
	db *DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(org *domain.Organization) error {
	if org.ID == "" {
		org.ID = uuid.New().String()
	}
	now := time.Now()
	org.CreatedAt = now
	org.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO organizations (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, org.ID, org.Name, org.CreatedAt, org.UpdatedAt)

	return err
}

// Get retrieves an organization by ID
func (r *OrganizationRepository) Get(id string) (*domain.Organization, error) {
	org := &domain.Organization{}

	err := r.db.QueryRow(`
		SELECT id, name, created_at, updated_at
		FROM organizations WHERE id = ?
	`, id).Scan(&org.ID, &org.Name, &org.CreatedAt, &org.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return org, nil
}

// List retrieves all organizations
func (r *OrganizationRepository) List() ([]*domain.Organization, error) {
	rows, err := r.db.Query(`
		SELECT id, name, created_at, updated_at
		FROM organizations ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []*domain.Organization
	for rows.Next() {
		org := &domain.Organization{}
		if err := rows.Scan(&org.ID, &org.Name, &org.CreatedAt, &org.UpdatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}

	return orgs, rows.Err()
}

// Update updates an organization
func (r *OrganizationRepository) Update(org *domain.Organization) error {
	org.UpdatedAt = time.Now()

	result, err := r.db.Exec(`
		UPDATE organizations SET name = ?, updated_at = ? WHERE id = ?
	`, org.Name, org.UpdatedAt, org.ID)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("organization not found: %s", org.ID)
	}

	return nil
}

// Delete deletes an organization
func (r *OrganizationRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM organizations WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("organization not found: %s", id)
	}

	return nil
}
