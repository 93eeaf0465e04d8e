package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/docmindhq/docmind/internal/domain"
	"github.com/google/uuid"
)

// MemberRepository handles organization member persistence
type MemberRepository struct {
	db *DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create adds a member to an organization
func (r *MemberRepository) Create(member *domain.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.Role == "" {
		member.Role = domain.RoleMember
	}
	member.JoinedAt = time.Now()

	_, err := r.db.Exec(`
		INSERT INTO members (id, organization_id, email, name, role, joined_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, member.ID, member.OrganizationID, member.Email, member.Name,
		member.Role, member.JoinedAt)

	return err
}

// Get retrieves a member by ID
func (r *MemberRepository) Get(id string) (*domain.Member, error) {
	member := &domain.Member{}

	err := r.db.QueryRow(`
		SELECT id, organization_id, email, name, role, joined_at
		FROM members WHERE id = ?
	`, id).Scan(&member.ID, &member.OrganizationID, &member.Email,
		&member.Name, &member.Role, &member.JoinedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return member, nil
}

// ListByOrganization retrieves all members of an organization
func (r *MemberRepository) ListByOrganization(organizationID string) ([]*domain.Member, error) {
	rows, err := r.db.Query(`
		SELECT id, organization_id, email, name, role, joined_at
		FROM members WHERE organization_id = ?
		ORDER BY joined_at ASC
	`, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*domain.Member
	for rows.Next() {
		member := &domain.Member{}
		if err := rows.Scan(&member.ID, &member.OrganizationID, &member.Email,
			&member.Name, &member.Role, &member.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// UpdateRole changes a member's role
func (r *MemberRepository) UpdateRole(id, role string) error {
	result, err := r.db.Exec(`UPDATE members SET role = ? WHERE id = ?`, role, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("member not found: %s", id)
	}

	return nil
}

// Delete removes a member
func (r *MemberRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM members WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("member not found: %s", id)
	}

	return nil
}
