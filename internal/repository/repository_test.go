package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/docmindhq/docmind/internal/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOrganizationRepository_CRUD(t *testing.T) {
	repo := NewOrganizationRepository(newTestDB(t))

	org := &domain.Organization{Name: "Acme Corp"}
	if err := repo.Create(org); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if org.ID == "" {
		t.Fatal("expected a generated id")
	}

	got, err := repo.Get(org.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.Name != "Acme Corp" {
		t.Errorf("unexpected organization: %+v", got)
	}

	got.Name = "Acme Inc"
	if err := repo.Update(got); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	updated, _ := repo.Get(org.ID)
	if updated.Name != "Acme Inc" {
		t.Errorf("expected renamed organization, got %s", updated.Name)
	}

	orgs, err := repo.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(orgs) != 1 {
		t.Errorf("expected 1 organization, got %d", len(orgs))
	}

	if err := repo.Delete(org.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	gone, err := repo.Get(org.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if gone != nil {
		t.Error("expected nil after delete")
	}
}

func TestOrganizationRepository_GetMissing(t *testing.T) {
	repo := NewOrganizationRepository(newTestDB(t))

	got, err := repo.Get("nope")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing row, got %+v", got)
	}
}

func TestMemberRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	orgRepo := NewOrganizationRepository(db)
	repo := NewMemberRepository(db)

	org := &domain.Organization{Name: "Acme"}
	if err := orgRepo.Create(org); err != nil {
		t.Fatalf("Create org failed: %v", err)
	}

	member := &domain.Member{
		OrganizationID: org.ID,
		Email:          "jo@acme.test",
		Name:           "Jo",
	}
	if err := repo.Create(member); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if member.Role != domain.RoleMember {
		t.Errorf("expected default role MEMBER, got %s", member.Role)
	}

	members, err := repo.ListByOrganization(org.ID)
	if err != nil {
		t.Fatalf("ListByOrganization failed: %v", err)
	}
	if len(members) != 1 || members[0].Email != "jo@acme.test" {
		t.Errorf("unexpected members: %+v", members)
	}

	if err := repo.UpdateRole(member.ID, domain.RoleAdmin); err != nil {
		t.Fatalf("UpdateRole failed: %v", err)
	}
	got, _ := repo.Get(member.ID)
	if got.Role != domain.RoleAdmin {
		t.Errorf("expected ADMIN, got %s", got.Role)
	}

	if err := repo.Delete(member.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(member.ID); err == nil {
		t.Error("deleting a missing member should fail")
	}
}

func TestIntegrationRepository_CRUDAndSyncStamp(t *testing.T) {
	db := newTestDB(t)
	orgRepo := NewOrganizationRepository(db)
	repo := NewIntegrationRepository(db)

	org := &domain.Organization{Name: "Acme"}
	if err := orgRepo.Create(org); err != nil {
		t.Fatalf("Create org failed: %v", err)
	}

	integration := &domain.Integration{
		OrganizationID: org.ID,
		WorkspaceID:    "ws-1",
		WorkspaceName:  "Acme Notion",
		BotID:          "bot-1",
	}
	if err := repo.Create(integration); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByOrganization(org.ID)
	if err != nil {
		t.Fatalf("GetByOrganization failed: %v", err)
	}
	if got == nil || got.WorkspaceName != "Acme Notion" {
		t.Errorf("unexpected integration: %+v", got)
	}
	if got.LastSyncAt != nil {
		t.Error("expected no sync stamp before first sync")
	}

	stamp := time.Now().Truncate(time.Second)
	if err := repo.MarkSynced(integration.ID, stamp); err != nil {
		t.Fatalf("MarkSynced failed: %v", err)
	}
	synced, _ := repo.Get(integration.ID)
	if synced.LastSyncAt == nil {
		t.Fatal("expected a sync stamp")
	}

	if err := repo.Delete(integration.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	gone, _ := repo.GetByOrganization(org.ID)
	if gone != nil {
		t.Error("expected nil after disconnect")
	}
}
