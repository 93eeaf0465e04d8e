package service

import (
	"context"

	"github.com/docmindhq/docmind/internal/domain"
	"github.com/docmindhq/docmind/internal/repository"
)

// AdminService handles admin operations
type AdminService struct {
	orgRepo         *repository.OrganizationRepository
	memberRepo      *repository.MemberRepository
	integrationRepo *repository.IntegrationRepository
}

// NewAdminService creates a new admin service
func NewAdminService(
	orgRepo *repository.OrganizationRepository,
	memberRepo *repository.MemberRepository,
	integrationRepo *repository.IntegrationRepository,
) *AdminService {
	return &AdminService{
		orgRepo:         orgRepo,
		memberRepo:      memberRepo,
		integrationRepo: integrationRepo,
	}
}

// Organization operations

func (s *AdminService) CreateOrganization(ctx context.Context, req *domain.CreateOrganizationRequest) (*domain.Organization, error) {
	org := &domain.Organization{Name: req.Name}
	if err := s.orgRepo.Create(org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *AdminService) GetOrganization(ctx context.Context, id string) (*domain.Organization, error) {
	return s.orgRepo.Get(id)
}

func (s *AdminService) ListOrganizations(ctx context.Context) ([]*domain.Organization, error) {
	return s.orgRepo.List()
}

func (s *AdminService) UpdateOrganization(ctx context.Context, id string, req *domain.UpdateOrganizationRequest) (*domain.Organization, error) {
	org, err := s.orgRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}

	org.Name = req.Name
	if err := s.orgRepo.Update(org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *AdminService) DeleteOrganization(ctx context.Context, id string) error {
	return s.orgRepo.Delete(id)
}

// Member operations

func (s *AdminService) AddMember(ctx context.Context, organizationID string, req *domain.AddMemberRequest) (*domain.Member, error) {
	org, err := s.orgRepo.Get(organizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}

	role := req.Role
	if role == "" {
		role = domain.RoleMember
	}
	if role != domain.RoleAdmin && role != domain.RoleMember {
		return nil, domain.ErrInvalidRequest
	}

	member := &domain.Member{
		OrganizationID: organizationID,
		Email:          req.Email,
		Name:           req.Name,
		Role:           role,
	}
	if err := s.memberRepo.Create(member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *AdminService) ListMembers(ctx context.Context, organizationID string) ([]*domain.Member, error) {
	return s.memberRepo.ListByOrganization(organizationID)
}

func (s *AdminService) UpdateMemberRole(ctx context.Context, id string, req *domain.UpdateMemberRequest) (*domain.Member, error) {
	if req.Role != domain.RoleAdmin && req.Role != domain.RoleMember {
		return nil, domain.ErrInvalidRequest
	}

	member, err := s.memberRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, domain.ErrNotFound
	}

	if err := s.memberRepo.UpdateRole(id, req.Role); err != nil {
		return nil, err
	}
	member.Role = req.Role
	return member, nil
}

func (s *AdminService) RemoveMember(ctx context.Context, id string) error {
	return s.memberRepo.Delete(id)
}

// Integration operations

func (s *AdminService) GetIntegration(ctx context.Context, organizationID string) (*domain.Integration, error) {
	return s.integrationRepo.GetByOrganization(organizationID)
}

func (s *AdminService) ConnectIntegration(ctx context.Context, organizationID string, req *domain.ConnectIntegrationRequest) (*domain.Integration, error) {
	org, err := s.orgRepo.Get(organizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}

	integration := &domain.Integration{
		OrganizationID: organizationID,
		WorkspaceID:    req.WorkspaceID,
		WorkspaceName:  req.WorkspaceName,
		BotID:          req.BotID,
	}
	if err := s.integrationRepo.Create(integration); err != nil {
		return nil, err
	}
	return integration, nil
}

func (s *AdminService) DisconnectIntegration(ctx context.Context, id string) error {
	return s.integrationRepo.Delete(id)
}
