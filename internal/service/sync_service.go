package service

import (
	"context"
	"time"

	"github.com/docmindhq/docmind/internal/domain"
	"github.com/docmindhq/docmind/internal/repository"
	"go.uber.org/zap"
)

// SyncGateway is the slice of the gateway client the sync service drives.
type SyncGateway interface {
	SyncNotion(ctx context.Context, req domain.SyncRequest) domain.Result[domain.SyncPayload]
	SyncStatus(ctx context.Context, organizationID string) domain.Result[domain.SyncStatusPayload]
}

// SyncService triggers content syncs on the automation backend and keeps the
// integration's last-sync stamp current. The sync itself (fetching Notion
// pages, chunking, embedding) runs entirely on the backend.
type SyncService struct {
	integrationRepo *repository.IntegrationRepository
	gateway         SyncGateway
	logger          *zap.Logger
}

// NewSyncService creates a new sync service
func NewSyncService(integrationRepo *repository.IntegrationRepository, gw SyncGateway, logger *zap.Logger) *SyncService {
	return &SyncService{
		integrationRepo: integrationRepo,
		gateway:         gw,
		logger:          logger,
	}
}

// Trigger requests a sync for the organization's connected workspace and
// returns the backend's outcome envelope. On success the integration's
// last-sync time is stamped locally.
func (s *SyncService) Trigger(ctx context.Context, organizationID string) (domain.Result[domain.SyncPayload], error) {
	integration, err := s.integrationRepo.GetByOrganization(organizationID)
	if err != nil {
		return domain.Result[domain.SyncPayload]{}, err
	}
	if integration == nil {
		return domain.Result[domain.SyncPayload]{}, domain.ErrNotFound
	}

	result := s.gateway.SyncNotion(ctx, domain.SyncRequest{
		OrganizationID: organizationID,
		IntegrationID:  integration.ID,
	})

	if result.OK {
		if err := s.integrationRepo.MarkSynced(integration.ID, time.Now()); err != nil {
			s.logger.Warn("failed to stamp last sync time",
				zap.String("integration_id", integration.ID),
				zap.Error(err),
			)
		}
		s.logger.Info("sync completed",
			zap.String("organization_id", organizationID),
			zap.Int("documents_processed", result.Data.DocumentsProcessed),
			zap.Int("embeddings_created", result.Data.EmbeddingsCreated),
		)
	}

	return result, nil
}

// Status queries the backend for the organization's sync state.
func (s *SyncService) Status(ctx context.Context, organizationID string) domain.Result[domain.SyncStatusPayload] {
	return s.gateway.SyncStatus(ctx, organizationID)
}
