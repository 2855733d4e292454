package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/planflow/plan-engine/pkg/database"
	"github.com/planflow/plan-engine/pkg/ids"
	"github.com/planflow/plan-engine/pkg/models"
	"github.com/planflow/plan-engine/pkg/repositories"
)

// NewResourceSpecification carries the fields for creating a resource
// specification. The unique_name slug is derived from Name.
type NewResourceSpecification struct {
	Name    string
	AgentID *string
}

// ResourceSpecificationService covers resource specification lifecycle.
type ResourceSpecificationService interface {
	Create(ctx context.Context, input NewResourceSpecification) (*models.ResourceSpecification, error)
	List(ctx context.Context, agentUniqueName *string) ([]*models.ResourceSpecification, error)
	DeleteByUniqueName(ctx context.Context, uniqueName string) (int64, error)
}

type resourceSpecificationService struct {
	store    database.Store
	specRepo repositories.ResourceSpecificationRepository
	logger   *zap.Logger
}

// NewResourceSpecificationService creates a new resource specification
// service with dependencies.
func NewResourceSpecificationService(store database.Store, specRepo repositories.ResourceSpecificationRepository, logger *zap.Logger) ResourceSpecificationService {
	return &resourceSpecificationService{
		store:    store,
		specRepo: specRepo,
		logger:   logger,
	}
}

func (s *resourceSpecificationService) Create(ctx context.Context, input NewResourceSpecification) (*models.ResourceSpecification, error) {
	spec := &models.ResourceSpecification{
		ID:         ids.New(),
		Name:       input.Name,
		UniqueName: models.UniqueName(input.Name),
		AgentID:    input.AgentID,
		InsertedAt: time.Now().UTC(),
	}
	return s.specRepo.Insert(ctx, s.store.Querier(), spec)
}

func (s *resourceSpecificationService) List(ctx context.Context, agentUniqueName *string) ([]*models.ResourceSpecification, error) {
	if agentUniqueName != nil {
		return s.specRepo.ListByAgentUniqueName(ctx, s.store.Querier(), *agentUniqueName)
	}
	return s.specRepo.List(ctx, s.store.Querier())
}

func (s *resourceSpecificationService) DeleteByUniqueName(ctx context.Context, uniqueName string) (int64, error) {
	return s.specRepo.DeleteByUniqueName(ctx, s.store.Querier(), uniqueName)
}
