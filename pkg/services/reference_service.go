package services

import (
	"context"

	"github.com/planflow/plan-engine/pkg/database"
	"github.com/planflow/plan-engine/pkg/models"
	"github.com/planflow/plan-engine/pkg/repositories"
)

// ReferenceService exposes the seeded reference tables: actions and units.
type ReferenceService interface {
	Actions(ctx context.Context) ([]*models.Action, error)
	Units(ctx context.Context) ([]*models.Unit, error)
}

type referenceService struct {
	store      database.Store
	actionRepo repositories.ActionRepository
	unitRepo   repositories.UnitRepository
}

// NewReferenceService creates a new reference service with dependencies.
func NewReferenceService(store database.Store, actionRepo repositories.ActionRepository, unitRepo repositories.UnitRepository) ReferenceService {
	return &referenceService{
		store:      store,
		actionRepo: actionRepo,
		unitRepo:   unitRepo,
	}
}

func (s *referenceService) Actions(ctx context.Context) ([]*models.Action, error) {
	return s.actionRepo.List(ctx, s.store.Querier())
}

func (s *referenceService) Units(ctx context.Context) ([]*models.Unit, error) {
	return s.unitRepo.List(ctx, s.store.Querier())
}
