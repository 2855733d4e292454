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

// NewLabel carries the fields for creating a label. AgentID scopes the label
// to an owning agent when set.
type NewLabel struct {
	Name    string
	Color   *string
	AgentID *string
}

// LabelService covers label lifecycle.
type LabelService interface {
	Create(ctx context.Context, input NewLabel) (*models.Label, error)
	List(ctx context.Context, agentID *string) ([]*models.Label, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type labelService struct {
	store     database.Store
	labelRepo repositories.LabelRepository
	logger    *zap.Logger
}

// NewLabelService creates a new label service with dependencies.
func NewLabelService(store database.Store, labelRepo repositories.LabelRepository, logger *zap.Logger) LabelService {
	return &labelService{
		store:     store,
		labelRepo: labelRepo,
		logger:    logger,
	}
}

func (s *labelService) Create(ctx context.Context, input NewLabel) (*models.Label, error) {
	label := &models.Label{
		ID:         ids.New(),
		Name:       input.Name,
		UniqueName: models.UniqueName(input.Name),
		Color:      input.Color,
		AgentID:    input.AgentID,
		InsertedAt: time.Now().UTC(),
	}
	return s.labelRepo.Insert(ctx, s.store.Querier(), label)
}

func (s *labelService) List(ctx context.Context, agentID *string) ([]*models.Label, error) {
	if agentID != nil {
		return s.labelRepo.ListByAgentID(ctx, s.store.Querier(), *agentID)
	}
	return s.labelRepo.List(ctx, s.store.Querier())
}

func (s *labelService) Delete(ctx context.Context, id string) (int64, error) {
	return s.labelRepo.DeleteByID(ctx, s.store.Querier(), id)
}
