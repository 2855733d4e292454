package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/planflow/plan-engine/pkg/apperrors"
	"github.com/planflow/plan-engine/pkg/database"
	"github.com/planflow/plan-engine/pkg/ids"
	"github.com/planflow/plan-engine/pkg/models"
	"github.com/planflow/plan-engine/pkg/repositories"
)

// NewProcess carries the fields for creating a process inside a plan,
// including the label and agent associations applied at creation time.
type NewProcess struct {
	Title       string
	Description *string
	PlanID      string
	StartAt     *time.Time
	DueAt       *time.Time
	LabelIDs    []string
	AgentIDs    []string
}

// ProcessUpdate carries the replacement fields for a process. LabelIDs and
// AgentIDs replace the existing associations wholesale.
type ProcessUpdate struct {
	ID          string
	Title       string
	Description *string
	LabelIDs    []string
	AgentIDs    []string
}

// ProcessService covers process lifecycle within plans.
type ProcessService interface {
	Create(ctx context.Context, input NewProcess) (*models.Process, error)
	Update(ctx context.Context, input ProcessUpdate) (*models.Process, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type processService struct {
	store       database.Store
	processRepo repositories.ProcessRepository
	logger      *zap.Logger
}

// NewProcessService creates a new process service with dependencies.
func NewProcessService(store database.Store, processRepo repositories.ProcessRepository, logger *zap.Logger) ProcessService {
	return &processService{
		store:       store,
		processRepo: processRepo,
		logger:      logger,
	}
}

// Create inserts the process row and its label and agent links in one
// transaction. A bad label or agent reference rolls the whole creation back.
func (s *processService) Create(ctx context.Context, input NewProcess) (*models.Process, error) {
	process := &models.Process{
		ID:          ids.New(),
		Title:       input.Title,
		Description: input.Description,
		PlanID:      input.PlanID,
		StartAt:     input.StartAt,
		DueAt:       input.DueAt,
		InsertedAt:  time.Now().UTC(),
	}

	var created *models.Process
	err := s.store.WithTx(ctx, func(q database.Querier) error {
		var err error
		created, err = s.processRepo.Insert(ctx, q, process)
		if err != nil {
			return err
		}
		for _, labelID := range input.LabelIDs {
			if err := s.processRepo.LinkLabel(ctx, q, created.ID, labelID); err != nil {
				return err
			}
		}
		for _, agentID := range input.AgentIDs {
			if err := s.processRepo.LinkAgent(ctx, q, created.ID, agentID); err != nil {
				return err
			}
		}

		created.Labels, err = s.processRepo.LabelsForProcess(ctx, q, created.ID)
		if err != nil {
			return err
		}
		created.Agents, err = s.processRepo.AgentsForProcess(ctx, q, created.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	created.Commitments = []*models.Commitment{}
	s.logger.Debug("created process",
		zap.String("id", created.ID),
		zap.String("plan_id", created.PlanID))
	return created, nil
}

// Update replaces the process fields and rewrites both association sets
// inside one transaction. Unlink-then-relink keeps the result exactly the
// submitted set without diffing.
func (s *processService) Update(ctx context.Context, input ProcessUpdate) (*models.Process, error) {
	var updated *models.Process
	err := s.store.WithTx(ctx, func(q database.Querier) error {
		affected, err := s.processRepo.Update(ctx, q, input.ID, input.Title, input.Description)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("process %s: %w", input.ID, apperrors.ErrNotFound)
		}

		if err := s.processRepo.UnlinkLabels(ctx, q, input.ID); err != nil {
			return err
		}
		if err := s.processRepo.UnlinkAgents(ctx, q, input.ID); err != nil {
			return err
		}
		for _, labelID := range input.LabelIDs {
			if err := s.processRepo.LinkLabel(ctx, q, input.ID, labelID); err != nil {
				return err
			}
		}
		for _, agentID := range input.AgentIDs {
			if err := s.processRepo.LinkAgent(ctx, q, input.ID, agentID); err != nil {
				return err
			}
		}

		updated, err = s.processRepo.GetByID(ctx, q, input.ID)
		if err != nil {
			return err
		}
		updated.Labels, err = s.processRepo.LabelsForProcess(ctx, q, input.ID)
		if err != nil {
			return err
		}
		updated.Agents, err = s.processRepo.AgentsForProcess(ctx, q, input.ID)
		if err != nil {
			return err
		}
		updated.Commitments = []*models.Commitment{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the process and its join rows in one transaction. The join
// tables carry no cascade, so the unlinks must land with the delete or not
// at all.
func (s *processService) Delete(ctx context.Context, id string) (int64, error) {
	var deleted int64
	err := s.store.WithTx(ctx, func(q database.Querier) error {
		if err := s.processRepo.UnlinkLabels(ctx, q, id); err != nil {
			return err
		}
		if err := s.processRepo.UnlinkAgents(ctx, q, id); err != nil {
			return err
		}
		var err error
		deleted, err = s.processRepo.Delete(ctx, q, id)
		return err
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
