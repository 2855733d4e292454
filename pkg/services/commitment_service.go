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

// NewCommitment carries the fields for creating a commitment on a process.
type NewCommitment struct {
	Description             string
	ProcessID               string
	ActionID                string
	AssignedAgentID         *string
	Quantity                int
	UnitID                  string
	ResourceSpecificationID string
	DueAt                   *time.Time
}

// CommitmentPatch carries partial replacement fields for a commitment. Nil
// fields keep the stored value, except AssignedAgentID and DueAt which are
// written as given because the columns are nullable.
type CommitmentPatch struct {
	ID                      string
	Description             *string
	ActionID                *string
	Quantity                *int
	UnitID                  *string
	ResourceSpecificationID *string
	AssignedAgentID         *string
	DueAt                   *time.Time
}

// CommitmentService covers commitment lifecycle on processes.
type CommitmentService interface {
	Create(ctx context.Context, input NewCommitment) (*models.Commitment, error)
	Update(ctx context.Context, patch CommitmentPatch) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type commitmentService struct {
	store          database.Store
	commitmentRepo repositories.CommitmentRepository
	actionRepo     repositories.ActionRepository
	unitRepo       repositories.UnitRepository
	specRepo       repositories.ResourceSpecificationRepository
	agentRepo      repositories.AgentRepository
	logger         *zap.Logger
}

// NewCommitmentService creates a new commitment service with dependencies.
func NewCommitmentService(
	store database.Store,
	commitmentRepo repositories.CommitmentRepository,
	actionRepo repositories.ActionRepository,
	unitRepo repositories.UnitRepository,
	specRepo repositories.ResourceSpecificationRepository,
	agentRepo repositories.AgentRepository,
	logger *zap.Logger,
) CommitmentService {
	return &commitmentService{
		store:          store,
		commitmentRepo: commitmentRepo,
		actionRepo:     actionRepo,
		unitRepo:       unitRepo,
		specRepo:       specRepo,
		agentRepo:      agentRepo,
		logger:         logger,
	}
}

// Create inserts the commitment and decorates its singleton relations so the
// response can render the action, unit, resource specification, and assignee
// without another round trip from the client.
func (s *commitmentService) Create(ctx context.Context, input NewCommitment) (*models.Commitment, error) {
	q := s.store.Querier()

	commitment := &models.Commitment{
		ID:                      ids.New(),
		Description:             input.Description,
		ProcessID:               input.ProcessID,
		ActionID:                input.ActionID,
		AssignedAgentID:         input.AssignedAgentID,
		Quantity:                input.Quantity,
		UnitID:                  input.UnitID,
		ResourceSpecificationID: input.ResourceSpecificationID,
		DueAt:                   input.DueAt,
		InsertedAt:              time.Now().UTC(),
	}

	created, err := s.commitmentRepo.Insert(ctx, q, commitment)
	if err != nil {
		return nil, err
	}

	created.Action, err = s.actionRepo.GetByID(ctx, q, created.ActionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load action for commitment: %w", err)
	}
	created.Unit, err = s.unitRepo.GetByID(ctx, q, created.UnitID)
	if err != nil {
		return nil, fmt.Errorf("failed to load unit for commitment: %w", err)
	}
	created.ResourceSpecification, err = s.specRepo.GetByID(ctx, q, created.ResourceSpecificationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load resource specification for commitment: %w", err)
	}
	if created.AssignedAgentID != nil {
		created.AssignedAgent, err = s.agentRepo.GetByID(ctx, q, *created.AssignedAgentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load assigned agent for commitment: %w", err)
		}
	}

	s.logger.Debug("created commitment",
		zap.String("id", created.ID),
		zap.String("process_id", created.ProcessID))
	return created, nil
}

func (s *commitmentService) Update(ctx context.Context, patch CommitmentPatch) (int64, error) {
	update := repositories.CommitmentUpdate{
		ID:                      patch.ID,
		Description:             patch.Description,
		ActionID:                patch.ActionID,
		Quantity:                patch.Quantity,
		UnitID:                  patch.UnitID,
		ResourceSpecificationID: patch.ResourceSpecificationID,
		AssignedAgentID:         patch.AssignedAgentID,
	}
	if patch.DueAt != nil {
		ms := models.MillisFromTime(*patch.DueAt)
		update.DueAt = &ms
	}

	affected, err := s.commitmentRepo.Update(ctx, s.store.Querier(), update)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, fmt.Errorf("commitment %s: %w", patch.ID, apperrors.ErrNotFound)
	}
	return affected, nil
}

func (s *commitmentService) Delete(ctx context.Context, id string) (int64, error) {
	return s.commitmentRepo.DeleteByID(ctx, s.store.Querier(), id)
}
