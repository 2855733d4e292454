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

// NewPlan carries the fields for creating a plan attached to an agent.
type NewPlan struct {
	Title       string
	Description *string
	AgentID     string
}

// PlanUpdate carries the replacement fields for a plan.
type PlanUpdate struct {
	ID          string
	Title       string
	Description *string
}

// PlanFilter selects plans by owning agent. Exactly one field must be set.
type PlanFilter struct {
	AgentID         *string
	AgentUniqueName *string
}

// PlanService covers plan lifecycle and the assembled plan detail view.
type PlanService interface {
	Create(ctx context.Context, input NewPlan) (*models.Plan, error)
	Update(ctx context.Context, input PlanUpdate) (*models.Plan, error)
	ListForAgent(ctx context.Context, filter PlanFilter) ([]*models.Plan, error)
	Detail(ctx context.Context, planID string) (*models.Plan, error)
}

type planService struct {
	store       database.Store
	planRepo    repositories.PlanRepository
	processRepo repositories.ProcessRepository
	logger      *zap.Logger
}

// NewPlanService creates a new plan service with dependencies.
func NewPlanService(store database.Store, planRepo repositories.PlanRepository, processRepo repositories.ProcessRepository, logger *zap.Logger) PlanService {
	return &planService{
		store:       store,
		planRepo:    planRepo,
		processRepo: processRepo,
		logger:      logger,
	}
}

// Create inserts the plan and links it to its owning agent in one
// transaction, so a failed link never leaves an orphaned plan behind.
func (s *planService) Create(ctx context.Context, input NewPlan) (*models.Plan, error) {
	plan := &models.Plan{
		ID:          ids.New(),
		Title:       input.Title,
		Description: input.Description,
		InsertedAt:  time.Now().UTC(),
	}

	var created *models.Plan
	err := s.store.WithTx(ctx, func(q database.Querier) error {
		var err error
		created, err = s.planRepo.Insert(ctx, q, plan)
		if err != nil {
			return err
		}
		return s.planRepo.LinkAgent(ctx, q, created.ID, input.AgentID)
	})
	if err != nil {
		return nil, err
	}

	created.Processes = []*models.Process{}
	s.logger.Debug("created plan", zap.String("id", created.ID))
	return created, nil
}

func (s *planService) Update(ctx context.Context, input PlanUpdate) (*models.Plan, error) {
	q := s.store.Querier()

	affected, err := s.planRepo.Update(ctx, q, input.ID, input.Title, input.Description)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("plan %s: %w", input.ID, apperrors.ErrNotFound)
	}

	return s.planRepo.GetByID(ctx, q, input.ID)
}

func (s *planService) ListForAgent(ctx context.Context, filter PlanFilter) ([]*models.Plan, error) {
	q := s.store.Querier()

	switch {
	case filter.AgentID != nil:
		return s.planRepo.ListByAgentID(ctx, q, *filter.AgentID)
	case filter.AgentUniqueName != nil:
		return s.planRepo.ListByAgentUniqueName(ctx, q, *filter.AgentUniqueName)
	default:
		return nil, fmt.Errorf("plans query requires agentId or agentUniqueName")
	}
}

// Detail assembles the full plan view. The plan row and its processes are
// fetched first, then every child collection of every process comes back in
// one batched query per relation, keyed by the parent id. Attaching is pure
// in-memory grouping, so the whole view costs nine queries regardless of how
// many processes the plan has.
func (s *planService) Detail(ctx context.Context, planID string) (*models.Plan, error) {
	q := s.store.Querier()

	plan, err := s.planRepo.GetByID(ctx, q, planID)
	if err != nil {
		return nil, err
	}

	processes, err := s.processRepo.ListByPlanID(ctx, q, planID)
	if err != nil {
		return nil, err
	}

	labels, err := s.planRepo.LabelsByProcessOfPlan(ctx, q, planID)
	if err != nil {
		return nil, err
	}
	agents, err := s.planRepo.AgentsByProcessOfPlan(ctx, q, planID)
	if err != nil {
		return nil, err
	}
	commitments, err := s.planRepo.CommitmentsByProcessOfPlan(ctx, q, planID)
	if err != nil {
		return nil, err
	}
	actions, err := s.planRepo.ActionsByCommitmentOfPlan(ctx, q, planID)
	if err != nil {
		return nil, err
	}
	units, err := s.planRepo.UnitsByCommitmentOfPlan(ctx, q, planID)
	if err != nil {
		return nil, err
	}
	specs, err := s.planRepo.ResourceSpecificationsByCommitmentOfPlan(ctx, q, planID)
	if err != nil {
		return nil, err
	}
	assignees, err := s.planRepo.AssignedAgentsByCommitmentOfPlan(ctx, q, planID)
	if err != nil {
		return nil, err
	}

	labelsByProcess := groupByKey(labels)
	agentsByProcess := groupByKey(agents)
	commitmentsByProcess := groupByKey(commitments)
	actionByCommitment := firstByKey(actions)
	unitByCommitment := firstByKey(units)
	specByCommitment := firstByKey(specs)
	assigneeByCommitment := firstByKey(assignees)

	for _, process := range processes {
		process.Labels = orEmpty(labelsByProcess[process.ID])
		process.Agents = orEmpty(agentsByProcess[process.ID])

		processCommitments := orEmpty(commitmentsByProcess[process.ID])
		for _, commitment := range processCommitments {
			commitment.Action = actionByCommitment[commitment.ID]
			commitment.Unit = unitByCommitment[commitment.ID]
			commitment.ResourceSpecification = specByCommitment[commitment.ID]
			if commitment.AssignedAgentID != nil {
				commitment.AssignedAgent = assigneeByCommitment[commitment.ID]
			}
		}
		process.Commitments = processCommitments
	}

	plan.Processes = processes
	if plan.Processes == nil {
		plan.Processes = []*models.Process{}
	}
	return plan, nil
}

// orEmpty normalizes a missing grouping bucket to an empty slice so the API
// always renders child collections as lists, never null.
func orEmpty[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
