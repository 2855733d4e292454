package repositories

import (
	"context"
	"fmt"

	"github.com/planflow/plan-engine/pkg/database"
	"github.com/planflow/plan-engine/pkg/models"
)

// PlanRepository provides data access for plans, including the batched
// child fetches the plan-detail assembler consumes. Every *OfPlan fetch is
// scoped to the whole plan via a subquery so the assembler issues one query
// per relation type, never one per process or commitment.
type PlanRepository interface {
	Insert(ctx context.Context, q database.Querier, plan *models.Plan) (*models.Plan, error)
	LinkAgent(ctx context.Context, q database.Querier, planID, agentID string) error
	Update(ctx context.Context, q database.Querier, id, title string, description *string) (int64, error)
	GetByID(ctx context.Context, q database.Querier, id string) (*models.Plan, error)
	ListByAgentID(ctx context.Context, q database.Querier, agentID string) ([]*models.Plan, error)
	ListByAgentUniqueName(ctx context.Context, q database.Querier, uniqueName string) ([]*models.Plan, error)

	LabelsByProcessOfPlan(ctx context.Context, q database.Querier, planID string) ([]Keyed[*models.Label], error)
	AgentsByProcessOfPlan(ctx context.Context, q database.Querier, planID string) ([]Keyed[*models.Agent], error)
	CommitmentsByProcessOfPlan(ctx context.Context, q database.Querier, planID string) ([]Keyed[*models.Commitment], error)
	ActionsByCommitmentOfPlan(ctx context.Context, q database.Querier, planID string) ([]Keyed[*models.Action], error)
	UnitsByCommitmentOfPlan(ctx context.Context, q database.Querier, planID string) ([]Keyed[*models.Unit], error)
	ResourceSpecificationsByCommitmentOfPlan(ctx context.Context, q database.Querier, planID string) ([]Keyed[*models.ResourceSpecification], error)
	AssignedAgentsByCommitmentOfPlan(ctx context.Context, q database.Querier, planID string) ([]Keyed[*models.Agent], error)
}

type planRepository struct{}

// NewPlanRepository creates a new PlanRepository.
func NewPlanRepository() PlanRepository {
	return &planRepository{}
}

var _ PlanRepository = (*planRepository)(nil)

func (r *planRepository) Insert(ctx context.Context, q database.Querier, plan *models.Plan) (*models.Plan, error) {
	query := `
		INSERT INTO plans (id, title, description, inserted_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, inserted_at`

	rows, err := q.Query(ctx, query,
		plan.ID,
		plan.Title,
		plan.Description,
		models.MillisFromTime(plan.InsertedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert plan: %w", translateDBError(err))
	}

	rec, err := collectOne(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted plan: %w", translateDBError(err))
	}
	return decodePlan(rec)
}

func (r *planRepository) LinkAgent(ctx context.Context, q database.Querier, planID, agentID string) error {
	_, err := q.Exec(ctx,
		`INSERT INTO plan_agents (plan_id, agent_id) VALUES ($1, $2)`,
		planID, agentID)
	if err != nil {
		return fmt.Errorf("failed to link plan to agent: %w", translateDBError(err))
	}
	return nil
}

func (r *planRepository) Update(ctx context.Context, q database.Querier, id, title string, description *string) (int64, error) {
	tag, err := q.Exec(ctx,
		`UPDATE plans SET title = $2, description = $3 WHERE id = $1`,
		id, title, description)
	if err != nil {
		return 0, fmt.Errorf("failed to update plan: %w", translateDBError(err))
	}
	return tag.RowsAffected(), nil
}

func (r *planRepository) GetByID(ctx context.Context, q database.Querier, id string) (*models.Plan, error) {
	query := `SELECT id, title, description, inserted_at FROM plans WHERE id = $1`

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query plan: %w", translateDBError(err))
	}

	rec, err := collectOne(rows)
	if err != nil {
		return nil, err
	}
	return decodePlan(rec)
}

func (r *planRepository) ListByAgentID(ctx context.Context, q database.Querier, agentID string) ([]*models.Plan, error) {
	query := `
		SELECT plans.id, title, description, plans.inserted_at
		FROM plans
		JOIN plan_agents ON plan_agents.plan_id = plans.id
		WHERE plan_agents.agent_id = $1
		ORDER BY plans.inserted_at DESC`

	rows, err := q.Query(ctx, query, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans by agent: %w", translateDBError(err))
	}
	return decodeAll(rows, decodePlan)
}

func (r *planRepository) ListByAgentUniqueName(ctx context.Context, q database.Querier, uniqueName string) ([]*models.Plan, error) {
	query := `
		SELECT plans.id, title, description, plans.inserted_at
		FROM plans
		JOIN plan_agents ON plan_agents.plan_id = plans.id
		JOIN agents ON agents.id = plan_agents.agent_id
		WHERE agents.unique_name = $1
		ORDER BY plans.inserted_at DESC`

	rows, err := q.Query(ctx, query, uniqueName)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans by agent unique name: %w", translateDBError(err))
	}
	return decodeAll(rows, decodePlan)
}

func (r *planRepository) LabelsByProcessOfPlan(ctx context.Context, q database.Querier, planID string) ([]Keyed[*models.Label], error) {
	query := `
		SELECT labels.id, name, color, process_id
		FROM labels
		INNER JOIN process_labels ON process_labels.label_id = labels.id
		WHERE process_labels.process_id IN (
			SELECT id FROM processes WHERE processes.plan_id = $1
		)`

	rows, err := q.Query(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query labels of plan: %w", translateDBError(err))
	}
	return collectKeyed(rows, "process_id", decodeLabel)
}

func (r *planRepository) AgentsByProcessOfPlan(ctx context.Context, q database.Querier, planID string) ([]Keyed[*models.Agent], error) {
	query := `
		SELECT agents.id, name, unique_name, agent_type, process_id
		FROM agents
		INNER JOIN process_agents ON process_agents.agent_id = agents.id
		WHERE process_agents.process_id IN (
			SELECT id FROM processes WHERE processes.plan_id = $1
		)`

	rows, err := q.Query(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query agents of plan: %w", translateDBError(err))
	}
	return collectKeyed(rows, "process_id", decodeAgent)
}

func (r *planRepository) CommitmentsByProcessOfPlan(ctx context.Context, q database.Querier, planID string) ([]Keyed[*models.Commitment], error) {
	query := `
		SELECT id, description, inserted_at, process_id, action_id,
		       assigned_agent_id, quantity, unit_id, resource_specification_id, due_at
		FROM commitments
		WHERE commitments.process_id IN (
			SELECT id FROM processes WHERE processes.plan_id = $1
		)
		ORDER BY inserted_at DESC`

	rows, err := q.Query(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query commitments of plan: %w", translateDBError(err))
	}
	return collectKeyed(rows, "process_id", decodeCommitment)
}

func (r *planRepository) ActionsByCommitmentOfPlan(ctx context.Context, q database.Querier, planID string) ([]Keyed[*models.Action], error) {
	query := `
		SELECT actions.id, name, input_output, actions.inserted_at,
		       commitments.id AS commitment_id
		FROM actions
		JOIN commitments ON actions.id = commitments.action_id
		WHERE commitments.process_id IN (
			SELECT id FROM processes WHERE processes.plan_id = $1
		)`

	rows, err := q.Query(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query actions of plan: %w", translateDBError(err))
	}
	return collectKeyed(rows, "commitment_id", decodeAction)
}

func (r *planRepository) UnitsByCommitmentOfPlan(ctx context.Context, q database.Querier, planID string) ([]Keyed[*models.Unit], error) {
	query := `
		SELECT units.id, label, units.inserted_at,
		       commitments.id AS commitment_id
		FROM units
		JOIN commitments ON units.id = commitments.unit_id
		WHERE commitments.process_id IN (
			SELECT id FROM processes WHERE processes.plan_id = $1
		)`

	rows, err := q.Query(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query units of plan: %w", translateDBError(err))
	}
	return collectKeyed(rows, "commitment_id", decodeUnit)
}

func (r *planRepository) ResourceSpecificationsByCommitmentOfPlan(ctx context.Context, q database.Querier, planID string) ([]Keyed[*models.ResourceSpecification], error) {
	query := `
		SELECT resource_specifications.id, name, resource_specifications.inserted_at,
		       commitments.id AS commitment_id
		FROM resource_specifications
		JOIN commitments ON resource_specifications.id = commitments.resource_specification_id
		WHERE commitments.process_id IN (
			SELECT id FROM processes WHERE processes.plan_id = $1
		)`

	rows, err := q.Query(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query resource specifications of plan: %w", translateDBError(err))
	}
	return collectKeyed(rows, "commitment_id", decodeResourceSpecification)
}

func (r *planRepository) AssignedAgentsByCommitmentOfPlan(ctx context.Context, q database.Querier, planID string) ([]Keyed[*models.Agent], error) {
	query := `
		SELECT agents.id, name, unique_name, agents.inserted_at,
		       commitments.id AS commitment_id
		FROM agents
		JOIN commitments ON agents.id = commitments.assigned_agent_id
		WHERE commitments.process_id IN (
			SELECT id FROM processes WHERE processes.plan_id = $1
		)`

	rows, err := q.Query(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assigned agents of plan: %w", translateDBError(err))
	}
	return collectKeyed(rows, "commitment_id", decodeAgent)
}

func decodePlan(rec record) (*models.Plan, error) {
	id, err := rec.text("id")
	if err != nil {
		return nil, err
	}
	title, err := rec.text("title")
	if err != nil {
		return nil, err
	}
	description, err := rec.textPtr("description")
	if err != nil {
		return nil, err
	}
	insertedAt, err := rec.timeDefault("inserted_at")
	if err != nil {
		return nil, err
	}

	return &models.Plan{
		ID:          id,
		Title:       title,
		Description: description,
		InsertedAt:  insertedAt,
	}, nil
}
