package repositories

import (
	"context"
	"fmt"

	"github.com/planflow/plan-engine/pkg/database"
	"github.com/planflow/plan-engine/pkg/models"
)

// ProcessRepository provides data access for processes and their label/agent
// join rows. Link mutations are issued individually so the service layer can
// run them inside one transaction.
type ProcessRepository interface {
	Insert(ctx context.Context, q database.Querier, process *models.Process) (*models.Process, error)
	Update(ctx context.Context, q database.Querier, id, title string, description *string) (int64, error)
	Delete(ctx context.Context, q database.Querier, id string) (int64, error)
	GetByID(ctx context.Context, q database.Querier, id string) (*models.Process, error)
	ListByPlanID(ctx context.Context, q database.Querier, planID string) ([]*models.Process, error)

	LinkLabel(ctx context.Context, q database.Querier, processID, labelID string) error
	LinkAgent(ctx context.Context, q database.Querier, processID, agentID string) error
	UnlinkLabels(ctx context.Context, q database.Querier, processID string) error
	UnlinkAgents(ctx context.Context, q database.Querier, processID string) error
	LabelsForProcess(ctx context.Context, q database.Querier, processID string) ([]*models.Label, error)
	AgentsForProcess(ctx context.Context, q database.Querier, processID string) ([]*models.Agent, error)
}

type processRepository struct{}

// NewProcessRepository creates a new ProcessRepository.
func NewProcessRepository() ProcessRepository {
	return &processRepository{}
}

var _ ProcessRepository = (*processRepository)(nil)

func (r *processRepository) Insert(ctx context.Context, q database.Querier, process *models.Process) (*models.Process, error) {
	query := `
		INSERT INTO processes (id, title, description, plan_id, start_at, due_at, inserted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, description, plan_id, start_at, due_at, inserted_at`

	var startAt, dueAt *int64
	if process.StartAt != nil {
		ms := models.MillisFromTime(*process.StartAt)
		startAt = &ms
	}
	if process.DueAt != nil {
		ms := models.MillisFromTime(*process.DueAt)
		dueAt = &ms
	}

	rows, err := q.Query(ctx, query,
		process.ID,
		process.Title,
		process.Description,
		process.PlanID,
		startAt,
		dueAt,
		models.MillisFromTime(process.InsertedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert process: %w", translateDBError(err))
	}

	rec, err := collectOne(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted process: %w", translateDBError(err))
	}
	return decodeProcess(rec)
}

func (r *processRepository) Update(ctx context.Context, q database.Querier, id, title string, description *string) (int64, error) {
	tag, err := q.Exec(ctx,
		`UPDATE processes SET title = $2, description = $3 WHERE id = $1`,
		id, title, description)
	if err != nil {
		return 0, fmt.Errorf("failed to update process: %w", translateDBError(err))
	}
	return tag.RowsAffected(), nil
}

func (r *processRepository) Delete(ctx context.Context, q database.Querier, id string) (int64, error) {
	tag, err := q.Exec(ctx, `DELETE FROM processes WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete process: %w", translateDBError(err))
	}
	return tag.RowsAffected(), nil
}

func (r *processRepository) GetByID(ctx context.Context, q database.Querier, id string) (*models.Process, error) {
	query := `
		SELECT id, title, description, plan_id, start_at, due_at, inserted_at
		FROM processes
		WHERE id = $1`

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query process: %w", translateDBError(err))
	}

	rec, err := collectOne(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get process %s: %w", id, translateDBError(err))
	}
	return decodeProcess(rec)
}

func (r *processRepository) ListByPlanID(ctx context.Context, q database.Querier, planID string) ([]*models.Process, error) {
	query := `
		SELECT id, title, description, plan_id, start_at, due_at, inserted_at
		FROM processes
		WHERE processes.plan_id = $1
		ORDER BY inserted_at DESC`

	rows, err := q.Query(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query processes: %w", translateDBError(err))
	}
	return decodeAll(rows, decodeProcess)
}

func (r *processRepository) LinkLabel(ctx context.Context, q database.Querier, processID, labelID string) error {
	_, err := q.Exec(ctx,
		`INSERT INTO process_labels (process_id, label_id) VALUES ($1, $2)`,
		processID, labelID)
	if err != nil {
		return fmt.Errorf("failed to link process to label: %w", translateDBError(err))
	}
	return nil
}

func (r *processRepository) LinkAgent(ctx context.Context, q database.Querier, processID, agentID string) error {
	_, err := q.Exec(ctx,
		`INSERT INTO process_agents (process_id, agent_id) VALUES ($1, $2)`,
		processID, agentID)
	if err != nil {
		return fmt.Errorf("failed to link process to agent: %w", translateDBError(err))
	}
	return nil
}

func (r *processRepository) UnlinkLabels(ctx context.Context, q database.Querier, processID string) error {
	_, err := q.Exec(ctx, `DELETE FROM process_labels WHERE process_id = $1`, processID)
	if err != nil {
		return fmt.Errorf("failed to unlink process labels: %w", translateDBError(err))
	}
	return nil
}

func (r *processRepository) UnlinkAgents(ctx context.Context, q database.Querier, processID string) error {
	_, err := q.Exec(ctx, `DELETE FROM process_agents WHERE process_id = $1`, processID)
	if err != nil {
		return fmt.Errorf("failed to unlink process agents: %w", translateDBError(err))
	}
	return nil
}

func (r *processRepository) LabelsForProcess(ctx context.Context, q database.Querier, processID string) ([]*models.Label, error) {
	query := `
		SELECT labels.id, name, unique_name, color, labels.inserted_at
		FROM labels
		INNER JOIN process_labels ON process_labels.label_id = labels.id
		WHERE process_labels.process_id = $1`

	rows, err := q.Query(ctx, query, processID)
	if err != nil {
		return nil, fmt.Errorf("failed to query process labels: %w", translateDBError(err))
	}
	return decodeAll(rows, decodeLabel)
}

func (r *processRepository) AgentsForProcess(ctx context.Context, q database.Querier, processID string) ([]*models.Agent, error) {
	query := `
		SELECT agents.id, name, unique_name, agent_type, agents.inserted_at
		FROM agents
		INNER JOIN process_agents ON process_agents.agent_id = agents.id
		WHERE process_agents.process_id = $1`

	rows, err := q.Query(ctx, query, processID)
	if err != nil {
		return nil, fmt.Errorf("failed to query process agents: %w", translateDBError(err))
	}
	return decodeAll(rows, decodeAgent)
}

func decodeProcess(rec record) (*models.Process, error) {
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
	planID, err := rec.textDefault("plan_id")
	if err != nil {
		return nil, err
	}
	startAt, err := rec.timePtr("start_at")
	if err != nil {
		return nil, err
	}
	dueAt, err := rec.timePtr("due_at")
	if err != nil {
		return nil, err
	}
	insertedAt, err := rec.timeDefault("inserted_at")
	if err != nil {
		return nil, err
	}

	return &models.Process{
		ID:          id,
		Title:       title,
		Description: description,
		PlanID:      planID,
		StartAt:     startAt,
		DueAt:       dueAt,
		InsertedAt:  insertedAt,
	}, nil
}
