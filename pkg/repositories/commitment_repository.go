package repositories

import (
	"context"
	"fmt"

	"github.com/planflow/plan-engine/pkg/database"
	"github.com/planflow/plan-engine/pkg/models"
)

// CommitmentUpdate carries the replacement field values for a commitment.
// Nil fields keep the stored value for NOT NULL columns; the genuinely
// nullable columns (assigned agent, due date) are replaced by whatever is
// passed, including nil.
type CommitmentUpdate struct {
	ID                      string
	Description             *string
	ActionID                *string
	Quantity                *int
	UnitID                  *string
	ResourceSpecificationID *string
	AssignedAgentID         *string
	DueAt                   *int64
}

// CommitmentRepository provides data access for commitments.
type CommitmentRepository interface {
	Insert(ctx context.Context, q database.Querier, commitment *models.Commitment) (*models.Commitment, error)
	Update(ctx context.Context, q database.Querier, update CommitmentUpdate) (int64, error)
	DeleteByID(ctx context.Context, q database.Querier, id string) (int64, error)
}

type commitmentRepository struct{}

// NewCommitmentRepository creates a new CommitmentRepository.
func NewCommitmentRepository() CommitmentRepository {
	return &commitmentRepository{}
}

var _ CommitmentRepository = (*commitmentRepository)(nil)

func (r *commitmentRepository) Insert(ctx context.Context, q database.Querier, commitment *models.Commitment) (*models.Commitment, error) {
	query := `
		INSERT INTO commitments (id, description, process_id, action_id, assigned_agent_id,
		                         quantity, unit_id, resource_specification_id, due_at, inserted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, description, process_id, action_id, assigned_agent_id,
		          quantity, unit_id, resource_specification_id, due_at, inserted_at`

	var dueAt *int64
	if commitment.DueAt != nil {
		ms := models.MillisFromTime(*commitment.DueAt)
		dueAt = &ms
	}

	rows, err := q.Query(ctx, query,
		commitment.ID,
		commitment.Description,
		commitment.ProcessID,
		commitment.ActionID,
		commitment.AssignedAgentID,
		commitment.Quantity,
		commitment.UnitID,
		commitment.ResourceSpecificationID,
		dueAt,
		models.MillisFromTime(commitment.InsertedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert commitment: %w", translateDBError(err))
	}

	rec, err := collectOne(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted commitment: %w", translateDBError(err))
	}
	return decodeCommitment(rec)
}

func (r *commitmentRepository) Update(ctx context.Context, q database.Querier, update CommitmentUpdate) (int64, error) {
	query := `
		UPDATE commitments
		SET description = COALESCE($2, description),
		    action_id = COALESCE($3, action_id),
		    quantity = COALESCE($4, quantity),
		    unit_id = COALESCE($5, unit_id),
		    resource_specification_id = COALESCE($6, resource_specification_id),
		    assigned_agent_id = $7,
		    due_at = $8
		WHERE id = $1`

	tag, err := q.Exec(ctx, query,
		update.ID,
		update.Description,
		update.ActionID,
		update.Quantity,
		update.UnitID,
		update.ResourceSpecificationID,
		update.AssignedAgentID,
		update.DueAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update commitment: %w", translateDBError(err))
	}
	return tag.RowsAffected(), nil
}

func (r *commitmentRepository) DeleteByID(ctx context.Context, q database.Querier, id string) (int64, error) {
	tag, err := q.Exec(ctx, `DELETE FROM commitments WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete commitment: %w", translateDBError(err))
	}
	return tag.RowsAffected(), nil
}

func decodeCommitment(rec record) (*models.Commitment, error) {
	id, err := rec.text("id")
	if err != nil {
		return nil, err
	}
	description, err := rec.textDefault("description")
	if err != nil {
		return nil, err
	}
	processID, err := rec.textDefault("process_id")
	if err != nil {
		return nil, err
	}
	actionID, err := rec.text("action_id")
	if err != nil {
		return nil, err
	}
	assignedAgentID, err := rec.textPtr("assigned_agent_id")
	if err != nil {
		return nil, err
	}
	quantity, err := rec.intDefault("quantity")
	if err != nil {
		return nil, err
	}
	unitID, err := rec.text("unit_id")
	if err != nil {
		return nil, err
	}
	resourceSpecificationID, err := rec.text("resource_specification_id")
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

	return &models.Commitment{
		ID:                      id,
		Description:             description,
		ProcessID:               processID,
		ActionID:                actionID,
		AssignedAgentID:         assignedAgentID,
		Quantity:                quantity,
		UnitID:                  unitID,
		ResourceSpecificationID: resourceSpecificationID,
		DueAt:                   dueAt,
		InsertedAt:              insertedAt,
	}, nil
}
