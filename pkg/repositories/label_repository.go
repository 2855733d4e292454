package repositories

import (
	"context"
	"fmt"

	"github.com/planflow/plan-engine/pkg/database"
	"github.com/planflow/plan-engine/pkg/models"
)

// LabelRepository provides data access for labels.
type LabelRepository interface {
	Insert(ctx context.Context, q database.Querier, label *models.Label) (*models.Label, error)
	List(ctx context.Context, q database.Querier) ([]*models.Label, error)
	ListByAgentID(ctx context.Context, q database.Querier, agentID string) ([]*models.Label, error)
	DeleteByID(ctx context.Context, q database.Querier, id string) (int64, error)
}

type labelRepository struct{}

// NewLabelRepository creates a new LabelRepository.
func NewLabelRepository() LabelRepository {
	return &labelRepository{}
}

var _ LabelRepository = (*labelRepository)(nil)

func (r *labelRepository) Insert(ctx context.Context, q database.Querier, label *models.Label) (*models.Label, error) {
	query := `
		INSERT INTO labels (id, name, unique_name, color, agent_id, inserted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, unique_name, color, agent_id, inserted_at`

	rows, err := q.Query(ctx, query,
		label.ID,
		label.Name,
		label.UniqueName,
		label.Color,
		label.AgentID,
		models.MillisFromTime(label.InsertedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert label: %w", translateDBError(err))
	}

	rec, err := collectOne(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted label: %w", translateDBError(err))
	}
	return decodeLabel(rec)
}

func (r *labelRepository) List(ctx context.Context, q database.Querier) ([]*models.Label, error) {
	query := `
		SELECT id, name, unique_name, color, agent_id, inserted_at
		FROM labels
		ORDER BY inserted_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query labels: %w", translateDBError(err))
	}
	return decodeAll(rows, decodeLabel)
}

func (r *labelRepository) ListByAgentID(ctx context.Context, q database.Querier, agentID string) ([]*models.Label, error) {
	query := `
		SELECT id, name, unique_name, color, agent_id, inserted_at
		FROM labels
		WHERE agent_id = $1
		ORDER BY inserted_at DESC`

	rows, err := q.Query(ctx, query, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query labels by agent: %w", translateDBError(err))
	}
	return decodeAll(rows, decodeLabel)
}

func (r *labelRepository) DeleteByID(ctx context.Context, q database.Querier, id string) (int64, error) {
	tag, err := q.Exec(ctx, `DELETE FROM labels WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete label: %w", translateDBError(err))
	}
	return tag.RowsAffected(), nil
}

func decodeLabel(rec record) (*models.Label, error) {
	id, err := rec.text("id")
	if err != nil {
		return nil, err
	}
	name, err := rec.text("name")
	if err != nil {
		return nil, err
	}
	uniqueName, err := rec.textDefault("unique_name")
	if err != nil {
		return nil, err
	}
	color, err := rec.textPtr("color")
	if err != nil {
		return nil, err
	}
	agentID, err := rec.textPtr("agent_id")
	if err != nil {
		return nil, err
	}
	insertedAt, err := rec.timeDefault("inserted_at")
	if err != nil {
		return nil, err
	}

	return &models.Label{
		ID:         id,
		Name:       name,
		UniqueName: uniqueName,
		Color:      color,
		AgentID:    agentID,
		InsertedAt: insertedAt,
	}, nil
}
