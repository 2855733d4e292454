package repositories

import (
	"context"
	"fmt"

	"github.com/planflow/plan-engine/pkg/database"
	"github.com/planflow/plan-engine/pkg/models"
)

// ActionRepository provides read access to the seeded action rows.
type ActionRepository interface {
	List(ctx context.Context, q database.Querier) ([]*models.Action, error)
	GetByID(ctx context.Context, q database.Querier, id string) (*models.Action, error)
}

type actionRepository struct{}

// NewActionRepository creates a new ActionRepository.
func NewActionRepository() ActionRepository {
	return &actionRepository{}
}

var _ ActionRepository = (*actionRepository)(nil)

func (r *actionRepository) List(ctx context.Context, q database.Querier) ([]*models.Action, error) {
	query := `
		SELECT id, name, input_output, inserted_at
		FROM actions
		ORDER BY inserted_at DESC, name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query actions: %w", translateDBError(err))
	}
	return decodeAll(rows, decodeAction)
}

func (r *actionRepository) GetByID(ctx context.Context, q database.Querier, id string) (*models.Action, error) {
	rows, err := q.Query(ctx,
		`SELECT id, name, input_output, inserted_at FROM actions WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query action: %w", translateDBError(err))
	}

	rec, err := collectOne(rows)
	if err != nil {
		return nil, err
	}
	return decodeAction(rec)
}

func decodeAction(rec record) (*models.Action, error) {
	id, err := rec.text("id")
	if err != nil {
		return nil, err
	}
	name, err := rec.text("name")
	if err != nil {
		return nil, err
	}

	inputOutput := models.InputOutputInput
	rawIO, err := rec.textDefault("input_output")
	if err != nil {
		return nil, err
	}
	if rawIO != "" {
		inputOutput, err = models.ParseInputOutput(rawIO)
		if err != nil {
			return nil, err
		}
	}

	insertedAt, err := rec.timeDefault("inserted_at")
	if err != nil {
		return nil, err
	}

	return &models.Action{
		ID:          id,
		Name:        name,
		InputOutput: inputOutput,
		InsertedAt:  insertedAt,
	}, nil
}
