package repositories

import (
	"context"
	"fmt"

	"github.com/planflow/plan-engine/pkg/database"
	"github.com/planflow/plan-engine/pkg/models"
)

// UnitRepository provides read access to the seeded unit rows.
type UnitRepository interface {
	List(ctx context.Context, q database.Querier) ([]*models.Unit, error)
	GetByID(ctx context.Context, q database.Querier, id string) (*models.Unit, error)
}

type unitRepository struct{}

// NewUnitRepository creates a new UnitRepository.
func NewUnitRepository() UnitRepository {
	return &unitRepository{}
}

var _ UnitRepository = (*unitRepository)(nil)

func (r *unitRepository) List(ctx context.Context, q database.Querier) ([]*models.Unit, error) {
	query := `
		SELECT id, label, inserted_at
		FROM units
		ORDER BY inserted_at DESC, label`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query units: %w", translateDBError(err))
	}
	return decodeAll(rows, decodeUnit)
}

func (r *unitRepository) GetByID(ctx context.Context, q database.Querier, id string) (*models.Unit, error) {
	rows, err := q.Query(ctx,
		`SELECT id, label, inserted_at FROM units WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query unit: %w", translateDBError(err))
	}

	rec, err := collectOne(rows)
	if err != nil {
		return nil, err
	}
	return decodeUnit(rec)
}

func decodeUnit(rec record) (*models.Unit, error) {
	id, err := rec.text("id")
	if err != nil {
		return nil, err
	}
	label, err := rec.text("label")
	if err != nil {
		return nil, err
	}
	insertedAt, err := rec.timeDefault("inserted_at")
	if err != nil {
		return nil, err
	}

	return &models.Unit{
		ID:         id,
		Label:      label,
		InsertedAt: insertedAt,
	}, nil
}
