package repositories

import (
	"context"
	"fmt"

	"github.com/planflow/plan-engine/pkg/database"
	"github.com/planflow/plan-engine/pkg/models"
)

// ResourceSpecificationRepository provides data access for resource
// specifications.
type ResourceSpecificationRepository interface {
	Insert(ctx context.Context, q database.Querier, spec *models.ResourceSpecification) (*models.ResourceSpecification, error)
	List(ctx context.Context, q database.Querier) ([]*models.ResourceSpecification, error)
	ListByAgentUniqueName(ctx context.Context, q database.Querier, uniqueName string) ([]*models.ResourceSpecification, error)
	GetByID(ctx context.Context, q database.Querier, id string) (*models.ResourceSpecification, error)
	DeleteByUniqueName(ctx context.Context, q database.Querier, uniqueName string) (int64, error)
}

type resourceSpecificationRepository struct{}

// NewResourceSpecificationRepository creates a new ResourceSpecificationRepository.
func NewResourceSpecificationRepository() ResourceSpecificationRepository {
	return &resourceSpecificationRepository{}
}

var _ ResourceSpecificationRepository = (*resourceSpecificationRepository)(nil)

func (r *resourceSpecificationRepository) Insert(ctx context.Context, q database.Querier, spec *models.ResourceSpecification) (*models.ResourceSpecification, error) {
	query := `
		INSERT INTO resource_specifications (id, name, unique_name, agent_id, inserted_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, unique_name, agent_id, inserted_at`

	rows, err := q.Query(ctx, query,
		spec.ID,
		spec.Name,
		spec.UniqueName,
		spec.AgentID,
		models.MillisFromTime(spec.InsertedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert resource specification: %w", translateDBError(err))
	}

	rec, err := collectOne(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted resource specification: %w", translateDBError(err))
	}
	return decodeResourceSpecification(rec)
}

func (r *resourceSpecificationRepository) List(ctx context.Context, q database.Querier) ([]*models.ResourceSpecification, error) {
	query := `
		SELECT id, name, unique_name, agent_id, inserted_at
		FROM resource_specifications
		ORDER BY inserted_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query resource specifications: %w", translateDBError(err))
	}
	return decodeAll(rows, decodeResourceSpecification)
}

func (r *resourceSpecificationRepository) ListByAgentUniqueName(ctx context.Context, q database.Querier, uniqueName string) ([]*models.ResourceSpecification, error) {
	query := `
		SELECT resource_specifications.id, resource_specifications.name,
		       resource_specifications.unique_name, resource_specifications.agent_id,
		       resource_specifications.inserted_at
		FROM resource_specifications
		JOIN agents ON agents.id = resource_specifications.agent_id
		WHERE agents.unique_name = $1
		ORDER BY resource_specifications.inserted_at DESC`

	rows, err := q.Query(ctx, query, uniqueName)
	if err != nil {
		return nil, fmt.Errorf("failed to query resource specifications by agent: %w", translateDBError(err))
	}
	return decodeAll(rows, decodeResourceSpecification)
}

func (r *resourceSpecificationRepository) GetByID(ctx context.Context, q database.Querier, id string) (*models.ResourceSpecification, error) {
	rows, err := q.Query(ctx,
		`SELECT id, name, unique_name, agent_id, inserted_at
		 FROM resource_specifications WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query resource specification: %w", translateDBError(err))
	}

	rec, err := collectOne(rows)
	if err != nil {
		return nil, err
	}
	return decodeResourceSpecification(rec)
}

func (r *resourceSpecificationRepository) DeleteByUniqueName(ctx context.Context, q database.Querier, uniqueName string) (int64, error) {
	tag, err := q.Exec(ctx,
		`DELETE FROM resource_specifications WHERE unique_name = $1`, uniqueName)
	if err != nil {
		return 0, fmt.Errorf("failed to delete resource specification: %w", translateDBError(err))
	}
	return tag.RowsAffected(), nil
}

func decodeResourceSpecification(rec record) (*models.ResourceSpecification, error) {
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
	agentID, err := rec.textPtr("agent_id")
	if err != nil {
		return nil, err
	}
	insertedAt, err := rec.timeDefault("inserted_at")
	if err != nil {
		return nil, err
	}

	return &models.ResourceSpecification{
		ID:         id,
		Name:       name,
		UniqueName: uniqueName,
		AgentID:    agentID,
		InsertedAt: insertedAt,
	}, nil
}
