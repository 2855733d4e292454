package repositories

import (
	"context"
	"fmt"

	"github.com/planflow/plan-engine/pkg/database"
	"github.com/planflow/plan-engine/pkg/models"
)

// RelationshipRepository provides data access for agent relationships and
// their types. Relationship rows come back with the type name joined in;
// subject/object agents are decorated by the service layer.
type RelationshipRepository interface {
	Insert(ctx context.Context, q database.Querier, rel *models.AgentRelationship) (*models.AgentRelationship, error)
	ListByAgent(ctx context.Context, q database.Querier, agentID string) ([]*models.AgentRelationship, error)
	DeleteByID(ctx context.Context, q database.Querier, id string) (int64, error)
	ListTypes(ctx context.Context, q database.Querier) ([]*models.AgentRelationType, error)
}

type relationshipRepository struct{}

// NewRelationshipRepository creates a new RelationshipRepository.
func NewRelationshipRepository() RelationshipRepository {
	return &relationshipRepository{}
}

var _ RelationshipRepository = (*relationshipRepository)(nil)

func (r *relationshipRepository) Insert(ctx context.Context, q database.Querier, rel *models.AgentRelationship) (*models.AgentRelationship, error) {
	query := `
		INSERT INTO agent_relations (id, subject_id, object_id, agent_relation_type_id, inserted_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, subject_id, object_id, agent_relation_type_id,
		          (SELECT name FROM agent_relation_types WHERE id = $4) AS agent_relation_type_name,
		          inserted_at`

	rows, err := q.Query(ctx, query,
		rel.ID,
		rel.SubjectID,
		rel.ObjectID,
		rel.AgentRelationTypeID,
		models.MillisFromTime(rel.InsertedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert relationship: %w", translateDBError(err))
	}

	rec, err := collectOne(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted relationship: %w", translateDBError(err))
	}
	return decodeRelationship(rec)
}

func (r *relationshipRepository) ListByAgent(ctx context.Context, q database.Querier, agentID string) ([]*models.AgentRelationship, error) {
	query := `
		SELECT agent_relations.id, subject_id, object_id, agent_relation_type_id,
		       agent_relation_types.name AS agent_relation_type_name,
		       agent_relations.inserted_at
		FROM agent_relations
		JOIN agent_relation_types ON agent_relation_types.id = agent_relations.agent_relation_type_id
		WHERE subject_id = $1 OR object_id = $1
		ORDER BY agent_relations.inserted_at DESC`

	rows, err := q.Query(ctx, query, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query relationships: %w", translateDBError(err))
	}
	return decodeAll(rows, decodeRelationship)
}

func (r *relationshipRepository) DeleteByID(ctx context.Context, q database.Querier, id string) (int64, error) {
	tag, err := q.Exec(ctx, `DELETE FROM agent_relations WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete relationship: %w", translateDBError(err))
	}
	return tag.RowsAffected(), nil
}

func (r *relationshipRepository) ListTypes(ctx context.Context, q database.Querier) ([]*models.AgentRelationType, error) {
	query := `
		SELECT id, name, inserted_at
		FROM agent_relation_types
		ORDER BY inserted_at DESC, name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query relation types: %w", translateDBError(err))
	}
	return decodeAll(rows, decodeRelationType)
}

func decodeRelationship(rec record) (*models.AgentRelationship, error) {
	id, err := rec.text("id")
	if err != nil {
		return nil, err
	}
	subjectID, err := rec.text("subject_id")
	if err != nil {
		return nil, err
	}
	objectID, err := rec.text("object_id")
	if err != nil {
		return nil, err
	}
	typeID, err := rec.textDefault("agent_relation_type_id")
	if err != nil {
		return nil, err
	}
	typeName, err := rec.textDefault("agent_relation_type_name")
	if err != nil {
		return nil, err
	}
	insertedAt, err := rec.timeDefault("inserted_at")
	if err != nil {
		return nil, err
	}

	return &models.AgentRelationship{
		ID:                  id,
		SubjectID:           subjectID,
		ObjectID:            objectID,
		AgentRelationTypeID: typeID,
		AgentRelationType:   typeName,
		InsertedAt:          insertedAt,
	}, nil
}

func decodeRelationType(rec record) (*models.AgentRelationType, error) {
	id, err := rec.text("id")
	if err != nil {
		return nil, err
	}
	name, err := rec.text("name")
	if err != nil {
		return nil, err
	}
	insertedAt, err := rec.timeDefault("inserted_at")
	if err != nil {
		return nil, err
	}

	return &models.AgentRelationType{
		ID:         id,
		Name:       name,
		InsertedAt: insertedAt,
	}, nil
}
