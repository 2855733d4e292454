package repositories

import (
	"context"
	"fmt"

	"github.com/planflow/plan-engine/pkg/database"
	"github.com/planflow/plan-engine/pkg/models"
)

// AgentRepository provides data access for agents.
type AgentRepository interface {
	Insert(ctx context.Context, q database.Querier, agent *models.Agent) (*models.Agent, error)
	List(ctx context.Context, q database.Querier) ([]*models.Agent, error)
	ListByType(ctx context.Context, q database.Querier, agentType models.AgentType) ([]*models.Agent, error)
	GetByID(ctx context.Context, q database.Querier, id string) (*models.Agent, error)
	GetByIDs(ctx context.Context, q database.Querier, ids []string) ([]*models.Agent, error)
	DeleteByUniqueName(ctx context.Context, q database.Querier, uniqueName string) (int64, error)
}

type agentRepository struct{}

// NewAgentRepository creates a new AgentRepository.
func NewAgentRepository() AgentRepository {
	return &agentRepository{}
}

var _ AgentRepository = (*agentRepository)(nil)

func (r *agentRepository) Insert(ctx context.Context, q database.Querier, agent *models.Agent) (*models.Agent, error) {
	query := `
		INSERT INTO agents (id, name, unique_name, email, agent_type, inserted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, unique_name, email, agent_type, inserted_at`

	rows, err := q.Query(ctx, query,
		agent.ID,
		agent.Name,
		agent.UniqueName,
		agent.Email,
		string(agent.AgentType),
		models.MillisFromTime(agent.InsertedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert agent: %w", translateDBError(err))
	}

	rec, err := collectOne(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted agent: %w", translateDBError(err))
	}
	return decodeAgent(rec)
}

func (r *agentRepository) List(ctx context.Context, q database.Querier) ([]*models.Agent, error) {
	query := `
		SELECT id, name, unique_name, email, agent_type, inserted_at
		FROM agents
		ORDER BY inserted_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query agents: %w", translateDBError(err))
	}
	return decodeAll(rows, decodeAgent)
}

func (r *agentRepository) ListByType(ctx context.Context, q database.Querier, agentType models.AgentType) ([]*models.Agent, error) {
	query := `
		SELECT id, name, unique_name, email, agent_type, inserted_at
		FROM agents
		WHERE agent_type = $1
		ORDER BY inserted_at DESC`

	rows, err := q.Query(ctx, query, string(agentType))
	if err != nil {
		return nil, fmt.Errorf("failed to query agents by type: %w", translateDBError(err))
	}
	return decodeAll(rows, decodeAgent)
}

func (r *agentRepository) GetByID(ctx context.Context, q database.Querier, id string) (*models.Agent, error) {
	query := `
		SELECT id, name, unique_name, email, agent_type, inserted_at
		FROM agents
		WHERE id = $1`

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query agent: %w", translateDBError(err))
	}

	rec, err := collectOne(rows)
	if err != nil {
		return nil, err
	}
	return decodeAgent(rec)
}

func (r *agentRepository) GetByIDs(ctx context.Context, q database.Querier, ids []string) ([]*models.Agent, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, name, unique_name, email, agent_type, inserted_at
		FROM agents
		WHERE id = ANY($1)
		ORDER BY inserted_at DESC`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query agents by ids: %w", translateDBError(err))
	}
	return decodeAll(rows, decodeAgent)
}

func (r *agentRepository) DeleteByUniqueName(ctx context.Context, q database.Querier, uniqueName string) (int64, error) {
	tag, err := q.Exec(ctx, `DELETE FROM agents WHERE unique_name = $1`, uniqueName)
	if err != nil {
		return 0, fmt.Errorf("failed to delete agent: %w", translateDBError(err))
	}
	return tag.RowsAffected(), nil
}

// decodeAgent builds an Agent from whatever agent columns the projection
// carries. Join projections omit email or agent_type; an absent agent_type
// decodes to the Individual default variant.
func decodeAgent(rec record) (*models.Agent, error) {
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
	email, err := rec.textPtr("email")
	if err != nil {
		return nil, err
	}

	agentType := models.AgentTypeIndividual
	rawType, err := rec.textDefault("agent_type")
	if err != nil {
		return nil, err
	}
	if rawType != "" {
		agentType, err = models.ParseAgentType(rawType)
		if err != nil {
			return nil, err
		}
	}

	insertedAt, err := rec.timeDefault("inserted_at")
	if err != nil {
		return nil, err
	}

	return &models.Agent{
		ID:         id,
		Name:       name,
		UniqueName: uniqueName,
		Email:      email,
		AgentType:  agentType,
		InsertedAt: insertedAt,
	}, nil
}
