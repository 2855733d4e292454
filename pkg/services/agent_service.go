package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/planflow/plan-engine/pkg/database"
	"github.com/planflow/plan-engine/pkg/ids"
	"github.com/planflow/plan-engine/pkg/models"
	"github.com/planflow/plan-engine/pkg/repositories"
)

// NewAgent carries the fields for creating an agent. The id and the
// unique_name slug are derived server-side.
type NewAgent struct {
	Name      string
	Email     *string
	AgentType models.AgentType
}

// NewRelationship carries the fields for relating two agents.
type NewRelationship struct {
	SubjectID           string
	ObjectID            string
	AgentRelationTypeID string
}

// AgentService covers agents and the relationships between them.
type AgentService interface {
	Create(ctx context.Context, input NewAgent) (*models.Agent, error)
	List(ctx context.Context) ([]*models.Agent, error)
	Individuals(ctx context.Context) ([]*models.Agent, error)
	Organizations(ctx context.Context) ([]*models.Agent, error)
	DeleteByUniqueName(ctx context.Context, uniqueName string) (int64, error)

	Relations(ctx context.Context, agentID string) ([]*models.AgentRelationship, error)
	RelationTypes(ctx context.Context) ([]*models.AgentRelationType, error)
	CreateRelationship(ctx context.Context, input NewRelationship) (*models.AgentRelationship, error)
	DeleteRelationship(ctx context.Context, id string) (int64, error)
}

type agentService struct {
	store     database.Store
	agentRepo repositories.AgentRepository
	relRepo   repositories.RelationshipRepository
	logger    *zap.Logger
}

// NewAgentService creates a new agent service with dependencies.
func NewAgentService(store database.Store, agentRepo repositories.AgentRepository, relRepo repositories.RelationshipRepository, logger *zap.Logger) AgentService {
	return &agentService{
		store:     store,
		agentRepo: agentRepo,
		relRepo:   relRepo,
		logger:    logger,
	}
}

func (s *agentService) Create(ctx context.Context, input NewAgent) (*models.Agent, error) {
	agent := &models.Agent{
		ID:         ids.New(),
		Name:       input.Name,
		UniqueName: models.UniqueName(input.Name),
		Email:      input.Email,
		AgentType:  input.AgentType,
		InsertedAt: time.Now().UTC(),
	}

	created, err := s.agentRepo.Insert(ctx, s.store.Querier(), agent)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("created agent",
		zap.String("id", created.ID),
		zap.String("unique_name", created.UniqueName))
	return created, nil
}

func (s *agentService) List(ctx context.Context) ([]*models.Agent, error) {
	return s.agentRepo.List(ctx, s.store.Querier())
}

func (s *agentService) Individuals(ctx context.Context) ([]*models.Agent, error) {
	return s.agentRepo.ListByType(ctx, s.store.Querier(), models.AgentTypeIndividual)
}

func (s *agentService) Organizations(ctx context.Context) ([]*models.Agent, error) {
	return s.agentRepo.ListByType(ctx, s.store.Querier(), models.AgentTypeOrganization)
}

func (s *agentService) DeleteByUniqueName(ctx context.Context, uniqueName string) (int64, error) {
	return s.agentRepo.DeleteByUniqueName(ctx, s.store.Querier(), uniqueName)
}

// Relations fetches every relationship touching the agent, then decorates
// subject and object with one batched agent fetch instead of one query per
// relationship.
func (s *agentService) Relations(ctx context.Context, agentID string) ([]*models.AgentRelationship, error) {
	q := s.store.Querier()

	relations, err := s.relRepo.ListByAgent(ctx, q, agentID)
	if err != nil {
		return nil, err
	}
	if len(relations) == 0 {
		return []*models.AgentRelationship{}, nil
	}

	idSet := make(map[string]struct{}, len(relations)*2)
	for _, rel := range relations {
		idSet[rel.SubjectID] = struct{}{}
		idSet[rel.ObjectID] = struct{}{}
	}
	agentIDs := make([]string, 0, len(idSet))
	for id := range idSet {
		agentIDs = append(agentIDs, id)
	}

	agents, err := s.agentRepo.GetByIDs(ctx, q, agentIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Agent, len(agents))
	for _, agent := range agents {
		byID[agent.ID] = agent
	}

	for _, rel := range relations {
		subject, ok := byID[rel.SubjectID]
		if !ok {
			return nil, fmt.Errorf("subject %s missing for relationship %s", rel.SubjectID, rel.ID)
		}
		object, ok := byID[rel.ObjectID]
		if !ok {
			return nil, fmt.Errorf("object %s missing for relationship %s", rel.ObjectID, rel.ID)
		}
		rel.Subject = subject
		rel.Object = object
	}

	return relations, nil
}

func (s *agentService) RelationTypes(ctx context.Context) ([]*models.AgentRelationType, error) {
	return s.relRepo.ListTypes(ctx, s.store.Querier())
}

func (s *agentService) CreateRelationship(ctx context.Context, input NewRelationship) (*models.AgentRelationship, error) {
	q := s.store.Querier()

	rel := &models.AgentRelationship{
		ID:                  ids.New(),
		SubjectID:           input.SubjectID,
		ObjectID:            input.ObjectID,
		AgentRelationTypeID: input.AgentRelationTypeID,
		InsertedAt:          time.Now().UTC(),
	}

	created, err := s.relRepo.Insert(ctx, q, rel)
	if err != nil {
		return nil, err
	}

	agents, err := s.agentRepo.GetByIDs(ctx, q, []string{created.SubjectID, created.ObjectID})
	if err != nil {
		return nil, err
	}
	for _, agent := range agents {
		if agent.ID == created.SubjectID {
			created.Subject = agent
		}
		if agent.ID == created.ObjectID {
			created.Object = agent
		}
	}

	return created, nil
}

func (s *agentService) DeleteRelationship(ctx context.Context, id string) (int64, error) {
	return s.relRepo.DeleteByID(ctx, s.store.Querier(), id)
}
