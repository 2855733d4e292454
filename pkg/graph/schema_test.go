package graph

import (
	"context"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planflow/plan-engine/pkg/apperrors"
	"github.com/planflow/plan-engine/pkg/models"
	"github.com/planflow/plan-engine/pkg/services"
)

// Stub services returning canned data. Only the methods a test exercises
// carry behavior; the rest return empty results.

type stubAgentService struct {
	agents    []*models.Agent
	created   *models.Agent
	createErr error
}

func (s *stubAgentService) Create(ctx context.Context, input services.NewAgent) (*models.Agent, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	agent := &models.Agent{
		ID:         "agent-new",
		Name:       input.Name,
		UniqueName: models.UniqueName(input.Name),
		Email:      input.Email,
		AgentType:  input.AgentType,
		InsertedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.created = agent
	return agent, nil
}

func (s *stubAgentService) List(ctx context.Context) ([]*models.Agent, error) {
	return s.agents, nil
}

func (s *stubAgentService) Individuals(ctx context.Context) ([]*models.Agent, error) {
	return s.agents, nil
}

func (s *stubAgentService) Organizations(ctx context.Context) ([]*models.Agent, error) {
	return s.agents, nil
}

func (s *stubAgentService) DeleteByUniqueName(ctx context.Context, uniqueName string) (int64, error) {
	return 1, nil
}

func (s *stubAgentService) Relations(ctx context.Context, agentID string) ([]*models.AgentRelationship, error) {
	return []*models.AgentRelationship{}, nil
}

func (s *stubAgentService) RelationTypes(ctx context.Context) ([]*models.AgentRelationType, error) {
	return []*models.AgentRelationType{}, nil
}

func (s *stubAgentService) CreateRelationship(ctx context.Context, input services.NewRelationship) (*models.AgentRelationship, error) {
	return nil, nil
}

func (s *stubAgentService) DeleteRelationship(ctx context.Context, id string) (int64, error) {
	return 1, nil
}

type stubPlanService struct {
	detail    *models.Plan
	detailErr error
}

func (s *stubPlanService) Create(ctx context.Context, input services.NewPlan) (*models.Plan, error) {
	return nil, nil
}

func (s *stubPlanService) Update(ctx context.Context, input services.PlanUpdate) (*models.Plan, error) {
	return nil, nil
}

func (s *stubPlanService) ListForAgent(ctx context.Context, filter services.PlanFilter) ([]*models.Plan, error) {
	return []*models.Plan{}, nil
}

func (s *stubPlanService) Detail(ctx context.Context, planID string) (*models.Plan, error) {
	if s.detailErr != nil {
		return nil, s.detailErr
	}
	return s.detail, nil
}

type stubProcessService struct{}

func (s *stubProcessService) Create(ctx context.Context, input services.NewProcess) (*models.Process, error) {
	return nil, nil
}

func (s *stubProcessService) Update(ctx context.Context, input services.ProcessUpdate) (*models.Process, error) {
	return nil, nil
}

func (s *stubProcessService) Delete(ctx context.Context, id string) (int64, error) {
	return 1, nil
}

type stubCommitmentService struct{}

func (s *stubCommitmentService) Create(ctx context.Context, input services.NewCommitment) (*models.Commitment, error) {
	return nil, nil
}

func (s *stubCommitmentService) Update(ctx context.Context, patch services.CommitmentPatch) (int64, error) {
	return 1, nil
}

func (s *stubCommitmentService) Delete(ctx context.Context, id string) (int64, error) {
	return 1, nil
}

type stubLabelService struct{}

func (s *stubLabelService) Create(ctx context.Context, input services.NewLabel) (*models.Label, error) {
	return nil, nil
}

func (s *stubLabelService) List(ctx context.Context, agentID *string) ([]*models.Label, error) {
	return []*models.Label{}, nil
}

func (s *stubLabelService) Delete(ctx context.Context, id string) (int64, error) {
	return 1, nil
}

type stubResourceSpecificationService struct{}

func (s *stubResourceSpecificationService) Create(ctx context.Context, input services.NewResourceSpecification) (*models.ResourceSpecification, error) {
	return nil, nil
}

func (s *stubResourceSpecificationService) List(ctx context.Context, agentUniqueName *string) ([]*models.ResourceSpecification, error) {
	return []*models.ResourceSpecification{}, nil
}

func (s *stubResourceSpecificationService) DeleteByUniqueName(ctx context.Context, uniqueName string) (int64, error) {
	return 1, nil
}

type stubReferenceService struct {
	actions []*models.Action
	units   []*models.Unit
}

func (s *stubReferenceService) Actions(ctx context.Context) ([]*models.Action, error) {
	return s.actions, nil
}

func (s *stubReferenceService) Units(ctx context.Context) ([]*models.Unit, error) {
	return s.units, nil
}

func testServices() Services {
	return Services{
		Agents:                 &stubAgentService{},
		Plans:                  &stubPlanService{},
		Processes:              &stubProcessService{},
		Commitments:            &stubCommitmentService{},
		Labels:                 &stubLabelService{},
		ResourceSpecifications: &stubResourceSpecificationService{},
		Reference:              &stubReferenceService{},
	}
}

func execute(t *testing.T, svcs Services, query string) *graphql.Result {
	t.Helper()
	schema, err := New(svcs)
	require.NoError(t, err)
	return graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       context.Background(),
	})
}

func TestSchemaBuilds(t *testing.T) {
	_, err := New(testServices())
	require.NoError(t, err)
}

func TestQueryAgents(t *testing.T) {
	svcs := testServices()
	email := "ada@example.com"
	svcs.Agents = &stubAgentService{agents: []*models.Agent{
		{
			ID:         "a1",
			Name:       "Ada",
			UniqueName: "ada",
			Email:      &email,
			AgentType:  models.AgentTypeIndividual,
			InsertedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}}

	result := execute(t, svcs, `{ agents { id name uniqueName email agentType } }`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	agents := data["agents"].([]interface{})
	require.Len(t, agents, 1)
	agent := agents[0].(map[string]interface{})
	assert.Equal(t, "a1", agent["id"])
	assert.Equal(t, "ada", agent["uniqueName"])
	assert.Equal(t, "ada@example.com", agent["email"])
	assert.Equal(t, "INDIVIDUAL", agent["agentType"])
}

func TestQueryPlanNested(t *testing.T) {
	due := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	assignee := "a1"
	svcs := testServices()
	svcs.Plans = &stubPlanService{detail: &models.Plan{
		ID:    "p1",
		Title: "Harvest",
		Processes: []*models.Process{
			{
				ID:     "proc-1",
				Title:  "Sow",
				Labels: []*models.Label{{ID: "l1", Name: "Urgent", UniqueName: "urgent"}},
				Agents: []*models.Agent{{ID: "a1", Name: "Ada", UniqueName: "ada", AgentType: models.AgentTypeIndividual}},
				Commitments: []*models.Commitment{
					{
						ID:                    "c1",
						Description:           "Ten hours",
						Quantity:              10,
						Action:                &models.Action{ID: "act-1", Name: "work", InputOutput: models.InputOutputInput},
						Unit:                  &models.Unit{ID: "u1", Label: "hour"},
						ResourceSpecification: &models.ResourceSpecification{ID: "rs1", Name: "Labour", UniqueName: "labour"},
						AssignedAgentID:       &assignee,
						AssignedAgent:         &models.Agent{ID: "a1", Name: "Ada", UniqueName: "ada", AgentType: models.AgentTypeIndividual},
						DueAt:                 &due,
					},
				},
			},
		},
	}}

	result := execute(t, svcs, `{
		plan(planId: "p1") {
			id
			title
			processes {
				id
				labels { name }
				agents { name }
				commitments {
					description
					quantity
					action { name inputOutput }
					unit { label }
					resourceSpecification { uniqueName }
					assignedAgent { uniqueName }
				}
			}
		}
	}`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	plan := data["plan"].(map[string]interface{})
	assert.Equal(t, "Harvest", plan["title"])

	processes := plan["processes"].([]interface{})
	require.Len(t, processes, 1)
	process := processes[0].(map[string]interface{})

	labels := process["labels"].([]interface{})
	require.Len(t, labels, 1)
	assert.Equal(t, "Urgent", labels[0].(map[string]interface{})["name"])

	commitments := process["commitments"].([]interface{})
	require.Len(t, commitments, 1)
	commitment := commitments[0].(map[string]interface{})
	assert.Equal(t, 10, commitment["quantity"])
	assert.Equal(t, "work", commitment["action"].(map[string]interface{})["name"])
	assert.Equal(t, "INPUT", commitment["action"].(map[string]interface{})["inputOutput"])
	assert.Equal(t, "hour", commitment["unit"].(map[string]interface{})["label"])
	assert.Equal(t, "labour", commitment["resourceSpecification"].(map[string]interface{})["uniqueName"])
	assert.Equal(t, "ada", commitment["assignedAgent"].(map[string]interface{})["uniqueName"])
}

func TestQueryPlanError(t *testing.T) {
	svcs := testServices()
	svcs.Plans = &stubPlanService{detailErr: apperrors.ErrNotFound}

	result := execute(t, svcs, `{ plan(planId: "missing") { id } }`)

	require.NotEmpty(t, result.Errors)
	data := result.Data.(map[string]interface{})
	assert.Nil(t, data["plan"])
}

func TestMutationCreateAgent(t *testing.T) {
	svcs := testServices()
	agents := &stubAgentService{}
	svcs.Agents = agents

	result := execute(t, svcs, `mutation {
		createAgent(name: "Rose Quartz Collective", agentType: ORGANIZATION) {
			id
			uniqueName
			agentType
		}
	}`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	created := data["createAgent"].(map[string]interface{})
	assert.Equal(t, "rose_quartz_collective", created["uniqueName"])
	assert.Equal(t, "ORGANIZATION", created["agentType"])
	require.NotNil(t, agents.created)
	assert.Equal(t, models.AgentTypeOrganization, agents.created.AgentType)
}

func TestMutationDeleteReturnsCount(t *testing.T) {
	result := execute(t, testServices(), `mutation { deleteAgent(uniqueName: "ada") }`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	assert.Equal(t, 1, data["deleteAgent"])
}

func TestMutationMissingRequiredArgument(t *testing.T) {
	result := execute(t, testServices(), `mutation { createAgent(name: "Ada") { id } }`)
	assert.NotEmpty(t, result.Errors)
}
