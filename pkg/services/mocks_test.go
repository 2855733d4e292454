package services

import (
	"context"

	"github.com/planflow/plan-engine/pkg/database"
	"github.com/planflow/plan-engine/pkg/models"
	"github.com/planflow/plan-engine/pkg/repositories"
)

// fakeStore satisfies database.Store without a database. WithTx just runs
// the function; the mocks below ignore the Querier entirely.
type fakeStore struct {
	txErr error
}

func (s *fakeStore) Querier() database.Querier { return nil }

func (s *fakeStore) WithTx(ctx context.Context, fn func(database.Querier) error) error {
	if s.txErr != nil {
		return s.txErr
	}
	return fn(nil)
}

type mockAgentRepository struct {
	insertFn    func(ctx context.Context, agent *models.Agent) (*models.Agent, error)
	listFn      func(ctx context.Context) ([]*models.Agent, error)
	listTypeFn  func(ctx context.Context, agentType models.AgentType) ([]*models.Agent, error)
	getFn       func(ctx context.Context, id string) (*models.Agent, error)
	getManyFn   func(ctx context.Context, ids []string) ([]*models.Agent, error)
	deleteFn    func(ctx context.Context, uniqueName string) (int64, error)
}

var _ repositories.AgentRepository = (*mockAgentRepository)(nil)

func (m *mockAgentRepository) Insert(ctx context.Context, q database.Querier, agent *models.Agent) (*models.Agent, error) {
	return m.insertFn(ctx, agent)
}

func (m *mockAgentRepository) List(ctx context.Context, q database.Querier) ([]*models.Agent, error) {
	return m.listFn(ctx)
}

func (m *mockAgentRepository) ListByType(ctx context.Context, q database.Querier, agentType models.AgentType) ([]*models.Agent, error) {
	return m.listTypeFn(ctx, agentType)
}

func (m *mockAgentRepository) GetByID(ctx context.Context, q database.Querier, id string) (*models.Agent, error) {
	return m.getFn(ctx, id)
}

func (m *mockAgentRepository) GetByIDs(ctx context.Context, q database.Querier, ids []string) ([]*models.Agent, error) {
	return m.getManyFn(ctx, ids)
}

func (m *mockAgentRepository) DeleteByUniqueName(ctx context.Context, q database.Querier, uniqueName string) (int64, error) {
	return m.deleteFn(ctx, uniqueName)
}

type mockRelationshipRepository struct {
	insertFn    func(ctx context.Context, rel *models.AgentRelationship) (*models.AgentRelationship, error)
	listFn      func(ctx context.Context, agentID string) ([]*models.AgentRelationship, error)
	deleteFn    func(ctx context.Context, id string) (int64, error)
	listTypesFn func(ctx context.Context) ([]*models.AgentRelationType, error)
}

var _ repositories.RelationshipRepository = (*mockRelationshipRepository)(nil)

func (m *mockRelationshipRepository) Insert(ctx context.Context, q database.Querier, rel *models.AgentRelationship) (*models.AgentRelationship, error) {
	return m.insertFn(ctx, rel)
}

func (m *mockRelationshipRepository) ListByAgent(ctx context.Context, q database.Querier, agentID string) ([]*models.AgentRelationship, error) {
	return m.listFn(ctx, agentID)
}

func (m *mockRelationshipRepository) DeleteByID(ctx context.Context, q database.Querier, id string) (int64, error) {
	return m.deleteFn(ctx, id)
}

func (m *mockRelationshipRepository) ListTypes(ctx context.Context, q database.Querier) ([]*models.AgentRelationType, error) {
	return m.listTypesFn(ctx)
}

type mockPlanRepository struct {
	insertFn           func(ctx context.Context, plan *models.Plan) (*models.Plan, error)
	linkAgentFn        func(ctx context.Context, planID, agentID string) error
	updateFn           func(ctx context.Context, id, title string, description *string) (int64, error)
	getFn              func(ctx context.Context, id string) (*models.Plan, error)
	listByAgentFn      func(ctx context.Context, agentID string) ([]*models.Plan, error)
	listByUniqueNameFn func(ctx context.Context, uniqueName string) ([]*models.Plan, error)

	labelsFn      func(ctx context.Context, planID string) ([]repositories.Keyed[*models.Label], error)
	agentsFn      func(ctx context.Context, planID string) ([]repositories.Keyed[*models.Agent], error)
	commitmentsFn func(ctx context.Context, planID string) ([]repositories.Keyed[*models.Commitment], error)
	actionsFn     func(ctx context.Context, planID string) ([]repositories.Keyed[*models.Action], error)
	unitsFn       func(ctx context.Context, planID string) ([]repositories.Keyed[*models.Unit], error)
	specsFn       func(ctx context.Context, planID string) ([]repositories.Keyed[*models.ResourceSpecification], error)
	assigneesFn   func(ctx context.Context, planID string) ([]repositories.Keyed[*models.Agent], error)
}

var _ repositories.PlanRepository = (*mockPlanRepository)(nil)

func (m *mockPlanRepository) Insert(ctx context.Context, q database.Querier, plan *models.Plan) (*models.Plan, error) {
	return m.insertFn(ctx, plan)
}

func (m *mockPlanRepository) LinkAgent(ctx context.Context, q database.Querier, planID, agentID string) error {
	return m.linkAgentFn(ctx, planID, agentID)
}

func (m *mockPlanRepository) Update(ctx context.Context, q database.Querier, id, title string, description *string) (int64, error) {
	return m.updateFn(ctx, id, title, description)
}

func (m *mockPlanRepository) GetByID(ctx context.Context, q database.Querier, id string) (*models.Plan, error) {
	return m.getFn(ctx, id)
}

func (m *mockPlanRepository) ListByAgentID(ctx context.Context, q database.Querier, agentID string) ([]*models.Plan, error) {
	return m.listByAgentFn(ctx, agentID)
}

func (m *mockPlanRepository) ListByAgentUniqueName(ctx context.Context, q database.Querier, uniqueName string) ([]*models.Plan, error) {
	return m.listByUniqueNameFn(ctx, uniqueName)
}

func (m *mockPlanRepository) LabelsByProcessOfPlan(ctx context.Context, q database.Querier, planID string) ([]repositories.Keyed[*models.Label], error) {
	return m.labelsFn(ctx, planID)
}

func (m *mockPlanRepository) AgentsByProcessOfPlan(ctx context.Context, q database.Querier, planID string) ([]repositories.Keyed[*models.Agent], error) {
	return m.agentsFn(ctx, planID)
}

func (m *mockPlanRepository) CommitmentsByProcessOfPlan(ctx context.Context, q database.Querier, planID string) ([]repositories.Keyed[*models.Commitment], error) {
	return m.commitmentsFn(ctx, planID)
}

func (m *mockPlanRepository) ActionsByCommitmentOfPlan(ctx context.Context, q database.Querier, planID string) ([]repositories.Keyed[*models.Action], error) {
	return m.actionsFn(ctx, planID)
}

func (m *mockPlanRepository) UnitsByCommitmentOfPlan(ctx context.Context, q database.Querier, planID string) ([]repositories.Keyed[*models.Unit], error) {
	return m.unitsFn(ctx, planID)
}

func (m *mockPlanRepository) ResourceSpecificationsByCommitmentOfPlan(ctx context.Context, q database.Querier, planID string) ([]repositories.Keyed[*models.ResourceSpecification], error) {
	return m.specsFn(ctx, planID)
}

func (m *mockPlanRepository) AssignedAgentsByCommitmentOfPlan(ctx context.Context, q database.Querier, planID string) ([]repositories.Keyed[*models.Agent], error) {
	return m.assigneesFn(ctx, planID)
}

type mockCommitmentRepository struct {
	insertFn func(ctx context.Context, commitment *models.Commitment) (*models.Commitment, error)
	updateFn func(ctx context.Context, update repositories.CommitmentUpdate) (int64, error)
	deleteFn func(ctx context.Context, id string) (int64, error)
}

var _ repositories.CommitmentRepository = (*mockCommitmentRepository)(nil)

func (m *mockCommitmentRepository) Insert(ctx context.Context, q database.Querier, commitment *models.Commitment) (*models.Commitment, error) {
	return m.insertFn(ctx, commitment)
}

func (m *mockCommitmentRepository) Update(ctx context.Context, q database.Querier, update repositories.CommitmentUpdate) (int64, error) {
	return m.updateFn(ctx, update)
}

func (m *mockCommitmentRepository) DeleteByID(ctx context.Context, q database.Querier, id string) (int64, error) {
	return m.deleteFn(ctx, id)
}

type mockActionRepository struct {
	listFn func(ctx context.Context) ([]*models.Action, error)
	getFn  func(ctx context.Context, id string) (*models.Action, error)
}

var _ repositories.ActionRepository = (*mockActionRepository)(nil)

func (m *mockActionRepository) List(ctx context.Context, q database.Querier) ([]*models.Action, error) {
	return m.listFn(ctx)
}

func (m *mockActionRepository) GetByID(ctx context.Context, q database.Querier, id string) (*models.Action, error) {
	return m.getFn(ctx, id)
}

type mockUnitRepository struct {
	listFn func(ctx context.Context) ([]*models.Unit, error)
	getFn  func(ctx context.Context, id string) (*models.Unit, error)
}

var _ repositories.UnitRepository = (*mockUnitRepository)(nil)

func (m *mockUnitRepository) List(ctx context.Context, q database.Querier) ([]*models.Unit, error) {
	return m.listFn(ctx)
}

func (m *mockUnitRepository) GetByID(ctx context.Context, q database.Querier, id string) (*models.Unit, error) {
	return m.getFn(ctx, id)
}

type mockResourceSpecificationRepository struct {
	insertFn           func(ctx context.Context, spec *models.ResourceSpecification) (*models.ResourceSpecification, error)
	listFn             func(ctx context.Context) ([]*models.ResourceSpecification, error)
	listByUniqueNameFn func(ctx context.Context, uniqueName string) ([]*models.ResourceSpecification, error)
	getFn              func(ctx context.Context, id string) (*models.ResourceSpecification, error)
	deleteFn           func(ctx context.Context, uniqueName string) (int64, error)
}

var _ repositories.ResourceSpecificationRepository = (*mockResourceSpecificationRepository)(nil)

func (m *mockResourceSpecificationRepository) Insert(ctx context.Context, q database.Querier, spec *models.ResourceSpecification) (*models.ResourceSpecification, error) {
	return m.insertFn(ctx, spec)
}

func (m *mockResourceSpecificationRepository) List(ctx context.Context, q database.Querier) ([]*models.ResourceSpecification, error) {
	return m.listFn(ctx)
}

func (m *mockResourceSpecificationRepository) ListByAgentUniqueName(ctx context.Context, q database.Querier, uniqueName string) ([]*models.ResourceSpecification, error) {
	return m.listByUniqueNameFn(ctx, uniqueName)
}

func (m *mockResourceSpecificationRepository) GetByID(ctx context.Context, q database.Querier, id string) (*models.ResourceSpecification, error) {
	return m.getFn(ctx, id)
}

func (m *mockResourceSpecificationRepository) DeleteByUniqueName(ctx context.Context, q database.Querier, uniqueName string) (int64, error) {
	return m.deleteFn(ctx, uniqueName)
}

type mockLabelRepository struct {
	insertFn      func(ctx context.Context, label *models.Label) (*models.Label, error)
	listFn        func(ctx context.Context) ([]*models.Label, error)
	listByAgentFn func(ctx context.Context, agentID string) ([]*models.Label, error)
	deleteFn      func(ctx context.Context, id string) (int64, error)
}

var _ repositories.LabelRepository = (*mockLabelRepository)(nil)

func (m *mockLabelRepository) Insert(ctx context.Context, q database.Querier, label *models.Label) (*models.Label, error) {
	return m.insertFn(ctx, label)
}

func (m *mockLabelRepository) List(ctx context.Context, q database.Querier) ([]*models.Label, error) {
	return m.listFn(ctx)
}

func (m *mockLabelRepository) ListByAgentID(ctx context.Context, q database.Querier, agentID string) ([]*models.Label, error) {
	return m.listByAgentFn(ctx, agentID)
}

func (m *mockLabelRepository) DeleteByID(ctx context.Context, q database.Querier, id string) (int64, error) {
	return m.deleteFn(ctx, id)
}

type mockProcessRepository struct {
	insertFn       func(ctx context.Context, process *models.Process) (*models.Process, error)
	updateFn       func(ctx context.Context, id, title string, description *string) (int64, error)
	deleteFn       func(ctx context.Context, id string) (int64, error)
	getFn          func(ctx context.Context, id string) (*models.Process, error)
	listByPlanFn   func(ctx context.Context, planID string) ([]*models.Process, error)
	linkLabelFn    func(ctx context.Context, processID, labelID string) error
	linkAgentFn    func(ctx context.Context, processID, agentID string) error
	unlinkLabelsFn func(ctx context.Context, processID string) error
	unlinkAgentsFn func(ctx context.Context, processID string) error
	labelsFn       func(ctx context.Context, processID string) ([]*models.Label, error)
	agentsFn       func(ctx context.Context, processID string) ([]*models.Agent, error)
}

var _ repositories.ProcessRepository = (*mockProcessRepository)(nil)

func (m *mockProcessRepository) Insert(ctx context.Context, q database.Querier, process *models.Process) (*models.Process, error) {
	return m.insertFn(ctx, process)
}

func (m *mockProcessRepository) Update(ctx context.Context, q database.Querier, id, title string, description *string) (int64, error) {
	return m.updateFn(ctx, id, title, description)
}

func (m *mockProcessRepository) Delete(ctx context.Context, q database.Querier, id string) (int64, error) {
	return m.deleteFn(ctx, id)
}

func (m *mockProcessRepository) GetByID(ctx context.Context, q database.Querier, id string) (*models.Process, error) {
	return m.getFn(ctx, id)
}

func (m *mockProcessRepository) ListByPlanID(ctx context.Context, q database.Querier, planID string) ([]*models.Process, error) {
	return m.listByPlanFn(ctx, planID)
}

func (m *mockProcessRepository) LinkLabel(ctx context.Context, q database.Querier, processID, labelID string) error {
	return m.linkLabelFn(ctx, processID, labelID)
}

func (m *mockProcessRepository) LinkAgent(ctx context.Context, q database.Querier, processID, agentID string) error {
	return m.linkAgentFn(ctx, processID, agentID)
}

func (m *mockProcessRepository) UnlinkLabels(ctx context.Context, q database.Querier, processID string) error {
	return m.unlinkLabelsFn(ctx, processID)
}

func (m *mockProcessRepository) UnlinkAgents(ctx context.Context, q database.Querier, processID string) error {
	return m.unlinkAgentsFn(ctx, processID)
}

func (m *mockProcessRepository) LabelsForProcess(ctx context.Context, q database.Querier, processID string) ([]*models.Label, error) {
	return m.labelsFn(ctx, processID)
}

func (m *mockProcessRepository) AgentsForProcess(ctx context.Context, q database.Querier, processID string) ([]*models.Agent, error) {
	return m.agentsFn(ctx, processID)
}
