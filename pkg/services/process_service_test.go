package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/planflow/plan-engine/pkg/apperrors"
	"github.com/planflow/plan-engine/pkg/models"
)

func TestProcessServiceCreateLinksLabelsAndAgents(t *testing.T) {
	var linkedLabels, linkedAgents []string

	processRepo := &mockProcessRepository{
		insertFn: func(ctx context.Context, process *models.Process) (*models.Process, error) {
			return process, nil
		},
		linkLabelFn: func(ctx context.Context, processID, labelID string) error {
			linkedLabels = append(linkedLabels, labelID)
			return nil
		},
		linkAgentFn: func(ctx context.Context, processID, agentID string) error {
			linkedAgents = append(linkedAgents, agentID)
			return nil
		},
		labelsFn: func(ctx context.Context, processID string) ([]*models.Label, error) {
			return []*models.Label{{ID: "label-1"}, {ID: "label-2"}}, nil
		},
		agentsFn: func(ctx context.Context, processID string) ([]*models.Agent, error) {
			return []*models.Agent{{ID: "agent-1"}}, nil
		},
	}

	svc := NewProcessService(&fakeStore{}, processRepo, zap.NewNop())

	process, err := svc.Create(context.Background(), NewProcess{
		Title:    "Sow",
		PlanID:   "plan-1",
		LabelIDs: []string{"label-1", "label-2"},
		AgentIDs: []string{"agent-1"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"label-1", "label-2"}, linkedLabels)
	assert.Equal(t, []string{"agent-1"}, linkedAgents)
	assert.Len(t, process.Labels, 2)
	assert.Len(t, process.Agents, 1)
	assert.NotNil(t, process.Commitments)
	assert.Empty(t, process.Commitments)
}

func TestProcessServiceCreateFailsOnBadLabel(t *testing.T) {
	processRepo := &mockProcessRepository{
		insertFn: func(ctx context.Context, process *models.Process) (*models.Process, error) {
			return process, nil
		},
		linkLabelFn: func(ctx context.Context, processID, labelID string) error {
			return apperrors.ErrInvalidReference
		},
	}

	svc := NewProcessService(&fakeStore{}, processRepo, zap.NewNop())

	_, err := svc.Create(context.Background(), NewProcess{
		Title:    "Sow",
		PlanID:   "plan-1",
		LabelIDs: []string{"missing"},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidReference)
}

func TestProcessServiceUpdateRewritesAssociations(t *testing.T) {
	var unlinkedLabels, unlinkedAgents bool
	var linkedLabels []string

	processRepo := &mockProcessRepository{
		updateFn: func(ctx context.Context, id, title string, description *string) (int64, error) {
			return 1, nil
		},
		unlinkLabelsFn: func(ctx context.Context, processID string) error {
			unlinkedLabels = true
			return nil
		},
		unlinkAgentsFn: func(ctx context.Context, processID string) error {
			unlinkedAgents = true
			return nil
		},
		linkLabelFn: func(ctx context.Context, processID, labelID string) error {
			// Old links must be gone before any new one lands.
			require.True(t, unlinkedLabels)
			linkedLabels = append(linkedLabels, labelID)
			return nil
		},
		linkAgentFn: func(ctx context.Context, processID, agentID string) error {
			return nil
		},
		getFn: func(ctx context.Context, id string) (*models.Process, error) {
			return &models.Process{ID: id, Title: "Sow again", PlanID: "plan-1"}, nil
		},
		labelsFn: func(ctx context.Context, processID string) ([]*models.Label, error) {
			return []*models.Label{{ID: "label-3"}}, nil
		},
		agentsFn: func(ctx context.Context, processID string) ([]*models.Agent, error) {
			return []*models.Agent{}, nil
		},
	}

	svc := NewProcessService(&fakeStore{}, processRepo, zap.NewNop())

	process, err := svc.Update(context.Background(), ProcessUpdate{
		ID:       "proc-1",
		Title:    "Sow again",
		LabelIDs: []string{"label-3"},
	})
	require.NoError(t, err)

	assert.True(t, unlinkedLabels)
	assert.True(t, unlinkedAgents)
	assert.Equal(t, []string{"label-3"}, linkedLabels)
	assert.Equal(t, "Sow again", process.Title)
	assert.Len(t, process.Labels, 1)
}

func TestProcessServiceUpdateNotFound(t *testing.T) {
	processRepo := &mockProcessRepository{
		updateFn: func(ctx context.Context, id, title string, description *string) (int64, error) {
			return 0, nil
		},
	}

	svc := NewProcessService(&fakeStore{}, processRepo, zap.NewNop())

	_, err := svc.Update(context.Background(), ProcessUpdate{ID: "nope", Title: "X"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProcessServiceDeleteUnlinksBeforeDelete(t *testing.T) {
	var unlinkedLabels, unlinkedAgents bool

	processRepo := &mockProcessRepository{
		unlinkLabelsFn: func(ctx context.Context, processID string) error {
			unlinkedLabels = true
			return nil
		},
		unlinkAgentsFn: func(ctx context.Context, processID string) error {
			unlinkedAgents = true
			return nil
		},
		deleteFn: func(ctx context.Context, id string) (int64, error) {
			require.True(t, unlinkedLabels)
			require.True(t, unlinkedAgents)
			return 1, nil
		},
	}

	svc := NewProcessService(&fakeStore{}, processRepo, zap.NewNop())

	deleted, err := svc.Delete(context.Background(), "proc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestProcessServiceDeleteMissingProcess(t *testing.T) {
	processRepo := &mockProcessRepository{
		unlinkLabelsFn: func(ctx context.Context, processID string) error { return nil },
		unlinkAgentsFn: func(ctx context.Context, processID string) error { return nil },
		deleteFn: func(ctx context.Context, id string) (int64, error) {
			return 0, nil
		},
	}

	svc := NewProcessService(&fakeStore{}, processRepo, zap.NewNop())

	deleted, err := svc.Delete(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}
