package models

import (
	"time"

	"github.com/planflow/plan-engine/pkg/apperrors"
)

// AgentType is the closed set of kinds an agent can be.
type AgentType string

const (
	AgentTypeIndividual   AgentType = "Individual"
	AgentTypeOrganization AgentType = "Organization"
	AgentTypeProject      AgentType = "Project"
)

// ParseAgentType validates a stored agent_type value against the closed
// variant set. Values outside the set are rejected rather than passed
// through, even though the column carries a check constraint.
func ParseAgentType(value string) (AgentType, error) {
	switch AgentType(value) {
	case AgentTypeIndividual, AgentTypeOrganization, AgentTypeProject:
		return AgentType(value), nil
	default:
		return "", &apperrors.UnknownVariantError{Type: "agent_type", Value: value}
	}
}

// Agent is an individual, organization, or project participating in plans
// and processes.
type Agent struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	UniqueName string    `json:"uniqueName"`
	Email      *string   `json:"email"`
	AgentType  AgentType `json:"agentType"`
	InsertedAt time.Time `json:"insertedAt"`
}
