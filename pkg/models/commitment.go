package models

import "time"

// Commitment is a promised contribution of a quantified resource
// specification via an action, optionally assigned to an agent. The singleton
// relations (Action, Unit, ResourceSpecification, AssignedAgent) are filled
// in by the plan assembler or the create path; list queries that don't
// decorate leave them nil.
type Commitment struct {
	ID                      string                 `json:"id"`
	Description             string                 `json:"description"`
	ProcessID               string                 `json:"processId"`
	ActionID                string                 `json:"actionId"`
	Action                  *Action                `json:"action"`
	AssignedAgentID         *string                `json:"assignedAgentId"`
	AssignedAgent           *Agent                 `json:"assignedAgent"`
	Quantity                int                    `json:"quantity"`
	UnitID                  string                 `json:"unitId"`
	Unit                    *Unit                  `json:"unit"`
	ResourceSpecificationID string                 `json:"resourceSpecificationId"`
	ResourceSpecification   *ResourceSpecification `json:"resourceSpecification"`
	DueAt                   *time.Time             `json:"dueAt"`
	InsertedAt              time.Time              `json:"insertedAt"`
}
