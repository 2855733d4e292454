package models

import "time"

// ResourceSpecification describes a kind of resource a commitment can
// promise. Optionally owned by an agent, which scopes listings.
type ResourceSpecification struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	UniqueName string    `json:"uniqueName"`
	AgentID    *string   `json:"agentId"`
	InsertedAt time.Time `json:"insertedAt"`
}
