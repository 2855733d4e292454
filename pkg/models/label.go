package models

import "time"

// Label is a tag applied to processes. A label may optionally belong to an
// owning agent, which scopes label listings.
type Label struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	UniqueName string    `json:"uniqueName"`
	Color      *string   `json:"color"`
	AgentID    *string   `json:"agentId"`
	InsertedAt time.Time `json:"insertedAt"`
}
