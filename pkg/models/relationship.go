package models

import "time"

// AgentRelationType names a kind of relationship between two agents
// (member of, steward of, ...).
type AgentRelationType struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	InsertedAt time.Time `json:"insertedAt"`
}

// AgentRelationship links a subject agent to an object agent through a
// relation type. Subject and Object are decorated from the agents table
// after the relationship rows are fetched.
type AgentRelationship struct {
	ID                  string    `json:"id"`
	SubjectID           string    `json:"subjectId"`
	Subject             *Agent    `json:"subject"`
	ObjectID            string    `json:"objectId"`
	Object              *Agent    `json:"object"`
	AgentRelationTypeID string    `json:"agentRelationTypeId"`
	AgentRelationType   string    `json:"agentRelationType"`
	InsertedAt          time.Time `json:"insertedAt"`
}
