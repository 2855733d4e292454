package models

import "time"

// Process is a unit of work within a plan, taggable with labels, associated
// with agents, and decomposed into commitments.
type Process struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	PlanID      string        `json:"planId"`
	Labels      []*Label      `json:"labels"`
	Agents      []*Agent      `json:"agents"`
	Commitments []*Commitment `json:"commitments"`
	StartAt     *time.Time    `json:"startAt"`
	DueAt       *time.Time    `json:"dueAt"`
	InsertedAt  time.Time     `json:"insertedAt"`
}
