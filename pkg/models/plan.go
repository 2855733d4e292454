package models

import "time"

// Plan is a top-level container of processes.
type Plan struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Processes   []*Process `json:"processes"`
	InsertedAt  time.Time  `json:"insertedAt"`
}
