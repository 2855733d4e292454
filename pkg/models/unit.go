package models

import "time"

// Unit is the unit of measure for a commitment's quantity.
type Unit struct {
	ID         string    `json:"id"`
	Label      string    `json:"label"`
	InsertedAt time.Time `json:"insertedAt"`
}
