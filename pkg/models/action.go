package models

import (
	"time"

	"github.com/planflow/plan-engine/pkg/apperrors"
)

// InputOutput is the closed set of flow directions an action can have.
type InputOutput string

const (
	InputOutputInput  InputOutput = "Input"
	InputOutputOutput InputOutput = "Output"
)

// ParseInputOutput validates a stored input_output value against the closed
// variant set.
func ParseInputOutput(value string) (InputOutput, error) {
	switch InputOutput(value) {
	case InputOutputInput, InputOutputOutput:
		return InputOutput(value), nil
	default:
		return "", &apperrors.UnknownVariantError{Type: "input_output", Value: value}
	}
}

// Action names the kind of flow a commitment promises (produce, consume,
// work, ...), each directed as an input to or output of a process.
type Action struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	InputOutput InputOutput `json:"inputOutput"`
	InsertedAt  time.Time   `json:"insertedAt"`
}
