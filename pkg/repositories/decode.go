package repositories

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/planflow/plan-engine/pkg/apperrors"
	"github.com/planflow/plan-engine/pkg/models"
)

// record is one flat result row keyed by column name. Different queries
// project different column subsets for the same logical entity (full row vs.
// partial join projection); decoders read only the columns present and leave
// everything else at its type's zero value. A required column that is missing
// or of the wrong storage type is a programmer error and decodes to a
// DecodeError.
type record map[string]any

// Keyed pairs a child entity with the foreign key it groups under, in the
// order the datastore returned it.
type Keyed[V any] struct {
	Key   string
	Value V
}

// collectRecords drains rows into records and closes them.
func collectRecords(rows pgx.Rows) ([]record, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var recs []record
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read row values: %w", err)
		}
		rec := make(record, len(fields))
		for i, fd := range fields {
			rec[fd.Name] = values[i]
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return recs, nil
}

// collectOne drains rows and returns the first record, or ErrNotFound when
// the result set is empty.
func collectOne(rows pgx.Rows) (record, error) {
	recs, err := collectRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return recs[0], nil
}

// collectKeyed decodes every row into a (foreign key, entity) pair. keyCol
// must be part of the projection.
func collectKeyed[V any](rows pgx.Rows, keyCol string, decode func(record) (V, error)) ([]Keyed[V], error) {
	recs, err := collectRecords(rows)
	if err != nil {
		return nil, err
	}
	pairs := make([]Keyed[V], 0, len(recs))
	for _, rec := range recs {
		key, err := rec.text(keyCol)
		if err != nil {
			return nil, err
		}
		value, err := decode(rec)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Keyed[V]{Key: key, Value: value})
	}
	return pairs, nil
}

// decodeAll decodes every row with the given entity decoder, preserving the
// datastore's order.
func decodeAll[V any](rows pgx.Rows, decode func(record) (V, error)) ([]V, error) {
	recs, err := collectRecords(rows)
	if err != nil {
		return nil, err
	}
	out := make([]V, 0, len(recs))
	for _, rec := range recs {
		v, err := decode(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// text reads a required text column.
func (r record) text(col string) (string, error) {
	v, ok := r[col]
	if !ok {
		return "", apperrors.NewDecodeError(col, "required column missing from projection")
	}
	if v == nil {
		return "", apperrors.NewDecodeError(col, "unexpected NULL")
	}
	s, ok := v.(string)
	if !ok {
		return "", apperrors.NewDecodeError(col, "expected text, got %T", v)
	}
	return s, nil
}

// textDefault reads a text column that may be absent from the projection,
// defaulting to the empty string.
func (r record) textDefault(col string) (string, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", apperrors.NewDecodeError(col, "expected text, got %T", v)
	}
	return s, nil
}

// textPtr reads a nullable text column; absent and NULL both decode to nil.
func (r record) textPtr(col string) (*string, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, apperrors.NewDecodeError(col, "expected text, got %T", v)
	}
	return &s, nil
}

func asInt64(col string, v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int16:
		return int64(n), nil
	default:
		return 0, apperrors.NewDecodeError(col, "expected integer, got %T", v)
	}
}

// intDefault reads an integer column that may be absent, defaulting to zero.
func (r record) intDefault(col string) (int, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return 0, nil
	}
	n, err := asInt64(col, v)
	return int(n), err
}

// timeDefault reads an epoch-millisecond column that may be absent,
// defaulting to the zero time.
func (r record) timeDefault(col string) (time.Time, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return time.Time{}, nil
	}
	ms, err := asInt64(col, v)
	if err != nil {
		return time.Time{}, err
	}
	return models.TimeFromMillis(ms), nil
}

// timePtr reads a nullable epoch-millisecond column.
func (r record) timePtr(col string) (*time.Time, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return nil, nil
	}
	ms, err := asInt64(col, v)
	if err != nil {
		return nil, err
	}
	t := models.TimeFromMillis(ms)
	return &t, nil
}
