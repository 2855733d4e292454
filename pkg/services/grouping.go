package services

import "github.com/planflow/plan-engine/pkg/repositories"

// groupByKey builds an index from foreign key to the ordered list of values
// sharing that key, preserving first-seen order within each key. Lookup of a
// missing key yields the empty collection; parents with no children must
// never fail.
func groupByKey[V any](pairs []repositories.Keyed[V]) map[string][]V {
	index := make(map[string][]V, len(pairs))
	for _, p := range pairs {
		index[p.Key] = append(index[p.Key], p.Value)
	}
	return index
}

// firstByKey collapses multiplicity to at most one value per key, keeping the
// first occurrence and ignoring duplicates. An accidental join fan-out in a
// singleton fetch therefore cannot change the result's cardinality.
func firstByKey[V any](pairs []repositories.Keyed[V]) map[string]V {
	index := make(map[string]V, len(pairs))
	for _, p := range pairs {
		if _, ok := index[p.Key]; !ok {
			index[p.Key] = p.Value
		}
	}
	return index
}
