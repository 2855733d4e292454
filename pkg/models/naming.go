package models

import "strings"

// UniqueName derives the slug used as an alternate natural key from a display
// name: lowercase, spaces replaced with underscores. The derivation is
// deterministic so two names that collapse to the same slug conflict on the
// unique_name column.
func UniqueName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
