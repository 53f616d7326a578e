// Package validation enforces the record id invariant on every save.
package validation

import "fmt"

// CheckIDs verifies that every id in a collection is non-empty and unique.
// The ids arrive in collection order so error messages can point at the
// offending position.
func CheckIDs(ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for i, id := range ids {
		if id == "" {
			return fmt.Errorf("record %d has an empty id", i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
