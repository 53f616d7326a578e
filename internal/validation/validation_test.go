package validation

import (
	"strings"
	"testing"
)

func TestCheckIDs(t *testing.T) {
	t.Run("AcceptsUniqueIDs", func(t *testing.T) {
		if err := CheckIDs([]string{"a", "b", "c"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("AcceptsEmptyCollection", func(t *testing.T) {
		if err := CheckIDs(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("RejectsEmptyID", func(t *testing.T) {
		err := CheckIDs([]string{"a", "", "c"})
		if err == nil {
			t.Fatal("expected error for empty id")
		}
		if !strings.Contains(err.Error(), "record 1") {
			t.Errorf("error should name the position, got %q", err)
		}
	})

	t.Run("RejectsDuplicateID", func(t *testing.T) {
		err := CheckIDs([]string{"a", "b", "a"})
		if err == nil {
			t.Fatal("expected error for duplicate id")
		}
		if !strings.Contains(err.Error(), `"a"`) {
			t.Errorf("error should name the duplicate, got %q", err)
		}
	})
}
