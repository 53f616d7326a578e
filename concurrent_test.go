package shelf_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/shelf/internal/validation"
	"github.com/arthur-debert/shelf/testutil"
)

// Concurrent saves and loads on one store must never corrupt the blob or
// interleave partial states: every load observes some complete collection.
func TestConcurrentSaveLoad(t *testing.T) {
	ctx := context.Background()
	store := testutil.MemStore(t)

	const writers = 4
	const rounds = 25

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				notes := []testutil.Note{
					{ID: fmt.Sprintf("w%d-a", w), Title: "a"},
					{ID: fmt.Sprintf("w%d-b", w), Title: "b"},
				}
				if err := store.Save(ctx, notes); err != nil {
					t.Errorf("writer %d: %v", w, err)
					return
				}
			}
		}(w)
	}

	var rg sync.WaitGroup
	for r := 0; r < 2; r++ {
		rg.Add(1)
		go func() {
			defer rg.Done()
			for i := 0; i < writers*rounds; i++ {
				notes := store.Load(ctx)
				ids := make([]string, len(notes))
				for j, n := range notes {
					ids[j] = n.ID
				}
				if err := validation.CheckIDs(ids); err != nil {
					t.Errorf("load observed an inconsistent collection: %v", err)
					return
				}
			}
		}()
	}

	wg.Wait()
	rg.Wait()

	// Last writer wins; whatever that was, the result is one writer's
	// complete collection.
	final := store.Load(ctx)
	if len(final) != 2 {
		t.Fatalf("expected a complete 2-record collection, got %d", len(final))
	}
	if final[0].ID[:len(final[0].ID)-2] != final[1].ID[:len(final[1].ID)-2] {
		t.Errorf("final collection mixes writers: %q vs %q", final[0].ID, final[1].ID)
	}
}
