package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[float64](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (float64, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return 81.5, nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "rating:napoli", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != 81.5 {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	var calls atomic.Int32
	failing := func(context.Context) (int, error) {
		calls.Add(1)
		return 0, errors.New("db down")
	}

	if _, err := store.GetOrLoad(t.Context(), "k", failing); err == nil {
		t.Fatalf("expected loader error")
	}
	if _, err := store.GetOrLoad(t.Context(), "k", failing); err == nil {
		t.Fatalf("expected loader error")
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
}

func TestStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore[string](time.Second)
	store.now = func() time.Time { return now }

	store.Set(t.Context(), "rating:inter", "cached")
	if _, ok := store.Get(t.Context(), "rating:inter"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Second)
	if _, ok := store.Get(t.Context(), "rating:inter"); ok {
		t.Fatalf("expected entry to expire")
	}
	if store.Len() != 0 {
		t.Fatalf("expired entry should be evicted, len=%d", store.Len())
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore[int](0)
	store.Set(t.Context(), "rating:a", 1)
	store.Set(t.Context(), "rating:b", 2)
	store.Set(t.Context(), "roster:a", 3)

	store.DeletePrefix(t.Context(), "rating:")
	if store.Len() != 1 {
		t.Fatalf("expected only roster entry to remain, len=%d", store.Len())
	}
	if v, ok := store.Get(t.Context(), "roster:a"); !ok || v != 3 {
		t.Fatalf("unexpected roster entry: %v %v", v, ok)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
