package lock

import (
	"context"
	"sync"
	"testing"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	km := NewKeyedMutex()
	ctx := context.Background()

	const goroutines = 50
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := km.Lock(ctx, "same-key")
			if err != nil {
				t.Errorf("lock failed: %v", err)
				return
			}
			counter++
			unlock()
		}()
	}
	wg.Wait()

	if counter != goroutines {
		t.Errorf("counter=%d, want %d; critical section was not exclusive", counter, goroutines)
	}
}

func TestKeyedMutexReleases(t *testing.T) {
	km := NewKeyedMutex()
	ctx := context.Background()

	unlock, err := km.Lock(ctx, "key")
	if err != nil {
		t.Fatalf("lock failed: %v", err)
	}
	unlock()

	// same key must be acquirable again after release
	unlock, err = km.Lock(ctx, "key")
	if err != nil {
		t.Fatalf("relock failed: %v", err)
	}
	unlock()
}
