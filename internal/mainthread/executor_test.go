package mainthread

import (
	"errors"
	"sync"
	"testing"
)

func TestExecutor_Do_PropagatesError(t *testing.T) {
	e := New()
	defer e.Stop()

	boom := errors.New("boom")
	err := e.Do(func() error { return boom })
	if err != boom {
		t.Errorf("Do() = %v, want %v", err, boom)
	}
}

func TestExecutor_Do_PropagatesNilOnSuccess(t *testing.T) {
	e := New()
	defer e.Stop()

	if err := e.Do(func() error { return nil }); err != nil {
		t.Errorf("Do() = %v, want nil", err)
	}
}

// TestExecutor_Do_SerializesConcurrentCalls exercises the single-writer
// guarantee the accessibility/input boundary requires: many goroutines
// submitting work concurrently must never interleave their closures.
func TestExecutor_Do_SerializesConcurrentCalls(t *testing.T) {
	e := New()
	defer e.Stop()

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = e.Do(func() error {
				counter++ // unsynchronized except via the executor's serialization
				return nil
			})
		}()
	}
	wg.Wait()
	if counter != 50 {
		t.Errorf("counter = %d, want 50 (no lost updates under serialization)", counter)
	}
}
