package parallelfor

import (
	"context"
	"sync"
	"testing"
)

func TestParallelForVisitsEveryIndexExactlyOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 4, -1} {
		const n = 997 // prime, exercises an uneven last chunk
		seen := make([]int32, n)
		var mu sync.Mutex
		err := ParallelFor(context.Background(), n, workers, func(idx int64, workerID int) error {
			mu.Lock()
			seen[idx]++
			mu.Unlock()
			return nil
		})
		if err != nil {
			t.Fatalf("workers=%d: unexpected error: %v", workers, err)
		}
		for i, count := range seen {
			if count != 1 {
				t.Fatalf("workers=%d: index %d visited %d times", workers, i, count)
			}
		}
	}
}

func TestParallelForSingleWorkerIsSequentialAndInline(t *testing.T) {
	var order []int64
	err := ParallelFor(context.Background(), 10, 1, func(idx int64, workerID int) error {
		order = append(order, idx)
		if workerID != 0 {
			t.Errorf("single worker run reported workerID %d", workerID)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range order {
		if v != int64(i) {
			t.Fatalf("expected sequential order, got %v", order)
		}
	}
}

func TestParallelForPropagatesFirstError(t *testing.T) {
	boom := errTest("boom")
	err := ParallelFor(context.Background(), 100, 4, func(idx int64, workerID int) error {
		if idx == 50 {
			return boom
		}
		return nil
	})
	if err == nil {
		t.Fatal("expected an error")
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
