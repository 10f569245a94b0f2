package posts

import (
	"sort"
	"sync"
	"testing"
)

func TestIDGenerator_StrictlyIncreasing(t *testing.T) {
	gen := NewIDGenerator()

	prev := gen.Next()
	for i := 0; i < 10000; i++ {
		id := gen.Next()
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestIDGenerator_UniqueUnderConcurrency(t *testing.T) {
	gen := NewIDGenerator()

	const workers = 8
	const perWorker = 1000

	var mu sync.Mutex
	ids := make([]int64, 0, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]int64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, gen.Next())
			}
			mu.Lock()
			ids = append(ids, local...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i := 1; i < len(ids); i++ {
		if ids[i] == ids[i-1] {
			t.Fatalf("duplicate id generated: %d", ids[i])
		}
	}
}
