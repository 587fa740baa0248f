package status

import (
	"sync"
	"testing"
)

func TestMetricMap_GetReturnsCachedPointer(t *testing.T) {
	m := NewMetricMap[int]()

	a := m.Get("x")
	b := m.Get("x")
	if a != b {
		t.Error("Expected the same pointer for repeated Get")
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Count())
	}
}

func TestMetricMap_RangeSorted(t *testing.T) {
	m := NewMetricMap[int]()
	for _, k := range []string{"c", "a", "b"} {
		*m.Get(k) = len(k)
	}

	var keys []string
	m.Range(func(key string, _ *int) {
		keys = append(keys, key)
	})

	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Expected sorted keys [a b c], got %v", keys)
	}
}

func TestRegistry_ConcurrentIncrements(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctr := r.Ints.Get(KeyTicks)
			for j := 0; j < 1000; j++ {
				ctr.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := r.Snapshot()[KeyTicks]; got != 8000 {
		t.Errorf("Expected 8000 ticks, got %d", got)
	}
}

func TestRegistry_Summary(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyResets).Store(3)
	r.Ints.Get(KeyAIHits).Store(2)

	want := "round.ai_hits=2 round.resets=3"
	if got := r.Summary(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestRegistry_EmptySummary(t *testing.T) {
	if got := NewRegistry().Summary(); got != "" {
		t.Errorf("Expected empty summary, got %q", got)
	}
}
