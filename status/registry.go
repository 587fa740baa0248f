package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the round controller
const (
	KeyTicks      = "round.ticks"
	KeyResets     = "round.resets"
	KeyPlayerHits = "round.player_hits"
	KeyAIHits     = "round.ai_hits"
)

// Registry is the central counter facade
// Writers cache pointers at construction and update the atomics directly
type Registry struct {
	Ints *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints: NewMetricMap[atomic.Int64](),
	}
}

// Snapshot copies all counters into a plain map
func (r *Registry) Snapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = v.Load()
	})
	return out
}

// Summary formats all counters as "key=value" pairs in key order
func (r *Registry) Summary() string {
	var sb strings.Builder
	r.Ints.Range(func(key string, v *atomic.Int64) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%d", key, v.Load())
	})
	return sb.String()
}
