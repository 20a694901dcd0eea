package status

import "sync/atomic"

// Registry groups simulation counters and gauges by value type
// Systems cache metric pointers at construction; hot paths write atomics directly
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Snapshot copies every metric into a flat map keyed by metric name
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = float64(v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out[key] = v.Get()
	})
	return out
}
