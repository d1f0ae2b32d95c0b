package core

import "fmt"

// Router writes records to the sink of their geography tier.
type Router struct {
	tiers      TierSet
	sinks      []Sink
	counts     []int
	unroutable int
}

// NewRouter pairs each tier with the sink at the same position.
func NewRouter(tiers TierSet, sinks []Sink) (*Router, error) {
	if len(sinks) != tiers.Len() {
		return nil, fmt.Errorf("router: %d sinks for %d tiers", len(sinks), tiers.Len())
	}
	return &Router{
		tiers:  tiers,
		sinks:  sinks,
		counts: make([]int, tiers.Len()),
	}, nil
}

// Route writes rec to the first tier whose bound exceeds its ID. A record
// with more digits than the largest tier is dropped silently and Route
// returns false with a nil error.
func (r *Router) Route(rec Record) (bool, error) {
	i, ok := r.tiers.Classify(rec.ID)
	if !ok {
		r.unroutable++
		return false, nil
	}
	if err := r.sinks[i].Write(rec.Values()); err != nil {
		return false, fmt.Errorf("route %s to %s: %w", rec.ID, r.tiers.At(i).Code, err)
	}
	r.counts[i]++
	return true, nil
}

// Counts returns the number of records written per tier code.
func (r *Router) Counts() map[string]int {
	out := make(map[string]int, len(r.counts))
	for i, n := range r.counts {
		out[r.tiers.At(i).Code] = n
	}
	return out
}

// Unroutable returns the number of records dropped for exceeding every tier.
func (r *Router) Unroutable() int { return r.unroutable }
