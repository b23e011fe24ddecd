package monitor

import (
	"fmt"
	"sync"
)

// Site is one monitored endpoint. Name and Address are fixed at creation;
// History is mutated only through Registry.WithSiteMut.
type Site struct {
	Name    string
	Address string
	History *History
}

// SiteSnapshot is a point-in-time copy of one site, safe to read without locks.
type SiteSnapshot struct {
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Latest  Outcome   `json:"latest"`
	History []Outcome `json:"history"`
}

// SiteSpec is the (name, address) pair a Registry is built from.
type SiteSpec struct {
	Name    string
	Address string
}

// Registry owns every Site and serializes access to their histories with a
// single mutex. The set of sites is fixed at construction.
type Registry struct {
	mu    sync.Mutex
	sites []*Site
}

// NewRegistry creates a registry in the given order, each site with a history
// of historySize Pending outcomes.
func NewRegistry(specs []SiteSpec, historySize int) *Registry {
	sites := make([]*Site, len(specs))
	for i, spec := range specs {
		sites[i] = &Site{
			Name:    spec.Name,
			Address: spec.Address,
			History: NewHistory(historySize),
		}
	}
	return &Registry{sites: sites}
}

// Len returns the number of sites. It never changes after construction.
func (r *Registry) Len() int {
	return len(r.sites)
}

// WithSiteMut runs fn with exclusive access to the site at index.
// An out-of-range index is a programming error and panics.
func (r *Registry) WithSiteMut(index int, fn func(*Site)) {
	if index < 0 || index >= len(r.sites) {
		panic(fmt.Sprintf("monitor: site index %d out of range [0,%d)", index, len(r.sites)))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.sites[index])
}

// Push records outcome as the newest entry for the site at index.
func (r *Registry) Push(index int, outcome Outcome) {
	r.WithSiteMut(index, func(s *Site) {
		s.History.Push(outcome)
	})
}

// SnapshotAll copies every site in registry order. Each history copy is taken
// under the lock, so no copy ever reflects a partially applied push.
func (r *Registry) SnapshotAll() []SiteSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]SiteSnapshot, len(r.sites))
	for i, s := range r.sites {
		out[i] = SiteSnapshot{
			Name:    s.Name,
			Address: s.Address,
			Latest:  s.History.Latest(),
			History: s.History.Snapshot(),
		}
	}
	return out
}

// Snapshot copies a single site.
func (r *Registry) Snapshot(index int) SiteSnapshot {
	var snap SiteSnapshot
	r.WithSiteMut(index, func(s *Site) {
		snap = SiteSnapshot{
			Name:    s.Name,
			Address: s.Address,
			Latest:  s.History.Latest(),
			History: s.History.Snapshot(),
		}
	})
	return snap
}
