package dynamic

import (
	"sync"

	"github.com/katalvlaran/seqgraph/bta"
)

// EdgeProps is the dynamic edge-property layer (spec.md §4.6): a map from
// Link to its EdgePayload. bta.Link is a plain struct of two Side values, so
// Go's built-in map hashing already folds the side tag into the key the way
// spec.md's "hash key MUST fold side.tag into the NodeId hash" requires for
// a hand-rolled hash table: Side carries its tag as a distinct struct field,
// so Start(7) and End(7) hash and compare independently without any manual
// bit-flipping step.
type EdgeProps struct {
	mu sync.RWMutex
	m  map[bta.Link]EdgePayload
}

// NewEdgeProps returns an empty dynamic edge-property layer.
func NewEdgeProps() *EdgeProps {
	return &EdgeProps{m: make(map[bta.Link]EdgePayload)}
}

// Set records payload for link, replacing any existing entry.
func (e *EdgeProps) Set(link bta.Link, payload EdgePayload) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.m[link] = payload
}

// Get returns the payload for link and whether it was present.
func (e *EdgeProps) Get(link bta.Link) (EdgePayload, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	p, ok := e.m[link]
	return p, ok
}

// Delete removes link's payload, if any.
func (e *EdgeProps) Delete(link bta.Link) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.m, link)
}

// Len returns the number of recorded edge payloads.
func (e *EdgeProps) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.m)
}

// ChangeEdge atomically moves the payload at oldLink to newLink. If swap is
// true and both keys already exist, their payloads are exchanged instead of
// overwritten. Returns false if oldLink is not present (spec.md §4.6).
func (e *EdgeProps) ChangeEdge(oldLink, newLink bta.Link, swap bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	oldPayload, ok := e.m[oldLink]
	if !ok {
		return false
	}
	newPayload, newExists := e.m[newLink]

	if swap && newExists {
		e.m[oldLink] = newPayload
		e.m[newLink] = oldPayload
		return true
	}

	delete(e.m, oldLink)
	e.m[newLink] = oldPayload
	return true
}

// Clear drops all recorded payloads.
func (e *EdgeProps) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.m = make(map[bta.Link]EdgePayload)
}
