package dynamic

import (
	"sync"

	"github.com/katalvlaran/seqgraph/bta"
)

// PathProps is the dynamic path-property layer (spec.md §4.7): a vector of
// path records plus an id→rank index.
type PathProps struct {
	mu sync.RWMutex

	paths   []Path // paths[rank-1] == path at that rank
	idRank  map[PathId]uint64
	nextID  PathId
}

// NewPathProps returns an empty dynamic path-property layer.
func NewPathProps() *PathProps {
	return &PathProps{idRank: make(map[PathId]uint64)}
}

// AddPath creates a new, empty path named name and returns its PathId.
func (p *PathProps) AddPath(name string) PathId {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextID++
	id := p.nextID
	p.paths = append(p.paths, Path{ID: id, Name: name})
	p.idRank[id] = uint64(len(p.paths))
	return id
}

// ExtendPath appends one oriented-node step to the named path.
func (p *PathProps) ExtendPath(id PathId, node bta.NodeId, reversed bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.idRank[id]
	if !ok {
		return false
	}
	p.paths[r-1].Steps = append(p.paths[r-1].Steps, MakeOrientedNode(node, reversed))
	return true
}

// ExtendPathMany appends a batch of (node, reversed) steps in order.
func (p *PathProps) ExtendPathMany(id PathId, nodes []bta.NodeId, reversed []bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.idRank[id]
	if !ok {
		return false
	}
	steps := make([]OrientedNode, len(nodes))
	for i, n := range nodes {
		steps[i] = MakeOrientedNode(n, reversed[i])
	}
	p.paths[r-1].Steps = append(p.paths[r-1].Steps, steps...)
	return true
}

// HasPath reports whether id identifies a live path.
func (p *PathProps) HasPath(id PathId) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.idRank[id]
	return ok
}

// Path returns a copy of the path record for id.
func (p *PathProps) Path(id PathId) (Path, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	r, ok := p.idRank[id]
	if !ok {
		return Path{}, false
	}
	src := p.paths[r-1]
	steps := make([]OrientedNode, len(src.Steps))
	copy(steps, src.Steps)
	return Path{ID: src.ID, Name: src.Name, Steps: steps}, true
}

// Length returns the number of steps in path id, or 0 if absent.
func (p *PathProps) Length(id PathId) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	r, ok := p.idRank[id]
	if !ok {
		return 0
	}
	return len(p.paths[r-1].Steps)
}

// ForEachPath iterates paths in ascending rank order, invoking cb(path).
// Returns false iff cb returned false at least once.
func (p *PathProps) ForEachPath(cb func(Path) bool) bool {
	p.mu.RLock()
	snapshot := make([]Path, len(p.paths))
	copy(snapshot, p.paths)
	p.mu.RUnlock()

	for _, path := range snapshot {
		if !cb(path) {
			return false
		}
	}
	return true
}

// Count returns the number of live paths.
func (p *PathProps) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.paths)
}

// FlipOrientation toggles the reverse bit of every step matching any id in
// nodeSet, across every path (spec.md §4.7).
func (p *PathProps) FlipOrientation(nodeSet map[bta.NodeId]struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for pi := range p.paths {
		steps := p.paths[pi].Steps
		for si, step := range steps {
			if _, ok := nodeSet[step.ID()]; ok {
				steps[si] = step.Flipped()
			}
		}
	}
}

// FlipOrientationOne toggles the reverse bit of every step matching id,
// across every path. Convenience wrapper over FlipOrientation for the
// single-node case (spec.md §4.8.1 step 4).
func (p *PathProps) FlipOrientationOne(id bta.NodeId) {
	p.FlipOrientation(map[bta.NodeId]struct{}{id: {}})
}

// Clear drops all paths.
func (p *PathProps) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paths = nil
	p.idRank = make(map[PathId]uint64)
	p.nextID = 0
}
