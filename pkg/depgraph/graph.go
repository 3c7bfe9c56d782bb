package depgraph

import (
	"slices"
	"strings"
)

// Graph is the dependency graph produced by one [Builder.Build] call.
//
// Keys are the expanded nodes in BFS discovery order. A node that was
// discovered but never expanded (depth cutoff) has metadata but is not a key;
// a node that was expanded and had no dependencies, or whose provider call
// failed, is a key with an empty child list.
//
// A Graph is read-only once Build returns and is safe for concurrent reads.
type Graph struct {
	order    []NodeID
	children map[NodeID][]NodeID
	meta     map[NodeID]Coordinate
	stats    BuildStats
}

// BuildStats summarizes a build.
type BuildStats struct {
	Expanded int `json:"expanded"` // nodes that had a provider call issued
	Failed   int `json:"failed"`   // provider calls that returned an error
	Filtered int `json:"filtered"` // dependency references dropped by the filter
	Depth    int `json:"depth"`    // deepest level that was expanded
}

func newGraph() *Graph {
	return &Graph{
		children: make(map[NodeID][]NodeID),
		meta:     make(map[NodeID]Coordinate),
	}
}

// register records metadata for id unless it is already known.
func (g *Graph) register(c Coordinate) NodeID {
	id := c.ID()
	if _, ok := g.meta[id]; !ok {
		if c.Version == "" {
			c.Version = UnknownVersion
		}
		g.meta[id] = c
	}
	return id
}

// expand makes id a key with an empty child list. Calling it twice is a no-op.
func (g *Graph) expand(id NodeID) {
	if _, ok := g.children[id]; ok {
		return
	}
	g.order = append(g.order, id)
	g.children[id] = []NodeID{}
}

func (g *Graph) addChild(parent, child NodeID) {
	g.children[parent] = append(g.children[parent], child)
}

// Keys returns the expanded nodes in insertion (BFS) order.
func (g *Graph) Keys() []NodeID {
	return slices.Clone(g.order)
}

// Children returns the stored child list of id, and whether id is a key.
func (g *Graph) Children(id NodeID) ([]NodeID, bool) {
	c, ok := g.children[id]
	return slices.Clone(c), ok
}

// Has reports whether id was expanded during the build.
func (g *Graph) Has(id NodeID) bool {
	_, ok := g.children[id]
	return ok
}

// Metadata returns the coordinate registered for id.
func (g *Graph) Metadata(id NodeID) (Coordinate, bool) {
	c, ok := g.meta[id]
	return c, ok
}

// Len returns the number of keys.
func (g *Graph) Len() int { return len(g.order) }

// NodeCount returns the number of discovered nodes, expanded or not.
func (g *Graph) NodeCount() int { return len(g.meta) }

// EdgeCount returns the total length of all child lists.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, c := range g.children {
		n += len(c)
	}
	return n
}

// Stats returns counters collected while building the graph.
func (g *Graph) Stats() BuildStats { return g.stats }

// resolveRoot finds the key to start a traversal from. The exact
// "group:artifact:version" key wins; otherwise the first key in insertion
// order with the same group and artifact is used.
func (g *Graph) resolveRoot(pkg, version string) (NodeID, bool) {
	group, artifact := SplitPackageName(pkg)
	id := MakeNodeID(group, artifact, version)
	if g.Has(id) {
		return id, true
	}
	prefix := packagePrefix(pkg)
	for _, k := range g.order {
		if strings.HasPrefix(string(k), prefix) {
			return k, true
		}
	}
	return "", false
}
